package controllers

import (
	"errors"
	"log"
	"strconv"

	"github.com/gin-gonic/gin"

	"tourism-backend/pkg/apperr"
	"tourism-backend/pkg/resp"
)

func parsePaging(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "0"))
	return page, limit
}

func parseUintParam(c *gin.Context, name string) (uint, bool) {
	n, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return uint(n), true
}

func parseOptionalUintQuery(c *gin.Context, name string) *uint {
	if v := c.Query(name); v != "" {
		if n, err := strconv.ParseUint(v, 10, 32); err == nil {
			u := uint(n)
			return &u
		}
	}
	return nil
}

// writeError maps business errors onto the response envelope. Unexpected
// errors are logged and surfaced as a generic failure so internals never
// leak to clients.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		resp.NotFound(c, "not found")
	case errors.Is(err, apperr.ErrForbidden):
		resp.Forbidden(c, "forbidden")
	case errors.Is(err, apperr.ErrValidation):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, apperr.ErrCapacity):
		resp.Conflict(c, "not enough remaining capacity")
	case errors.Is(err, apperr.ErrOrderState):
		resp.Conflict(c, "cannot transition order in current state")
	default:
		log.Printf("unexpected error: %v", err)
		resp.ServerError(c, errors.New("internal error"))
	}
}
