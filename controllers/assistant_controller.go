package controllers

import (
	"github.com/gin-gonic/gin"

	"tourism-backend/pkg/resp"
	"tourism-backend/services"
	"tourism-backend/utils"
)

type AssistantController struct {
	Svc *services.AssistantService
}

func NewAssistantController(svc *services.AssistantService) *AssistantController {
	return &AssistantController{Svc: svc}
}

// POST /assistant/plan — works for anonymous callers too; the query is
// attributed when a valid token is present.
func (ac *AssistantController) Plan(c *gin.Context) {
	var req services.PlanReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	var userID *uint
	if uid := utils.CurrentUserID(c); uid != 0 {
		userID = &uid
	}

	out, err := ac.Svc.Plan(userID, &req)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /assistant/history
func (ac *AssistantController) History(c *gin.Context) {
	_, limit := parsePaging(c)
	items, err := ac.Svc.History(utils.CurrentUserID(c), limit)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

type favoriteQueryReq struct {
	Favorite bool `json:"favorite"`
}

// PATCH /assistant/history/:id/favorite
func (ac *AssistantController) SetFavorite(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var req favoriteQueryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ac.Svc.SetFavorite(utils.CurrentUserID(c), id, req.Favorite); err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{"favorite": req.Favorite})
}
