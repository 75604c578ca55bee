package controllers

import (
	"github.com/gin-gonic/gin"

	"tourism-backend/pkg/resp"
	"tourism-backend/services"
	"tourism-backend/utils"
)

type CommentController struct {
	Svc *services.CommentService
}

func NewCommentController(svc *services.CommentService) *CommentController {
	return &CommentController{Svc: svc}
}

// POST /comments
func (cc *CommentController) Create(c *gin.Context) {
	var req services.CreateCommentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	comment, err := cc.Svc.Create(utils.CurrentUserID(c), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.Created(c, comment)
}

// GET /comments?targetType=&targetId=&page=&limit=
func (cc *CommentController) ListByTarget(c *gin.Context) {
	targetType := c.Query("targetType")
	targetID := parseOptionalUintQuery(c, "targetId")
	if targetType == "" || targetID == nil {
		resp.BadRequest(c, "targetType and targetId are required")
		return
	}

	page, limit := parsePaging(c)
	rows, total, err := cc.Svc.ListByTarget(targetType, *targetID, page, limit)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": rows, "total": total, "page": page})
}

// DELETE /comments/:id — owner or staff
func (cc *CommentController) Delete(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	isStaff := utils.CurrentRole(c) == "staff"
	if err := cc.Svc.Delete(utils.CurrentUserID(c), isStaff, id); err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
