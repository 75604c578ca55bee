package controllers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"tourism-backend/entity"
	"tourism-backend/pkg/resp"
	"tourism-backend/repository"
	"tourism-backend/utils"
)

type CheckInController struct {
	Repo       *repository.CheckInRepository
	ScenicRepo *repository.ScenicRepository
}

func NewCheckInController(repo *repository.CheckInRepository, scenicRepo *repository.ScenicRepository) *CheckInController {
	return &CheckInController{Repo: repo, ScenicRepo: scenicRepo}
}

type CreateCheckInReq struct {
	ScenicSpotID uint     `json:"scenicSpotId" binding:"required"`
	CheckinTime  string   `json:"checkinTime"` // RFC3339, defaults to now
	Latitude     *string  `json:"latitude"`
	Longitude    *string  `json:"longitude"`
	Notes        string   `json:"notes"`
	IsPublic     *bool    `json:"isPublic"` // defaults to true
	MainPhoto    string   `json:"mainPhoto"`
	Photos       []string `json:"photos"`
}

// POST /checkins
func (cc *CheckInController) Create(c *gin.Context) {
	var req CreateCheckInReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if _, err := cc.ScenicRepo.GetSpot(req.ScenicSpotID); err != nil {
		writeError(c, err)
		return
	}

	checkinTime := time.Now()
	if req.CheckinTime != "" {
		if t, err := time.Parse(time.RFC3339, req.CheckinTime); err == nil {
			checkinTime = t
		}
	}
	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	ci := entity.CheckIn{
		UserID:       utils.CurrentUserID(c),
		ScenicSpotID: req.ScenicSpotID,
		CheckinTime:  checkinTime,
		MainPhoto:    req.MainPhoto,
		Notes:        req.Notes,
		IsPublic:     isPublic,
	}
	if req.Latitude != nil {
		if d, err := decimal.NewFromString(*req.Latitude); err == nil {
			ci.Latitude = &d
		}
	}
	if req.Longitude != nil {
		if d, err := decimal.NewFromString(*req.Longitude); err == nil {
			ci.Longitude = &d
		}
	}

	if err := cc.Repo.Create(&ci, req.Photos); err != nil {
		writeError(c, err)
		return
	}
	resp.Created(c, ci)
}

// GET /scenic/spots/:id/checkins — public feed for one spot
func (cc *CheckInController) ListBySpot(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	page, limit := parsePaging(c)
	items, total, err := cc.Repo.ListPublicBySpot(id, page, limit)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items, "total": total, "page": page})
}

// GET /profile/checkins
func (cc *CheckInController) ListMine(c *gin.Context) {
	page, limit := parsePaging(c)
	items, total, err := cc.Repo.ListForUser(utils.CurrentUserID(c), page, limit)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items, "total": total, "page": page})
}

// DELETE /checkins/:id — owner only
func (cc *CheckInController) Delete(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	ci, err := cc.Repo.Get(id)
	if err != nil {
		writeError(c, err)
		return
	}
	if ci.UserID != utils.CurrentUserID(c) {
		resp.Forbidden(c, "forbidden")
		return
	}
	if err := cc.Repo.Delete(id); err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
