package controllers

import (
	"github.com/gin-gonic/gin"

	"tourism-backend/entity"
	"tourism-backend/pkg/resp"
	"tourism-backend/repository"
)

type HotelController struct {
	Repo        *repository.HotelRepository
	CommentRepo *repository.CommentRepository
}

func NewHotelController(repo *repository.HotelRepository, commentRepo *repository.CommentRepository) *HotelController {
	return &HotelController{Repo: repo, CommentRepo: commentRepo}
}

// GET /hotels?q=&sort=&page=&limit=
func (hc *HotelController) List(c *gin.Context) {
	page, limit := parsePaging(c)
	hotels, total, err := hc.Repo.List(repository.HotelListParams{
		Keyword: c.Query("q"),
		Sort:    c.Query("sort"),
		Page:    page,
		Limit:   limit,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": hotels, "total": total, "page": page})
}

// GET /hotels/:id
func (hc *HotelController) Detail(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	hotel, err := hc.Repo.Get(id)
	if err != nil {
		writeError(c, err)
		return
	}
	_ = hc.Repo.IncrementViews(id)

	reviews, _, err := hc.CommentRepo.ListByTarget(entity.ItemTypeHotel, id, 1, 10)
	if err != nil {
		writeError(c, err)
		return
	}

	resp.OK(c, gin.H{
		"hotel":     hotel,
		"roomTypes": hotel.RoomTypes,
		"reviews":   reviews,
	})
}
