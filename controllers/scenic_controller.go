package controllers

import (
	"github.com/gin-gonic/gin"

	"tourism-backend/entity"
	"tourism-backend/pkg/resp"
	"tourism-backend/repository"
)

type ScenicController struct {
	Repo        *repository.ScenicRepository
	CommentRepo *repository.CommentRepository
}

func NewScenicController(repo *repository.ScenicRepository, commentRepo *repository.CommentRepository) *ScenicController {
	return &ScenicController{Repo: repo, CommentRepo: commentRepo}
}

// GET /scenic/categories
func (sc *ScenicController) Categories(c *gin.Context) {
	cats, err := sc.Repo.Categories()
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, cats)
}

// GET /scenic/spots?category=&q=&sort=&page=&limit=
func (sc *ScenicController) List(c *gin.Context) {
	page, limit := parsePaging(c)
	spots, total, err := sc.Repo.ListSpots(repository.SpotListParams{
		CategoryID: parseOptionalUintQuery(c, "category"),
		Keyword:    c.Query("q"),
		Sort:       c.Query("sort"),
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": spots, "total": total, "page": page})
}

// GET /scenic/spots/:id
func (sc *ScenicController) Detail(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	spot, err := sc.Repo.GetSpot(id)
	if err != nil {
		writeError(c, err)
		return
	}
	// best effort, the detail page does not care if this write loses a race
	_ = sc.Repo.IncrementViews(id)

	reviews, _, err := sc.CommentRepo.ListByTarget(entity.ItemTypeScenic, id, 1, 10)
	if err != nil {
		writeError(c, err)
		return
	}

	resp.OK(c, gin.H{
		"spot":    spot,
		"tags":    spot.TagList(),
		"images":  spot.Images,
		"reviews": reviews,
	})
}
