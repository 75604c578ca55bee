package controllers

import (
	"github.com/gin-gonic/gin"

	"tourism-backend/pkg/resp"
	"tourism-backend/repository"
)

type FoodController struct {
	Repo *repository.FoodRepository
}

func NewFoodController(repo *repository.FoodRepository) *FoodController {
	return &FoodController{Repo: repo}
}

// GET /foods/categories
func (fc *FoodController) Categories(c *gin.Context) {
	cats, err := fc.Repo.Categories()
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, cats)
}

// GET /foods?category=&q=&sort=&page=&limit=
func (fc *FoodController) List(c *gin.Context) {
	page, limit := parsePaging(c)
	foods, total, err := fc.Repo.List(repository.FoodListParams{
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
	resp.OK(c, gin.H{"items": foods, "total": total, "page": page})
}

// GET /foods/:id
func (fc *FoodController) Detail(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	food, err := fc.Repo.Get(id)
	if err != nil {
		writeError(c, err)
		return
	}
	_ = fc.Repo.IncrementViews(id)

	resp.OK(c, gin.H{"food": food, "images": food.Images})
}
