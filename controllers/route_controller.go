package controllers

import (
	"github.com/gin-gonic/gin"

	"tourism-backend/pkg/resp"
	"tourism-backend/repository"
)

type RouteController struct {
	Repo *repository.RouteRepository
}

func NewRouteController(repo *repository.RouteRepository) *RouteController {
	return &RouteController{Repo: repo}
}

// GET /routes/categories
func (rc *RouteController) Categories(c *gin.Context) {
	cats, err := rc.Repo.Categories()
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, cats)
}

// GET /routes?category=&q=&sort=&page=&limit=
func (rc *RouteController) List(c *gin.Context) {
	page, limit := parsePaging(c)
	routes, total, err := rc.Repo.List(repository.RouteListParams{
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
	resp.OK(c, gin.H{"items": routes, "total": total, "page": page})
}

// GET /routes/:id
func (rc *RouteController) Detail(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	route, err := rc.Repo.Get(id)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{
		"route":       route,
		"itineraries": route.Itineraries,
		"remaining":   route.Remaining(),
	})
}
