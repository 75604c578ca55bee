package controllers

import (
	"github.com/gin-gonic/gin"

	"tourism-backend/pkg/resp"
	"tourism-backend/repository"
)

type NewsController struct {
	Repo        *repository.NewsRepository
	CommentRepo *repository.CommentRepository
}

func NewNewsController(repo *repository.NewsRepository, commentRepo *repository.CommentRepository) *NewsController {
	return &NewsController{Repo: repo, CommentRepo: commentRepo}
}

// GET /news/categories
func (nc *NewsController) Categories(c *gin.Context) {
	cats, err := nc.Repo.Categories()
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, cats)
}

// GET /news?category=&q=&page=&limit=
func (nc *NewsController) List(c *gin.Context) {
	page, limit := parsePaging(c)
	news, total, err := nc.Repo.List(repository.NewsListParams{
		CategoryID: parseOptionalUintQuery(c, "category"),
		Keyword:    c.Query("q"),
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": news, "total": total, "page": page})
}

// GET /news/:id
func (nc *NewsController) Detail(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	n, err := nc.Repo.Get(id)
	if err != nil {
		writeError(c, err)
		return
	}
	_ = nc.Repo.IncrementViews(id)

	comments, _, err := nc.CommentRepo.ListByTarget("news", id, 1, 20)
	if err != nil {
		writeError(c, err)
		return
	}

	resp.OK(c, gin.H{"news": n, "comments": comments})
}
