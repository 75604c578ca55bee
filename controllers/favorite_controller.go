package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"tourism-backend/entity"
	"tourism-backend/pkg/apperr"
	"tourism-backend/pkg/resp"
	"tourism-backend/repository"
	"tourism-backend/utils"
)

type FavoriteController struct {
	UserRepo   *repository.UserRepository
	ScenicRepo *repository.ScenicRepository
	RouteRepo  *repository.RouteRepository
	HotelRepo  *repository.HotelRepository
	FoodRepo   *repository.FoodRepository
	NewsRepo   *repository.NewsRepository
}

func NewFavoriteController(
	userRepo *repository.UserRepository,
	scenicRepo *repository.ScenicRepository,
	routeRepo *repository.RouteRepository,
	hotelRepo *repository.HotelRepository,
	foodRepo *repository.FoodRepository,
	newsRepo *repository.NewsRepository,
) *FavoriteController {
	return &FavoriteController{
		UserRepo:   userRepo,
		ScenicRepo: scenicRepo,
		RouteRepo:  routeRepo,
		HotelRepo:  hotelRepo,
		FoodRepo:   foodRepo,
		NewsRepo:   newsRepo,
	}
}

type FavoriteReq struct {
	TargetType string `json:"targetType" binding:"required,oneof=scenic route hotel food news"`
	TargetID   uint   `json:"targetId" binding:"required"`
}

// POST /favorites — idempotent per the unique index
func (fc *FavoriteController) Add(c *gin.Context) {
	var req FavoriteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if _, _, err := fc.resolveTarget(req.TargetType, req.TargetID); err != nil {
		writeError(c, err)
		return
	}

	f := entity.Favorite{
		UserID:     utils.CurrentUserID(c),
		TargetType: req.TargetType,
		TargetID:   req.TargetID,
	}
	if err := fc.UserRepo.AddFavorite(&f); err != nil {
		writeError(c, err)
		return
	}
	resp.Created(c, f)
}

// DELETE /favorites?targetType=&targetId=
func (fc *FavoriteController) Remove(c *gin.Context) {
	targetType := c.Query("targetType")
	targetID := parseOptionalUintQuery(c, "targetId")
	if targetType == "" || targetID == nil {
		resp.BadRequest(c, "targetType and targetId are required")
		return
	}

	affected, err := fc.UserRepo.RemoveFavorite(utils.CurrentUserID(c), targetType, *targetID)
	if err != nil {
		writeError(c, err)
		return
	}
	if affected == 0 {
		resp.NotFound(c, "favorite not found")
		return
	}
	resp.OK(c, gin.H{"removed": true})
}

// GET /favorites — with resolved target name and cover
func (fc *FavoriteController) List(c *gin.Context) {
	favs, err := fc.UserRepo.ListFavorites(utils.CurrentUserID(c))
	if err != nil {
		writeError(c, err)
		return
	}

	type row struct {
		entity.Favorite
		TargetName  string `json:"targetName"`
		TargetCover string `json:"targetCover"`
	}
	items := make([]row, 0, len(favs))
	for _, f := range favs {
		name, cover, err := fc.resolveTarget(f.TargetType, f.TargetID)
		if errors.Is(err, apperr.ErrNotFound) {
			// target removed since it was favorited, keep the raw ref
			items = append(items, row{Favorite: f})
			continue
		}
		if err != nil {
			writeError(c, err)
			return
		}
		items = append(items, row{Favorite: f, TargetName: name, TargetCover: cover})
	}
	resp.OK(c, gin.H{"items": items})
}

func (fc *FavoriteController) resolveTarget(targetType string, targetID uint) (name, cover string, err error) {
	switch targetType {
	case entity.ItemTypeScenic:
		s, err := fc.ScenicRepo.GetSpot(targetID)
		if err != nil {
			return "", "", err
		}
		return s.Name, s.CoverImage, nil
	case entity.ItemTypeRoute:
		r, err := fc.RouteRepo.Get(targetID)
		if err != nil {
			return "", "", err
		}
		return r.Name, r.CoverImage, nil
	case entity.ItemTypeHotel:
		h, err := fc.HotelRepo.Get(targetID)
		if err != nil {
			return "", "", err
		}
		return h.Name, h.CoverImage, nil
	case "food":
		f, err := fc.FoodRepo.Get(targetID)
		if err != nil {
			return "", "", err
		}
		return f.Name, f.CoverImage, nil
	case "news":
		n, err := fc.NewsRepo.Get(targetID)
		if err != nil {
			return "", "", err
		}
		return n.Title, n.CoverImage, nil
	}
	return "", "", apperr.Validationf("unknown target type %q", targetType)
}
