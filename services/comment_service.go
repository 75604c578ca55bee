package services

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"tourism-backend/entity"
	"tourism-backend/pkg/apperr"
	"tourism-backend/repository"
)

type CommentService struct {
	DB         *gorm.DB
	Repo       *repository.CommentRepository
	ScenicRepo *repository.ScenicRepository
	HotelRepo  *repository.HotelRepository
	FoodRepo   *repository.FoodRepository
	RouteRepo  *repository.RouteRepository
	NewsRepo   *repository.NewsRepository
}

func NewCommentService(
	db *gorm.DB,
	repo *repository.CommentRepository,
	scenicRepo *repository.ScenicRepository,
	hotelRepo *repository.HotelRepository,
	foodRepo *repository.FoodRepository,
	routeRepo *repository.RouteRepository,
	newsRepo *repository.NewsRepository,
) *CommentService {
	return &CommentService{
		DB:         db,
		Repo:       repo,
		ScenicRepo: scenicRepo,
		HotelRepo:  hotelRepo,
		FoodRepo:   foodRepo,
		RouteRepo:  routeRepo,
		NewsRepo:   newsRepo,
	}
}

type CreateCommentReq struct {
	TargetType string `json:"targetType" binding:"required,oneof=scenic route hotel food news"`
	TargetID   uint   `json:"targetId" binding:"required"`
	Content    string `json:"content" binding:"required"`
	Rating     uint   `json:"rating" binding:"required,min=1,max=5"`
	Images     string `json:"images"`
}

// Create validates the target exists, stores the review and refreshes the
// target's average rating.
func (s *CommentService) Create(userID uint, req *CreateCommentReq) (*entity.Comment, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, apperr.Validationf("content is required")
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, apperr.Validationf("rating must be between 1 and 5")
	}
	if err := s.targetExists(req.TargetType, req.TargetID); err != nil {
		return nil, err
	}

	c := entity.Comment{
		UserID:     userID,
		TargetType: req.TargetType,
		TargetID:   req.TargetID,
		Content:    req.Content,
		Rating:     req.Rating,
		Images:     req.Images,
	}
	if err := s.Repo.Create(&c); err != nil {
		return nil, err
	}
	if err := s.refreshRating(req.TargetType, req.TargetID); err != nil {
		return nil, err
	}
	return &c, nil
}

// DeleteOwn soft deletes the caller's comment; staff may delete anyone's.
func (s *CommentService) Delete(userID uint, isStaff bool, commentID uint) error {
	c, err := s.Repo.Get(commentID)
	if err != nil {
		return err
	}
	if !isStaff && c.UserID != userID {
		return apperr.ErrForbidden
	}
	if err := s.Repo.SoftDelete(commentID); err != nil {
		return err
	}
	return s.refreshRating(c.TargetType, c.TargetID)
}

func (s *CommentService) ListByTarget(targetType string, targetID uint, page, limit int) ([]repository.CommentRow, int64, error) {
	return s.Repo.ListByTarget(targetType, targetID, page, limit)
}

func (s *CommentService) targetExists(targetType string, targetID uint) error {
	var err error
	switch targetType {
	case entity.ItemTypeScenic:
		_, err = s.ScenicRepo.GetSpot(targetID)
	case entity.ItemTypeRoute:
		_, err = s.RouteRepo.Get(targetID)
	case entity.ItemTypeHotel:
		_, err = s.HotelRepo.Get(targetID)
	case "food":
		_, err = s.FoodRepo.Get(targetID)
	case "news":
		_, err = s.NewsRepo.Get(targetID)
	default:
		return apperr.Validationf("unknown target type %q", targetType)
	}
	return err
}

// refreshRating writes the review average back onto catalogs that carry a
// rating column. Routes and news have none, nothing to do there.
func (s *CommentService) refreshRating(targetType string, targetID uint) error {
	avg, ok, err := s.Repo.AverageRating(targetType, targetID)
	if err != nil || !ok {
		return err
	}
	rating := fmt.Sprintf("%.1f", avg)
	switch targetType {
	case entity.ItemTypeScenic:
		return s.ScenicRepo.UpdateRating(targetID, rating)
	case entity.ItemTypeHotel:
		return s.HotelRepo.UpdateRating(targetID, rating)
	case "food":
		return s.FoodRepo.UpdateRating(targetID, rating)
	}
	return nil
}
