package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"tourism-backend/entity"
	"tourism-backend/pkg/apperr"
)

type ScenicRepository struct {
	DB *gorm.DB
}

func NewScenicRepository(db *gorm.DB) *ScenicRepository {
	return &ScenicRepository{DB: db}
}

func (r *ScenicRepository) Categories() ([]entity.ScenicCategory, error) {
	var cats []entity.ScenicCategory
	err := r.DB.Order("id").Find(&cats).Error
	return cats, err
}

// SpotListParams filters for GET /scenic/spots.
type SpotListParams struct {
	CategoryID *uint
	Keyword    string // substring match on name
	Sort       string // rating | price | views | "" (default ordering)
	Page       int
	Limit      int
}

func (r *ScenicRepository) ListSpots(p SpotListParams) ([]entity.ScenicSpot, int64, error) {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Limit <= 0 || p.Limit > 100 {
		p.Limit = 12
	}

	q := r.DB.Model(&entity.ScenicSpot{})
	if p.CategoryID != nil && *p.CategoryID != 0 {
		q = q.Where("category_id = ?", *p.CategoryID)
	}
	if k := strings.TrimSpace(p.Keyword); k != "" {
		q = q.Where("name LIKE ?", "%"+k+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	switch p.Sort {
	case "rating":
		q = q.Order("rating DESC")
	case "price":
		q = q.Order("ticket_price ASC")
	case "views":
		q = q.Order("views_count DESC")
	default:
		q = q.Order("display_order ASC, is_hot DESC, rating DESC, created_at DESC")
	}

	var spots []entity.ScenicSpot
	err := q.Limit(p.Limit).Offset((p.Page - 1) * p.Limit).Find(&spots).Error
	return spots, total, err
}

func (r *ScenicRepository) GetSpot(id uint) (*entity.ScenicSpot, error) {
	var s entity.ScenicSpot
	err := r.DB.Preload("Images", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order")
	}).First(&s, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// IncrementViews bumps views_count database-side to avoid lost updates.
func (r *ScenicRepository) IncrementViews(id uint) error {
	return r.DB.Model(&entity.ScenicSpot{}).Where("id = ?", id).
		Update("views_count", gorm.Expr("views_count + 1")).Error
}

func (r *ScenicRepository) Hot(limit int) ([]entity.ScenicSpot, error) {
	var spots []entity.ScenicSpot
	err := r.DB.Where("is_hot = ?", true).
		Order("display_order ASC, rating DESC").Limit(limit).Find(&spots).Error
	return spots, err
}

func (r *ScenicRepository) Recommended(limit int) ([]entity.ScenicSpot, error) {
	var spots []entity.ScenicSpot
	err := r.DB.Where("is_recommended = ?", true).
		Order("display_order ASC, rating DESC").Limit(limit).Find(&spots).Error
	return spots, err
}

// FindByExactName is the assistant's first matching pass.
func (r *ScenicRepository) FindByExactName(name string) (*entity.ScenicSpot, error) {
	var s entity.ScenicSpot
	err := r.DB.Where("name = ?", name).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// FindByNameContains is the assistant's substring fallback.
func (r *ScenicRepository) FindByNameContains(name string) (*entity.ScenicSpot, error) {
	var s entity.ScenicSpot
	err := r.DB.Where("name LIKE ?", "%"+name+"%").First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// UpdateRating stores the recomputed review average.
func (r *ScenicRepository) UpdateRating(id uint, rating string) error {
	return r.DB.Model(&entity.ScenicSpot{}).Where("id = ?", id).
		Update("rating", rating).Error
}
