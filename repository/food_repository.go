package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"tourism-backend/entity"
	"tourism-backend/pkg/apperr"
)

type FoodRepository struct {
	DB *gorm.DB
}

func NewFoodRepository(db *gorm.DB) *FoodRepository {
	return &FoodRepository{DB: db}
}

func (r *FoodRepository) Categories() ([]entity.FoodCategory, error) {
	var cats []entity.FoodCategory
	err := r.DB.Order("display_order ASC, id").Find(&cats).Error
	return cats, err
}

type FoodListParams struct {
	CategoryID *uint
	Keyword    string
	Sort       string // rating | views | "" (default ordering)
	Page       int
	Limit      int
}

func (r *FoodRepository) List(p FoodListParams) ([]entity.Food, int64, error) {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Limit <= 0 || p.Limit > 100 {
		p.Limit = 12
	}

	q := r.DB.Model(&entity.Food{})
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
	case "views":
		q = q.Order("views_count DESC")
	default:
		q = q.Order("display_order ASC, is_hot DESC, rating DESC, created_at DESC")
	}

	var foods []entity.Food
	err := q.Limit(p.Limit).Offset((p.Page - 1) * p.Limit).Find(&foods).Error
	return foods, total, err
}

func (r *FoodRepository) Get(id uint) (*entity.Food, error) {
	var f entity.Food
	err := r.DB.Preload("Images", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order")
	}).First(&f, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FoodRepository) IncrementViews(id uint) error {
	return r.DB.Model(&entity.Food{}).Where("id = ?", id).
		Update("views_count", gorm.Expr("views_count + 1")).Error
}

func (r *FoodRepository) Hot(limit int) ([]entity.Food, error) {
	var foods []entity.Food
	err := r.DB.Where("is_hot = ?", true).
		Order("display_order ASC, rating DESC").Limit(limit).Find(&foods).Error
	return foods, err
}

func (r *FoodRepository) UpdateRating(id uint, rating string) error {
	return r.DB.Model(&entity.Food{}).Where("id = ?", id).
		Update("rating", rating).Error
}
