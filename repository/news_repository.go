package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"tourism-backend/entity"
	"tourism-backend/pkg/apperr"
)

type NewsRepository struct {
	DB *gorm.DB
}

func NewNewsRepository(db *gorm.DB) *NewsRepository {
	return &NewsRepository{DB: db}
}

func (r *NewsRepository) Categories() ([]entity.NewsCategory, error) {
	var cats []entity.NewsCategory
	err := r.DB.Order("id").Find(&cats).Error
	return cats, err
}

type NewsListParams struct {
	CategoryID *uint
	Keyword    string // substring match on title
	Page       int
	Limit      int
}

func (r *NewsRepository) List(p NewsListParams) ([]entity.News, int64, error) {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Limit <= 0 || p.Limit > 100 {
		p.Limit = 10
	}

	q := r.DB.Model(&entity.News{})
	if p.CategoryID != nil && *p.CategoryID != 0 {
		q = q.Where("category_id = ?", *p.CategoryID)
	}
	if k := strings.TrimSpace(p.Keyword); k != "" {
		q = q.Where("title LIKE ?", "%"+k+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var news []entity.News
	err := q.Order("created_at DESC").
		Limit(p.Limit).Offset((p.Page - 1) * p.Limit).Find(&news).Error
	return news, total, err
}

func (r *NewsRepository) Get(id uint) (*entity.News, error) {
	var n entity.News
	err := r.DB.First(&n, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *NewsRepository) IncrementViews(id uint) error {
	return r.DB.Model(&entity.News{}).Where("id = ?", id).
		Update("views_count", gorm.Expr("views_count + 1")).Error
}

func (r *NewsRepository) Latest(limit int) ([]entity.News, error) {
	var news []entity.News
	err := r.DB.Order("created_at DESC").Limit(limit).Find(&news).Error
	return news, err
}
