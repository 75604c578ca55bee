package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"tourism-backend/entity"
	"tourism-backend/pkg/apperr"
)

type RouteRepository struct {
	DB *gorm.DB
}

func NewRouteRepository(db *gorm.DB) *RouteRepository {
	return &RouteRepository{DB: db}
}

func (r *RouteRepository) Categories() ([]entity.RouteCategory, error) {
	var cats []entity.RouteCategory
	err := r.DB.Order("id").Find(&cats).Error
	return cats, err
}

type RouteListParams struct {
	CategoryID *uint
	Keyword    string
	Sort       string // price | days | "" (hot/recommended first)
	Page       int
	Limit      int
}

func (r *RouteRepository) List(p RouteListParams) ([]entity.Route, int64, error) {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Limit <= 0 || p.Limit > 100 {
		p.Limit = 12
	}

	q := r.DB.Model(&entity.Route{})
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
	case "price":
		q = q.Order("price ASC")
	case "days":
		q = q.Order("days ASC")
	default:
		q = q.Order("is_hot DESC, is_recommended DESC, created_at DESC")
	}

	var routes []entity.Route
	err := q.Limit(p.Limit).Offset((p.Page - 1) * p.Limit).Find(&routes).Error
	return routes, total, err
}

func (r *RouteRepository) Get(id uint) (*entity.Route, error) {
	var route entity.Route
	err := r.DB.Preload("Itineraries", func(db *gorm.DB) *gorm.DB {
		return db.Order("day_number")
	}).First(&route, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &route, nil
}

func (r *RouteRepository) Recommended(limit int) ([]entity.Route, error) {
	var routes []entity.Route
	err := r.DB.Where("is_recommended = ?", true).
		Order("is_hot DESC, created_at DESC").Limit(limit).Find(&routes).Error
	return routes, err
}

// LockForBooking reads the route row under an exclusive lock held until the
// surrounding transaction commits.
func (r *RouteRepository) LockForBooking(tx *gorm.DB, id uint) (*entity.Route, error) {
	var route entity.Route
	err := forUpdate(tx).First(&route, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &route, nil
}

// ConsumeCapacity bumps sales_count by qty with a single conditional
// database-side increment. Zero rows affected means the booking would
// overshoot group_size; nothing is written in that case.
func (r *RouteRepository) ConsumeCapacity(tx *gorm.DB, id uint, qty uint) (bool, error) {
	res := tx.Model(&entity.Route{}).
		Where("id = ? AND sales_count + ? <= group_size", id, qty).
		Update("sales_count", gorm.Expr("sales_count + ?", qty))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
