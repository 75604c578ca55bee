package repository

import (
	"errors"

	"gorm.io/gorm"

	"tourism-backend/entity"
	"tourism-backend/pkg/apperr"
)

type PlanRepository struct {
	DB *gorm.DB
}

func NewPlanRepository(db *gorm.DB) *PlanRepository {
	return &PlanRepository{DB: db}
}

func (r *PlanRepository) Create(q *entity.PlanQuery) error {
	return r.DB.Create(q).Error
}

func (r *PlanRepository) GetForUser(userID, id uint) (*entity.PlanQuery, error) {
	var q entity.PlanQuery
	err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&q).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *PlanRepository) ListForUser(userID uint, limit int) ([]entity.PlanQuery, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	var out []entity.PlanQuery
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at DESC").Limit(limit).Find(&out).Error
	return out, err
}

func (r *PlanRepository) SetFavorite(userID, id uint, fav bool) (int64, error) {
	res := r.DB.Model(&entity.PlanQuery{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_favorite", fav)
	return res.RowsAffected, res.Error
}
