package repository

import (
	"errors"

	"gorm.io/gorm"

	"tourism-backend/entity"
	"tourism-backend/pkg/apperr"
)

type CheckInRepository struct {
	DB *gorm.DB
}

func NewCheckInRepository(db *gorm.DB) *CheckInRepository {
	return &CheckInRepository{DB: db}
}

// Create stores the check-in and its extra photos in one transaction.
func (r *CheckInRepository) Create(ci *entity.CheckIn, photos []string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(ci).Error; err != nil {
			return err
		}
		for i, p := range photos {
			photo := entity.CheckInPhoto{CheckInID: ci.ID, Photo: p, Order: uint(i)}
			if err := tx.Create(&photo).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *CheckInRepository) Get(id uint) (*entity.CheckIn, error) {
	var ci entity.CheckIn
	err := r.DB.Preload("Photos", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order")
	}).First(&ci, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ci, nil
}

// ListPublicBySpot returns the public feed for one scenic spot.
func (r *CheckInRepository) ListPublicBySpot(spotID uint, page, limit int) ([]entity.CheckIn, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	base := r.DB.Model(&entity.CheckIn{}).
		Where("scenic_spot_id = ? AND is_public = ?", spotID, true)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []entity.CheckIn
	err := base.Preload("Photos").
		Order("checkin_time DESC").
		Limit(limit).Offset((page - 1) * limit).
		Find(&out).Error
	return out, total, err
}

func (r *CheckInRepository) ListForUser(userID uint, page, limit int) ([]entity.CheckIn, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	base := r.DB.Model(&entity.CheckIn{}).Where("user_id = ?", userID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []entity.CheckIn
	err := base.Preload("Photos").
		Order("checkin_time DESC").
		Limit(limit).Offset((page - 1) * limit).
		Find(&out).Error
	return out, total, err
}

func (r *CheckInRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.CheckIn{}, id).Error
}

// SpotLeaderboard counts public check-ins per spot for the home endpoint.
type SpotCheckInCount struct {
	ScenicSpotID uint   `json:"scenicSpotId"`
	SpotName     string `json:"spotName"`
	Count        int64  `json:"count"`
}

func (r *CheckInRepository) SpotLeaderboard(limit int) ([]SpotCheckInCount, error) {
	var rows []SpotCheckInCount
	err := r.DB.Table("check_ins AS ci").
		Select("ci.scenic_spot_id, s.name AS spot_name, COUNT(*) AS count").
		Joins("JOIN scenic_spots s ON s.id = ci.scenic_spot_id").
		Where("ci.is_public = ? AND ci.deleted_at IS NULL", true).
		Group("ci.scenic_spot_id, s.name").
		Order("count DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
