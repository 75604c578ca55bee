package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"tourism-backend/entity"
	"tourism-backend/pkg/apperr"
)

type HotelRepository struct {
	DB *gorm.DB
}

func NewHotelRepository(db *gorm.DB) *HotelRepository {
	return &HotelRepository{DB: db}
}

type HotelListParams struct {
	Keyword string
	Sort    string // rating | views | "" (default ordering)
	Page    int
	Limit   int
}

func (r *HotelRepository) List(p HotelListParams) ([]entity.Hotel, int64, error) {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Limit <= 0 || p.Limit > 100 {
		p.Limit = 12
	}

	q := r.DB.Model(&entity.Hotel{})
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
		q = q.Order("display_order ASC, is_recommended DESC, rating DESC, created_at DESC")
	}

	var hotels []entity.Hotel
	err := q.Limit(p.Limit).Offset((p.Page - 1) * p.Limit).Find(&hotels).Error
	return hotels, total, err
}

func (r *HotelRepository) Get(id uint) (*entity.Hotel, error) {
	var h entity.Hotel
	err := r.DB.Preload("RoomTypes", func(db *gorm.DB) *gorm.DB {
		return db.Order("price ASC")
	}).First(&h, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *HotelRepository) IncrementViews(id uint) error {
	return r.DB.Model(&entity.Hotel{}).Where("id = ?", id).
		Update("views_count", gorm.Expr("views_count + 1")).Error
}

func (r *HotelRepository) Recommended(limit int) ([]entity.Hotel, error) {
	var hotels []entity.Hotel
	err := r.DB.Where("is_recommended = ?", true).
		Order("display_order ASC, rating DESC").Limit(limit).Find(&hotels).Error
	return hotels, err
}

// LockForBooking locks the hotel row so concurrent bookings against the same
// hotel serialize on the database.
func (r *HotelRepository) LockForBooking(tx *gorm.DB, id uint) (*entity.Hotel, error) {
	var h entity.Hotel
	err := forUpdate(tx).First(&h, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// LockRoomType locks one available room type of the hotel.
func (r *HotelRepository) LockRoomType(tx *gorm.DB, hotelID, roomTypeID uint) (*entity.RoomType, error) {
	var rt entity.RoomType
	err := forUpdate(tx).
		Where("id = ? AND hotel_id = ? AND is_available = ?", roomTypeID, hotelID, true).
		First(&rt).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rt, nil
}

// LockCheapestRoomType picks the cheapest available room type when the
// booking does not name one.
func (r *HotelRepository) LockCheapestRoomType(tx *gorm.DB, hotelID uint) (*entity.RoomType, error) {
	var rt entity.RoomType
	err := forUpdate(tx).
		Where("hotel_id = ? AND is_available = ?", hotelID, true).
		Order("price ASC").
		First(&rt).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rt, nil
}

func (r *HotelRepository) UpdateRating(id uint, rating string) error {
	return r.DB.Model(&entity.Hotel{}).Where("id = ?", id).
		Update("rating", rating).Error
}
