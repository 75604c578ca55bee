package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Hotel struct {
	gorm.Model
	Name        string `gorm:"size:100;index" json:"name"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Brief       string `gorm:"size:255" json:"brief"`
	Description string `json:"description"`
	CoverImage  string `json:"coverImage"`

	IsRecommended bool `gorm:"default:false" json:"isRecommended"`

	Rating       decimal.Decimal  `gorm:"type:decimal(3,1);default:5.0" json:"rating"`
	ViewsCount   uint             `gorm:"default:0" json:"viewsCount"`
	Latitude     *decimal.Decimal `gorm:"type:decimal(10,7)" json:"latitude"`
	Longitude    *decimal.Decimal `gorm:"type:decimal(10,7)" json:"longitude"`
	DisplayOrder uint             `gorm:"default:0" json:"displayOrder"`

	RoomTypes []RoomType `gorm:"foreignKey:HotelID" json:"-"`
}

type RoomType struct {
	gorm.Model
	HotelID uint  `gorm:"index" json:"hotelId"`
	Hotel   Hotel `json:"-"`

	Name        string          `gorm:"size:100" json:"name"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	Capacity    uint            `json:"capacity"`
	Description string          `json:"description"`
	// RemainingCount is tracked but not decremented at booking time, matching
	// the original product behavior (hotel capacity treated as unlimited).
	RemainingCount uint   `gorm:"default:0" json:"remainingCount"`
	IsAvailable    bool   `gorm:"default:true" json:"isAvailable"`
	CoverImage     string `json:"coverImage"`
}
