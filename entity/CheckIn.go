package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CheckIn struct {
	gorm.Model
	UserID uint `gorm:"index:idx_checkin_user" json:"userId"`
	User   User `json:"-"`

	ScenicSpotID uint       `gorm:"index:idx_checkin_spot" json:"scenicSpotId"`
	ScenicSpot   ScenicSpot `json:"-"`

	CheckinTime time.Time        `gorm:"index:idx_checkin_user;index:idx_checkin_spot" json:"checkinTime"`
	MainPhoto   string           `json:"mainPhoto"`
	Latitude    *decimal.Decimal `gorm:"type:decimal(10,7)" json:"latitude"`
	Longitude   *decimal.Decimal `gorm:"type:decimal(10,7)" json:"longitude"`
	Notes       string           `json:"notes"`
	IsPublic    bool             `gorm:"default:true" json:"isPublic"`

	Photos []CheckInPhoto `gorm:"foreignKey:CheckInID" json:"photos,omitempty"`
}

type CheckInPhoto struct {
	gorm.Model
	CheckInID uint    `json:"checkinId"`
	CheckIn   CheckIn `json:"-"`
	Photo     string  `json:"photo"`
	Order     uint    `gorm:"column:sort_order;default:0" json:"order"`
}
