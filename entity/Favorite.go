package entity

import (
	"gorm.io/gorm"
)

// Favorite points at one of several unrelated catalogs by type + raw id.
type Favorite struct {
	gorm.Model
	UserID     uint   `gorm:"uniqueIndex:idx_fav_user_target" json:"userId"`
	User       User   `json:"-"`
	TargetType string `gorm:"size:10;uniqueIndex:idx_fav_user_target" json:"targetType"` // scenic | route | hotel | food | news
	TargetID   uint   `gorm:"uniqueIndex:idx_fav_user_target" json:"targetId"`
}
