package entity

import (
	"gorm.io/gorm"
)

// Comment is a review against any catalog entry, addressed by type + raw id
// like Favorite. Soft deleted rows stay for moderation audit.
type Comment struct {
	gorm.Model
	UserID uint `json:"userId"`
	User   User `json:"-"`

	TargetType string `gorm:"size:20;index:idx_comment_target" json:"targetType"` // scenic | route | hotel | food | news
	TargetID   uint   `gorm:"index:idx_comment_target" json:"targetId"`

	Content   string `json:"content"`
	Rating    uint   `gorm:"default:5" json:"rating"` // 1..5
	Images    string `json:"images"`                  // comma separated paths
	IsDeleted bool   `gorm:"default:false" json:"-"`
}
