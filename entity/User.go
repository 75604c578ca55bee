package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Nickname string `json:"nickname"`
	Phone    string `gorm:"size:11" json:"phone"`
	Avatar   string `json:"avatar"`
	Role     string `gorm:"not null;default:user" json:"role"` // user | staff

	// Relations — preload only when needed
	Orders      []Order     `json:"-"`
	Favorites   []Favorite  `json:"-"`
	Comments    []Comment   `json:"-"`
	CheckIns    []CheckIn   `json:"-"`
	PlanQueries []PlanQuery `json:"-"`
}
