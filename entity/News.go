package entity

import (
	"gorm.io/gorm"
)

type NewsCategory struct {
	gorm.Model
	Name string `json:"name"`

	News []News `gorm:"foreignKey:CategoryID" json:"-"`
}

type News struct {
	gorm.Model
	CategoryID *uint         `json:"categoryId"`
	Category   *NewsCategory `json:"-"`

	Title      string `gorm:"size:200;index" json:"title"`
	Abstract   string `gorm:"size:255" json:"abstract"`
	Content    string `json:"content"`
	CoverImage string `json:"coverImage"`
	ViewsCount uint   `gorm:"default:0" json:"viewsCount"`

	AuthorID *uint `json:"authorId"`
	Author   *User `json:"-"`
}
