package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type FoodCategory struct {
	gorm.Model
	Name         string `json:"name"`
	Description  string `json:"description"`
	Icon         string `gorm:"size:50" json:"icon"` // Font Awesome class name
	DisplayOrder uint   `gorm:"default:0" json:"displayOrder"`

	Foods []Food `gorm:"foreignKey:CategoryID" json:"-"`
}

type Food struct {
	gorm.Model
	CategoryID *uint         `json:"categoryId"`
	Category   *FoodCategory `json:"-"`

	Name               string `gorm:"size:100;index" json:"name"`
	EnglishName        string `gorm:"size:100" json:"englishName"`
	Description        string `json:"description"`
	Ingredients        string `json:"ingredients"`
	CookingMethod      string `json:"cookingMethod"`
	CulturalBackground string `json:"culturalBackground"`
	CoverImage         string `json:"coverImage"`

	PriceRange   string           `gorm:"size:50" json:"priceRange"`
	AveragePrice *decimal.Decimal `gorm:"type:decimal(10,2)" json:"averagePrice"`

	IsRecommended bool `gorm:"default:false" json:"isRecommended"`
	IsHot         bool `gorm:"default:false" json:"isHot"`
	IsTraditional bool `gorm:"default:false" json:"isTraditional"`

	Rating                 decimal.Decimal `gorm:"type:decimal(3,1);default:5.0" json:"rating"`
	ViewsCount             uint            `gorm:"default:0" json:"viewsCount"`
	Tags                   string          `gorm:"size:200" json:"tags"`
	RecommendedRestaurants string          `json:"recommendedRestaurants"` // newline separated
	DisplayOrder           uint            `gorm:"default:0" json:"displayOrder"`

	Images []FoodImage `gorm:"foreignKey:FoodID" json:"-"`
}

type FoodImage struct {
	gorm.Model
	FoodID      uint   `json:"foodId"`
	Food        Food   `json:"-"`
	Image       string `json:"image"`
	Description string `gorm:"size:200" json:"description"`
	Order       uint   `gorm:"column:sort_order;default:0" json:"order"`
}
