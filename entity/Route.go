package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type RouteCategory struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description"`

	Routes []Route `gorm:"foreignKey:CategoryID" json:"-"`
}

// Route is a multi-day guided tour with a fixed group-size capacity.
// SalesCount must never exceed GroupSize; bookings bump it with a
// conditional database-side increment, never load-then-store.
type Route struct {
	gorm.Model
	CategoryID *uint          `json:"categoryId"`
	Category   *RouteCategory `json:"-"`

	Name       string          `gorm:"size:100;index" json:"name"`
	Price      decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	Days       uint            `gorm:"default:1" json:"days"`
	GroupSize  uint            `gorm:"default:10" json:"groupSize"`
	SalesCount uint            `gorm:"default:0" json:"salesCount"`
	Deadline   time.Time       `json:"deadline"`

	CoverImage string `json:"coverImage"`

	ItinerarySummary string `json:"itinerarySummary"`
	CostInclude      string `json:"costInclude"`
	CostExclude      string `json:"costExclude"`
	Notes            string `json:"notes"`

	IsHot         bool `gorm:"default:false" json:"isHot"`
	IsRecommended bool `gorm:"default:false" json:"isRecommended"`

	Itineraries []RouteItinerary `gorm:"foreignKey:RouteID" json:"-"`
}

// Remaining bookable slots.
func (r *Route) Remaining() uint {
	if r.SalesCount >= r.GroupSize {
		return 0
	}
	return r.GroupSize - r.SalesCount
}

type RouteItinerary struct {
	gorm.Model
	RouteID     uint   `json:"routeId"`
	Route       Route  `json:"-"`
	DayNumber   uint   `json:"dayNumber"`
	Title       string `gorm:"size:200" json:"title"`
	Description string `json:"description"`
}
