package entity

import (
	"gorm.io/gorm"
)

// Assistant query types.
const (
	PlanTypeRoute     = "route"
	PlanTypeTransport = "transport"
	PlanTypeStrategy  = "strategy"
	PlanTypeGeneral   = "general"
)

// PlanQuery logs one assistant request and the generated plan texts.
type PlanQuery struct {
	gorm.Model
	UserID *uint `gorm:"index" json:"userId"` // nil for anonymous queries
	User   *User `json:"-"`

	QueryType   string `gorm:"size:20;default:general" json:"queryType"`
	ScenicSpots string `json:"scenicSpots"` // JSON array of requested names
	UserInput   string `json:"userInput"`

	RoutePlan     string `json:"routePlan"`
	TransportPlan string `json:"transportPlan"`
	StrategyPlan  string `json:"strategyPlan"`
	FullResponse  string `json:"fullResponse"`

	IsFavorite bool `gorm:"default:false" json:"isFavorite"`
}
