package entity

import (
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ScenicCategory struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description"`

	Spots []ScenicSpot `gorm:"foreignKey:CategoryID" json:"-"`
}

type ScenicSpot struct {
	gorm.Model
	CategoryID *uint           `json:"categoryId"`
	Category   *ScenicCategory `json:"-"`

	Name        string          `gorm:"size:100;index" json:"name"`
	Address     string          `json:"address"`
	TicketPrice decimal.Decimal `gorm:"type:decimal(10,2)" json:"ticketPrice"`
	OpenTime    string          `json:"openTime"`
	Description string          `json:"description"`
	CoverImage  string          `json:"coverImage"`

	IsHot         bool `gorm:"default:false" json:"isHot"`
	IsRecommended bool `gorm:"default:false" json:"isRecommended"`

	Rating        decimal.Decimal `gorm:"type:decimal(3,1);default:5.0" json:"rating"`
	Phone         string          `json:"phone"`
	TrafficInfo   string          `json:"trafficInfo"`
	BestSeason    string          `json:"bestSeason"`
	VisitDuration string          `json:"visitDuration"`
	Tags          string          `gorm:"size:200" json:"tags"` // comma separated
	ViewsCount    uint            `gorm:"default:0" json:"viewsCount"`
	Latitude      *decimal.Decimal `gorm:"type:decimal(10,7)" json:"latitude"`
	Longitude     *decimal.Decimal `gorm:"type:decimal(10,7)" json:"longitude"`
	DisplayOrder  uint            `gorm:"default:0" json:"displayOrder"` // smaller sorts first

	Images   []ScenicImage `gorm:"foreignKey:SpotID" json:"-"`
	CheckIns []CheckIn     `gorm:"foreignKey:ScenicSpotID" json:"-"`
}

// TagList splits the comma separated Tags column.
func (s *ScenicSpot) TagList() []string {
	if s.Tags == "" {
		return nil
	}
	parts := strings.Split(s.Tags, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

type ScenicImage struct {
	gorm.Model
	SpotID uint       `json:"spotId"`
	Spot   ScenicSpot `json:"-"`
	Image  string     `json:"image"`
	Order  uint       `gorm:"column:sort_order;default:0" json:"order"`
}
