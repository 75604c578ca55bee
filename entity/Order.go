package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order statuses. Transitions: pending→paid→completed, pending→cancelled.
const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// OrderDetail item types.
const (
	ItemTypeScenic = "scenic"
	ItemTypeRoute  = "route"
	ItemTypeHotel  = "hotel"
)

type Order struct {
	gorm.Model
	OrderSN     string          `gorm:"size:50;uniqueIndex" json:"orderSn"`
	UserID      uint            `gorm:"index" json:"userId"`
	User        User            `json:"-"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2)" json:"totalAmount"`
	Status      string          `gorm:"size:10;default:pending;index" json:"status"`

	ContactName  string `gorm:"size:50" json:"contactName"`
	ContactPhone string `gorm:"size:11" json:"contactPhone"`

	PaidAt *time.Time `json:"paidAt,omitempty"`

	Details []OrderDetail `gorm:"foreignKey:OrderID" json:"-"`
}

// OrderDetail is a denormalized snapshot of one purchased item, so later
// catalog edits never change what the customer bought.
type OrderDetail struct {
	gorm.Model
	OrderID uint  `gorm:"index" json:"orderId"`
	Order   Order `json:"-"`

	ItemType string `gorm:"size:10" json:"itemType"` // scenic | route | hotel
	ItemID   uint   `json:"itemId"`

	ItemName string          `gorm:"size:100" json:"itemName"`
	Price    decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	Quantity uint            `gorm:"default:1" json:"quantity"`
	Subtotal decimal.Decimal `gorm:"type:decimal(10,2)" json:"subtotal"`

	// hotel bookings only
	RoomTypeID   *uint      `json:"roomTypeId,omitempty"`
	CheckInDate  *time.Time `json:"checkInDate,omitempty"`
	CheckOutDate *time.Time `json:"checkOutDate,omitempty"`
}
