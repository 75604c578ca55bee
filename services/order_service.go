package services

import (
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"tourism-backend/entity"
	"tourism-backend/pkg/apperr"
	"tourism-backend/repository"
)

type OrderService struct {
	DB         *gorm.DB
	Repo       *repository.OrderRepository
	ScenicRepo *repository.ScenicRepository
	RouteRepo  *repository.RouteRepository
	HotelRepo  *repository.HotelRepository
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	scenicRepo *repository.ScenicRepository,
	routeRepo *repository.RouteRepository,
	hotelRepo *repository.HotelRepository,
) *OrderService {
	return &OrderService{
		DB:         db,
		Repo:       repo,
		ScenicRepo: scenicRepo,
		RouteRepo:  routeRepo,
		HotelRepo:  hotelRepo,
	}
}

// ----- DTOs from Controller -----

type CreateOrderReq struct {
	ItemType     string `json:"itemType" binding:"required,oneof=scenic route hotel"`
	ItemID       uint   `json:"itemId" binding:"required"`
	Quantity     uint   `json:"quantity" binding:"required,min=1"`
	ContactName  string `json:"contactName" binding:"required"`
	ContactPhone string `json:"contactPhone" binding:"required"`

	// hotel bookings only
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
	RoomTypeID   *uint  `json:"roomTypeId"`
}

type CreateOrderRes struct {
	OrderSN     string          `json:"orderSn"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

const dateLayout = "2006-01-02"

// Create runs the whole order creation inside one transaction. Validation
// happens before any row lock; every failure rolls the transaction back so
// no partial order is ever persisted.
func (s *OrderService) Create(userID uint, req *CreateOrderReq) (*CreateOrderRes, error) {
	if req.Quantity < 1 {
		return nil, apperr.Validationf("quantity must be at least 1")
	}
	if strings.TrimSpace(req.ContactName) == "" || strings.TrimSpace(req.ContactPhone) == "" {
		return nil, apperr.Validationf("contact name and phone are required")
	}

	var checkIn, checkOut time.Time
	if req.ItemType == entity.ItemTypeHotel {
		var err error
		checkIn, err = time.Parse(dateLayout, req.CheckInDate)
		if err != nil {
			return nil, apperr.Validationf("invalid check-in date")
		}
		checkOut, err = time.Parse(dateLayout, req.CheckOutDate)
		if err != nil {
			return nil, apperr.Validationf("invalid check-out date")
		}
		if !checkOut.After(checkIn) {
			return nil, apperr.Validationf("check-out must be after check-in")
		}
	}

	var out CreateOrderRes
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		qty := decimal.NewFromInt(int64(req.Quantity))

		var (
			itemName string
			price    decimal.Decimal
			subtotal decimal.Decimal
			detail   entity.OrderDetail
		)

		switch req.ItemType {
		case entity.ItemTypeScenic:
			// tickets are unlimited, no lock and no capacity check
			spot, err := s.ScenicRepo.GetSpot(req.ItemID)
			if err != nil {
				return err
			}
			itemName = spot.Name
			price = spot.TicketPrice
			subtotal = price.Mul(qty)

		case entity.ItemTypeRoute:
			route, err := s.RouteRepo.LockForBooking(tx, req.ItemID)
			if err != nil {
				return err
			}
			if uint(req.Quantity) > route.Remaining() {
				return apperr.ErrCapacity
			}
			ok, err := s.RouteRepo.ConsumeCapacity(tx, route.ID, req.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				return apperr.ErrCapacity
			}
			itemName = route.Name
			price = route.Price
			subtotal = price.Mul(qty)

		case entity.ItemTypeHotel:
			hotel, err := s.HotelRepo.LockForBooking(tx, req.ItemID)
			if err != nil {
				return err
			}
			var room *entity.RoomType
			if req.RoomTypeID != nil {
				room, err = s.HotelRepo.LockRoomType(tx, hotel.ID, *req.RoomTypeID)
			} else {
				room, err = s.HotelRepo.LockCheapestRoomType(tx, hotel.ID)
			}
			if err != nil {
				return err
			}
			nights := int64(checkOut.Sub(checkIn) / (24 * time.Hour))
			itemName = hotel.Name + " " + room.Name
			price = room.Price
			subtotal = price.Mul(decimal.NewFromInt(nights)).Mul(qty)
			detail.RoomTypeID = &room.ID
			detail.CheckInDate = &checkIn
			detail.CheckOutDate = &checkOut

		default:
			return apperr.Validationf("unknown item type %q", req.ItemType)
		}

		sn, err := s.newOrderSN(tx)
		if err != nil {
			return err
		}

		order := entity.Order{
			OrderSN:      sn,
			UserID:       userID,
			TotalAmount:  subtotal,
			Status:       entity.OrderStatusPending,
			ContactName:  req.ContactName,
			ContactPhone: req.ContactPhone,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		detail.OrderID = order.ID
		detail.ItemType = req.ItemType
		detail.ItemID = req.ItemID
		detail.ItemName = itemName
		detail.Price = price
		detail.Quantity = req.Quantity
		detail.Subtotal = subtotal
		if err := s.Repo.CreateDetail(tx, &detail); err != nil {
			return err
		}

		out = CreateOrderRes{OrderSN: sn, TotalAmount: subtotal}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Pay confirms payment for the user's order. The transition is idempotent:
// a confirmation that arrives after the order already left pending is a
// no-op success, so duplicate callbacks never double-fire side effects.
func (s *OrderService) Pay(userID uint, orderSN string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.LockBySN(tx, orderSN)
		if err != nil {
			return err
		}
		if o.UserID != userID {
			return apperr.ErrForbidden
		}
		_, err = s.Repo.MarkPaidGuard(tx, orderSN, time.Now())
		return err
	})
}

// Cancel moves a pending order to cancelled. Consumed route capacity stays
// consumed, matching how the product has always handled cancellations.
func (s *OrderService) Cancel(userID uint, orderSN string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.LockBySN(tx, orderSN)
		if err != nil {
			return err
		}
		if o.UserID != userID {
			return apperr.ErrForbidden
		}
		if o.Status != entity.OrderStatusPending {
			return apperr.ErrOrderState
		}
		affected, err := s.Repo.UpdateStatusGuard(tx, orderSN, entity.OrderStatusPending, entity.OrderStatusCancelled)
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperr.ErrOrderState
		}
		return nil
	})
}

// Complete is the staff-side paid→completed transition.
func (s *OrderService) Complete(orderSN string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := s.Repo.LockBySN(tx, orderSN); err != nil {
			return err
		}
		affected, err := s.Repo.UpdateStatusGuard(tx, orderSN, entity.OrderStatusPaid, entity.OrderStatusCompleted)
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperr.ErrOrderState
		}
		return nil
	})
}

// ----- List & Detail -----

func (s *OrderService) ListForUser(userID uint, status string, page, limit int) ([]repository.OrderSummary, int64, error) {
	return s.Repo.ListForUser(userID, status, page, limit)
}

type OrderDetailOut struct {
	OrderSN      string               `json:"orderSn"`
	TotalAmount  decimal.Decimal      `json:"totalAmount"`
	Status       string               `json:"status"`
	ContactName  string               `json:"contactName"`
	ContactPhone string               `json:"contactPhone"`
	CreatedAt    time.Time            `json:"createdAt"`
	PaidAt       *time.Time           `json:"paidAt,omitempty"`
	Details      []entity.OrderDetail `json:"details"`
}

func (s *OrderService) DetailForUser(userID uint, orderSN string) (*OrderDetailOut, error) {
	o, err := s.Repo.GetBySN(orderSN)
	if err != nil {
		return nil, err
	}
	if o.UserID != userID {
		return nil, apperr.ErrForbidden
	}
	details, err := s.Repo.GetDetails(o.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetailOut{
		OrderSN:      o.OrderSN,
		TotalAmount:  o.TotalAmount,
		Status:       o.Status,
		ContactName:  o.ContactName,
		ContactPhone: o.ContactPhone,
		CreatedAt:    o.CreatedAt,
		PaidAt:       o.PaidAt,
		Details:      details,
	}, nil
}

// ----- Order number generation -----

const (
	snPrefix      = "BD"
	snTimeLayout  = "20060102150405"
	maxSNAttempts = 3
)

// newOrderSN builds a human-readable unique order number: prefix + second
// granularity timestamp + 6 random digits. The uniqueness check against
// persisted orders retries a bounded number of times; after that the suffix
// comes from a UUID so the loop always terminates. The unique index on
// order_sn stays as the last line of defense.
func (s *OrderService) newOrderSN(tx *gorm.DB) (string, error) {
	return s.newOrderSNAt(tx, time.Now(), randomDigits)
}

func (s *OrderService) newOrderSNAt(tx *gorm.DB, now time.Time, digits func(int) string) (string, error) {
	base := snPrefix + now.Format(snTimeLayout)
	for i := 0; i < maxSNAttempts; i++ {
		sn := base + digits(6)
		exists, err := s.Repo.SNExists(tx, sn)
		if err != nil {
			return "", err
		}
		if !exists {
			return sn, nil
		}
	}
	return base + strings.ReplaceAll(uuid.NewString(), "-", ""), nil
}

func randomDigits(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte('0' + rand.Intn(10))
	}
	return string(b)
}
