package services

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"tourism-backend/entity"
	"tourism-backend/pkg/apperr"
	"tourism-backend/repository"
)

type OrderServiceTestSuite struct {
	suite.Suite
	db  *gorm.DB
	svc *OrderService

	user   entity.User
	other  entity.User
	spot   entity.ScenicSpot
	route  entity.Route
	hotel  entity.Hotel
	room   entity.RoomType
	deluxe entity.RoomType
}

func TestOrderServiceSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}

func (s *OrderServiceTestSuite) SetupTest() {
	s.db = openTestDB(s.T())
	s.svc = NewOrderService(
		s.db,
		repository.NewOrderRepository(s.db),
		repository.NewScenicRepository(s.db),
		repository.NewRouteRepository(s.db),
		repository.NewHotelRepository(s.db),
	)

	s.user = entity.User{Email: "user@example.com", Nickname: "游客小张", Role: "user"}
	s.other = entity.User{Email: "other@example.com", Nickname: "游客小李", Role: "user"}
	require.NoError(s.T(), s.db.Create(&s.user).Error)
	require.NoError(s.T(), s.db.Create(&s.other).Error)

	s.spot = entity.ScenicSpot{Name: "白石山", TicketPrice: decimal.NewFromInt(120)}
	require.NoError(s.T(), s.db.Create(&s.spot).Error)

	s.route = entity.Route{Name: "野三坡两日游", Price: decimal.NewFromInt(388), Days: 2, GroupSize: 5}
	require.NoError(s.T(), s.db.Create(&s.route).Error)

	s.hotel = entity.Hotel{Name: "云栖山居"}
	require.NoError(s.T(), s.db.Create(&s.hotel).Error)
	s.room = entity.RoomType{HotelID: s.hotel.ID, Name: "山景大床房", Price: decimal.NewFromInt(300), IsAvailable: true}
	s.deluxe = entity.RoomType{HotelID: s.hotel.ID, Name: "豪华套房", Price: decimal.NewFromInt(500), IsAvailable: true}
	require.NoError(s.T(), s.db.Create(&s.room).Error)
	require.NoError(s.T(), s.db.Create(&s.deluxe).Error)
}

func (s *OrderServiceTestSuite) createScenicOrder() string {
	res, err := s.svc.Create(s.user.ID, &CreateOrderReq{
		ItemType: entity.ItemTypeScenic, ItemID: s.spot.ID, Quantity: 2,
		ContactName: "张三", ContactPhone: "13800000000",
	})
	require.NoError(s.T(), err)
	return res.OrderSN
}

func (s *OrderServiceTestSuite) orderCount() int64 {
	var n int64
	require.NoError(s.T(), s.db.Model(&entity.Order{}).Count(&n).Error)
	return n
}

func (s *OrderServiceTestSuite) TestScenicOrder() {
	res, err := s.svc.Create(s.user.ID, &CreateOrderReq{
		ItemType: entity.ItemTypeScenic, ItemID: s.spot.ID, Quantity: 2,
		ContactName: "张三", ContactPhone: "13800000000",
	})
	require.NoError(s.T(), err)
	require.True(s.T(), strings.HasPrefix(res.OrderSN, "BD"))
	require.Len(s.T(), res.OrderSN, 22)
	require.True(s.T(), res.TotalAmount.Equal(decimal.NewFromInt(240)))

	out, err := s.svc.DetailForUser(s.user.ID, res.OrderSN)
	require.NoError(s.T(), err)
	require.Equal(s.T(), entity.OrderStatusPending, out.Status)
	require.Len(s.T(), out.Details, 1)
	require.Equal(s.T(), "白石山", out.Details[0].ItemName)
	require.True(s.T(), out.Details[0].Price.Equal(decimal.NewFromInt(120)))
	require.Equal(s.T(), uint(2), out.Details[0].Quantity)
}

func (s *OrderServiceTestSuite) TestRouteOrderConsumesCapacity() {
	res, err := s.svc.Create(s.user.ID, &CreateOrderReq{
		ItemType: entity.ItemTypeRoute, ItemID: s.route.ID, Quantity: 3,
		ContactName: "张三", ContactPhone: "13800000000",
	})
	require.NoError(s.T(), err)
	require.True(s.T(), res.TotalAmount.Equal(decimal.NewFromInt(1164)))

	var route entity.Route
	require.NoError(s.T(), s.db.First(&route, s.route.ID).Error)
	require.Equal(s.T(), uint(3), route.SalesCount)
	require.Equal(s.T(), uint(2), route.Remaining())
}

func (s *OrderServiceTestSuite) TestRouteOverbookRejected() {
	_, err := s.svc.Create(s.user.ID, &CreateOrderReq{
		ItemType: entity.ItemTypeRoute, ItemID: s.route.ID, Quantity: 6,
		ContactName: "张三", ContactPhone: "13800000000",
	})
	require.ErrorIs(s.T(), err, apperr.ErrCapacity)

	// the rejected booking must leave nothing behind
	require.EqualValues(s.T(), 0, s.orderCount())
	var route entity.Route
	require.NoError(s.T(), s.db.First(&route, s.route.ID).Error)
	require.Equal(s.T(), uint(0), route.SalesCount)
}

// Eight concurrent bookings against five remaining slots: exactly five
// succeed, the rest fail with the capacity error, and sales_count never
// exceeds group_size.
func (s *OrderServiceTestSuite) TestRouteConcurrentBookings() {
	const workers = 8

	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.svc.Create(s.user.ID, &CreateOrderReq{
				ItemType: entity.ItemTypeRoute, ItemID: s.route.ID, Quantity: 1,
				ContactName: "张三", ContactPhone: "13800000000",
			})
		}(i)
	}
	wg.Wait()

	var ok, capacity int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, apperr.ErrCapacity):
			capacity++
		default:
			s.T().Fatalf("unexpected error: %v", err)
		}
	}
	require.Equal(s.T(), 5, ok)
	require.Equal(s.T(), 3, capacity)

	var route entity.Route
	require.NoError(s.T(), s.db.First(&route, s.route.ID).Error)
	require.Equal(s.T(), uint(5), route.SalesCount)
	require.EqualValues(s.T(), 5, s.orderCount())
}

func (s *OrderServiceTestSuite) TestHotelNightsPricing() {
	res, err := s.svc.Create(s.user.ID, &CreateOrderReq{
		ItemType: entity.ItemTypeHotel, ItemID: s.hotel.ID, Quantity: 1,
		ContactName: "张三", ContactPhone: "13800000000",
		CheckInDate: "2025-01-01", CheckOutDate: "2025-01-03",
		RoomTypeID: &s.room.ID,
	})
	require.NoError(s.T(), err)
	// two nights at 300
	require.True(s.T(), res.TotalAmount.Equal(decimal.NewFromInt(600)))

	out, err := s.svc.DetailForUser(s.user.ID, res.OrderSN)
	require.NoError(s.T(), err)
	d := out.Details[0]
	require.NotNil(s.T(), d.RoomTypeID)
	require.Equal(s.T(), s.room.ID, *d.RoomTypeID)
	require.NotNil(s.T(), d.CheckInDate)
	require.NotNil(s.T(), d.CheckOutDate)
	require.Equal(s.T(), "云栖山居 山景大床房", d.ItemName)
}

func (s *OrderServiceTestSuite) TestHotelDefaultsToCheapestRoom() {
	res, err := s.svc.Create(s.user.ID, &CreateOrderReq{
		ItemType: entity.ItemTypeHotel, ItemID: s.hotel.ID, Quantity: 1,
		ContactName: "张三", ContactPhone: "13800000000",
		CheckInDate: "2025-01-01", CheckOutDate: "2025-01-02",
	})
	require.NoError(s.T(), err)
	require.True(s.T(), res.TotalAmount.Equal(decimal.NewFromInt(300)))
}

func (s *OrderServiceTestSuite) TestHotelDateValidation() {
	cases := []struct{ in, out string }{
		{"2025-01-03", "2025-01-01"}, // checkout before checkin
		{"2025-01-01", "2025-01-01"}, // zero nights
		{"01/01/2025", "2025-01-02"}, // malformed
		{"", "2025-01-02"},           // missing
	}
	for _, tc := range cases {
		_, err := s.svc.Create(s.user.ID, &CreateOrderReq{
			ItemType: entity.ItemTypeHotel, ItemID: s.hotel.ID, Quantity: 1,
			ContactName: "张三", ContactPhone: "13800000000",
			CheckInDate: tc.in, CheckOutDate: tc.out,
		})
		require.ErrorIs(s.T(), err, apperr.ErrValidation, "checkIn=%q checkOut=%q", tc.in, tc.out)
	}
	require.EqualValues(s.T(), 0, s.orderCount())
}

func (s *OrderServiceTestSuite) TestPayIsIdempotent() {
	sn := s.createScenicOrder()

	require.NoError(s.T(), s.svc.Pay(s.user.ID, sn))

	var first entity.Order
	require.NoError(s.T(), s.db.Where("order_sn = ?", sn).First(&first).Error)
	require.Equal(s.T(), entity.OrderStatusPaid, first.Status)
	require.NotNil(s.T(), first.PaidAt)

	// second confirmation is a no-op success
	require.NoError(s.T(), s.svc.Pay(s.user.ID, sn))

	var second entity.Order
	require.NoError(s.T(), s.db.Where("order_sn = ?", sn).First(&second).Error)
	require.Equal(s.T(), entity.OrderStatusPaid, second.Status)
	require.True(s.T(), first.PaidAt.Equal(*second.PaidAt))
}

func (s *OrderServiceTestSuite) TestPayOwnership() {
	sn := s.createScenicOrder()
	require.ErrorIs(s.T(), s.svc.Pay(s.other.ID, sn), apperr.ErrForbidden)
	require.ErrorIs(s.T(), s.svc.Pay(s.user.ID, "BD00000000000000000000"), apperr.ErrNotFound)
}

func (s *OrderServiceTestSuite) TestCancel() {
	sn := s.createScenicOrder()
	require.NoError(s.T(), s.svc.Cancel(s.user.ID, sn))

	var o entity.Order
	require.NoError(s.T(), s.db.Where("order_sn = ?", sn).First(&o).Error)
	require.Equal(s.T(), entity.OrderStatusCancelled, o.Status)

	require.ErrorIs(s.T(), s.svc.Cancel(s.user.ID, sn), apperr.ErrOrderState)
}

func (s *OrderServiceTestSuite) TestCancelPaidOrderRejected() {
	sn := s.createScenicOrder()
	require.NoError(s.T(), s.svc.Pay(s.user.ID, sn))
	require.ErrorIs(s.T(), s.svc.Cancel(s.user.ID, sn), apperr.ErrOrderState)
}

func (s *OrderServiceTestSuite) TestCancelKeepsRouteCapacity() {
	res, err := s.svc.Create(s.user.ID, &CreateOrderReq{
		ItemType: entity.ItemTypeRoute, ItemID: s.route.ID, Quantity: 2,
		ContactName: "张三", ContactPhone: "13800000000",
	})
	require.NoError(s.T(), err)
	require.NoError(s.T(), s.svc.Cancel(s.user.ID, res.OrderSN))

	var route entity.Route
	require.NoError(s.T(), s.db.First(&route, s.route.ID).Error)
	require.Equal(s.T(), uint(2), route.SalesCount)
}

func (s *OrderServiceTestSuite) TestComplete() {
	sn := s.createScenicOrder()
	require.ErrorIs(s.T(), s.svc.Complete(sn), apperr.ErrOrderState)

	require.NoError(s.T(), s.svc.Pay(s.user.ID, sn))
	require.NoError(s.T(), s.svc.Complete(sn))

	var o entity.Order
	require.NoError(s.T(), s.db.Where("order_sn = ?", sn).First(&o).Error)
	require.Equal(s.T(), entity.OrderStatusCompleted, o.Status)
}

func (s *OrderServiceTestSuite) TestDetailForUserOwnership() {
	sn := s.createScenicOrder()
	_, err := s.svc.DetailForUser(s.other.ID, sn)
	require.ErrorIs(s.T(), err, apperr.ErrForbidden)
}

func (s *OrderServiceTestSuite) TestListForUserFiltersByStatus() {
	snA := s.createScenicOrder()
	snB := s.createScenicOrder()
	require.NoError(s.T(), s.svc.Pay(s.user.ID, snB))

	pending, total, err := s.svc.ListForUser(s.user.ID, entity.OrderStatusPending, 1, 10)
	require.NoError(s.T(), err)
	require.EqualValues(s.T(), 1, total)
	require.Equal(s.T(), snA, pending[0].OrderSN)

	all, total, err := s.svc.ListForUser(s.user.ID, "", 1, 10)
	require.NoError(s.T(), err)
	require.EqualValues(s.T(), 2, total)
	require.Len(s.T(), all, 2)

	// other user sees nothing
	_, total, err = s.svc.ListForUser(s.other.ID, "", 1, 10)
	require.NoError(s.T(), err)
	require.EqualValues(s.T(), 0, total)
}

// When every attempted random suffix collides, the generator falls back to a
// UUID suffix instead of looping forever.
func (s *OrderServiceTestSuite) TestOrderSNCollisionFallback() {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	base := "BD" + now.Format("20060102150405")

	taken := entity.Order{OrderSN: base + "000000", UserID: s.user.ID, Status: entity.OrderStatusPending}
	require.NoError(s.T(), s.db.Create(&taken).Error)

	alwaysCollide := func(int) string { return "000000" }
	sn, err := s.svc.newOrderSNAt(s.db, now, alwaysCollide)
	require.NoError(s.T(), err)
	require.True(s.T(), strings.HasPrefix(sn, base))
	require.NotEqual(s.T(), base+"000000", sn)
	require.Len(s.T(), sn, len(base)+32)
}

func (s *OrderServiceTestSuite) TestOrderSNUnique() {
	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		sn := s.createScenicOrder()
		require.False(s.T(), seen[sn], "duplicate order sn %s", sn)
		seen[sn] = true
	}
}
