package repository

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"tourism-backend/entity"
	"tourism-backend/pkg/apperr"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Writes (tx scoped) ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateDetail(tx *gorm.DB, d *entity.OrderDetail) error {
	return tx.Create(d).Error
}

// SNExists reports whether an order number is already persisted. Used by
// the generator's collision loop.
func (r *OrderRepository) SNExists(tx *gorm.DB, sn string) (bool, error) {
	var count int64
	err := tx.Model(&entity.Order{}).Where("order_sn = ?", sn).Count(&count).Error
	return count > 0, err
}

// LockBySN reads the order under an exclusive row lock to serialize
// concurrent confirmation attempts for the same order.
func (r *OrderRepository) LockBySN(tx *gorm.DB, sn string) (*entity.Order, error) {
	var o entity.Order
	err := forUpdate(tx).Where("order_sn = ?", sn).First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// MarkPaidGuard flips pending→paid and stamps paid_at in one conditional
// update. Zero rows affected means the order already left pending; callers
// treat that as a no-op so repeated confirmations have no side effects.
func (r *OrderRepository) MarkPaidGuard(tx *gorm.DB, sn string, paidAt time.Time) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("order_sn = ? AND status = ?", sn, entity.OrderStatusPending).
		Updates(map[string]any{"status": entity.OrderStatusPaid, "paid_at": paidAt})
	return res.RowsAffected, res.Error
}

// UpdateStatusGuard moves sn from one status to another; RowsAffected tells
// the caller whether the transition actually happened.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, sn, from, to string) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("order_sn = ? AND status = ?", sn, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

// ---------------- Reads ----------------

func (r *OrderRepository) GetBySN(sn string) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Where("order_sn = ?", sn).First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetDetails(orderID uint) ([]entity.OrderDetail, error) {
	var details []entity.OrderDetail
	err := r.DB.Where("order_id = ?", orderID).Find(&details).Error
	return details, err
}

type OrderSummary struct {
	OrderSN     string          `json:"orderSn"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
}

func (r *OrderRepository) ListForUser(userID uint, status string, page, limit int) ([]OrderSummary, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	q := r.DB.Model(&entity.Order{}).Where("user_id = ?", userID)
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []OrderSummary
	err := q.Select("order_sn, total_amount, status, created_at").
		Order("created_at DESC").
		Limit(limit).Offset((page - 1) * limit).
		Scan(&out).Error
	return out, total, err
}

type StaffOrderSummary struct {
	OrderSN     string          `json:"orderSn"`
	UserID      uint            `json:"userId"`
	Nickname    string          `json:"nickname"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Status      string          `json:"status"`
	ContactName string          `json:"contactName"`
	CreatedAt   time.Time       `json:"createdAt"`
}

func (r *OrderRepository) ListAll(status string, page, limit int) ([]StaffOrderSummary, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 20
	}

	count := r.DB.Table("orders AS o").Where("o.deleted_at IS NULL")
	if status != "" {
		count = count.Where("o.status = ?", status)
	}
	var total int64
	if err := count.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q := r.DB.Table("orders AS o").
		Select("o.order_sn, o.user_id, u.nickname, o.total_amount, o.status, o.contact_name, o.created_at").
		Joins("JOIN users u ON u.id = o.user_id").
		Where("o.deleted_at IS NULL")
	if status != "" {
		q = q.Where("o.status = ?", status)
	}

	var out []StaffOrderSummary
	err := q.Order("o.created_at DESC").
		Limit(limit).Offset((page - 1) * limit).
		Scan(&out).Error
	return out, total, err
}

// CountByStatus feeds the staff dashboard.
func (r *OrderRepository) CountByStatus() (map[string]int64, error) {
	var rows []struct {
		Status string
		N      int64
	}
	err := r.DB.Model(&entity.Order{}).
		Select("status, COUNT(*) AS n").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.Status] = row.N
	}
	return out, nil
}

// PaidRevenue sums the total of every paid or completed order.
func (r *OrderRepository) PaidRevenue() (decimal.Decimal, error) {
	var rows []struct {
		TotalAmount decimal.Decimal
	}
	err := r.DB.Model(&entity.Order{}).
		Select("total_amount").
		Where("status IN ?", []string{entity.OrderStatusPaid, entity.OrderStatusCompleted}).
		Scan(&rows).Error
	if err != nil {
		return decimal.Zero, err
	}
	sum := decimal.Zero
	for _, row := range rows {
		sum = sum.Add(row.TotalAmount)
	}
	return sum, nil
}
