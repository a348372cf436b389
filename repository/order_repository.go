package repository

import (
	"strings"
	"time"

	"burgerhouse/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

// CreateOrder inserts o together with its items and their toppings.
func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

// GetOrder loads one order with status, items and toppings.
func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.
		Preload("OrderStatus").
		Preload("OrderItems").
		Preload("OrderItems.Toppings").
		First(&o, orderID).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) ListOrdersForUser(userID uint, limit int) ([]entity.Order, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []entity.Order
	err := r.DB.Preload("OrderStatus").
		Where("user_id = ?", userID).
		Order("id DESC").Limit(limit).
		Find(&out).Error
	return out, err
}

// OrderSummary is one row of the admin orders table.
type OrderSummary struct {
	ID           uint      `json:"id"`
	UserID       uint      `json:"userId"`
	CustomerName string    `json:"customerName"`
	Total        int64     `json:"total"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (r *OrderRepository) ListOrders(statusID *uint, page, limit int) ([]OrderSummary, int64, error) {
	_, limit, offset := paging(page, limit)

	var total int64
	dbCount := r.DB.Table("orders AS o").Where("o.deleted_at IS NULL")
	if statusID != nil && *statusID != 0 {
		dbCount = dbCount.Where("o.order_status_id = ?", *statusID)
	}
	if err := dbCount.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []struct {
		ID         uint
		UserID     uint
		Total      int64
		StatusName string
		CreatedAt  time.Time
		FirstName  string
		LastName   string
	}
	db := r.DB.Table("orders AS o").
		Select("o.id, o.user_id, o.total, s.status_name, o.created_at, u.first_name, u.last_name").
		Joins("JOIN users u ON u.id = o.user_id").
		Joins("JOIN order_statuses s ON s.id = o.order_status_id").
		Where("o.deleted_at IS NULL")
	if statusID != nil && *statusID != 0 {
		db = db.Where("o.order_status_id = ?", *statusID)
	}
	if err := db.Order("o.id DESC").Limit(limit).Offset(offset).Scan(&rows).Error; err != nil {
		return nil, 0, err
	}

	out := make([]OrderSummary, 0, len(rows))
	for _, r := range rows {
		out = append(out, OrderSummary{
			ID:           r.ID,
			UserID:       r.UserID,
			CustomerName: strings.TrimSpace(r.FirstName + " " + r.LastName),
			Total:        r.Total,
			Status:       r.StatusName,
			CreatedAt:    r.CreatedAt,
		})
	}
	return out, total, nil
}

// UpdateStatusGuard moves orderID from fromID to toID and reports how many
// rows changed; 0 means the order was not in fromID.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID, fromID, toID uint) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND order_status_id = ?", orderID, fromID).
		Update("order_status_id", toID)
	return res.RowsAffected, res.Error
}

// ---------------- Lookups ----------------

func (r *OrderRepository) GetStatusIDByName(name string) (uint, error) {
	var row struct{ ID uint }
	err := r.DB.Model(&entity.OrderStatus{}).
		Select("id").Where("status_name = ?", name).First(&row).Error
	return row.ID, err
}
