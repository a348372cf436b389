package repository

import (
	"time"

	"burgerhouse/entity"

	"gorm.io/gorm"
)

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

type SaleRow struct {
	ID            uint
	CreatedAt     time.Time
	Subtotal      int64
	ToppingsTotal int64
	Total         int64
	StatusName    string
}

// SalesBetween lists orders in statusNames created in [from, to).
func (r *ReportRepository) SalesBetween(from, to time.Time, statusNames []string) ([]SaleRow, error) {
	var rows []SaleRow
	err := r.db.Table("orders AS o").
		Select("o.id, o.created_at, o.subtotal, o.toppings_total, o.total, s.status_name").
		Joins("JOIN order_statuses s ON s.id = o.order_status_id").
		Where("o.deleted_at IS NULL").
		Where("o.created_at >= ? AND o.created_at < ?", from, to).
		Where("s.status_name IN ?", statusNames).
		Order("o.created_at ASC").
		Scan(&rows).Error
	return rows, err
}

type ProductSalesRow struct {
	ProductID uint
	Name      string
	Qty       int64
	Revenue   int64
}

// TopProducts ranks products by units sold across orders in statusNames.
func (r *ReportRepository) TopProducts(limit int, statusNames []string) ([]ProductSalesRow, error) {
	if limit <= 0 {
		limit = 10
	}
	var rows []ProductSalesRow
	err := r.db.Model(&entity.OrderItem{}).
		Select("order_items.product_id, MAX(order_items.name) AS name, SUM(order_items.qty) AS qty, SUM(order_items.total) AS revenue").
		Joins("JOIN orders o ON o.id = order_items.order_id AND o.deleted_at IS NULL").
		Joins("JOIN order_statuses s ON s.id = o.order_status_id").
		Where("s.status_name IN ?", statusNames).
		Group("order_items.product_id").
		Order("qty DESC, revenue DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

// ItemsRevenue sums every order line across orders in statusNames.
func (r *ReportRepository) ItemsRevenue(statusNames []string) (int64, error) {
	var total int64
	err := r.db.Model(&entity.OrderItem{}).
		Select("COALESCE(SUM(order_items.total), 0)").
		Joins("JOIN orders o ON o.id = order_items.order_id AND o.deleted_at IS NULL").
		Joins("JOIN order_statuses s ON s.id = o.order_status_id").
		Where("s.status_name IN ?", statusNames).
		Scan(&total).Error
	return total, err
}
