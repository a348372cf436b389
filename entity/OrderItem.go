package entity

import (
	"gorm.io/gorm"
)

// OrderItem snapshots the product name and price at the time of ordering.
type OrderItem struct {
	gorm.Model
	Name          string `json:"name"`
	Qty           int    `json:"qty"`
	UnitPrice     int64  `json:"unitPrice"`
	ToppingsTotal int64  `json:"toppingsTotal"`
	Total         int64  `json:"total"`

	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	ProductID uint    `json:"productId"`
	Product   Product `json:"-"`

	Toppings []OrderItemTopping `json:"toppings" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
