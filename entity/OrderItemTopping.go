package entity

import (
	"gorm.io/gorm"
)

// OrderItemTopping is one topping on one order line. Qty is per unit of the line.
type OrderItemTopping struct {
	gorm.Model
	OrderItemID uint      `json:"orderItemId"`
	OrderItem   OrderItem `json:"-"`

	ToppingID uint    `json:"toppingId"`
	Topping   Topping `json:"-"`

	Name      string `json:"name"`
	Qty       int    `json:"qty"`
	UnitPrice int64  `json:"unitPrice"`
}
