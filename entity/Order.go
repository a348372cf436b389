package entity

import (
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	Subtotal      int64 `json:"subtotal"`
	ToppingsTotal int64 `json:"toppingsTotal"`
	Total         int64 `json:"total"`

	Address string `json:"address"`
	Note    string `json:"note"`

	UserID uint `json:"userId"`
	User   User `json:"-"`

	OrderStatusID uint        `json:"orderStatusId"`
	OrderStatus   OrderStatus `json:"-"`

	// preload only on detail
	OrderItems       []OrderItem       `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CheckoutSessions []CheckoutSession `json:"-"`
}
