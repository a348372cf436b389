package entity

import (
	"time"

	"gorm.io/gorm"
)

// CheckoutSession is one hosted-checkout attempt for an order. ID is a uuid
// handed to the checkout page and echoed back on success or cancel.
type CheckoutSession struct {
	ID        string `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Amount int64      `json:"amount"`
	URL    string     `json:"url"`
	PaidAt *time.Time `json:"paidAt,omitempty"`

	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	PaymentStatusID uint          `json:"paymentStatusId"`
	PaymentStatus   PaymentStatus `json:"-"`
}
