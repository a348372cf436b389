package entity

import (
	"gorm.io/gorm"
)

const (
	PaymentPending   = "Pending"
	PaymentPaid      = "Paid"
	PaymentCancelled = "Cancelled"
)

var PaymentStatusNames = []string{PaymentPending, PaymentPaid, PaymentCancelled}

type PaymentStatus struct {
	gorm.Model
	StatusName string `gorm:"size:100;uniqueIndex;not null" json:"statusName"`

	CheckoutSessions []CheckoutSession `json:"-"`
}
