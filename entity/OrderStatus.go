package entity

import (
	"gorm.io/gorm"
)

const (
	OrderPending   = "Pending"
	OrderPaid      = "Paid"
	OrderPreparing = "Preparing"
	OrderCompleted = "Completed"
	OrderCancelled = "Cancelled"
)

var OrderStatusNames = []string{OrderPending, OrderPaid, OrderPreparing, OrderCompleted, OrderCancelled}

type OrderStatus struct {
	gorm.Model
	StatusName string `gorm:"size:100;uniqueIndex;not null" json:"statusName"`

	Orders []Order `json:"-"`
}
