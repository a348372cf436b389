package entity

import (
	"gorm.io/gorm"
)

// Product is a menu entry. Name is the natural key used by the admin screens;
// uniqueness among live rows is checked by the service so soft-deleted names
// can be reused.
type Product struct {
	gorm.Model
	Name        string `gorm:"index;not null" json:"name"`
	Description string `json:"description"`
	Price       int64  `gorm:"not null" json:"price"`
	ImageURL    string `json:"imageUrl"`
	Category    string `gorm:"index" json:"category"`
	Available   bool   `gorm:"not null" json:"available"`

	OrderItems []OrderItem `json:"-"`
}
