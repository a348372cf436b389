package entity

import (
	"gorm.io/gorm"
)

type Topping struct {
	gorm.Model
	Name      string `gorm:"index;not null" json:"name"`
	Price     int64  `gorm:"not null" json:"price"`
	Available bool   `gorm:"not null" json:"available"`
}
