package configs

import (
	"fmt"

	"burgerhouse/entity"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

// Open picks the gorm dialector for driver ("sqlite", "mysql" or "postgres").
func Open(driver, source string) (*gorm.DB, error) {
	var dial gorm.Dialector
	switch driver {
	case "sqlite", "":
		dial = sqlite.Open(source)
	case "mysql":
		dial = mysql.Open(source)
	case "postgres":
		dial = postgres.Open(source)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}
	return gorm.Open(dial, &gorm.Config{})
}

func ConnectionDB(cfg *Config) error {
	database, err := Open(cfg.DBDriver, cfg.DBSource)
	if err != nil {
		return fmt.Errorf("failed to connect database: %w", err)
	}
	db = database
	return nil
}

func SetupDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.Product{}, &entity.Topping{},
		&entity.OrderStatus{}, &entity.Order{}, &entity.OrderItem{}, &entity.OrderItemTopping{},
		&entity.PaymentStatus{}, &entity.CheckoutSession{},
	)
}
