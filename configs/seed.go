package configs

import (
	"fmt"
	"log"
	"os"
	"strings"

	"burgerhouse/entity"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// SeedAdmin creates the first admin account from ADMIN_EMAIL/ADMIN_PASSWORD.
func SeedAdmin(db *gorm.DB, cfg *Config) error {
	email := strings.ToLower(strings.TrimSpace(cfg.AdminEmail))
	if email == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	if err := db.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Email:     email,
		Password:  string(hash),
		FirstName: "Admin",
		LastName:  "Seed",
		Role:      entity.RoleAdmin,
	}
	return db.Create(&admin).Error
}

// SeedLookups makes sure every status row exists.
func SeedLookups(db *gorm.DB) error {
	for _, name := range entity.OrderStatusNames {
		if err := db.FirstOrCreate(&entity.OrderStatus{}, entity.OrderStatus{StatusName: name}).Error; err != nil {
			return err
		}
	}
	for _, name := range entity.PaymentStatusNames {
		if err := db.FirstOrCreate(&entity.PaymentStatus{}, entity.PaymentStatus{StatusName: name}).Error; err != nil {
			return err
		}
	}
	log.Println("lookup tables seeded")
	return nil
}

// Catalog is the YAML menu file loaded by SeedCatalog.
//
//	products:
//	  - name: Classic
//	    price: 15000
//	    category: burgers
//	toppings:
//	  - name: Bacon
//	    price: 2000
type Catalog struct {
	Products []struct {
		Name        string `yaml:"name"`
		Description string `yaml:"description"`
		Price       int64  `yaml:"price"`
		ImageURL    string `yaml:"imageUrl"`
		Category    string `yaml:"category"`
	} `yaml:"products"`
	Toppings []struct {
		Name  string `yaml:"name"`
		Price int64  `yaml:"price"`
	} `yaml:"toppings"`
}

func ParseCatalog(b []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return &c, nil
}

// SeedCatalog inserts products and toppings from path that do not exist yet.
// Existing rows, matched by name, are left alone.
func SeedCatalog(db *gorm.DB, path string) error {
	if path == "" {
		return nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	cat, err := ParseCatalog(b)
	if err != nil {
		return err
	}

	for _, p := range cat.Products {
		row := entity.Product{
			Name: p.Name, Description: p.Description, Price: p.Price,
			ImageURL: p.ImageURL, Category: p.Category, Available: true,
		}
		if err := db.Where(entity.Product{Name: p.Name}).FirstOrCreate(&row).Error; err != nil {
			return err
		}
	}
	for _, t := range cat.Toppings {
		row := entity.Topping{Name: t.Name, Price: t.Price, Available: true}
		if err := db.Where(entity.Topping{Name: t.Name}).FirstOrCreate(&row).Error; err != nil {
			return err
		}
	}
	log.Printf("catalog seeded: %d products, %d toppings", len(cat.Products), len(cat.Toppings))
	return nil
}
