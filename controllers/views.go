package controllers

import (
	"time"

	"burgerhouse/entity"
)

// JSON shapes handed to clients. Entities keep gorm.Model's field names, so
// every response goes through one of these.

type ProductView struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	ImageURL    string `json:"imageUrl"`
	Category    string `json:"category"`
	Available   bool   `json:"available"`
}

func toProduct(p *entity.Product) ProductView {
	return ProductView{
		ID: p.ID, Name: p.Name, Description: p.Description, Price: p.Price,
		ImageURL: p.ImageURL, Category: p.Category, Available: p.Available,
	}
}

type ToppingView struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Available bool   `json:"available"`
}

func toTopping(t *entity.Topping) ToppingView {
	return ToppingView{ID: t.ID, Name: t.Name, Price: t.Price, Available: t.Available}
}

type UserView struct {
	ID          uint   `json:"id"`
	Email       string `json:"email"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
	Role        string `json:"role"`
}

func toUser(u *entity.User) UserView {
	return UserView{
		ID: u.ID, Email: u.Email, FirstName: u.FirstName, LastName: u.LastName,
		PhoneNumber: u.PhoneNumber, Address: u.Address, Role: u.Role,
	}
}

type OrderToppingView struct {
	ToppingID uint   `json:"toppingId"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
}

type OrderItemView struct {
	ProductID     uint               `json:"productId"`
	Name          string             `json:"name"`
	UnitPrice     int64              `json:"unitPrice"`
	Quantity      int                `json:"quantity"`
	ToppingsTotal int64              `json:"toppingsTotal"`
	Total         int64              `json:"total"`
	Toppings      []OrderToppingView `json:"toppings"`
}

type OrderView struct {
	ID            uint            `json:"id"`
	UserID        uint            `json:"userId"`
	Status        string          `json:"status"`
	Subtotal      int64           `json:"subtotal"`
	ToppingsTotal int64           `json:"toppingsTotal"`
	Total         int64           `json:"total"`
	Address       string          `json:"address"`
	Note          string          `json:"note"`
	Items         []OrderItemView `json:"items,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// toOrder expects OrderStatus preloaded; items are included when loaded.
func toOrder(o *entity.Order) OrderView {
	v := OrderView{
		ID: o.ID, UserID: o.UserID, Status: o.OrderStatus.StatusName,
		Subtotal: o.Subtotal, ToppingsTotal: o.ToppingsTotal, Total: o.Total,
		Address: o.Address, Note: o.Note, CreatedAt: o.CreatedAt,
	}
	for _, it := range o.OrderItems {
		iv := OrderItemView{
			ProductID: it.ProductID, Name: it.Name, UnitPrice: it.UnitPrice, Quantity: it.Qty,
			ToppingsTotal: it.ToppingsTotal, Total: it.Total, Toppings: []OrderToppingView{},
		}
		for _, t := range it.Toppings {
			iv.Toppings = append(iv.Toppings, OrderToppingView{
				ToppingID: t.ToppingID, Name: t.Name, UnitPrice: t.UnitPrice, Quantity: t.Qty,
			})
		}
		v.Items = append(v.Items, iv)
	}
	return v
}

func mapSlice[E, V any](in []E, f func(*E) V) []V {
	out := make([]V, 0, len(in))
	for i := range in {
		out = append(out, f(&in[i]))
	}
	return out
}
