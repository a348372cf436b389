package apiclient

import "time"

type Product struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	ImageURL    string `json:"imageUrl"`
	Category    string `json:"category"`
	Available   bool   `json:"available"`
}

type ProductInput struct {
	Name        string `json:"name" validate:"required,notblank"`
	Description string `json:"description"`
	Price       int64  `json:"price" validate:"min=1"`
	ImageURL    string `json:"imageUrl" validate:"omitempty,url"`
	Category    string `json:"category"`
	Available   *bool  `json:"available,omitempty"`
}

type Topping struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Available bool   `json:"available"`
}

type ToppingInput struct {
	Name      string `json:"name" validate:"required,notblank"`
	Price     int64  `json:"price" validate:"min=0"`
	Available *bool  `json:"available,omitempty"`
}

type User struct {
	ID          uint   `json:"id"`
	Email       string `json:"email"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
	Role        string `json:"role"`
}

// UserInput.Password may be left empty on update to keep the current one.
type UserInput struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password,omitempty" validate:"omitempty,min=6"`
	FirstName   string `json:"firstName" validate:"required,notblank"`
	LastName    string `json:"lastName" validate:"required,notblank"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
	Role        string `json:"role,omitempty" validate:"omitempty,oneof=customer admin"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type OrderItemTopping struct {
	ToppingID uint   `json:"toppingId"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
}

type OrderItem struct {
	ProductID     uint               `json:"productId"`
	Name          string             `json:"name"`
	UnitPrice     int64              `json:"unitPrice"`
	Quantity      int                `json:"quantity"`
	ToppingsTotal int64              `json:"toppingsTotal"`
	Total         int64              `json:"total"`
	Toppings      []OrderItemTopping `json:"toppings"`
}

type Order struct {
	ID            uint        `json:"id"`
	UserID        uint        `json:"userId"`
	Status        string      `json:"status"`
	Subtotal      int64       `json:"subtotal"`
	ToppingsTotal int64       `json:"toppingsTotal"`
	Total         int64       `json:"total"`
	Address       string      `json:"address"`
	Note          string      `json:"note"`
	Items         []OrderItem `json:"items,omitempty"`
	CreatedAt     time.Time   `json:"createdAt"`
}

type ToppingLine struct {
	ToppingID uint `json:"toppingId"`
	Quantity  int  `json:"quantity"`
}

type OrderLine struct {
	ProductID uint          `json:"productId"`
	Quantity  int           `json:"quantity"`
	Toppings  []ToppingLine `json:"toppings,omitempty"`
}

type OrderInput struct {
	Items   []OrderLine `json:"items"`
	Address string      `json:"address"`
	Note    string      `json:"note,omitempty"`
}

// CheckoutSession is the hosted-checkout redirect handed back by POST /checkout.
type CheckoutSession struct {
	SessionID string `json:"sessionId"`
	OrderID   uint   `json:"orderId"`
	URL       string `json:"url"`
	Total     int64  `json:"total"`
}

// ReportFile is the wire form of a generated report; Content is base64.
type ReportFile struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
}
