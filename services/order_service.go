package services

import (
	"errors"
	"fmt"

	"burgerhouse/entity"
	"burgerhouse/pkg/cart"
	"burgerhouse/repository"

	"gorm.io/gorm"
)

// OrderNotifier is told about every order status change.
type OrderNotifier interface {
	OrderStatusChanged(userID, orderID uint, status string)
}

type OrderService struct {
	DB          *gorm.DB
	Repo        *repository.OrderRepository
	ProductRepo *repository.ProductRepository
	ToppingRepo *repository.ToppingRepository
	Notifier    OrderNotifier

	// status name -> id, resolved once from the lookup table
	Status map[string]uint
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	productRepo *repository.ProductRepository,
	toppingRepo *repository.ToppingRepository,
	notifier OrderNotifier,
) *OrderService {
	s := &OrderService{
		DB: db, Repo: repo, ProductRepo: productRepo, ToppingRepo: toppingRepo,
		Notifier: notifier, Status: map[string]uint{},
	}
	for _, name := range entity.OrderStatusNames {
		if id, err := repo.GetStatusIDByName(name); err == nil {
			s.Status[name] = id
		}
	}
	return s
}

// ----- DTOs from Controller -----

type ToppingLineIn struct {
	ToppingID uint `json:"toppingId" binding:"required"`
	Quantity  int  `json:"quantity" binding:"min=1"`
}

type OrderLineIn struct {
	ProductID uint            `json:"productId" binding:"required"`
	Quantity  int             `json:"quantity" binding:"min=0"`
	Toppings  []ToppingLineIn `json:"toppings" binding:"dive"`
}

type CreateOrderIn struct {
	Items   []OrderLineIn `json:"items" binding:"required,min=1,dive"`
	Address string        `json:"address"`
	Note    string        `json:"note"`
}

// Quote is an order priced against the current catalog.
type Quote struct {
	Cart         *cart.Cart
	ToppingNames map[uint]string
}

// Price rebuilds the cart from catalog prices. Lines with a zero quantity are
// dropped; topping allocations over the cap are rejected.
func (s *OrderService) Price(in *CreateOrderIn) (*Quote, error) {
	productIDs := make([]uint, 0, len(in.Items))
	var toppingIDs []uint
	seen := map[uint]bool{}
	for _, it := range in.Items {
		if seen[it.ProductID] {
			return nil, fmt.Errorf("product %d listed twice: %w", it.ProductID, ErrInvalidInput)
		}
		seen[it.ProductID] = true
		productIDs = append(productIDs, it.ProductID)
		for _, t := range it.Toppings {
			toppingIDs = append(toppingIDs, t.ToppingID)
		}
	}

	products, err := s.ProductRepo.FindByIDs(productIDs)
	if err != nil {
		return nil, err
	}
	toppings, err := s.ToppingRepo.FindByIDs(toppingIDs)
	if err != nil {
		return nil, err
	}

	c := cart.New()
	names := map[uint]string{}
	for _, it := range in.Items {
		if it.Quantity <= 0 {
			continue
		}
		p, ok := products[it.ProductID]
		if !ok || !p.Available {
			return nil, fmt.Errorf("product %d: %w", it.ProductID, ErrUnavailable)
		}
		c.AddItem(cart.Product{ID: p.ID, Name: p.Name, Price: p.Price})
		c.UpdateQuantity(p.ID, it.Quantity)

		// a topping listed twice on one line counts with both quantities
		qty := map[uint]int{}
		for _, tl := range it.Toppings {
			t, ok := toppings[tl.ToppingID]
			if !ok || !t.Available {
				return nil, fmt.Errorf("topping %d: %w", tl.ToppingID, ErrUnavailable)
			}
			qty[t.ID] += tl.Quantity
			if !c.SetToppingQuantity(p.ID, cart.Topping{ID: t.ID, Name: t.Name, Price: t.Price}, qty[t.ID]) {
				return nil, fmt.Errorf("%s: %w", p.Name, ErrToppingLimit)
			}
			names[t.ID] = t.Name
		}
	}
	if c.Len() == 0 {
		return nil, ErrEmptyOrder
	}
	return &Quote{Cart: c, ToppingNames: names}, nil
}

// buildOrder turns a quote into an unsaved order in statusID.
func buildOrder(userID, statusID uint, q *Quote, in *CreateOrderIn) *entity.Order {
	totals := q.Cart.Totals()
	o := &entity.Order{
		UserID:        userID,
		OrderStatusID: statusID,
		Subtotal:      totals.Subtotal,
		ToppingsTotal: totals.ToppingsTotal,
		Total:         totals.GrandTotal,
		Address:       in.Address,
		Note:          in.Note,
	}
	for _, l := range q.Cart.Lines() {
		oi := entity.OrderItem{
			ProductID:     l.Item.ID,
			Name:          l.Item.Name,
			Qty:           l.Item.Quantity,
			UnitPrice:     l.Item.Price,
			ToppingsTotal: l.ToppingsTotal,
			Total:         l.Total,
		}
		for _, st := range l.Toppings {
			oi.Toppings = append(oi.Toppings, entity.OrderItemTopping{
				ToppingID: st.ToppingID, Name: q.ToppingNames[st.ToppingID], Qty: st.Quantity, UnitPrice: st.UnitPrice,
			})
		}
		o.OrderItems = append(o.OrderItems, oi)
	}
	return o
}

// Create prices and stores a pending order for userID.
func (s *OrderService) Create(userID uint, in *CreateOrderIn) (*entity.Order, error) {
	var out *entity.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.createTx(tx, userID, in)
		out = o
		return err
	})
	if err != nil {
		return nil, err
	}
	return s.Repo.GetOrder(out.ID)
}

func (s *OrderService) createTx(tx *gorm.DB, userID uint, in *CreateOrderIn) (*entity.Order, error) {
	q, err := s.Price(in)
	if err != nil {
		return nil, err
	}
	o := buildOrder(userID, s.Status[entity.OrderPending], q, in)
	if err := s.Repo.CreateOrder(tx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// ----- List & Detail -----

func (s *OrderService) ListForUser(userID uint, limit int) ([]entity.Order, error) {
	return s.Repo.ListOrdersForUser(userID, limit)
}

func (s *OrderService) List(status string, page, limit int) ([]repository.OrderSummary, int64, error) {
	var statusID *uint
	if status != "" {
		id, ok := s.Status[status]
		if !ok {
			return nil, 0, fmt.Errorf("unknown status %q: %w", status, ErrInvalidInput)
		}
		statusID = &id
	}
	return s.Repo.ListOrders(statusID, page, limit)
}

// Detail returns the order when userID owns it or isAdmin is set.
func (s *OrderService) Detail(userID, orderID uint, isAdmin bool) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if !isAdmin && o.UserID != userID {
		// hide other users' orders entirely
		return nil, ErrNotFound
	}
	return o, nil
}
