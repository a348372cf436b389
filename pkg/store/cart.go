package store

import (
	"context"
	"errors"
	"sync"

	"burgerhouse/pkg/apiclient"
	"burgerhouse/pkg/cart"
)

var ErrEmptyCart = errors.New("cart is empty")

type CheckoutResource interface {
	Checkout(ctx context.Context, in apiclient.OrderInput) (apiclient.CheckoutSession, error)
}

type CartState struct {
	Items    []cart.Item
	Toppings []cart.SelectedTopping
	Totals   cart.Totals
	Loading  Loading
	Err      error
}

// CartSlice guards a cart.Cart and adds the page-level rules around it:
// removing a line or skipping the topping step drops that line's toppings.
type CartSlice struct {
	mu      sync.Mutex
	c       *cart.Cart
	api     CheckoutResource
	loading Loading
	err     error
}

func NewCartSlice(api CheckoutResource) *CartSlice {
	return &CartSlice{c: cart.New(), api: api}
}

func (s *CartSlice) State() CartState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return CartState{
		Items:    s.c.Items(),
		Toppings: s.c.Toppings(),
		Totals:   s.c.Totals(),
		Loading:  s.loading,
		Err:      s.err,
	}
}

func (s *CartSlice) Lines() []cart.Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.Lines()
}

func (s *CartSlice) Add(p apiclient.Product) {
	s.mu.Lock()
	s.c.AddItem(cart.Product{ID: p.ID, Name: p.Name, Price: p.Price})
	s.mu.Unlock()
}

func (s *CartSlice) UpdateQuantity(productID uint, qty int) {
	s.mu.Lock()
	s.c.UpdateQuantity(productID, qty)
	s.mu.Unlock()
}

func (s *CartSlice) Remove(productID uint) {
	s.mu.Lock()
	s.c.RemoveItem(productID)
	s.c.ResetToppings(productID)
	s.mu.Unlock()
}

// SetTopping reports whether the change fit under the per-line cap.
func (s *CartSlice) SetTopping(productID uint, t apiclient.Topping, qty int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.SetToppingQuantity(productID, cart.Topping{ID: t.ID, Name: t.Name, Price: t.Price}, qty)
}

func (s *CartSlice) SkipToppings(productID uint) {
	s.mu.Lock()
	s.c.ResetToppings(productID)
	s.mu.Unlock()
}

func (s *CartSlice) ToppingCount(productID uint) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.ToppingCount(productID)
}

func (s *CartSlice) Clear() {
	s.mu.Lock()
	s.c.Clear()
	s.c.ClearToppings()
	s.err = nil
	s.mu.Unlock()
}

func (s *CartSlice) Totals() cart.Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.Totals()
}

// Checkout posts the cart and returns the hosted-checkout session to redirect
// to. The cart is emptied only when the session was created.
func (s *CartSlice) Checkout(ctx context.Context, address, note string) (apiclient.CheckoutSession, error) {
	s.mu.Lock()
	if s.c.Len() == 0 {
		s.err = ErrEmptyCart
		s.mu.Unlock()
		return apiclient.CheckoutSession{}, ErrEmptyCart
	}
	in := apiclient.OrderInput{Address: address, Note: note}
	for _, l := range s.c.Lines() {
		line := apiclient.OrderLine{ProductID: l.Item.ID, Quantity: l.Item.Quantity}
		for _, st := range l.Toppings {
			line.Toppings = append(line.Toppings, apiclient.ToppingLine{ToppingID: st.ToppingID, Quantity: st.Quantity})
		}
		in.Items = append(in.Items, line)
	}
	s.loading.Create, s.err = true, nil
	s.mu.Unlock()

	sess, err := s.api.Checkout(ctx, in)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading.Create = false
	if err != nil {
		s.err = err
		return sess, err
	}
	s.c.Clear()
	s.c.ClearToppings()
	return sess, nil
}
