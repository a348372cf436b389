// Package cart keeps cart line items and the toppings chosen for each line.
//
// A Cart is plain in-memory state: every operation is total and inputs that are
// out of range are ignored rather than reported. It is not safe for concurrent
// use; callers that share a Cart must guard it.
package cart

// MaxToppingsPerItem caps the summed topping quantity of a single cart line.
const MaxToppingsPerItem = 5

type Product struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

type Item struct {
	Product
	Quantity int `json:"quantity"`
}

type Topping struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// SelectedTopping is a topping attached to the cart line of ProductID.
type SelectedTopping struct {
	ToppingID uint  `json:"toppingId"`
	ProductID uint  `json:"productId"`
	Quantity  int   `json:"quantity"`
	UnitPrice int64 `json:"unitPrice"`
}

type Cart struct {
	items    []Item
	toppings []SelectedTopping
	subtotal int64
}

func New() *Cart { return &Cart{} }

// AddItem bumps the quantity of p, or appends it with quantity 1.
func (c *Cart) AddItem(p Product) {
	if i := c.indexOf(p.ID); i >= 0 {
		c.items[i].Quantity++
	} else {
		c.items = append(c.items, Item{Product: p, Quantity: 1})
	}
	c.recompute()
}

// UpdateQuantity sets the quantity of product id. A zero quantity keeps the
// line in the cart; negative quantities and unknown ids are ignored.
func (c *Cart) UpdateQuantity(id uint, quantity int) {
	if quantity < 0 {
		return
	}
	i := c.indexOf(id)
	if i < 0 {
		return
	}
	c.items[i].Quantity = quantity
	c.recompute()
}

// RemoveItem drops the line of product id. Toppings selected for it stay until
// ResetToppings is called.
func (c *Cart) RemoveItem(id uint) {
	i := c.indexOf(id)
	if i < 0 {
		return
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	c.recompute()
}

func (c *Cart) Clear() {
	c.items = nil
	c.subtotal = 0
}

// SetToppingQuantity sets how many of t go on the line of productID.
// It returns false and leaves the cart untouched when quantity is negative or
// would push the line past MaxToppingsPerItem. A zero quantity removes the entry.
func (c *Cart) SetToppingQuantity(productID uint, t Topping, quantity int) bool {
	if quantity < 0 {
		return false
	}
	others := 0
	at := -1
	for i, st := range c.toppings {
		if st.ProductID != productID {
			continue
		}
		if st.ToppingID == t.ID {
			at = i
			continue
		}
		others += st.Quantity
	}
	if others+quantity > MaxToppingsPerItem {
		return false
	}

	switch {
	case quantity == 0 && at >= 0:
		c.toppings = append(c.toppings[:at], c.toppings[at+1:]...)
	case quantity == 0:
	case at >= 0:
		c.toppings[at].Quantity = quantity
		c.toppings[at].UnitPrice = t.Price
	default:
		c.toppings = append(c.toppings, SelectedTopping{
			ToppingID: t.ID, ProductID: productID, Quantity: quantity, UnitPrice: t.Price,
		})
	}
	return true
}

func (c *Cart) ResetToppings(productID uint) {
	kept := c.toppings[:0]
	for _, st := range c.toppings {
		if st.ProductID != productID {
			kept = append(kept, st)
		}
	}
	c.toppings = kept
}

func (c *Cart) ClearToppings() { c.toppings = nil }

func (c *Cart) ToppingCount(productID uint) int {
	n := 0
	for _, st := range c.toppings {
		if st.ProductID == productID {
			n += st.Quantity
		}
	}
	return n
}

func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Toppings() []SelectedTopping {
	out := make([]SelectedTopping, len(c.toppings))
	copy(out, c.toppings)
	return out
}

func (c *Cart) ToppingsFor(productID uint) []SelectedTopping {
	var out []SelectedTopping
	for _, st := range c.toppings {
		if st.ProductID == productID {
			out = append(out, st)
		}
	}
	return out
}

func (c *Cart) Item(id uint) (Item, bool) {
	if i := c.indexOf(id); i >= 0 {
		return c.items[i], true
	}
	return Item{}, false
}

func (c *Cart) Len() int { return len(c.items) }

func (c *Cart) Subtotal() int64 { return c.subtotal }

// ToppingsTotal multiplies every selected topping by the quantity of its line.
// Toppings whose product is no longer in the cart add nothing.
func (c *Cart) ToppingsTotal() int64 {
	var total int64
	for _, st := range c.toppings {
		it, ok := c.Item(st.ProductID)
		if !ok {
			continue
		}
		total += st.UnitPrice * int64(st.Quantity) * int64(it.Quantity)
	}
	return total
}

func (c *Cart) GrandTotal() int64 { return c.subtotal + c.ToppingsTotal() }

func (c *Cart) indexOf(id uint) int {
	for i, it := range c.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

func (c *Cart) recompute() {
	var sum int64
	for _, it := range c.items {
		sum += it.Price * int64(it.Quantity)
	}
	c.subtotal = sum
}
