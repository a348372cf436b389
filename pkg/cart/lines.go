package cart

// Line is the priced view of one cart item with its toppings.
type Line struct {
	Item          Item              `json:"item"`
	Toppings      []SelectedTopping `json:"toppings"`
	ItemTotal     int64             `json:"itemTotal"`
	ToppingsTotal int64             `json:"toppingsTotal"`
	Total         int64             `json:"total"`
}

// Totals is the cart-level summary shown on the cart page and stored on orders.
type Totals struct {
	Subtotal      int64 `json:"subtotal"`
	ToppingsTotal int64 `json:"toppingsTotal"`
	GrandTotal    int64 `json:"grandTotal"`
}

// Lines prices every item in cart order. Summing Total over the result gives GrandTotal.
func (c *Cart) Lines() []Line {
	out := make([]Line, 0, len(c.items))
	for _, it := range c.items {
		l := Line{
			Item:      it,
			Toppings:  c.ToppingsFor(it.ID),
			ItemTotal: it.Price * int64(it.Quantity),
		}
		for _, st := range l.Toppings {
			l.ToppingsTotal += st.UnitPrice * int64(st.Quantity) * int64(it.Quantity)
		}
		l.Total = l.ItemTotal + l.ToppingsTotal
		out = append(out, l)
	}
	return out
}

func (c *Cart) Totals() Totals {
	t := c.ToppingsTotal()
	return Totals{Subtotal: c.subtotal, ToppingsTotal: t, GrandTotal: c.subtotal + t}
}
