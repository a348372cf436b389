package store

import "burgerhouse/pkg/apiclient"

type (
	ProductsSlice = Slice[apiclient.Product, apiclient.ProductInput]
	ToppingsSlice = Slice[apiclient.Topping, apiclient.ToppingInput]
	UsersSlice    = Slice[apiclient.User, apiclient.UserInput]
)

// Store is the whole client state. Build one per signed-in client and pass it
// to whatever renders pages.
type Store struct {
	Auth     *AuthSlice
	Products *ProductsSlice
	Toppings *ToppingsSlice
	Users    *UsersSlice
	Cart     *CartSlice
}

// New wires every slice to c and makes the auth slice c's token source. Any
// session saved in p is restored.
func New(c *apiclient.Client, p Persister) *Store {
	s := &Store{
		Auth:     NewAuthSlice(c.Auth, p),
		Products: NewSlice[apiclient.Product, apiclient.ProductInput](c.Products, func(it apiclient.Product) string { return it.Name }),
		Toppings: NewSlice[apiclient.Topping, apiclient.ToppingInput](c.Toppings, func(t apiclient.Topping) string { return t.Name }),
		Users:    NewSlice[apiclient.User, apiclient.UserInput](c.Users, func(u apiclient.User) string { return u.Email }),
		Cart:     NewCartSlice(c.Orders),
	}
	c.SetTokenSource(s.Auth)
	s.Auth.Restore()
	return s
}
