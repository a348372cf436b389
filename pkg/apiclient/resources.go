package apiclient

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// ----- auth -----

type AuthAPI struct{ c *Client }

func (a *AuthAPI) Login(ctx context.Context, cred Credentials) (*AuthResult, error) {
	var out AuthResult
	if err := a.c.do(ctx, http.MethodPost, "/auth/login", cred, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *AuthAPI) Register(ctx context.Context, in UserInput) (User, error) {
	return send[User](ctx, a.c, http.MethodPost, "/auth/register", in)
}

func (a *AuthAPI) Me(ctx context.Context) (User, error) {
	return get[User](ctx, a.c, "/auth/me")
}

// ----- products -----

type ProductsAPI struct{ c *Client }

func (p *ProductsAPI) GetAll(ctx context.Context, limit int) (List[Product], error) {
	var out List[Product]
	err := p.c.do(ctx, http.MethodGet, "/products"+listQuery(limit), nil, &out)
	return out, err
}

func (p *ProductsAPI) GetByKey(ctx context.Context, name string) (Product, error) {
	return get[Product](ctx, p.c, "/products/"+key(name))
}

func (p *ProductsAPI) Create(ctx context.Context, in ProductInput) (Product, error) {
	return send[Product](ctx, p.c, http.MethodPost, "/products", in)
}

func (p *ProductsAPI) Update(ctx context.Context, name string, in ProductInput) (Product, error) {
	return send[Product](ctx, p.c, http.MethodPut, "/products/"+key(name), in)
}

func (p *ProductsAPI) Delete(ctx context.Context, name string) error {
	return p.c.do(ctx, http.MethodDelete, "/products/"+key(name), nil, nil)
}

// ----- toppings -----

type ToppingsAPI struct{ c *Client }

func (t *ToppingsAPI) GetAll(ctx context.Context, limit int) (List[Topping], error) {
	var out List[Topping]
	err := t.c.do(ctx, http.MethodGet, "/toppings"+listQuery(limit), nil, &out)
	return out, err
}

func (t *ToppingsAPI) GetByKey(ctx context.Context, name string) (Topping, error) {
	return get[Topping](ctx, t.c, "/toppings/"+key(name))
}

func (t *ToppingsAPI) Create(ctx context.Context, in ToppingInput) (Topping, error) {
	return send[Topping](ctx, t.c, http.MethodPost, "/toppings", in)
}

func (t *ToppingsAPI) Update(ctx context.Context, name string, in ToppingInput) (Topping, error) {
	return send[Topping](ctx, t.c, http.MethodPut, "/toppings/"+key(name), in)
}

func (t *ToppingsAPI) Delete(ctx context.Context, name string) error {
	return t.c.do(ctx, http.MethodDelete, "/toppings/"+key(name), nil, nil)
}

// ----- users -----

type UsersAPI struct{ c *Client }

func (u *UsersAPI) GetAll(ctx context.Context, limit int) (List[User], error) {
	var out List[User]
	err := u.c.do(ctx, http.MethodGet, "/users"+listQuery(limit), nil, &out)
	return out, err
}

func (u *UsersAPI) GetByKey(ctx context.Context, email string) (User, error) {
	return get[User](ctx, u.c, "/users/"+key(email))
}

func (u *UsersAPI) Create(ctx context.Context, in UserInput) (User, error) {
	return send[User](ctx, u.c, http.MethodPost, "/users", in)
}

func (u *UsersAPI) Update(ctx context.Context, email string, in UserInput) (User, error) {
	return send[User](ctx, u.c, http.MethodPut, "/users/"+key(email), in)
}

func (u *UsersAPI) Delete(ctx context.Context, email string) error {
	return u.c.do(ctx, http.MethodDelete, "/users/"+key(email), nil, nil)
}

// ----- orders & checkout -----

type OrdersAPI struct{ c *Client }

func (o *OrdersAPI) GetAll(ctx context.Context, limit int) (List[Order], error) {
	var out List[Order]
	err := o.c.do(ctx, http.MethodGet, "/orders"+listQuery(limit), nil, &out)
	return out, err
}

func (o *OrdersAPI) Mine(ctx context.Context) (List[Order], error) {
	var out List[Order]
	err := o.c.do(ctx, http.MethodGet, "/orders/me", nil, &out)
	return out, err
}

func (o *OrdersAPI) GetByKey(ctx context.Context, id uint) (Order, error) {
	return get[Order](ctx, o.c, fmt.Sprintf("/orders/%d", id))
}

func (o *OrdersAPI) Create(ctx context.Context, in OrderInput) (Order, error) {
	return send[Order](ctx, o.c, http.MethodPost, "/orders", in)
}

func (o *OrdersAPI) UpdateStatus(ctx context.Context, id uint, status string) (Order, error) {
	body := map[string]string{"status": status}
	return send[Order](ctx, o.c, http.MethodPatch, fmt.Sprintf("/orders/%d/status", id), body)
}

// Checkout opens a hosted-checkout session; the caller redirects to its URL.
func (o *OrdersAPI) Checkout(ctx context.Context, in OrderInput) (CheckoutSession, error) {
	return send[CheckoutSession](ctx, o.c, http.MethodPost, "/checkout", in)
}

func (o *OrdersAPI) ConfirmCheckout(ctx context.Context, sessionID string) (Order, error) {
	return send[Order](ctx, o.c, http.MethodPost, "/checkout/"+key(sessionID)+"/success", nil)
}

func (o *OrdersAPI) CancelCheckout(ctx context.Context, sessionID string) (Order, error) {
	return send[Order](ctx, o.c, http.MethodPost, "/checkout/"+key(sessionID)+"/cancel", nil)
}

// ----- reports -----

// Report is a decoded report document, ready to display or save.
type Report struct {
	Filename    string
	ContentType string
	Data        []byte
}

type ReportsAPI struct{ c *Client }

func (r *ReportsAPI) Sales(ctx context.Context, from, to time.Time) (*Report, error) {
	q := url.Values{}
	if !from.IsZero() {
		q.Set("from", dateParam(from))
	}
	if !to.IsZero() {
		q.Set("to", dateParam(to))
	}
	path := "/reports/sales"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	return r.fetch(ctx, path)
}

func (r *ReportsAPI) TopProducts(ctx context.Context, limit int) (*Report, error) {
	return r.fetch(ctx, "/reports/top-products"+listQuery(limit))
}

func (r *ReportsAPI) fetch(ctx context.Context, path string) (*Report, error) {
	f, err := get[ReportFile](ctx, r.c, path)
	if err != nil {
		return nil, err
	}
	data, err := base64.StdEncoding.DecodeString(f.Content)
	if err != nil {
		return nil, fmt.Errorf("decode report: %w", err)
	}
	return &Report{Filename: f.Filename, ContentType: f.ContentType, Data: data}, nil
}
