// Package apiclient wraps the ordering API one resource at a time.
//
// Every call sends JSON, attaches the bearer token when one is available and
// turns non-2xx responses into *HTTPError. The error text is either the
// server's {"message": ...} or "HTTP error! status: <code>"; callers match on it.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"
)

// TokenSource yields the current bearer token, or "" when signed out.
type TokenSource interface {
	Token() string
}

type TokenFunc func() string

func (f TokenFunc) Token() string { return f() }

// HTTPError is returned for any non-2xx response.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string { return e.Message }

// StatusOf returns the HTTP status behind err, or 0 when err is not an *HTTPError.
func StatusOf(err error) int {
	var he *HTTPError
	if errors.As(err, &he) {
		return he.StatusCode
	}
	return 0
}

type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource

	Auth     *AuthAPI
	Products *ProductsAPI
	Toppings *ToppingsAPI
	Users    *UsersAPI
	Orders   *OrdersAPI
	Reports  *ReportsAPI
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

// New builds a client for baseURL. The default HTTP client keeps cookies across
// calls so the server's token cookie travels with every request.
func New(baseURL string, opts ...Option) *Client {
	jar, _ := cookiejar.New(nil)
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Jar: jar},
	}
	for _, o := range opts {
		o(c)
	}
	c.Auth = &AuthAPI{c: c}
	c.Products = &ProductsAPI{c: c}
	c.Toppings = &ToppingsAPI{c: c}
	c.Users = &UsersAPI{c: c}
	c.Orders = &OrdersAPI{c: c}
	c.Reports = &ReportsAPI{c: c}
	return c
}

// SetTokenSource swaps the token source after construction; the store uses it
// to hand its auth slice to the client it was built around.
func (c *Client) SetTokenSource(ts TokenSource) { c.tokens = ts }

// do performs one request. body, when non-nil, is sent as JSON; out, when
// non-nil, receives the decoded 2xx response.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.tokens != nil {
		if tok := c.tokens.Token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	res, err := c.http.Do(req)
	if err != nil {
		log.Printf("%s %s failed: %v", method, path, err)
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return errorFromResponse(res)
	}
	if out == nil || res.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func errorFromResponse(res *http.Response) error {
	fallback := fmt.Sprintf("HTTP error! status: %d", res.StatusCode)
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil || body.Message == "" {
		return &HTTPError{StatusCode: res.StatusCode, Message: fallback}
	}
	return &HTTPError{StatusCode: res.StatusCode, Message: body.Message}
}

// envelope is the {"data": ...} wrapper of single-object responses.
type envelope[T any] struct {
	Data T `json:"data"`
}

func get[T any](ctx context.Context, c *Client, path string) (T, error) {
	var env envelope[T]
	err := c.do(ctx, http.MethodGet, path, nil, &env)
	return env.Data, err
}

func send[T any](ctx context.Context, c *Client, method, path string, body any) (T, error) {
	var env envelope[T]
	err := c.do(ctx, method, path, body, &env)
	return env.Data, err
}

func listQuery(limit int) string {
	if limit <= 0 {
		return ""
	}
	return fmt.Sprintf("?limit=%d", limit)
}

func key(s string) string { return url.PathEscape(s) }

func dateParam(t time.Time) string { return t.Format("2006-01-02") }
