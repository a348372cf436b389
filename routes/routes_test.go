package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"burgerhouse/configs"
	"burgerhouse/entity"
	"burgerhouse/pkg/apiclient"
	"burgerhouse/pkg/store"
	"burgerhouse/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type server struct {
	*httptest.Server
	hub *ws.OrderHub
}

func newServer(t *testing.T) *server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := configs.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, configs.SetupDatabase(db))
	require.NoError(t, configs.SeedLookups(db))

	cfg := &configs.Config{
		JWTSecret:     "test-secret",
		JWTTTL:        time.Hour,
		FrontendURL:   "http://localhost:5173",
		CheckoutURL:   "https://pay.example/checkout",
		AdminEmail:    "boss@burger.co",
		AdminPassword: "secret1",
	}
	require.NoError(t, configs.SeedAdmin(db, cfg))

	ctx, cancel := context.WithCancel(context.Background())
	hub := ws.NewOrderHub()
	go hub.Run(ctx)

	r := gin.New()
	RegisterRoutes(r, db, cfg, hub)
	srv := httptest.NewServer(r)
	t.Cleanup(func() {
		srv.Close()
		cancel()
	})
	return &server{Server: srv, hub: hub}
}

func (s *server) store(t *testing.T) *store.Store {
	return store.New(apiclient.New(s.URL), store.NewMemoryPersister())
}

func (s *server) admin(t *testing.T) *store.Store {
	st := s.store(t)
	require.NoError(t, st.Auth.Login(context.Background(), apiclient.Credentials{Email: "boss@burger.co", Password: "secret1"}))
	require.True(t, st.Auth.IsAdmin())
	return st
}

func TestHealthAndErrorContract(t *testing.T) {
	s := newServer(t)

	res, err := http.Get(s.URL + "/health")
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	c := apiclient.New(s.URL)
	ctx := context.Background()

	_, err = c.Products.GetByKey(ctx, "Nope")
	require.Error(t, err)
	assert.Equal(t, "Not found", err.Error())
	assert.Equal(t, http.StatusNotFound, apiclient.StatusOf(err))

	_, err = c.Users.GetAll(ctx, 0)
	assert.EqualError(t, err, "missing or invalid token")

	_, err = c.Auth.Login(ctx, apiclient.Credentials{Email: "boss@burger.co", Password: "wrong"})
	assert.EqualError(t, err, "invalid credentials")
}

func TestCatalogAndUsersThroughStore(t *testing.T) {
	s := newServer(t)
	ctx := context.Background()
	admin := s.admin(t)

	for _, in := range []apiclient.ProductInput{
		{Name: "Classic", Price: 15000, Category: "burgers"},
		{Name: "Double", Price: 22000, Category: "burgers"},
	} {
		_, err := admin.Products.Create(ctx, in)
		require.NoError(t, err)
	}
	_, err := admin.Products.Create(ctx, apiclient.ProductInput{Name: "Free", Price: 0})
	assert.EqualError(t, err, "price must be at least 1")

	_, err = admin.Toppings.Create(ctx, apiclient.ToppingInput{Name: "Bacon", Price: 2000})
	require.NoError(t, err)

	require.NoError(t, admin.Products.Fetch(ctx, 10))
	st := admin.Products.State()
	assert.Len(t, st.Items, 2)
	assert.Equal(t, 2, st.Meta.Total)

	_, err = admin.Products.Update(ctx, "Classic", apiclient.ProductInput{Name: "Classic", Price: 16000, Category: "burgers"})
	require.NoError(t, err)
	p, ok := admin.Products.Find("Classic")
	require.True(t, ok)
	assert.Equal(t, int64(16000), p.Price)

	require.NoError(t, admin.Products.Delete(ctx, "Double"))
	_, ok = admin.Products.Find("Double")
	assert.False(t, ok)

	// users come back as a bare array
	_, err = admin.Users.Create(ctx, apiclient.UserInput{Email: "ana@burger.co", Password: "secret1", FirstName: "Ana", LastName: "Diaz"})
	require.NoError(t, err)
	require.NoError(t, admin.Users.Fetch(ctx, 0))
	assert.Equal(t, 2, admin.Users.State().Meta.Total)

	require.Error(t, admin.Users.Delete(ctx, "boss@burger.co"))
	assert.Contains(t, admin.Users.State().Err.Error(), "cannot delete your own account")

	// customers cannot write the catalog
	customer := s.store(t)
	require.NoError(t, customer.Auth.Login(ctx, apiclient.Credentials{Email: "ana@burger.co", Password: "secret1"}))
	_, err = customer.Products.Create(ctx, apiclient.ProductInput{Name: "Sneaky", Price: 1})
	assert.EqualError(t, err, "forbidden")
	require.NoError(t, customer.Products.Fetch(ctx, 0))
	assert.Len(t, customer.Products.Items(), 1)
}

func TestCheckoutFlowPushesStatus(t *testing.T) {
	s := newServer(t)
	ctx := context.Background()
	admin := s.admin(t)

	classic, err := admin.Products.Create(ctx, apiclient.ProductInput{Name: "Classic", Price: 15000})
	require.NoError(t, err)
	bacon, err := admin.Toppings.Create(ctx, apiclient.ToppingInput{Name: "Bacon", Price: 2000})
	require.NoError(t, err)

	customer := s.store(t)
	require.NoError(t, customer.Auth.Register(ctx, apiclient.UserInput{
		Email: "mia@burger.co", Password: "secret1", FirstName: "Mia", LastName: "Paz",
	}))
	require.True(t, customer.Auth.IsAuthenticated())

	wsURL := "ws" + strings.TrimPrefix(s.URL, "http") + "/ws/orders?token=" + customer.Auth.Token()
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()
	assert.Eventually(t, func() bool { return s.hub.Connections() == 1 }, time.Second, 10*time.Millisecond)

	customer.Cart.Add(classic)
	customer.Cart.Add(classic)
	require.True(t, customer.Cart.SetTopping(classic.ID, bacon, 1))
	assert.Equal(t, int64(34000), customer.Cart.Totals().GrandTotal)

	sess, err := customer.Cart.Checkout(ctx, "Calle 1 #2-3", "")
	require.NoError(t, err)
	assert.Equal(t, int64(34000), sess.Total)
	assert.True(t, strings.HasPrefix(sess.URL, "https://pay.example/checkout?"))
	assert.Empty(t, customer.Cart.State().Items)

	c := apiclient.New(s.URL, apiclient.WithTokenSource(customer.Auth))
	order, err := c.Orders.ConfirmCheckout(ctx, sess.SessionID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderPaid, order.Status)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Bacon", order.Items[0].Toppings[0].Name)

	var ev ws.OrderEvent
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	require.NoError(t, conn.ReadJSON(&ev))
	assert.Equal(t, sess.OrderID, ev.OrderID)
	assert.Equal(t, entity.OrderPaid, ev.Status)

	// admin moves it along
	ac := apiclient.New(s.URL, apiclient.WithTokenSource(admin.Auth))
	order, err = ac.Orders.UpdateStatus(ctx, sess.OrderID, entity.OrderPreparing)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderPreparing, order.Status)

	_, err = ac.Orders.UpdateStatus(ctx, sess.OrderID, entity.OrderPaid)
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, apiclient.StatusOf(err))

	all, err := ac.Orders.GetAll(ctx, 10)
	require.NoError(t, err)
	assert.True(t, all.Paged)
	assert.Equal(t, 1, all.Meta.Total)

	mine, err := c.Orders.Mine(ctx)
	require.NoError(t, err)
	require.Len(t, mine.Items, 1)
	assert.Equal(t, entity.OrderPreparing, mine.Items[0].Status)

	// another customer cannot see it
	other := apiclient.New(s.URL)
	_, err = other.Auth.Register(ctx, apiclient.UserInput{Email: "leo@burger.co", Password: "secret1", FirstName: "Leo", LastName: "Ruiz"})
	require.NoError(t, err)
	_, err = other.Auth.Login(ctx, apiclient.Credentials{Email: "leo@burger.co", Password: "secret1"})
	require.NoError(t, err)
	_, err = other.Orders.GetByKey(ctx, sess.OrderID)
	assert.EqualError(t, err, "Not found")

	report, err := ac.Reports.Sales(ctx, time.Now(), time.Now())
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", report.ContentType)
	assert.True(t, strings.HasPrefix(string(report.Data), "%PDF"))
}

func TestToppingCapRejected(t *testing.T) {
	s := newServer(t)
	ctx := context.Background()
	admin := s.admin(t)

	classic, err := admin.Products.Create(ctx, apiclient.ProductInput{Name: "Classic", Price: 15000})
	require.NoError(t, err)
	bacon, err := admin.Toppings.Create(ctx, apiclient.ToppingInput{Name: "Bacon", Price: 2000})
	require.NoError(t, err)

	c := apiclient.New(s.URL, apiclient.WithTokenSource(admin.Auth))
	_, err = c.Orders.Create(ctx, apiclient.OrderInput{Items: []apiclient.OrderLine{{
		ProductID: classic.ID, Quantity: 1,
		Toppings: []apiclient.ToppingLine{{ToppingID: bacon.ID, Quantity: 6}},
	}}})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apiclient.StatusOf(err))
	assert.Contains(t, err.Error(), "too many toppings")
}

func TestBlankNamesRejectedByBinding(t *testing.T) {
	s := newServer(t)
	admin := s.admin(t)

	for _, path := range []string{"/products", "/toppings"} {
		req, err := http.NewRequest(http.MethodPost, s.URL+path, strings.NewReader(`{"name":"   ","price":100}`))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+admin.Auth.Token())

		res, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		res.Body.Close()
		assert.Equal(t, http.StatusBadRequest, res.StatusCode, path)
	}
}
