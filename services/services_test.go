package services

import (
	"encoding/base64"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"burgerhouse/configs"
	"burgerhouse/entity"
	"burgerhouse/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type statusEvent struct {
	UserID, OrderID uint
	Status          string
}

type recorder struct {
	mu     sync.Mutex
	events []statusEvent
}

func (r *recorder) OrderStatusChanged(userID, orderID uint, status string) {
	r.mu.Lock()
	r.events = append(r.events, statusEvent{userID, orderID, status})
	r.mu.Unlock()
}

func (r *recorder) last() statusEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.events[len(r.events)-1]
}

type fixture struct {
	db       *gorm.DB
	orders   *OrderService
	checkout *CheckoutService
	notes    *recorder
	customer *entity.User
	other    *entity.User
	classic  *entity.Product
	double   *entity.Product
	bacon    *entity.Topping
	cheese   *entity.Topping
}

func setup(t *testing.T) *fixture {
	t.Helper()
	db, err := configs.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, configs.SetupDatabase(db))
	require.NoError(t, configs.SeedLookups(db))

	f := &fixture{db: db, notes: &recorder{}}
	f.customer = &entity.User{Email: "ana@burger.co", FirstName: "Ana", LastName: "Diaz", Role: entity.RoleCustomer}
	f.other = &entity.User{Email: "leo@burger.co", FirstName: "Leo", LastName: "Ruiz", Role: entity.RoleCustomer}
	f.classic = &entity.Product{Name: "Classic", Price: 15000, Available: true}
	f.double = &entity.Product{Name: "Double", Price: 22000, Available: true}
	f.bacon = &entity.Topping{Name: "Bacon", Price: 2000, Available: true}
	f.cheese = &entity.Topping{Name: "Cheese", Price: 1500, Available: true}
	for _, row := range []any{f.customer, f.other, f.classic, f.double, f.bacon, f.cheese} {
		require.NoError(t, db.Create(row).Error)
	}

	f.orders = NewOrderService(db, repository.NewOrderRepository(db),
		repository.NewProductRepository(db), repository.NewToppingRepository(db), f.notes)
	f.checkout = NewCheckoutService(db, repository.NewCheckoutRepository(db), f.orders,
		"https://pay.example/checkout", "http://localhost:5173/")
	return f
}

func (f *fixture) classicWithBacon() *CreateOrderIn {
	return &CreateOrderIn{
		Items: []OrderLineIn{{
			ProductID: f.classic.ID, Quantity: 2,
			Toppings: []ToppingLineIn{{ToppingID: f.bacon.ID, Quantity: 1}},
		}},
		Address: "Calle 1 #2-3",
	}
}

func TestCreateOrderPricesFromCatalog(t *testing.T) {
	f := setup(t)

	o, err := f.orders.Create(f.customer.ID, f.classicWithBacon())
	require.NoError(t, err)
	assert.Equal(t, int64(30000), o.Subtotal)
	assert.Equal(t, int64(4000), o.ToppingsTotal)
	assert.Equal(t, int64(34000), o.Total)
	assert.Equal(t, entity.OrderPending, o.OrderStatus.StatusName)

	require.Len(t, o.OrderItems, 1)
	it := o.OrderItems[0]
	assert.Equal(t, "Classic", it.Name)
	assert.Equal(t, 2, it.Qty)
	require.Len(t, it.Toppings, 1)
	assert.Equal(t, "Bacon", it.Toppings[0].Name)
	assert.Equal(t, int64(2000), it.Toppings[0].UnitPrice)
}

func TestCreateOrderRejects(t *testing.T) {
	f := setup(t)

	tooMany := &CreateOrderIn{Items: []OrderLineIn{{
		ProductID: f.classic.ID, Quantity: 1,
		Toppings: []ToppingLineIn{{ToppingID: f.bacon.ID, Quantity: 3}, {ToppingID: f.cheese.ID, Quantity: 3}},
	}}}
	_, err := f.orders.Create(f.customer.ID, tooMany)
	assert.ErrorIs(t, err, ErrToppingLimit)

	// 3 + 3 of the same topping is 6 on one burger
	repeated := &CreateOrderIn{Items: []OrderLineIn{{
		ProductID: f.classic.ID, Quantity: 1,
		Toppings: []ToppingLineIn{{ToppingID: f.bacon.ID, Quantity: 3}, {ToppingID: f.bacon.ID, Quantity: 3}},
	}}}
	_, err = f.orders.Create(f.customer.ID, repeated)
	assert.ErrorIs(t, err, ErrToppingLimit)

	onlyZero := &CreateOrderIn{Items: []OrderLineIn{{ProductID: f.classic.ID, Quantity: 0}}}
	_, err = f.orders.Create(f.customer.ID, onlyZero)
	assert.ErrorIs(t, err, ErrEmptyOrder)

	unknown := &CreateOrderIn{Items: []OrderLineIn{{ProductID: 9999, Quantity: 1}}}
	_, err = f.orders.Create(f.customer.ID, unknown)
	assert.ErrorIs(t, err, ErrUnavailable)

	twice := &CreateOrderIn{Items: []OrderLineIn{
		{ProductID: f.classic.ID, Quantity: 1}, {ProductID: f.classic.ID, Quantity: 2},
	}}
	_, err = f.orders.Create(f.customer.ID, twice)
	assert.ErrorIs(t, err, ErrInvalidInput)

	require.NoError(t, f.db.Model(f.double).Update("available", false).Error)
	off := &CreateOrderIn{Items: []OrderLineIn{{ProductID: f.double.ID, Quantity: 1}}}
	_, err = f.orders.Create(f.customer.ID, off)
	assert.ErrorIs(t, err, ErrUnavailable)

	var n int64
	require.NoError(t, f.db.Model(&entity.Order{}).Count(&n).Error)
	assert.Zero(t, n, "rejected orders leave nothing behind")
}

func TestRepeatedToppingQuantitiesAddUp(t *testing.T) {
	f := setup(t)
	in := &CreateOrderIn{Items: []OrderLineIn{{
		ProductID: f.classic.ID, Quantity: 1,
		Toppings: []ToppingLineIn{{ToppingID: f.bacon.ID, Quantity: 1}, {ToppingID: f.bacon.ID, Quantity: 2}},
	}}}
	o, err := f.orders.Create(f.customer.ID, in)
	require.NoError(t, err)
	require.Len(t, o.OrderItems[0].Toppings, 1)
	assert.Equal(t, 3, o.OrderItems[0].Toppings[0].Qty)
	assert.Equal(t, int64(6000), o.ToppingsTotal)
}

func TestZeroQuantityLinesAreSkipped(t *testing.T) {
	f := setup(t)
	in := &CreateOrderIn{Items: []OrderLineIn{
		{ProductID: f.classic.ID, Quantity: 0, Toppings: []ToppingLineIn{{ToppingID: f.bacon.ID, Quantity: 2}}},
		{ProductID: f.double.ID, Quantity: 1},
	}}
	o, err := f.orders.Create(f.customer.ID, in)
	require.NoError(t, err)
	require.Len(t, o.OrderItems, 1)
	assert.Equal(t, int64(22000), o.Total)
}

func TestDetailHidesOtherUsersOrders(t *testing.T) {
	f := setup(t)
	o, err := f.orders.Create(f.customer.ID, f.classicWithBacon())
	require.NoError(t, err)

	_, err = f.orders.Detail(f.other.ID, o.ID, false)
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := f.orders.Detail(f.other.ID, o.ID, true)
	require.NoError(t, err)
	assert.Equal(t, o.ID, got.ID)

	mine, err := f.orders.ListForUser(f.customer.ID, 0)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	rows, total, err := f.orders.List(entity.OrderPending, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, "Ana Diaz", rows[0].CustomerName)

	_, _, err = f.orders.List("Lost", 1, 10)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCheckoutConfirmMovesOrderToPaid(t *testing.T) {
	f := setup(t)

	out, err := f.checkout.Start(f.customer.ID, f.classicWithBacon())
	require.NoError(t, err)
	assert.Equal(t, int64(34000), out.Total)
	assert.Contains(t, out.URL, "https://pay.example/checkout?")
	assert.Contains(t, out.URL, "session_id="+out.SessionID)
	assert.Contains(t, out.URL, "localhost%3A5173%2Fcheckout%2Fsuccess")

	_, err = f.checkout.Confirm(f.other.ID, out.SessionID, false)
	assert.ErrorIs(t, err, ErrNotFound)

	o, err := f.checkout.Confirm(f.customer.ID, out.SessionID, false)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderPaid, o.OrderStatus.StatusName)
	assert.Equal(t, statusEvent{f.customer.ID, o.ID, entity.OrderPaid}, f.notes.last())

	var sess entity.CheckoutSession
	require.NoError(t, f.db.Preload("PaymentStatus").First(&sess, "id = ?", out.SessionID).Error)
	assert.Equal(t, entity.PaymentPaid, sess.PaymentStatus.StatusName)
	assert.NotNil(t, sess.PaidAt)

	_, err = f.checkout.Cancel(f.customer.ID, out.SessionID, false)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestCheckoutCancel(t *testing.T) {
	f := setup(t)
	out, err := f.checkout.Start(f.customer.ID, f.classicWithBacon())
	require.NoError(t, err)

	o, err := f.checkout.Cancel(f.customer.ID, out.SessionID, false)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderCancelled, o.OrderStatus.StatusName)

	_, err = f.checkout.Confirm(f.customer.ID, "no-such-session", false)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAdminStatusTransitions(t *testing.T) {
	f := setup(t)
	out, err := f.checkout.Start(f.customer.ID, f.classicWithBacon())
	require.NoError(t, err)

	_, err = f.orders.UpdateStatus(out.OrderID, entity.OrderPreparing)
	assert.ErrorIs(t, err, ErrInvalidTransition, "pending cannot skip payment")

	_, err = f.checkout.Confirm(f.customer.ID, out.SessionID, false)
	require.NoError(t, err)

	o, err := f.orders.UpdateStatus(out.OrderID, entity.OrderPreparing)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderPreparing, o.OrderStatus.StatusName)

	o, err = f.orders.UpdateStatus(out.OrderID, entity.OrderCompleted)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderCompleted, o.OrderStatus.StatusName)
	assert.Equal(t, entity.OrderCompleted, f.notes.last().Status)

	_, err = f.orders.UpdateStatus(out.OrderID, entity.OrderCancelled)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = f.orders.UpdateStatus(424242, entity.OrderCancelled)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReports(t *testing.T) {
	f := setup(t)
	reports := NewReportService(repository.NewReportRepository(f.db))

	for i := 0; i < 2; i++ {
		out, err := f.checkout.Start(f.customer.ID, f.classicWithBacon())
		require.NoError(t, err)
		_, err = f.checkout.Confirm(f.customer.ID, out.SessionID, false)
		require.NoError(t, err)
	}
	// pending orders are not sales
	_, err := f.orders.Create(f.customer.ID, &CreateOrderIn{Items: []OrderLineIn{{ProductID: f.double.ID, Quantity: 3}}})
	require.NoError(t, err)

	rows, err := repository.NewReportRepository(f.db).SalesBetween(
		time.Now().Add(-time.Hour), time.Now().Add(time.Hour), salesStatuses)
	require.NoError(t, err)
	sum := Summarize(rows)
	assert.Equal(t, 2, sum.Orders)
	assert.Equal(t, int64(68000), sum.Total)
	assert.Equal(t, "34000.00", sum.Average.StringFixed(2))

	file, err := reports.Sales(time.Now(), time.Now())
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", file.ContentType)
	pdf, err := base64.StdEncoding.DecodeString(file.Content)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(pdf[:4]))

	_, err = reports.Sales(time.Now(), time.Now().AddDate(0, 0, -2))
	assert.ErrorIs(t, err, ErrBadRange)

	top, err := reports.TopProducts(5)
	require.NoError(t, err)
	assert.Contains(t, top.Filename, "top_products_")

	ranked, err := repository.NewReportRepository(f.db).TopProducts(5, salesStatuses)
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	assert.Equal(t, "Classic", ranked[0].Name)
	assert.EqualValues(t, 4, ranked[0].Qty)
}

func TestRankProductsShareCoversAllSales(t *testing.T) {
	f := setup(t)
	reports := NewReportService(repository.NewReportRepository(f.db))

	pay := func(in *CreateOrderIn) {
		out, err := f.checkout.Start(f.customer.ID, in)
		require.NoError(t, err)
		_, err = f.checkout.Confirm(f.customer.ID, out.SessionID, false)
		require.NoError(t, err)
	}
	// Classic: 3 units, 45000. Double with bacon: 24000. All item revenue: 69000.
	pay(&CreateOrderIn{Items: []OrderLineIn{{
		ProductID: f.classic.ID, Quantity: 3,
	}}})
	pay(&CreateOrderIn{Items: []OrderLineIn{{
		ProductID: f.double.ID, Quantity: 1,
		Toppings: []ToppingLineIn{{ToppingID: f.bacon.ID, Quantity: 1}},
	}}})

	ranked, err := reports.RankProducts(1)
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	assert.Equal(t, "Classic", ranked[0].Name)
	// 45000 of 69000, not 100% of the single ranked row
	assert.Equal(t, "65.2", ranked[0].Share.StringFixed(1))
}

func TestShare(t *testing.T) {
	assert.Equal(t, "25.0", Share(1, 4).StringFixed(1))
	assert.True(t, Share(5, 0).IsZero())
}
