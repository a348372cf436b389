package services

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"burgerhouse/entity"
	"burgerhouse/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Return paths on the frontend after the hosted checkout page is done.
const (
	CheckoutSuccessPath = "/checkout/success"
	CheckoutCancelPath  = "/checkout/cancel"
)

// CheckoutService opens hosted-checkout sessions for new orders and settles
// them when the customer comes back. The checkout page itself is external.
type CheckoutService struct {
	DB          *gorm.DB
	Repo        *repository.CheckoutRepository
	Orders      *OrderService
	CheckoutURL string
	FrontendURL string

	status map[string]uint
}

func NewCheckoutService(db *gorm.DB, repo *repository.CheckoutRepository, orders *OrderService, checkoutURL, frontendURL string) *CheckoutService {
	s := &CheckoutService{
		DB: db, Repo: repo, Orders: orders,
		CheckoutURL: checkoutURL, FrontendURL: strings.TrimRight(frontendURL, "/"),
		status: map[string]uint{},
	}
	for _, name := range entity.PaymentStatusNames {
		if id, err := repo.GetStatusIDByName(name); err == nil {
			s.status[name] = id
		}
	}
	return s
}

type CheckoutOut struct {
	SessionID string `json:"sessionId"`
	OrderID   uint   `json:"orderId"`
	URL       string `json:"url"`
	Total     int64  `json:"total"`
}

// Start creates a pending order and the session the browser is redirected to.
func (s *CheckoutService) Start(userID uint, in *CreateOrderIn) (*CheckoutOut, error) {
	var out CheckoutOut
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Orders.createTx(tx, userID, in)
		if err != nil {
			return err
		}

		id := uuid.NewString()
		sess := entity.CheckoutSession{
			ID:              id,
			Amount:          o.Total,
			URL:             s.sessionURL(id, o.Total),
			OrderID:         o.ID,
			PaymentStatusID: s.status[entity.PaymentPending],
		}
		if err := s.Repo.Create(tx, &sess); err != nil {
			return err
		}
		out = CheckoutOut{SessionID: id, OrderID: o.ID, URL: sess.URL, Total: o.Total}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Confirm marks the session paid and its order Paid.
func (s *CheckoutService) Confirm(userID uint, sessionID string, isAdmin bool) (*entity.Order, error) {
	return s.settle(userID, sessionID, isAdmin, entity.PaymentPaid, entity.OrderPaid)
}

// Cancel abandons the session and cancels its order.
func (s *CheckoutService) Cancel(userID uint, sessionID string, isAdmin bool) (*entity.Order, error) {
	return s.settle(userID, sessionID, isAdmin, entity.PaymentCancelled, entity.OrderCancelled)
}

func (s *CheckoutService) settle(userID uint, sessionID string, isAdmin bool, payStatus, orderStatus string) (*entity.Order, error) {
	sess, err := s.Repo.FindByID(sessionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	o, err := s.Orders.Detail(userID, sess.OrderID, isAdmin)
	if err != nil {
		return nil, err
	}
	if sess.PaymentStatus.StatusName != entity.PaymentPending {
		return nil, fmt.Errorf("session already %s: %w", strings.ToLower(sess.PaymentStatus.StatusName), ErrInvalidTransition)
	}

	var paidAt *time.Time
	if payStatus == entity.PaymentPaid {
		now := time.Now()
		paidAt = &now
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		n, err := s.Repo.UpdateStatusGuard(tx, sess.ID, s.status[entity.PaymentPending], s.status[payStatus], paidAt)
		if err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("session settled concurrently: %w", ErrInvalidTransition)
		}
		return s.Orders.moveTx(tx, o.ID, entity.OrderPending, orderStatus)
	})
	if err != nil {
		return nil, err
	}
	s.Orders.notify(o.UserID, o.ID, orderStatus)
	return s.Orders.Repo.GetOrder(o.ID)
}

func (s *CheckoutService) sessionURL(id string, amount int64) string {
	q := url.Values{}
	q.Set("session_id", id)
	q.Set("amount", fmt.Sprint(amount))
	q.Set("success_url", s.FrontendURL+CheckoutSuccessPath+"?session_id="+id)
	q.Set("cancel_url", s.FrontendURL+CheckoutCancelPath+"?session_id="+id)
	sep := "?"
	if strings.Contains(s.CheckoutURL, "?") {
		sep = "&"
	}
	return s.CheckoutURL + sep + q.Encode()
}
