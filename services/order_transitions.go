package services

import (
	"errors"
	"fmt"

	"burgerhouse/entity"

	"gorm.io/gorm"
)

// allowedTransitions lists the moves an admin may make by hand. Paid is only
// reached through checkout.
var allowedTransitions = map[string][]string{
	entity.OrderPaid:      {entity.OrderPreparing},
	entity.OrderPreparing: {entity.OrderCompleted},
	entity.OrderPending:   {entity.OrderCancelled},
}

func canMove(from, to string) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// UpdateStatus moves orderID to the status named to.
func (s *OrderService) UpdateStatus(orderID uint, to string) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	from := o.OrderStatus.StatusName
	if !canMove(from, to) {
		return nil, fmt.Errorf("%s -> %s: %w", from, to, ErrInvalidTransition)
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.moveTx(tx, o.ID, from, to)
	})
	if err != nil {
		return nil, err
	}
	s.notify(o.UserID, o.ID, to)
	return s.Repo.GetOrder(o.ID)
}

// moveTx is the guarded status update shared by admin moves and checkout.
// It fails with ErrInvalidTransition when the order already left from.
func (s *OrderService) moveTx(tx *gorm.DB, orderID uint, from, to string) error {
	affected, err := s.Repo.UpdateStatusGuard(tx, orderID, s.Status[from], s.Status[to])
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%s -> %s: %w", from, to, ErrInvalidTransition)
	}
	return nil
}

func (s *OrderService) notify(userID, orderID uint, status string) {
	if s.Notifier != nil {
		s.Notifier.OrderStatusChanged(userID, orderID, status)
	}
}
