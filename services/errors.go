package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("already exists")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrEmptyOrder        = errors.New("order has no items")
	ErrToppingLimit      = errors.New("too many toppings for one item")
	ErrUnavailable       = errors.New("item is not available")
	ErrInvalidCredential = errors.New("invalid credentials")
	ErrBadRange          = errors.New("invalid date range")
	ErrInvalidInput      = errors.New("invalid input")
)

// cleanName trims a catalog name and rejects one that is left empty.
func cleanName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("name is required: %w", ErrInvalidInput)
	}
	return name, nil
}
