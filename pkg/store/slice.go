// Package store holds client-side state for the ordering app.
//
// Each slice owns a list, one loading flag per operation kind, the last error
// and pagination meta. Async operations follow pending → fulfilled | rejected:
// the flag goes up and the error is cleared, the API call runs without the lock
// held, and the outcome is folded back in. Concurrent calls are neither queued
// nor de-duplicated.
package store

import (
	"context"
	"sync"

	"burgerhouse/pkg/apiclient"
)

type Loading struct {
	Fetch  bool `json:"fetch"`
	Create bool `json:"create"`
	Update bool `json:"update"`
	Delete bool `json:"delete"`
}

type Meta struct {
	Total int `json:"total"`
}

// Resource is the CRUD surface a Slice drives. apiclient's Products, Toppings
// and Users wrappers satisfy it as they are.
type Resource[T, In any] interface {
	GetAll(ctx context.Context, limit int) (apiclient.List[T], error)
	Create(ctx context.Context, in In) (T, error)
	Update(ctx context.Context, key string, in In) (T, error)
	Delete(ctx context.Context, key string) error
}

// State is a point-in-time copy of a slice.
type State[T any] struct {
	Items   []T
	Loading Loading
	Err     error
	Meta    Meta
}

type Slice[T, In any] struct {
	mu      sync.RWMutex
	api     Resource[T, In]
	keyOf   func(T) string
	items   []T
	loading Loading
	err     error
	meta    Meta
}

// NewSlice builds a slice whose Update and Delete match items by keyOf.
func NewSlice[T, In any](api Resource[T, In], keyOf func(T) string) *Slice[T, In] {
	return &Slice[T, In]{api: api, keyOf: keyOf}
}

func (s *Slice[T, In]) State() State[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]T, len(s.items))
	copy(items, s.items)
	return State[T]{Items: items, Loading: s.loading, Err: s.err, Meta: s.meta}
}

func (s *Slice[T, In]) Items() []T { return s.State().Items }

// Find returns the item whose natural key is key.
func (s *Slice[T, In]) Find(key string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, it := range s.items {
		if s.keyOf(it) == key {
			return it, true
		}
	}
	var zero T
	return zero, false
}

func (s *Slice[T, In]) ClearError() {
	s.mu.Lock()
	s.err = nil
	s.mu.Unlock()
}

// Fetch replaces the list. On failure the previous list is kept.
func (s *Slice[T, In]) Fetch(ctx context.Context, limit int) error {
	s.pending(func(l *Loading) { l.Fetch = true })
	list, err := s.api.GetAll(ctx, limit)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading.Fetch = false
	if err != nil {
		s.err = err
		return err
	}
	s.items = list.Items
	s.meta = Meta{Total: list.Meta.Total}
	return nil
}

func (s *Slice[T, In]) Create(ctx context.Context, in In) (T, error) {
	if err := s.validate(in, true); err != nil {
		var zero T
		return zero, err
	}
	s.pending(func(l *Loading) { l.Create = true })
	created, err := s.api.Create(ctx, in)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading.Create = false
	if err != nil {
		s.err = err
		return created, err
	}
	s.items = append(s.items, created)
	s.meta.Total++
	return created, nil
}

// Update sends in for the item keyed key and swaps the stored copy.
func (s *Slice[T, In]) Update(ctx context.Context, key string, in In) (T, error) {
	if err := s.validate(in, false); err != nil {
		var zero T
		return zero, err
	}
	s.pending(func(l *Loading) { l.Update = true })
	updated, err := s.api.Update(ctx, key, in)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading.Update = false
	if err != nil {
		s.err = err
		return updated, err
	}
	for i, it := range s.items {
		if s.keyOf(it) == key {
			s.items[i] = updated
			break
		}
	}
	return updated, nil
}

func (s *Slice[T, In]) Delete(ctx context.Context, key string) error {
	s.pending(func(l *Loading) { l.Delete = true })
	err := s.api.Delete(ctx, key)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading.Delete = false
	if err != nil {
		s.err = err
		return err
	}
	kept := s.items[:0]
	removed := false
	for _, it := range s.items {
		if s.keyOf(it) == key {
			removed = true
			continue
		}
		kept = append(kept, it)
	}
	s.items = kept
	if removed && s.meta.Total > 0 {
		s.meta.Total--
	}
	return nil
}

// validate runs the input's form rules, if it has any. A failure is recorded
// like a rejected call and nothing is sent.
func (s *Slice[T, In]) validate(in In, creating bool) error {
	var err error
	switch v := any(in).(type) {
	case interface{ Validate() error }:
		err = v.Validate()
	case interface{ Validate(bool) error }:
		err = v.Validate(creating)
	}
	if err != nil {
		s.mu.Lock()
		s.err = err
		s.mu.Unlock()
	}
	return err
}

func (s *Slice[T, In]) pending(set func(*Loading)) {
	s.mu.Lock()
	set(&s.loading)
	s.err = nil
	s.mu.Unlock()
}
