package services

import (
	"errors"
	"fmt"
	"strings"

	"burgerhouse/entity"
	"burgerhouse/repository"

	"gorm.io/gorm"
)

type ToppingService struct {
	Repo *repository.ToppingRepository
}

func NewToppingService(repo *repository.ToppingRepository) *ToppingService {
	return &ToppingService{Repo: repo}
}

type ToppingIn struct {
	Name      string `json:"name" binding:"required,notblank"`
	Price     int64  `json:"price" binding:"min=0"`
	Available *bool  `json:"available"`
}

func (s *ToppingService) List(page, limit int, onlyAvailable bool) ([]entity.Topping, int64, error) {
	return s.Repo.List(page, limit, onlyAvailable)
}

func (s *ToppingService) Get(name string) (*entity.Topping, error) {
	t, err := s.Repo.FindByName(strings.TrimSpace(name))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return t, err
}

func (s *ToppingService) Create(in *ToppingIn) (*entity.Topping, error) {
	name, err := cleanName(in.Name)
	if err != nil {
		return nil, err
	}
	if err := s.ensureFree(name); err != nil {
		return nil, err
	}
	t := &entity.Topping{
		Name:      name,
		Price:     in.Price,
		Available: in.Available == nil || *in.Available,
	}
	if err := s.Repo.Create(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *ToppingService) Update(name string, in *ToppingIn) (*entity.Topping, error) {
	t, err := s.Get(name)
	if err != nil {
		return nil, err
	}
	newName, err := cleanName(in.Name)
	if err != nil {
		return nil, err
	}
	if newName != t.Name {
		if err := s.ensureFree(newName); err != nil {
			return nil, err
		}
	}

	fields := map[string]any{"name": newName, "price": in.Price}
	if in.Available != nil {
		fields["available"] = *in.Available
	}
	if err := s.Repo.Update(t.ID, fields); err != nil {
		return nil, err
	}
	return s.Repo.FindByName(newName)
}

func (s *ToppingService) Delete(name string) error {
	t, err := s.Get(name)
	if err != nil {
		return err
	}
	return s.Repo.Delete(t.ID)
}

func (s *ToppingService) ensureFree(name string) error {
	n, err := s.Repo.CountByName(name)
	if err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("topping %q %w", name, ErrConflict)
	}
	return nil
}
