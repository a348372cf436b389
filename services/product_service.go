package services

import (
	"errors"
	"fmt"
	"strings"

	"burgerhouse/entity"
	"burgerhouse/repository"

	"gorm.io/gorm"
)

type ProductService struct {
	Repo *repository.ProductRepository
}

func NewProductService(repo *repository.ProductRepository) *ProductService {
	return &ProductService{Repo: repo}
}

type ProductIn struct {
	Name        string `json:"name" binding:"required,notblank"`
	Description string `json:"description"`
	Price       int64  `json:"price" binding:"required,min=1"`
	ImageURL    string `json:"imageUrl" binding:"omitempty,url"`
	Category    string `json:"category"`
	Available   *bool  `json:"available"`
}

func (s *ProductService) List(page, limit int, onlyAvailable bool) ([]entity.Product, int64, error) {
	return s.Repo.List(page, limit, onlyAvailable)
}

func (s *ProductService) Get(name string) (*entity.Product, error) {
	p, err := s.Repo.FindByName(strings.TrimSpace(name))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return p, err
}

func (s *ProductService) Create(in *ProductIn) (*entity.Product, error) {
	name, err := cleanName(in.Name)
	if err != nil {
		return nil, err
	}
	if err := s.ensureFree(name); err != nil {
		return nil, err
	}
	p := &entity.Product{
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Price:       in.Price,
		ImageURL:    in.ImageURL,
		Category:    strings.TrimSpace(in.Category),
		Available:   in.Available == nil || *in.Available,
	}
	if err := s.Repo.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Update matches the product by its current name; in.Name may rename it.
func (s *ProductService) Update(name string, in *ProductIn) (*entity.Product, error) {
	p, err := s.Get(name)
	if err != nil {
		return nil, err
	}
	newName, err := cleanName(in.Name)
	if err != nil {
		return nil, err
	}
	if newName != p.Name {
		if err := s.ensureFree(newName); err != nil {
			return nil, err
		}
	}

	fields := map[string]any{
		"name":        newName,
		"description": strings.TrimSpace(in.Description),
		"price":       in.Price,
		"image_url":   in.ImageURL,
		"category":    strings.TrimSpace(in.Category),
	}
	if in.Available != nil {
		fields["available"] = *in.Available
	}
	if err := s.Repo.Update(p.ID, fields); err != nil {
		return nil, err
	}
	return s.Repo.FindByName(newName)
}

func (s *ProductService) Delete(name string) error {
	p, err := s.Get(name)
	if err != nil {
		return err
	}
	return s.Repo.Delete(p.ID)
}

func (s *ProductService) ensureFree(name string) error {
	n, err := s.Repo.CountByName(name)
	if err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("product %q %w", name, ErrConflict)
	}
	return nil
}
