package services

import (
	"errors"
	"fmt"
	"strings"

	"burgerhouse/entity"
	"burgerhouse/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService backs the admin user screens. Users are addressed by email.
type UserService struct {
	Repo *repository.UserRepository
}

func NewUserService(repo *repository.UserRepository) *UserService {
	return &UserService{Repo: repo}
}

type UserIn struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"omitempty,min=6"`
	FirstName   string `json:"firstName" binding:"required,notblank"`
	LastName    string `json:"lastName" binding:"required,notblank"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
	Role        string `json:"role" binding:"omitempty,oneof=customer admin"`
}

func (s *UserService) List(limit int) ([]entity.User, error) {
	return s.Repo.List(limit)
}

func (s *UserService) Get(email string) (*entity.User, error) {
	u, err := s.Repo.FindByEmail(normalizeEmail(email))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return u, err
}

func (s *UserService) Create(in *UserIn) (*entity.User, error) {
	if in.Password == "" {
		return nil, fmt.Errorf("password is required: %w", ErrInvalidInput)
	}
	email := normalizeEmail(in.Email)
	n, err := s.Repo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, fmt.Errorf("email already registered: %w", ErrConflict)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		Email:       email,
		Password:    string(hash),
		FirstName:   strings.TrimSpace(in.FirstName),
		LastName:    strings.TrimSpace(in.LastName),
		PhoneNumber: strings.TrimSpace(in.PhoneNumber),
		Address:     strings.TrimSpace(in.Address),
		Role:        roleOrDefault(in.Role),
	}
	if err := s.Repo.Create(u); err != nil {
		return nil, err
	}
	return u, nil
}

// Update rewrites the user found by email. The email itself may change as
// long as the new one is free; an empty password keeps the old one.
func (s *UserService) Update(email string, in *UserIn) (*entity.User, error) {
	u, err := s.Get(email)
	if err != nil {
		return nil, err
	}

	newEmail := normalizeEmail(in.Email)
	if newEmail != u.Email {
		n, err := s.Repo.CountByEmail(newEmail)
		if err != nil {
			return nil, err
		}
		if n > 0 {
			return nil, fmt.Errorf("email already registered: %w", ErrConflict)
		}
	}

	updates := map[string]any{
		"email":        newEmail,
		"first_name":   strings.TrimSpace(in.FirstName),
		"last_name":    strings.TrimSpace(in.LastName),
		"phone_number": strings.TrimSpace(in.PhoneNumber),
		"address":      strings.TrimSpace(in.Address),
	}
	if in.Role != "" {
		updates["role"] = in.Role
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		updates["password"] = string(hash)
	}
	if err := s.Repo.Update(u.ID, updates); err != nil {
		return nil, err
	}
	return s.Repo.FindByID(u.ID)
}

// Delete removes the user by email. Admins cannot delete themselves.
func (s *UserService) Delete(actorID uint, email string) error {
	u, err := s.Get(email)
	if err != nil {
		return err
	}
	if u.ID == actorID {
		return fmt.Errorf("cannot delete your own account: %w", ErrForbidden)
	}
	return s.Repo.Delete(u.ID)
}

func roleOrDefault(role string) string {
	if role == "" {
		return entity.RoleCustomer
	}
	return role
}
