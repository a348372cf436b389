package services

import (
	"testing"
	"time"

	"burgerhouse/entity"
	"burgerhouse/repository"
	"burgerhouse/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductCRUDByName(t *testing.T) {
	f := setup(t)
	svc := NewProductService(repository.NewProductRepository(f.db))

	_, err := svc.Create(&ProductIn{Name: " Classic ", Price: 1})
	assert.ErrorIs(t, err, ErrConflict)

	_, err = svc.Create(&ProductIn{Name: "   ", Price: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.Update("Classic", &ProductIn{Name: " ", Price: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	off := false
	p, err := svc.Create(&ProductIn{Name: "Veggie", Price: 18000, Available: &off})
	require.NoError(t, err)
	assert.False(t, p.Available)

	p, err = svc.Update("Veggie", &ProductIn{Name: "Veggie Deluxe", Price: 19000})
	require.NoError(t, err)
	assert.Equal(t, "Veggie Deluxe", p.Name)
	assert.False(t, p.Available, "nil available keeps the stored flag")

	_, err = svc.Update("Veggie Deluxe", &ProductIn{Name: "Double", Price: 19000})
	assert.ErrorIs(t, err, ErrConflict)

	_, err = svc.Get("Veggie")
	assert.ErrorIs(t, err, ErrNotFound)

	all, total, err := svc.List(1, 10, false)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, all, 3)

	_, total, err = svc.List(1, 10, true)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)

	require.NoError(t, svc.Delete("Veggie Deluxe"))
	assert.ErrorIs(t, svc.Delete("Veggie Deluxe"), ErrNotFound)

	// soft-deleted names can be reused
	_, err = svc.Create(&ProductIn{Name: "Veggie Deluxe", Price: 20000})
	assert.NoError(t, err)
}

func TestToppingCRUDByName(t *testing.T) {
	f := setup(t)
	svc := NewToppingService(repository.NewToppingRepository(f.db))

	tp, err := svc.Create(&ToppingIn{Name: "Onion", Price: 0})
	require.NoError(t, err)
	assert.True(t, tp.Available)

	_, err = svc.Create(&ToppingIn{Name: "Bacon", Price: 100})
	assert.ErrorIs(t, err, ErrConflict)

	_, err = svc.Create(&ToppingIn{Name: "\t ", Price: 100})
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.Update("Bacon", &ToppingIn{Name: "  ", Price: 100})
	assert.ErrorIs(t, err, ErrInvalidInput)

	tp, err = svc.Update("Onion", &ToppingIn{Name: "Onion", Price: 500})
	require.NoError(t, err)
	assert.Equal(t, int64(500), tp.Price)

	require.NoError(t, svc.Delete("Onion"))
	_, err = svc.Get("Onion")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserAdmin(t *testing.T) {
	f := setup(t)
	svc := NewUserService(repository.NewUserRepository(f.db))

	_, err := svc.Create(&UserIn{Email: "new@burger.co", FirstName: "N", LastName: "U"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	u, err := svc.Create(&UserIn{Email: "New@Burger.co", Password: "secret1", FirstName: "N", LastName: "U"})
	require.NoError(t, err)
	assert.Equal(t, "new@burger.co", u.Email)
	assert.Equal(t, entity.RoleCustomer, u.Role)

	_, err = svc.Create(&UserIn{Email: "ana@burger.co", Password: "secret1", FirstName: "A", LastName: "D"})
	assert.ErrorIs(t, err, ErrConflict)

	u, err = svc.Update("new@burger.co", &UserIn{Email: "renamed@burger.co", FirstName: "N", LastName: "U", Role: entity.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, "renamed@burger.co", u.Email)
	assert.Equal(t, entity.RoleAdmin, u.Role)

	assert.ErrorIs(t, svc.Delete(u.ID, "renamed@burger.co"), ErrForbidden)
	require.NoError(t, svc.Delete(f.customer.ID, "renamed@burger.co"))

	users, err := svc.List(0)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestRegisterAndLogin(t *testing.T) {
	f := setup(t)
	svc := NewAuthService(repository.NewUserRepository(f.db), "test-secret", time.Hour)

	u, err := svc.Register(&RegisterIn{Email: " Mia@Burger.co", Password: "secret1", FirstName: "Mia", LastName: "Paz"})
	require.NoError(t, err)
	assert.Equal(t, "mia@burger.co", u.Email)

	_, err = svc.Register(&RegisterIn{Email: "mia@burger.co", Password: "secret1", FirstName: "Mia", LastName: "Paz"})
	assert.ErrorIs(t, err, ErrConflict)

	_, _, err = svc.Login("mia@burger.co", "wrong-pass")
	assert.ErrorIs(t, err, ErrInvalidCredential)

	token, user, err := svc.Login("MIA@burger.co", "secret1")
	require.NoError(t, err)
	assert.Equal(t, u.ID, user.ID)

	claims, err := utils.ParseToken(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)
	assert.Equal(t, entity.RoleCustomer, claims.Role)

	_, err = utils.ParseToken(token, "other-secret")
	assert.Error(t, err)
}
