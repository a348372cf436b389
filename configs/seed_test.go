package configs

import (
	"os"
	"path/filepath"
	"testing"

	"burgerhouse/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogYAML = `
products:
  - name: Classic
    price: 15000
    category: burgers
  - name: Double
    description: two patties
    price: 22000
    category: burgers
toppings:
  - name: Bacon
    price: 2000
  - name: Cheese
    price: 1500
`

func TestSeedCatalogIsIdempotent(t *testing.T) {
	db, err := Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, SetupDatabase(db))

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(catalogYAML), 0o644))

	require.NoError(t, SeedCatalog(db, path))
	require.NoError(t, SeedCatalog(db, path))

	var products, toppings int64
	db.Model(&entity.Product{}).Count(&products)
	db.Model(&entity.Topping{}).Count(&toppings)
	assert.Equal(t, int64(2), products)
	assert.Equal(t, int64(2), toppings)

	var double entity.Product
	require.NoError(t, db.Where("name = ?", "Double").First(&double).Error)
	assert.Equal(t, int64(22000), double.Price)
	assert.True(t, double.Available)
}

func TestSeedLookupsAndAdmin(t *testing.T) {
	db, err := Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, SetupDatabase(db))

	require.NoError(t, SeedLookups(db))
	require.NoError(t, SeedLookups(db))
	var n int64
	db.Model(&entity.OrderStatus{}).Count(&n)
	assert.Equal(t, int64(len(entity.OrderStatusNames)), n)

	cfg := &Config{AdminEmail: "Boss@Burger.co", AdminPassword: "secret1"}
	require.NoError(t, SeedAdmin(db, cfg))
	require.NoError(t, SeedAdmin(db, cfg))
	var admin entity.User
	require.NoError(t, db.Where("email = ?", "boss@burger.co").First(&admin).Error)
	assert.Equal(t, entity.RoleAdmin, admin.Role)

	require.NoError(t, SeedAdmin(db, &Config{}))
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := Open("oracle", "x")
	assert.Error(t, err)
}
