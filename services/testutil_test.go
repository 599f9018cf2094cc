package services

import (
	"path/filepath"
	"testing"

	"foodie/entity"
	"foodie/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db") + "?_busy_timeout=5000"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Category{}, &entity.Restaurant{}, &entity.MenuItem{},
		&entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
	))
	return db
}

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(db, repository.NewCartRepository(db), repository.NewMenuRepository(db))
}

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(db, repository.NewOrderRepository(db), repository.NewCartRepository(db))
}

func seedUser(t *testing.T, db *gorm.DB, email string) uint {
	t.Helper()
	u := entity.User{Name: "Test User", Email: email, Password: "x"}
	require.NoError(t, db.Create(&u).Error)
	return u.ID
}

// seedCatalog creates one restaurant with two items: A at 40.00 and B at 90.00.
func seedCatalog(t *testing.T, db *gorm.DB) (entity.Restaurant, entity.MenuItem, entity.MenuItem) {
	t.Helper()

	rest := entity.Restaurant{Name: "Amma Mess", Cuisine: "Tamil Nadu"}
	require.NoError(t, db.Create(&rest).Error)

	itemA := entity.MenuItem{Name: "Kari Dosai", Price: 40, RestaurantID: rest.ID}
	itemB := entity.MenuItem{Name: "Mutton Chukka", Price: 90, RestaurantID: rest.ID}
	require.NoError(t, db.Create(&itemA).Error)
	require.NoError(t, db.Create(&itemB).Error)

	return rest, itemA, itemB
}

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}
