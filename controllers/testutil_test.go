package controllers

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"foodie/entity"
	"foodie/repository"
	"foodie/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

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

// newTestRouter wires the catalog and cart handlers the way routes.go does,
// with a stub auth layer that pins the given user id on every request.
func newTestRouter(db *gorm.DB, userID uint) *gin.Engine {
	r := gin.New()

	categoryCtrl := NewCategoryController(repository.NewCategoryRepository(db))
	restaurantCtrl := NewRestaurantController(repository.NewRestaurantRepository(db))
	menuCtrl := NewMenuController(repository.NewMenuRepository(db))
	cartSvc := services.NewCartService(db, repository.NewCartRepository(db), repository.NewMenuRepository(db))
	cartCtrl := NewCartController(cartSvc)

	api := r.Group("/api")
	api.GET("/categories/:id", categoryCtrl.Detail)
	api.GET("/restaurants/:id", restaurantCtrl.Detail)
	api.GET("/restaurants/:id/menu", menuCtrl.ListByRestaurant)
	api.GET("/menu/:id", menuCtrl.Detail)

	cart := api.Group("/cart", func(c *gin.Context) {
		c.Set("userId", userID)
		c.Next()
	})
	cart.GET("", cartCtrl.Get)
	cart.POST("", cartCtrl.Add)

	return r
}

// seedCatalogData creates a category, one restaurant under it and one menu
// item on the restaurant.
func seedCatalogData(t *testing.T, db *gorm.DB) (entity.Category, entity.Restaurant, entity.MenuItem) {
	t.Helper()

	cat := entity.Category{Name: "Pizza", Icon: "🍕"}
	require.NoError(t, db.Create(&cat).Error)

	rest := entity.Restaurant{Name: "Slice House", Cuisine: "Italian • Pizza", CategoryID: cat.ID}
	require.NoError(t, db.Create(&rest).Error)

	item := entity.MenuItem{Name: "Margherita", Price: 249, IsPopular: true, RestaurantID: rest.ID}
	require.NoError(t, db.Create(&item).Error)

	return cat, rest, item
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
