package routes

import (
	"foodie/configs"
	"foodie/controllers"
	"foodie/middlewares"
	"foodie/repository"
	"foodie/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	restaurantRepo := repository.NewRestaurantRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	cartSvc := services.NewCartService(db, cartRepo, menuRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	categoryCtrl := controllers.NewCategoryController(categoryRepo)
	restaurantCtrl := controllers.NewRestaurantController(restaurantRepo)
	menuCtrl := controllers.NewMenuController(menuRepo)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)

	api := r.Group("/api")

	// Auth
	a := api.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.Me)
	}

	// Catalog (public)
	api.GET("/categories", categoryCtrl.List)
	api.GET("/categories/:id", categoryCtrl.Detail)
	api.GET("/restaurants", restaurantCtrl.List)
	api.GET("/restaurants/:id", restaurantCtrl.Detail)
	api.GET("/restaurants/:id/menu", menuCtrl.ListByRestaurant)
	api.GET("/menu/:id", menuCtrl.Detail)

	// Cart (auth required)
	cart := api.Group("/cart", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		cart.GET("", cartCtrl.Get)
		cart.POST("", cartCtrl.Add)
		cart.PUT("/:id", cartCtrl.UpdateQty)
		cart.DELETE("/:id", cartCtrl.Remove)
		cart.DELETE("", cartCtrl.Clear)
	}

	// Orders (auth required)
	orders := api.Group("/orders", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		orders.GET("", orderCtrl.List)
		orders.GET("/:id", orderCtrl.Detail)
		orders.POST("", orderCtrl.Place)
		orders.PATCH("/:id/status", orderCtrl.UpdateStatus)
	}
}
