// Package routes wires repositories, services and handlers onto the
// fiber app.
package routes

import (
	"shopback/internal/config"
	"shopback/internal/handlers"
	"shopback/internal/middleware"
	"shopback/internal/repositories"
	"shopback/internal/services/auth"
	"shopback/internal/services/order"
	"shopback/internal/services/product"
	"shopback/internal/services/user"
	"shopback/internal/services/wallet"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	cashback := config.CashbackFromEnv()

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	walletRepo := repositories.NewWalletRepository(db)
	productRepo := repositories.NewProductRepository(db)
	orderRepo := repositories.NewOrderRepository(db)

	// Services
	authService := auth.NewService(userRepo)
	userService := user.NewService(userRepo)
	walletService := wallet.NewService(walletRepo, repositories.CacheService, cashback)
	productService := product.NewService(productRepo, repositories.CacheService, cashback)
	orderService := order.NewService(orderRepo, productRepo, walletService, cashback)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService, walletService)
	walletHandler := handlers.NewWalletHandler(walletService)
	productHandler := handlers.NewProductHandler(productService)
	orderHandler := handlers.NewOrderHandler(orderService)

	authMiddleware := middleware.NewAuthMiddleware(authService)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to the Shopback API",
			"version": "1.0.0",
		})
	})

	api := app.Group("/api")

	// Public endpoints
	api.Post("/users/register", userHandler.Register)
	api.Post("/users/login", authHandler.Login)
	api.Post("/users/refresh", authHandler.RefreshToken)
	api.Get("/products", productHandler.List)
	api.Get("/products/category/:category", productHandler.ListByCategory)
	api.Get("/products/:id", productHandler.Get)

	// Authenticated endpoints
	api.Get("/users/me", authMiddleware.Handler, userHandler.Me)
	api.Post("/users/logout", authMiddleware.Handler, authHandler.Logout)
	api.Get("/wallet", authMiddleware.Handler, walletHandler.GetWallet)
	api.Post("/orders", authMiddleware.Handler, orderHandler.Checkout)
	api.Get("/orders", authMiddleware.Handler, orderHandler.List)
	api.Get("/orders/:id", authMiddleware.Handler, orderHandler.Get)

	// Admin endpoints
	api.Post("/products", authMiddleware.Handler, middleware.AdminOnly, productHandler.Create)
}
