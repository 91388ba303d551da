// Package routes defines the API routing configuration.
// It wires repositories, services and handlers together and applies
// the authentication middleware to the protected groups.
package routes

import (
	"github.com/gofiber/fiber/v2"

	"bankcards/internal/config"
	"bankcards/internal/handlers"
	"bankcards/internal/middleware"
	"bankcards/internal/repositories"
	"bankcards/internal/services/auth"
	"bankcards/internal/services/authz"
	"bankcards/internal/services/card"
	"bankcards/internal/services/transfer"
	"bankcards/internal/services/user"
)

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App) {
	cardRepo := repositories.NewCardRepository(repositories.DB)
	transferRepo := repositories.NewTransferRepository(repositories.DB)
	userRepo := repositories.NewUserRepository(repositories.DB, repositories.CacheService)

	policy := authz.NewPolicy()
	encryptionKey := []byte(config.MustGetEnv("CARD_ENCRYPTION_KEY"))

	authService := auth.NewService(userRepo)
	userService := user.NewService(userRepo, policy)
	cardService := card.NewService(cardRepo, repositories.CacheService, policy, encryptionKey)
	transferService := transfer.NewService(cardRepo, transferRepo, repositories.CacheService, policy)

	authHandler := handlers.NewAuthHandler(authService, userService)
	userHandler := handlers.NewUserHandler(userService)
	cardHandler := handlers.NewCardHandler(cardService)
	transferHandler := handlers.NewTransferHandler(transferService)

	authMiddleware := middleware.NewAuthMiddleware(userRepo)

	app.Get("/health", handlers.Health)

	api := app.Group("/api")

	// Public endpoints
	api.Post("/register", authHandler.Register)
	api.Post("/login", authHandler.Login)
	api.Post("/refresh", authHandler.Refresh)

	// Authenticated endpoints
	protected := api.Use(authMiddleware.Handler)

	protected.Post("/logout", authHandler.Logout)
	protected.Post("/change-password", authHandler.ChangePassword)
	protected.Get("/me", userHandler.GetProfile)

	cards := protected.Group("/cards")
	cards.Get("/", cardHandler.ListMyCards)
	cards.Get("/:id", cardHandler.GetCard)
	cards.Post("/:id/request-block", cardHandler.RequestBlock)
	cards.Get("/:id/transfers", transferHandler.ListCardTransfers)

	transfers := protected.Group("/transfers")
	transfers.Post("/", transferHandler.CreateTransfer)
	transfers.Get("/", transferHandler.ListMyTransfers)
	transfers.Get("/:id", transferHandler.GetTransfer)

	// Admin endpoints
	admin := api.Group("/admin", authMiddleware.Handler, middleware.AdminAuthMiddleware)

	admin.Get("/cards", cardHandler.ListAllCards)
	admin.Post("/cards", cardHandler.CreateCard)
	admin.Put("/cards/:id", cardHandler.UpdateCard)
	admin.Post("/cards/:id/block", cardHandler.BlockCard)
	admin.Post("/cards/:id/activate", cardHandler.ActivateCard)
	admin.Delete("/cards/:id", cardHandler.DeleteCard)

	admin.Get("/users", userHandler.ListUsers)
	admin.Get("/users/:id", userHandler.GetUser)
	admin.Put("/users/:id", userHandler.UpdateUser)
	admin.Delete("/users/:id", userHandler.DeleteUser)
}
