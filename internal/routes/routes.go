// Package routes registers the HTTP API.
package routes

import (
	"github.com/gofiber/fiber/v2"

	"simplewallet/internal/handlers"
	"simplewallet/internal/middleware"
)

// SetupRoutes wires handlers onto the fiber app. All wallet routes
// require authentication; the authenticated user acts on their own
// wallet.
func SetupRoutes(app *fiber.App, authHandler *handlers.AuthHandler, walletHandler *handlers.WalletHandler, transferHandler *handlers.TransferHandler) {
	api := app.Group("/api")

	api.Get("/health", handlers.Health)
	api.Post("/register", authHandler.Register)
	api.Post("/login", authHandler.Login)

	wallets := api.Group("/wallets", middleware.Auth())
	wallets.Post("/", walletHandler.CreateWallet)
	wallets.Get("/", walletHandler.GetWallet)
	wallets.Post("/deposit", walletHandler.Deposit)
	wallets.Post("/withdraw", walletHandler.Withdraw)
	wallets.Post("/transfer", transferHandler.Transfer)
}
