// Package main is the entry point for the wallet API server. It
// initializes the database, the redis cache and the HTTP layer, and
// wires the use-case services together.
package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"simplewallet/internal/config"
	"simplewallet/internal/handlers"
	"simplewallet/internal/repositories"
	"simplewallet/internal/repositories/cache"
	"simplewallet/internal/routes"
	"simplewallet/internal/services/auth"
	"simplewallet/internal/services/transfer"
	"simplewallet/internal/services/wallet"
)

func main() {
	config.LoadEnv()

	db, err := repositories.InitDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				log.Printf("failed to close database connection: %v", err)
			}
		}
	}()

	redisClient := repositories.InitRedis()
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Printf("failed to close redis connection: %v", err)
		}
	}()
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Printf("redis unavailable, continuing without cache: %v", err)
	}

	walletCache := cache.NewWalletCache(redisClient, config.GetDurationEnv("WALLET_CACHE_TTL", 5*time.Minute))

	walletRepo := repositories.NewWalletRepository(db)
	userRepo := repositories.NewUserRepository(db)

	authService := auth.NewService(userRepo)
	walletService := wallet.NewService(walletRepo, walletCache)
	transferService := transfer.NewService(walletRepo, walletCache)

	authHandler := handlers.NewAuthHandler(authService)
	walletHandler := handlers.NewWalletHandler(walletService)
	transferHandler := handlers.NewTransferHandler(transferService)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: config.GetEnv("CORS_ORIGINS", "http://localhost:5173"),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	for _, path := range []string{"/api/register", "/api/login"} {
		app.Use(path, limiter.New(limiter.Config{
			Max:        config.GetIntEnv("AUTH_RATE_LIMIT", 5),
			Expiration: 1 * time.Minute,
			KeyGenerator: func(c *fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: func(c *fiber.Ctx) error {
				return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
					"error": "Too many requests. Please try again later.",
				})
			},
		}))
	}

	routes.SetupRoutes(app, authHandler, walletHandler, transferHandler)

	log.Fatal(app.Listen(":" + config.GetEnv("PORT", "3000")))
}
