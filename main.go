package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"sportsstore/internal/config"
	"sportsstore/internal/database"
	"sportsstore/internal/handlers"
	"sportsstore/internal/middleware"
	"sportsstore/internal/repositories"
	"sportsstore/internal/services"
	"sportsstore/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	// All required values are validated here; a bad configuration stops the
	// process instead of surfacing at request time.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// --- Database ---
	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	if err := database.Seed(db, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	// --- RabbitMQ (optional) ---
	// Catalog mutation events are best effort; without a broker URL the
	// admin service simply skips publishing.
	var mqClient *rabbitmq.Client
	if cfg.RabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()

		if err := mqClient.ConsumeCatalogEvents(rabbitmq.LogCatalogEvent); err != nil {
			log.Fatalf("Failed to start catalog event consumer: %v", err)
		}
	}

	// --- Repositories ---
	productRepo := repositories.NewGORMProductRepository(db)
	categoryRepo := repositories.NewGORMCategoryRepository(db)
	userRepo := repositories.NewGORMUserRepository(db)

	// --- Services ---
	catalogService := services.NewCatalogService(productRepo, cfg.PageSize)
	adminService := services.NewAdminProductService(productRepo, categoryRepo, mqClient)
	authService := services.NewAuthService(userRepo, services.TokenConfig{
		Secret:   cfg.JWTSecret,
		Issuer:   cfg.JWTIssuer,
		Audience: cfg.JWTAudience,
		Expiry:   cfg.TokenExpiry,
	})

	// --- Handlers ---
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	productsAPIHandler := handlers.NewProductsAPIHandler(adminService)
	authHandler := handlers.NewAuthHandler(authService)

	// --- Fiber App ---
	app := fiber.New()
	app.Use(logger.New()) // Request logger

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Admin API Routes ---
	adminAPI := app.Group("/api/admin")
	authHandler.RegisterRoutes(adminAPI)
	secured := adminAPI.Group("",
		middleware.AuthRequired(authService),
		middleware.RoleRequired("Admin"),
	)
	secured.Get("/categories", productsAPIHandler.HandleCategories)
	productsAPIHandler.RegisterRoutes(secured.Group("/products"))

	// --- Storefront Routes ---
	// Registered last: the category listing routes are catch-alls.
	catalogHandler.RegisterRoutes(app)

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", cfg.AppPort)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}
