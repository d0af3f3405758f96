package main

import (
	"log"
	"strings"
	"time"

	"fastfood_backend/internal/config"
	"fastfood_backend/internal/database"
	"fastfood_backend/internal/events"
	"fastfood_backend/internal/handlers"
	"fastfood_backend/internal/migrations"
	"fastfood_backend/internal/redis"
	"fastfood_backend/internal/repository"
	"fastfood_backend/internal/services"
	"fastfood_backend/pkg/whatsapp"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := migrations.Run(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}
	if err := migrations.EnsureAdminRole(db, cfg.AdminEmail); err != nil {
		log.Printf("Warning: failed to ensure admin role: %v", err)
	}

	// Initialize Redis
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	defer redisClient.Close()

	// Order event publisher (no-op unless Kafka brokers are configured)
	publisher := events.NewNoopPublisher()
	if cfg.KafkaBrokers != "" {
		publisher = events.NewKafkaPublisher(strings.Split(cfg.KafkaBrokers, ","), "order-events")
	}
	defer publisher.Close()

	// Notification sender: WhatsApp gateway in production, log-only otherwise
	var sender services.Sender
	if cfg.WhatsAppAPIURL != "" {
		sender = whatsapp.NewClient(cfg.WhatsAppAPIURL, cfg.WhatsAppUsername, cfg.WhatsAppPassword, cfg.WhatsAppPath)
	} else {
		sender = services.NewLogSender()
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.AdminEmail)
	menuService := services.NewMenuService(menuRepo)
	notificationService := services.NewNotificationService(sender)
	orderService := services.NewOrderService(
		orderRepo,
		menuRepo,
		notificationService,
		publisher,
		redisClient,
		time.Duration(cfg.StatsCacheTTL)*time.Second,
		cfg.RestaurantPhone,
	)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	menuHandler := handlers.NewMenuHandler(menuService)
	orderHandler := handlers.NewOrderHandler(orderService, cfg.PaymentWebhookSecret)
	notificationHandler := handlers.NewNotificationHandler(notificationService)

	// Setup routes
	router := gin.Default()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "fastfood-backend",
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})

	api := router.Group("/api")
	{
		authRoutes := api.Group("/auth")
		authRoutes.Use(handlers.RateLimit(rate.Limit(5), 10))
		{
			authRoutes.POST("/signup", authHandler.Signup)
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.GET("/profile", handlers.AuthRequired(cfg.JWTSecret), authHandler.GetProfile)
			authRoutes.PUT("/profile", handlers.AuthRequired(cfg.JWTSecret), authHandler.UpdateProfile)
		}

		api.GET("/menu", menuHandler.List)
		menuAdmin := api.Group("/menu", handlers.AuthRequired(cfg.JWTSecret), handlers.AdminRequired())
		{
			menuAdmin.POST("", menuHandler.Create)
			menuAdmin.PUT("/:id", menuHandler.Update)
			menuAdmin.DELETE("/:id", menuHandler.Delete)
		}

		orders := api.Group("/orders", handlers.AuthRequired(cfg.JWTSecret))
		{
			orders.POST("", orderHandler.Place)
			orders.GET("/user", orderHandler.ListForUser)
			orders.GET("", handlers.AdminRequired(), orderHandler.ListAll)
			orders.GET("/stats", handlers.AdminRequired(), orderHandler.Stats)
		}

		api.POST("/payments/confirm", orderHandler.ConfirmPayment)
		api.POST("/whatsapp/order-notification", notificationHandler.OrderNotification)
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
