package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/JVDTS/NurseryWebsite-sub001/internal/config"
	"github.com/JVDTS/NurseryWebsite-sub001/internal/handler"
	"github.com/JVDTS/NurseryWebsite-sub001/internal/handler/middleware"
	"github.com/JVDTS/NurseryWebsite-sub001/internal/repository"
	"github.com/JVDTS/NurseryWebsite-sub001/internal/repository/memory"
	"github.com/JVDTS/NurseryWebsite-sub001/internal/repository/postgres"
	"github.com/JVDTS/NurseryWebsite-sub001/internal/repository/redisstore"
	"github.com/JVDTS/NurseryWebsite-sub001/internal/service"
	"github.com/JVDTS/NurseryWebsite-sub001/pkg/email"
	"github.com/JVDTS/NurseryWebsite-sub001/pkg/resettoken"
	"github.com/JVDTS/NurseryWebsite-sub001/pkg/validator"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database connection
	db, err := initDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database connection: %v", err)
		}
	}()
	log.Println("✓ Database connection established")

	// Initialize session and CSRF token stores
	var (
		sessionStore repository.SessionStore
		csrfStore    repository.CsrfTokenStore
	)
	if cfg.Session.Store == "redis" {
		redisClient, err := initRedis(cfg)
		if err != nil {
			log.Fatalf("Failed to initialize Redis: %v", err)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Printf("Error closing Redis connection: %v", err)
			}
		}()
		sessionStore = redisstore.NewSessionStore(redisClient)
		csrfStore = redisstore.NewCsrfTokenStore(redisClient)
		log.Println("✓ Redis session store initialized")
	} else {
		sessionStore = memory.NewSessionStore()
		csrfStore = memory.NewCsrfTokenStore()
		log.Println("ℹ In-memory session store initialized (sessions do not survive restarts)")
	}

	// Initialize validator
	validate := validator.New()

	// Initialize repositories
	userRepo := postgres.NewUserRepository(db)
	nurseryRepo := postgres.NewNurseryRepository(db)
	settingsRepo := postgres.NewSettingsRepository(db)
	eventRepo := postgres.NewEventRepository(db)
	galleryRepo := postgres.NewGalleryRepository(db)
	newsletterRepo := postgres.NewNewsletterRepository(db)
	staffRepo := postgres.NewStaffRepository(db)
	activityRepo := postgres.NewActivityLogRepository(db)
	contactRepo := postgres.NewContactRepository(db)

	// Initialize password-reset token service
	resetTokens := resettoken.NewService(cfg.Auth.ResetTokenSecret, cfg.Auth.ResetTokenTTL, "nursery-website")

	// Initialize email service
	var emailService email.Service
	if cfg.Email.Enabled {
		emailService, err = email.NewResendService(&email.Config{
			APIKey:      cfg.Email.ResendAPIKey,
			FromAddress: cfg.Email.FromAddress,
			FromName:    "Nursery Website",
		})
		if err != nil {
			log.Printf("Warning: Failed to initialize email service: %v", err)
			log.Println("Email functionality will be disabled")
			emailService = email.NewNoopService()
		} else {
			log.Println("✓ Email service initialized (Resend)")
		}
	} else {
		emailService = email.NewNoopService()
		log.Println("ℹ Email service disabled (set EMAIL_ENABLED=true to enable)")
	}

	// Initialize services
	activityService := service.NewActivityService(activityRepo)
	authService := service.NewAuthService(userRepo, sessionStore, csrfStore, resetTokens, emailService, cfg)
	authService.SetActivityService(activityService)
	csrfService := service.NewCsrfService(csrfStore, cfg.Session.TTL)
	scopeService := service.NewScopeService(sessionStore)
	nurseryService := service.NewNurseryService(nurseryRepo, settingsRepo, activityService)
	eventService := service.NewEventService(eventRepo, activityService)
	galleryService := service.NewGalleryService(galleryRepo, activityService)
	newsletterService := service.NewNewsletterService(newsletterRepo, activityService)
	staffService := service.NewStaffService(staffRepo, activityService)
	contactService := service.NewContactService(contactRepo, activityService, emailService, cfg.Email.AdminAddress)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, csrfService, validate, cfg)
	scopeHandler := handler.NewScopeHandler(scopeService)
	nurseryHandler := handler.NewNurseryHandler(nurseryService, validate)
	eventHandler := handler.NewEventHandler(eventService, validate)
	galleryHandler := handler.NewGalleryHandler(galleryService, validate)
	newsletterHandler := handler.NewNewsletterHandler(newsletterService, validate)
	staffHandler := handler.NewStaffHandler(staffService, validate)
	activityHandler := handler.NewActivityHandler(activityService)
	contactHandler := handler.NewContactHandler(contactService, validate)
	healthHandler := handler.NewHealthHandler(db)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:               "Nursery Website API v1.0",
		DisableStartupMessage: false,
		ErrorHandler:          customErrorHandler,
		ReadTimeout:           cfg.Server.ReadTimeout,
		WriteTimeout:          cfg.Server.WriteTimeout,
	})

	// Setup global middlewares
	app.Use(middleware.RecoveryMiddleware())
	app.Use(middleware.LoggerMiddleware())
	app.Use(middleware.CORSMiddleware(cfg))

	// Setup routes
	handler.SetupRoutes(
		app,
		authHandler,
		scopeHandler,
		nurseryHandler,
		eventHandler,
		galleryHandler,
		newsletterHandler,
		staffHandler,
		activityHandler,
		contactHandler,
		healthHandler,
		middleware.SessionMiddleware(authService, cfg.Session.CookieName),
		middleware.CsrfMiddleware(csrfService),
		middleware.LoginRateLimit(cfg.Auth.LoginRatePerMin, cfg.Auth.LoginBurst),
		activityService,
	)

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	// Start server in goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		log.Printf("🚀 Server starting on http://localhost%s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		if err := app.Listen(addr); err != nil {
			// Don't use log.Fatalf in goroutine, send error to main
			log.Printf("❌ Server failed to start: %v", err)
			stop() // Trigger shutdown
		}
	}()

	// Wait for interrupt signal
	<-ctx.Done()
	log.Println("⏳ Shutting down server gracefully...")

	// Create shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✓ Server stopped")
}

// initDB initializes PostgreSQL database connection with retry logic
func initDB(cfg *config.Config) (*sqlx.DB, error) {
	dsn := cfg.Database.DSN()

	var db *sqlx.DB
	var err error

	maxRetries := 5
	retryInterval := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		db, err = sqlx.Connect("postgres", dsn)
		if err == nil {
			break
		}

		log.Printf("Failed to connect to database (attempt %d/%d): %v", i+1, maxRetries, err)
		if i < maxRetries-1 {
			time.Sleep(retryInterval)
		}
	}

	if err != nil {
		return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
	}

	// Set connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			log.Printf("Error closing database after ping failure: %v", closeErr)
		}
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// initRedis initializes Redis client and verifies connection
func initRedis(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		if closeErr := client.Close(); closeErr != nil {
			log.Printf("Error closing Redis after ping failure: %v", closeErr)
		}
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}

	return client, nil
}

// customErrorHandler handles Fiber errors
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}
