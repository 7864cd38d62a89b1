package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vet-calendar-api/config"
	deliveryHttp "vet-calendar-api/internal/delivery/http"
	"vet-calendar-api/internal/delivery/http/handler"
	"vet-calendar-api/internal/delivery/http/middleware"
	"vet-calendar-api/internal/infrastructure/cache"
	"vet-calendar-api/internal/infrastructure/database"
	"vet-calendar-api/internal/repository"
	"vet-calendar-api/internal/service"
	"vet-calendar-api/internal/usecase"
	"vet-calendar-api/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	// Apply migrations
	if err := database.RunMigrations(db, cfg.DB.MigrationsPath); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Seed demo data in development
	if cfg.App.Env == "development" {
		if err := database.Seed(db); err != nil {
			return nil, fmt.Errorf("failed to seed database: %w", err)
		}
	}

	// Initialize Redis; the animal cache is optional, so a missing Redis
	// only degrades reads to the database.
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		logrus.Warnf("Redis unavailable, animal cache disabled: %v", err)
		redisClient = nil
	}
	app.RedisClient = redisClient

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize repositories
	animalRepo := repository.NewAnimalRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)

	// Initialize cache and services
	animalCache := cache.NewAnimalCache(redisClient, log)
	emailService := service.NewLogEmailService(log, cfg.Mail.From)

	// Initialize usecases
	animalUsecase := usecase.NewAnimalUsecase(log, animalRepo, animalCache)
	appointmentUsecase := usecase.NewAppointmentUsecase(log, appointmentRepo, animalRepo, animalCache, emailService)

	// Initialize handlers
	animalHandler := handler.NewAnimalHandler(animalUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)

	// Initialize middleware
	apiKeyMiddleware := middleware.NewAPIKeyMiddleware(cfg.API.Key)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(animalHandler, appointmentHandler, apiKeyMiddleware, corsMiddleware, db)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
