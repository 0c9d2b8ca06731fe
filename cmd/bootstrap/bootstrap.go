package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alvarojnq1/2Hackathon-Sao-Camilo/config"
	deliveryHttp "github.com/alvarojnq1/2Hackathon-Sao-Camilo/internal/delivery/http"
	"github.com/alvarojnq1/2Hackathon-Sao-Camilo/internal/delivery/http/handler"
	"github.com/alvarojnq1/2Hackathon-Sao-Camilo/internal/delivery/http/middleware"
	"github.com/alvarojnq1/2Hackathon-Sao-Camilo/internal/infrastructure/cache"
	"github.com/alvarojnq1/2Hackathon-Sao-Camilo/internal/infrastructure/database"
	"github.com/alvarojnq1/2Hackathon-Sao-Camilo/internal/repository"
	"github.com/alvarojnq1/2Hackathon-Sao-Camilo/internal/service"
	"github.com/alvarojnq1/2Hackathon-Sao-Camilo/internal/usecase"
	"github.com/alvarojnq1/2Hackathon-Sao-Camilo/pkg/jwt"
	"github.com/alvarojnq1/2Hackathon-Sao-Camilo/pkg/validator"

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

	// Apply schema migrations
	if err := database.RunMigrations(cfg.DB); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
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
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize repositories
	patientRepo := repository.NewPatientRepository()
	familyRepo := repository.NewFamilyRepository()
	professionalRepo := repository.NewProfessionalRepository()

	// Initialize services
	classifier := service.NewCarrierClassifier(service.DefaultVariantMarkers)
	aggregator := service.NewCarrierAggregator(log, patientRepo, classifier)
	mailService := service.NewMailService(cfg.Mail, cfg.App.URL, log)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, patientRepo, professionalRepo, familyRepo, jwtService, redisClient)
	familyUsecase := usecase.NewFamilyUsecase(db, log, patientRepo, familyRepo, aggregator, mailService)
	profileUsecase := usecase.NewProfileUsecase(db, log, patientRepo, aggregator)
	professionalUsecase := usecase.NewProfessionalUsecase(db, log, familyRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	familyHandler := handler.NewFamilyHandler(familyUsecase, customValidator)
	profileHandler := handler.NewProfileHandler(profileUsecase, customValidator)
	professionalHandler := handler.NewProfessionalHandler(professionalUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(authHandler, familyHandler, profileHandler, professionalHandler, authMiddleware, corsMiddleware)
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
