package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinic-cms-backend/config"
	deliveryHttp "clinic-cms-backend/internal/delivery/http"
	"clinic-cms-backend/internal/delivery/http/handler"
	"clinic-cms-backend/internal/delivery/http/middleware"
	"clinic-cms-backend/internal/infrastructure/cache"
	"clinic-cms-backend/internal/infrastructure/database"
	"clinic-cms-backend/internal/repository"
	"clinic-cms-backend/internal/service"
	"clinic-cms-backend/internal/usecase"
	"clinic-cms-backend/pkg/session"
	"clinic-cms-backend/pkg/validator"

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
	if err := database.RunMigrations(cfg.DB, "migrations"); err != nil {
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
	// Initialize session verification
	sessionService := session.NewService(cfg.Session)
	revocationStore := session.NewRedisRevocationStore(redisClient)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	doctorRepo := repository.NewDoctorRepository()
	promoRepo := repository.NewPromoRepository()
	facilityPhotoRepo := repository.NewFacilityPhotoRepository()
	partnerRepo := repository.NewPartnerRepository()
	faqRepo := repository.NewFAQRepository()
	testimonialRepo := repository.NewTestimonialRepository()
	articleRepo := repository.NewArticleRepository()
	polyClinicRepo := repository.NewPolyClinicRepository()
	clinicSettingsRepo := repository.NewClinicSettingsRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize services
	auditService := service.NewAuditService(log, auditLogRepo)

	// Initialize usecases
	doctorUsecase := usecase.NewDoctorUsecase(db, log, doctorRepo, auditService)
	promoUsecase := usecase.NewPromoUsecase(db, log, promoRepo, auditService)
	facilityPhotoUsecase := usecase.NewFacilityPhotoUsecase(db, log, facilityPhotoRepo, auditService)
	partnerUsecase := usecase.NewPartnerUsecase(db, log, partnerRepo, auditService)
	faqUsecase := usecase.NewFAQUsecase(db, log, faqRepo, auditService)
	testimonialUsecase := usecase.NewTestimonialUsecase(db, log, testimonialRepo, auditService)
	articleUsecase := usecase.NewArticleUsecase(db, log, articleRepo, auditService)
	polyClinicUsecase := usecase.NewPolyClinicUsecase(db, log, polyClinicRepo, auditService)
	clinicSettingsUsecase := usecase.NewClinicSettingsUsecase(db, log, clinicSettingsRepo, auditService)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Initialize handlers
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, customValidator)
	promoHandler := handler.NewPromoHandler(promoUsecase, customValidator)
	facilityPhotoHandler := handler.NewFacilityPhotoHandler(facilityPhotoUsecase, customValidator)
	partnerHandler := handler.NewPartnerHandler(partnerUsecase, customValidator)
	faqHandler := handler.NewFAQHandler(faqUsecase, customValidator)
	testimonialHandler := handler.NewTestimonialHandler(testimonialUsecase, customValidator)
	articleHandler := handler.NewArticleHandler(articleUsecase, customValidator)
	polyClinicHandler := handler.NewPolyClinicHandler(polyClinicUsecase, customValidator)
	clinicSettingsHandler := handler.NewClinicSettingsHandler(clinicSettingsUsecase, customValidator)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(sessionService, revocationStore, cfg.Session.CookieName)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		doctorHandler,
		promoHandler,
		facilityPhotoHandler,
		partnerHandler,
		faqHandler,
		testimonialHandler,
		articleHandler,
		polyClinicHandler,
		clinicSettingsHandler,
		auditLogHandler,
		authMiddleware,
		corsMiddleware,
	)
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
