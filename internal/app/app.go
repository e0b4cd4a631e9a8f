package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"homeserve_backend/database"
	"homeserve_backend/internal/auth"
	"homeserve_backend/internal/config"
	"homeserve_backend/internal/handlers"
	"homeserve_backend/internal/logger"
	"homeserve_backend/internal/metrics"
	"homeserve_backend/internal/middleware"
	"homeserve_backend/internal/repositories"
	"homeserve_backend/internal/routes"
	"homeserve_backend/internal/services"
	"homeserve_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Failed to migrate database", "error", err)
	}
	if err := database.Seed(gormDB, cfg.Seed.DemoData); err != nil {
		logger.Fatal("Failed to seed database", "error", err)
	}

	server := &http.Server{
		Addr:              cfg.Address(),
		Handler:           SetupRouter(cfg, gormDB, metrics.New()),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", "address", cfg.Address())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server startup error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}
	if sqlDB, err := gormDB.DB(); err == nil {
		sqlDB.Close()
	}
}

// SetupRouter wires services, handlers and middleware onto a new engine.
// A nil metrics collector disables instrumentation.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB, m *metrics.Metrics) *gin.Engine {
	if cfg.Server.Env == "production" || cfg.Server.Env == "test" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 1. Инициализируем сервисы
	serviceContainer := initializeServices(cfg, m)

	// 2. Инициализируем хэндлеры
	appHandlers := initializeHandlers(cfg, serviceContainer)

	// 3. Инициализируем Gin
	ginRouter := initializeGinRouter(cfg, gormDB, m, serviceContainer.AuthService)

	// 4. Регистрация маршрутов
	routes.RegisterRoutes(ginRouter, appHandlers, m)

	return ginRouter
}

func initializeServices(cfg *config.Config, m *metrics.Metrics) *services.ServiceContainer {
	v := validator.New()
	tokens := auth.NewTokenIssuer(cfg.Session.Secret)

	// --- Инициализация репозиториев ---
	userRepo := repositories.NewUserRepository()
	providerRepo := repositories.NewProviderRepository()
	categoryRepo := repositories.NewCategoryRepository()
	bookingRepo := repositories.NewBookingRepository()
	reviewRepo := repositories.NewReviewRepository()
	sessionRepo := repositories.NewSessionRepository()

	// --- Инициализация сервисов ---
	return &services.ServiceContainer{
		AuthService:    services.NewAuthService(userRepo, providerRepo, categoryRepo, sessionRepo, tokens, v, m, cfg.SessionTTL()),
		CatalogService: services.NewCatalogService(categoryRepo, providerRepo),
		BookingService: services.NewBookingService(bookingRepo, providerRepo, categoryRepo, v, m),
		ReviewService:  services.NewReviewService(reviewRepo, bookingRepo, providerRepo, v, m),
		ProfileService: services.NewProfileService(userRepo, providerRepo, categoryRepo, sessionRepo, v),
	}
}

func initializeHandlers(cfg *config.Config, services *services.ServiceContainer) *handlers.AppHandlers {
	baseHandler := handlers.NewBaseHandler(handlers.SessionCookie{
		Name:   cfg.Session.CookieName,
		Secure: cfg.Session.SecureCookie,
	})
	authLimiter := middleware.NewRateLimiter(cfg.RateLimit.AuthPerMinute)

	return &handlers.AppHandlers{
		AuthHandler:    handlers.NewAuthHandler(baseHandler, services.AuthService, authLimiter),
		CatalogHandler: handlers.NewCatalogHandler(baseHandler, services.CatalogService),
		BookingHandler: handlers.NewBookingHandler(baseHandler, services.BookingService),
		ReviewHandler:  handlers.NewReviewHandler(baseHandler, services.ReviewService),
		ProfileHandler: handlers.NewProfileHandler(baseHandler, services.ProfileService),
		HealthHandler:  handlers.NewHealthHandler(baseHandler),
	}
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB, m *metrics.Metrics, authService services.AuthService) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.RecoveryMiddleware())
	if m != nil {
		router.Use(middleware.MetricsMiddleware(m))
	}
	router.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	router.Use(middleware.DBMiddleware(db))
	router.Use(middleware.SessionMiddleware(authService, cfg.Session.CookieName))
	return router
}
