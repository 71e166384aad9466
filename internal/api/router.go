package api

import (
	"database/sql"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/platformlab/accounts-api/internal/api/handler"
	"github.com/platformlab/accounts-api/internal/api/middleware"
	"github.com/platformlab/accounts-api/internal/core/domain"
	"github.com/platformlab/accounts-api/internal/core/service"
	"github.com/platformlab/accounts-api/internal/infrastructure/config"
	"github.com/platformlab/accounts-api/internal/infrastructure/db/postgres"
	redisinfra "github.com/platformlab/accounts-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// Dependencies are constructed here and passed down explicitly; no package
// holds a service singleton.
func NewRouter(db *sql.DB, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("accounts"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(db)
	hasher := service.NewBcryptHasher(cfg.BcryptCost)
	tokens := service.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, hasher, tokens)
	userService := service.NewUserService(userRepo)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)

	authMiddleware := middleware.Auth(tokens)
	limiter := redisinfra.NewFixedWindowLimiter(rdb, cfg.RateLimit.Requests, cfg.RateLimit.Window)
	authLimit := middleware.RateLimit(limiter, "auth", log)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register, authLimit)
	e.POST("/auth/login", authHandler.Login, authLimit)

	// --- User routes ---
	e.GET("/users/me", userHandler.Me, authMiddleware)
	e.PUT("/users/me", userHandler.UpdateMe, authMiddleware)
	e.GET("/users", userHandler.List, authMiddleware, middleware.RequireRole(domain.RoleAdmin))

	// --- Operational surface ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
