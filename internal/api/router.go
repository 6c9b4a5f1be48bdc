package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kt1928/re-platform2.0/internal/api/handler"
	"github.com/kt1928/re-platform2.0/internal/api/middleware"
	"github.com/kt1928/re-platform2.0/internal/core/domain"
	"github.com/kt1928/re-platform2.0/internal/core/service"
	mongodb "github.com/kt1928/re-platform2.0/internal/infrastructure/db/mongo"
	httphandlers "github.com/kt1928/re-platform2.0/internal/infrastructure/http/handlers"
	"github.com/kt1928/re-platform2.0/internal/pkg/config"
	"github.com/kt1928/re-platform2.0/internal/pkg/token"
)

const serviceName = "re-platform-auth"

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("auth")) // subsystem for request metrics

	// --- Dependencies ---
	codec := token.NewCodec(cfg.JWTSecret, cfg.TokenTTL())
	userRepo := mongodb.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, codec, log)
	authHandler := handler.NewAuthHandler(authService)
	requireAuth := middleware.Auth(authService)
	requireAdmin := middleware.RequireRole(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/register", authHandler.Register, requireAuth, requireAdmin)
	e.GET("/auth/me", authHandler.Me, requireAuth)
	e.POST("/auth/logout", authHandler.Logout, requireAuth)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := httphandlers.NewHealthHandler(serviceName, cfg.Env)
	healthDepsHandler := httphandlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
