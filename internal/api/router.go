package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/fcg-platform/users-svc/docs"
	"github.com/fcg-platform/users-svc/internal/api/handler"
	"github.com/fcg-platform/users-svc/internal/api/middleware"
	"github.com/fcg-platform/users-svc/internal/core/domain"
	"github.com/fcg-platform/users-svc/internal/core/ports"
)

// RouterConfig collects everything the HTTP layer needs. Handlers are built
// by the caller so the wiring stays in one place (cmd/server).
type RouterConfig struct {
	AuthHandler   *handler.AuthHandler
	UserHandler   *handler.UserHandler
	HealthHandler *handler.HealthHandler
	Secrets       ports.JWTSecrets
	Log           zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("users"))

	// --- Operational surface (no auth required) ---
	e.GET("/health", cfg.HealthHandler.Liveness)
	e.GET("/health/ready", cfg.HealthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Authentication ---
	auth := e.Group("/api/authentication")
	auth.POST("/register", cfg.AuthHandler.Register)
	auth.POST("/login", cfg.AuthHandler.Login)

	// --- Users ---
	authn := middleware.Auth(cfg.Secrets)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	users := e.Group("/api/users")
	users.GET("/:id", cfg.UserHandler.Get)
	users.GET("", cfg.UserHandler.List, authn, adminOnly)
	users.POST("", cfg.UserHandler.Create, authn, adminOnly)
	users.POST("/admin", cfg.UserHandler.CreateAdmin, authn, adminOnly)
	users.GET("/admin", cfg.UserHandler.GetAdmin, authn, adminOnly)
	users.PUT("/:id", cfg.UserHandler.Update, authn, adminOnly)
	users.DELETE("/:id", cfg.UserHandler.Delete, authn, adminOnly)
	users.POST("/find", cfg.UserHandler.Find, authn, adminOnly)

	return e
}
