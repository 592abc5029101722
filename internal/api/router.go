package api

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"gorm.io/gorm"

	_ "github.com/userdirectory/user-service/docs"
	"github.com/userdirectory/user-service/internal/api/handler"
	"github.com/userdirectory/user-service/internal/api/middleware"
	"github.com/userdirectory/user-service/internal/core/service"
	"github.com/userdirectory/user-service/internal/infrastructure/db/sqlstore"
)

// Deps are the collaborators the router wires into handlers.
// Registerer and Gatherer default to the global Prometheus registry.
type Deps struct {
	DB         *gorm.DB
	Logger     zerolog.Logger
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) (*echo.Echo, error) {
	if d.Registerer == nil {
		d.Registerer = prometheus.DefaultRegisterer
	}
	if d.Gatherer == nil {
		d.Gatherer = prometheus.DefaultGatherer
	}

	sqlDB, err := d.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("router: resolve sql db handle: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLogger(d.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "http",
		Registerer: d.Registerer,
	}))

	// --- Dependencies ---
	userRepo := sqlstore.NewUserRepository(d.DB)
	roleRepo := sqlstore.NewRoleRepository(d.DB)
	userService := service.NewUserService(userRepo, roleRepo, d.Logger.With().Str("component", "user_service").Logger())
	userHandler := handler.NewUserHandler(userService)

	// --- User routes ---
	users := e.Group("/api/users")
	users.POST("", userHandler.Create)
	users.GET("", userHandler.List)

	// --- Health probes ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(sqlDB)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: d.Gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e, nil
}
