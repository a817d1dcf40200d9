// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"tempo/config"
	"tempo/internal/delivery/api/middleware"
	"tempo/internal/delivery/api/router/handler"
	"tempo/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler *handler.SessionHandler
	StatsHandler   *handler.StatsHandler
	AppHandler     *handler.AppHandler
	DeviceHandler  *handler.DeviceHandler
	AuthMiddleware *middleware.AuthMiddleware
	Registry       *prometheus.Registry `optional:"true"`
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	sessionHandler *handler.SessionHandler
	statsHandler   *handler.StatsHandler
	appHandler     *handler.AppHandler
	deviceHandler  *handler.DeviceHandler
	authMiddleware *middleware.AuthMiddleware
	registry       *prometheus.Registry
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sessionHandler: params.SessionHandler,
		statsHandler:   params.StatsHandler,
		appHandler:     params.AppHandler,
		deviceHandler:  params.DeviceHandler,
		authMiddleware: params.AuthMiddleware,
		registry:       params.Registry,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	apiV1.POST("/sessions", r.sessionHandler.IngestSession)
	apiV1.GET("/stats", r.statsHandler.GetStats)
	apiV1.GET("/devices", r.deviceHandler.GetUserDevices)

	appsGroup := apiV1.Group("/apps")
	{
		appsGroup.POST("/suggest", r.appHandler.SuggestCategory)
		appsGroup.PATCH("/:id/category", r.appHandler.UpdateCategory)
	}
}

// RegisterMetricsRoute exposes the Prometheus registry when metrics are enabled.
func (r *router) RegisterMetricsRoute(e *echo.Echo) {
	if !r.config.Metrics.Enabled || r.registry == nil {
		return
	}

	e.GET(r.config.Metrics.Path, echo.WrapHandler(metrics.NewHandler(r.registry)))
}
