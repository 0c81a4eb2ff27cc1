// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"locgate/config"
	"locgate/internal/delivery/api/router/handler"
	"locgate/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ZoneHandler     *handler.ZoneHandler
	WaitlistHandler *handler.WaitlistHandler
	Metrics         *metrics.Metrics
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	zoneHandler     *handler.ZoneHandler
	waitlistHandler *handler.WaitlistHandler
	metrics         *metrics.Metrics
	config          *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		zoneHandler:     params.ZoneHandler,
		waitlistHandler: params.WaitlistHandler,
		metrics:         params.Metrics,
		config:          params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	if r.metrics != nil {
		e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))
	}

	apiV1 := e.Group("/api/v1")

	zonesGroup := apiV1.Group("/zones")
	{
		zonesGroup.GET("", r.zoneHandler.List)
		zonesGroup.POST("/detect", r.zoneHandler.Detect)
		zonesGroup.POST("/reload", r.zoneHandler.Reload)
	}

	apiV1.POST("/waitlist", r.waitlistHandler.Join)
}
