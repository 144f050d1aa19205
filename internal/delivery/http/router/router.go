// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"gamehub/internal/delivery/http/middleware"
	"gamehub/internal/delivery/http/router/handler"
	"gamehub/internal/domain/entity"
	"gamehub/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	AdminHandler   *handler.AdminHandler
	AuthMiddleware *middleware.AuthMiddleware
	Metrics        *metrics.Collector `optional:"true"`
}

// Router holds all the handlers that need to be registered.
type Router struct {
	authHandler    *handler.AuthHandler
	adminHandler   *handler.AdminHandler
	authMiddleware *middleware.AuthMiddleware
	metrics        *metrics.Collector
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *Router {
	return &Router{
		authHandler:    params.AuthHandler,
		adminHandler:   params.AdminHandler,
		authMiddleware: params.AuthMiddleware,
		metrics:        params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *Router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.metrics != nil {
		e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))
	}

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
	}

	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleOperator))
	{
		adminGroup.GET("/listeners", r.adminHandler.ListListeners)
		adminGroup.POST("/listeners/:id/start", r.adminHandler.StartListener)
		adminGroup.POST("/listeners/:id/stop", r.adminHandler.StopListener)
		adminGroup.GET("/consume-logs", r.adminHandler.ConsumeLogs)
		adminGroup.POST("/events/:topic", r.adminHandler.InjectEvent)
	}
}

// Module provides the admin API handlers and middleware
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		handler.NewAuthHandler,
		handler.NewAdminHandler,
		middleware.NewAuthMiddleware,
	),
)
