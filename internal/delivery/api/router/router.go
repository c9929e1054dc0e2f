// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"log/slog"

	"eventradar/internal/delivery/api/middleware"
	"eventradar/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Logger        *slog.Logger
	AdminHandler  *handler.AdminHandler
	HealthHandler *handler.HealthHandler
	PushHandler   *handler.PushHandler
	AdminAuth     *middleware.AdminAuth
}

// router holds all the handlers that need to be registered.
type router struct {
	logger        *slog.Logger
	adminHandler  *handler.AdminHandler
	healthHandler *handler.HealthHandler
	pushHandler   *handler.PushHandler
	adminAuth     *middleware.AdminAuth
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		logger:        params.Logger,
		adminHandler:  params.AdminHandler,
		healthHandler: params.HealthHandler,
		pushHandler:   params.PushHandler,
		adminAuth:     params.AdminAuth,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.Health)
	e.GET("/metrics", r.healthHandler.Metrics)

	// Pub/Sub push endpoint, authenticated by OIDC token when configured
	e.POST("/push", r.pushHandler.HandlePush)

	if !r.adminAuth.Enabled() {
		r.logger.Warn("Admin token not configured, admin routes are disabled")

		return
	}

	adminGroup := e.Group("/admin")
	adminGroup.Use(r.adminAuth.Authenticate())
	{
		adminGroup.POST("/import", r.adminHandler.Import)
		adminGroup.POST("/notify", r.adminHandler.Notify)
		adminGroup.POST("/jobs/:job", r.adminHandler.RunJob)
	}

	recipientsGroup := adminGroup.Group("/recipients")
	{
		recipientsGroup.PUT("/:account", r.adminHandler.SaveRecipient)
		recipientsGroup.GET("/:account", r.adminHandler.GetRecipient)
	}
}
