// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"passage/internal/delivery/http/middleware"
	"passage/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/google", r.authHandler.GoogleCallback)
	}

	// Routes that require a valid access token
	protected := e.Group("")
	protected.Use(r.authMiddleware.Authenticate)
	{
		protected.POST("/logout", r.authHandler.Logout)
		protected.GET("/me", r.authHandler.Me)
		// Kept as an alias of /me for clients still on the old path.
		protected.GET("/user", r.authHandler.Me)
	}
}
