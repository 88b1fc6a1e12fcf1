// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"shelf/internal/delivery/http/middleware"
	"shelf/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	ItemHandler         *handler.ItemHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
	LoggerMiddleware    *middleware.LoggerMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	itemHandler         *handler.ItemHandler
	authMiddleware      *middleware.AuthMiddleware
	requestIDMiddleware *middleware.RequestIDMiddleware
	loggerMiddleware    *middleware.LoggerMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		itemHandler:         params.ItemHandler,
		authMiddleware:      params.AuthMiddleware,
		requestIDMiddleware: params.RequestIDMiddleware,
		loggerMiddleware:    params.LoggerMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)
	e.Use(r.loggerMiddleware.Handle)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public auth routes
	e.POST("/register", r.authHandler.Register)
	e.POST("/login", r.authHandler.Login)

	// Protected routes: the authorization guard runs before every handler.
	e.POST("/logout", r.authHandler.Logout, r.authMiddleware.Authenticate)

	itemGroup := e.Group("/items")
	itemGroup.Use(r.authMiddleware.Authenticate)
	{
		itemGroup.POST("", r.itemHandler.CreateItem)
		itemGroup.GET("", r.itemHandler.ListItems)
	}
}
