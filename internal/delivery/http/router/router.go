// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"chatter/internal/delivery/http/middleware"
	"chatter/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProfileHandler *handler.ProfileHandler
	RoomHandler    *handler.RoomHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	profileHandler *handler.ProfileHandler
	roomHandler    *handler.RoomHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		profileHandler: params.ProfileHandler,
		roomHandler:    params.RoomHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes: the token is validated here too, sign-in only reconciles
	// the already-authenticated identity into its profile row
	authGroup := e.Group("/auth")
	authGroup.Use(r.authMiddleware.Authenticate)
	{
		authGroup.POST("/signin", r.profileHandler.SignIn)
	}

	// Routes that require a verified identity
	apiGroup := e.Group("")
	apiGroup.Use(r.authMiddleware.Authenticate)
	{
		apiGroup.GET("/me", r.profileHandler.Me)
		apiGroup.GET("/users", r.profileHandler.ListUsers)
		apiGroup.POST("/rooms", r.roomHandler.Create)
		apiGroup.GET("/rooms", r.roomHandler.List)
	}
}
