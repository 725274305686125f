// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"glowdesk/internal/delivery/api/middleware"
	"glowdesk/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler *handler.SessionHandler
	ProfileHandler *handler.ProfileHandler
	SalonHandler   *handler.SalonHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	sessionHandler *handler.SessionHandler
	profileHandler *handler.ProfileHandler
	salonHandler   *handler.SalonHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sessionHandler: params.SessionHandler,
		profileHandler: params.ProfileHandler,
		salonHandler:   params.SalonHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Session routes mirror identity-provider transitions. Sign-in carries the
	// ID token in the body and stays open; reading or clearing the mirror
	// exposes the recorded identity and profile, so both require a bearer token.
	e.POST("/session", r.sessionHandler.SignIn)
	e.GET("/session", r.sessionHandler.GetSession, r.authMiddleware.Authenticate)
	e.DELETE("/session", r.sessionHandler.SignOut, r.authMiddleware.Authenticate)

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	// Profile routes
	profilesGroup := apiV1.Group("/profiles")
	{
		profilesGroup.POST("/ensure", r.profileHandler.EnsureProfile)
		profilesGroup.GET("", r.profileHandler.ListProfiles)
		profilesGroup.GET("/:id", r.profileHandler.GetProfile)
	}

	// Salon routes. Role checks happen in the usecase layer, where they run
	// inside the same transaction as the guarded reads and writes.
	salonsGroup := apiV1.Group("/salons")
	{
		salonsGroup.POST("", r.salonHandler.CreateSalon)
		salonsGroup.GET("/:id", r.salonHandler.GetSalon)
		salonsGroup.PATCH("/:id", r.salonHandler.UpdateSalon)
		salonsGroup.DELETE("/:id", r.salonHandler.DeleteSalon)

		// Staff roster routes. Upsert keys the record by the member's resolved
		// identity, so the document ID comes from the body's email.
		salonsGroup.GET("/:id/staff", r.salonHandler.ListStaff)
		salonsGroup.PUT("/:id/staff", r.salonHandler.UpsertStaff)
		salonsGroup.DELETE("/:id/staff/:staffId", r.salonHandler.RemoveStaff)
	}
}
