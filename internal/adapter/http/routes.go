package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all itinerary API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h *ItineraryHandler) {
	// Health check endpoint (no version prefix)
	e.GET("/health", h.Health)

	// API v1 group
	api := e.Group("/api/v1")

	itineraries := api.Group("/itineraries")
	itineraries.GET("", h.PlanConfigured)
	itineraries.POST("/search", h.PlanItinerary)
}
