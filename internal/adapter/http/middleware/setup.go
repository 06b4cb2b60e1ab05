package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/trip-planner/multi-leg-itinerary-planner/internal/infrastructure/logger"
)

// Setup registers all middleware on the Echo instance in the correct order:
//  1. RequestID, so every later log line carries the request ID
//  2. RequestLogger, which logs the final status of every request
//  3. Recover, which turns handler panics into 500 responses
//
// Call it before registering routes.
func Setup(e *echo.Echo, log *logger.Logger, recovery RecoveryConfig) {
	e.Use(RequestID())
	e.Use(RequestLogger(log))
	e.Use(Recover(log, recovery))
}
