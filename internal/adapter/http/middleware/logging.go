package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/trip-planner/multi-leg-itinerary-planner/internal/infrastructure/logger"
)

// loggerKey is the context key for the request-scoped logger.
const loggerKey = "logger"

// RequestLogger returns middleware that logs HTTP requests on completion.
// It also stores a logger tagged with the request ID in the context, so
// handlers can log through LoggerFrom.
func RequestLogger(log *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			// Get request ID from context (set by RequestID middleware)
			reqID := GetRequestID(c)
			reqLog := log.WithRequestID(reqID)
			c.Set(loggerKey, reqLog)

			err := next(c)
			if err != nil {
				// Let Echo's error handler process the error
				c.Error(err)
			}

			duration := time.Since(start)
			req := c.Request()
			res := c.Response()

			// Determine log level based on status code
			var event *zerolog.Event
			status := res.Status
			switch {
			case status >= 500:
				event = reqLog.Error()
			case status >= 400:
				event = reqLog.Warn()
			default:
				event = reqLog.Info()
			}

			event.
				Str("method", req.Method).
				Str("route", c.Path()).
				Str("path", req.URL.Path).
				Str("query", req.URL.RawQuery).
				Int("status", status).
				Int64("duration_ms", duration.Milliseconds()).
				Int64("bytes_out", res.Size).
				Str("client_ip", c.RealIP()).
				Str("user_agent", req.UserAgent()).
				Msg("HTTP request")

			// The error was already handled via c.Error()
			return nil
		}
	}
}

// LoggerFrom returns the request-scoped logger, or a no-op logger when the
// RequestLogger middleware did not run.
func LoggerFrom(c echo.Context) *logger.Logger {
	if l, ok := c.Get(loggerKey).(*logger.Logger); ok {
		return l
	}
	return logger.Nop()
}
