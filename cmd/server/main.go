// Package main is the entry point for the itinerary planner HTTP service.
//
//	@title						Multi-Leg Itinerary Planner API
//	@version					1.0.0
//	@description				Plans the cheapest multi-country trip through a fixed sequence of destinations, trading price against deviation from ideal stay lengths.
//
//	@contact.name				API Support
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/trip-planner/multi-leg-itinerary-planner/docs"

	// Application layers
	itineraryhttp "github.com/trip-planner/multi-leg-itinerary-planner/internal/adapter/http"
	"github.com/trip-planner/multi-leg-itinerary-planner/internal/adapter/http/middleware"
	"github.com/trip-planner/multi-leg-itinerary-planner/internal/adapter/source"
	"github.com/trip-planner/multi-leg-itinerary-planner/internal/config"
	"github.com/trip-planner/multi-leg-itinerary-planner/internal/domain"
	"github.com/trip-planner/multi-leg-itinerary-planner/internal/infrastructure/logger"
	"github.com/trip-planner/multi-leg-itinerary-planner/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger with config
	log := setupLogger(cfg)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("data_source", cfg.Data.Source).
		Str("origin", cfg.Search.Origin).
		Msg("Configuration loaded")

	// Open the configured table source
	tables, closeSource, err := source.Open(context.Background(), cfg)
	if err != nil {
		log.Fatal().Err(err).Str("data_source", cfg.Data.Source).Msg("Failed to open table source")
	}
	defer func() {
		if err := closeSource(); err != nil {
			log.Error().Err(err).Msg("Error closing table source")
		}
	}()

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Setup middleware
	middleware.Setup(e, log, middleware.RecoveryConfig{
		DisablePrintStack: cfg.IsProduction(),
	})

	// Setup routes
	setupRoutes(e, cfg, log, tables)

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e, log)
}

// setupLogger builds the service logger from config.
func setupLogger(cfg *config.Config) *logger.Logger {
	logCfg := logger.DefaultConfig()
	logCfg.Level = cfg.Logging.Level
	logCfg.Format = cfg.Logging.Format
	logCfg.EnableCaller = cfg.IsDevelopment()
	return logger.New(logCfg)
}

// setupRoutes configures the HTTP routes.
func setupRoutes(e *echo.Echo, cfg *config.Config, log *logger.Logger, tables domain.TableSource) {
	planner := usecase.NewItineraryPlanner(&usecase.Config{
		Origin:  cfg.Search.Origin,
		OneOpt:  cfg.Search.OneOpt,
		Workers: cfg.Search.Workers,
		Logger:  log.WithSource(tables.Name()),
	})

	handler := itineraryhttp.NewItineraryHandler(planner, tables, cfg.Search.Timeout)
	itineraryhttp.RegisterRoutes(e, handler)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
