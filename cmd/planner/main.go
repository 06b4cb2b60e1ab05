// Package main runs one itinerary search over the configured tables and
// prints the listing to stdout.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/trip-planner/multi-leg-itinerary-planner/internal/adapter/source"
	"github.com/trip-planner/multi-leg-itinerary-planner/internal/adapter/text"
	"github.com/trip-planner/multi-leg-itinerary-planner/internal/config"
	"github.com/trip-planner/multi-leg-itinerary-planner/internal/domain"
	"github.com/trip-planner/multi-leg-itinerary-planner/internal/infrastructure/logger"
	"github.com/trip-planner/multi-leg-itinerary-planner/internal/usecase"
)

func main() {
	cfg := config.MustLoad()

	logCfg := logger.DefaultConfig()
	logCfg.Level = cfg.Logging.Level
	logCfg.Format = cfg.Logging.Format
	log := logger.New(logCfg)

	if err := run(context.Background(), cfg, log, os.Stdout); err != nil {
		os.Exit(1)
	}
}

// run loads the tables, plans and renders. Failures are logged here so main
// only decides the exit code.
func run(ctx context.Context, cfg *config.Config, log *logger.Logger, out io.Writer) error {
	tables, closeSource, err := source.Open(ctx, cfg)
	if err != nil {
		log.Error().Err(err).Str("data_source", cfg.Data.Source).Msg("Failed to open table source")
		return err
	}
	defer closeSource()

	log = log.WithSource(tables.Name())

	ctx, cancel := context.WithTimeout(ctx, cfg.Search.Timeout)
	defer cancel()

	loaded, err := tables.Load(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load tables")
		return err
	}

	planner := usecase.NewItineraryPlanner(&usecase.Config{
		Origin:  cfg.Search.Origin,
		OneOpt:  cfg.Search.OneOpt,
		Workers: cfg.Search.Workers,
		Logger:  log,
	})

	result, err := planner.Plan(ctx, loaded, usecase.PlanOptions{})
	if err != nil {
		logPlanError(log, err)
		return err
	}

	if err := text.Render(out, result); err != nil {
		log.Error().Err(err).Msg("Failed to write itinerary listing")
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

func logPlanError(log *logger.Logger, err error) {
	switch {
	case domain.IsCountryNotFound(err):
		log.Error().Err(err).Msg("Destination missing from stay-length table")
	case domain.IsOriginNotFound(err):
		log.Error().Err(err).Msg("Origin missing from destinations table")
	case domain.IsNoFeasibleItinerary(err):
		log.Error().Err(err).Msg("No feasible itinerary")
	case domain.IsInvalidData(err):
		log.Error().Err(err).Msg("Invalid input tables")
	default:
		log.Error().Err(err).Msg("Itinerary search failed")
	}
}
