package usecase

import (
	"context"
	"fmt"

	"github.com/trip-planner/multi-leg-itinerary-planner/internal/domain"
	"github.com/trip-planner/multi-leg-itinerary-planner/internal/infrastructure/logger"
	"github.com/trip-planner/multi-leg-itinerary-planner/internal/infrastructure/timeutil"
)

// ItineraryPlanner defines the interface for itinerary search operations.
type ItineraryPlanner interface {
	// Plan joins the tables, sweeps every destination in table order and
	// returns the surviving itineraries together with the selected best one.
	//
	// The search is greedy: each stage keeps one itinerary per arrival day, so the
	// result is not guaranteed to be the global optimum.
	Plan(ctx context.Context, tables *domain.Tables, opts PlanOptions) (*domain.PlanResult, error)
}

// itineraryPlanner implements ItineraryPlanner as a forward stage sweep.
type itineraryPlanner struct {
	origin  string
	oneOpt  float64
	workers int
	clock   timeutil.Clock
	log     *logger.Logger
}

// NewItineraryPlanner creates a new ItineraryPlanner with the given configuration.
// If config is nil, defaults are used; zero fields fall back to their defaults.
func NewItineraryPlanner(config *Config) ItineraryPlanner {
	cfg := DefaultConfig()
	if config != nil {
		if config.Origin != "" {
			cfg.Origin = config.Origin
		}
		if config.OneOpt > 0 {
			cfg.OneOpt = config.OneOpt
		}
		if config.Workers > 0 {
			cfg.Workers = config.Workers
		}
		if config.Clock != nil {
			cfg.Clock = config.Clock
		}
		if config.Logger != nil {
			cfg.Logger = config.Logger
		}
	}

	return &itineraryPlanner{
		origin:  cfg.Origin,
		oneOpt:  cfg.OneOpt,
		workers: cfg.Workers,
		clock:   cfg.Clock,
		log:     cfg.Logger,
	}
}

// Plan implements ItineraryPlanner.Plan.
func (p *itineraryPlanner) Plan(ctx context.Context, tables *domain.Tables, opts PlanOptions) (*domain.PlanResult, error) {
	start := p.clock.Now()

	origin := p.origin
	if opts.Origin != "" {
		origin = opts.Origin
	}
	oneOpt := p.oneOpt
	if opts.OneOpt > 0 {
		oneOpt = opts.OneOpt
	}
	sel := NewSelector(oneOpt)
	log := p.log.WithOrigin(origin)

	catalog, err := BuildCatalog(tables, origin)
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}

	trips := seedTrips(catalog.Origin)
	metadata := domain.PlanMetadata{
		OneOpt:     sel.OneOpt(),
		Departures: trips.Len(),
		Stages:     make([]domain.StageSummary, 0, len(catalog.Stages)),
	}
	if trips.Len() == 0 {
		return nil, domain.NewStageError(0, origin)
	}

	for i, dest := range catalog.Stages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		next, err := sweepStage(ctx, sel, dest, trips, p.workers)
		if err != nil {
			return nil, fmt.Errorf("sweep %q: %w", dest.Name, err)
		}

		metadata.Stages = append(metadata.Stages, domain.StageSummary{
			Destination: dest.Name,
			ArrivalDays: dest.Flights.Len(),
			Survivors:   next.Len(),
		})
		log.Debug().
			Int("stage", i+1).
			Str("destination", dest.Name).
			Int("predecessors", trips.Len()).
			Int("arrival_days", dest.Flights.Len()).
			Int("survivors", next.Len()).
			Msg("Stage swept")

		// Every later stage would be empty too, and final selection needs input.
		if next.Len() == 0 {
			return nil, domain.NewStageError(i+1, dest.Name)
		}
		trips = next
	}

	best, _ := sel.Fold(trips.Trips())

	metadata.TotalItineraries = trips.Len()
	metadata.SearchTimeMs = timeutil.ElapsedMs(p.clock, start)

	log.Info().
		Int("stages", len(catalog.Stages)).
		Int("itineraries", trips.Len()).
		Float64("best_price", best.Price).
		Int("best_deviation", best.Deviation).
		Int64("duration_ms", metadata.SearchTimeMs).
		Msg("Itinerary search completed")

	return &domain.PlanResult{
		Origin:      origin,
		Best:        best,
		Itineraries: trips,
		Metadata:    metadata,
	}, nil
}

// Ensure itineraryPlanner implements ItineraryPlanner at compile time.
var _ ItineraryPlanner = (*itineraryPlanner)(nil)
