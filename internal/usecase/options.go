// Package usecase contains the itinerary search: the table join, the candidate
// selector, the per-destination stage sweep and the driver that threads the
// surviving itinerary set from stage to stage.
package usecase

import (
	"github.com/trip-planner/multi-leg-itinerary-planner/internal/infrastructure/logger"
	"github.com/trip-planner/multi-leg-itinerary-planner/internal/infrastructure/timeutil"
)

// DefaultOrigin is the city itineraries start from when nothing else is configured.
const DefaultOrigin = "Vienna"

// Config contains configuration options for the planner.
type Config struct {
	// Origin is the default starting city
	Origin string

	// OneOpt is the default price amount worth one deviation day
	OneOpt float64

	// Workers bounds the parallelism of a single stage sweep (1 = sequential)
	Workers int

	// Clock measures search duration; defaults to the real clock
	Clock timeutil.Clock

	// Logger receives per-stage and summary logs; defaults to a no-op logger
	Logger *logger.Logger
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Origin:  DefaultOrigin,
		OneOpt:  DefaultOneOpt,
		Workers: 1,
		Clock:   timeutil.NewRealClock(),
		Logger:  logger.Nop(),
	}
}

// PlanOptions overrides configuration for a single search.
// Zero values keep the planner's configured defaults.
type PlanOptions struct {
	// Origin is the starting city for this search
	Origin string

	// OneOpt is the price amount worth one deviation day for this search
	OneOpt float64
}
