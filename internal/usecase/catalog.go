package usecase

import (
	"fmt"
	"strings"

	"github.com/trip-planner/multi-leg-itinerary-planner/internal/domain"
)

// Catalog is the joined view of the input tables: the origin and the
// destinations to visit, in visiting order.
type Catalog struct {
	Origin domain.Destination
	Stages []domain.Destination
}

// BuildCatalog joins the destinations table with the stay-length table.
//
// Every destination record, the origin included, must have a stay record with
// the same name; the first missing one aborts the join with a LookupError.
// A repeated destination name replaces the earlier record but keeps its position.
// The origin is split off; the remaining destinations keep table order.
func BuildCatalog(tables *domain.Tables, origin string) (*Catalog, error) {
	if tables == nil {
		return nil, domain.WrapInvalidData("tables are required")
	}

	order := make([]string, 0, len(tables.Destinations))
	byName := make(map[string]domain.Destination, len(tables.Destinations))

	for i, rec := range tables.Destinations {
		if strings.TrimSpace(rec.Name) == "" {
			return nil, domain.WrapInvalidData("destination at index %d has no name", i)
		}

		limits, err := lookupStay(tables.Stays, rec.Name)
		if err != nil {
			return nil, err
		}
		if err := limits.Validate(); err != nil {
			return nil, fmt.Errorf("country %q: %w", rec.Name, err)
		}
		if err := validateCosts(rec); err != nil {
			return nil, err
		}

		if _, seen := byName[rec.Name]; !seen {
			order = append(order, rec.Name)
		}
		byName[rec.Name] = domain.Destination{
			Name:         rec.Name,
			CostPerNight: rec.CostPerNight,
			Flights:      rec.Departures,
			Stay:         limits,
		}
	}

	start, ok := byName[origin]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrOriginNotFound, origin)
	}

	stages := make([]domain.Destination, 0, len(order))
	for _, name := range order {
		if name == origin {
			continue
		}
		stages = append(stages, byName[name])
	}

	return &Catalog{Origin: start, Stages: stages}, nil
}

// lookupStay returns the limits of the first stay record named country.
func lookupStay(stays []domain.StayRecord, country string) (domain.StayLimits, error) {
	for _, s := range stays {
		if s.Name == country {
			return s.Limits(), nil
		}
	}
	return domain.StayLimits{}, domain.NewLookupError(country)
}

func validateCosts(rec domain.DestinationRecord) error {
	if rec.CostPerNight < 0 {
		return domain.WrapInvalidData("country %q: cost_per_night %g is negative", rec.Name, rec.CostPerNight)
	}
	for _, f := range rec.Departures.Flights() {
		if f.Cost < 0 {
			return domain.WrapInvalidData("country %q: flight on day %s has negative cost %g", rec.Name, f.Day, f.Cost)
		}
	}
	return nil
}
