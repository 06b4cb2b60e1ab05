// Package mock provides test doubles for the itinerary planner.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, specific tables).
package mock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/trip-planner/multi-leg-itinerary-planner/internal/domain"
)

// Source is a configurable mock implementation of domain.TableSource.
// It supports configurable delays, errors, and tables for testing
// timeouts and unavailable backends.
type Source struct {
	name      string
	tables    *domain.Tables
	err       error
	delay     time.Duration
	callCount int
	mu        sync.Mutex
}

// NewSource creates a new mock source with the given name.
// The source is configured using the builder pattern methods.
func NewSource(name string) *Source {
	return &Source{name: name}
}

// WithTables configures the source to return the given tables.
func (s *Source) WithTables(tables *domain.Tables) *Source {
	s.tables = tables
	return s
}

// WithError configures the source to return the given error.
func (s *Source) WithError(err error) *Source {
	s.err = err
	return s
}

// WithDelay configures the source to wait the given duration before responding.
func (s *Source) WithDelay(d time.Duration) *Source {
	s.delay = d
	return s
}

// Name implements domain.TableSource.
func (s *Source) Name() string {
	return s.name
}

// Load implements domain.TableSource.
// It respects context cancellation, applies the configured delay,
// and returns the configured tables or error.
func (s *Source) Load(ctx context.Context) (*domain.Tables, error) {
	s.mu.Lock()
	s.callCount++
	s.mu.Unlock()

	if s.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.delay):
		}
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if s.err != nil {
		return nil, s.err
	}
	return s.tables, nil
}

// CallCount returns the number of times Load was called.
func (s *Source) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.callCount
}

// Reset resets the call count to zero.
func (s *Source) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.callCount = 0
}

// Ensure Source implements domain.TableSource at compile time.
var _ domain.TableSource = (*Source)(nil)

// SampleTables returns the Vienna, Rome, Paris tables used across the
// integration tests. The best itinerary costs 340 with no deviation,
// flying on days 1, 4 and 7.
func SampleTables() *domain.Tables {
	return &domain.Tables{
		Destinations: []domain.DestinationRecord{
			{
				Name: "Vienna",
				Departures: domain.MustFlightTable(
					domain.Flight{Day: 0, Cost: 100},
					domain.Flight{Day: 1, Cost: 80},
				),
			},
			{
				Name:         "Rome",
				CostPerNight: 20,
				Departures: domain.MustFlightTable(
					domain.Flight{Day: 3, Cost: 50},
					domain.Flight{Day: 4, Cost: 40},
					domain.Flight{Day: 5, Cost: 60},
				),
			},
			{
				Name:         "Paris",
				CostPerNight: 30,
				Departures: domain.MustFlightTable(
					domain.Flight{Day: 7, Cost: 70},
					domain.Flight{Day: 9, Cost: 90},
				),
			},
		},
		Stays: []domain.StayRecord{
			{Name: "Vienna"},
			{Name: "Rome", Minimum: 2, Optimum: 3, Maximum: 4},
			{Name: "Paris", Minimum: 2, Optimum: 3, Maximum: 4},
		},
	}
}

// ChainTables builds a route through countries destinations after the origin,
// with a flight on every day of a horizon-day calendar. Costs vary with the
// day so the tie-breaks are exercised.
func ChainTables(countries, horizon int) *domain.Tables {
	tables := &domain.Tables{}

	for c := 0; c <= countries; c++ {
		name := "Vienna"
		if c > 0 {
			name = fmt.Sprintf("Country%02d", c)
		}

		flights := make([]domain.Flight, 0, horizon)
		for d := 0; d < horizon; d++ {
			flights = append(flights, domain.Flight{
				Day:  domain.Day(d),
				Cost: float64(40 + (d*7+c*13)%60),
			})
		}

		tables.Destinations = append(tables.Destinations, domain.DestinationRecord{
			Name:         name,
			CostPerNight: float64(10 * (c % 4)),
			Departures:   domain.MustFlightTable(flights...),
		})

		stay := domain.StayRecord{Name: name, Minimum: 1, Optimum: 2, Maximum: 4}
		if c == 0 {
			stay = domain.StayRecord{Name: name}
		}
		tables.Stays = append(tables.Stays, stay)
	}

	return tables
}
