// Package postgres reads the destinations and stay-length tables from
// PostgreSQL and seeds them from decoded input files.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/trip-planner/multi-leg-itinerary-planner/internal/domain"
)

// SourceName identifies the postgres source in logs.
const SourceName = "postgres"

// Source is a PostgreSQL-backed implementation of domain.TableSource.
type Source struct{ DB *sql.DB }

// NewSource creates a table source over an open pool.
func NewSource(db *sql.DB) *Source {
	return &Source{DB: db}
}

// Name implements domain.TableSource.
func (s *Source) Name() string {
	return SourceName
}

type destinationRow struct {
	position     int
	name         string
	costPerNight float64
}

type departureRow struct {
	destination int
	day         string
	cost        float64
}

// Load implements domain.TableSource. Rows come back in position order, so
// the join and fold order match the seeded files.
func (s *Source) Load(ctx context.Context) (*domain.Tables, error) {
	if s.DB == nil {
		return nil, errors.New("postgres source: DB is nil")
	}

	dests, err := s.listDestinations(ctx)
	if err != nil {
		return nil, err
	}
	deps, err := s.listDepartures(ctx)
	if err != nil {
		return nil, err
	}
	stays, err := s.listStays(ctx)
	if err != nil {
		return nil, err
	}

	return assemble(dests, deps, stays)
}

func (s *Source) listDestinations(ctx context.Context) ([]destinationRow, error) {
	query := `
	SELECT
		position,
		name,
		cost_per_night
	FROM destinations
	ORDER BY position;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list destinations: query destinations table: %w", err)
	}
	defer rows.Close()

	out := make([]destinationRow, 0, 16)
	for rows.Next() {
		var r destinationRow
		if err := rows.Scan(&r.position, &r.name, &r.costPerNight); err != nil {
			return nil, fmt.Errorf("list destinations: scan row: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list destinations: row iteration: %w", err)
	}

	return out, nil
}

func (s *Source) listDepartures(ctx context.Context) ([]departureRow, error) {
	query := `
	SELECT
		destination_position,
		day,
		cost
	FROM departures
	ORDER BY destination_position, position;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list departures: query departures table: %w", err)
	}
	defer rows.Close()

	out := make([]departureRow, 0, 64)
	for rows.Next() {
		var r departureRow
		if err := rows.Scan(&r.destination, &r.day, &r.cost); err != nil {
			return nil, fmt.Errorf("list departures: scan row: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list departures: row iteration: %w", err)
	}

	return out, nil
}

func (s *Source) listStays(ctx context.Context) ([]domain.StayRecord, error) {
	query := `
	SELECT
		name,
		minimum,
		optimum,
		maximum
	FROM stay_lengths
	ORDER BY position;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list stay lengths: query stay_lengths table: %w", err)
	}
	defer rows.Close()

	out := make([]domain.StayRecord, 0, 16)
	for rows.Next() {
		var r domain.StayRecord
		if err := rows.Scan(&r.Name, &r.Minimum, &r.Optimum, &r.Maximum); err != nil {
			return nil, fmt.Errorf("list stay lengths: scan row: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list stay lengths: row iteration: %w", err)
	}

	return out, nil
}

// assemble groups departure rows under their destination. Day markers are
// stored as text and parsed here, same as the file source.
func assemble(dests []destinationRow, deps []departureRow, stays []domain.StayRecord) (*domain.Tables, error) {
	flights := make(map[int][]domain.Flight, len(dests))
	for _, d := range deps {
		day, err := domain.ParseDay(d.day)
		if err != nil {
			return nil, fmt.Errorf("destination position %d: %w", d.destination, err)
		}
		flights[d.destination] = append(flights[d.destination], domain.Flight{Day: day, Cost: d.cost})
	}

	records := make([]domain.DestinationRecord, 0, len(dests))
	for _, d := range dests {
		table, err := domain.NewFlightTable(flights[d.position]...)
		if err != nil {
			return nil, fmt.Errorf("destination %q: %w", d.name, err)
		}
		delete(flights, d.position)
		records = append(records, domain.DestinationRecord{
			Name:         d.name,
			CostPerNight: d.costPerNight,
			Departures:   table,
		})
	}
	for position := range flights {
		return nil, domain.WrapInvalidData("departures reference unknown destination position %d", position)
	}

	return &domain.Tables{Destinations: records, Stays: stays}, nil
}

var _ domain.TableSource = (*Source)(nil)
