package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/trip-planner/multi-leg-itinerary-planner/internal/domain"
)

// InitSchema creates the planner tables if they do not exist.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createDestinationsQuery := `
	CREATE TABLE IF NOT EXISTS destinations (
		position INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		cost_per_night DOUBLE PRECISION NOT NULL
	);
	`

	createDeparturesQuery := `
	CREATE TABLE IF NOT EXISTS departures (
		destination_position INTEGER NOT NULL REFERENCES destinations(position) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		day TEXT NOT NULL,
		cost DOUBLE PRECISION NOT NULL,
		PRIMARY KEY (destination_position, position)
	);
	`

	createStayLengthsQuery := `
	CREATE TABLE IF NOT EXISTS stay_lengths (
		position INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		minimum INTEGER NOT NULL,
		optimum INTEGER NOT NULL,
		maximum INTEGER NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_stay_lengths_name
	ON stay_lengths(name);
	`

	statements := []string{
		createDestinationsQuery,
		createDeparturesQuery,
		createStayLengthsQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Seed replaces the stored tables with the given ones in a single transaction.
func Seed(ctx context.Context, db *sql.DB, tables *domain.Tables) error {
	if db == nil {
		return errors.New("seed tables: DB is nil")
	}
	if err := validateSeed(tables); err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed tables: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"departures", "destinations", "stay_lengths"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table+";"); err != nil {
			return fmt.Errorf("seed tables: clear %s: %w", table, err)
		}
	}

	destStmt, err := tx.PrepareContext(ctx, `
	INSERT INTO destinations (position, name, cost_per_night)
	VALUES ($1, $2, $3);
	`)
	if err != nil {
		return fmt.Errorf("seed tables: prepare destination insert: %w", err)
	}
	defer destStmt.Close()

	depStmt, err := tx.PrepareContext(ctx, `
	INSERT INTO departures (destination_position, position, day, cost)
	VALUES ($1, $2, $3, $4);
	`)
	if err != nil {
		return fmt.Errorf("seed tables: prepare departure insert: %w", err)
	}
	defer depStmt.Close()

	stayStmt, err := tx.PrepareContext(ctx, `
	INSERT INTO stay_lengths (position, name, minimum, optimum, maximum)
	VALUES ($1, $2, $3, $4, $5);
	`)
	if err != nil {
		return fmt.Errorf("seed tables: prepare stay insert: %w", err)
	}
	defer stayStmt.Close()

	for i, d := range tables.Destinations {
		if _, err := destStmt.ExecContext(ctx, i, d.Name, d.CostPerNight); err != nil {
			return fmt.Errorf("seed tables: insert destination %q: %w", d.Name, err)
		}
		for j, f := range d.Departures.Flights() {
			if _, err := depStmt.ExecContext(ctx, i, j, f.Day.String(), f.Cost); err != nil {
				return fmt.Errorf("seed tables: insert departure %s of %q: %w", f.Day, d.Name, err)
			}
		}
	}

	for i, s := range tables.Stays {
		if _, err := stayStmt.ExecContext(ctx, i, s.Name, s.Minimum, s.Optimum, s.Maximum); err != nil {
			return fmt.Errorf("seed tables: insert stay length %q: %w", s.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed tables: commit tx: %w", err)
	}

	return nil
}

// validateSeed rejects rows the schema cannot hold. Join-level checks are
// left to the planner so the store mirrors the files.
func validateSeed(tables *domain.Tables) error {
	if tables == nil {
		return errors.New("seed tables: tables are nil")
	}
	for i, d := range tables.Destinations {
		if strings.TrimSpace(d.Name) == "" {
			return fmt.Errorf("seed tables: destination at index %d: name cannot be empty", i+1)
		}
	}
	for i, s := range tables.Stays {
		if strings.TrimSpace(s.Name) == "" {
			return fmt.Errorf("seed tables: stay length at index %d: name cannot be empty", i+1)
		}
	}
	return nil
}
