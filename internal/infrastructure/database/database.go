// Package database opens the PostgreSQL connection pool through the pgx
// database/sql driver.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/trip-planner/multi-leg-itinerary-planner/internal/infrastructure/retry"
)

// DriverName is the database/sql driver registered by pgx.
const DriverName = "pgx"

// Config holds connection pool settings.
type Config struct {
	URL             string
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	PingTimeout     time.Duration

	// Retry governs the start-up ping; a database still booting is retried
	Retry retry.Config
}

// DefaultConfig returns pool settings for the given connection URL.
func DefaultConfig(url string) Config {
	return Config{
		URL:             url,
		MaxOpenConns:    5,
		ConnMaxLifetime: 30 * time.Minute,
		PingTimeout:     5 * time.Second,
		Retry:           retry.Connect,
	}
}

// Open creates the pool and verifies the connection with a ping, retried per
// cfg.Retry. A malformed URL, rejected credentials or a missing database fail
// immediately.
func Open(ctx context.Context, cfg Config) (*sql.DB, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("open database: url is empty")
	}
	if _, err := pgx.ParseConfig(cfg.URL); err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db, err := sql.Open(DriverName, cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
		db.SetMaxIdleConns(cfg.MaxOpenConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	err = retry.Do(ctx, cfg.Retry, func(ctx context.Context) error {
		if cfg.PingTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, cfg.PingTimeout)
			defer cancel()
		}
		return classifyPingError(db.PingContext(ctx))
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("open database: verify connection: %w", err)
	}

	return db, nil
}

// classifyPingError marks server answers that a later ping cannot change:
// class 28 (invalid authorization) and 3D000 (unknown database).
func classifyPingError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && (strings.HasPrefix(pgErr.Code, "28") || pgErr.Code == "3D000") {
		return retry.NewPermanent(err)
	}
	return err
}
