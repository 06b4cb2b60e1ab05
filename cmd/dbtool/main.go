// Package main creates the PostgreSQL schema and seeds it from the
// flights and optimal-days JSON files.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/trip-planner/multi-leg-itinerary-planner/internal/adapter/source/jsonfile"
	"github.com/trip-planner/multi-leg-itinerary-planner/internal/adapter/source/postgres"
	"github.com/trip-planner/multi-leg-itinerary-planner/internal/config"
	"github.com/trip-planner/multi-leg-itinerary-planner/internal/infrastructure/database"
	"github.com/trip-planner/multi-leg-itinerary-planner/internal/infrastructure/logger"
)

const seedTimeout = 30 * time.Second

func main() {
	cfg := config.MustLoad()

	logCfg := logger.DefaultConfig()
	logCfg.Level = cfg.Logging.Level
	logCfg.Format = cfg.Logging.Format
	log := logger.New(logCfg)

	if strings.TrimSpace(cfg.Database.URL) == "" {
		log.Fatal().Msg("DATABASE_URL is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()

	dbCfg := database.DefaultConfig(cfg.Database.URL)
	dbCfg.MaxOpenConns = cfg.Database.MaxOpenConns
	db, err := database.Open(ctx, dbCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	if err := initAndSeed(ctx, db, cfg.Data, log); err != nil {
		db.Close()
		log.Error().Err(err).Msg("Database setup failed")
		os.Exit(1)
	}
	db.Close()
}

func initAndSeed(ctx context.Context, db *sql.DB, data config.DataConfig, log *logger.Logger) error {
	log.Info().Msg("Initializing database schema...")
	if err := postgres.InitSchema(ctx, db); err != nil {
		return fmt.Errorf("schema initialization failed: %w", err)
	}
	log.Info().Msg("Schema ready")

	tables, err := jsonfile.NewSource(data.FlightsFile, data.DaysFile).Load(ctx)
	if err != nil {
		return fmt.Errorf("read seed files: %w", err)
	}

	log.Info().
		Str("flights_file", data.FlightsFile).
		Str("days_file", data.DaysFile).
		Int("destinations", len(tables.Destinations)).
		Int("stay_records", len(tables.Stays)).
		Msg("Seeding database...")
	if err := postgres.Seed(ctx, db, tables); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}
	log.Info().Msg("Seeding complete")

	return nil
}
