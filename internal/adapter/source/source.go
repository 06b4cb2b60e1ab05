// Package source builds the configured table source.
package source

import (
	"context"
	"fmt"

	"github.com/trip-planner/multi-leg-itinerary-planner/internal/adapter/source/jsonfile"
	"github.com/trip-planner/multi-leg-itinerary-planner/internal/adapter/source/postgres"
	"github.com/trip-planner/multi-leg-itinerary-planner/internal/config"
	"github.com/trip-planner/multi-leg-itinerary-planner/internal/domain"
	"github.com/trip-planner/multi-leg-itinerary-planner/internal/infrastructure/database"
)

// CloseFunc releases whatever the source holds open.
type CloseFunc func() error

func noopClose() error { return nil }

// Open returns the table source selected by DATA_SOURCE.
// The returned CloseFunc is never nil.
func Open(ctx context.Context, cfg *config.Config) (domain.TableSource, CloseFunc, error) {
	switch cfg.Data.Source {
	case config.SourceFile:
		return jsonfile.NewSource(cfg.Data.FlightsFile, cfg.Data.DaysFile), noopClose, nil

	case config.SourcePostgres:
		dbCfg := database.DefaultConfig(cfg.Database.URL)
		if cfg.Database.MaxOpenConns > 0 {
			dbCfg.MaxOpenConns = cfg.Database.MaxOpenConns
		}
		db, err := database.Open(ctx, dbCfg)
		if err != nil {
			return nil, noopClose, err
		}
		return postgres.NewSource(db), db.Close, nil
	}

	return nil, noopClose, fmt.Errorf("unknown data source %q", cfg.Data.Source)
}
