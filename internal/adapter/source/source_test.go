package source

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trip-planner/multi-leg-itinerary-planner/internal/adapter/source/jsonfile"
	"github.com/trip-planner/multi-leg-itinerary-planner/internal/config"
)

func TestOpen_File(t *testing.T) {
	cfg := &config.Config{Data: config.DataConfig{
		Source:      config.SourceFile,
		FlightsFile: "../../../test/testdata/flights.json",
		DaysFile:    "../../../test/testdata/optimal_days.json",
	}}

	src, closeFn, err := Open(context.Background(), cfg)

	require.NoError(t, err)
	require.NotNil(t, closeFn)
	assert.NoError(t, closeFn())
	assert.Equal(t, jsonfile.SourceName, src.Name())

	tables, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, tables.Destinations, 3)
}

func TestOpen_PostgresInvalidURL(t *testing.T) {
	cfg := &config.Config{
		Data:     config.DataConfig{Source: config.SourcePostgres},
		Database: config.DatabaseConfig{URL: "postgres://%zz", MaxOpenConns: 1},
	}

	src, closeFn, err := Open(context.Background(), cfg)

	assert.Error(t, err)
	assert.Nil(t, src)
	require.NotNil(t, closeFn)
	assert.NoError(t, closeFn())
}

func TestOpen_UnknownSource(t *testing.T) {
	cfg := &config.Config{Data: config.DataConfig{Source: "redis"}}

	_, _, err := Open(context.Background(), cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), `"redis"`)
}
