// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/trip-planner/multi-leg-itinerary-planner/internal/adapter/source/jsonfile"
	"github.com/trip-planner/multi-leg-itinerary-planner/internal/domain"
)

// Fixture file names under test/testdata.
const (
	FlightsFile = "flights.json"
	DaysFile    = "optimal_days.json"
)

// TestdataPath returns the absolute path of a file in the testdata directory.
func TestdataPath(t *testing.T, filename string) string {
	t.Helper()

	// Get the path to testdata relative to this file
	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}

	// Navigate to project root (testutil is in test/testutil)
	projectRoot := filepath.Join(filepath.Dir(currentFile), "..", "..")
	return filepath.Join(projectRoot, "test", "testdata", filename)
}

// LoadTestJSON loads a JSON file from the testdata directory.
// The filename should be relative to the testdata directory.
func LoadTestJSON(t *testing.T, filename string) []byte {
	t.Helper()

	data, err := os.ReadFile(TestdataPath(t, filename))
	if err != nil {
		t.Fatalf("Failed to load test file %s: %v", filename, err)
	}
	return data
}

// LoadTestTables decodes the fixture flights and optimal-days files.
func LoadTestTables(t *testing.T) *domain.Tables {
	t.Helper()

	tables, err := jsonfile.Decode(
		bytes.NewReader(LoadTestJSON(t, FlightsFile)),
		bytes.NewReader(LoadTestJSON(t, DaysFile)),
	)
	if err != nil {
		t.Fatalf("Failed to decode fixture tables: %v", err)
	}
	return tables
}

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}

// Days converts integer literals to day markers.
func Days(days ...int) []domain.Day {
	out := make([]domain.Day, len(days))
	for i, d := range days {
		out[i] = domain.Day(d)
	}
	return out
}
