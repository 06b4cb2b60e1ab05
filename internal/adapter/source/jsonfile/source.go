// Package jsonfile reads the destinations and stay-length tables from the two
// JSON input files.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/trip-planner/multi-leg-itinerary-planner/internal/domain"
)

// SourceName identifies the file source in logs.
const SourceName = "file"

type flightsFile struct {
	Destinations []domain.DestinationRecord `json:"destinations"`
}

type daysFile struct {
	Days []domain.StayRecord `json:"days"`
}

// Source loads tables from a flights file and an optimal-days file.
type Source struct {
	flightsPath string
	daysPath    string
}

// NewSource creates a file-backed table source.
func NewSource(flightsPath, daysPath string) *Source {
	return &Source{flightsPath: flightsPath, daysPath: daysPath}
}

// Name implements domain.TableSource.
func (s *Source) Name() string {
	return SourceName
}

// Load implements domain.TableSource. Both files are read in full on every call.
func (s *Source) Load(ctx context.Context) (*domain.Tables, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	flights, err := os.Open(s.flightsPath)
	if err != nil {
		return nil, fmt.Errorf("open flights file: %w", err)
	}
	defer flights.Close()

	days, err := os.Open(s.daysPath)
	if err != nil {
		return nil, fmt.Errorf("open days file: %w", err)
	}
	defer days.Close()

	tables, err := Decode(flights, days)
	if err != nil {
		return nil, err
	}
	return tables, nil
}

// Decode parses the two table documents. Destination order, departure order
// and stay-record order are kept as they appear in the input.
func Decode(flights, days io.Reader) (*domain.Tables, error) {
	var ff flightsFile
	if err := json.NewDecoder(flights).Decode(&ff); err != nil {
		return nil, fmt.Errorf("decode flights: %w", err)
	}

	var df daysFile
	if err := json.NewDecoder(days).Decode(&df); err != nil {
		return nil, fmt.Errorf("decode optimal days: %w", err)
	}

	return &domain.Tables{
		Destinations: ff.Destinations,
		Stays:        df.Days,
	}, nil
}

var _ domain.TableSource = (*Source)(nil)
