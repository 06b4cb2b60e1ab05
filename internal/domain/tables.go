package domain

import (
	"bytes"
	"context"
	"encoding/json"
)

// DestinationRecord is one row of the destinations table.
type DestinationRecord struct {
	// Name is the country name, joined against StayRecord.Name
	Name string `json:"name"`

	// CostPerNight is the nightly housing cost in the country
	CostPerNight float64 `json:"cost_per_night"`

	// Departures are the flights into the country, keyed by arrival day.
	// For the origin they are the outbound departures.
	Departures FlightTable `json:"departures"`
}

// UnmarshalJSON decodes a destination row. cost_per_night is required: a
// missing value would otherwise read as free housing.
func (r *DestinationRecord) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	var raw struct {
		Name         string      `json:"name"`
		CostPerNight *float64    `json:"cost_per_night"`
		Departures   FlightTable `json:"departures"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.CostPerNight == nil {
		return WrapInvalidData("destination %q: cost_per_night is required", raw.Name)
	}

	*r = DestinationRecord{
		Name:         raw.Name,
		CostPerNight: *raw.CostPerNight,
		Departures:   raw.Departures,
	}
	return nil
}

// StayRecord is one row of the stay-length table.
type StayRecord struct {
	Name    string `json:"name"`
	Minimum int    `json:"minimum"`
	Optimum int    `json:"optimum"`
	Maximum int    `json:"maximum"`
}

// Limits returns the stay limits carried by the record.
func (r StayRecord) Limits() StayLimits {
	return StayLimits{Minimum: r.Minimum, Optimum: r.Optimum, Maximum: r.Maximum}
}

// Tables holds the two input tables, already materialized in memory.
type Tables struct {
	Destinations []DestinationRecord `json:"destinations"`
	Stays        []StayRecord        `json:"days"`
}

// TableSource loads the input tables from some backing store.
//
//go:generate mockgen -source=tables.go -destination=mock_source.go -package=domain
type TableSource interface {
	// Name returns a short identifier for logging (e.g. "file", "postgres").
	Name() string

	// Load reads both tables. Implementations must preserve row order and the
	// order of departures within each destination.
	Load(ctx context.Context) (*Tables, error)
}
