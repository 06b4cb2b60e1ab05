// Package domain contains the core entities and rules of the itinerary planner.
// The types here are source-agnostic: file, database and HTTP adapters all produce
// and consume the same records.
package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Flight is a single available flight into (or out of) a destination.
type Flight struct {
	// Day is the arrival day of the flight
	Day Day `json:"day"`

	// Cost is the ticket price, in the same currency unit as nightly housing
	Cost float64 `json:"cost"`
}

// FlightTable is an immutable table of flights keyed by day.
// It keeps the order in which flights were supplied; the planner's tie-break folds
// depend on that order, so it must survive JSON decoding.
type FlightTable struct {
	flights []Flight
	index   map[Day]int
}

// NewFlightTable builds a table from flights in the given order.
// Returns an error wrapping ErrDuplicateDay if two flights share a day.
func NewFlightTable(flights ...Flight) (FlightTable, error) {
	t := FlightTable{
		flights: make([]Flight, 0, len(flights)),
		index:   make(map[Day]int, len(flights)),
	}
	for _, f := range flights {
		if _, exists := t.index[f.Day]; exists {
			return FlightTable{}, fmt.Errorf("%w: %s", ErrDuplicateDay, f.Day)
		}
		t.index[f.Day] = len(t.flights)
		t.flights = append(t.flights, f)
	}
	return t, nil
}

// MustFlightTable is like NewFlightTable but panics on error.
// Intended for fixtures and tests.
func MustFlightTable(flights ...Flight) FlightTable {
	t, err := NewFlightTable(flights...)
	if err != nil {
		panic(err)
	}
	return t
}

// Len returns the number of flights in the table.
func (t FlightTable) Len() int {
	return len(t.flights)
}

// Flights returns a copy of the flights in table order.
func (t FlightTable) Flights() []Flight {
	out := make([]Flight, len(t.flights))
	copy(out, t.flights)
	return out
}

// Lookup returns the flight arriving on the given day.
func (t FlightTable) Lookup(day Day) (Flight, bool) {
	i, ok := t.index[day]
	if !ok {
		return Flight{}, false
	}
	return t.flights[i], true
}

// fare is the JSON value stored under each day marker. Cost is a pointer so a
// missing or null cost is told apart from a free flight.
type fare struct {
	Cost *float64 `json:"cost"`
}

// UnmarshalJSON decodes {"<day>": {"cost": n}, ...} keeping key order.
func (t *FlightTable) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*t = FlightTable{}
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("flight table: expected object, got %v", tok)
	}

	var flights []Flight
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		marker, _ := keyTok.(string)

		day, err := ParseDay(marker)
		if err != nil {
			return err
		}

		var f fare
		if err := dec.Decode(&f); err != nil {
			return fmt.Errorf("flight table: day %s: %w", marker, err)
		}
		if f.Cost == nil {
			return WrapInvalidData("flight table: day %s: cost is required", marker)
		}
		flights = append(flights, Flight{Day: day, Cost: *f.Cost})
	}

	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return err
	}

	built, err := NewFlightTable(flights...)
	if err != nil {
		return err
	}
	*t = built
	return nil
}

// MarshalJSON encodes the table back to its keyed object form, in table order.
func (t FlightTable) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range t.flights {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Day.String())
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(fare{Cost: &f.Cost})
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
