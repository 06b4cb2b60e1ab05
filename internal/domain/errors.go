package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the itinerary planner.
var (
	// ErrCountryNotFound is returned when a destination has no stay-length record.
	ErrCountryNotFound = errors.New("country not found in stay-length table")

	// ErrOriginNotFound is returned when the configured origin is not a destination record.
	ErrOriginNotFound = errors.New("origin not found in destinations table")

	// ErrNoFeasibleItinerary is returned when no itinerary survives every stage.
	ErrNoFeasibleItinerary = errors.New("no feasible itinerary")

	// ErrInvalidDayMarker is returned when a day marker is not integer-valued text.
	ErrInvalidDayMarker = errors.New("invalid day marker")

	// ErrDuplicateDay is returned when a flight table holds the same day twice.
	ErrDuplicateDay = errors.New("duplicate day in flight table")

	// ErrInvalidStayLimits is returned when minimum <= optimum <= maximum does not hold.
	ErrInvalidStayLimits = errors.New("invalid stay limits")

	// ErrInvalidData is returned for other data-integrity violations (negative costs, empty names).
	ErrInvalidData = errors.New("invalid input data")
)

// LookupError reports a destination that is missing from the stay-length table.
type LookupError struct {
	Country string
}

// NewLookupError creates a LookupError for the given country.
func NewLookupError(country string) *LookupError {
	return &LookupError{Country: country}
}

// Error implements the error interface.
func (e *LookupError) Error() string {
	return fmt.Sprintf("country %q is not in the stay-length table", e.Country)
}

// Unwrap returns ErrCountryNotFound for errors.Is support.
func (e *LookupError) Unwrap() error {
	return ErrCountryNotFound
}

// StageError reports the stage at which the itinerary set became empty.
type StageError struct {
	Stage       int
	Destination string
}

// NewStageError creates a StageError for the given stage (1-based) and destination.
func NewStageError(stage int, destination string) *StageError {
	return &StageError{Stage: stage, Destination: destination}
}

// Error implements the error interface.
func (e *StageError) Error() string {
	return fmt.Sprintf("no feasible itinerary: no arrival in %q at stage %d", e.Destination, e.Stage)
}

// Unwrap returns ErrNoFeasibleItinerary for errors.Is support.
func (e *StageError) Unwrap() error {
	return ErrNoFeasibleItinerary
}

// DayMarkerError reports a day marker that could not be parsed.
type DayMarkerError struct {
	Marker string

	// Canonical is set when the marker is an integer in a non-canonical form.
	Canonical string
}

// Error implements the error interface.
func (e *DayMarkerError) Error() string {
	if e.Canonical != "" {
		return fmt.Sprintf("invalid day marker %q: write it as %q", e.Marker, e.Canonical)
	}
	return fmt.Sprintf("invalid day marker %q: must be an integer", e.Marker)
}

// Unwrap returns ErrInvalidDayMarker for errors.Is support.
func (e *DayMarkerError) Unwrap() error {
	return ErrInvalidDayMarker
}

// WrapInvalidData wraps ErrInvalidData with additional context.
func WrapInvalidData(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidData, fmt.Sprintf(format, args...))
}

// IsCountryNotFound checks if the error is or wraps ErrCountryNotFound.
func IsCountryNotFound(err error) bool {
	return errors.Is(err, ErrCountryNotFound)
}

// IsOriginNotFound checks if the error is or wraps ErrOriginNotFound.
func IsOriginNotFound(err error) bool {
	return errors.Is(err, ErrOriginNotFound)
}

// IsNoFeasibleItinerary checks if the error is or wraps ErrNoFeasibleItinerary.
func IsNoFeasibleItinerary(err error) bool {
	return errors.Is(err, ErrNoFeasibleItinerary)
}

// IsInvalidData checks if the error is a data-integrity violation of any kind.
func IsInvalidData(err error) bool {
	return errors.Is(err, ErrInvalidData) ||
		errors.Is(err, ErrInvalidDayMarker) ||
		errors.Is(err, ErrDuplicateDay) ||
		errors.Is(err, ErrInvalidStayLimits)
}
