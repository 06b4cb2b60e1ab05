package http

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/trip-planner/multi-leg-itinerary-planner/internal/domain"
)

// PlanItineraryRequest represents the request body for an itinerary search
// over caller-supplied tables.
type PlanItineraryRequest struct {
	// Origin is the starting city; empty uses the server default
	Origin string `json:"origin,omitempty"`

	// OneOpt is the price amount worth one deviation day; omitted uses the server default
	OneOpt *float64 `json:"oneOpt,omitempty"`

	// Destinations is the destinations table, in visiting order
	Destinations []domain.DestinationRecord `json:"destinations"`

	// Days is the stay-length table
	Days []domain.StayRecord `json:"days"`
}

// PlanQuery holds the optional query overrides of GET /api/v1/itineraries.
type PlanQuery struct {
	Origin string
	OneOpt *float64
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate checks the shape of the request. Join-level problems, such as a
// destination without a stay record, are reported by the planner instead.
func (r *PlanItineraryRequest) Validate() error {
	errs := &ValidationErrors{}

	validateOneOpt(errs, r.OneOpt)
	r.validateDestinations(errs)
	r.validateDays(errs)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func (r *PlanItineraryRequest) validateDestinations(errs *ValidationErrors) {
	if len(r.Destinations) == 0 {
		errs.Add("destinations", "at least one destination is required")
		return
	}

	for i, d := range r.Destinations {
		field := fmt.Sprintf("destinations[%d]", i)
		if strings.TrimSpace(d.Name) == "" {
			errs.Add(field+".name", "name is required")
		}
		if d.CostPerNight < 0 {
			errs.Add(field+".cost_per_night", "cost_per_night must not be negative")
		}
		for _, f := range d.Departures.Flights() {
			if f.Cost < 0 {
				errs.Add(fmt.Sprintf("%s.departures[%s].cost", field, f.Day), "cost must not be negative")
			}
		}
	}
}

func (r *PlanItineraryRequest) validateDays(errs *ValidationErrors) {
	if len(r.Days) == 0 {
		errs.Add("days", "at least one stay-length record is required")
		return
	}

	for i, s := range r.Days {
		field := fmt.Sprintf("days[%d]", i)
		if strings.TrimSpace(s.Name) == "" {
			errs.Add(field+".name", "name is required")
		}
		if err := s.Limits().Validate(); err != nil {
			errs.Add(field, err.Error())
		}
	}
}

func validateOneOpt(errs *ValidationErrors, oneOpt *float64) {
	switch {
	case oneOpt == nil:
	case math.IsNaN(*oneOpt) || math.IsInf(*oneOpt, 0):
		errs.Add("oneOpt", "oneOpt must be a finite number")
	case *oneOpt <= 0:
		errs.Add("oneOpt", "oneOpt must be positive")
	}
}

// ParsePlanQuery reads the optional origin and oneOpt query parameters.
func ParsePlanQuery(origin, oneOpt string) (PlanQuery, error) {
	errs := &ValidationErrors{}
	q := PlanQuery{Origin: strings.TrimSpace(origin)}

	if oneOpt != "" {
		v, err := strconv.ParseFloat(oneOpt, 64)
		if err != nil {
			errs.Add("oneOpt", "oneOpt must be a number")
		} else {
			q.OneOpt = &v
			validateOneOpt(errs, q.OneOpt)
		}
	}

	if errs.HasErrors() {
		return PlanQuery{}, errs
	}
	return q, nil
}
