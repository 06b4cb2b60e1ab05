package domain

import "fmt"

// StayLimits are the allowed and preferred stay lengths, in days, for a country.
type StayLimits struct {
	Minimum int `json:"minimum"`
	Optimum int `json:"optimum"`
	Maximum int `json:"maximum"`
}

// Validate checks 0 <= Minimum <= Optimum <= Maximum.
func (s StayLimits) Validate() error {
	if s.Minimum < 0 {
		return fmt.Errorf("%w: minimum %d is negative", ErrInvalidStayLimits, s.Minimum)
	}
	if s.Minimum > s.Optimum || s.Optimum > s.Maximum {
		return fmt.Errorf("%w: want minimum <= optimum <= maximum, got %d/%d/%d",
			ErrInvalidStayLimits, s.Minimum, s.Optimum, s.Maximum)
	}
	return nil
}

// Allows reports whether a stay of the given length is within [Minimum, Maximum].
func (s StayLimits) Allows(stay int) bool {
	return s.Minimum <= stay && stay <= s.Maximum
}

// Deviation returns how far a stay is from the optimum, in days.
func (s StayLimits) Deviation(stay int) int {
	d := stay - s.Optimum
	if d < 0 {
		return -d
	}
	return d
}

// Destination is a country that can be visited: housing cost, the flights that
// arrive there, and how long a stay may last.
// Destinations are built once per run and never mutated.
type Destination struct {
	Name         string      `json:"name"`
	CostPerNight float64     `json:"costPerNight"`
	Flights      FlightTable `json:"flights"`
	Stay         StayLimits  `json:"stay"`
}

// String returns a short human-readable description.
func (d Destination) String() string {
	return fmt.Sprintf("%s: night %g, flights %d, stay %d/%d/%d",
		d.Name, d.CostPerNight, d.Flights.Len(), d.Stay.Minimum, d.Stay.Optimum, d.Stay.Maximum)
}
