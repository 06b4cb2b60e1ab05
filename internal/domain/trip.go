package domain

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Trip is a partial or complete itinerary.
type Trip struct {
	// Price is the accumulated cost of flights and housing
	Price float64 `json:"price"`

	// Deviation is the sum over legs of |stay - optimum stay|, in days
	Deviation int `json:"deviation"`

	// Legs holds the origin departure day followed by each arrival day, in visiting order
	Legs []Day `json:"legs"`
}

// NewTrip starts an itinerary with a departure from the origin.
func NewTrip(departure Flight) Trip {
	return Trip{
		Price:     departure.Cost,
		Deviation: 0,
		Legs:      []Day{departure.Day},
	}
}

// LastLeg returns the day of the most recent leg.
// The zero Day is returned for a trip with no legs.
func (t Trip) LastLeg() Day {
	if len(t.Legs) == 0 {
		return 0
	}
	return t.Legs[len(t.Legs)-1]
}

// Extend returns a new trip that continues t with a flight into dest.
// The stay length is the gap between the last leg and the arrival; it is not
// range-checked here, callers filter by dest.Stay first.
// t is left untouched and the result never shares its Legs backing array.
func (t Trip) Extend(dest Destination, arrival Flight) Trip {
	stay := arrival.Day.Since(t.LastLeg())

	legs := make([]Day, len(t.Legs), len(t.Legs)+1)
	copy(legs, t.Legs)
	legs = append(legs, arrival.Day)

	return Trip{
		Price:     t.Price + float64(stay)*dest.CostPerNight + arrival.Cost,
		Deviation: t.Deviation + dest.Stay.Deviation(stay),
		Legs:      legs,
	}
}

// Markers returns the legs as textual day markers.
func (t Trip) Markers() []string {
	out := make([]string, len(t.Legs))
	for i, d := range t.Legs {
		out[i] = d.String()
	}
	return out
}

// String renders the trip as "price 210, optimal 0, flights [0, 3]".
func (t Trip) String() string {
	return "price " + strconv.FormatFloat(t.Price, 'f', -1, 64) +
		", optimal " + strconv.Itoa(t.Deviation) +
		", flights [" + strings.Join(t.Markers(), ", ") + "]"
}

// TripEntry pairs an arrival day with the trip that survived for it.
type TripEntry struct {
	Arrival Day  `json:"arrival"`
	Trip    Trip `json:"trip"`
}

// TripSet maps arrival days to exactly one surviving trip, in insertion order.
type TripSet struct {
	entries []TripEntry
	index   map[Day]int
}

// NewTripSet creates an empty set with room for n entries.
func NewTripSet(n int) *TripSet {
	return &TripSet{
		entries: make([]TripEntry, 0, n),
		index:   make(map[Day]int, n),
	}
}

// Put stores trip under day. Replacing an existing day keeps its position.
func (s *TripSet) Put(day Day, trip Trip) {
	if i, ok := s.index[day]; ok {
		s.entries[i].Trip = trip
		return
	}
	s.index[day] = len(s.entries)
	s.entries = append(s.entries, TripEntry{Arrival: day, Trip: trip})
}

// Get returns the trip stored for day.
func (s *TripSet) Get(day Day) (Trip, bool) {
	if s == nil {
		return Trip{}, false
	}
	i, ok := s.index[day]
	if !ok {
		return Trip{}, false
	}
	return s.entries[i].Trip, true
}

// Len returns the number of arrival days in the set.
func (s *TripSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}

// Entries returns a copy of the entries in insertion order.
func (s *TripSet) Entries() []TripEntry {
	if s == nil {
		return nil
	}
	out := make([]TripEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Trips returns the trips in insertion order.
func (s *TripSet) Trips() []Trip {
	if s == nil {
		return nil
	}
	out := make([]Trip, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Trip
	}
	return out
}

// MarshalJSON encodes the set as an ordered array of entries.
func (s *TripSet) MarshalJSON() ([]byte, error) {
	entries := s.Entries()
	if entries == nil {
		entries = []TripEntry{}
	}
	return json.Marshal(entries)
}
