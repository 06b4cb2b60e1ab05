package domain

// PlanResult is the outcome of an itinerary search.
type PlanResult struct {
	// Origin is the city every itinerary departs from
	Origin string `json:"origin"`

	// Best is the single itinerary picked from the final set
	Best Trip `json:"best"`

	// Itineraries is the final itinerary set, keyed by last arrival day
	Itineraries *TripSet `json:"itineraries"`

	// Metadata contains information about the search execution
	Metadata PlanMetadata `json:"metadata"`
}

// PlanMetadata contains metadata about the search execution.
type PlanMetadata struct {
	// OneOpt is the price amount counted as one day of deviation in tie-breaks
	OneOpt float64 `json:"one_opt"`

	// Departures is the number of itineraries seeded from origin departures
	Departures int `json:"departures"`

	// Stages summarizes each destination stage in visiting order
	Stages []StageSummary `json:"stages"`

	// TotalItineraries is the size of the final itinerary set
	TotalItineraries int `json:"total_itineraries"`

	// SearchTimeMs is the total search duration in milliseconds
	SearchTimeMs int64 `json:"search_time_ms"`
}

// StageSummary describes a single stage of the sweep.
type StageSummary struct {
	// Destination is the country visited at this stage
	Destination string `json:"destination"`

	// ArrivalDays is the number of flights into the destination
	ArrivalDays int `json:"arrival_days"`

	// Survivors is the number of arrival days that kept an itinerary
	Survivors int `json:"survivors"`
}
