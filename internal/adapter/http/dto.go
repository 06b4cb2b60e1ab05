package http

import (
	"github.com/trip-planner/multi-leg-itinerary-planner/internal/domain"
)

// PlanResponseDTO is the data transfer object for itinerary search responses.
// It matches the expected API output format with snake_case fields.
type PlanResponseDTO struct {
	Origin      string         `json:"origin"`
	Best        ItineraryDTO   `json:"best"`
	Itineraries []ItineraryDTO `json:"itineraries"`
	Metadata    MetadataDTO    `json:"metadata"`
}

// ItineraryDTO is one itinerary. Legs are the day markers of every flight
// taken, starting with the departure from the origin.
type ItineraryDTO struct {
	Arrival   string   `json:"arrival"`
	Price     float64  `json:"price"`
	Deviation int      `json:"deviation"`
	Legs      []string `json:"legs"`
}

// MetadataDTO contains metadata about the search execution.
type MetadataDTO struct {
	Source           string     `json:"source"`
	OneOpt           float64    `json:"one_opt"`
	Departures       int        `json:"departures"`
	Stages           []StageDTO `json:"stages"`
	TotalItineraries int        `json:"total_itineraries"`
	SearchTimeMs     int64      `json:"search_time_ms"`
}

// StageDTO summarizes one destination stage.
type StageDTO struct {
	Destination string `json:"destination"`
	ArrivalDays int    `json:"arrival_days"`
	Survivors   int    `json:"survivors"`
}

// ToPlanResponseDTO converts a plan result into the API response shape.
// source names where the tables came from ("request", "file", "postgres").
func ToPlanResponseDTO(result *domain.PlanResult, source string) *PlanResponseDTO {
	entries := result.Itineraries.Entries()
	itineraries := make([]ItineraryDTO, 0, len(entries))
	for _, e := range entries {
		itineraries = append(itineraries, toItineraryDTO(e.Arrival, e.Trip))
	}

	stages := make([]StageDTO, 0, len(result.Metadata.Stages))
	for _, s := range result.Metadata.Stages {
		stages = append(stages, StageDTO{
			Destination: s.Destination,
			ArrivalDays: s.ArrivalDays,
			Survivors:   s.Survivors,
		})
	}

	return &PlanResponseDTO{
		Origin:      result.Origin,
		Best:        toItineraryDTO(result.Best.LastLeg(), result.Best),
		Itineraries: itineraries,
		Metadata: MetadataDTO{
			Source:           source,
			OneOpt:           result.Metadata.OneOpt,
			Departures:       result.Metadata.Departures,
			Stages:           stages,
			TotalItineraries: result.Metadata.TotalItineraries,
			SearchTimeMs:     result.Metadata.SearchTimeMs,
		},
	}
}

func toItineraryDTO(arrival domain.Day, trip domain.Trip) ItineraryDTO {
	legs := trip.Markers()
	if legs == nil {
		legs = []string{}
	}
	return ItineraryDTO{
		Arrival:   arrival.String(),
		Price:     trip.Price,
		Deviation: trip.Deviation,
		Legs:      legs,
	}
}
