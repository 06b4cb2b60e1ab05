package http

import (
	"strings"

	"github.com/trip-planner/multi-leg-itinerary-planner/internal/domain"
	"github.com/trip-planner/multi-leg-itinerary-planner/internal/usecase"
)

// ToDomainTables converts the request body into planner input tables.
func ToDomainTables(req *PlanItineraryRequest) *domain.Tables {
	return &domain.Tables{
		Destinations: req.Destinations,
		Stays:        req.Days,
	}
}

// ToPlanOptions extracts the per-search overrides from a request body.
func ToPlanOptions(req *PlanItineraryRequest) usecase.PlanOptions {
	return toPlanOptions(req.Origin, req.OneOpt)
}

// QueryToPlanOptions extracts the per-search overrides from query parameters.
func QueryToPlanOptions(q PlanQuery) usecase.PlanOptions {
	return toPlanOptions(q.Origin, q.OneOpt)
}

func toPlanOptions(origin string, oneOpt *float64) usecase.PlanOptions {
	opts := usecase.PlanOptions{Origin: strings.TrimSpace(origin)}
	if oneOpt != nil {
		opts.OneOpt = *oneOpt
	}
	return opts
}
