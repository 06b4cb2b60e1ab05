package usecase

import (
	"math"

	"github.com/trip-planner/multi-leg-itinerary-planner/internal/domain"
)

// DefaultOneOpt is the price amount treated as worth one day of stay deviation.
const DefaultOneOpt = 25.0

// Selector picks the best itinerary among competitors.
//
// Deviation is the primary key. A challenger that costs more is charged
// floor(extra / OneOpt) deviation days; a cheaper challenger is never charged.
// The comparison is not a total order, so the result of Fold depends on the
// order of its input.
type Selector struct {
	oneOpt float64
}

// NewSelector creates a Selector. Values that are not positive and finite
// fall back to DefaultOneOpt.
func NewSelector(oneOpt float64) Selector {
	if !(oneOpt > 0) || math.IsInf(oneOpt, 1) {
		oneOpt = DefaultOneOpt
	}
	return Selector{oneOpt: oneOpt}
}

// OneOpt returns the price amount worth one deviation day.
func (s Selector) OneOpt() float64 {
	if s.oneOpt <= 0 {
		return DefaultOneOpt
	}
	return s.oneOpt
}

// Prefers reports whether challenger should replace best.
func (s Selector) Prefers(best, challenger domain.Trip) bool {
	gap := 0.0
	if challenger.Price >= best.Price {
		gap = challenger.Price - best.Price
	}
	penalty := math.Floor(gap / s.OneOpt())
	return penalty+float64(challenger.Deviation) < float64(best.Deviation)
}

// Fold runs a left fold over trips seeded with the first one, replacing the
// running best whenever Prefers says so. Returns false for an empty input.
func (s Selector) Fold(trips []domain.Trip) (domain.Trip, bool) {
	if len(trips) == 0 {
		return domain.Trip{}, false
	}

	best := trips[0]
	for _, challenger := range trips[1:] {
		if s.Prefers(best, challenger) {
			best = challenger
		}
	}
	return best, true
}
