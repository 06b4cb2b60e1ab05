// Package text renders plan results as the plain console listing.
package text

import (
	"bufio"
	"errors"
	"io"

	"github.com/trip-planner/multi-leg-itinerary-planner/internal/domain"
)

// BestHeader separates the full listing from the selected itinerary.
const BestHeader = "optimal"

// Render writes one line per final itinerary, in set order, followed by a
// blank line, BestHeader and the best itinerary.
func Render(w io.Writer, result *domain.PlanResult) error {
	if result == nil {
		return errors.New("render: nil result")
	}

	bw := bufio.NewWriter(w)
	for _, trip := range result.Itineraries.Trips() {
		bw.WriteString(trip.String())
		bw.WriteByte('\n')
	}
	bw.WriteString("\n" + BestHeader + "\n")
	bw.WriteString(result.Best.String())
	bw.WriteByte('\n')

	return bw.Flush()
}
