package usecase

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/trip-planner/multi-leg-itinerary-planner/internal/domain"
)

// arrival is the outcome for a single arrival day of a stage.
type arrival struct {
	trip domain.Trip
	ok   bool
}

// seedTrips creates the initial itinerary set, one trip per origin departure.
func seedTrips(origin domain.Destination) *domain.TripSet {
	flights := origin.Flights.Flights()
	set := domain.NewTripSet(len(flights))
	for _, f := range flights {
		set.Put(f.Day, domain.NewTrip(f))
	}
	return set
}

// sweepStage runs one destination stage over the incoming itinerary set.
//
// Every flight into dest is handled on its own: predecessors whose arrival day
// leaves a stay within dest's limits are extended with that flight and folded
// by the selector. Arrival days with no such predecessor are dropped.
// With workers > 1 arrival days are processed concurrently; results are
// collected by index, so the outgoing set is identical to a sequential sweep.
func sweepStage(ctx context.Context, sel Selector, dest domain.Destination, incoming *domain.TripSet, workers int) (*domain.TripSet, error) {
	flights := dest.Flights.Flights()
	predecessors := incoming.Entries()
	winners := make([]arrival, len(flights))

	if workers <= 1 || len(flights) < 2 {
		for i, f := range flights {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			winners[i] = bestArrival(sel, dest, f, predecessors)
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(workers)
		for i, f := range flights {
			i, f := i, f
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				winners[i] = bestArrival(sel, dest, f, predecessors)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	next := domain.NewTripSet(len(flights))
	for i, w := range winners {
		if w.ok {
			next.Put(flights[i].Day, w.trip)
		}
	}
	return next, nil
}

// bestArrival picks the winning itinerary that arrives in dest on flight.Day.
// Predecessors are considered in set order, which is the fold order.
func bestArrival(sel Selector, dest domain.Destination, flight domain.Flight, predecessors []domain.TripEntry) arrival {
	candidates := make([]domain.Trip, 0, len(predecessors))
	for _, p := range predecessors {
		if !dest.Stay.Allows(flight.Day.Since(p.Arrival)) {
			continue
		}
		candidates = append(candidates, p.Trip.Extend(dest, flight))
	}

	trip, ok := sel.Fold(candidates)
	return arrival{trip: trip, ok: ok}
}
