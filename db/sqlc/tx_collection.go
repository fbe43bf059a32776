package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/greencycle/wastehub/algorithm"
)

// CollectStopTxParams contains the input parameters of the stop collection transaction
type CollectStopTxParams struct {
	StopID int64
	Weight float64 // collected weight in kilograms, <= 0 means not weighed
	Notes  string
}

// CollectStopTxResult is the result of the stop collection transaction
type CollectStopTxResult struct {
	Stop           RouteStop
	Bin            Bin
	Route          Route
	RouteCompleted bool
}

// CollectStopTx records a field collection scan: the stop is marked collected,
// the bin is emptied and stamped, and the route status is advanced. The first
// collected stop moves the route out of planned; collecting the last stop
// completes the route and stamps its actual duration, distance and weight.
func (store *SQLStore) CollectStopTx(ctx context.Context, arg CollectStopTxParams) (CollectStopTxResult, error) {
	var result CollectStopTxResult

	err := store.execTx(ctx, func(q *Queries) error {
		var err error

		// 1. Mark the stop collected
		var weight pgtype.Float8
		if arg.Weight > 0 {
			weight = pgtype.Float8{Float64: arg.Weight, Valid: true}
		}
		result.Stop, err = q.MarkRouteStopCollected(ctx, MarkRouteStopCollectedParams{
			ID:              arg.StopID,
			CollectedWeight: weight,
			Notes:           arg.Notes,
		})
		if err != nil {
			return fmt.Errorf("mark stop collected: %w", err)
		}

		// 2. Empty the bin and stamp the collection time
		result.Bin, err = q.MarkBinCollected(ctx, result.Stop.BinID)
		if err != nil {
			return fmt.Errorf("mark bin collected: %w", err)
		}

		// 3. Advance the route status
		route, err := q.GetRoute(ctx, result.Stop.RouteID)
		if err != nil {
			return fmt.Errorf("get route: %w", err)
		}

		remaining, err := q.CountUncollectedStops(ctx, route.ID)
		if err != nil {
			return fmt.Errorf("count uncollected stops: %w", err)
		}

		if remaining == 0 {
			stops, err := q.ListRouteStops(ctx, route.ID)
			if err != nil {
				return fmt.Errorf("list route stops: %w", err)
			}

			path := make([]algorithm.Location, len(stops))
			totalWeight := 0.0
			for i, stop := range stops {
				path[i] = algorithm.Location{Latitude: stop.Latitude, Longitude: stop.Longitude}
				if stop.CollectedWeight.Valid {
					totalWeight += stop.CollectedWeight.Float64
				}
			}

			actualMinutes := int32(time.Since(route.CreatedAt).Minutes())
			actualKm := float64(algorithm.PathDistanceMeters(path)) / 1000

			result.Route, err = q.CompleteRoute(ctx, CompleteRouteParams{
				ID:                    route.ID,
				ActualDurationMinutes: pgtype.Int4{Int32: actualMinutes, Valid: true},
				ActualDistanceKm:      pgtype.Float8{Float64: actualKm, Valid: true},
				TotalCollectedWeight:  totalWeight,
			})
			if err != nil {
				return fmt.Errorf("complete route: %w", err)
			}
			result.RouteCompleted = true
			return nil
		}

		if route.Status == RouteStatusPlanned {
			result.Route, err = q.UpdateRoute(ctx, UpdateRouteParams{
				ID:     route.ID,
				Status: pgtype.Text{String: RouteStatusInProgress, Valid: true},
			})
			if err != nil {
				return fmt.Errorf("update route status: %w", err)
			}
			return nil
		}

		result.Route = route
		return nil
	})

	return result, err
}
