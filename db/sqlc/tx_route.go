package db

import (
	"context"
	"fmt"
)

// CreateRouteTxParams contains the input parameters of the route creation transaction
type CreateRouteTxParams struct {
	CreateRouteParams
	Stops []CreateRouteStopParams // RouteID is filled in by the transaction
}

// CreateRouteTxResult is the result of the route creation transaction
type CreateRouteTxResult struct {
	Route Route
	Stops []RouteStop
}

// CreateRouteTx creates a route together with its ordered stops. Either the
// whole route lands or nothing does.
func (store *SQLStore) CreateRouteTx(ctx context.Context, arg CreateRouteTxParams) (CreateRouteTxResult, error) {
	var result CreateRouteTxResult

	err := store.execTx(ctx, func(q *Queries) error {
		var err error

		// 1. Create the route
		result.Route, err = q.CreateRoute(ctx, arg.CreateRouteParams)
		if err != nil {
			return fmt.Errorf("create route: %w", err)
		}

		// 2. Create the stops in visiting order
		result.Stops = make([]RouteStop, 0, len(arg.Stops))
		for _, stopArg := range arg.Stops {
			stopArg.RouteID = result.Route.ID
			stop, err := q.CreateRouteStop(ctx, stopArg)
			if err != nil {
				return fmt.Errorf("create route stop %d: %w", stopArg.SeqNo, err)
			}
			result.Stops = append(result.Stops, stop)
		}

		return nil
	})

	return result, err
}
