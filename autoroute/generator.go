package autoroute

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/rs/zerolog/log"

	"github.com/greencycle/wastehub/algorithm"
	db "github.com/greencycle/wastehub/db/sqlc"
	"github.com/greencycle/wastehub/maps"
	"github.com/greencycle/wastehub/util"
)

// GenerateParams controls a single generation run. Zero values fall back to
// the configured defaults.
type GenerateParams struct {
	Zone          string    // restrict candidates to one zone; empty means all zones
	ScheduledDate time.Time // defaults to today
	MaxRoutes     int       // defaults to ROUTE_MAX_PER_RUN
}

// GenerateResult reports what a generation run produced
type GenerateResult struct {
	Routes         []db.Route `json:"routes"`
	CandidateCount int        `json:"candidate_count"`
	RouteCount     int        `json:"route_count"`
	Message        string     `json:"message,omitempty"`
}

// Generator turns collection-ready bins into persisted routes
type Generator struct {
	config  util.Config
	store   db.Store
	planner *algorithm.RoutePlanner
}

// NewGenerator creates a route generator using the configured planning policy
func NewGenerator(config util.Config, store db.Store) *Generator {
	planConfig := algorithm.DefaultRoutePlanConfig
	if config.RouteChunkSize > 0 {
		planConfig.ChunkSize = config.RouteChunkSize
	}
	return &Generator{
		config:  config,
		store:   store,
		planner: algorithm.NewRoutePlanner(planConfig),
	}
}

// Generate selects collection candidates, plans zone routes over them and
// persists each plan with its ordered stops. A run with no eligible bins is
// not an error: it returns an empty result with an explanatory message.
func (g *Generator) Generate(ctx context.Context, arg GenerateParams) (GenerateResult, error) {
	result := GenerateResult{Routes: []db.Route{}}

	// 1. Collect eligible bins: full enough, stale organic, or still pending
	zone := pgtype.Text{}
	if arg.Zone != "" {
		zone = pgtype.Text{String: arg.Zone, Valid: true}
	}
	bins, err := g.store.ListCollectionCandidateBins(ctx, db.ListCollectionCandidateBinsParams{
		Zone:          zone,
		FillThreshold: g.config.CollectionFillThreshold,
		StaleBefore:   time.Now().Add(-g.config.OrganicStaleAfter),
	})
	if err != nil {
		return result, fmt.Errorf("list collection candidates: %w", err)
	}
	result.CandidateCount = len(bins)
	if len(bins) == 0 {
		result.Message = "no bins need collection"
		return result, nil
	}

	candidates := make([]algorithm.CandidateBin, len(bins))
	for i, bin := range bins {
		candidates[i] = algorithm.CandidateBin{
			BinID: bin.ID,
			Zone:  bin.Zone,
			Location: algorithm.Location{
				Latitude:  bin.Latitude,
				Longitude: bin.Longitude,
			},
		}
	}

	// 2. Plan the routes from the depot
	maxRoutes := arg.MaxRoutes
	if maxRoutes <= 0 {
		maxRoutes = g.config.RouteMaxPerRun
	}
	start := g.startLocation(candidates)
	plans := g.planner.Plan(start, candidates, maxRoutes)

	// 3. Persist each plan together with its ordered stops
	scheduledDate := arg.ScheduledDate
	if scheduledDate.IsZero() {
		scheduledDate = time.Now()
	}
	for _, plan := range plans {
		txResult, err := g.createRoute(ctx, start, plan, scheduledDate)
		if err != nil {
			return result, err
		}
		result.Routes = append(result.Routes, txResult.Route)
	}

	result.RouteCount = len(result.Routes)
	return result, nil
}

// startLocation picks the route anchor: the configured depot, or the centroid
// of the candidates when no depot is set.
func (g *Generator) startLocation(candidates []algorithm.CandidateBin) algorithm.Location {
	if g.config.DepotLatitude != 0 || g.config.DepotLongitude != 0 {
		return algorithm.Location{
			Latitude:  g.config.DepotLatitude,
			Longitude: g.config.DepotLongitude,
		}
	}
	locations := make([]algorithm.Location, len(candidates))
	for i, c := range candidates {
		locations[i] = c.Location
	}
	return algorithm.CenterPoint(locations)
}

func (g *Generator) createRoute(ctx context.Context, start algorithm.Location, plan algorithm.RoutePlan, scheduledDate time.Time) (db.CreateRouteTxResult, error) {
	path := make([]algorithm.Location, len(plan.Stops))
	stops := make([]db.CreateRouteStopParams, len(plan.Stops))
	for i, stop := range plan.Stops {
		path[i] = stop.Location
		stops[i] = db.CreateRouteStopParams{
			BinID:     stop.BinID,
			SeqNo:     int32(i + 1),
			Latitude:  stop.Location.Latitude,
			Longitude: stop.Location.Longitude,
		}
	}

	name := fmt.Sprintf("%s collection %s", plan.Zone, scheduledDate.Format("2006-01-02"))
	txResult, err := g.store.CreateRouteTx(ctx, db.CreateRouteTxParams{
		CreateRouteParams: db.CreateRouteParams{
			Name:                     name,
			Zone:                     plan.Zone,
			ScheduledDate:            pgtype.Date{Time: scheduledDate, Valid: true},
			DirectionsUrl:            maps.BuildDirectionsURL(start, path),
			EstimatedDurationMinutes: plan.EstimatedDurationMinutes,
			EstimatedDistanceKm:      plan.EstimatedDistanceKm,
		},
		Stops: stops,
	})
	if err != nil {
		return txResult, fmt.Errorf("create route for zone %s: %w", plan.Zone, err)
	}

	log.Info().
		Int64("route_id", txResult.Route.ID).
		Str("zone", plan.Zone).
		Int("stops", len(stops)).
		Msg("route created")
	return txResult, nil
}
