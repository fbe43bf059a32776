package algorithm

import "math"

// UnknownZone is the sentinel group for bins without a zone label
const UnknownZone = "Unknown"

// RoutePlanConfig controls how collection candidates are split into routes
type RoutePlanConfig struct {
	ChunkSize          int     // maximum stops per route
	MinutesPerStop     int     // duration estimate per stop
	MinDurationMinutes int     // floor for the duration estimate
	KmPerStop          float64 // distance estimate per stop
	MinDistanceKm      float64 // floor for the distance estimate
}

// DefaultRoutePlanConfig is the standard planning policy
var DefaultRoutePlanConfig = RoutePlanConfig{
	ChunkSize:          15,
	MinutesPerStop:     5,
	MinDurationMinutes: 30,
	KmPerStop:          0.5,
	MinDistanceKm:      2,
}

// CandidateBin is a bin eligible for collection
type CandidateBin struct {
	BinID    int64
	Zone     string
	Location Location
}

// RoutePlan is one planned route: an ordered list of stops within a single
// zone, plus flat effort estimates.
type RoutePlan struct {
	Zone                     string
	Stops                    []Point // in visiting order
	EstimatedDurationMinutes int32
	EstimatedDistanceKm      float64
}

// RoutePlanner turns collection candidates into ordered route plans
type RoutePlanner struct {
	config RoutePlanConfig
}

// NewRoutePlanner creates a route planner with the given policy
func NewRoutePlanner(config RoutePlanConfig) *RoutePlanner {
	return &RoutePlanner{config: config}
}

// NewDefaultRoutePlanner creates a route planner with the standard policy
func NewDefaultRoutePlanner() *RoutePlanner {
	return NewRoutePlanner(DefaultRoutePlanConfig)
}

// Plan groups candidates by zone, splits each zone group into chunks of at
// most ChunkSize bins, and orders every chunk with the nearest-neighbor
// heuristic anchored at start. Zones are processed in first-seen order, so
// the output is deterministic for a given input order.
//
// maxRoutes caps the total number of plans across all zones; when the cap is
// hit, planning stops immediately, even mid-zone. maxRoutes <= 0 means no cap.
// An empty candidate set yields an empty plan list, not an error.
func (p *RoutePlanner) Plan(start Location, candidates []CandidateBin, maxRoutes int) []RoutePlan {
	plans := []RoutePlan{}
	if len(candidates) == 0 {
		return plans
	}

	zoneOrder := []string{}
	zoneGroups := map[string][]CandidateBin{}
	for _, bin := range candidates {
		zone := bin.Zone
		if zone == "" {
			zone = UnknownZone
		}
		if _, ok := zoneGroups[zone]; !ok {
			zoneOrder = append(zoneOrder, zone)
		}
		zoneGroups[zone] = append(zoneGroups[zone], bin)
	}

	for _, zone := range zoneOrder {
		group := zoneGroups[zone]
		for offset := 0; offset < len(group); offset += p.config.ChunkSize {
			if maxRoutes > 0 && len(plans) >= maxRoutes {
				return plans
			}

			end := offset + p.config.ChunkSize
			if end > len(group) {
				end = len(group)
			}
			chunk := group[offset:end]

			points := make([]Point, len(chunk))
			for i, bin := range chunk {
				points[i] = Point{BinID: bin.BinID, Location: bin.Location}
			}

			plans = append(plans, RoutePlan{
				Zone:                     zone,
				Stops:                    OptimizePath(start, points),
				EstimatedDurationMinutes: p.estimateDuration(len(points)),
				EstimatedDistanceKm:      p.estimateDistance(len(points)),
			})
		}
	}

	return plans
}

func (p *RoutePlanner) estimateDuration(stopCount int) int32 {
	minutes := stopCount * p.config.MinutesPerStop
	if minutes < p.config.MinDurationMinutes {
		minutes = p.config.MinDurationMinutes
	}
	return int32(minutes)
}

func (p *RoutePlanner) estimateDistance(stopCount int) float64 {
	return math.Max(p.config.MinDistanceKm, float64(stopCount)*p.config.KmPerStop)
}
