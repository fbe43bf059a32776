package algorithm

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func candidateBins(n int, zone string) []CandidateBin {
	bins := make([]CandidateBin, n)
	for i := range bins {
		bins[i] = CandidateBin{
			BinID: int64(i + 1),
			Zone:  zone,
			Location: Location{
				Latitude:  6.8 + float64(i)*0.001,
				Longitude: 79.9 + float64(i)*0.001,
			},
		}
	}
	return bins
}

func TestRoutePlanner_ChunksSingleZone(t *testing.T) {
	// 20 bins in one zone split into chunks of 15 and 5
	planner := NewDefaultRoutePlanner()
	start := Location{Latitude: 6.9, Longitude: 79.85}

	plans := planner.Plan(start, candidateBins(20, "Colombo-03"), 5)

	require.Len(t, plans, 2)
	require.Len(t, plans[0].Stops, 15)
	require.Len(t, plans[1].Stops, 5)
	require.Equal(t, "Colombo-03", plans[0].Zone)
	require.Equal(t, "Colombo-03", plans[1].Zone)
}

func TestRoutePlanner_Estimates(t *testing.T) {
	planner := NewDefaultRoutePlanner()
	start := Location{Latitude: 6.9, Longitude: 79.85}

	testCases := []struct {
		stops    int
		duration int32
		distance float64
	}{
		{3, 30, 2},   // floors apply for small chunks
		{6, 30, 3},   // duration floor still applies
		{10, 50, 5},
		{15, 75, 7.5},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%d stops", tc.stops), func(t *testing.T) {
			plans := planner.Plan(start, candidateBins(tc.stops, "Z"), 0)
			require.Len(t, plans, 1)
			require.Equal(t, tc.duration, plans[0].EstimatedDurationMinutes)
			require.Equal(t, tc.distance, plans[0].EstimatedDistanceKm)
		})
	}
}

func TestRoutePlanner_MaxRoutesCapsMidZone(t *testing.T) {
	// 40 bins in one zone would yield 3 chunks, maxRoutes=2 abandons the rest
	planner := NewDefaultRoutePlanner()
	start := Location{Latitude: 6.9, Longitude: 79.85}

	plans := planner.Plan(start, candidateBins(40, "Z"), 2)

	require.Len(t, plans, 2)
	require.Len(t, plans[0].Stops, 15)
	require.Len(t, plans[1].Stops, 15)
}

func TestRoutePlanner_GroupsByZoneInFirstSeenOrder(t *testing.T) {
	planner := NewDefaultRoutePlanner()
	start := Location{Latitude: 6.9, Longitude: 79.85}

	candidates := []CandidateBin{
		{BinID: 1, Zone: "North", Location: Location{Latitude: 6.95, Longitude: 79.85}},
		{BinID: 2, Zone: "South", Location: Location{Latitude: 6.80, Longitude: 79.85}},
		{BinID: 3, Zone: "North", Location: Location{Latitude: 6.96, Longitude: 79.86}},
		{BinID: 4, Zone: "", Location: Location{Latitude: 6.85, Longitude: 79.90}},
	}

	plans := planner.Plan(start, candidates, 0)

	require.Len(t, plans, 3)
	require.Equal(t, "North", plans[0].Zone)
	require.Len(t, plans[0].Stops, 2)
	require.Equal(t, "South", plans[1].Zone)
	require.Equal(t, UnknownZone, plans[2].Zone)
}

func TestRoutePlanner_EmptyCandidates(t *testing.T) {
	planner := NewDefaultRoutePlanner()
	plans := planner.Plan(Location{}, nil, 5)
	require.Empty(t, plans)
}

func TestRoutePlanner_StopsAreOptimized(t *testing.T) {
	// the chunk order must match running the optimizer over the same points
	planner := NewDefaultRoutePlanner()
	start := Location{Latitude: 6.9, Longitude: 79.85}
	bins := candidateBins(10, "Z")

	plans := planner.Plan(start, bins, 0)
	require.Len(t, plans, 1)

	points := make([]Point, len(bins))
	for i, bin := range bins {
		points[i] = Point{BinID: bin.BinID, Location: bin.Location}
	}
	require.Equal(t, OptimizePath(start, points), plans[0].Stops)
}
