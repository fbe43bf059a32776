package algorithm

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func randomPoints(n int) []Point {
	points := make([]Point, n)
	for i := range points {
		points[i] = Point{
			BinID: int64(i + 1),
			Location: Location{
				Latitude:  6.7 + rand.Float64()*0.3,
				Longitude: 79.8 + rand.Float64()*0.3,
			},
		}
	}
	return points
}

func TestOptimizePath_IsPermutation(t *testing.T) {
	start := Location{Latitude: 6.9, Longitude: 79.85}

	for _, n := range []int{0, 1, 2, 5, 15} {
		points := randomPoints(n)
		ordered := OptimizePath(start, points)

		require.Len(t, ordered, n)

		seen := map[int64]bool{}
		for _, p := range ordered {
			require.False(t, seen[p.BinID], "bin visited twice")
			seen[p.BinID] = true
		}
		for _, p := range points {
			require.True(t, seen[p.BinID], "bin dropped from tour")
		}
	}
}

func TestOptimizePath_Deterministic(t *testing.T) {
	start := Location{Latitude: 6.9, Longitude: 79.85}
	points := randomPoints(12)

	first := OptimizePath(start, points)
	second := OptimizePath(start, points)
	require.Equal(t, first, second)
}

func TestOptimizePath_DoesNotMutateInput(t *testing.T) {
	start := Location{Latitude: 6.9, Longitude: 79.85}
	points := randomPoints(8)

	original := make([]Point, len(points))
	copy(original, points)

	OptimizePath(start, points)
	require.Equal(t, original, points)
}

func TestOptimizePath_GreedyProperty(t *testing.T) {
	// every hop must go to the nearest unvisited point at the time of selection
	start := Location{Latitude: 6.9, Longitude: 79.85}
	points := randomPoints(10)

	ordered := OptimizePath(start, points)

	current := start
	unvisited := map[int64]Location{}
	for _, p := range points {
		unvisited[p.BinID] = p.Location
	}

	for _, p := range ordered {
		chosen := EuclideanDistance(current, p.Location)
		for _, loc := range unvisited {
			require.LessOrEqual(t, chosen, EuclideanDistance(current, loc))
		}
		delete(unvisited, p.BinID)
		current = p.Location
	}
}

func TestOptimizePath_KnownOrder(t *testing.T) {
	// points placed on a line east of start must be visited west to east
	start := Location{Latitude: 6.9, Longitude: 79.80}
	points := []Point{
		{BinID: 3, Location: Location{Latitude: 6.9, Longitude: 79.86}},
		{BinID: 1, Location: Location{Latitude: 6.9, Longitude: 79.82}},
		{BinID: 2, Location: Location{Latitude: 6.9, Longitude: 79.84}},
	}

	ordered := OptimizePath(start, points)

	require.Equal(t, int64(1), ordered[0].BinID)
	require.Equal(t, int64(2), ordered[1].BinID)
	require.Equal(t, int64(3), ordered[2].BinID)
}
