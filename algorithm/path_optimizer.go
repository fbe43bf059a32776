package algorithm

// OptimizePath orders a set of stop points with the greedy nearest-neighbor
// heuristic: starting from start, repeatedly visit the closest unvisited point.
//
// The result is a permutation of points. Ties are broken by input order, so the
// output is deterministic for a given input order. The input slice is never
// modified. O(n²), which is fine for the per-route stop caps in use.
func OptimizePath(start Location, points []Point) []Point {
	if len(points) == 0 {
		return []Point{}
	}

	remaining := make([]Point, len(points))
	copy(remaining, points)

	ordered := make([]Point, 0, len(points))
	current := start

	for len(remaining) > 0 {
		nearest := 0
		nearestDist := EuclideanDistance(current, remaining[0].Location)
		for i := 1; i < len(remaining); i++ {
			d := EuclideanDistance(current, remaining[i].Location)
			if d < nearestDist {
				nearest = i
				nearestDist = d
			}
		}

		next := remaining[nearest]
		ordered = append(ordered, next)
		current = next.Location
		remaining = append(remaining[:nearest], remaining[nearest+1:]...)
	}

	return ordered
}
