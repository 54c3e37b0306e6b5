package grid

import "math"

// Euclidean returns the straight-line distance between two cells.
// It never overestimates the true remaining cost on a grid world whose
// step costs equal the distance moved, which makes it the default
// choice of heuristic for the astar engines.
func Euclidean(a, b Cell) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)

	return math.Sqrt(dx*dx + dy*dy)
}

// Manhattan returns the taxicab distance between two cells. Admissible
// on 4-connected worlds; it overestimates diagonal movement, so prefer
// Euclidean when diagonal moves are enabled.
func Manhattan(a, b Cell) float64 {
	return math.Abs(float64(a.X-b.X)) + math.Abs(float64(a.Y-b.Y))
}
