package grid_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/velmar/navkit/grid"
)

func TestEuclidean(t *testing.T) {
	a := grid.Cell{X: 0, Y: 0}
	b := grid.Cell{X: 3, Y: 4}

	require.Equal(t, 5.0, grid.Euclidean(a, b))
	require.Equal(t, 0.0, grid.Euclidean(a, a))
	require.InDelta(t, math.Sqrt2, grid.Euclidean(a, grid.Cell{X: 1, Y: 1}), 1e-9)

	// Symmetric, and indifferent to sign.
	require.Equal(t, grid.Euclidean(a, b), grid.Euclidean(b, a))
	require.Equal(t, 5.0, grid.Euclidean(a, grid.Cell{X: -3, Y: -4}))
}

func TestManhattan(t *testing.T) {
	a := grid.Cell{X: 0, Y: 0}
	b := grid.Cell{X: 3, Y: 4}

	require.Equal(t, 7.0, grid.Manhattan(a, b))
	require.Equal(t, 0.0, grid.Manhattan(a, a))
	require.Equal(t, grid.Manhattan(a, b), grid.Manhattan(b, a))
	require.Equal(t, 7.0, grid.Manhattan(a, grid.Cell{X: -3, Y: 4}))
}
