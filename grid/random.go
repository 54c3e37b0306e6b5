package grid

import (
	"math/rand"

	"github.com/velmar/navkit/astar"
)

// RandomWorld is an unbounded obstacle field generated deterministically
// from a seed: the same seed always yields the same world, so searches
// over it are reproducible. Obstacles appear per chunk-aligned block of
// chunk×chunk cells with the given density. Intended for demos, fuzzing
// grounds, and benchmarks where hand-building a maze is impractical.
type RandomWorld struct {
	seed    int64
	density float64
	chunk   int
	opts    WorldOptions
	offsets []Cell
}

// NewRandomWorld builds a RandomWorld with obstacle density in [0, 1)
// and a positive chunk size (1 means per-cell obstacles; larger values
// produce blockier terrain).
// Returns ErrBadDensity or ErrBadChunkSize for invalid parameters.
func NewRandomWorld(seed int64, density float64, chunk int, opts ...Option) (*RandomWorld, error) {
	if density < 0 || density >= 1 {
		return nil, ErrBadDensity
	}
	if chunk < 1 {
		return nil, ErrBadChunkSize
	}

	o := DefaultWorldOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &RandomWorld{
		seed:    seed,
		density: density,
		chunk:   chunk,
		opts:    o,
		offsets: neighborOffsets(o.DiagonalMoves),
	}, nil
}

// IsOpen reports whether c is free of obstacles. The answer is a pure
// function of the cell's chunk coordinates and the world seed.
func (w *RandomWorld) IsOpen(c Cell) bool {
	cx := floorDiv(c.X, w.chunk)
	cy := floorDiv(c.Y, w.chunk)

	// Two odd multipliers spread the chunk coordinates across the seed
	// space so adjacent chunks draw independent-looking samples. Mixing
	// is done in uint64 so the multiplies wrap instead of overflowing.
	h := uint64(w.seed) + uint64(cx)*0x9E3779B97F4A7C15 + uint64(cy)*0xC2B2AE3D27D4EB4F
	r := rand.New(rand.NewSource(int64(h)))

	return r.Float64() > w.density
}

// CanMove reports whether a single step between two adjacent cells is
// legal under the world's movement rules.
func (w *RandomWorld) CanMove(from, to Cell) bool {
	return canMove(from, to, w.opts, w.IsOpen)
}

// Neighbors yields every open cell reachable from c in one legal move,
// with the Euclidean step cost.
func (w *RandomWorld) Neighbors(c Cell) []astar.Neighbor[Cell] {
	return collectNeighbors(w.offsets, c, w.IsOpen, w.CanMove)
}

// NeighborFunc adapts the world for the astar engines.
func (w *RandomWorld) NeighborFunc() astar.NeighborFunc[Cell] {
	return w.Neighbors
}

// floorDiv divides rounding toward negative infinity, so chunks tile
// consistently across the origin.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}

	return q
}
