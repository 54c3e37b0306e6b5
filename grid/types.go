package grid

import "errors"

// Sentinel errors for world construction.
var (
	// ErrEmptyGrid indicates the input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")

	// ErrBadDensity indicates an obstacle density outside [0, 1).
	ErrBadDensity = errors.New("grid: obstacle density must be in [0, 1)")

	// ErrBadChunkSize indicates a non-positive obstacle chunk size.
	ErrBadChunkSize = errors.New("grid: chunk size must be positive")
)

// Cell is a 2D grid coordinate. It is comparable, so it can be used
// directly as the node type of the astar engines.
type Cell struct {
	X, Y int
}

// WorldOptions contains tunable movement rules shared by World and
// RandomWorld.
type WorldOptions struct {
	// DiagonalMoves permits 8-directional movement; diagonal steps cost √2.
	DiagonalMoves bool

	// StrictCorners forbids a diagonal step when both orthogonal cells it
	// brushes past are blocked, so paths cannot squeeze between corners.
	// Only meaningful together with DiagonalMoves.
	StrictCorners bool
}

// Option adjusts WorldOptions.
type Option func(*WorldOptions)

// DefaultWorldOptions returns 4-directional movement with the corner
// rule disabled.
func DefaultWorldOptions() WorldOptions {
	return WorldOptions{}
}

// WithDiagonalMoves enables 8-directional movement.
func WithDiagonalMoves() Option {
	return func(o *WorldOptions) { o.DiagonalMoves = true }
}

// WithStrictCorners disallows diagonal steps between two blocked corners.
func WithStrictCorners() Option {
	return func(o *WorldOptions) { o.StrictCorners = true }
}

// neighborOffsets precomputes the per-cell adjacency deltas: N, E, S, W,
// plus the four diagonals when enabled.
func neighborOffsets(diagonal bool) []Cell {
	offsets := []Cell{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	if diagonal {
		offsets = append(offsets, Cell{1, -1}, Cell{1, 1}, Cell{-1, 1}, Cell{-1, -1})
	}

	return offsets
}
