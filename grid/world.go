package grid

import (
	"github.com/velmar/navkit/astar"
)

// World is an immutable, bounded occupancy grid. A cell is either open
// or blocked; movement follows the WorldOptions the world was built with.
type World struct {
	width, height int
	blocked       [][]bool
	opts          WorldOptions
	offsets       []Cell
}

// NewWorld builds a World from a rectangular 2D slice where the row
// index is Y, the column index is X, and any non-zero value marks an
// obstacle. The input is copied, so mutating cells afterwards does not
// affect the World.
// Returns ErrEmptyGrid or ErrNonRectangular for malformed input.
// Complexity: O(W×H) time and memory.
func NewWorld(cells [][]int, opts ...Option) (*World, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(cells), len(cells[0])
	blocked := make([][]bool, h)
	for y, row := range cells {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		blocked[y] = make([]bool, w)
		for x, v := range row {
			blocked[y][x] = v != 0
		}
	}

	o := DefaultWorldOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &World{
		width:   w,
		height:  h,
		blocked: blocked,
		opts:    o,
		offsets: neighborOffsets(o.DiagonalMoves),
	}, nil
}

// Width returns the number of columns.
func (w *World) Width() int { return w.width }

// Height returns the number of rows.
func (w *World) Height() int { return w.height }

// InBounds reports whether c lies within the grid boundaries.
func (w *World) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < w.width && c.Y >= 0 && c.Y < w.height
}

// IsOpen reports whether c is inside the grid and free of obstacles.
func (w *World) IsOpen(c Cell) bool {
	return w.InBounds(c) && !w.blocked[c.Y][c.X]
}

// CanMove reports whether a single step between two adjacent cells is
// legal under the world's movement rules. It does not check openness of
// the endpoints; Neighbors does.
func (w *World) CanMove(from, to Cell) bool {
	return canMove(from, to, w.opts, w.IsOpen)
}

// Neighbors yields every open cell reachable from c in one legal move,
// with the Euclidean step cost: 1 for orthogonal, √2 for diagonal.
func (w *World) Neighbors(c Cell) []astar.Neighbor[Cell] {
	return collectNeighbors(w.offsets, c, w.IsOpen, w.CanMove)
}

// NeighborFunc adapts the world for the astar engines.
func (w *World) NeighborFunc() astar.NeighborFunc[Cell] {
	return w.Neighbors
}

// canMove implements the shared movement rule: orthogonal steps are
// always legal, diagonal steps require DiagonalMoves and — under
// StrictCorners — at least one open touched corner.
func canMove(from, to Cell, opts WorldOptions, isOpen func(Cell) bool) bool {
	dx, dy := abs(to.X-from.X), abs(to.Y-from.Y)
	if dx > 1 || dy > 1 || (dx == 0 && dy == 0) {
		return false
	}
	if dx+dy == 2 { // diagonal step
		if !opts.DiagonalMoves {
			return false
		}
		if opts.StrictCorners &&
			!isOpen(Cell{X: from.X, Y: to.Y}) &&
			!isOpen(Cell{X: to.X, Y: from.Y}) {
			return false
		}
	}

	return true
}

// collectNeighbors filters the offset ring around c down to open,
// legally reachable cells and attaches the Euclidean step cost.
func collectNeighbors(offsets []Cell, c Cell, isOpen func(Cell) bool, canMove func(from, to Cell) bool) []astar.Neighbor[Cell] {
	neighbors := make([]astar.Neighbor[Cell], 0, len(offsets))
	for _, d := range offsets {
		n := Cell{X: c.X + d.X, Y: c.Y + d.Y}
		if !isOpen(n) || !canMove(c, n) {
			continue
		}
		neighbors = append(neighbors, astar.Neighbor[Cell]{Node: n, Cost: Euclidean(c, n)})
	}

	return neighbors
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
