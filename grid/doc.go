// Package grid provides 2D occupancy-grid worlds and distance heuristics
// for the astar search engines. It supports:
//
//   - Bounded worlds built from a rectangular obstacle matrix (World)
//   - Unbounded, deterministically seeded random obstacle fields
//     (RandomWorld) for demos and benchmarks
//   - Four- or eight-directional movement, with an optional rule
//     forbidding diagonal moves that cut between two blocked corners
//   - Euclidean and Manhattan heuristics over cells
//
// A world is consumed by the engines through its NeighborFunc: every
// open, legally reachable adjacent cell is yielded with the Euclidean
// step cost (1 for orthogonal moves, √2 for diagonal moves), so the
// Euclidean heuristic is admissible on any grid world.
//
// Coordinates are (X, Y) with the obstacle matrix indexed row-major:
// cells[Y][X], non-zero meaning blocked.
//
// Example usage:
//
//	world, err := grid.NewWorld([][]int{
//	    {0, 0, 0},
//	    {0, 1, 1},
//	    {0, 0, 0},
//	}, grid.WithDiagonalMoves())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	nav, _ := astar.New(world.NeighborFunc(), grid.Euclidean)
//	path := nav.GetPath(ctx, grid.Cell{X: 2, Y: 0}, grid.Cell{X: 2, Y: 2})
package grid
