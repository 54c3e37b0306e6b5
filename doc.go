// Package navkit is a compact path-planning toolkit for robotics-style
// navigation: best-first search over any node space you can describe
// with a neighbor function.
//
// What navkit offers:
//
//   - A generic A* engine — works on any comparable node type, guided by
//     a pluggable heuristic, with step/cost budgets and cooperative
//     cancellation via context.Context
//   - A bidirectional A* engine — races a forward and a backward search
//     toward each other and stitches their paths where they meet
//   - Best-effort results — when the goal is unreachable or a budget
//     runs out, you still get the path to the closest node found
//   - Grid worlds — bounded occupancy grids and unbounded seeded random
//     fields, with Euclidean and Manhattan heuristics, ready to plug
//     into the engines
//
// Why navkit?
//
//   - No graph to build up front: edges are discovered lazily, one
//     expansion at a time, so worlds may be huge or procedural
//   - Pure Go, no hidden dependencies
//   - Engines are plain reusable values: one instance per goroutine,
//     as many goroutines as you like
//
// The module is organized in two packages:
//
//	astar/ — the search core: AStar, BidirAStar, Path, options
//	grid/  — occupancy-grid worlds and heuristics for 2D planning
//
// Quick taste:
//
//	world, _ := grid.NewWorld(cells, grid.WithDiagonalMoves())
//	nav, _ := astar.New(world.NeighborFunc(), grid.Euclidean)
//	path := nav.GetPath(ctx, grid.Cell{X: 0, Y: 0}, grid.Cell{X: 9, Y: 4})
//	fmt.Println(path)
//
// See the package docs of astar and grid for the full API.
package navkit
