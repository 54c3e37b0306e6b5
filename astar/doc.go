// Package astar provides A* and bidirectional A* path search over
// caller-defined node spaces with lazily discovered edges.
//
// Overview:
//
//   - AStar expands nodes in best-first order using a min-heap frontier
//     keyed by f = g + h, where g is the cheapest known cost from the
//     start and h is a caller-supplied heuristic estimate to the goal.
//   - BidirAStar runs two AStar instances at once — forward from the
//     start and backward from the goal with the heuristic's arguments
//     mirrored — alternating one expansion per direction, and splices
//     the two half-paths at the node where the searches meet.
//   - Both engines are generic over any comparable node type N. The
//     engine performs no arithmetic on nodes; all geometry lives in the
//     neighbor function and the heuristic.
//
// Best-effort results:
//
//   - A search never fails at run time. If the goal is unreachable, a
//     step or cost budget runs out, or the context is cancelled, GetPath
//     returns the path to the node that came closest to the goal
//     (nearest by heuristic distance, ties broken by cheapest g-score)
//     with Path.Complete == false.
//
// Heuristic contract:
//
//   - For complete paths to be cost-optimal the heuristic must be
//     admissible: heuristic(n, goal) never exceeds the true remaining
//     cost from n. The engine does not verify this; an inadmissible
//     heuristic silently degrades path quality, it does not error.
//   - The heuristic must be a pure function of its two arguments, since
//     the bidirectional engine calls it with the arguments swapped.
//
// Frontier semantics:
//
//   - The open set deduplicates by membership: a node is enqueued at
//     most once while present, and its priority is not updated if a
//     cheaper route to it is relaxed after insertion. A node already
//     expanded is never revisited. On adversarial graphs this can expand
//     a node via a costlier route than the best one known; it is a
//     deliberate, documented approximation of textbook A*.
//
// Complexity:
//
//   - Time:  O((V + E) log V) worst case, as for Dijkstra with a binary
//     heap; a good heuristic explores far less of the space.
//   - Space: O(V) for the cost table, predecessor map, and frontier.
//
// Errors (construction only):
//
//   - ErrNilNeighborFunc if no neighbor function is supplied.
//   - ErrOptionViolation if an option carries an invalid value.
//
// Example usage:
//
//	nav, err := astar.New(world.NeighborFunc(), grid.Euclidean,
//	    astar.WithMaxSteps(10_000),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	path := nav.GetPath(ctx, start, goal)
//	if !path.Complete {
//	    // best-effort path toward an unreachable or unreached goal
//	}
//
// Thread safety: an engine instance owns mutable state for the duration
// of a GetPath call and must not be shared between goroutines; separate
// instances may search in parallel.
package astar
