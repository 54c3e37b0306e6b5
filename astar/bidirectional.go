package astar

import "context"

// BidirAStar races two A* searches — forward from the start and backward
// from the goal with a mirrored heuristic — and stitches their paths at
// the node where the two frontiers meet. On worlds where straight-line
// distance dominates cost this roughly halves the search radius, at the
// price of a meeting-point detector and a cost-stitching step.
//
// The neighbor function is consulted identically from both directions,
// so the world is assumed traversable both ways at equal cost; callers
// with direction-sensitive worlds should supply a neighbor function that
// accounts for it.
type BidirAStar[N comparable] struct {
	opts  Options
	stats Stats

	goal      N
	fromStart *AStar[N]
	fromGoal  *AStar[N]

	// nodes evaluated per direction; the meeting point is the first node
	// evaluated by both. Membership checks are O(1) amortized per step.
	seenForward  map[N]struct{}
	seenBackward map[N]struct{}

	middle    N
	hasMiddle bool
}

// NewBidir constructs a bidirectional engine. It accepts the same
// options as New; MaxSteps bounds the total expansions across both
// directions, MaxCost is applied inside each direction, and
// WithStopIfNoPath controls whether exhaustion of the backward frontier
// ends the whole search or leaves the forward search running in hope of
// a closer fallback node.
func NewBidir[N comparable](neighbors NeighborFunc[N], heuristic HeuristicFunc[N], opts ...Option) (*BidirAStar[N], error) {
	if neighbors == nil {
		return nil, ErrNilNeighborFunc
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if heuristic == nil {
		heuristic = zeroHeuristic[N]
	}
	// The backward search estimates distance toward the start, so it
	// sees the heuristic with its arguments mirrored.
	reversed := func(from, to N) float64 { return heuristic(to, from) }

	// Inner engines carry only the cost cap; the step budget is enforced
	// across both directions by the orchestrator loop.
	forward, err := New(neighbors, heuristic, WithMaxCost(o.MaxCost))
	if err != nil {
		return nil, err
	}
	backward, err := New(neighbors, reversed, WithMaxCost(o.MaxCost))
	if err != nil {
		return nil, err
	}

	return &BidirAStar[N]{
		opts:         o,
		fromStart:    forward,
		fromGoal:     backward,
		seenForward:  make(map[N]struct{}),
		seenBackward: make(map[N]struct{}),
	}, nil
}

// Stats reports the combined counters of both directions for the most
// recent GetPath call.
func (b *BidirAStar[N]) Stats() Stats { return b.stats }

// GetPath searches start→goal and goal→start simultaneously, one
// expansion per direction per iteration, and returns the stitched path
// once the searches meet. When they never meet — unreachable goal,
// exhausted budgets, or cancellation — the forward search's best-effort
// partial path is returned with Complete == false.
//
// ctx is consulted once per iteration; a nil ctx never cancels. Both
// sub-searches release their state on every exit path.
func (b *BidirAStar[N]) GetPath(ctx context.Context, start, goal N) Path[N] {
	b.setup(start, goal)
	defer b.clear()

	if ctx == nil {
		ctx = context.Background()
	}

	steps := 0
	for keepRunning(ctx) && b.withinStepBudget(steps) {
		// Forward direction.
		b.fromStart.step()
		steps++
		if b.meet(b.fromStart.current, b.seenForward, b.seenBackward) {
			break
		}
		if !b.fromStart.isSearching() {
			break // forward frontier exhausted without meeting
		}

		if !b.fromGoal.isSearching() {
			if b.opts.StopIfNoPath {
				break
			}
			continue // keep refining the forward fallback alone
		}

		// Backward direction.
		b.fromGoal.step()
		steps++
		if b.meet(b.fromGoal.current, b.seenBackward, b.seenForward) {
			break
		}
	}

	b.stats = Stats{
		NodesEvaluated: b.fromStart.stats.NodesEvaluated + b.fromGoal.stats.NodesEvaluated,
	}

	return b.buildPath()
}

// withinStepBudget reports whether another iteration fits the combined
// step cap. The cap is checked once per iteration, so the final
// iteration may run both half-steps.
func (b *BidirAStar[N]) withinStepBudget(steps int) bool {
	return b.opts.MaxSteps == 0 || steps < b.opts.MaxSteps
}

// setup resets the orchestrator and both sub-searches. The backward
// search runs from the goal toward the start.
func (b *BidirAStar[N]) setup(start, goal N) {
	b.stats = Stats{}
	b.goal = goal
	b.fromStart.setup(start, goal)
	b.fromGoal.setup(goal, start)
	b.seenForward = make(map[N]struct{})
	b.seenBackward = make(map[N]struct{})

	var zero N
	b.middle = zero
	b.hasMiddle = false
}

// meet records current as evaluated by its own direction and reports
// whether the opposite direction had already evaluated it — the moment
// the two frontiers touch.
func (b *BidirAStar[N]) meet(current N, own, other map[N]struct{}) bool {
	own[current] = struct{}{}
	if _, ok := other[current]; ok {
		b.middle = current
		b.hasMiddle = true
		return true
	}

	return false
}

// buildPath stitches the two half-paths at the middle node. The
// goal-side cumulative costs are recomputed as true distance from the
// start: (cost start→middle + cost goal→middle) − cost node→middle.
// Without a middle node it falls back to the forward search's partial
// path, identical to the unidirectional fallback policy.
func (b *BidirAStar[N]) buildPath() Path[N] {
	if !b.hasMiddle {
		return b.fromStart.buildPath(b.fromStart.closest)
	}

	startToMiddle := b.fromStart.buildPath(b.middle)
	goalToMiddle := b.fromGoal.buildPath(b.middle)

	n1 := startToMiddle.Len()
	n2 := goalToMiddle.Len()

	// All of the start side except the middle itself, then the goal side
	// reversed, so the sequence runs start → middle → goal.
	nodes := make([]N, 0, n1+n2-1)
	nodes = append(nodes, startToMiddle.Nodes[:n1-1]...)
	for i := n2 - 1; i >= 0; i-- {
		nodes = append(nodes, goalToMiddle.Nodes[i])
	}

	costStartToMiddle := startToMiddle.CumCosts[n1-1]
	costGoalToMiddle := goalToMiddle.CumCosts[n2-1]

	cumCosts := make([]float64, 0, n1+n2-1)
	cumCosts = append(cumCosts, startToMiddle.CumCosts...)
	for i := n2 - 2; i >= 0; i-- {
		cumCosts = append(cumCosts, costStartToMiddle+costGoalToMiddle-goalToMiddle.CumCosts[i])
	}

	return newPath(nodes, cumCosts, b.goal)
}

// clear releases both sub-searches' per-run state.
func (b *BidirAStar[N]) clear() {
	b.fromStart.clear()
	b.fromGoal.clear()
}
