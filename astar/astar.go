package astar

import (
	"context"
	"math"
)

// AStar is a reusable unidirectional A* engine over node type N.
//
// An instance owns its frontier, cost table, and predecessor map for the
// duration of a GetPath call; the state is reset on entry and released
// on every exit path, so an instance may be reused indefinitely, but it
// must not be invoked from multiple goroutines at once.
type AStar[N comparable] struct {
	neighbors NeighborFunc[N]
	heuristic HeuristicFunc[N]
	opts      Options

	stats Stats

	goal       N
	open       openSet[N]
	gScores    map[N]float64
	cameFrom   map[N]N
	closest    N
	closestKey distKey
	current    N // last node popped by step; read by BidirAStar
}

// distKey orders candidate "closest" nodes: primarily by heuristic
// distance to the goal, secondarily by cost to reach. Lower is better,
// so the node nearest the goal wins, and on equal distance the node
// that is cheapest to reach wins.
type distKey struct {
	h float64
	g float64
}

func (k distKey) less(other distKey) bool {
	if k.h != other.h {
		return k.h < other.h
	}

	return k.g < other.g
}

// New constructs an A* engine from a neighbor function, a heuristic, and
// functional options. A nil heuristic falls back to a zero estimate,
// which degrades the search to uniform-cost (Dijkstra) order.
// Returns ErrNilNeighborFunc or ErrOptionViolation for invalid input;
// configuration problems never surface mid-run.
func New[N comparable](neighbors NeighborFunc[N], heuristic HeuristicFunc[N], opts ...Option) (*AStar[N], error) {
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

	return &AStar[N]{
		neighbors: neighbors,
		heuristic: heuristic,
		opts:      o,
		open:      newOpenSet[N](),
		gScores:   make(map[N]float64),
		cameFrom:  make(map[N]N),
	}, nil
}

// zeroHeuristic estimates every remaining distance as zero. Trivially
// admissible; using it turns A* into uniform-cost search.
func zeroHeuristic[N comparable](_, _ N) float64 { return 0 }

// Stats reports counters from the most recent GetPath call.
func (a *AStar[N]) Stats() Stats { return a.stats }

// GetPath searches from start toward goal and always returns a usable
// path: complete when the goal was reached, otherwise a best-effort
// path ending at the node that came closest to the goal. An unreachable
// goal, an exhausted step or cost budget, and context cancellation are
// all normal outcomes reported via Path.Complete — never errors.
//
// ctx is consulted once per expansion, between steps; a nil ctx never
// cancels. Internal state is cleared on every exit path — including a
// panic from a caller-supplied function — so the engine stays reusable.
func (a *AStar[N]) GetPath(ctx context.Context, start, goal N) Path[N] {
	a.setup(start, goal)
	defer a.clear()

	if ctx == nil {
		ctx = context.Background()
	}

	steps := 0
	for a.isSearching() && a.withinStepBudget(steps) && keepRunning(ctx) {
		steps++
		a.step()
	}

	return a.buildPath(a.closest)
}

// withinStepBudget reports whether another expansion fits the step cap.
func (a *AStar[N]) withinStepBudget(steps int) bool {
	return a.opts.MaxSteps == 0 || steps < a.opts.MaxSteps
}

// keepRunning is the cooperative cancellation check, evaluated once per
// loop iteration; a search cannot be interrupted mid-step.
func keepRunning(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return false
	default:
		return true
	}
}

// setup resets all per-run state and seeds the frontier with start at
// priority zero. The start node is the initial closest candidate.
func (a *AStar[N]) setup(start, goal N) {
	a.clear()
	a.stats = Stats{}

	a.goal = goal
	a.open.addIfAbsent(start, 0)
	a.gScores[start] = 0
	a.closest = start
	a.closestKey = distKey{h: a.heuristic(start, goal), g: 0}
}

// isSearching reports whether the run should continue: false once the
// goal has been reached or the frontier is exhausted.
func (a *AStar[N]) isSearching() bool {
	return a.closest != a.goal && !a.open.isEmpty()
}

// step expands a single node: it pops the cheapest frontier entry,
// updates the closest-so-far tracker, and relaxes every neighbor.
// The frontier must be non-empty; GetPath guarantees that via
// isSearching, and BidirAStar checks it between its half-steps.
func (a *AStar[N]) step() {
	current := a.open.popMin()
	a.current = current
	a.stats.NodesEvaluated++

	if current == a.goal {
		a.closest = current
		return
	}

	key := distKey{h: a.heuristic(current, a.goal), g: a.gScore(current)}
	if key.less(a.closestKey) {
		a.closest = current
		a.closestKey = key
	}

	for _, nb := range a.neighbors(current) {
		g := a.gScore(current) + nb.Cost
		if g >= a.gScore(nb.Node) {
			continue // not a strict improvement
		}
		f := g + a.heuristic(nb.Node, a.goal)
		if f > a.opts.MaxCost {
			continue // pruned by the cost cap
		}
		a.cameFrom[nb.Node] = current
		a.gScores[nb.Node] = g
		a.open.addIfAbsent(nb.Node, f)
	}
}

// gScore returns the best known cost from the origin to node, or +Inf
// for nodes not yet discovered.
func (a *AStar[N]) gScore(node N) float64 {
	if g, ok := a.gScores[node]; ok {
		return g
	}

	return math.Inf(1)
}

// buildPath walks the predecessor links backward from node to the
// origin and returns the reversed node sequence with its cumulative
// costs. Predecessors are only ever set on strict cost improvement, so
// the walk terminates at the origin without cycles.
func (a *AStar[N]) buildPath(node N) Path[N] {
	current := node
	nodes := []N{current}
	cumCosts := []float64{a.gScore(current)}

	for {
		prev, ok := a.cameFrom[current]
		if !ok {
			break
		}
		current = prev
		nodes = append(nodes, current)
		cumCosts = append(cumCosts, a.gScore(current))
	}

	reverse(nodes)
	reverse(cumCosts)

	return newPath(nodes, cumCosts, a.goal)
}

// reverse flips s in place.
func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// clear releases per-run state; stats are kept for inspection.
func (a *AStar[N]) clear() {
	a.open.clear()
	a.gScores = make(map[N]float64)
	a.cameFrom = make(map[N]N)
}
