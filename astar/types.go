package astar

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Sentinel errors surfaced at engine construction.
var (
	// ErrNilNeighborFunc indicates that no neighbor function was supplied.
	ErrNilNeighborFunc = errors.New("astar: neighbor function is nil")

	// ErrOptionViolation indicates that an invalid Option was supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// Neighbor pairs a node reachable in one move with the non-negative cost
// of that move. Neighbors are produced on demand by a NeighborFunc;
// edges are never materialized by the engine.
type Neighbor[N comparable] struct {
	Node N
	Cost float64
}

// NeighborFunc models the world: for a given node it returns every node
// reachable in a single move together with that move's cost. It must
// return a finite slice for the search to make progress per step.
type NeighborFunc[N comparable] func(node N) []Neighbor[N]

// HeuristicFunc estimates the cost to travel from one node to another.
// See the package documentation for the admissibility and purity
// contract the engines rely on.
type HeuristicFunc[N comparable] func(from, to N) float64

// Options holds the parameters shared by AStar and BidirAStar.
type Options struct {
	// MaxSteps caps node expansions per GetPath call. Zero disables the
	// cap. For BidirAStar the cap spans both directions combined.
	MaxSteps int

	// MaxCost caps the estimated total cost (f-score) of nodes admitted
	// into the frontier; candidates above it are pruned, not explored.
	// +Inf (the default) disables the cap.
	MaxCost float64

	// StopIfNoPath ends a bidirectional search as soon as the backward
	// search exhausts its frontier, proving the goal is unreachable.
	// When false the forward search keeps running within its budgets,
	// possibly reaching an even closer fallback node. Ignored by AStar.
	StopIfNoPath bool

	// internal error recorded during option parsing
	err error
}

// Option configures an engine via functional arguments. An invalid value
// is recorded and surfaced as ErrOptionViolation at construction.
type Option func(*Options)

// DefaultOptions returns Options with no step cap, no cost cap, and
// StopIfNoPath disabled.
func DefaultOptions() Options {
	return Options{
		MaxSteps: 0,
		MaxCost:  math.Inf(1),
	}
}

// WithMaxSteps caps the number of node expansions per search.
//
//	n > 0:  expand at most n nodes
//	n == 0: explicit no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// WithMaxCost prunes frontier candidates whose f-score exceeds max.
// Must be non-negative and not NaN; +Inf means no cap.
func WithMaxCost(max float64) Option {
	return func(o *Options) {
		if math.IsNaN(max) || max < 0 {
			o.err = fmt.Errorf("%w: MaxCost must be non-negative (%v)", ErrOptionViolation, max)
			return
		}
		o.MaxCost = max
	}
}

// WithStopIfNoPath makes a bidirectional search stop as soon as the
// backward search proves the goal side is exhausted.
func WithStopIfNoPath() Option {
	return func(o *Options) {
		o.StopIfNoPath = true
	}
}

// Stats counts the work performed by the most recent GetPath call.
// It is reset at the start of each call and survives the engine's
// internal cleanup, so it can be read after the search returns.
type Stats struct {
	// NodesEvaluated is the number of nodes popped from the frontier.
	NodesEvaluated int
}

// Path is the immutable result of a search: the node sequence from the
// start to the goal — or, for incomplete searches, to the closest node
// reached — with the cumulative cost of reaching each position.
type Path[N comparable] struct {
	// Nodes runs from the start node to the final node reached.
	Nodes []N

	// CumCosts holds the cost from the start to Nodes[i]; CumCosts[0]
	// is zero by convention. Same length as Nodes.
	CumCosts []float64

	// Goal is the node the search was asked to reach.
	Goal N

	// Complete reports whether the path actually ends at Goal.
	Complete bool
}

// newPath derives the completeness flag; nodes must be non-empty.
func newPath[N comparable](nodes []N, cumCosts []float64, goal N) Path[N] {
	return Path[N]{
		Nodes:    nodes,
		CumCosts: cumCosts,
		Goal:     goal,
		Complete: nodes[len(nodes)-1] == goal,
	}
}

// Start returns the first node of the path.
func (p Path[N]) Start() N { return p.Nodes[0] }

// End returns the last node of the path: the goal when Complete is true,
// the closest node found otherwise.
func (p Path[N]) End() N { return p.Nodes[len(p.Nodes)-1] }

// Len returns the number of nodes in the path.
func (p Path[N]) Len() int { return len(p.Nodes) }

// TotalCost returns the cost of traversing the whole path.
func (p Path[N]) TotalCost() float64 { return p.CumCosts[len(p.CumCosts)-1] }

// IncCosts returns the cost of the move arriving at each position;
// position 0 is zero by convention.
func (p Path[N]) IncCosts() []float64 {
	inc := make([]float64, len(p.CumCosts))
	for i := 1; i < len(p.CumCosts); i++ {
		inc[i] = p.CumCosts[i] - p.CumCosts[i-1]
	}
	return inc
}

// String renders the path one node per line with cumulative and
// incremental costs, followed by the total cost and completeness flag.
func (p Path[N]) String() string {
	var b strings.Builder
	inc := p.IncCosts()
	last := len(p.Nodes) - 1
	for i, node := range p.Nodes {
		prefix := "       "
		switch i {
		case 0:
			prefix = "[Start]"
		case last:
			prefix = "[End]  "
		}
		fmt.Fprintf(&b, "%s %2d: %v; cum_cost=%.3f; inc_cost=%.3f\n", prefix, i, node, p.CumCosts[i], inc[i])
	}
	fmt.Fprintf(&b, "total_cost=%v\n", p.TotalCost())
	fmt.Fprintf(&b, "is_complete=%v", p.Complete)

	return b.String()
}
