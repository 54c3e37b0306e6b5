package astar

import "container/heap"

// openSet is the search frontier: a min-heap keyed by f-score plus a
// membership set. A node is inserted at most once while it is a member;
// relaxing a cheaper route to an already-enqueued node does not update
// its priority (membership dedup, not decrease-key).
type openSet[N comparable] struct {
	items   frontierHeap[N]
	members map[N]struct{}
}

func newOpenSet[N comparable]() openSet[N] {
	return openSet[N]{members: make(map[N]struct{})}
}

// addIfAbsent inserts node with the given f-score priority unless an
// equal node is already a member; otherwise it is a no-op.
func (s *openSet[N]) addIfAbsent(node N, fScore float64) {
	if _, ok := s.members[node]; ok {
		return
	}
	heap.Push(&s.items, frontierItem[N]{node: node, fScore: fScore})
	s.members[node] = struct{}{}
}

// popMin removes and returns the member with the smallest f-score.
// Ties are broken arbitrarily; callers must not rely on tie order.
// Popping an empty set is a caller bug and panics.
func (s *openSet[N]) popMin() N {
	if len(s.items) == 0 {
		panic("astar: popMin called on an empty open set")
	}
	item := heap.Pop(&s.items).(frontierItem[N])
	delete(s.members, item.node)

	return item.node
}

// isEmpty reports whether the frontier has no members.
func (s *openSet[N]) isEmpty() bool { return len(s.members) == 0 }

// clear drops all members so the owning engine can be reused.
func (s *openSet[N]) clear() {
	s.items = s.items[:0]
	s.members = make(map[N]struct{})
}

// frontierItem pairs a node with its estimated total cost (f = g + h).
type frontierItem[N comparable] struct {
	node   N
	fScore float64
}

// frontierHeap is a min-heap of frontierItem ordered by fScore ascending.
type frontierHeap[N comparable] []frontierItem[N]

// Len returns the number of items in the heap.
func (h frontierHeap[N]) Len() int { return len(h) }

// Less defines the comparison: smaller fScore → higher priority.
func (h frontierHeap[N]) Less(i, j int) bool { return h[i].fScore < h[j].fScore }

// Swap swaps two elements in the heap.
func (h frontierHeap[N]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type frontierItem[N].
func (h *frontierHeap[N]) Push(x interface{}) { *h = append(*h, x.(frontierItem[N])) }

// Pop removes and returns the smallest element from the heap.
// Called by heap.Pop.
func (h *frontierHeap[N]) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
