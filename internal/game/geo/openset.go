package geo

import (
	"container/heap"

	"github.com/udisondev/tilewalk/internal/model"
)

// node is a search node. parent is a non-owning back-reference; every node
// is owned by the open set or the closed set until released to the pool.
type node struct {
	x, y, z   int
	dir       model.Direction
	parent    *node
	cost      int // from start
	heuristic int // to goal
	total     int
	seq       uint64
	index     int // heap index, -1 when popped
	valid     bool
}

// nodeKey uniquely identifies a search coordinate.
type nodeKey struct {
	x, y, z int
}

func (n *node) key() nodeKey {
	return nodeKey{n.x, n.y, n.z}
}

// nodeHeap implements container/heap for the open set (min-heap by total,
// insertion order breaks ties).
type nodeHeap []*node

func (h nodeHeap) Len() int { return len(h) }
func (h nodeHeap) Less(i, j int) bool {
	if h[i].total != h[j].total {
		return h[i].total < h[j].total
	}
	return h[i].seq < h[j].seq
}
func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i]; h[i].index = i; h[j].index = j }
func (h *nodeHeap) Push(x any)   { n := x.(*node); n.index = len(*h); *h = append(*h, n) }
func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	nd := old[n-1]
	old[n-1] = nil
	nd.index = -1
	*h = old[:n-1]
	return nd
}

// openSet is a lazy-deletion priority queue: a superseded node is marked
// invalid and stays in the heap until popped. At most one valid node per key.
type openSet struct {
	heap  nodeHeap
	index map[nodeKey]*node
	seq   uint64
}

func newOpenSet() openSet {
	return openSet{
		heap:  make(nodeHeap, 0, 256),
		index: make(map[nodeKey]*node, 256),
	}
}

func (s *openSet) Len() int {
	return len(s.heap)
}

// push enqueues n as the valid node of its key.
func (s *openSet) push(n *node) {
	s.seq++
	n.seq = s.seq
	n.valid = true
	s.index[n.key()] = n
	heap.Push(&s.heap, n)
}

// lookup returns the valid node queued at k.
func (s *openSet) lookup(k nodeKey) *node {
	return s.index[k]
}

// invalidate tombstones n; it is skipped when popped.
func (s *openSet) invalidate(n *node) {
	n.valid = false
	if s.index[n.key()] == n {
		delete(s.index, n.key())
	}
}

// pop removes the lowest node, valid or not. Returns nil when empty.
func (s *openSet) pop() *node {
	if len(s.heap) == 0 {
		return nil
	}
	n := heap.Pop(&s.heap).(*node)
	if n.valid && s.index[n.key()] == n {
		delete(s.index, n.key())
	}
	return n
}

// drain empties the set, handing every node to release.
func (s *openSet) drain(release func(*node)) {
	for i, n := range s.heap {
		s.heap[i] = nil
		release(n)
	}
	s.heap = s.heap[:0]
	clear(s.index)
}
