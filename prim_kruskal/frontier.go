package prim_kruskal

import "container/heap"

// entry is the per-vertex frontier state for one Prim run.
type entry struct {
	vertex  int   // vertex identity, 0..n-1
	key     int64 // cheapest known edge to the settled set (Infinity if none)
	parent  int   // settled vertex achieving key, or NoParent
	reached bool  // root, or touched by at least one relaxation
	settled bool  // permanently part of the tree
	index   int   // position in frontier.order, -1 once extracted
}

// frontier is an indexed binary min-heap over vertex ids. Each entry records
// its own heap position, so decreaseKey can sift the entry in O(log V) with
// heap.Fix instead of searching for it.
//
// Ordering is (key asc, reached first, vertex asc). A weight may equal
// Infinity, so reachability is tracked by a flag rather than read from the
// key: among equal keys a reached entry always leaves before an unreached one.
// Remaining ties break toward the lower vertex id, which makes extraction
// order, and therefore the resulting tree, reproducible.
type frontier struct {
	entries []entry // indexed by vertex id
	order   []int   // heap of vertex ids
}

// newFrontier seeds one entry per vertex: root at key 0, everyone else at Infinity.
// Complexity: O(n).
func newFrontier(n, root int) *frontier {
	f := &frontier{
		entries: make([]entry, n),
		order:   make([]int, n),
	}
	for v := 0; v < n; v++ {
		f.entries[v] = entry{vertex: v, key: Infinity, parent: NoParent, index: v}
		f.order[v] = v
	}
	f.entries[root].key = 0
	f.entries[root].reached = true
	heap.Init(f)

	return f
}

// Len returns the number of unsettled vertices.
func (f *frontier) Len() int { return len(f.order) }

// Less orders by key, then reached before unreached, then by vertex id.
func (f *frontier) Less(i, j int) bool {
	a, b := &f.entries[f.order[i]], &f.entries[f.order[j]]
	if a.key != b.key {
		return a.key < b.key
	}
	if a.reached != b.reached {
		return a.reached
	}

	return a.vertex < b.vertex
}

// Swap swaps two heap slots and keeps the position index in sync.
func (f *frontier) Swap(i, j int) {
	f.order[i], f.order[j] = f.order[j], f.order[i]
	f.entries[f.order[i]].index = i
	f.entries[f.order[j]].index = j
}

// Push appends vertex id x. Called by heap.Push only.
func (f *frontier) Push(x interface{}) {
	v := x.(int)
	f.entries[v].index = len(f.order)
	f.order = append(f.order, v)
}

// Pop removes the last heap slot. Called by heap.Pop only.
func (f *frontier) Pop() interface{} {
	n := len(f.order)
	v := f.order[n-1]
	f.order = f.order[:n-1]
	f.entries[v].index = -1

	return v
}

// extractMin removes the cheapest unsettled vertex and marks it settled.
// Complexity: O(log V).
func (f *frontier) extractMin() *entry {
	v := heap.Pop(f).(int)
	e := &f.entries[v]
	e.settled = true

	return e
}

// decreaseKey lowers v's key, records its new parent, marks v reached and
// restores heap order. Callers guarantee v is unsettled and either unreached
// or key < current key.
// Complexity: O(log V).
func (f *frontier) decreaseKey(v, parent int, key int64) {
	e := &f.entries[v]
	e.key = key
	e.parent = parent
	e.reached = true
	heap.Fix(f, e.index)
}
