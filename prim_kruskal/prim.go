// Package prim_kruskal provides an implementation of Prim’s Minimum Spanning Tree (MST) algorithm.
// It works on the dense matrix.Graph store and grows the MST from a root vertex using an
// indexed min-heap with a true decrease-key.
package prim_kruskal

import (
	"fmt"

	"github.com/katalvlaran/wgraph/matrix"
)

// Prim computes the Minimum Spanning Tree (MST) of an undirected, weighted graph
// and returns it as a new matrix.Graph of the same size, together with its total weight.
// The input graph is only read, never modified.
//
// Error Conditions:
//   - ErrNilGraph             : if g is nil.
//   - matrix.ErrInvalidVertex : if the root lies outside [0, n).
//   - ErrDisconnected         : only with WithRequireConnected, when some vertex is unreachable.
//   - ErrWeightOverflow       : if the tree weight does not fit in an int64.
//
// Steps:
//  1. Validate g and the root (default 0).
//  2. Seed the frontier: root key 0 and reached, every other key Infinity and
//     unreached, all parents NoParent.
//  3. While the frontier is non-empty:
//     a. Extract the entry with minimum (key, vertex) and mark it settled.
//     b. For every unsettled neighbor i that is unreached or has w(v,i) < key[i]:
//     set key[i]=w, parent[i]=v, mark i reached and decrease-key i in place.
//  4. Emit an edge {i, parent[i]} of weight key[i] for every vertex that has a parent.
//     Edges to the root are emitted like any other.
//
// Disconnected graphs: once the root's component is drained, only unreached
// vertices remain. The lowest one is settled without a parent and acts as the
// root of its own component, so the result is a minimum spanning forest.
// Reachability never depends on the key, so an edge of weight math.MaxInt64
// is handled like any other.
//
// Complexity: O(V²) time from the dense row scan per extraction, plus O(V log V)
// for heap work; O(V) extra memory besides the O(V²) result.
func Prim(g Source, opts ...Option) (*matrix.Graph, int64, error) {
	// 1. Resolve options and validate inputs.
	cfg := resolveOptions(opts)
	if isNilSource(g) {
		return nil, 0, ErrNilGraph
	}
	n := g.VertexCount()
	if n <= 0 {
		return nil, 0, ErrDisconnected
	}
	if cfg.Root < 0 || cfg.Root >= n {
		return nil, 0, fmt.Errorf("Prim: root %d not in [0,%d): %w", cfg.Root, n, matrix.ErrInvalidVertex)
	}

	// 2. Initialize runner with a fresh frontier (no state shared across calls).
	r := &primRunner{
		g:       g,
		options: cfg,
		f:       newFrontier(n, cfg.Root),
	}

	// 3. Main loop.
	if err := r.process(); err != nil {
		return nil, 0, err
	}

	// 4. Build the tree graph.
	return r.emit()
}

// primRunner holds the mutable state for a single Prim execution.
type primRunner struct {
	g       Source     // the input graph; read-only
	options MSTOptions // resolved configuration
	f       *frontier  // per-vertex keys/parents + indexed heap
}

// process drains the frontier, settling one vertex per iteration and relaxing
// its row of the matrix.
func (r *primRunner) process() error {
	var e *entry
	for r.f.Len() > 0 {
		// a) Pop the cheapest frontier vertex; its key is now final.
		e = r.f.extractMin()

		// An unreached entry means nothing settled so far touches e.
		if !e.reached && r.options.RequireConnected {
			return fmt.Errorf("Prim: vertex %d unreachable from root %d: %w",
				e.vertex, r.options.Root, ErrDisconnected)
		}
		if r.options.OnSettle != nil {
			r.options.OnSettle(e.vertex, e.parent, e.key)
		}

		// b) Relax every edge from e to an unsettled vertex.
		if err := r.relax(e.vertex); err != nil {
			return err
		}
	}

	return nil
}

// relax lowers the key of every unsettled neighbor u of v that is still
// unreached, or for which the edge {v,u} is strictly cheaper than u's key.
func (r *primRunner) relax(v int) error {
	err := r.g.EachNeighbor(v, func(u int, w int64) {
		eu := &r.f.entries[u]
		// Settled vertices are final; ties keep the earlier parent.
		// The first edge to an unreached vertex always counts, even at w == Infinity.
		if eu.settled || (eu.reached && w >= eu.key) {
			return
		}
		r.f.decreaseKey(u, v, w)
		if r.options.OnDecreaseKey != nil {
			r.options.OnDecreaseKey(u, v, w)
		}
	})
	if err != nil {
		return fmt.Errorf("Prim: neighbors of %d: %w", v, err)
	}

	return nil
}

// emit materializes the parent links into a new matrix.Graph.
// The weight of {i, parent[i]} is key[i], which is exactly the source
// weight of that edge at the moment i was settled.
func (r *primRunner) emit() (*matrix.Graph, int64, error) {
	n := len(r.f.entries)
	tree, err := matrix.NewGraph(n)
	if err != nil {
		return nil, 0, fmt.Errorf("Prim: %w", err)
	}

	var total int64
	for i := range r.f.entries {
		e := &r.f.entries[i]
		if e.parent == NoParent {
			continue // root of a component
		}
		if total > Infinity-e.key {
			return nil, 0, fmt.Errorf("Prim: emit %d-%d: %w", e.vertex, e.parent, ErrWeightOverflow)
		}
		if err = tree.Insert(e.vertex, e.parent, e.key); err != nil {
			return nil, 0, fmt.Errorf("Prim: emit %d-%d: %w", e.vertex, e.parent, err)
		}
		total += e.key
	}

	return tree, total, nil
}
