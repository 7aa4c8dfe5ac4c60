// Package prim_kruskal provides an implementation of Kruskal’s Minimum Spanning Tree algorithm.
// It reads any Source and produces a new matrix.Graph holding the MST edges.
package prim_kruskal

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/wgraph/matrix"
)

// Kruskal computes the Minimum Spanning Tree (MST) of an undirected, weighted graph.
// It uses a disjoint-set (union-find) data structure with path halving and union by rank.
//
// Error Conditions:
//   - ErrNilGraph     : if g is nil.
//   - ErrDisconnected : only with WithRequireConnected, when fewer than |V|-1 edges join.
//   - ErrWeightOverflow : if the tree weight does not fit in an int64.
//
// Steps:
//  1. Validate g.
//  2. Collect each edge once (u < v) in row-major order.
//  3. Stable-sort edges by ascending weight; ties keep row-major order.
//  4. Initialize DSU parent[] and rank[] for each vertex.
//  5. For each edge (u,v): if find(u) != find(v), union and insert into the tree.
//  6. Stop at |V|-1 edges. Fewer edges means a forest (or ErrDisconnected).
//
// Complexity: O(V² + E log E) here, because collecting edges scans the dense matrix.
// Memory: O(E + V) besides the O(V²) result.
func Kruskal(g Source, opts ...Option) (*matrix.Graph, int64, error) {
	// 1. Validate.
	cfg := resolveOptions(opts)
	if isNilSource(g) {
		return nil, 0, ErrNilGraph
	}
	n := g.VertexCount()
	if n <= 0 {
		return nil, 0, ErrDisconnected
	}

	// 2. Collect edges once each.
	edges := make([]matrix.Edge, 0, n)
	var u int
	collect := func(v int, w int64) {
		if u < v {
			edges = append(edges, matrix.Edge{From: u, To: v, Weight: w})
		}
	}
	for u = 0; u < n; u++ {
		if err := g.EachNeighbor(u, collect); err != nil {
			return nil, 0, fmt.Errorf("Kruskal: neighbors of %d: %w", u, err)
		}
	}

	// 3. Stable sort keeps tie-breaking deterministic.
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 4. Disjoint sets over vertex ids.
	parent := make([]int, n)
	rank := make([]int, n)
	for v := range parent {
		parent[v] = v
	}

	// Iterative find with path halving to avoid deep recursion.
	find := func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}

		return x
	}

	// union by rank; reports whether two sets were merged.
	union := func(a, b int) bool {
		ra, rb := find(a), find(b)
		if ra == rb {
			return false
		}
		switch {
		case rank[ra] < rank[rb]:
			parent[ra] = rb
		case rank[ra] > rank[rb]:
			parent[rb] = ra
		default:
			parent[rb] = ra
			rank[ra]++
		}

		return true
	}

	// 5. Build the tree.
	tree, err := matrix.NewGraph(n)
	if err != nil {
		return nil, 0, fmt.Errorf("Kruskal: %w", err)
	}
	var (
		total int64
		taken int
	)
	for _, e := range edges {
		if !union(e.From, e.To) {
			continue
		}
		if total > Infinity-e.Weight {
			return nil, 0, fmt.Errorf("Kruskal: insert %d-%d: %w", e.From, e.To, ErrWeightOverflow)
		}
		if err = tree.Insert(e.From, e.To, e.Weight); err != nil {
			return nil, 0, fmt.Errorf("Kruskal: insert %d-%d: %w", e.From, e.To, err)
		}
		total += e.Weight
		taken++
		if taken == n-1 {
			break
		}
	}

	// 6. A spanning tree has exactly |V|-1 edges.
	if cfg.RequireConnected && taken < n-1 {
		return nil, 0, ErrDisconnected
	}

	return tree, total, nil
}
