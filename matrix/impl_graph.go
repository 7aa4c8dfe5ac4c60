// SPDX-License-Identifier: MIT

// Package matrix - Graph: dense symmetric weight storage (row-major) & safe accessors.
//
// Purpose:
//   - Keep an n×n int64 buffer with the explicit index formula i*n + j.
//   - Guarantee safety at the public surface: every vertex-taking method
//     bounds-checks with a strict `< n` and returns ErrInvalidVertex.
//   - Maintain symmetry (w[i][j] == w[j][i]) and a zero diagonal on every write,
//     so EdgeCount can halve the non-zero count exactly.
//
// Complexity quicksheet:
//   - NewGraph: O(n²) zero-init; Insert/Remove/AdjacentWeight/HasEdge: O(1);
//     Degree/Neighbors/EachNeighbor: O(n); EdgeCount/Edges/TotalWeight/Clone: O(n²).

package matrix

// NotAdjacent is returned by AdjacentWeight for two distinct vertices that are
// not joined by an edge. Valid weights are strictly positive, so -1 never
// collides with a stored weight.
const NotAdjacent int64 = -1

// noEdge is the in-matrix marker for "no edge".
const noEdge int64 = 0

// defaultReserve is the initial capacity for neighbor slices.
const defaultReserve = 8

// Graph is an undirected weighted graph over vertices 0..n-1.
//   - n is fixed at construction.
//   - data is a flat buffer of length n*n in row-major order (offset = i*n + j).
type Graph struct {
	n    int     // vertex count (>0)
	data []int64 // row-major weights; 0 = no edge
}

// Edge is an undirected edge reported with From < To.
type Edge struct {
	From   int
	To     int
	Weight int64
}

// NewGraph creates an empty graph with n vertices and no edges.
// MAIN DESCRIPTION:
//   - Public constructor with strict size validation.
//
// Implementation:
//   - Stage 1: validate n > 0; else ErrInvalidDimensions.
//   - Stage 2: allocate a zero-filled n*n buffer.
//
// Errors:
//   - ErrInvalidDimensions.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func NewGraph(n int) (*Graph, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Graph{
		n:    n,
		data: make([]int64, n*n), // make() zero-fills: empty graph
	}, nil
}

// VertexCount returns the fixed number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int { return g.n }

// validVertex reports whether 0 ≤ v < n. The upper bound is strict:
// v == n is out of range.
func (g *Graph) validVertex(v int) bool {
	return v >= 0 && v < g.n
}

// at loads w[i][j] without bounds checks; callers validate first.
func (g *Graph) at(i, j int) int64 {
	return g.data[i*g.n+j]
}

// setSym writes w into both (i,j) and (j,i) to keep the matrix symmetric.
func (g *Graph) setSym(i, j int, w int64) {
	g.data[i*g.n+j] = w
	g.data[j*g.n+i] = w
}

// Insert adds an edge {m, n} with weight w, replacing any previous weight.
// A zero weight removes the edge instead. Every w in [1, math.MaxInt64] is a
// valid weight.
//
// Errors:
//   - ErrInvalidVertex if m == n, or m or n lies outside [0, VertexCount()).
//   - ErrNegativeWeight if w < 0.
//
// Complexity: O(1).
func (g *Graph) Insert(m, n int, w int64) error {
	if m == n || !g.validVertex(m) || !g.validVertex(n) {
		return graphErrorf(ctxInsert, ErrInvalidVertex, m, n)
	}
	if w < 0 {
		return graphErrorf(ctxInsert, ErrNegativeWeight, m, n)
	}
	g.setSym(m, n, w)

	return nil
}

// Remove deletes the edge {m, n} if present. It is Insert(m, n, 0).
func (g *Graph) Remove(m, n int) error {
	return g.Insert(m, n, noEdge)
}

// AdjacentWeight returns the weight of edge {m, n}.
//   - 0 when m == n (no self-loop weight);
//   - NotAdjacent when m != n and no edge exists;
//   - the stored weight otherwise.
//
// Errors:
//   - ErrInvalidVertex if m or n lies outside [0, VertexCount()).
//
// Complexity: O(1).
func (g *Graph) AdjacentWeight(m, n int) (int64, error) {
	if !g.validVertex(m) || !g.validVertex(n) {
		return 0, graphErrorf(ctxAdjacentWeight, ErrInvalidVertex, m, n)
	}
	if m == n {
		return 0, nil
	}
	w := g.at(m, n)
	if w == noEdge {
		return NotAdjacent, nil
	}

	return w, nil
}

// HasEdge reports whether {m, n} is an edge. Out-of-range or equal
// endpoints simply report false.
func (g *Graph) HasEdge(m, n int) bool {
	if m == n || !g.validVertex(m) || !g.validVertex(n) {
		return false
	}

	return g.at(m, n) != noEdge
}

// Degree returns the number of edges incident to v.
//
// Errors:
//   - ErrInvalidVertex if v lies outside [0, VertexCount()).
//
// Complexity: O(n).
func (g *Graph) Degree(v int) (int, error) {
	if !g.validVertex(v) {
		return 0, graphErrorf(ctxDegree, ErrInvalidVertex, v)
	}
	deg := 0
	row := g.data[v*g.n : (v+1)*g.n]
	for _, w := range row {
		if w != noEdge {
			deg++
		}
	}

	return deg, nil
}

// EdgeCount returns the number of edges. Every edge occupies two cells of the
// symmetric matrix, so the non-zero count is always even.
// Complexity: O(n²).
func (g *Graph) EdgeCount() int {
	nonZero := 0
	for _, w := range g.data {
		if w != noEdge {
			nonZero++
		}
	}

	return nonZero / 2
}

// EachNeighbor calls fn(u, w) for every neighbor u of v in ascending order of u.
// It never mutates the graph and is the access path used by MST algorithms.
//
// Errors:
//   - ErrInvalidVertex if v lies outside [0, VertexCount()).
//
// Complexity: O(n) per call.
func (g *Graph) EachNeighbor(v int, fn func(u int, w int64)) error {
	if !g.validVertex(v) {
		return graphErrorf(ctxEachNeighbor, ErrInvalidVertex, v)
	}
	base := v * g.n
	for u := 0; u < g.n; u++ {
		if w := g.data[base+u]; w != noEdge {
			fn(u, w)
		}
	}

	return nil
}

// Neighbors lists the neighbors of v in ascending order.
func (g *Graph) Neighbors(v int) ([]int, error) {
	if !g.validVertex(v) {
		return nil, graphErrorf(ctxNeighbors, ErrInvalidVertex, v)
	}
	out := make([]int, 0, defaultReserve)
	row := g.data[v*g.n : (v+1)*g.n]
	for u, w := range row {
		if w != noEdge {
			out = append(out, u)
		}
	}

	return out, nil
}

// Edges returns every edge once, with From < To, in row-major order.
// Determinism: fixed (i, j>i) loop order; no map iteration.
// Complexity: O(n²).
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, 0, defaultReserve)
	var i, j int
	for i = 0; i < g.n; i++ {
		for j = i + 1; j < g.n; j++ {
			if w := g.at(i, j); w != noEdge {
				edges = append(edges, Edge{From: i, To: j, Weight: w})
			}
		}
	}

	return edges
}

// TotalWeight returns the sum of all edge weights (each edge counted once).
func (g *Graph) TotalWeight() int64 {
	var total int64
	for _, e := range g.Edges() {
		total += e.Weight
	}

	return total
}

// Clone returns an independent deep copy.
func (g *Graph) Clone() *Graph {
	cp := make([]int64, len(g.data))
	copy(cp, g.data)

	return &Graph{n: g.n, data: cp}
}

// Equal reports whether g and other have the same vertex count and the same
// weight on every pair. Two nil graphs are equal.
func (g *Graph) Equal(other *Graph) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.n != other.n {
		return false
	}
	for i := range g.data {
		if g.data[i] != other.data[i] {
			return false
		}
	}

	return true
}
