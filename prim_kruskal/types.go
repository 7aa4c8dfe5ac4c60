// Package prim_kruskal defines configuration options and sentinel errors for MST computation.
// It supports selecting between Prim and Kruskal algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"
	"math"

	"github.com/katalvlaran/wgraph/matrix"
)

// ErrNilGraph indicates that a nil graph was passed to an MST algorithm.
var ErrNilGraph = errors.New("prim_kruskal: graph is nil")

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all vertices cannot be formed. It is returned only when
// WithRequireConnected is set; otherwise the algorithms return a spanning forest.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrWeightOverflow indicates that the total weight of the tree exceeds math.MaxInt64.
// Single edge weights up to math.MaxInt64 are valid; only their sum is bounded.
var ErrWeightOverflow = errors.New("prim_kruskal: total weight overflows int64")

// ErrUnknownMethod indicates that Compute was asked for an algorithm it does not know.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// MethodPrim selects Prim's algorithm (grow from a root using an indexed min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// NoParent marks a frontier entry that has not been reached by any settled
// vertex. It lies outside [0, n), so a genuine parent link to vertex 0 is
// never mistaken for "no parent".
const NoParent = -1

// Infinity is the key of a vertex with no known connection to the tree.
// It equals the largest valid edge weight; reachability is tracked separately.
const Infinity int64 = math.MaxInt64

// Source is the read-only view of a weighted graph consumed by the MST
// algorithms. Nothing in this package can mutate the graph through it.
//
// EachNeighbor must call fn(u, w) once per edge {v, u}, with w > 0.
type Source interface {
	VertexCount() int
	EachNeighbor(v int, fn func(u int, w int64)) error
}

// *matrix.Graph is the canonical Source.
var _ Source = (*matrix.Graph)(nil)

// MSTOptions configures which MST algorithm to run and how.
// Use DefaultOptions() to get a default setup (Prim rooted at vertex 0).
//
// Fields:
//
//	Method           string - one of MethodPrim or MethodKruskal.
//	Root             int    - start vertex for Prim; ignored by Kruskal.
//	RequireConnected bool   - fail with ErrDisconnected instead of returning a forest.
//	OnSettle         func   - called by Prim each time a vertex leaves the frontier.
//	OnDecreaseKey    func   - called by Prim each time a frontier key is lowered.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root int

	// RequireConnected makes a disconnected input an error.
	RequireConnected bool

	// OnSettle receives the settled vertex, the parent it attaches to
	// (NoParent for a root) and its final key (Infinity if never reached).
	OnSettle func(v, parent int, key int64)

	// OnDecreaseKey receives the vertex, its new parent and its new key.
	OnDecreaseKey func(v, parent int, key int64)
}

// Option configures MSTOptions. All Option functions should modify the pointed MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodPrim, MethodKruskal.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's algorithm; ignored by Kruskal.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// WithRequireConnected returns an Option that rejects disconnected graphs with ErrDisconnected.
func WithRequireConnected() Option {
	return func(opts *MSTOptions) {
		opts.RequireConnected = true
	}
}

// WithOnSettle registers a hook called when Prim settles a vertex.
func WithOnSettle(fn func(v, parent int, key int64)) Option {
	return func(opts *MSTOptions) {
		opts.OnSettle = fn
	}
}

// WithOnDecreaseKey registers a hook called when Prim lowers a frontier key.
func WithOnDecreaseKey(fn func(v, parent int, key int64)) Option {
	return func(opts *MSTOptions) {
		opts.OnDecreaseKey = fn
	}
}

// DefaultOptions returns MSTOptions initialized for Prim by default:
//
//	– Method = MethodPrim
//	– Root   = 0
//	– RequireConnected = false (spanning forest on disconnected input)
//
// Complexity: O(1) to construct.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodPrim,
		Root:   0,
	}
}

// resolveOptions applies opts over DefaultOptions in order (last wins).
func resolveOptions(opts []Option) MSTOptions {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Compute selects and runs the MST algorithm based on the resolved Method.
//
//	– MethodPrim:    calls Prim(g, opts...).
//	– MethodKruskal: calls Kruskal(g, opts...).
//	– Otherwise:     returns ErrUnknownMethod.
//
// Returns:
//
//	*matrix.Graph - new graph of the same size holding only the tree (forest) edges.
//	int64         - total weight of those edges.
//	error         - non-nil if computation cannot proceed.
func Compute(g Source, opts ...Option) (*matrix.Graph, int64, error) {
	cfg := resolveOptions(opts)
	switch cfg.Method {
	case MethodPrim:
		return Prim(g, opts...)
	case MethodKruskal:
		return Kruskal(g, opts...)
	default:
		return nil, 0, ErrUnknownMethod
	}
}

// isNilSource catches both a nil interface and a typed nil *matrix.Graph.
func isNilSource(g Source) bool {
	if g == nil {
		return true
	}
	mg, ok := g.(*matrix.Graph)

	return ok && mg == nil
}
