// Package prim_kruskal computes Minimum Spanning Trees (MST) over the dense
// matrix.Graph store: Prim’s algorithm with an indexed decrease-key frontier,
// and Kruskal’s algorithm as an independent cross-check.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E such that
//     T connects all vertices in V and the sum of weights of edges in T is minimized.
//
//   - Cut property: the minimum-weight edge crossing any cut (S, V\S) belongs to some MST.
//     Prim applies it with S = the settled set; Kruskal applies it with S = one DSU component.
//
// Algorithms Provided
//
//   - Prim(g Source, opts ...Option) (*matrix.Graph, int64, error)
//
//   - Strategy: keep a frontier entry per vertex with the cheapest known edge to the
//     settled set (key) and the settled vertex achieving it (parent). Repeatedly extract
//     the minimum-key vertex, settle it, and relax its matrix row. Keys only go down,
//     and each decrease is an O(log V) heap.Fix on a position-indexed binary heap.
//
//   - Complexity: O(V²) time (dense row scan per extraction dominates O(V log V) heap work).
//
//   - Determinism: ties break toward the lower vertex id, so repeated runs on the same
//     graph return identical trees.
//
//   - Kruskal(g Source, opts ...Option) (*matrix.Graph, int64, error)
//
//   - Strategy: stable-sort all edges by weight and merge components with a disjoint-set
//     (path halving + union by rank).
//
//   - Complexity: O(V² + E log E); the V² term is the dense edge scan.
//
// Both return a NEW matrix.Graph of the same vertex count holding only tree edges,
// plus the total weight. The input is accessed through the read-only Source interface.
//
// Disconnected Input
//
//	By default both algorithms return a minimum spanning forest: every component gets its
//	own tree and isolated vertices keep degree 0. Pass WithRequireConnected() to get
//	ErrDisconnected instead.
//
// Error Conditions
//
//   - ErrNilGraph             - graph is nil.
//   - matrix.ErrInvalidVertex - Prim root outside [0, n).
//   - ErrDisconnected         - only with WithRequireConnected.
//   - ErrUnknownMethod        - Compute with a Method other than MethodPrim/MethodKruskal.
//   - ErrWeightOverflow       - the tree weight does not fit in an int64.
//
// Observability
//
//	Prim exposes hooks instead of logging: WithOnSettle fires when a vertex leaves the
//	frontier (with its final key and parent), WithOnDecreaseKey fires on each key update.
//
// For examples of usage, see the example_test.go file in this package.
package prim_kruskal
