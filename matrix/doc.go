// Package matrix provides the dense Graph Store: an undirected, weighted graph
// over a fixed vertex set [0, n), backed by a row-major n×n int64 matrix.
//
// The package provides:
//
//   - Graph with O(1) edge insert/remove/lookup and O(n) Degree.
//   - NotAdjacent, an out-of-band sentinel distinguishing "no edge" from every
//     valid (strictly positive) weight.
//   - Read-only row scans (EachNeighbor, Neighbors, Edges) consumed by the MST
//     engine in package prim_kruskal.
//   - Diagnostic dumps: String/Print render "[a, b, c]" rows, WriteTable renders
//     a bordered table with vertex headers.
//
// Storage is O(n²) regardless of edge count. That is the right trade for small
// and medium dense graphs and a hard ceiling for large sparse ones.
//
// Concurrency: Graph carries no locks. Concurrent readers are safe as long as
// nobody mutates the graph at the same time.
//
// See the examples in this package and in prim_kruskal for usage patterns.
package matrix
