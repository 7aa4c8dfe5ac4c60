// Package wgraph is a small toolkit for dense, undirected, weighted graphs and
// their minimum spanning trees.
//
// What is wgraph?
//
//	A pure-Go library built from three subpackages:
//		• matrix       - the Graph store: a fixed vertex set [0, n) over a
//		                 symmetric row-major int64 matrix (0 = no edge)
//		• prim_kruskal - Prim's MST with an indexed decrease-key frontier,
//		                 Kruskal as a cross-check, and a Compute dispatcher
//		• builder      - deterministic fixtures: Path, Cycle, Star, Complete,
//		                 Grid, RandomSparse and FromEdges
//
// Quick start
//
//	g, _ := matrix.NewGraph(4)
//	_ = g.Insert(0, 1, 10)
//	_ = g.Insert(0, 2, 6)
//	_ = g.Insert(0, 3, 5)
//	_ = g.Insert(1, 3, 15)
//	_ = g.Insert(2, 3, 4)
//
//	tree, total, err := prim_kruskal.Prim(g)
//	// total == 19; tree holds 0-1(10), 0-3(5), 2-3(4)
//
// Conventions
//
//   - Vertices are ints in [0, n); every index outside that range is rejected
//     with matrix.ErrInvalidVertex (the upper bound is strict).
//   - Weights are non-negative int64; inserting weight 0 removes the edge.
//   - Algorithms never mutate their input and return a NEW graph.
//   - Errors are sentinel values wrapped with method context; branch with errors.Is.
//   - No logging: algorithms expose hooks (prim_kruskal.WithOnSettle,
//     prim_kruskal.WithOnDecreaseKey) for tracing.
package wgraph
