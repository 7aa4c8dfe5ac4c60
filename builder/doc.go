// Package builder provides deterministic, functional-options style constructors
// for matrix.Graph fixtures: paths, cycles, stars, complete graphs, grids and
// seeded random graphs. Tests, benchmarks and examples across the module use it
// to produce reproducible inputs for the MST algorithms.
//
// The package offers the following key components:
//
//   - BuildGraph(n, bopts, cons...): the single orchestrator. Allocates an
//     n-vertex matrix.Graph and applies constructors in order.
//   - Constructors (Constructor): Path, Cycle, Star, Complete, Grid,
//     RandomSparse and FromEdges. Each works on vertices 0..k-1 of the target
//     graph and emits edges in a documented, stable order.
//   - Options (BuilderOption): WithSeed, WithRand, WithWeightFn.
//   - Weight distributions (WeightFn): DefaultWeightFn, ConstantWeightFn,
//     UniformWeightFn. All produce strictly positive weights, because a zero
//     weight would delete the edge in matrix.Graph.
//
// Guarantees:
//
//   - Determinism: same n, options, seed and constructor order ⇒ identical graph.
//   - Constructors never panic; they return sentinel errors wrapped with the
//     constructor name. Option constructors panic on meaningless input.
//   - Composition overwrites: a later constructor touching the same pair
//     replaces its weight (matrix.Graph.Insert semantics).
package builder
