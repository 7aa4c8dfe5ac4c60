// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// impl_random_sparse.go - Erdős–Rényi G(n,p) constructor.
//
// Contract:
//   • n ≥ 1; p ∈ [0,1] (else ErrInvalidProbability).
//   • 0 < p < 1 requires cfg.rng (else ErrNeedRandSource); p=0 and p=1 are deterministic.
//   • Pairs i<j are scanned in row-major order; one rng.Float64() draw per pair.
//   • Already present edges are overwritten, so RandomSparse composes with Path
//     to guarantee connectivity.
//
// Complexity: O(n²) trials.

package builder

import (
	"fmt"

	"github.com/katalvlaran/wgraph/matrix"
)

const minRandomSparseNodes = 1

// RandomSparse returns a Constructor that adds each pair {i,j} on vertices
// 0..n-1 independently with probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *matrix.Graph, cfg builderConfig) error {
		if err := validateMin(methodRandomSparse, n, minRandomSparseNodes); err != nil {
			return err
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.4f: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if p > 0 && p < 1 && cfg.rng == nil {
			return fmt.Errorf("%s: p=%.4f: %w", methodRandomSparse, p, ErrNeedRandSource)
		}
		if err := validateFits(methodRandomSparse, g, n); err != nil {
			return err
		}
		if p == 0 {
			return nil
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if p < 1 && cfg.rng.Float64() >= p {
					continue
				}
				if err := addEdge(methodRandomSparse, g, cfg, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
