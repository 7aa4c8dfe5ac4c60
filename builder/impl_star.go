// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// impl_star.go - Star(n) and Complete(n) constructors.
//
// Contract:
//   • Star: n ≥ 2; center is vertex 0, leaves 1..n-1, edges 0-i ascending.
//   • Complete: n ≥ 1; every pair i<j in row-major order.
//
// Complexity: Star O(n); Complete O(n²).

package builder

import "github.com/katalvlaran/wgraph/matrix"

const (
	minStarNodes     = 2
	minCompleteNodes = 1
)

// Star returns a Constructor for a star centered at vertex 0 with n-1 leaves.
func Star(n int) Constructor {
	return func(g *matrix.Graph, cfg builderConfig) error {
		if err := validateMin(methodStar, n, minStarNodes); err != nil {
			return err
		}
		if err := validateFits(methodStar, g, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(methodStar, g, cfg, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete returns a Constructor for the complete graph K_n on vertices 0..n-1.
func Complete(n int) Constructor {
	return func(g *matrix.Graph, cfg builderConfig) error {
		if err := validateMin(methodComplete, n, minCompleteNodes); err != nil {
			return err
		}
		if err := validateFits(methodComplete, g, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(methodComplete, g, cfg, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
