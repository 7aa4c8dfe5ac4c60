// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// impl_path.go - Path(n) and Cycle(n) constructors.
//
// Contract:
//   • Path: n ≥ 2; edges i-(i+1) for i = 0..n-2, ascending.
//   • Cycle: n ≥ 3; Path edges plus the closing edge (n-1)-0.
//   • Weight policy: cfg.weightFn(cfg.rng), one draw per edge in emission order.
//
// Complexity: O(n) edges, O(1) extra space.

package builder

import "github.com/katalvlaran/wgraph/matrix"

const (
	minPathNodes  = 2
	minCycleNodes = 3
)

// Path returns a Constructor that builds the simple path P_n on vertices 0..n-1.
func Path(n int) Constructor {
	return func(g *matrix.Graph, cfg builderConfig) error {
		if err := validateMin(methodPath, n, minPathNodes); err != nil {
			return err
		}
		if err := validateFits(methodPath, g, n); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := addEdge(methodPath, g, cfg, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle returns a Constructor that builds the simple cycle C_n on vertices 0..n-1.
func Cycle(n int) Constructor {
	return func(g *matrix.Graph, cfg builderConfig) error {
		if err := validateMin(methodCycle, n, minCycleNodes); err != nil {
			return err
		}
		if err := validateFits(methodCycle, g, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addEdge(methodCycle, g, cfg, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
