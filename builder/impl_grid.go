// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Cell (r,c) maps to vertex r*cols + c (row-major).
//   • For each cell emit Right (r,c+1) then Bottom (r+1,c) where they exist.
//   • Weight policy: one cfg.weightFn(cfg.rng) draw per emitted edge.
//
// Complexity:
//   • Time: O(rows*cols) edges.
//   • Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/wgraph/matrix"
)

const minGridDim = 1

// GridVertex maps grid coordinates to the vertex index used by Grid.
func GridVertex(r, c, cols int) int {
	return r*cols + c
}

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *matrix.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		if err := validateFits(methodGrid, g, rows*cols); err != nil {
			return err
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridVertex(r, c, cols)
				if c+1 < cols {
					if err := addEdge(methodGrid, g, cfg, u, GridVertex(r, c+1, cols)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(methodGrid, g, cfg, u, GridVertex(r+1, c, cols)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
