// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// impl_from_edges.go - FromEdges(edges) constructor.
//
// Contract:
//   • Inserts each edge verbatim (its own Weight; cfg.weightFn is not consulted).
//   • Matrix validation applies: out-of-range endpoints or negative weights fail
//     with the matrix sentinel wrapped in context.
//   • A zero weight removes the edge, matching matrix.Graph.Insert.

package builder

import (
	"fmt"

	"github.com/katalvlaran/wgraph/matrix"
)

// FromEdges returns a Constructor that inserts a fixed edge list in order.
func FromEdges(edges []matrix.Edge) Constructor {
	return func(g *matrix.Graph, _ builderConfig) error {
		for i, e := range edges {
			if err := g.Insert(e.From, e.To, e.Weight); err != nil {
				return fmt.Errorf("%s: edge #%d %d-%d(w=%d): %w",
					methodFromEdges, i, e.From, e.To, e.Weight, err)
			}
		}

		return nil
	}
}
