// Package builder - shared validation helpers for constructors.
package builder

import (
	"fmt"

	"github.com/katalvlaran/wgraph/matrix"
)

// Method name tokens used to prefix errors with the constructor name.
const (
	methodPath         = "Path"
	methodCycle        = "Cycle"
	methodStar         = "Star"
	methodComplete     = "Complete"
	methodGrid         = "Grid"
	methodRandomSparse = "RandomSparse"
	methodFromEdges    = "FromEdges"
)

// validateMin returns ErrTooFewVertices when k < min.
func validateMin(method string, k, min int) error {
	if k < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, k, min, ErrTooFewVertices)
	}

	return nil
}

// validateFits returns ErrConstructFailed when a k-vertex topology does not
// fit into g.
func validateFits(method string, g *matrix.Graph, k int) error {
	if k > g.VertexCount() {
		return fmt.Errorf("%s: needs %d vertices, graph has %d: %w",
			method, k, g.VertexCount(), ErrConstructFailed)
	}

	return nil
}

// addEdge inserts {u,v} with the next configured weight.
func addEdge(method string, g *matrix.Graph, cfg builderConfig, u, v int) error {
	w := cfg.nextWeight()
	if err := g.Insert(u, v, w); err != nil {
		return fmt.Errorf("%s: Insert(%d,%d,w=%d): %w", method, u, v, w, err)
	}

	return nil
}
