// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every public entry point returns one of these sentinels, usually wrapped
// with method context via fmt.Errorf("...: %w", ErrX). Tests MUST match them
// with errors.Is, never by string.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates that the requested vertex count is not positive.
	ErrInvalidDimensions = errors.New("matrix: vertex count must be > 0")

	// ErrInvalidVertex indicates a vertex index outside [0, n), or an edge whose
	// two endpoints are the same vertex (self-loops are not representable).
	ErrInvalidVertex = errors.New("matrix: invalid vertex")

	// ErrNegativeWeight indicates an attempt to store a negative edge weight.
	// Negative weights would collide with the NotAdjacent sentinel.
	ErrNegativeWeight = errors.New("matrix: negative edge weight")

	// ErrNilGraph indicates that a nil *Graph was used as receiver or argument.
	ErrNilGraph = errors.New("matrix: graph is nil")
)

// method tags used in error wrappers; kept as constants for grep-ability.
const (
	ctxInsert         = "Insert"
	ctxDegree         = "Degree"
	ctxAdjacentWeight = "AdjacentWeight"
	ctxNeighbors      = "Neighbors"
	ctxEachNeighbor   = "EachNeighbor"
)

// graphErrorf wraps err with a uniform "Graph.<method>(args): " prefix.
func graphErrorf(method string, err error, args ...int) error {
	switch len(args) {
	case 1:
		return fmt.Errorf("Graph.%s(%d): %w", method, args[0], err)
	case 2:
		return fmt.Errorf("Graph.%s(%d,%d): %w", method, args[0], args[1], err)
	default:
		return fmt.Errorf("Graph.%s: %w", method, err)
	}
}
