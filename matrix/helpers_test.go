package matrix_test

import (
	"errors"

	"github.com/katalvlaran/wgraph/matrix"
)

// isInvalidVertex reports whether err carries ErrInvalidVertex.
func isInvalidVertex(err error) bool {
	return errors.Is(err, matrix.ErrInvalidVertex)
}
