package matrix_test

import (
	"testing"

	"github.com/katalvlaran/wgraph/matrix"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

const propVertices = 7

// op decodes a generated integer into an Insert(m, n, w) call over propVertices
// vertices. w cycles through 0..3, so roughly a quarter of the ops are removals.
func op(x int) (m, n int, w int64) {
	m = x % propVertices
	n = (x / propVertices) % propVertices
	w = int64((x / (propVertices * propVertices)) % 4)

	return m, n, w
}

// pairKey normalises an unordered pair.
func pairKey(m, n int) [2]int {
	if m > n {
		m, n = n, m
	}

	return [2]int{m, n}
}

// TestGraphInvariants uses property-based testing to verify Graph invariants
// against a map-based model after arbitrary Insert sequences.
func TestGraphInvariants(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping property-based test in short mode")
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	opsGen := gen.SliceOf(gen.IntRange(0, 4*propVertices*propVertices-1))

	// apply replays ops on both the graph and the model; invalid ops must fail
	// and leave both untouched.
	apply := func(xs []int) (*matrix.Graph, map[[2]int]int64, bool) {
		g, err := matrix.NewGraph(propVertices)
		if err != nil {
			return nil, nil, false
		}
		model := make(map[[2]int]int64)
		for _, x := range xs {
			m, n, w := op(x)
			err = g.Insert(m, n, w)
			if m == n {
				if err == nil {
					return nil, nil, false
				}
				continue
			}
			if err != nil {
				return nil, nil, false
			}
			if w == 0 {
				delete(model, pairKey(m, n))
			} else {
				model[pairKey(m, n)] = w
			}
		}

		return g, model, true
	}

	// Property 1: EdgeCount equals the number of live edges in the model.
	properties.Property("edge count matches live edges", prop.ForAll(
		func(xs []int) bool {
			g, model, ok := apply(xs)
			return ok && g.EdgeCount() == len(model)
		},
		opsGen,
	))

	// Property 2: AdjacentWeight is symmetric and agrees with the model.
	properties.Property("adjacency is symmetric and matches model", prop.ForAll(
		func(xs []int) bool {
			g, model, ok := apply(xs)
			if !ok {
				return false
			}
			for m := 0; m < propVertices; m++ {
				for n := 0; n < propVertices; n++ {
					a, errA := g.AdjacentWeight(m, n)
					b, errB := g.AdjacentWeight(n, m)
					if errA != nil || errB != nil || a != b {
						return false
					}
					want := matrix.NotAdjacent
					if m == n {
						want = 0
					} else if w, found := model[pairKey(m, n)]; found {
						want = w
					}
					if a != want {
						return false
					}
				}
			}
			return true
		},
		opsGen,
	))

	// Property 3: Degree(v) equals the number of live edges incident to v,
	// and degrees sum to twice the edge count.
	properties.Property("degree matches incident edges", prop.ForAll(
		func(xs []int) bool {
			g, model, ok := apply(xs)
			if !ok {
				return false
			}
			incident := make([]int, propVertices)
			for k := range model {
				incident[k[0]]++
				incident[k[1]]++
			}
			sum := 0
			for v := 0; v < propVertices; v++ {
				d, err := g.Degree(v)
				if err != nil || d != incident[v] {
					return false
				}
				sum += d
			}
			return sum == 2*g.EdgeCount()
		},
		opsGen,
	))

	// Property 4: out-of-range vertices are always rejected with ErrInvalidVertex.
	properties.Property("out-of-range insert is rejected", prop.ForAll(
		func(v int) bool {
			g, err := matrix.NewGraph(propVertices)
			if err != nil {
				return false
			}
			bad := propVertices + v
			return isInvalidVertex(g.Insert(0, bad, 1)) &&
				isInvalidVertex(g.Insert(bad, 0, 1)) &&
				isInvalidVertex(g.Insert(-1-v, 0, 1)) &&
				g.EdgeCount() == 0
		},
		gen.IntRange(0, 1000),
	))

	properties.TestingRun(t)
}
