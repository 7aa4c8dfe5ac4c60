package prim_kruskal_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/wgraph/builder"
	"github.com/katalvlaran/wgraph/matrix"
	"github.com/katalvlaran/wgraph/prim_kruskal"
)

// buildBenchGraph returns a connected n-vertex graph: a path backbone plus
// random edges with density p and weights in [1,1000].
func buildBenchGraph(b *testing.B, n int, p float64) *matrix.Graph {
	b.Helper()
	g, err := builder.BuildGraph(n, []builder.BuilderOption{
		builder.WithSeed(int64(n)),
		builder.WithWeightFn(builder.UniformWeightFn(1, 1000)),
	}, builder.Path(n), builder.RandomSparse(n, p))
	if err != nil {
		b.Fatal(err)
	}

	return g
}

// BenchmarkPrim measures Prim on sparse and dense graphs of growing size.
func BenchmarkPrim(b *testing.B) {
	for _, n := range []int{100, 500} {
		for _, p := range []float64{0.05, 1} {
			g := buildBenchGraph(b, n, p)
			b.Run(fmt.Sprintf("n=%d/p=%.2f", n, p), func(b *testing.B) {
				b.ReportAllocs()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					_, _, _ = prim_kruskal.Prim(g)
				}
			})
		}
	}
}

// BenchmarkKruskal measures Kruskal on the same inputs as BenchmarkPrim.
func BenchmarkKruskal(b *testing.B) {
	for _, n := range []int{100, 500} {
		for _, p := range []float64{0.05, 1} {
			g := buildBenchGraph(b, n, p)
			b.Run(fmt.Sprintf("n=%d/p=%.2f", n, p), func(b *testing.B) {
				b.ReportAllocs()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					_, _, _ = prim_kruskal.Kruskal(g)
				}
			})
		}
	}
}
