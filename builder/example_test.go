package builder_test

import (
	"fmt"

	"github.com/katalvlaran/wgraph/builder"
	"github.com/katalvlaran/wgraph/matrix"
)

// ExampleBuildGraph builds a weighted 4-cycle with a constant weight.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(4,
		[]builder.BuilderOption{builder.WithWeightFn(builder.ConstantWeightFn(3))},
		builder.Cycle(4),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(g.EdgeCount(), g.TotalWeight())
	fmt.Print(g)
	// Output:
	// 4 12
	// [0, 3, 0, 3]
	// [3, 0, 3, 0]
	// [0, 3, 0, 3]
	// [3, 0, 3, 0]
}

// ExampleFromEdges shows that construction stops at the first invalid edge.
func ExampleFromEdges() {
	_, err := builder.BuildGraph(3, nil, builder.FromEdges([]matrix.Edge{
		{From: 0, To: 1, Weight: 2},
		{From: 1, To: 3, Weight: 4},
	}))
	fmt.Println(err)
	// Output:
	// BuildGraph: FromEdges: edge #1 1-3(w=4): Graph.Insert(1,3): matrix: invalid vertex
}
