package prim_kruskal_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/wgraph/matrix"
	"github.com/katalvlaran/wgraph/prim_kruskal"
)

// printTree prints "Total: w, Edges: u-v(w) ..." in row-major edge order.
func printTree(tree *matrix.Graph, total int64) {
	fmt.Printf("Total: %d, Edges:", total)
	for _, e := range tree.Edges() {
		fmt.Printf(" %d-%d(%d)", e.From, e.To, e.Weight)
	}
	fmt.Println()
}

// ExamplePrim demonstrates Prim’s algorithm on the classic 4-vertex graph.
// Edges: 0–1 (10), 0–2 (6), 0–3 (5), 1–3 (15), 2–3 (4).
// The MST is {0–3, 3–2, 0–1} with total weight 19; 0–2 is left out.
func ExamplePrim() {
	g, _ := matrix.NewGraph(4)
	_ = g.Insert(0, 1, 10)
	_ = g.Insert(0, 2, 6)
	_ = g.Insert(0, 3, 5)
	_ = g.Insert(1, 3, 15)
	_ = g.Insert(2, 3, 4)

	tree, total, err := prim_kruskal.Prim(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	printTree(tree, total)
	// Output: Total: 19, Edges: 0-1(10) 0-3(5) 2-3(4)
}

// ExamplePrim_pentagon runs Prim on a 5-vertex ring A..E mapped to 0..4:
// 0–1 (1), 1–2 (2), 2–3 (3), 3–4 (5), 0–4 (12). The heavy closing edge is dropped.
func ExamplePrim_pentagon() {
	g, _ := matrix.NewGraph(5)
	_ = g.Insert(0, 1, 1)
	_ = g.Insert(0, 4, 12)
	_ = g.Insert(1, 2, 2)
	_ = g.Insert(2, 3, 3)
	_ = g.Insert(3, 4, 5)

	tree, total, _ := prim_kruskal.Prim(g)
	printTree(tree, total)
	// Output: Total: 11, Edges: 0-1(1) 1-2(2) 2-3(3) 3-4(5)
}

// ExamplePrim_forest shows the result on a disconnected graph: vertex 2 stays isolated.
func ExamplePrim_forest() {
	g, _ := matrix.NewGraph(3)
	_ = g.Insert(0, 1, 5)

	tree, total, _ := prim_kruskal.Prim(g)
	_ = tree.Print(os.Stdout)
	fmt.Println("total:", total)
	// Output:
	// [0, 5, 0]
	// [5, 0, 0]
	// [0, 0, 0]
	// total: 5
}

// ExamplePrim_requireConnected turns the forest fallback into an error.
func ExamplePrim_requireConnected() {
	g, _ := matrix.NewGraph(3)
	_ = g.Insert(0, 1, 5)

	_, _, err := prim_kruskal.Prim(g, prim_kruskal.WithRequireConnected())
	fmt.Println(err)
	// Output: Prim: vertex 2 unreachable from root 0: prim_kruskal: graph is disconnected
}

// ExampleKruskal_envelope runs Kruskal on the "letter envelope" graph:
// 0–1 (4), 0–2 (1), 2–1 (2), 1–3 (3), 2–3 (5), 3–0 (4).
// The MST {0–2, 2–1, 1–3} weighs 6.
func ExampleKruskal_envelope() {
	g, _ := matrix.NewGraph(4)
	_ = g.Insert(0, 1, 4)
	_ = g.Insert(0, 2, 1)
	_ = g.Insert(2, 1, 2)
	_ = g.Insert(1, 3, 3)
	_ = g.Insert(2, 3, 5)
	_ = g.Insert(3, 0, 4)

	tree, total, _ := prim_kruskal.Kruskal(g)
	printTree(tree, total)
	// Output: Total: 6, Edges: 0-2(1) 1-2(2) 1-3(3)
}

// ExampleWithOnSettle traces the order in which Prim settles vertices.
func ExampleWithOnSettle() {
	g, _ := matrix.NewGraph(4)
	_ = g.Insert(0, 1, 10)
	_ = g.Insert(0, 2, 6)
	_ = g.Insert(0, 3, 5)
	_ = g.Insert(1, 3, 15)
	_ = g.Insert(2, 3, 4)

	_, _, _ = prim_kruskal.Prim(g, prim_kruskal.WithOnSettle(func(v, parent int, key int64) {
		if parent == prim_kruskal.NoParent {
			fmt.Printf("settle %d (root)\n", v)
			return
		}
		fmt.Printf("settle %d via %d at %d\n", v, parent, key)
	}))
	// Output:
	// settle 0 (root)
	// settle 3 via 0 at 5
	// settle 2 via 3 at 4
	// settle 1 via 0 at 10
}
