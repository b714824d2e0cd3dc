package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/topolab/bfs"
	"github.com/katalvlaran/topolab/builder"
)

// ExampleBFS walks a four-node ring from its first node.
func ExampleBFS() {
	g := builder.NewRing([]string{"R1", "R2", "R3", "R4"})

	res, err := bfs.BFS(g, "R1")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order, res.Depth["R3"])
	// Output: [R1 R2 R4 R3] 2
}

// ExampleComponents shows the partition left by removing a star hub.
func ExampleComponents() {
	g := builder.NewStar([]string{"hub", "a", "b", "c"})
	_ = g.RemoveNode("hub")

	fmt.Println(bfs.Components(g))
	// Output: [[a] [b] [c]]
}
