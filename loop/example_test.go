package loop_test

import (
	"fmt"

	"github.com/katalvlaran/pipemaze/gridgraph"
	"github.com/katalvlaran/pipemaze/loop"
)

// ExampleFind resolves the start of a small maze and reports how far the
// farthest loop cell is from it.
//
//	..F7.
//	.FJ|.
//	SJ.L7
//	|F--J
//	LJ...
func ExampleFind() {
	g, err := gridgraph.ParseString("..F7.\n.FJ|.\nSJ.L7\n|F--J\nLJ...\n")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	l, err := loop.Find(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.At(l.Start), l.Len(), l.Farthest())

	// Output:
	// F 16 8
}
