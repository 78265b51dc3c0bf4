package tile_test

import (
	"fmt"

	"github.com/katalvlaran/pipemaze/tile"
)

// ExampleKind_Exit follows a walker entering an 'F' pipe from below:
// it leaves to the right.
func ExampleKind_Exit() {
	k, _ := tile.Parse('F')
	out, ok := k.Exit(tile.Down)
	fmt.Println(k.Connections(), out, ok)

	// Output:
	// 0101 right true
}
