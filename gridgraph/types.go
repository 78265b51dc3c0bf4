package gridgraph

import "github.com/katalvlaran/pipemaze/tile"

// Point is a cell position in padded grid coordinates.
type Point struct {
	X, Y int
}

// Step returns the neighbour of p one cell towards d.
func (p Point) Step(d tile.Direction) Point {
	dx, dy := d.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Grid is a rectangular maze padded with one ring of tile.Empty.
// Tiles[y][x] holds the cell at (x, y). Width and Height include the padding.
// The only mutation after construction is resolving the start tile via Set.
type Grid struct {
	Width, Height int
	Tiles         [][]tile.Kind
}
