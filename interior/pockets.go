package interior

import (
	"github.com/katalvlaran/pipemaze/gridgraph"
	"github.com/katalvlaran/pipemaze/loop"
)

// Pockets groups the cells enclosed by l into 4-connected regions, ordered
// by the row scan position of their first cell. Pipes that are not part of
// the loop belong to pockets like ground does.
func Pockets(g *gridgraph.Grid, l *loop.Loop) [][]gridgraph.Point {
	enclosed := make([]bool, g.Cells())
	for _, p := range Cells(g, l) {
		enclosed[g.Index(p)] = true
	}

	regions := g.Regions(func(p gridgraph.Point) bool {
		return enclosed[g.Index(p)]
	})
	pockets := make([][]gridgraph.Point, len(regions))
	for i, region := range regions {
		pockets[i] = make([]gridgraph.Point, len(region))
		for j, idx := range region {
			pockets[i][j] = g.Coordinate(idx)
		}
	}
	return pockets
}
