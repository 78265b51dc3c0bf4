package interior

import (
	"github.com/katalvlaran/pipemaze/gridgraph"
	"github.com/katalvlaran/pipemaze/loop"
	"github.com/katalvlaran/pipemaze/tile"
)

// Count returns the number of cells enclosed by l, scanning rows.
func Count(g *gridgraph.Grid, l *loop.Loop) int {
	return scan(g, l, tile.Right, nil)
}

// CountColumns returns the number of cells enclosed by l, scanning columns.
func CountColumns(g *gridgraph.Grid, l *loop.Loop) int {
	return scan(g, l, tile.Down, nil)
}

// Cells returns the enclosed cells in row scan order.
func Cells(g *gridgraph.Grid, l *loop.Loop) []gridgraph.Point {
	var out []gridgraph.Point
	scan(g, l, tile.Right, func(p gridgraph.Point) {
		out = append(out, p)
	})
	return out
}

// scan walks every inner line of g in direction forward, calling visit (if
// non-nil) for each enclosed cell, and returns how many it found.
func scan(g *gridgraph.Grid, l *loop.Loop, forward tile.Direction, visit func(gridgraph.Point)) int {
	back := forward.Opposite()
	total := 0

	for _, origin := range lineOrigins(g, forward) {
		inside := false
		for p := origin; g.Inner(p); p = p.Step(forward) {
			if !l.Contains(p) {
				if inside {
					total++
					if visit != nil {
						visit(p)
					}
				}
				continue
			}

			k := g.At(p)
			switch {
			case !k.Connects(forward) && !k.Connects(back):
				// straight pipe across the scan line
				inside = !inside

			case k.Connects(forward):
				side, _ := k.Exit(forward)
				p = p.Step(forward)
				for g.At(p).Connects(forward) && g.At(p).Connects(back) {
					p = p.Step(forward)
				}
				if closing, ok := g.At(p).Exit(back); ok && closing != side {
					inside = !inside
				}
			}
		}
	}
	return total
}

// lineOrigins returns the first inner cell of every scan line running in
// direction forward (Right for rows, Down for columns).
func lineOrigins(g *gridgraph.Grid, forward tile.Direction) []gridgraph.Point {
	var origins []gridgraph.Point
	if forward == tile.Right || forward == tile.Left {
		for y := 1; y < g.Height-1; y++ {
			origins = append(origins, gridgraph.Point{X: 1, Y: y})
		}
		return origins
	}
	for x := 1; x < g.Width-1; x++ {
		origins = append(origins, gridgraph.Point{X: x, Y: 1})
	}
	return origins
}
