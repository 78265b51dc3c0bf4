package loop

import (
	"fmt"

	"github.com/katalvlaran/pipemaze/gridgraph"
	"github.com/katalvlaran/pipemaze/tile"
)

// Connected returns the directions around p whose neighbour has an opening
// pointing back at p. The padding ring guarantees every neighbour of an
// inner cell is in bounds.
func Connected(g *gridgraph.Grid, p gridgraph.Point) tile.Mask {
	var m tile.Mask
	for _, d := range tile.Directions {
		if g.At(p.Step(d)).Connects(d.Opposite()) {
			m = m.With(d)
		}
	}
	return m
}

// ResolveStart infers the pipe hidden under the start marker at p and
// writes it into g. It returns the resolved kind.
//
// Returns ErrNotStart if p does not hold tile.Start, and ErrStartNeighbors
// if the number of neighbours connecting back is not exactly two.
func ResolveStart(g *gridgraph.Grid, p gridgraph.Point) (tile.Kind, error) {
	if !g.Inner(p) || g.At(p) != tile.Start {
		return tile.Empty, fmt.Errorf("loop: ResolveStart %v: %w", p, ErrNotStart)
	}

	m := Connected(g, p)
	k, ok := tile.FromMask(m)
	if !ok {
		return tile.Empty, fmt.Errorf("loop: ResolveStart %v: %w: found %d (%s)",
			p, ErrStartNeighbors, m.Count(), m)
	}
	g.Set(p, k)

	return k, nil
}
