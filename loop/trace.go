package loop

import (
	"fmt"

	"github.com/katalvlaran/pipemaze/gridgraph"
)

// Trace walks the loop through the resolved start tile at start and returns
// its cells.
//
// Each step moves one cell along the current heading and records it. On a
// cell other than the start, the next heading is the tile's other opening
// relative to the side just entered through. The walk ends when it returns
// to the start.
//
// Returns ErrStartUnresolved, ErrBrokenPipe, ErrLoopNotClosed or the error of
// an OnStep hook, each wrapped with the position it occurred at.
func Trace(g *gridgraph.Grid, start gridgraph.Point, opts ...Option) (*Loop, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.MaxSteps <= 0 {
		o.MaxSteps = g.Cells()
	}

	first, second, ok := g.At(start).Pair()
	if !ok {
		return nil, fmt.Errorf("loop: Trace %v: %w", start, ErrStartUnresolved)
	}
	heading := first
	if o.Reverse {
		heading = second
	}

	l := &Loop{
		Start:  start,
		member: make([]bool, g.Cells()),
		width:  g.Width,
	}
	cur := start
	for {
		if len(l.path) >= o.MaxSteps {
			return nil, fmt.Errorf("loop: Trace: %w after %d steps", ErrLoopNotClosed, len(l.path))
		}
		cur = cur.Step(heading)
		l.path = append(l.path, cur)
		l.member[g.Index(cur)] = true

		if o.OnStep != nil {
			if err := o.OnStep(cur, heading); err != nil {
				return nil, fmt.Errorf("loop: Trace %v: %w", cur, err)
			}
		}
		if cur == start {
			break
		}

		next, ok := g.At(cur).Exit(heading.Opposite())
		if !ok {
			return nil, fmt.Errorf("loop: Trace %v: %w: %q entered from %v",
				cur, ErrBrokenPipe, g.At(cur).Rune(), heading.Opposite())
		}
		heading = next
	}

	return l, nil
}

// Find locates the start marker of g, resolves it in place and traces the
// loop through it.
func Find(g *gridgraph.Grid, opts ...Option) (*Loop, error) {
	start, err := g.Start()
	if err != nil {
		return nil, fmt.Errorf("loop: Find: %w", err)
	}
	if _, err = ResolveStart(g, start); err != nil {
		return nil, err
	}

	return Trace(g, start, opts...)
}
