package loop

import (
	"errors"

	"github.com/katalvlaran/pipemaze/gridgraph"
	"github.com/katalvlaran/pipemaze/tile"
)

var (
	// ErrNotStart is returned when ResolveStart is pointed at a cell that
	// does not hold the start marker.
	ErrNotStart = errors.New("loop: cell is not the start tile")

	// ErrStartNeighbors indicates the start tile does not have exactly two
	// neighbours connecting back to it; the input is malformed.
	ErrStartNeighbors = errors.New("loop: start tile must have exactly two connecting neighbours")

	// ErrStartUnresolved indicates Trace was called on a start tile that is
	// not a pipe.
	ErrStartUnresolved = errors.New("loop: start tile is not resolved")

	// ErrBrokenPipe indicates the walk stepped onto a tile with no opening
	// towards the tile it came from.
	ErrBrokenPipe = errors.New("loop: pipe does not connect back")

	// ErrLoopNotClosed indicates the walk exceeded its step bound without
	// returning to the start.
	ErrLoopNotClosed = errors.New("loop: walk did not return to the start tile")
)

// Option configures optional behavior of Trace.
type Option func(*Options)

// Options holds configurable parameters for Trace.
type Options struct {
	// MaxSteps bounds the walk. Zero or negative means the number of cells
	// in the grid, which no simple cycle can exceed.
	MaxSteps int

	// Reverse, if true, starts along the second opening of the start tile
	// (in Up, Down, Left, Right order) instead of the first.
	Reverse bool

	// OnStep, if non-nil, is invoked for every cell entered, with the
	// heading that moved the walker there. Returning an error aborts the walk.
	OnStep func(p gridgraph.Point, heading tile.Direction) error
}

// DefaultOptions returns Options with:
//   - MaxSteps bound to the grid size
//   - the first opening of the start tile
//   - no step hook
func DefaultOptions() Options {
	return Options{
		MaxSteps: 0,
		Reverse:  false,
		OnStep:   nil,
	}
}

// WithMaxSteps returns an Option that bounds the walk to n steps.
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		o.MaxSteps = n
	}
}

// WithReverse returns an Option that walks the loop the other way round.
func WithReverse() Option {
	return func(o *Options) {
		o.Reverse = true
	}
}

// WithOnStep returns an Option that installs fn as a per-step hook.
func WithOnStep(fn func(p gridgraph.Point, heading tile.Direction) error) Option {
	return func(o *Options) {
		o.OnStep = fn
	}
}

// Loop is the closed cycle of pipes through the start tile.
// It is immutable once Trace returns.
type Loop struct {
	// Start is the position of the start tile.
	Start gridgraph.Point

	path   []gridgraph.Point
	member []bool
	width  int
}

// Len returns the number of cells in the loop, including the start.
func (l *Loop) Len() int {
	return len(l.path)
}

// Farthest returns the number of steps from the start to the point of the
// loop farthest away from it along the loop.
func (l *Loop) Farthest() int {
	return len(l.path) / 2
}

// Contains reports whether p is part of the loop.
func (l *Loop) Contains(p gridgraph.Point) bool {
	if p.X < 0 || p.Y < 0 || p.X >= l.width {
		return false
	}
	i := p.Y*l.width + p.X
	return i < len(l.member) && l.member[i]
}

// Points returns the loop cells in walk order; the last one is the start.
func (l *Loop) Points() []gridgraph.Point {
	out := make([]gridgraph.Point, len(l.path))
	copy(out, l.path)
	return out
}
