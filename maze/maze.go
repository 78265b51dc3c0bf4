// Package maze runs the whole pipe maze pipeline: parse the grid, resolve
// the start tile, trace the loop and count the cells it encloses.
package maze

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/pipemaze/gridgraph"
	"github.com/katalvlaran/pipemaze/interior"
	"github.com/katalvlaran/pipemaze/loop"
	"github.com/katalvlaran/pipemaze/tile"
)

// Axis selects the scan direction of the interior count.
type Axis int

const (
	// AxisRows scans rows left to right.
	AxisRows Axis = iota
	// AxisColumns scans columns top to bottom.
	AxisColumns
)

// ErrUnknownAxis indicates an Axis value outside AxisRows and AxisColumns.
var ErrUnknownAxis = errors.New("maze: unknown scan axis")

func (a Axis) String() string {
	switch a {
	case AxisRows:
		return "rows"
	case AxisColumns:
		return "columns"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// ParseAxis maps "rows" or "columns" to an Axis. The empty string means rows.
func ParseAxis(s string) (Axis, error) {
	switch s {
	case "", "rows":
		return AxisRows, nil
	case "columns":
		return AxisColumns, nil
	default:
		return AxisRows, fmt.Errorf("%w: %q", ErrUnknownAxis, s)
	}
}

// Option configures Solve.
type Option func(*Options)

// Options holds configurable parameters for Solve.
type Options struct {
	// MaxSteps bounds the loop walk; zero means the grid size.
	MaxSteps int
	// Axis selects the interior scan direction.
	Axis Axis
}

// DefaultOptions returns Options with the grid-size step bound and row scan.
func DefaultOptions() Options {
	return Options{MaxSteps: 0, Axis: AxisRows}
}

// WithMaxSteps bounds the loop walk to n steps.
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		o.MaxSteps = n
	}
}

// WithAxis selects the interior scan direction.
func WithAxis(a Axis) Option {
	return func(o *Options) {
		o.Axis = a
	}
}

// Result is the outcome of solving one maze.
type Result struct {
	// Steps is the distance along the loop to its farthest cell.
	Steps int
	// Enclosed is the number of cells inside the loop.
	Enclosed int
	// StartKind is the pipe inferred under the start marker.
	StartKind tile.Kind
	// Grid holds the maze with the start tile resolved.
	Grid *gridgraph.Grid
	// Loop is the traced loop.
	Loop *loop.Loop
}

// Solve reads a maze from r and computes both answers.
// Errors are wrapped with the stage that produced them.
func Solve(r io.Reader, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	g, err := gridgraph.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("maze: parse: %w", err)
	}
	start, err := g.Start()
	if err != nil {
		return nil, fmt.Errorf("maze: start: %w", err)
	}
	kind, err := loop.ResolveStart(g, start)
	if err != nil {
		return nil, fmt.Errorf("maze: resolve: %w", err)
	}
	l, err := loop.Trace(g, start, loop.WithMaxSteps(o.MaxSteps))
	if err != nil {
		return nil, fmt.Errorf("maze: trace: %w", err)
	}

	var enclosed int
	switch o.Axis {
	case AxisRows:
		enclosed = interior.Count(g, l)
	case AxisColumns:
		enclosed = interior.CountColumns(g, l)
	default:
		return nil, fmt.Errorf("maze: scan: %w: %v", ErrUnknownAxis, o.Axis)
	}

	return &Result{
		Steps:     l.Farthest(),
		Enclosed:  enclosed,
		StartKind: kind,
		Grid:      g,
		Loop:      l,
	}, nil
}

// SolveFile is Solve over the contents of the file at path.
func SolveFile(path string, opts ...Option) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("maze: %w", err)
	}
	defer f.Close()

	return Solve(f, opts...)
}
