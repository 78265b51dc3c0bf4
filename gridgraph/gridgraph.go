package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/pipemaze/tile"
)

// Parse reads one grid row per non-empty line of r and builds a padded Grid.
// A trailing '\r' on a line is ignored.
// Returns tile.ErrUnknownGlyph (wrapped with its position) for characters
// outside the maze alphabet, plus any error NewGrid reports.
func Parse(r io.Reader) (*Grid, error) {
	var rows [][]tile.Kind
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if text == "" {
			continue
		}
		row := make([]tile.Kind, 0, len(text))
		col := 0
		for _, ch := range text {
			col++
			k, err := tile.Parse(ch)
			if err != nil {
				return nil, fmt.Errorf("gridgraph: line %d column %d: %w", line, col, err)
			}
			row = append(row, k)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: read: %w", err)
	}

	return NewGrid(rows)
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) (*Grid, error) {
	return Parse(strings.NewReader(s))
}

// NewGrid validates rows and copies them into a Grid padded by one ring of
// tile.Empty on every side, so the result is (rows+2)×(cols+2).
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func NewGrid(rows [][]tile.Kind) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y+1, len(row), w)
		}
	}

	// Deep copy into the padded frame; the zero Kind is tile.Empty.
	tiles := make([][]tile.Kind, h+2)
	for y := range tiles {
		tiles[y] = make([]tile.Kind, w+2)
	}
	for y := 0; y < h; y++ {
		copy(tiles[y+1][1:], rows[y])
	}

	return &Grid{Width: w + 2, Height: h + 2, Tiles: tiles}, nil
}

// Rows returns the number of rows of the original, unpadded input.
func (g *Grid) Rows() int { return g.Height - 2 }

// Cols returns the number of columns of the original, unpadded input.
func (g *Grid) Cols() int { return g.Width - 2 }

// Cells returns the number of cells including the padding.
func (g *Grid) Cells() int { return g.Width * g.Height }

// InBounds reports whether p lies within the padded grid.
// Complexity: O(1).
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Inner reports whether p is an original input cell rather than padding.
func (g *Grid) Inner(p Point) bool {
	return p.X >= 1 && p.X < g.Width-1 && p.Y >= 1 && p.Y < g.Height-1
}

// At returns the tile at p. p must be in bounds.
func (g *Grid) At(p Point) tile.Kind {
	return g.Tiles[p.Y][p.X]
}

// Set replaces the tile at p. p must be in bounds.
func (g *Grid) Set(p Point, k tile.Kind) {
	g.Tiles[p.Y][p.X] = k
}

// Index maps p to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) Index(p Point) int {
	return p.Y*g.Width + p.X
}

// Coordinate converts a row-major index back to a Point.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Point {
	return Point{X: idx % g.Width, Y: idx / g.Width}
}

// Start returns the position of the unique start marker.
// Returns ErrNoStart or ErrMultipleStarts when there is not exactly one.
func (g *Grid) Start() (Point, error) {
	var (
		start Point
		found int
	)
	for y := 1; y < g.Height-1; y++ {
		for x := 1; x < g.Width-1; x++ {
			if g.Tiles[y][x] != tile.Start {
				continue
			}
			if found == 0 {
				start = Point{X: x, Y: y}
			}
			found++
		}
	}
	switch {
	case found == 0:
		return Point{}, ErrNoStart
	case found > 1:
		return Point{}, fmt.Errorf("%w: found %d", ErrMultipleStarts, found)
	}

	return start, nil
}

// String renders the inner grid as glyphs, one line per row.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.Cols() + 1) * g.Rows())
	for y := 1; y < g.Height-1; y++ {
		for x := 1; x < g.Width-1; x++ {
			sb.WriteRune(g.Tiles[y][x].Rune())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
