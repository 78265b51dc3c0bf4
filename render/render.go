// Package render draws a solved pipe maze as styled text: loop pipes as
// box-drawing glyphs, enclosed cells as 'I' and everything else as '.'.
// Styling goes through a lipgloss.Renderer, so output to a non-terminal
// degrades to plain text.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/pipemaze/gridgraph"
	"github.com/katalvlaran/pipemaze/interior"
	"github.com/katalvlaran/pipemaze/loop"
	"github.com/katalvlaran/pipemaze/tile"
)

// Color palette. ANSI 256 codes.
var (
	colorCyan   = lipgloss.Color("36")
	colorYellow = lipgloss.Color("220")
	colorGreen  = lipgloss.Color("35")
	colorDim    = lipgloss.Color("240")
)

var boxGlyphs = map[tile.Kind]rune{
	tile.Vertical:   '│',
	tile.Horizontal: '─',
	tile.NorthEast:  '└',
	tile.NorthWest:  '┘',
	tile.SouthWest:  '┐',
	tile.SouthEast:  '┌',
}

const (
	enclosedGlyph = 'I'
	outsideGlyph  = '.'
)

// Palette holds the style of each cell class.
type Palette struct {
	Loop     lipgloss.Style
	Start    lipgloss.Style
	Enclosed lipgloss.Style
	Outside  lipgloss.Style
}

// DefaultPalette returns the palette used by New, bound to r.
func DefaultPalette(r *lipgloss.Renderer) Palette {
	return Palette{
		Loop:     r.NewStyle().Foreground(colorCyan),
		Start:    r.NewStyle().Foreground(colorYellow).Bold(true),
		Enclosed: r.NewStyle().Foreground(colorGreen).Bold(true),
		Outside:  r.NewStyle().Foreground(colorDim),
	}
}

// Renderer draws mazes with a fixed palette.
type Renderer struct {
	palette Palette
}

// New returns a Renderer using DefaultPalette(r).
func New(r *lipgloss.Renderer) *Renderer {
	return NewWithPalette(DefaultPalette(r))
}

// NewWithPalette returns a Renderer using p.
func NewWithPalette(p Palette) *Renderer {
	return &Renderer{palette: p}
}

type class uint8

const (
	classOutside class = iota
	classEnclosed
	classLoop
	classStart
)

func (rd *Renderer) style(c class) lipgloss.Style {
	switch c {
	case classEnclosed:
		return rd.palette.Enclosed
	case classLoop:
		return rd.palette.Loop
	case classStart:
		return rd.palette.Start
	default:
		return rd.palette.Outside
	}
}

// Render draws the inner grid of g, one line per row, each ending in '\n'.
// g must already hold the resolved start tile traced as l.
func (rd *Renderer) Render(g *gridgraph.Grid, l *loop.Loop) string {
	enclosed := make([]bool, g.Cells())
	for _, p := range interior.Cells(g, l) {
		enclosed[g.Index(p)] = true
	}

	var out strings.Builder
	for y := 1; y < g.Height-1; y++ {
		var (
			run     strings.Builder
			current class
		)
		flush := func() {
			if run.Len() > 0 {
				out.WriteString(rd.style(current).Render(run.String()))
				run.Reset()
			}
		}
		for x := 1; x < g.Width-1; x++ {
			p := gridgraph.Point{X: x, Y: y}
			c, glyph := classify(g, l, enclosed, p)
			if c != current {
				flush()
				current = c
			}
			run.WriteRune(glyph)
		}
		flush()
		out.WriteByte('\n')
	}
	return out.String()
}

func classify(g *gridgraph.Grid, l *loop.Loop, enclosed []bool, p gridgraph.Point) (class, rune) {
	switch {
	case p == l.Start:
		return classStart, boxGlyphs[g.At(p)]
	case l.Contains(p):
		return classLoop, boxGlyphs[g.At(p)]
	case enclosed[g.Index(p)]:
		return classEnclosed, enclosedGlyph
	default:
		return classOutside, outsideGlyph
	}
}
