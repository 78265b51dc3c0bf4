package maze_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pipemaze/gridgraph"
	"github.com/katalvlaran/pipemaze/loop"
	"github.com/katalvlaran/pipemaze/maze"
	"github.com/katalvlaran/pipemaze/tile"
)

const junk = "FF7FSF7F7F7F7F7F---7\n" +
	"L|LJ||||||||||||F--J\n" +
	"FL-7LJLJ||||||LJL-77\n" +
	"F--JF--7||LJLJ7F7FJ-\n" +
	"L---JF-JLJ.||-FJLJJ7\n" +
	"|F|F-JF---7F7-L7L|7|\n" +
	"|FFJF7L7F-JF7|JL---7\n" +
	"7-L-JL7||F7|L7F-7F7|\n" +
	"L.L7LFJ|||||FJL7||LJ\n" +
	"L7JLJL-JLJLJL--JLJ.L\n"

func TestSolve(t *testing.T) {
	res, err := maze.Solve(strings.NewReader("S-7\n|.|\nL-J\n"))
	require.NoError(t, err)
	require.Equal(t, 4, res.Steps)
	require.Equal(t, 1, res.Enclosed)
	require.Equal(t, tile.SouthEast, res.StartKind)
	require.Equal(t, 8, res.Loop.Len())
	require.Equal(t, tile.SouthEast, res.Grid.At(res.Loop.Start))
}

func TestSolve_Axis(t *testing.T) {
	for _, axis := range []maze.Axis{maze.AxisRows, maze.AxisColumns} {
		t.Run(axis.String(), func(t *testing.T) {
			res, err := maze.Solve(strings.NewReader(junk), maze.WithAxis(axis))
			require.NoError(t, err)
			require.Equal(t, 10, res.Enclosed)
			require.Equal(t, tile.SouthWest, res.StartKind)
			require.Equal(t, res.Loop.Len()/2, res.Steps)
		})
	}

	_, err := maze.Solve(strings.NewReader(junk), maze.WithAxis(maze.Axis(7)))
	require.ErrorIs(t, err, maze.ErrUnknownAxis)
}

// TestSolve_Errors verifies every stage failure is reported with its stage.
func TestSolve_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		opts  []maze.Option
		err   error
		stage string
	}{
		{"Ragged", "S-7\n|.\nL-J\n", nil, gridgraph.ErrNonRectangular, "maze: parse"},
		{"Glyph", "S-7\n|#|\nL-J\n", nil, tile.ErrUnknownGlyph, "maze: parse"},
		{"NoStart", "F-7\n|.|\nL-J\n", nil, gridgraph.ErrNoStart, "maze: start"},
		{"TwoStarts", "S-7\n|.|\nL-S\n", nil, gridgraph.ErrMultipleStarts, "maze: start"},
		{"Neighbors", "S.7\n..|\nL-J\n", nil, loop.ErrStartNeighbors, "maze: resolve"},
		{"Bound", "S-7\n|.|\nL-J\n", []maze.Option{maze.WithMaxSteps(3)}, loop.ErrLoopNotClosed, "maze: trace"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := maze.Solve(strings.NewReader(tc.input), tc.opts...)
			require.ErrorIs(t, err, tc.err)
			require.True(t, strings.HasPrefix(err.Error(), tc.stage), "error %q", err)
		})
	}
}

func TestSolveFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(junk), 0o600))

	res, err := maze.SolveFile(path)
	require.NoError(t, err)
	require.Equal(t, 10, res.Enclosed)

	_, err = maze.SolveFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseAxis(t *testing.T) {
	a, err := maze.ParseAxis("")
	require.NoError(t, err)
	require.Equal(t, maze.AxisRows, a)

	a, err = maze.ParseAxis("columns")
	require.NoError(t, err)
	require.Equal(t, maze.AxisColumns, a)

	_, err = maze.ParseAxis("diagonal")
	require.ErrorIs(t, err, maze.ErrUnknownAxis)
}
