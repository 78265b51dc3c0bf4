package tile_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pipemaze/tile"
)

func TestDirection_Opposite(t *testing.T) {
	for _, d := range tile.Directions {
		require.NotEqual(t, d, d.Opposite(), "direction %v", d)
		require.Equal(t, d, d.Opposite().Opposite(), "direction %v", d)

		dx, dy := d.Delta()
		ox, oy := d.Opposite().Delta()
		require.Equal(t, 0, dx+ox)
		require.Equal(t, 0, dy+oy)
	}
}

// TestParse_Table checks glyph parsing and the connection table for every kind.
func TestParse_Table(t *testing.T) {
	cases := []struct {
		glyph rune
		kind  tile.Kind
		code  string
	}{
		{'.', tile.Empty, "0000"},
		{'S', tile.Start, "0000"},
		{'|', tile.Vertical, "1100"},
		{'-', tile.Horizontal, "0011"},
		{'L', tile.NorthEast, "1001"},
		{'J', tile.NorthWest, "1010"},
		{'7', tile.SouthWest, "0110"},
		{'F', tile.SouthEast, "0101"},
	}
	for _, tc := range cases {
		t.Run(string(tc.glyph), func(t *testing.T) {
			k, err := tile.Parse(tc.glyph)
			require.NoError(t, err)
			require.Equal(t, tc.kind, k)
			require.Equal(t, tc.glyph, k.Rune())
			require.Equal(t, tc.code, k.Connections().String())
		})
	}
}

func TestParse_Unknown(t *testing.T) {
	_, err := tile.Parse('x')
	require.ErrorIs(t, err, tile.ErrUnknownGlyph)
}

// TestFromMask_Inverse verifies FromMask undoes Connections for every pipe
// and rejects masks that do not have exactly two members.
func TestFromMask_Inverse(t *testing.T) {
	pipes := 0
	for m := tile.Mask(0); m < 16; m++ {
		k, ok := tile.FromMask(m)
		if m.Count() != 2 {
			require.False(t, ok, "mask %v", m)
			continue
		}
		require.True(t, ok, "mask %v", m)
		require.True(t, k.IsPipe())
		require.Equal(t, m, k.Connections())
		pipes++
	}
	require.Equal(t, 6, pipes)
}

// TestExit_Bijection verifies the path mapping is a symmetric bijection
// between the two connections of every pipe.
func TestExit_Bijection(t *testing.T) {
	for _, k := range []tile.Kind{
		tile.Vertical, tile.Horizontal,
		tile.NorthEast, tile.NorthWest, tile.SouthWest, tile.SouthEast,
	} {
		a, b, ok := k.Pair()
		require.True(t, ok, "kind %v", k)

		out, ok := k.Exit(a)
		require.True(t, ok)
		require.Equal(t, b, out)

		back, ok := k.Exit(out)
		require.True(t, ok)
		require.Equal(t, a, back)

		for _, d := range tile.Directions {
			if d == a || d == b {
				continue
			}
			_, ok := k.Exit(d)
			require.False(t, ok, "kind %v entered from %v", k, d)
			require.False(t, k.Connects(d))
		}
	}
}

func TestExit_NoConnections(t *testing.T) {
	for _, k := range []tile.Kind{tile.Empty, tile.Start} {
		require.False(t, k.IsPipe())
		require.Zero(t, k.Connections().Count())
		for _, d := range tile.Directions {
			_, ok := k.Exit(d)
			require.False(t, ok)
		}
	}
}

func TestMask_Directions(t *testing.T) {
	m := tile.Mask(0).With(tile.Right).With(tile.Up)
	require.Equal(t, []tile.Direction{tile.Up, tile.Right}, m.Directions())
	require.Equal(t, 2, m.Count())
	require.True(t, m.Has(tile.Up))
	require.False(t, m.Has(tile.Down))
	require.Equal(t, "up", tile.Up.String())
}
