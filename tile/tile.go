package tile

import (
	"fmt"
	"strings"
)

var (
	glyphs = [numKinds]rune{
		Empty:      '.',
		Start:      'S',
		Vertical:   '|',
		Horizontal: '-',
		NorthEast:  'L',
		NorthWest:  'J',
		SouthWest:  '7',
		SouthEast:  'F',
	}

	connections = [numKinds]Mask{
		Vertical:   Up.Bit() | Down.Bit(),
		Horizontal: Left.Bit() | Right.Bit(),
		NorthEast:  Up.Bit() | Right.Bit(),
		NorthWest:  Up.Bit() | Left.Bit(),
		SouthWest:  Down.Bit() | Left.Bit(),
		SouthEast:  Down.Bit() | Right.Bit(),
	}

	// byMask is the inverse of connections for the six pipes.
	byMask = map[Mask]Kind{
		Up.Bit() | Down.Bit():    Vertical,
		Left.Bit() | Right.Bit(): Horizontal,
		Up.Bit() | Right.Bit():   NorthEast,
		Up.Bit() | Left.Bit():    NorthWest,
		Down.Bit() | Left.Bit():  SouthWest,
		Down.Bit() | Right.Bit(): SouthEast,
	}

	byGlyph = map[rune]Kind{
		'.': Empty,
		'S': Start,
		'|': Vertical,
		'-': Horizontal,
		'L': NorthEast,
		'J': NorthWest,
		'7': SouthWest,
		'F': SouthEast,
	}

	directionNames = [4]string{Up: "up", Down: "down", Left: "left", Right: "right"}
)

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Delta returns the (dx, dy) offset of one step in d; y grows downwards.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	default:
		return 1, 0
	}
}

// Bit returns the Mask containing only d.
func (d Direction) Bit() Mask {
	return 1 << d
}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Has reports whether d is in m.
func (m Mask) Has(d Direction) bool {
	return m&d.Bit() != 0
}

// With returns m with d added.
func (m Mask) With(d Direction) Mask {
	return m | d.Bit()
}

// Count returns the number of directions in m.
func (m Mask) Count() int {
	n := 0
	for _, d := range Directions {
		if m.Has(d) {
			n++
		}
	}
	return n
}

// Directions returns the members of m in bit order.
func (m Mask) Directions() []Direction {
	out := make([]Direction, 0, 2)
	for _, d := range Directions {
		if m.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

// String renders m as four 0/1 digits in the order up, down, left, right,
// e.g. "0101" for a pipe connecting Down and Right.
func (m Mask) String() string {
	var sb strings.Builder
	for _, d := range Directions {
		if m.Has(d) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Parse maps a glyph to its Kind.
func Parse(r rune) (Kind, error) {
	k, ok := byGlyph[r]
	if !ok {
		return Empty, fmt.Errorf("%w: %q", ErrUnknownGlyph, r)
	}
	return k, nil
}

// FromMask returns the pipe whose connections equal m.
// Only the six two-direction masks name a pipe.
func FromMask(m Mask) (Kind, bool) {
	k, ok := byMask[m]
	return k, ok
}

// Rune returns the glyph of k.
func (k Kind) Rune() rune {
	if k < numKinds {
		return glyphs[k]
	}
	return '?'
}

func (k Kind) String() string {
	return string(k.Rune())
}

// IsPipe reports whether k is one of the six pipes.
func (k Kind) IsPipe() bool {
	return k >= Vertical && k < numKinds
}

// Connections returns the set of directions k connects to.
func (k Kind) Connections() Mask {
	if k < numKinds {
		return connections[k]
	}
	return 0
}

// Connects reports whether k has an opening towards d.
func (k Kind) Connects(d Direction) bool {
	return k.Connections().Has(d)
}

// Pair returns the two directions of a pipe in bit order.
// ok is false for Empty and Start.
func (k Kind) Pair() (a, b Direction, ok bool) {
	ds := k.Connections().Directions()
	if len(ds) != 2 {
		return 0, 0, false
	}
	return ds[0], ds[1], true
}

// Exit returns the direction leaving k when it was entered through the
// entry side. ok is false when k has no opening on that side.
func (k Kind) Exit(entry Direction) (Direction, bool) {
	a, b, ok := k.Pair()
	switch {
	case !ok:
		return 0, false
	case entry == a:
		return b, true
	case entry == b:
		return a, true
	default:
		return 0, false
	}
}
