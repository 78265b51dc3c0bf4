package tile

import "errors"

// ErrUnknownGlyph indicates a rune that is not part of the maze alphabet.
var ErrUnknownGlyph = errors.New("tile: unknown glyph")

// Direction is one of the four orthogonal grid directions.
// The numeric order is also the bit order of Mask.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists all directions in bit order.
var Directions = [4]Direction{Up, Down, Left, Right}

// Mask is a set of directions; bit i is set when Direction(i) is a member.
type Mask uint8

// Kind is the shape of a single maze cell.
type Kind uint8

const (
	// Empty is ground ('.'); it connects to nothing.
	Empty Kind = iota
	// Start is the unresolved start marker ('S').
	Start
	// Vertical is '|' (Up, Down).
	Vertical
	// Horizontal is '-' (Left, Right).
	Horizontal
	// NorthEast is 'L' (Up, Right).
	NorthEast
	// NorthWest is 'J' (Up, Left).
	NorthWest
	// SouthWest is '7' (Down, Left).
	SouthWest
	// SouthEast is 'F' (Down, Right).
	SouthEast

	numKinds
)
