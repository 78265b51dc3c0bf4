// Package tile models the cells of a pipe maze: the four grid directions,
// the pipe glyphs and the fixed pair of directions each pipe connects.
//
// What:
//
//   - Direction: Up, Down, Left, Right with Opposite and Delta.
//   - Mask: a 4-bit set of directions, one bit per Direction.
//   - Kind: Empty, Start and the six pipes | - L J 7 F.
//
// Every pipe connects exactly two directions. Exit maps the side a walker
// entered through to the side it leaves through, which is the other member
// of the pair. Empty and an unresolved Start connect to nothing.
//
// The glyph table and its inverse (Mask -> Kind) are static; nothing is
// derived per call.
//
// Errors:
//
//   - ErrUnknownGlyph: a rune outside the pipe maze alphabet.
package tile
