// Package gridgraph loads a pipe maze into a padded rectangular grid of
// tile.Kind cells and offers the neighbour arithmetic the loop tracer and
// interior scanner rely on.
//
// What:
//
//   - Parse / ParseString / NewGrid build a Grid from text or tiles.
//   - Every grid is padded with one ring of tile.Empty, so stepping one
//     cell from any original cell stays in bounds and meets no connection.
//   - Start locates the unique 'S' marker.
//   - Regions finds 4-connected groups of inner cells matching a predicate.
//
// Coordinates are padded: the first input character lives at (1,1).
// Width and Height are the padded dimensions; Rows and Cols the original.
//
// Complexity:
//
//   - Parse, NewGrid: O(W×H) time and memory.
//   - Start:          O(W×H).
//   - Regions:        O(W×H×4), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNoStart: no 'S' in the grid.
//   - ErrMultipleStarts: more than one 'S' in the grid.
//   - tile.ErrUnknownGlyph: a character outside the maze alphabet.
package gridgraph
