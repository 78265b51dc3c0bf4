// Package interior counts the cells enclosed by a traced pipe loop with a
// crossing-number (even-odd) scan specialised to axis-aligned pipes.
//
// Each row is scanned left to right with an inside flag that starts false.
// A non-loop cell is enclosed when the flag is set. A loop pipe running
// across the scan line ('|' for rows) flips the flag. A corner that opens
// along the scan line ('F' or 'L' for rows) starts a run: the scan skips the
// straight pipes of the run up to the closing corner and flips the flag only
// when the run leaves on the other side it came in on ('F'…'J', 'L'…'7').
//
// CountColumns runs the same scan top to bottom over columns and always
// agrees with Count. Pockets groups the enclosed cells into 4-connected
// regions.
//
// The result does not depend on the direction the loop was traced in.
package interior
