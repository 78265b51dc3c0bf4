// Package loop resolves the hidden shape of a maze's start tile and traces
// the closed pipe loop running through it.
//
// What:
//
//   - ResolveStart: inspects the four neighbours of 'S'; the directions whose
//     neighbour connects back name exactly one pipe, which replaces 'S'.
//   - Trace: walks the loop from the start along one of its two openings,
//     entering each tile and leaving through its other opening, until the
//     walk returns to the start.
//   - Find: Start + ResolveStart + Trace in one call.
//
// The walk is bounded by the number of grid cells (WithMaxSteps overrides
// it); a walk that exceeds the bound fails with ErrLoopNotClosed instead of
// spinning forever. Either opening traces the same set of cells, so callers
// should depend only on membership and length, never on order.
//
// Complexity:
//
//   - ResolveStart: O(1).
//   - Trace:        Time O(L), Memory O(W×H) for the membership set
//     (L = loop length).
//
// Errors:
//
//   - ErrNotStart:        the given point does not hold 'S'.
//   - ErrStartNeighbors:  'S' does not have exactly two connecting neighbours.
//   - ErrStartUnresolved: Trace called before ResolveStart.
//   - ErrBrokenPipe:      the walk ran into a tile that does not accept it.
//   - ErrLoopNotClosed:   the step bound was exceeded.
//   - hook errors         propagated from OnStep.
package loop
