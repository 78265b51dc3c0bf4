package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrNoStart indicates the grid has no start marker.
	ErrNoStart = errors.New("gridgraph: no start tile")
	// ErrMultipleStarts indicates the grid has more than one start marker.
	ErrMultipleStarts = errors.New("gridgraph: more than one start tile")
)
