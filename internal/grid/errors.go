package grid

import "errors"

// Domain errors for grid construction and access.
var (
	// ErrTooSmall indicates a height or width below MinSize.
	ErrTooSmall = errors.New("grid: dimensions below minimum size")

	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")

	// ErrMalformed indicates rows of unequal width or an unknown glyph.
	ErrMalformed = errors.New("grid: malformed layout")
)
