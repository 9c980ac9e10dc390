package search

import "errors"

var (
	// ErrUnknownStrategy indicates a strategy name that ParseStrategy does not know.
	ErrUnknownStrategy = errors.New("search: unknown strategy")

	// ErrNilGrid indicates a run was requested without a grid.
	ErrNilGrid = errors.New("search: grid is nil")
)
