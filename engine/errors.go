package engine

import errors "gopkg.in/src-d/go-errors.v1"

var (
	// ErrTableNotFound is raised by Select when no table or dataset was
	// registered under that name.
	ErrTableNotFound = errors.NewKind("no table or dataset registered as %q")
	// ErrAlreadyRegistered guards against silently shadowing a previous
	// registration under the same name.
	ErrAlreadyRegistered = errors.NewKind("%q is already registered")
	// ErrPlotColumn is raised when Plot is asked to chart a non-numeric
	// or missing column.
	ErrPlotColumn = errors.NewKind("cannot plot column %q: %s")
)
