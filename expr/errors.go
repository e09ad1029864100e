package expr

import errors "gopkg.in/src-d/go-errors.v1"

var (
	// ErrTypeMismatch is raised when an expression's operands cannot be
	// reconciled to a common type at Eval time.
	ErrTypeMismatch = errors.NewKind("expression type mismatch: %s")
	// ErrArityMismatch is raised when a variadic node (Coalesce, Extremum)
	// is built with too few operands.
	ErrArityMismatch = errors.NewKind("expression arity mismatch: %s")
	// ErrRefMissing is raised when a ColumnRef or StructField names a
	// column the table being evaluated against doesn't have.
	ErrRefMissing = errors.NewKind("expression references missing column: %s")
)
