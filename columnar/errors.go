package columnar

import errors "gopkg.in/src-d/go-errors.v1"

var (
	// ErrColumnNotFound is raised when a name has no matching column.
	ErrColumnNotFound = errors.NewKind("column not found: %s")
	// ErrTypeMismatch is raised when two columns combined by a kernel
	// or cast do not share a compatible Kind.
	ErrTypeMismatch = errors.NewKind("type mismatch: %s")
	// ErrShapeMismatch is raised when a mask or index list does not
	// match the table it is applied to.
	ErrShapeMismatch = errors.NewKind("shape mismatch: %s")
	// ErrUnsupportedOp is raised for an unknown filter operator (spec §7).
	ErrUnsupportedOp = errors.NewKind("unsupported operator: %s")
)
