package plan

import errors "gopkg.in/src-d/go-errors.v1"

var (
	// ErrColumnMissing is raised at plan construction when a referenced
	// column is not in the relevant visible set (spec §7).
	ErrColumnMissing = errors.NewKind("column missing: %s")
	// ErrTypeMismatch is raised on an incompatible filter value (spec §7).
	ErrTypeMismatch = errors.NewKind("type mismatch: %s")
	// ErrUnsupportedOp is raised for an unknown filter operator (spec §7).
	ErrUnsupportedOp = errors.NewKind("unsupported operator: %s")
	// ErrInvalidPlan is an internal invariant violation, e.g. the
	// optimiser produced columns_backward not in columns_source.
	ErrInvalidPlan = errors.NewKind("invalid plan: %s")
)
