package exec

import errors "gopkg.in/src-d/go-errors.v1"

var (
	// ErrUnsupportedNode is raised when Materialize encounters a
	// plan.Node concrete type it has no execution logic for — it should
	// only ever fire for a node kind added to plan without a matching
	// exec case.
	ErrUnsupportedNode = errors.NewKind("executor has no case for node kind %s")
	// ErrExprType is raised when a Calculation/BooleanMask's Expr field
	// does not hold an expr.Expr, i.e. the plan was built by something
	// other than engine.Plan.
	ErrExprType = errors.NewKind("node %s does not hold an expr.Expr")
)
