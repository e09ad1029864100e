package kernel

import errors "gopkg.in/src-d/go-errors.v1"

var (
	// ErrKernelType is raised when a kernel receives operand types it
	// cannot evaluate (spec §1: scalar kernels are out of scope for
	// correctness proofs beyond type compatibility).
	ErrKernelType = errors.NewKind("kernel type error: %s")
	// ErrKernelShape is raised when a kernel receives mismatched input
	// lengths, e.g. join columns of differing row counts.
	ErrKernelShape = errors.NewKind("kernel shape error: %s")
)
