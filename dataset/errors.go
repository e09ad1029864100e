package dataset

import errors "gopkg.in/src-d/go-errors.v1"

var (
	// ErrPartitionCast is raised when a directory-encoded partition
	// value cannot be cast to the type of the value it is being
	// compared against (spec §4.2 DatasetSource, §7).
	ErrPartitionCast = errors.NewKind("cannot cast partition value %q to %T")
)
