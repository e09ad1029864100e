// Package dataset defines the external Dataset/Piece contract (spec §3)
// and a reference implementation, LocalDataset, that reads a
// directory-partitioned (`key=value/...`) tree of column files. Per
// spec §1 the real on-disk file reader is an external collaborator;
// LocalDataset exists so the engine is runnable end to end and testable
// without a production storage backend.
package dataset

import (
	"context"

	"github.com/colqhq/colq/columnar"
)

// Dataset is a lazy view over files partitioned by directory-encoded key
// columns (spec §3 "Dataset").
type Dataset interface {
	// PartitionKeys lists the partition-key column names, in the order
	// they appear in the directory path.
	PartitionKeys() []string
	// Pieces lists every discoverable piece. Partition keys and
	// per-piece schema must be readable without opening any data file
	// (spec §6: "partition keys are discoverable before any file is
	// opened").
	Pieces() []Piece
}

// Piece is one partition directory's worth of data.
type Piece interface {
	// PartitionValues returns this piece's partition column values,
	// already typed (string, int64, float64, bool) from directory-name
	// parsing.
	PartitionValues() map[string]any
	// Schema lists the non-partition column names available in this
	// piece.
	Schema() []string
	// Read loads columns (a subset of Schema, excluding partition
	// keys) from this piece. Pruning by partition filter and applying
	// value filters both happen above Read, per spec §4.4's executor
	// contract ("select pieces passing partition_filters ... apply
	// value filters" after concatenation) — Read itself is unfiltered.
	Read(ctx context.Context, columns []string) (columnar.Table, error)
}

// CheckPartition reports whether a piece's partition values satisfy
// every partition filter, casting the directory-derived partition value
// to the type of each filter's scalar value (for In/NotIn, to the type
// of each list item) (spec §4.2
// DatasetSource: "value comparison performed after casting the
// partition value to the predicate value's type; failure to cast is a
// fatal error").
func CheckPartition(values map[string]any, filters []columnar.Predicate) (bool, error) {
	for _, f := range filters {
		v, ok := values[f.Column]
		if !ok {
			return false, nil
		}
		// In/NotIn carry a list; evalOp casts against each item itself.
		cast := v
		if f.Op != columnar.In && f.Op != columnar.NotIn {
			c, err := castLike(v, f.Value)
			if err != nil {
				return false, ErrPartitionCast.New(v, f.Value)
			}
			cast = c
		}
		ok, err := evalOp(cast, f.Op, f.Value)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}
