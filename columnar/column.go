// Package columnar defines the typed, chunk-free columnar data model that
// the rest of colq consumes: an ordered table of named columns plus the
// handful of operations (projection, mask filtering, take, append) the
// plan executor needs. Tables and columns are immutable once built;
// every mutating-looking method returns a new value.
package columnar

import "fmt"

// Kind identifies the scalar type carried by a Column.
type Kind int

const (
	KindInt64 Kind = iota
	KindFloat64
	KindString
	KindBool
	KindStruct
)

func (k Kind) String() string {
	switch k {
	case KindInt64:
		return "int64"
	case KindFloat64:
		return "float64"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindStruct:
		return "struct"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Column is a logically flat typed array. A Column may additionally
// implement Dictionary (dictionary-encoded values) or Struct (nested
// field access); callers probe with a type assertion.
type Column interface {
	Kind() Kind
	Len() int
	IsNull(i int) bool
	// At returns the value at i as its native Go type (int64, float64,
	// string, bool), or nil if IsNull(i).
	At(i int) any
	// Take returns a new Column reordered/selected by indices.
	Take(indices []int) Column
}

// Dictionary is implemented by columns that are dictionary-encoded: a
// small set of distinct values referenced by index. The join kernel's
// min/max-based redundant-key elimination (spec §4.2) reads through
// this interface rather than decoding the whole column.
type Dictionary interface {
	Column
	DictionaryValues() []any
	Indices() []int
}

// Struct is implemented by columns whose elements are structs, letting
// expr.StructField and TableSource's struct-root exposure walk into
// nested fields without decoding the whole column to Go values.
type Struct interface {
	Column
	FieldNames() []string
	Field(name string) (Column, error)
}
