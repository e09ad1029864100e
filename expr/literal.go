package expr

import (
	"fmt"

	"github.com/colqhq/colq/columnar"
)

// Literal is a constant scalar broadcast across every row.
type Literal struct {
	Value any
}

func (l Literal) Key() string        { return fmt.Sprintf("lit(%v)", l.Value) }
func (l Literal) Required() []string { return nil }
func (l Literal) Boolean() bool      { _, ok := l.Value.(bool); return ok }
func (l Literal) Depth() int         { return 1 }

func (l Literal) Eval(table columnar.Table) (columnar.Column, error) {
	n := table.NumRows()
	switch v := l.Value.(type) {
	case int64:
		return broadcastInt64(v, n), nil
	case float64:
		return broadcastFloat64(v, n), nil
	case string:
		return broadcastString(v, n), nil
	case bool:
		return broadcastBool(v, n), nil
	default:
		return nil, ErrTypeMismatch.New(fmt.Sprintf("unsupported literal type %T", v))
	}
}

func broadcastInt64(v int64, n int) columnar.Column {
	out := make([]int64, n)
	valid := make([]bool, n)
	for i := range out {
		out[i], valid[i] = v, true
	}
	return &columnar.Int64Column{Values: out, Valid: valid}
}

func broadcastFloat64(v float64, n int) columnar.Column {
	out := make([]float64, n)
	valid := make([]bool, n)
	for i := range out {
		out[i], valid[i] = v, true
	}
	return &columnar.Float64Column{Values: out, Valid: valid}
}

func broadcastString(v string, n int) columnar.Column {
	out := make([]string, n)
	valid := make([]bool, n)
	for i := range out {
		out[i], valid[i] = v, true
	}
	return &columnar.StringColumn{Values: out, Valid: valid}
}

func broadcastBool(v bool, n int) columnar.Column {
	out := make([]bool, n)
	valid := make([]bool, n)
	for i := range out {
		out[i], valid[i] = v, true
	}
	return &columnar.BoolColumn{Values: out, Valid: valid}
}

// ColumnRef reads an existing column by name.
type ColumnRef struct {
	Name string
}

func (r ColumnRef) Key() string        { return "ref(" + r.Name + ")" }
func (r ColumnRef) Required() []string { return []string{r.Name} }
func (r ColumnRef) Boolean() bool      { return false }
func (r ColumnRef) Depth() int         { return 1 }

func (r ColumnRef) Eval(table columnar.Table) (columnar.Column, error) {
	col, err := table.Column(r.Name)
	if err != nil {
		return nil, ErrRefMissing.New(r.Name)
	}
	return col, nil
}

// StructField reads field Field off the struct column Base, covering
// dotted references like "address.city" (spec §4.2 TableSource "struct
// roots").
type StructField struct {
	Base  string
	Field string
}

func (s StructField) Key() string        { return "field(" + s.Base + "." + s.Field + ")" }
func (s StructField) Required() []string { return []string{s.Base} }
func (s StructField) Boolean() bool      { return false }
func (s StructField) Depth() int         { return 1 }

func (s StructField) Eval(table columnar.Table) (columnar.Column, error) {
	col, err := table.Column(s.Base)
	if err != nil {
		return nil, ErrRefMissing.New(s.Base)
	}
	strct, ok := col.(columnar.Struct)
	if !ok {
		return nil, ErrTypeMismatch.New(s.Base + " is not a struct column")
	}
	return strct.Field(s.Field)
}
