package expr

import (
	"fmt"

	"github.com/colqhq/colq/columnar"
	"github.com/colqhq/colq/kernel"
)

// Cast converts Operand's evaluated column to Kind.
type Cast struct {
	Operand Expr
	Kind    columnar.Kind
}

func (c Cast) Key() string        { return fmt.Sprintf("cast(%s,%s)", c.Operand.Key(), c.Kind) }
func (c Cast) Required() []string { return c.Operand.Required() }
func (c Cast) Boolean() bool      { return c.Kind == columnar.KindBool }
func (c Cast) Depth() int         { return maxDepth(c.Operand) }

func (c Cast) Eval(table columnar.Table) (columnar.Column, error) {
	col, err := c.Operand.Eval(table)
	if err != nil {
		return nil, err
	}
	return kernel.Cast(col, c.Kind)
}

// UdfFunc is a user-registered scalar function: one input row's values
// (by the Columns it was registered against) to one output value.
type UdfFunc func(row []any) (any, error)

// Udf applies a user-registered function across Columns row by row
// (spec §6 external interface: "register_udf").
type Udf struct {
	Name    string
	Columns []Expr
	Fn      UdfFunc
}

func (u Udf) Key() string {
	parts := make([]string, len(u.Columns))
	for i, c := range u.Columns {
		parts[i] = c.Key()
	}
	return fmt.Sprintf("udf:%s(%v)", u.Name, parts)
}
func (u Udf) Required() []string { return requiredOf(u.Columns...) }
func (u Udf) Boolean() bool      { return false }
func (u Udf) Depth() int         { return maxDepth(u.Columns...) }

func (u Udf) Eval(table columnar.Table) (columnar.Column, error) {
	cols := make([]columnar.Column, len(u.Columns))
	for i, c := range u.Columns {
		col, err := c.Eval(table)
		if err != nil {
			return nil, err
		}
		cols[i] = col
	}
	n := table.NumRows()
	if n == 0 {
		return &columnar.StringColumn{}, nil
	}
	values := make([]any, n)
	valid := make([]bool, n)
	for i := 0; i < n; i++ {
		row := make([]any, len(cols))
		for j, c := range cols {
			if !c.IsNull(i) {
				row[j] = c.At(i)
			}
		}
		v, err := u.Fn(row)
		if err != nil {
			return nil, err
		}
		if v != nil {
			values[i], valid[i] = v, true
		}
	}
	return columnFromValues(values, valid), nil
}
