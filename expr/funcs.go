package expr

import (
	"fmt"
	"math"
	"strings"

	"github.com/colqhq/colq/columnar"
)

// ExtremumKind picks the greatest or least of its operands.
type ExtremumKind int

const (
	Greatest ExtremumKind = iota
	Least
)

// Extremum reduces two or more numeric expressions elementwise to
// their greatest or least value.
type Extremum struct {
	Op       ExtremumKind
	Operands []Expr
}

func NewExtremum(op ExtremumKind, operands ...Expr) (*Extremum, error) {
	if len(operands) < 2 {
		return nil, ErrArityMismatch.New("extremum requires at least two operands")
	}
	return &Extremum{Op: op, Operands: operands}, nil
}

func (e Extremum) Key() string {
	parts := make([]string, len(e.Operands))
	for i, o := range e.Operands {
		parts[i] = o.Key()
	}
	return fmt.Sprintf("extremum%d(%s)", e.Op, strings.Join(parts, ","))
}
func (e Extremum) Required() []string { return requiredOf(e.Operands...) }
func (e Extremum) Boolean() bool      { return false }
func (e Extremum) Depth() int         { return maxDepth(e.Operands...) }

func (e Extremum) Eval(table columnar.Table) (columnar.Column, error) {
	cols := make([]columnar.Column, len(e.Operands))
	for i, o := range e.Operands {
		c, err := o.Eval(table)
		if err != nil {
			return nil, err
		}
		cols[i] = c
	}
	n := cols[0].Len()
	out := make([]float64, n)
	valid := make([]bool, n)
	for i := 0; i < n; i++ {
		var best float64
		found := false
		for _, c := range cols {
			if c.IsNull(i) {
				continue
			}
			v, ok := asFloat(c.At(i))
			if !ok {
				return nil, ErrTypeMismatch.New("extremum requires numeric operands")
			}
			if !found || (e.Op == Greatest && v > best) || (e.Op == Least && v < best) {
				best, found = v, true
			}
		}
		out[i], valid[i] = best, found
	}
	return &columnar.Float64Column{Values: out, Valid: valid}, nil
}

// Clip bounds Operand between Min and Max (either may be nil for
// unbounded).
type Clip struct {
	Operand  Expr
	Min, Max *float64
}

func (c Clip) Key() string {
	bound := func(b *float64) string {
		if b == nil {
			return "none"
		}
		return fmt.Sprintf("%g", *b)
	}
	return fmt.Sprintf("clip(%s,%s,%s)", c.Operand.Key(), bound(c.Min), bound(c.Max))
}
func (c Clip) Required() []string { return c.Operand.Required() }
func (c Clip) Boolean() bool      { return false }
func (c Clip) Depth() int         { return maxDepth(c.Operand) }

func (c Clip) Eval(table columnar.Table) (columnar.Column, error) {
	col, err := c.Operand.Eval(table)
	if err != nil {
		return nil, err
	}
	n := col.Len()
	out := make([]float64, n)
	valid := make([]bool, n)
	for i := 0; i < n; i++ {
		if col.IsNull(i) {
			continue
		}
		v, ok := asFloat(col.At(i))
		if !ok {
			return nil, ErrTypeMismatch.New("clip requires a numeric operand")
		}
		if c.Min != nil && v < *c.Min {
			v = *c.Min
		}
		if c.Max != nil && v > *c.Max {
			v = *c.Max
		}
		out[i], valid[i] = v, true
	}
	return &columnar.Float64Column{Values: out, Valid: valid}, nil
}

// RoundKind selects rounding direction.
type RoundKind int

const (
	RoundNearest RoundKind = iota
	RoundCeil
	RoundFloor
)

// Round rounds Operand to Places decimal places (ignored for Ceil/Floor).
type Round struct {
	Kind    RoundKind
	Operand Expr
	Places  int
}

func (r Round) Key() string        { return fmt.Sprintf("round%d(%s,%d)", r.Kind, r.Operand.Key(), r.Places) }
func (r Round) Required() []string { return r.Operand.Required() }
func (r Round) Boolean() bool      { return false }
func (r Round) Depth() int         { return maxDepth(r.Operand) }

func (r Round) Eval(table columnar.Table) (columnar.Column, error) {
	col, err := r.Operand.Eval(table)
	if err != nil {
		return nil, err
	}
	n := col.Len()
	out := make([]float64, n)
	valid := make([]bool, n)
	mult := math.Pow(10, float64(r.Places))
	for i := 0; i < n; i++ {
		if col.IsNull(i) {
			continue
		}
		v, ok := asFloat(col.At(i))
		if !ok {
			return nil, ErrTypeMismatch.New("round requires a numeric operand")
		}
		switch r.Kind {
		case RoundCeil:
			v = math.Ceil(v)
		case RoundFloor:
			v = math.Floor(v)
		default:
			v = math.Round(v*mult) / mult
		}
		out[i], valid[i] = v, true
	}
	return &columnar.Float64Column{Values: out, Valid: valid}, nil
}

// Coalesce returns the first non-null value across Operands per row,
// matching the pandas/wombat "coalesce" combinator.
type Coalesce struct {
	Operands []Expr
}

func NewCoalesce(operands ...Expr) (*Coalesce, error) {
	if len(operands) < 1 {
		return nil, ErrArityMismatch.New("coalesce requires at least one operand")
	}
	return &Coalesce{Operands: operands}, nil
}

func (c Coalesce) Key() string {
	parts := make([]string, len(c.Operands))
	for i, o := range c.Operands {
		parts[i] = o.Key()
	}
	return "coalesce(" + strings.Join(parts, ",") + ")"
}
func (c Coalesce) Required() []string { return requiredOf(c.Operands...) }
func (c Coalesce) Boolean() bool      { return false }
func (c Coalesce) Depth() int         { return maxDepth(c.Operands...) }

func (c Coalesce) Eval(table columnar.Table) (columnar.Column, error) {
	cols := make([]columnar.Column, len(c.Operands))
	for i, o := range c.Operands {
		col, err := o.Eval(table)
		if err != nil {
			return nil, err
		}
		cols[i] = col
	}
	n := cols[0].Len()
	values := make([]any, n)
	valid := make([]bool, n)
	for i := 0; i < n; i++ {
		for _, c := range cols {
			if !c.IsNull(i) {
				values[i], valid[i] = c.At(i), true
				break
			}
		}
	}
	return columnFromValues(values, valid), nil
}

// FillNull replaces null values produced by Operand with With, fixing
// the unbound-`other` bug the reference implementation has in its
// fillna path (spec §9 design notes): the replacement is always an
// explicit scalar expression.
type FillNull struct {
	Operand Expr
	With    Expr
}

func (f FillNull) Key() string        { return fmt.Sprintf("fillnull(%s,%s)", f.Operand.Key(), f.With.Key()) }
func (f FillNull) Required() []string { return requiredOf(f.Operand, f.With) }
func (f FillNull) Boolean() bool      { return false }
func (f FillNull) Depth() int         { return maxDepth(f.Operand, f.With) }

func (f FillNull) Eval(table columnar.Table) (columnar.Column, error) {
	col, err := f.Operand.Eval(table)
	if err != nil {
		return nil, err
	}
	repl, err := f.With.Eval(table)
	if err != nil {
		return nil, err
	}
	n := col.Len()
	values := make([]any, n)
	valid := make([]bool, n)
	for i := 0; i < n; i++ {
		if !col.IsNull(i) {
			values[i], valid[i] = col.At(i), true
			continue
		}
		if !repl.IsNull(i) {
			values[i], valid[i] = repl.At(i), true
		}
	}
	return columnFromValues(values, valid), nil
}

func columnFromValues(values []any, valid []bool) columnar.Column {
	n := len(values)
	kind := columnar.KindString
	for i, ok := range valid {
		if ok {
			switch values[i].(type) {
			case int64:
				kind = columnar.KindInt64
			case float64:
				kind = columnar.KindFloat64
			case bool:
				kind = columnar.KindBool
			}
			break
		}
	}
	switch kind {
	case columnar.KindInt64:
		out := make([]int64, n)
		for i, ok := range valid {
			if ok {
				out[i] = values[i].(int64)
			}
		}
		return &columnar.Int64Column{Values: out, Valid: valid}
	case columnar.KindFloat64:
		out := make([]float64, n)
		for i, ok := range valid {
			if ok {
				out[i] = values[i].(float64)
			}
		}
		return &columnar.Float64Column{Values: out, Valid: valid}
	case columnar.KindBool:
		out := make([]bool, n)
		for i, ok := range valid {
			if ok {
				out[i] = values[i].(bool)
			}
		}
		return &columnar.BoolColumn{Values: out, Valid: valid}
	default:
		out := make([]string, n)
		for i, ok := range valid {
			if ok {
				out[i] = fmt.Sprintf("%v", values[i])
			}
		}
		return &columnar.StringColumn{Values: out, Valid: valid}
	}
}
