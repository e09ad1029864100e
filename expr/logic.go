package expr

import (
	"fmt"

	"github.com/colqhq/colq/columnar"
	"github.com/colqhq/colq/kernel"
)

// CmpKind names a comparison operator, distinct from columnar.Op so
// the expression tree doesn't require a columnar.Predicate to express a
// comparison nested inside a larger boolean expression.
type CmpKind int

const (
	CmpLt CmpKind = iota
	CmpLe
	CmpGt
	CmpGe
	CmpEq
	CmpNe
)

// CmpOp compares Left and Right elementwise, producing a boolean column.
type CmpOp struct {
	Op          CmpKind
	Left, Right Expr
}

func (c CmpOp) Key() string        { return fmt.Sprintf("(%s cmp%d %s)", c.Left.Key(), c.Op, c.Right.Key()) }
func (c CmpOp) Required() []string { return requiredOf(c.Left, c.Right) }
func (c CmpOp) Boolean() bool      { return true }
func (c CmpOp) Depth() int         { return maxDepth(c.Left, c.Right) }

func (c CmpOp) Eval(table columnar.Table) (columnar.Column, error) {
	left, err := c.Left.Eval(table)
	if err != nil {
		return nil, err
	}
	right, err := c.Right.Eval(table)
	if err != nil {
		return nil, err
	}
	if left.Len() != right.Len() {
		return nil, ErrTypeMismatch.New("comparison operand length mismatch")
	}
	n := left.Len()
	out := make([]bool, n)
	valid := make([]bool, n)
	for i := 0; i < n; i++ {
		if left.IsNull(i) || right.IsNull(i) {
			continue
		}
		cmp, err := kernel.Compare(left.At(i), right.At(i))
		if err != nil {
			return nil, err
		}
		out[i], valid[i] = evalCmp(c.Op, cmp), true
	}
	return &columnar.BoolColumn{Values: out, Valid: valid}, nil
}

func evalCmp(op CmpKind, cmp int) bool {
	switch op {
	case CmpLt:
		return cmp < 0
	case CmpLe:
		return cmp <= 0
	case CmpGt:
		return cmp > 0
	case CmpGe:
		return cmp >= 0
	case CmpEq:
		return cmp == 0
	case CmpNe:
		return cmp != 0
	default:
		return false
	}
}

// LogicKind names a boolean combinator.
type LogicKind int

const (
	And LogicKind = iota
	Or
	Not
)

// LogicOp combines one or two boolean expressions. Not ignores Right.
type LogicOp struct {
	Op          LogicKind
	Left, Right Expr
}

func (l LogicOp) Key() string {
	if l.Op == Not {
		return "not(" + l.Left.Key() + ")"
	}
	return fmt.Sprintf("(%s logic%d %s)", l.Left.Key(), l.Op, l.Right.Key())
}

func (l LogicOp) Required() []string {
	if l.Op == Not {
		return l.Left.Required()
	}
	return requiredOf(l.Left, l.Right)
}
func (l LogicOp) Boolean() bool { return true }
func (l LogicOp) Depth() int {
	if l.Op == Not {
		return maxDepth(l.Left)
	}
	return maxDepth(l.Left, l.Right)
}

func (l LogicOp) Eval(table columnar.Table) (columnar.Column, error) {
	left, err := l.Left.Eval(table)
	if err != nil {
		return nil, err
	}
	n := left.Len()
	if l.Op == Not {
		out := make([]bool, n)
		valid := make([]bool, n)
		for i := 0; i < n; i++ {
			if left.IsNull(i) {
				continue
			}
			b, ok := left.At(i).(bool)
			if !ok {
				return nil, ErrTypeMismatch.New("not() requires a boolean operand")
			}
			out[i], valid[i] = !b, true
		}
		return &columnar.BoolColumn{Values: out, Valid: valid}, nil
	}

	right, err := l.Right.Eval(table)
	if err != nil {
		return nil, err
	}
	if right.Len() != n {
		return nil, ErrTypeMismatch.New("logic operand length mismatch")
	}
	out := make([]bool, n)
	valid := make([]bool, n)
	for i := 0; i < n; i++ {
		if left.IsNull(i) || right.IsNull(i) {
			continue
		}
		lb, lok := left.At(i).(bool)
		rb, rok := right.At(i).(bool)
		if !lok || !rok {
			return nil, ErrTypeMismatch.New("logic operand must be boolean")
		}
		if l.Op == And {
			out[i] = lb && rb
		} else {
			out[i] = lb || rb
		}
		valid[i] = true
	}
	return &columnar.BoolColumn{Values: out, Valid: valid}, nil
}
