package expr

import (
	"fmt"
	"math"

	"github.com/colqhq/colq/columnar"
)

// ArithOp names one elementwise numeric operator.
type ArithOp int

const (
	Add ArithOp = iota
	Sub
	Mul
	Div
	Pow
)

func (op ArithOp) String() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	case Pow:
		return "**"
	default:
		return "?"
	}
}

// BinOp applies an ArithOp elementwise across Left and Right, which
// must evaluate to numeric columns of equal length.
type BinOp struct {
	Op          ArithOp
	Left, Right Expr
}

func (b BinOp) Key() string        { return fmt.Sprintf("(%s %s %s)", b.Left.Key(), b.Op, b.Right.Key()) }
func (b BinOp) Required() []string { return requiredOf(b.Left, b.Right) }
func (b BinOp) Boolean() bool      { return false }
func (b BinOp) Depth() int         { return maxDepth(b.Left, b.Right) }

func (b BinOp) Eval(table columnar.Table) (columnar.Column, error) {
	left, err := b.Left.Eval(table)
	if err != nil {
		return nil, err
	}
	right, err := b.Right.Eval(table)
	if err != nil {
		return nil, err
	}
	if left.Len() != right.Len() {
		return nil, ErrTypeMismatch.New("operand length mismatch")
	}
	n := left.Len()
	out := make([]float64, n)
	valid := make([]bool, n)
	for i := 0; i < n; i++ {
		if left.IsNull(i) || right.IsNull(i) {
			continue
		}
		lv, lok := asFloat(left.At(i))
		rv, rok := asFloat(right.At(i))
		if !lok || !rok {
			return nil, ErrTypeMismatch.New(fmt.Sprintf("non-numeric operand at row %d", i))
		}
		out[i] = apply(b.Op, lv, rv)
		valid[i] = true
	}
	return &columnar.Float64Column{Values: out, Valid: valid}, nil
}

func apply(op ArithOp, a, b float64) float64 {
	switch op {
	case Add:
		return a + b
	case Sub:
		return a - b
	case Mul:
		return a * b
	case Div:
		return a / b
	case Pow:
		return math.Pow(a, b)
	default:
		return 0
	}
}

func asFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case int64:
		return float64(t), true
	case float64:
		return t, true
	default:
		return 0, false
	}
}

// Unary negates a numeric expression.
type Unary struct {
	Operand Expr
}

func (u Unary) Key() string        { return "neg(" + u.Operand.Key() + ")" }
func (u Unary) Required() []string { return u.Operand.Required() }
func (u Unary) Boolean() bool      { return false }
func (u Unary) Depth() int         { return maxDepth(u.Operand) }

func (u Unary) Eval(table columnar.Table) (columnar.Column, error) {
	col, err := u.Operand.Eval(table)
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
			return nil, ErrTypeMismatch.New("unary negation of non-numeric operand")
		}
		out[i], valid[i] = -v, true
	}
	return &columnar.Float64Column{Values: out, Valid: valid}, nil
}
