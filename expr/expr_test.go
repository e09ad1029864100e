package expr_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/colqhq/colq/columnar"
	"github.com/colqhq/colq/expr"
)

func tableAB(t *testing.T) columnar.Table {
	t.Helper()
	tbl, err := columnar.NewMemTable([]string{"a", "b"}, []columnar.Column{
		&columnar.Int64Column{Values: []int64{1, 2, 3}, Valid: []bool{true, true, false}},
		&columnar.Int64Column{Values: []int64{10, 20, 30}, Valid: []bool{true, true, true}},
	})
	require.NoError(t, err)
	return tbl
}

func TestBinOpAddition(t *testing.T) {
	tbl := tableAB(t)
	e := expr.BinOp{Op: expr.Add, Left: expr.ColumnRef{Name: "a"}, Right: expr.ColumnRef{Name: "b"}}
	col, err := e.Eval(tbl)
	require.NoError(t, err)
	require.Equal(t, 11.0, col.At(0))
	require.True(t, col.IsNull(2))
}

func TestCmpOpProducesBooleanColumn(t *testing.T) {
	tbl := tableAB(t)
	e := expr.CmpOp{Op: expr.CmpGt, Left: expr.ColumnRef{Name: "b"}, Right: expr.Literal{Value: int64(15)}}
	col, err := e.Eval(tbl)
	require.NoError(t, err)
	require.True(t, e.Boolean())
	require.Equal(t, false, col.At(0))
	require.Equal(t, true, col.At(1))
}

func TestFillNullReplacesOnlyNulls(t *testing.T) {
	tbl := tableAB(t)
	e := expr.FillNull{Operand: expr.ColumnRef{Name: "a"}, With: expr.Literal{Value: int64(-1)}}
	col, err := e.Eval(tbl)
	require.NoError(t, err)
	require.Equal(t, int64(1), col.At(0))
	require.Equal(t, int64(-1), col.At(2))
}

func TestCoalesceFirstNonNull(t *testing.T) {
	tbl := tableAB(t)
	e, err := expr.NewCoalesce(expr.ColumnRef{Name: "a"}, expr.ColumnRef{Name: "b"})
	require.NoError(t, err)
	col, evalErr := e.Eval(tbl)
	require.NoError(t, evalErr)
	require.Equal(t, int64(30), col.At(2))
}

func TestExtremumRequiresTwoOperands(t *testing.T) {
	_, err := expr.NewExtremum(expr.Greatest, expr.ColumnRef{Name: "a"})
	require.Error(t, err)
	require.True(t, expr.ErrArityMismatch.Is(err))
}

func TestStructFieldMissingColumn(t *testing.T) {
	tbl := tableAB(t)
	e := expr.StructField{Base: "nope", Field: "x"}
	_, err := e.Eval(tbl)
	require.Error(t, err)
	require.True(t, expr.ErrRefMissing.Is(err))
}

func TestDepthAccumulatesAcrossNesting(t *testing.T) {
	inner := expr.BinOp{Op: expr.Add, Left: expr.ColumnRef{Name: "a"}, Right: expr.Literal{Value: int64(1)}}
	outer := expr.BinOp{Op: expr.Mul, Left: inner, Right: expr.Literal{Value: int64(2)}}
	require.Equal(t, 2, inner.Depth())
	require.Equal(t, 3, outer.Depth())
}
