package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/colqhq/colq/columnar"
	"github.com/colqhq/colq/kernel"
)

func mustTable(t *testing.T, names []string, cols []columnar.Column) columnar.Table {
	t.Helper()
	tbl, err := columnar.NewMemTable(names, cols)
	require.NoError(t, err)
	return tbl
}

func TestApplyFiltersConjunctive(t *testing.T) {
	tbl := mustTable(t, []string{"a", "b"}, []columnar.Column{
		&columnar.Int64Column{Values: []int64{1, 2, 3, 4}, Valid: []bool{true, true, true, true}},
		&columnar.StringColumn{Values: []string{"x", "y", "x", "y"}, Valid: []bool{true, true, true, true}},
	})
	out, err := kernel.ApplyFilters(tbl, []columnar.Predicate{
		{Column: "a", Op: columnar.Gt, Value: int64(1)},
		{Column: "b", Op: columnar.Eq, Value: "y"},
	})
	require.NoError(t, err)
	require.Equal(t, 2, out.NumRows())
}

func TestSingleValueDetectsConstantColumn(t *testing.T) {
	col := &columnar.Int64Column{Values: []int64{7, 7, 7}, Valid: []bool{true, true, true}}
	v, ok := kernel.SingleValue(col)
	require.True(t, ok)
	require.Equal(t, int64(7), v)

	col2 := &columnar.Int64Column{Values: []int64{7, 8}, Valid: []bool{true, true}}
	_, ok2 := kernel.SingleValue(col2)
	require.False(t, ok2)
}

func TestJoinRowsEquiJoin(t *testing.T) {
	left := mustTable(t, []string{"id"}, []columnar.Column{
		&columnar.Int64Column{Values: []int64{1, 2, 3}, Valid: []bool{true, true, true}},
	})
	right := mustTable(t, []string{"id"}, []columnar.Column{
		&columnar.Int64Column{Values: []int64{2, 3, 3}, Valid: []bool{true, true, true}},
	})
	pairs, err := kernel.JoinRows(left, right, []string{"id"}, []string{"id"})
	require.NoError(t, err)
	require.Len(t, pairs, 3)
}

func TestGroupBySumAndCount(t *testing.T) {
	tbl := mustTable(t, []string{"grp", "val"}, []columnar.Column{
		&columnar.StringColumn{Values: []string{"a", "a", "b"}, Valid: []bool{true, true, true}},
		&columnar.Int64Column{Values: []int64{1, 2, 10}, Valid: []bool{true, true, true}},
	})
	out, err := kernel.GroupBy(tbl, []string{"grp"}, map[string]kernel.AggSpec{
		"total": {Input: "val", Func: kernel.AggSum},
		"n":     {Input: "val", Func: kernel.AggCount},
	})
	require.NoError(t, err)
	require.Equal(t, 2, out.NumRows())
}

func TestSortIndicesStableMultiKey(t *testing.T) {
	tbl := mustTable(t, []string{"a", "b"}, []columnar.Column{
		&columnar.Int64Column{Values: []int64{1, 1, 0}, Valid: []bool{true, true, true}},
		&columnar.Int64Column{Values: []int64{2, 1, 5}, Valid: []bool{true, true, true}},
	})
	idx, err := kernel.SortIndices(tbl, []string{"a", "b"}, []bool{true, true})
	require.NoError(t, err)
	require.Equal(t, []int{2, 1, 0}, idx)
}

func TestCastInt64ToString(t *testing.T) {
	col := &columnar.Int64Column{Values: []int64{1, 2}, Valid: []bool{true, true}}
	out, err := kernel.Cast(col, columnar.KindString)
	require.NoError(t, err)
	require.Equal(t, "1", out.At(0))
}

func TestCastStringToInt64CoercesInvalidToNull(t *testing.T) {
	col := &columnar.StringColumn{Values: []string{"3", "nope"}, Valid: []bool{true, true}}
	out, err := kernel.Cast(col, columnar.KindInt64)
	require.NoError(t, err)
	require.False(t, out.IsNull(0))
	require.True(t, out.IsNull(1))
}
