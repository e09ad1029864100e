package exec_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/colqhq/colq/columnar"
	"github.com/colqhq/colq/exec"
	"github.com/colqhq/colq/optimizer"
	"github.com/colqhq/colq/plan"
)

func ordersTable(t *testing.T) columnar.Table {
	t.Helper()
	tbl, err := columnar.NewMemTable([]string{"id", "amount", "region"}, []columnar.Column{
		&columnar.Int64Column{Values: []int64{1, 2, 3, 4}, Valid: []bool{true, true, true, true}},
		&columnar.Int64Column{Values: []int64{10, 20, 30, 40}, Valid: []bool{true, true, true, true}},
		&columnar.StringColumn{Values: []string{"east", "east", "west", "west"}, Valid: []bool{true, true, true, true}},
	})
	require.NoError(t, err)
	return tbl
}

func newExecutor() *exec.Executor {
	return exec.New(1<<20, nil)
}

func TestMaterializeFilterAndSelect(t *testing.T) {
	src := plan.NewTableSource("orders", ordersTable(t))
	f, err := plan.NewFilter(src, []columnar.Predicate{{Column: "amount", Op: columnar.Gt, Value: int64(15)}})
	require.NoError(t, err)
	sel, err := plan.NewSelect(f, []string{"id", "amount"}, nil)
	require.NoError(t, err)
	_, err = optimizer.Optimize(sel)
	require.NoError(t, err)

	out, err := newExecutor().Materialize(context.Background(), sel)
	require.NoError(t, err)
	require.Equal(t, 3, out.NumRows())
	require.ElementsMatch(t, []string{"id", "amount"}, out.ColumnNames())
}

func TestMaterializeJoinWithRedundantKeyElimination(t *testing.T) {
	left, err := columnar.NewMemTable([]string{"id", "region"}, []columnar.Column{
		&columnar.Int64Column{Values: []int64{1, 2}, Valid: []bool{true, true}},
		&columnar.StringColumn{Values: []string{"east", "east"}, Valid: []bool{true, true}},
	})
	require.NoError(t, err)
	right, err := columnar.NewMemTable([]string{"id", "region", "label"}, []columnar.Column{
		&columnar.Int64Column{Values: []int64{1, 2}, Valid: []bool{true, true}},
		&columnar.StringColumn{Values: []string{"east", "east"}, Valid: []bool{true, true}},
		&columnar.StringColumn{Values: []string{"a", "b"}, Valid: []bool{true, true}},
	})
	require.NoError(t, err)

	l := plan.NewTableSource("l", left)
	r := plan.NewTableSource("r", right)
	j, err := plan.NewJoin(l, r, []plan.JoinKey{{Left: "id", Right: "id"}, {Left: "region", Right: "region"}})
	require.NoError(t, err)
	_, err = optimizer.Optimize(j)
	require.NoError(t, err)

	out, err := newExecutor().Materialize(context.Background(), j)
	require.NoError(t, err)
	require.Equal(t, 2, out.NumRows())
}

func TestMaterializeAggregateWithHaving(t *testing.T) {
	src := plan.NewTableSource("orders", ordersTable(t))
	agg, err := plan.NewAggregate(src, []string{"region"}, []plan.AggMethod{{Output: "total", Input: "amount", Func: "sum"}})
	require.NoError(t, err)
	f, err := plan.NewFilter(agg, []columnar.Predicate{{Column: "total", Op: columnar.Gt, Value: 40.0}})
	require.NoError(t, err)
	_, err = optimizer.Optimize(f)
	require.NoError(t, err)

	out, err := newExecutor().Materialize(context.Background(), f)
	require.NoError(t, err)
	require.Equal(t, 1, out.NumRows())
}

func TestMaterializeCachesByFingerprint(t *testing.T) {
	src := plan.NewTableSource("orders", ordersTable(t))
	_, err := optimizer.Optimize(src)
	require.NoError(t, err)

	e := newExecutor()
	first, err := e.Materialize(context.Background(), src)
	require.NoError(t, err)
	second, ok := e.Cache.Get(src.Fingerprint().String())
	require.True(t, ok)
	require.Equal(t, first.NumRows(), second.NumRows())
}
