package plan_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/colqhq/colq/columnar"
	"github.com/colqhq/colq/optimizer"
	"github.com/colqhq/colq/plan"
)

func sampleTable(t *testing.T) columnar.Table {
	t.Helper()
	tbl, err := columnar.NewMemTable([]string{"a", "b", "c"}, []columnar.Column{
		&columnar.Int64Column{Values: []int64{1, 2, 3}, Valid: []bool{true, true, true}},
		&columnar.Int64Column{Values: []int64{4, 5, 6}, Valid: []bool{true, true, true}},
		&columnar.StringColumn{Values: []string{"x", "y", "z"}, Valid: []bool{true, true, true}},
	})
	require.NoError(t, err)
	return tbl
}

// TestProjectionPushdown (scenario S2) asserts that selecting a subset
// of columns off a source narrows ColumnsBackward to exactly that
// subset after optimisation, rather than reading everything.
func TestProjectionPushdown(t *testing.T) {
	src := plan.NewTableSource("t", sampleTable(t))
	sel, err := plan.NewSelect(src, []string{"a"}, nil)
	require.NoError(t, err)

	_, err = optimizer.Optimize(sel)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"a"}, src.ColumnsBackward())
}

// TestFilterPushdownTransparency (scenario S5) asserts that a Filter
// wrapper pushed all the way to a source contributes no fingerprint of
// its own: the sink's fingerprint equals the source's.
func TestFilterPushdownTransparency(t *testing.T) {
	src := plan.NewTableSource("t", sampleTable(t))
	f, err := plan.NewFilter(src, []columnar.Predicate{{Column: "a", Op: columnar.Gt, Value: int64(1)}})
	require.NoError(t, err)

	sinkFP, err := optimizer.Optimize(f)
	require.NoError(t, err)
	require.Equal(t, src.Fingerprint(), sinkFP)
	require.Contains(t, src.Filters(), columnar.Predicate{Column: "a", Op: columnar.Gt, Value: int64(1)})
}

// TestAggregateHavingBarrier (scenario S3) asserts that a predicate on
// an aggregate's own output column is kept at the Aggregate node
// instead of being pushed into the source below it.
func TestAggregateHavingBarrier(t *testing.T) {
	src := plan.NewTableSource("t", sampleTable(t))
	agg, err := plan.NewAggregate(src, []string{"c"}, []plan.AggMethod{{Output: "total", Input: "a", Func: "sum"}})
	require.NoError(t, err)
	f, err := plan.NewFilter(agg, []columnar.Predicate{{Column: "total", Op: columnar.Gt, Value: int64(10)}})
	require.NoError(t, err)

	_, err = optimizer.Optimize(f)
	require.NoError(t, err)
	require.Contains(t, agg.Filters(), columnar.Predicate{Column: "total", Op: columnar.Gt, Value: int64(10)})
	require.Empty(t, src.Filters())
}

// TestCalculationBarrier (scenario S4) mirrors TestAggregateHavingBarrier
// for a calculated column: a predicate on the calculated key is stopped
// at the Calculation node.
func TestCalculationBarrier(t *testing.T) {
	src := plan.NewTableSource("t", sampleTable(t))
	calc, err := plan.NewCalculation(src, "double_a", "a*2", []string{"a"})
	require.NoError(t, err)
	f, err := plan.NewFilter(calc, []columnar.Predicate{{Column: "double_a", Op: columnar.Gt, Value: int64(2)}})
	require.NoError(t, err)

	_, err = optimizer.Optimize(f)
	require.NoError(t, err)
	require.Contains(t, calc.Filters(), columnar.Predicate{Column: "double_a", Op: columnar.Gt, Value: int64(2)})
	require.Empty(t, src.Filters())
}

func TestMissingColumnRejectedAtConstruction(t *testing.T) {
	src := plan.NewTableSource("t", sampleTable(t))
	_, err := plan.NewFilter(src, []columnar.Predicate{{Column: "nope", Op: columnar.Eq, Value: int64(1)}})
	require.Error(t, err)
	require.True(t, plan.ErrColumnMissing.Is(err))
}

func TestJoinRoutesPredicatesBySide(t *testing.T) {
	left := plan.NewTableSource("l", sampleTable(t))
	right := plan.NewTableSource("r", sampleTable(t))
	j, err := plan.NewJoin(left, right, []plan.JoinKey{{Left: "a", Right: "a"}})
	require.NoError(t, err)
	f, err := plan.NewFilter(j, []columnar.Predicate{{Column: "b", Op: columnar.Eq, Value: int64(5)}})
	require.NoError(t, err)

	_, err = optimizer.Optimize(f)
	require.NoError(t, err)
	require.Contains(t, left.Filters(), columnar.Predicate{Column: "b", Op: columnar.Eq, Value: int64(5)})
}
