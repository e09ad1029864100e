package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/colqhq/colq/columnar"
	"github.com/colqhq/colq/config"
	"github.com/colqhq/colq/engine"
	"github.com/colqhq/colq/expr"
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

func TestEngineSelectFilterCollect(t *testing.T) {
	e := engine.New(config.Default())
	require.NoError(t, e.RegisterTable("orders", ordersTable(t)))

	p, err := e.Select("orders")
	require.NoError(t, err)
	p, err = p.Filter(columnar.Predicate{Column: "amount", Op: columnar.Gt, Value: int64(15)})
	require.NoError(t, err)
	p, err = p.Select("id", "amount")
	require.NoError(t, err)

	out, err := p.Collect(context.Background(), false)
	require.NoError(t, err)
	require.Equal(t, 3, out.NumRows())
}

func TestEngineCalcAndUdf(t *testing.T) {
	e := engine.New(config.Default())
	require.NoError(t, e.RegisterTable("orders", ordersTable(t)))
	e.RegisterUDF("double", func(row []any) (any, error) {
		v, _ := row[0].(int64)
		return v * 2, nil
	})

	p, err := e.Select("orders")
	require.NoError(t, err)
	p, err = p.Calc("amount_plus_one", expr.BinOp{Op: expr.Add, Left: p.Column("amount"), Right: expr.Literal{Value: int64(1)}})
	require.NoError(t, err)
	p, err = p.Udf("amount_doubled", "double", "amount")
	require.NoError(t, err)

	out, err := p.Collect(context.Background(), false)
	require.NoError(t, err)
	require.True(t, out.HasColumn("amount_plus_one"))
	require.True(t, out.HasColumn("amount_doubled"))
}

func TestEngineJoinAndAggregate(t *testing.T) {
	e := engine.New(config.Default())
	require.NoError(t, e.RegisterTable("orders", ordersTable(t)))
	regions, err := columnar.NewMemTable([]string{"region", "manager"}, []columnar.Column{
		&columnar.StringColumn{Values: []string{"east", "west"}, Valid: []bool{true, true}},
		&columnar.StringColumn{Values: []string{"ann", "bo"}, Valid: []bool{true, true}},
	})
	require.NoError(t, err)
	require.NoError(t, e.RegisterTable("regions", regions))

	orders, err := e.Select("orders")
	require.NoError(t, err)
	regionsPlan, err := e.Select("regions")
	require.NoError(t, err)
	joined, err := orders.Join(regionsPlan, plan.JoinKey{Left: "region", Right: "region"})
	require.NoError(t, err)
	agg, err := joined.Aggregate([]string{"manager"}, plan.AggMethod{Output: "total", Input: "amount", Func: "sum"})
	require.NoError(t, err)

	out, err := agg.Collect(context.Background(), false)
	require.NoError(t, err)
	require.Equal(t, 2, out.NumRows())
}

func TestEngineUnknownTableRejected(t *testing.T) {
	e := engine.New(config.Default())
	_, err := e.Select("nope")
	require.Error(t, err)
	require.True(t, engine.ErrTableNotFound.Is(err))
}
