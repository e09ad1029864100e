package sqlfront_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/colqhq/colq/columnar"
	"github.com/colqhq/colq/config"
	"github.com/colqhq/colq/engine"
	"github.com/colqhq/colq/sqlfront"
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

func TestParseSimpleSelect(t *testing.T) {
	q, err := sqlfront.Parse("SELECT id, amount FROM orders WHERE amount > 15")
	require.NoError(t, err)
	require.Equal(t, "orders", q.From)
	require.Len(t, q.Columns, 2)
	require.Len(t, q.Where, 1)
}

func TestTranslateFilterAndSelect(t *testing.T) {
	eng := engine.New(config.Default())
	require.NoError(t, eng.RegisterTable("orders", ordersTable(t)))

	q, err := sqlfront.Parse("SELECT id, amount FROM orders WHERE amount > 15")
	require.NoError(t, err)
	p, err := sqlfront.Translate(eng, q)
	require.NoError(t, err)

	out, err := p.Collect(context.Background(), false)
	require.NoError(t, err)
	require.Equal(t, 3, out.NumRows())
}

func TestTranslateAggregateWithHaving(t *testing.T) {
	eng := engine.New(config.Default())
	require.NoError(t, eng.RegisterTable("orders", ordersTable(t)))

	q, err := sqlfront.Parse("SELECT region, sum(amount) AS total FROM orders GROUP BY region HAVING total > 40")
	require.NoError(t, err)
	p, err := sqlfront.Translate(eng, q)
	require.NoError(t, err)

	out, err := p.Collect(context.Background(), false)
	require.NoError(t, err)
	require.Equal(t, 1, out.NumRows())
}
