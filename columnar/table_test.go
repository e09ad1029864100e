package columnar_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/colqhq/colq/columnar"
)

func sampleTable(t *testing.T) columnar.Table {
	t.Helper()
	tbl, err := columnar.NewMemTable(
		[]string{"k", "v"},
		[]columnar.Column{
			columnar.NewInt64Column([]int64{1, 2, 3}),
			columnar.NewStringColumn([]string{"a", "b", "c"}),
		},
	)
	require.NoError(t, err)
	return tbl
}

func TestMemTableProjectAndFilter(t *testing.T) {
	tbl := sampleTable(t)
	require.Equal(t, 3, tbl.NumRows())

	projected, err := tbl.Project([]string{"k"})
	require.NoError(t, err)
	require.Equal(t, []string{"k"}, projected.ColumnNames())

	filtered, err := tbl.Filter([]bool{true, false, true})
	require.NoError(t, err)
	require.Equal(t, 2, filtered.NumRows())
	col, err := filtered.Column("v")
	require.NoError(t, err)
	require.Equal(t, "a", col.At(0))
	require.Equal(t, "c", col.At(1))
}

func TestMemTableTakeAppendRenameDrop(t *testing.T) {
	tbl := sampleTable(t)

	taken, err := tbl.Take([]int{2, 0})
	require.NoError(t, err)
	kcol, _ := taken.Column("k")
	require.Equal(t, int64(3), kcol.At(0))
	require.Equal(t, int64(1), kcol.At(1))

	appended, err := tbl.AppendColumn("k2", columnar.NewInt64Column([]int64{10, 20, 30}))
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"k", "v", "k2"}, appended.ColumnNames())

	renamed, err := tbl.RenameColumns(map[string]string{"k": "key"})
	require.NoError(t, err)
	require.True(t, renamed.HasColumn("key"))
	require.False(t, renamed.HasColumn("k"))

	dropped, err := tbl.DropColumns([]string{"v"})
	require.NoError(t, err)
	require.False(t, dropped.HasColumn("v"))
}

func TestMemTableShapeMismatch(t *testing.T) {
	_, err := columnar.NewMemTable([]string{"a"}, []columnar.Column{
		columnar.NewInt64Column([]int64{1, 2}),
		columnar.NewInt64Column([]int64{1}),
	})
	require.Error(t, err)
}

func TestDictColumnMinMaxFriendly(t *testing.T) {
	dict := []any{"x", "y"}
	col := columnar.NewDictColumn(dict, []int{0, 1, 0}, columnar.KindString)
	require.Equal(t, "x", col.At(0))
	require.Equal(t, "y", col.At(1))
	taken := col.Take([]int{1, 2})
	require.Equal(t, 2, taken.Len())
}

func TestStructColumnFieldAccess(t *testing.T) {
	sc := columnar.NewStructColumn(
		[]string{"b"},
		map[string]columnar.Column{"b": columnar.NewInt64Column([]int64{1, 2})},
		2,
	)
	field, err := sc.Field("b")
	require.NoError(t, err)
	require.Equal(t, int64(1), field.At(0))

	_, err = sc.Field("missing")
	require.True(t, columnar.ErrColumnNotFound.Is(err))
}
