package dataset_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/colqhq/colq/columnar"
	"github.com/colqhq/colq/dataset"
)

func TestLocalDatasetRoundTrip(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, dataset.WritePiece(root, []string{"region"}, map[string]any{"region": "east"},
		[]string{"amount"}, []columnar.Column{
			&columnar.Int64Column{Values: []int64{1, 2, 3}, Valid: []bool{true, true, true}},
		}))
	require.NoError(t, dataset.WritePiece(root, []string{"region"}, map[string]any{"region": "west"},
		[]string{"amount"}, []columnar.Column{
			&columnar.Int64Column{Values: []int64{10, 20}, Valid: []bool{true, true}},
		}))

	ds, err := dataset.OpenLocalDataset(root)
	require.NoError(t, err)
	require.Equal(t, []string{"region"}, ds.PartitionKeys())
	require.Len(t, ds.Pieces(), 2)

	for _, p := range ds.Pieces() {
		ok, err := dataset.CheckPartition(p.PartitionValues(), []columnar.Predicate{
			{Column: "region", Op: columnar.Eq, Value: "east"},
		})
		require.NoError(t, err)
		if ok {
			tbl, err := p.Read(context.Background(), nil)
			require.NoError(t, err)
			require.Equal(t, 3, tbl.NumRows())
		}
	}
}

func TestCheckPartitionCastFailure(t *testing.T) {
	_, err := dataset.CheckPartition(map[string]any{"year": "notanumber"}, []columnar.Predicate{
		{Column: "year", Op: columnar.Eq, Value: int64(2024)},
	})
	require.Error(t, err)
}
