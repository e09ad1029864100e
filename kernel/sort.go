package kernel

import (
	"sort"

	"github.com/colqhq/colq/columnar"
)

// SortIndices returns row indices that order table by keys, each
// ascending-or-descending per the matching entry in ascending. Ties
// break by subsequent keys, then original row order (a stable sort),
// matching plan.Order's "key, ascending" pair list (spec §3).
func SortIndices(table columnar.Table, keys []string, ascending []bool) ([]int, error) {
	cols := make([]columnar.Column, len(keys))
	for i, k := range keys {
		c, err := table.Column(k)
		if err != nil {
			return nil, err
		}
		cols[i] = c
	}
	n := table.NumRows()
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	less := func(a, b int) bool {
		for i, c := range cols {
			an, bn := c.IsNull(a), c.IsNull(b)
			if an != bn {
				return bn
			}
			if an {
				continue
			}
			cmp, err := Compare(c.At(a), c.At(b))
			if err != nil || cmp == 0 {
				continue
			}
			if ascending[i] {
				return cmp < 0
			}
			return cmp > 0
		}
		return a < b
	}
	sort.SliceStable(indices, func(i, j int) bool { return less(indices[i], indices[j]) })
	return indices, nil
}
