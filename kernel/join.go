package kernel

import "github.com/colqhq/colq/columnar"

// DistinctValues returns the set of distinct non-null values in col, up
// to limit entries; it returns ok=false once the limit is exceeded. The
// executor's redundant join-key elimination (spec §4.3 point 2) only
// needs to know whether a side has exactly one distinct value, so a
// small limit keeps this cheap on wide columns.
func DistinctValues(col columnar.Column, limit int) (values []any, ok bool) {
	seen := make([]any, 0, limit+1)
	for i := 0; i < col.Len(); i++ {
		if col.IsNull(i) {
			continue
		}
		v := col.At(i)
		found := false
		for _, s := range seen {
			if eq, err := Equal(s, v); err == nil && eq {
				found = true
				break
			}
		}
		if !found {
			seen = append(seen, v)
			if len(seen) > limit {
				return nil, false
			}
		}
	}
	return seen, true
}

// SingleValue reports whether col holds exactly one distinct non-null
// value across all rows, returning it. Used to decide whether a join
// key can be dropped from the join condition (spec §4.3 point 2 and
// testable property/scenario S1): both sides must independently reduce
// to one identical value.
func SingleValue(col columnar.Column) (value any, ok bool) {
	values, within := DistinctValues(col, 1)
	if !within || len(values) != 1 {
		return nil, false
	}
	return values[0], true
}

// JoinRows computes the row-index pairs (left row, right row) satisfying
// an equi-join condition of paired column names. left/right hold the
// join columns aligned by position.
func JoinRows(left, right columnar.Table, leftCols, rightCols []string) ([][2]int, error) {
	if len(leftCols) != len(rightCols) {
		return nil, ErrKernelShape.New("join column count mismatch")
	}
	lCols := make([]columnar.Column, len(leftCols))
	rCols := make([]columnar.Column, len(rightCols))
	for i, name := range leftCols {
		c, err := left.Column(name)
		if err != nil {
			return nil, err
		}
		lCols[i] = c
	}
	for i, name := range rightCols {
		c, err := right.Column(name)
		if err != nil {
			return nil, err
		}
		rCols[i] = c
	}

	index := make(map[string][]int, right.NumRows())
	for ri := 0; ri < right.NumRows(); ri++ {
		k, ok := rowKey(rCols, ri)
		if !ok {
			continue
		}
		index[k] = append(index[k], ri)
	}

	var pairs [][2]int
	for li := 0; li < left.NumRows(); li++ {
		k, ok := rowKey(lCols, li)
		if !ok {
			continue
		}
		for _, ri := range index[k] {
			pairs = append(pairs, [2]int{li, ri})
		}
	}
	return pairs, nil
}

func rowKey(cols []columnar.Column, row int) (string, bool) {
	out := ""
	for _, c := range cols {
		if c.IsNull(row) {
			return "", false
		}
		out += formatKey(c.At(row)) + "\x1f"
	}
	return out, true
}
