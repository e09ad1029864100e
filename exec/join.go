package exec

import (
	"context"

	"github.com/colqhq/colq/columnar"
	"github.com/colqhq/colq/kernel"
	"github.com/colqhq/colq/plan"
)

// materializeJoin evaluates an inner equi-join, first dropping any join
// key that both sides have reduced to one identical distinct value: such
// a key is trivially satisfied for every row pair, so comparing it again
// per candidate pair buys nothing (spec §4.3 point 2, testable property
// and scenario S1). Elimination only changes which columns JoinRows
// hashes on — it never changes which row pairs match.
func (e *Executor) materializeJoin(ctx context.Context, n *plan.Join) (columnar.Table, error) {
	left, err := e.Materialize(ctx, n.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.Materialize(ctx, n.Right)
	if err != nil {
		return nil, err
	}

	effective, err := eliminateRedundantKeys(left, right, n.On)
	if err != nil {
		return nil, err
	}

	leftCols := make([]string, len(effective))
	rightCols := make([]string, len(effective))
	for i, k := range effective {
		leftCols[i], rightCols[i] = k.Left, k.Right
	}
	pairs, err := kernel.JoinRows(left, right, leftCols, rightCols)
	if err != nil {
		return nil, err
	}

	result, err := buildJoinResult(left, right, pairs, n.ColumnsBackward())
	if err != nil {
		return nil, err
	}
	return kernel.ApplyFilters(result, n.Filters())
}

func eliminateRedundantKeys(left, right columnar.Table, keys []plan.JoinKey) ([]plan.JoinKey, error) {
	var effective []plan.JoinKey
	for _, k := range keys {
		lCol, err := left.Column(k.Left)
		if err != nil {
			return nil, err
		}
		rCol, err := right.Column(k.Right)
		if err != nil {
			return nil, err
		}
		lv, lok := kernel.SingleValue(lCol)
		rv, rok := kernel.SingleValue(rCol)
		if lok && rok {
			if eq, eqErr := kernel.Equal(lv, rv); eqErr == nil && eq {
				continue // both sides constant and identical: drop this key
			}
		}
		effective = append(effective, k)
	}
	return effective, nil
}

func buildJoinResult(left, right columnar.Table, pairs [][2]int, columns []string) (columnar.Table, error) {
	leftIdx := make([]int, len(pairs))
	rightIdx := make([]int, len(pairs))
	for i, p := range pairs {
		leftIdx[i], rightIdx[i] = p[0], p[1]
	}

	cols := make([]columnar.Column, len(columns))
	for i, name := range columns {
		if left.HasColumn(name) {
			c, err := left.Column(name)
			if err != nil {
				return nil, err
			}
			cols[i] = c.Take(leftIdx)
			continue
		}
		c, err := right.Column(name)
		if err != nil {
			return nil, err
		}
		cols[i] = c.Take(rightIdx)
	}
	return columnar.NewMemTable(columns, cols)
}
