// Package kernel holds the reference scalar/vector kernels spec §1 calls
// out as external collaborators specified at the contract level only:
// predicate evaluation, join-key comparison, group-by aggregation, sort
// ordering and type casting. None of this needs to be fast; it needs to
// be obviously correct so the plan/optimizer/exec packages above it can
// be tested against a ground truth.
package kernel

import (
	"fmt"

	"github.com/colqhq/colq/columnar"
)

// EvalMask evaluates a single predicate against table, returning one
// boolean per row. A null operand makes the row false for every
// operator except the predicate's own null checks (none are currently
// defined in columnar.Op, matching spec's omission of IS NULL from the
// predicate grammar).
func EvalMask(table columnar.Table, pred columnar.Predicate) ([]bool, error) {
	col, err := table.Column(pred.Column)
	if err != nil {
		return nil, err
	}
	mask := make([]bool, col.Len())
	for i := 0; i < col.Len(); i++ {
		if col.IsNull(i) {
			mask[i] = false
			continue
		}
		ok, err := evalOp(col.At(i), pred.Op, pred.Value)
		if err != nil {
			return nil, err
		}
		mask[i] = ok
	}
	return mask, nil
}

// ApplyFilters evaluates every predicate and keeps rows where all of
// them hold (conjunctive semantics, matching how plan.Node.Filters is
// always interpreted as an AND-list per spec §3).
func ApplyFilters(table columnar.Table, preds []columnar.Predicate) (columnar.Table, error) {
	if len(preds) == 0 {
		return table, nil
	}
	n := table.NumRows()
	keep := make([]bool, n)
	for i := range keep {
		keep[i] = true
	}
	for _, p := range preds {
		mask, err := EvalMask(table, p)
		if err != nil {
			return nil, err
		}
		for i, ok := range mask {
			keep[i] = keep[i] && ok
		}
	}
	indices := make([]int, 0, n)
	for i, ok := range keep {
		if ok {
			indices = append(indices, i)
		}
	}
	return table.Take(indices)
}

func evalOp(v any, op columnar.Op, target any) (bool, error) {
	switch op {
	case columnar.In, columnar.NotIn:
		list, ok := target.([]any)
		if !ok {
			return false, ErrKernelType.New("In/NotIn requires a list value")
		}
		found := false
		for _, item := range list {
			if eq, err := Equal(v, item); err == nil && eq {
				found = true
				break
			}
		}
		if op == columnar.NotIn {
			return !found, nil
		}
		return found, nil
	}

	cmp, err := Compare(v, target)
	if err != nil {
		return false, err
	}
	switch op {
	case columnar.Eq:
		return cmp == 0, nil
	case columnar.Ne:
		return cmp != 0, nil
	case columnar.Lt:
		return cmp < 0, nil
	case columnar.Le:
		return cmp <= 0, nil
	case columnar.Gt:
		return cmp > 0, nil
	case columnar.Ge:
		return cmp >= 0, nil
	default:
		return false, columnar.ErrUnsupportedOp.New(op.String())
	}
}

// Equal reports scalar equality across Go's numeric/string/bool kinds,
// the same loose-but-deterministic comparison EvalMask needs for In/NotIn.
func Equal(a, b any) (bool, error) {
	cmp, err := Compare(a, b)
	if err != nil {
		return false, err
	}
	return cmp == 0, nil
}

// Compare orders two scalars, promoting int64/float64 to a common type.
func Compare(a, b any) (int, error) {
	switch x := a.(type) {
	case int64:
		y, err := toFloat(b)
		if err != nil {
			return 0, err
		}
		return cmpFloat(float64(x), y), nil
	case float64:
		y, err := toFloat(b)
		if err != nil {
			return 0, err
		}
		return cmpFloat(x, y), nil
	case string:
		y, ok := b.(string)
		if !ok {
			return 0, ErrKernelType.New(fmt.Sprintf("cannot compare string to %T", b))
		}
		switch {
		case x < y:
			return -1, nil
		case x > y:
			return 1, nil
		default:
			return 0, nil
		}
	case bool:
		y, ok := b.(bool)
		if !ok {
			return 0, ErrKernelType.New(fmt.Sprintf("cannot compare bool to %T", b))
		}
		if x == y {
			return 0, nil
		}
		if x {
			return 1, nil
		}
		return -1, nil
	default:
		return 0, ErrKernelType.New(fmt.Sprintf("unsupported comparison operand %T", a))
	}
}

func toFloat(v any) (float64, error) {
	switch t := v.(type) {
	case int64:
		return float64(t), nil
	case float64:
		return t, nil
	default:
		return 0, ErrKernelType.New(fmt.Sprintf("cannot compare numeric to %T", v))
	}
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
