package dataset

import (
	"fmt"
	"strconv"

	"github.com/colqhq/colq/columnar"
	"github.com/colqhq/colq/kernel"
)

// castLike casts v to the dynamic type of target, the same coercion
// part_check applies before comparing a directory-derived partition
// value against a predicate's literal (spec §4.2 DatasetSource, §7
// "fatal error... type cast of a partition value fails").
func castLike(v any, target any) (any, error) {
	switch target.(type) {
	case int64:
		switch t := v.(type) {
		case int64:
			return t, nil
		case float64:
			return int64(t), nil
		case string:
			i, err := strconv.ParseInt(t, 10, 64)
			if err != nil {
				return nil, err
			}
			return i, nil
		}
	case float64:
		switch t := v.(type) {
		case float64:
			return t, nil
		case int64:
			return float64(t), nil
		case string:
			f, err := strconv.ParseFloat(t, 64)
			if err != nil {
				return nil, err
			}
			return f, nil
		}
	case bool:
		switch t := v.(type) {
		case bool:
			return t, nil
		case string:
			b, err := strconv.ParseBool(t)
			if err != nil {
				return nil, err
			}
			return b, nil
		}
	case string:
		return fmt.Sprintf("%v", v), nil
	}
	return nil, fmt.Errorf("no cast path from %T to %T", v, target)
}

// evalOp evaluates a single scalar comparison. Only the operators
// meaningful against a partition's single scalar value are supported;
// In/NotIn treat Value as a []any per columnar.Predicate's contract.
func evalOp(v any, op columnar.Op, target any) (bool, error) {
	switch op {
	case columnar.In, columnar.NotIn:
		list, ok := target.([]any)
		if !ok {
			return false, columnar.ErrTypeMismatch.New("In/NotIn requires a list value")
		}
		found := false
		for _, item := range list {
			cast, err := castLike(v, item)
			if err == nil {
				if eq, eqErr := kernel.Equal(cast, item); eqErr == nil && eq {
					found = true
					break
				}
			}
		}
		if op == columnar.NotIn {
			return !found, nil
		}
		return found, nil
	}

	cmp, err := kernel.Compare(v, target)
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

