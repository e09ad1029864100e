package kernel

import (
	"strconv"

	"github.com/colqhq/colq/columnar"
)

// Cast converts col to kind, matching plan.Cast's "columns -> target
// type" mapping (spec §3). Values that fail to parse become null rather
// than erroring the whole column, since a cast over a full column is
// expected to tolerate ragged input the way pandas' astype(errors="coerce")
// does.
func Cast(col columnar.Column, kind columnar.Kind) (columnar.Column, error) {
	if col.Kind() == kind {
		return col, nil
	}
	n := col.Len()
	switch kind {
	case columnar.KindInt64:
		out := make([]int64, n)
		valid := make([]bool, n)
		for i := 0; i < n; i++ {
			if col.IsNull(i) {
				continue
			}
			v, ok := asInt64(col.At(i))
			out[i], valid[i] = v, ok
		}
		return &columnar.Int64Column{Values: out, Valid: valid}, nil
	case columnar.KindFloat64:
		out := make([]float64, n)
		valid := make([]bool, n)
		for i := 0; i < n; i++ {
			if col.IsNull(i) {
				continue
			}
			v, ok := asFloat64(col.At(i))
			out[i], valid[i] = v, ok
		}
		return &columnar.Float64Column{Values: out, Valid: valid}, nil
	case columnar.KindString:
		out := make([]string, n)
		valid := make([]bool, n)
		for i := 0; i < n; i++ {
			if col.IsNull(i) {
				continue
			}
			out[i], valid[i] = asString(col.At(i)), true
		}
		return &columnar.StringColumn{Values: out, Valid: valid}, nil
	case columnar.KindBool:
		out := make([]bool, n)
		valid := make([]bool, n)
		for i := 0; i < n; i++ {
			if col.IsNull(i) {
				continue
			}
			v, ok := asBool(col.At(i))
			out[i], valid[i] = v, ok
		}
		return &columnar.BoolColumn{Values: out, Valid: valid}, nil
	default:
		return nil, ErrKernelType.New("unsupported cast target")
	}
}

func asInt64(v any) (int64, bool) {
	switch t := v.(type) {
	case int64:
		return t, true
	case float64:
		return int64(t), true
	case string:
		i, err := strconv.ParseInt(t, 10, 64)
		return i, err == nil
	case bool:
		if t {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

func asFloat64(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int64:
		return float64(t), true
	case string:
		f, err := strconv.ParseFloat(t, 64)
		return f, err == nil
	}
	return 0, false
}

func asString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

func asBool(v any) (bool, bool) {
	switch t := v.(type) {
	case bool:
		return t, true
	case string:
		b, err := strconv.ParseBool(t)
		return b, err == nil
	case int64:
		return t != 0, true
	}
	return false, false
}
