package kernel

import (
	"math"
	"sort"

	"github.com/colqhq/colq/columnar"
)

// AggFunc names a reduction available to plan.Aggregate (spec §3
// "methods: map of output column -> (input column, aggregate function
// name)").
type AggFunc string

const (
	AggSum   AggFunc = "sum"
	AggMean  AggFunc = "mean"
	AggMin   AggFunc = "min"
	AggMax   AggFunc = "max"
	AggCount AggFunc = "count"
)

// AggSpec is one output column's reduction.
type AggSpec struct {
	Output AggFunc
	Input  string
	Func   AggFunc
}

// GroupBy partitions table by the values of by and reduces each group
// per specs, returning one row per group. Groups are emitted in
// ascending order of their encoded key string (formatKey per by
// column), so numeric group keys are ordered as text, not by value.
func GroupBy(table columnar.Table, by []string, specs map[string]AggSpec) (columnar.Table, error) {
	byCols := make([]columnar.Column, len(by))
	for i, name := range by {
		c, err := table.Column(name)
		if err != nil {
			return nil, err
		}
		byCols[i] = c
	}

	order := []string{}
	groups := map[string][]int{}
	for row := 0; row < table.NumRows(); row++ {
		k, ok := rowKey(byCols, row)
		if !ok {
			continue
		}
		if _, seen := groups[k]; !seen {
			order = append(order, k)
		}
		groups[k] = append(groups[k], row)
	}
	sort.Strings(order)

	names := append(append([]string{}, by...))
	outNames := make([]string, 0, len(specs))
	for out := range specs {
		outNames = append(outNames, out)
	}
	sort.Strings(outNames)
	names = append(names, outNames...)

	cols := make(map[string][]any, len(names))
	for _, n := range names {
		cols[n] = make([]any, 0, len(order))
	}

	for _, k := range order {
		rows := groups[k]
		first := rows[0]
		for i, name := range by {
			cols[name] = append(cols[name], byCols[i].At(first))
		}
		for _, out := range outNames {
			spec := specs[out]
			inCol, err := table.Column(spec.Input)
			if err != nil {
				return nil, err
			}
			v, err := reduce(inCol, rows, spec.Func)
			if err != nil {
				return nil, err
			}
			cols[out] = append(cols[out], v)
		}
	}

	allNames := append(append([]string{}, by...), outNames...)
	outCols := make([]columnar.Column, len(allNames))
	for i, name := range allNames {
		outCols[i] = toColumn(cols[name])
	}
	return columnar.NewMemTable(allNames, outCols)
}

func reduce(col columnar.Column, rows []int, fn AggFunc) (any, error) {
	if fn == AggCount {
		n := 0
		for _, r := range rows {
			if !col.IsNull(r) {
				n++
			}
		}
		return int64(n), nil
	}
	var sum float64
	var count int
	min, max := math.Inf(1), math.Inf(-1)
	for _, r := range rows {
		if col.IsNull(r) {
			continue
		}
		f, err := toFloat(col.At(r))
		if err != nil {
			return nil, err
		}
		sum += f
		count++
		if f < min {
			min = f
		}
		if f > max {
			max = f
		}
	}
	switch fn {
	case AggSum:
		return sum, nil
	case AggMean:
		if count == 0 {
			return 0.0, nil
		}
		return sum / float64(count), nil
	case AggMin:
		return min, nil
	case AggMax:
		return max, nil
	default:
		return nil, ErrKernelType.New(string(fn))
	}
}

func toColumn(values []any) columnar.Column {
	if len(values) == 0 {
		return &columnar.StringColumn{}
	}
	switch values[0].(type) {
	case int64:
		out := make([]int64, len(values))
		for i, v := range values {
			out[i] = v.(int64)
		}
		return &columnar.Int64Column{Values: out, Valid: allValid(len(values))}
	case float64:
		out := make([]float64, len(values))
		for i, v := range values {
			out[i] = v.(float64)
		}
		return &columnar.Float64Column{Values: out, Valid: allValid(len(values))}
	case bool:
		out := make([]bool, len(values))
		for i, v := range values {
			out[i] = v.(bool)
		}
		return &columnar.BoolColumn{Values: out, Valid: allValid(len(values))}
	default:
		out := make([]string, len(values))
		for i, v := range values {
			out[i] = v.(string)
		}
		return &columnar.StringColumn{Values: out, Valid: allValid(len(values))}
	}
}

func allValid(n int) []bool {
	v := make([]bool, n)
	for i := range v {
		v[i] = true
	}
	return v
}
