package exec

import "github.com/colqhq/colq/columnar"

// concatTables stacks same-schema tables row-wise, used by DatasetSource
// execution to combine the pieces surviving partition pruning (spec
// §4.4: "concatenate" after reading the selected pieces).
func concatTables(tables []columnar.Table) (columnar.Table, error) {
	if len(tables) == 0 {
		return columnar.NewMemTable(nil, nil)
	}
	names := tables[0].ColumnNames()
	cols := make([]columnar.Column, len(names))
	for i, name := range names {
		values := []any{}
		valid := []bool{}
		for _, t := range tables {
			c, err := t.Column(name)
			if err != nil {
				return nil, err
			}
			for r := 0; r < c.Len(); r++ {
				if c.IsNull(r) {
					values = append(values, nil)
					valid = append(valid, false)
				} else {
					values = append(values, c.At(r))
					valid = append(valid, true)
				}
			}
		}
		cols[i] = columnFromValues(values, valid)
	}
	return columnar.NewMemTable(names, cols)
}

// columnFromValues builds a typed Column from boxed values, inferring
// kind from the first valid entry and defaulting to string for an
// all-null run.
func columnFromValues(values []any, valid []bool) columnar.Column {
	n := len(values)
	kind := columnar.KindString
	for i, ok := range valid {
		if ok {
			switch values[i].(type) {
			case int64:
				kind = columnar.KindInt64
			case float64:
				kind = columnar.KindFloat64
			case bool:
				kind = columnar.KindBool
			}
			break
		}
	}
	switch kind {
	case columnar.KindInt64:
		out := make([]int64, n)
		for i, ok := range valid {
			if ok {
				out[i] = values[i].(int64)
			}
		}
		return &columnar.Int64Column{Values: out, Valid: valid}
	case columnar.KindFloat64:
		out := make([]float64, n)
		for i, ok := range valid {
			if ok {
				out[i] = values[i].(float64)
			}
		}
		return &columnar.Float64Column{Values: out, Valid: valid}
	case columnar.KindBool:
		out := make([]bool, n)
		for i, ok := range valid {
			if ok {
				out[i] = values[i].(bool)
			}
		}
		return &columnar.BoolColumn{Values: out, Valid: valid}
	default:
		out := make([]string, n)
		for i, ok := range valid {
			if ok {
				if s, isStr := values[i].(string); isStr {
					out[i] = s
				}
			}
		}
		return &columnar.StringColumn{Values: out, Valid: valid}
	}
}
