// Package colfile is the tiny on-disk column format used by
// dataset.LocalDataset: one JSON file per column, legible and trivial to
// generate in tests, standing in for the real "columnar files readable
// column-by-column" format spec §6 describes at the interface level.
package colfile

import (
	"encoding/json"
	"os"

	"github.com/colqhq/colq/columnar"
)

// Schema is the per-piece column manifest, spec §3's "per-piece schema
// of non-partition columns" — discoverable without opening a data file.
type Schema struct {
	Columns []ColumnMeta `json:"columns"`
}

type ColumnMeta struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
}

func kindName(k columnar.Kind) string {
	switch k {
	case columnar.KindInt64:
		return "int64"
	case columnar.KindFloat64:
		return "float64"
	case columnar.KindString:
		return "string"
	case columnar.KindBool:
		return "bool"
	default:
		return "string"
	}
}

// WriteSchema writes the piece manifest.
func WriteSchema(path string, schema Schema) error {
	b, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// ReadSchema reads a piece manifest.
func ReadSchema(path string) (Schema, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Schema{}, err
	}
	var s Schema
	if err := json.Unmarshal(b, &s); err != nil {
		return Schema{}, err
	}
	return s, nil
}

type columnFile struct {
	Kind   string   `json:"kind"`
	Ints   []int64  `json:"ints,omitempty"`
	Floats []float64 `json:"floats,omitempty"`
	Strs   []string `json:"strs,omitempty"`
	Bools  []bool   `json:"bools,omitempty"`
	Valid  []bool   `json:"valid,omitempty"`
}

// WriteColumn writes one column's worth of values to path.
func WriteColumn(path string, col columnar.Column) error {
	cf := columnFile{Kind: kindName(col.Kind())}
	n := col.Len()
	switch col.Kind() {
	case columnar.KindInt64:
		cf.Ints = make([]int64, n)
	case columnar.KindFloat64:
		cf.Floats = make([]float64, n)
	case columnar.KindString:
		cf.Strs = make([]string, n)
	case columnar.KindBool:
		cf.Bools = make([]bool, n)
	}
	var valid []bool
	for i := 0; i < n; i++ {
		if col.IsNull(i) {
			if valid == nil {
				valid = make([]bool, n)
				for j := 0; j < i; j++ {
					valid[j] = true
				}
			}
			valid[i] = false
			continue
		}
		if valid != nil {
			valid[i] = true
		}
		v := col.At(i)
		switch col.Kind() {
		case columnar.KindInt64:
			cf.Ints[i] = v.(int64)
		case columnar.KindFloat64:
			cf.Floats[i] = v.(float64)
		case columnar.KindString:
			cf.Strs[i] = v.(string)
		case columnar.KindBool:
			cf.Bools[i] = v.(bool)
		}
	}
	cf.Valid = valid

	b, err := json.Marshal(cf)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// ReadColumn reads one column's worth of values from path.
func ReadColumn(path string) (columnar.Column, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cf columnFile
	if err := json.Unmarshal(b, &cf); err != nil {
		return nil, err
	}
	switch cf.Kind {
	case "int64":
		return &columnar.Int64Column{Values: cf.Ints, Valid: cf.Valid}, nil
	case "float64":
		return &columnar.Float64Column{Values: cf.Floats, Valid: cf.Valid}, nil
	case "bool":
		return &columnar.BoolColumn{Values: cf.Bools, Valid: cf.Valid}, nil
	default:
		return &columnar.StringColumn{Values: cf.Strs, Valid: cf.Valid}, nil
	}
}
