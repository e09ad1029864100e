package columnar

// Int64Column is a flat array of int64 with a parallel null bitmap.
type Int64Column struct {
	Values []int64
	Valid  []bool // nil means no nulls
}

func NewInt64Column(values []int64) *Int64Column { return &Int64Column{Values: values} }

func (c *Int64Column) Kind() Kind { return KindInt64 }
func (c *Int64Column) Len() int   { return len(c.Values) }
func (c *Int64Column) IsNull(i int) bool {
	return c.Valid != nil && !c.Valid[i]
}
func (c *Int64Column) At(i int) any {
	if c.IsNull(i) {
		return nil
	}
	return c.Values[i]
}
func (c *Int64Column) Take(indices []int) Column {
	vals := make([]int64, len(indices))
	var valid []bool
	if c.Valid != nil {
		valid = make([]bool, len(indices))
	}
	for j, idx := range indices {
		vals[j] = c.Values[idx]
		if valid != nil {
			valid[j] = c.Valid[idx]
		}
	}
	return &Int64Column{Values: vals, Valid: valid}
}

// Float64Column is a flat array of float64 with a parallel null bitmap.
type Float64Column struct {
	Values []float64
	Valid  []bool
}

func NewFloat64Column(values []float64) *Float64Column { return &Float64Column{Values: values} }

func (c *Float64Column) Kind() Kind { return KindFloat64 }
func (c *Float64Column) Len() int   { return len(c.Values) }
func (c *Float64Column) IsNull(i int) bool {
	return c.Valid != nil && !c.Valid[i]
}
func (c *Float64Column) At(i int) any {
	if c.IsNull(i) {
		return nil
	}
	return c.Values[i]
}
func (c *Float64Column) Take(indices []int) Column {
	vals := make([]float64, len(indices))
	var valid []bool
	if c.Valid != nil {
		valid = make([]bool, len(indices))
	}
	for j, idx := range indices {
		vals[j] = c.Values[idx]
		if valid != nil {
			valid[j] = c.Valid[idx]
		}
	}
	return &Float64Column{Values: vals, Valid: valid}
}

// StringColumn is a flat array of strings with a parallel null bitmap.
type StringColumn struct {
	Values []string
	Valid  []bool
}

func NewStringColumn(values []string) *StringColumn { return &StringColumn{Values: values} }

func (c *StringColumn) Kind() Kind { return KindString }
func (c *StringColumn) Len() int   { return len(c.Values) }
func (c *StringColumn) IsNull(i int) bool {
	return c.Valid != nil && !c.Valid[i]
}
func (c *StringColumn) At(i int) any {
	if c.IsNull(i) {
		return nil
	}
	return c.Values[i]
}
func (c *StringColumn) Take(indices []int) Column {
	vals := make([]string, len(indices))
	var valid []bool
	if c.Valid != nil {
		valid = make([]bool, len(indices))
	}
	for j, idx := range indices {
		vals[j] = c.Values[idx]
		if valid != nil {
			valid[j] = c.Valid[idx]
		}
	}
	return &StringColumn{Values: vals, Valid: valid}
}

// BoolColumn is a flat array of bool with a parallel null bitmap.
type BoolColumn struct {
	Values []bool
	Valid  []bool
}

func NewBoolColumn(values []bool) *BoolColumn { return &BoolColumn{Values: values} }

func (c *BoolColumn) Kind() Kind { return KindBool }
func (c *BoolColumn) Len() int   { return len(c.Values) }
func (c *BoolColumn) IsNull(i int) bool {
	return c.Valid != nil && !c.Valid[i]
}
func (c *BoolColumn) At(i int) any {
	if c.IsNull(i) {
		return nil
	}
	return c.Values[i]
}
func (c *BoolColumn) Take(indices []int) Column {
	vals := make([]bool, len(indices))
	var valid []bool
	if c.Valid != nil {
		valid = make([]bool, len(indices))
	}
	for j, idx := range indices {
		vals[j] = c.Values[idx]
		if valid != nil {
			valid[j] = c.Valid[idx]
		}
	}
	return &BoolColumn{Values: vals, Valid: valid}
}

// DictColumn is a dictionary-encoded column: Indices reference Dict by
// position. It implements Dictionary so the join kernel can compute
// min/max without decoding every row (spec §4.2, §9 "dictionary-encoded"
// data model note).
type DictColumn struct {
	Dict    []any
	Indices_ []int
	kind    Kind
}

func NewDictColumn(dict []any, indices []int, kind Kind) *DictColumn {
	return &DictColumn{Dict: dict, Indices_: indices, kind: kind}
}

func (c *DictColumn) Kind() Kind { return c.kind }
func (c *DictColumn) Len() int   { return len(c.Indices_) }
func (c *DictColumn) IsNull(i int) bool {
	return c.Indices_[i] < 0
}
func (c *DictColumn) At(i int) any {
	idx := c.Indices_[i]
	if idx < 0 {
		return nil
	}
	return c.Dict[idx]
}
func (c *DictColumn) Take(indices []int) Column {
	idx := make([]int, len(indices))
	for j, i := range indices {
		idx[j] = c.Indices_[i]
	}
	return &DictColumn{Dict: c.Dict, Indices_: idx, kind: c.kind}
}
func (c *DictColumn) DictionaryValues() []any { return c.Dict }
func (c *DictColumn) Indices() []int          { return c.Indices_ }

// StructColumn is an array of records; each field is itself a Column of
// the same length, read through Field (spec §4.1's struct-field access).
type StructColumn struct {
	Names  []string
	Fields map[string]Column
	length int
}

func NewStructColumn(names []string, fields map[string]Column, length int) *StructColumn {
	return &StructColumn{Names: names, Fields: fields, length: length}
}

func (c *StructColumn) Kind() Kind { return KindStruct }
func (c *StructColumn) Len() int   { return c.length }
func (c *StructColumn) IsNull(i int) bool {
	return false
}
func (c *StructColumn) At(i int) any {
	row := map[string]any{}
	for _, n := range c.Names {
		row[n] = c.Fields[n].At(i)
	}
	return row
}
func (c *StructColumn) Take(indices []int) Column {
	fields := make(map[string]Column, len(c.Fields))
	for name, col := range c.Fields {
		fields[name] = col.Take(indices)
	}
	return &StructColumn{Names: c.Names, Fields: fields, length: len(indices)}
}
func (c *StructColumn) FieldNames() []string { return c.Names }
func (c *StructColumn) Field(name string) (Column, error) {
	col, ok := c.Fields[name]
	if !ok {
		return nil, ErrColumnNotFound.New(name)
	}
	return col, nil
}
