package plan

import "github.com/colqhq/colq/columnar"

// TableSource is a leaf node reading a registered in-memory table (spec
// §4.2 "TableSource").
type TableSource struct {
	base
	Name  string
	Table columnar.Table
}

// NewTableSource builds a TableSource over an already-registered table.
func NewTableSource(name string, table columnar.Table) *TableSource {
	cols := table.ColumnNames()
	visible := UnionStrings(cols, StructRoots(cols))
	return &TableSource{
		base: base{
			columnsVisible: visible,
			columnsSource:  visible,
		},
		Name:  name,
		Table: table,
	}
}

func (n *TableSource) Kind() string      { return "TableSource" }
func (n *TableSource) Children() []Node  { return nil }

func (n *TableSource) Backward(columnsBackward []string, filtersBackward []columnar.Predicate) (Fingerprint, error) {
	requested := UnionStrings(n.columnsForward, columnsBackward)
	n.columnsBackward = IntersectStrings(requested, n.columnsSource)
	n.filters = DedupePredicates(append(append([]columnar.Predicate(nil), n.filtersForward...), filtersBackward...))

	fp, err := fold(identity{
		"name":             n.Kind(),
		"table":            n.Name,
		"filters":          predicateStrings(n.filters),
		"columns_backward": n.columnsBackward,
	})
	if err != nil {
		return Fingerprint{}, err
	}
	n.fingerprint = fp
	return fp, nil
}
