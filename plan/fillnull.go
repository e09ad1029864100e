package plan

import "github.com/colqhq/colq/columnar"

// FillNull replaces null values in Columns with Value, fixing wombat's
// unbound-`other`-variable bug (spec §9 design notes) by requiring an
// explicit scalar replacement rather than an implicit "other" reference.
type FillNull struct {
	base
	Child   Node
	Columns []string
	Value   any
}

func NewFillNull(child Node, columns []string, value any) (*FillNull, error) {
	if err := requireVisible(child.ColumnsVisible(), columns...); err != nil {
		return nil, err
	}
	return &FillNull{
		base: base{
			columnsVisible: child.ColumnsVisible(),
			columnsSource:  child.ColumnsSource(),
			columnsForward: DedupeStrings(columns),
			filtersForward: child.FiltersForward(),
		},
		Child: child, Columns: DedupeStrings(columns), Value: value,
	}, nil
}

func (n *FillNull) Kind() string     { return "FillNull" }
func (n *FillNull) Children() []Node { return []Node{n.Child} }

func (n *FillNull) Backward(columnsBackward []string, filtersBackward []columnar.Predicate) (Fingerprint, error) {
	n.columnsBackward = IntersectStrings(UnionStrings(n.columnsForward, columnsBackward), n.columnsSource)
	n.filters = nil

	fp, err := n.Child.Backward(n.columnsBackward, filtersBackward)
	if err != nil {
		return Fingerprint{}, err
	}
	folded, err := fold(identity{
		"name":             n.Kind(),
		"columns":          n.Columns,
		"value":            n.Value,
		"columns_backward": n.columnsBackward,
	}, fp)
	if err != nil {
		return Fingerprint{}, err
	}
	n.fingerprint = folded
	return folded, nil
}
