package plan

import "github.com/colqhq/colq/columnar"

// Cast converts Columns to Kind in place, leaving the visible column
// set unchanged.
type Cast struct {
	base
	Child   Node
	Columns []string
	Kind_   columnar.Kind
}

func NewCast(child Node, columns []string, kind columnar.Kind) (*Cast, error) {
	if err := requireVisible(child.ColumnsVisible(), columns...); err != nil {
		return nil, err
	}
	return &Cast{
		base: base{
			columnsVisible: child.ColumnsVisible(),
			columnsSource:  child.ColumnsSource(),
			columnsForward: DedupeStrings(columns),
			filtersForward: child.FiltersForward(),
		},
		Child: child, Columns: DedupeStrings(columns), Kind_: kind,
	}, nil
}

func (n *Cast) Kind() string     { return "Cast" }
func (n *Cast) Children() []Node { return []Node{n.Child} }

func (n *Cast) Backward(columnsBackward []string, filtersBackward []columnar.Predicate) (Fingerprint, error) {
	n.columnsBackward = IntersectStrings(UnionStrings(n.columnsForward, columnsBackward), n.columnsSource)
	n.filters = nil

	fp, err := n.Child.Backward(n.columnsBackward, filtersBackward)
	if err != nil {
		return Fingerprint{}, err
	}
	folded, err := fold(identity{
		"name":             n.Kind(),
		"columns":          n.Columns,
		"kind":             n.Kind_.String(),
		"columns_backward": n.columnsBackward,
	}, fp)
	if err != nil {
		return Fingerprint{}, err
	}
	n.fingerprint = folded
	return folded, nil
}
