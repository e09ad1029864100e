package plan

import "github.com/colqhq/colq/columnar"

// Drop removes columns from the visible set without affecting row
// order or content otherwise (spec §3).
type Drop struct {
	base
	Child   Node
	Dropped []string
}

func NewDrop(child Node, dropped []string) (*Drop, error) {
	if err := requireVisible(child.ColumnsVisible(), dropped...); err != nil {
		return nil, err
	}
	dropSet := make(map[string]bool, len(dropped))
	for _, d := range dropped {
		dropSet[d] = true
	}
	visible := make([]string, 0, len(child.ColumnsVisible()))
	for _, c := range child.ColumnsVisible() {
		if !dropSet[c] {
			visible = append(visible, c)
		}
	}
	return &Drop{
		base: base{
			columnsVisible: visible,
			columnsSource:  child.ColumnsSource(),
			filtersForward: child.FiltersForward(),
		},
		Child:   child,
		Dropped: DedupeStrings(dropped),
	}, nil
}

func (n *Drop) Kind() string     { return "Drop" }
func (n *Drop) Children() []Node { return []Node{n.Child} }

func (n *Drop) Backward(columnsBackward []string, filtersBackward []columnar.Predicate) (Fingerprint, error) {
	n.columnsBackward = IntersectStrings(UnionStrings(n.columnsForward, columnsBackward), n.columnsSource)
	n.filters = nil

	fp, err := n.Child.Backward(n.columnsBackward, filtersBackward)
	if err != nil {
		return Fingerprint{}, err
	}
	folded, err := fold(identity{
		"name":             n.Kind(),
		"dropped":          n.Dropped,
		"columns_backward": n.columnsBackward,
	}, fp)
	if err != nil {
		return Fingerprint{}, err
	}
	n.fingerprint = folded
	return folded, nil
}
