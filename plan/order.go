package plan

import "github.com/colqhq/colq/columnar"

// OrderKey is one sort key and its direction.
type OrderKey struct {
	Column    string
	Ascending bool
}

// Order sorts rows by Keys without changing the visible column set.
type Order struct {
	base
	Child Node
	Keys  []OrderKey
}

func NewOrder(child Node, keys []OrderKey) (*Order, error) {
	for _, k := range keys {
		if err := requireVisible(child.ColumnsVisible(), k.Column); err != nil {
			return nil, err
		}
	}
	cols := make([]string, len(keys))
	for i, k := range keys {
		cols[i] = k.Column
	}
	return &Order{
		base: base{
			columnsVisible: child.ColumnsVisible(),
			columnsSource:  child.ColumnsSource(),
			columnsForward: DedupeStrings(cols),
			filtersForward: child.FiltersForward(),
		},
		Child: child, Keys: keys,
	}, nil
}

func (n *Order) Kind() string     { return "Order" }
func (n *Order) Children() []Node { return []Node{n.Child} }

func (n *Order) Backward(columnsBackward []string, filtersBackward []columnar.Predicate) (Fingerprint, error) {
	n.columnsBackward = IntersectStrings(UnionStrings(n.columnsForward, columnsBackward), n.columnsSource)
	n.filters = nil

	fp, err := n.Child.Backward(n.columnsBackward, filtersBackward)
	if err != nil {
		return Fingerprint{}, err
	}
	keyStrings := make([]string, len(n.Keys))
	for i, k := range n.Keys {
		dir := "asc"
		if !k.Ascending {
			dir = "desc"
		}
		keyStrings[i] = k.Column + ":" + dir
	}
	folded, err := fold(identity{
		"name":             n.Kind(),
		"key":              keyStrings,
		"columns_backward": n.columnsBackward,
	}, fp)
	if err != nil {
		return Fingerprint{}, err
	}
	n.fingerprint = folded
	return folded, nil
}
