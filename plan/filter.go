package plan

import "github.com/colqhq/colq/columnar"

// Filter restricts rows to those matching predicates. It never changes
// the visible column set and is fingerprint-transparent: since its
// predicates are always eligible to push all the way down to the
// nearest source or barrier, a Filter wrapper contributes no identity
// of its own once optimised (spec §4.3 point 3, testable property 5,
// scenario S5).
type Filter struct {
	base
	Child      Node
	Predicates []columnar.Predicate
}

// NewFilter wraps child in a predicate filter. Every predicate column
// must already be visible.
func NewFilter(child Node, predicates []columnar.Predicate) (*Filter, error) {
	for _, p := range predicates {
		if err := requireVisible(child.ColumnsVisible(), p.Column); err != nil {
			return nil, err
		}
	}
	return &Filter{
		base: base{
			columnsVisible: child.ColumnsVisible(),
			columnsSource:  child.ColumnsSource(),
			columnsForward: predicateColumns(predicates),
			filtersForward: DedupePredicates(append(append([]columnar.Predicate(nil), child.FiltersForward()...), predicates...)),
		},
		Child:      child,
		Predicates: predicates,
	}, nil
}

func (n *Filter) Kind() string     { return "Filter" }
func (n *Filter) Children() []Node { return []Node{n.Child} }

func (n *Filter) Backward(columnsBackward []string, filtersBackward []columnar.Predicate) (Fingerprint, error) {
	childColumns := UnionStrings(UnionStrings(n.columnsForward, columnsBackward), StructRoots(columnsBackward))
	childFilters := DedupePredicates(append(append([]columnar.Predicate(nil), filtersBackward...), n.Predicates...))

	n.columnsBackward = childColumns
	n.filters = nil // Filter never keeps predicates locally; they always travel with childFilters.

	fp, err := n.Child.Backward(childColumns, childFilters)
	if err != nil {
		return Fingerprint{}, err
	}
	n.fingerprint = fp
	return fp, nil
}

func predicateColumns(preds []columnar.Predicate) []string {
	cols := make([]string, len(preds))
	for i, p := range preds {
		cols[i] = p.Column
	}
	return DedupeStrings(cols)
}
