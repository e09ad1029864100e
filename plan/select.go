package plan

import "github.com/colqhq/colq/columnar"

// Select projects child down to Columns, optionally renaming some of
// them via Renames (old name -> new name). engine.Plan's Select and
// Rename both build a Select node; Rename passes through every existing
// column and supplies only the rename map (spec §3 "Plan node" lists
// Select and Rename as two API surfaces over the same projection shape).
type Select struct {
	base
	Child   Node
	Columns []string
	Renames map[string]string
}

// NewSelect projects child to columns then applies renames. Every
// column in columns must be visible on child.
func NewSelect(child Node, columns []string, renames map[string]string) (*Select, error) {
	if err := requireVisible(child.ColumnsVisible(), columns...); err != nil {
		return nil, err
	}
	visible := make([]string, len(columns))
	for i, c := range columns {
		if r, ok := renames[c]; ok {
			visible[i] = r
		} else {
			visible[i] = c
		}
	}
	return &Select{
		base: base{
			columnsVisible: DedupeStrings(append(visible, StructRoots(visible)...)),
			columnsSource:  child.ColumnsSource(),
			columnsForward: DedupeStrings(columns),
			filtersForward: child.FiltersForward(),
		},
		Child:   child,
		Columns: columns,
		Renames: renames,
	}, nil
}

func (n *Select) Kind() string     { return "Select" }
func (n *Select) Children() []Node { return []Node{n.Child} }

// reverseRename maps a visible output name back to the pre-rename input
// name, the identity if it was never renamed.
func (n *Select) reverseRename(out string) string {
	for from, to := range n.Renames {
		if to == out {
			return from
		}
	}
	return out
}

// forwardRename maps a pre-rename input name to its visible output
// name, the identity if it was never renamed. Inverse of reverseRename.
func (n *Select) forwardRename(in string) string {
	if to, ok := n.Renames[in]; ok {
		return to
	}
	return in
}

func (n *Select) Backward(columnsBackward []string, filtersBackward []columnar.Predicate) (Fingerprint, error) {
	inputNeeded := make([]string, 0, len(columnsBackward))
	for _, out := range columnsBackward {
		inputNeeded = append(inputNeeded, n.reverseRename(out))
	}
	// n.columnsForward and n.columnsSource are both in the child's
	// (pre-rename) namespace, so the request/cap intersection happens
	// there before translating back to this node's own output names.
	requested := UnionStrings(n.columnsForward, inputNeeded)
	childColumns := IntersectStrings(requested, n.columnsSource)

	childFilters := make([]columnar.Predicate, 0, len(filtersBackward))
	for _, f := range filtersBackward {
		childFilters = append(childFilters, columnar.Predicate{Column: n.reverseRename(f.Column), Op: f.Op, Value: f.Value})
	}

	backward := make([]string, 0, len(childColumns))
	for _, c := range childColumns {
		backward = append(backward, n.forwardRename(c))
	}
	n.columnsBackward = IntersectStrings(DedupeStrings(backward), n.columnsVisible)
	n.filters = nil

	fp, err := n.Child.Backward(childColumns, DedupePredicates(childFilters))
	if err != nil {
		return Fingerprint{}, err
	}
	id := identity{
		"name":             n.Kind(),
		"columns":          n.Columns,
		"renames":          n.Renames,
		"columns_backward": n.columnsBackward,
	}
	folded, err := fold(id, fp)
	if err != nil {
		return Fingerprint{}, err
	}
	n.fingerprint = folded
	return folded, nil
}
