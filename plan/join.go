package plan

import (
	"fmt"
	"sort"

	"github.com/colqhq/colq/columnar"
)

// JoinKey pairs one left and one right column name in an equi-join
// condition (spec §3 "on": list of column name pairs).
type JoinKey struct {
	Left  string
	Right string
}

func (k JoinKey) String() string { return fmt.Sprintf("%s=%s", k.Left, k.Right) }

// Join is an inner equi-join over On. Redundant-key elimination (spec
// §4.3 point 2, testable property/scenario S1 — dropping a join key
// whose value is identical and singular on both sides) is an
// execution-time decision made from the actual data, not a plan-time
// rewrite, so it lives in the exec package rather than here.
type Join struct {
	base
	Left, Right Node
	On          []JoinKey
}

func NewJoin(left, right Node, on []JoinKey) (*Join, error) {
	for _, k := range on {
		if err := requireVisible(left.ColumnsVisible(), k.Left); err != nil {
			return nil, err
		}
		if err := requireVisible(right.ColumnsVisible(), k.Right); err != nil {
			return nil, err
		}
	}
	visible := UnionStrings(left.ColumnsVisible(), right.ColumnsVisible())
	return &Join{
		base: base{
			columnsVisible: visible,
			columnsSource:  UnionStrings(left.ColumnsSource(), right.ColumnsSource()),
			columnsForward: joinKeyColumns(on),
			filtersForward: DedupePredicates(append(append([]columnar.Predicate(nil), left.FiltersForward()...), right.FiltersForward()...)),
		},
		Left: left, Right: right, On: on,
	}, nil
}

func joinKeyColumns(on []JoinKey) []string {
	cols := make([]string, 0, len(on)*2)
	for _, k := range on {
		cols = append(cols, k.Left, k.Right)
	}
	return DedupeStrings(cols)
}

func (n *Join) Kind() string     { return "Join" }
func (n *Join) Children() []Node { return []Node{n.Left, n.Right} }

func (n *Join) Backward(columnsBackward []string, filtersBackward []columnar.Predicate) (Fingerprint, error) {
	requested := UnionStrings(n.columnsForward, columnsBackward)
	n.columnsBackward = IntersectStrings(requested, n.columnsSource)
	n.filters = nil

	leftSet := n.Left.ColumnsVisible()
	rightSet := n.Right.ColumnsVisible()

	leftWanted, rest := FilterByColumnSet(filtersBackward, leftSet)
	rightWanted, unresolved := FilterByColumnSet(rest, rightSet)
	// unresolved predicates reference columns on neither side (should not
	// happen once requireVisible has run at construction); kept local as
	// a defensive fallback rather than silently dropped.
	n.filters = DedupePredicates(unresolved)

	leftColumns := IntersectStrings(requested, leftSet)
	leftColumns = UnionStrings(leftColumns, joinSideKeys(n.On, true))
	rightColumns := IntersectStrings(requested, rightSet)
	rightColumns = UnionStrings(rightColumns, joinSideKeys(n.On, false))

	leftFP, err := n.Left.Backward(leftColumns, leftWanted)
	if err != nil {
		return Fingerprint{}, err
	}
	rightFP, err := n.Right.Backward(rightColumns, rightWanted)
	if err != nil {
		return Fingerprint{}, err
	}

	onStrings := make([]string, len(n.On))
	for i, k := range n.On {
		onStrings[i] = k.String()
	}
	sort.Strings(onStrings)

	fp, err := fold(identity{
		"name":             n.Kind(),
		"on":               onStrings,
		"columns_backward": n.columnsBackward,
	}, leftFP, rightFP)
	if err != nil {
		return Fingerprint{}, err
	}
	n.fingerprint = fp
	return fp, nil
}

func joinSideKeys(on []JoinKey, left bool) []string {
	out := make([]string, len(on))
	for i, k := range on {
		if left {
			out[i] = k.Left
		} else {
			out[i] = k.Right
		}
	}
	return DedupeStrings(out)
}
