package plan

import "github.com/colqhq/colq/columnar"

// BooleanMask filters rows using an arbitrary boolean-valued expression
// (an expr.Expr with Boolean() == true in practice) rather than a flat
// predicate list, covering filter conditions predicate.Op cannot
// express directly, e.g. `(a > b) or (c == d)` (spec §3 "Column
// expression node", §9 design notes on LogicOp). Unlike Filter it is
// not fingerprint-transparent: its expression cannot always be folded
// into a source's filter list, so it keeps its own identity.
type BooleanMask struct {
	base
	Child    Node
	Expr     any
	Required []string
}

func NewBooleanMask(child Node, exprValue any, required []string) (*BooleanMask, error) {
	if err := requireVisible(child.ColumnsVisible(), required...); err != nil {
		return nil, err
	}
	return &BooleanMask{
		base: base{
			columnsVisible: child.ColumnsVisible(),
			columnsSource:  child.ColumnsSource(),
			columnsForward: DedupeStrings(required),
		},
		Child: child, Expr: exprValue, Required: DedupeStrings(required),
	}, nil
}

func (n *BooleanMask) Kind() string     { return "BooleanMask" }
func (n *BooleanMask) Children() []Node { return []Node{n.Child} }

func (n *BooleanMask) Backward(columnsBackward []string, filtersBackward []columnar.Predicate) (Fingerprint, error) {
	n.columnsBackward = IntersectStrings(UnionStrings(n.columnsForward, columnsBackward), n.columnsSource)
	n.filters = nil

	fp, err := n.Child.Backward(n.columnsBackward, filtersBackward)
	if err != nil {
		return Fingerprint{}, err
	}
	mask := ""
	if k, ok := n.Expr.(interface{ Key() string }); ok {
		mask = k.Key()
	}
	folded, err := fold(identity{
		"name":             n.Kind(),
		"expr":             mask,
		"required":         n.Required,
		"columns_backward": n.columnsBackward,
	}, fp)
	if err != nil {
		return Fingerprint{}, err
	}
	n.fingerprint = folded
	return folded, nil
}
