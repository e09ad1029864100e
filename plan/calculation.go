package plan

import "github.com/colqhq/colq/columnar"

// Calculation adds one computed column, Key, derived from an expression
// over the child's visible columns. Expr is kept as an opaque value
// (an expr.Expr from the expr package in practice) so plan stays free
// of evaluation logic; exec resolves it via a type assertion. Like
// Aggregate, Calculation is a pushdown barrier: a predicate that
// references Key cannot be pushed below the node that computes it
// (spec §4.2 Calculation, testable property 4, scenario S4).
type Calculation struct {
	base
	Child    Node
	Key      string
	Expr     any
	Required []string
}

func NewCalculation(child Node, key string, exprValue any, required []string) (*Calculation, error) {
	if err := requireVisible(child.ColumnsVisible(), required...); err != nil {
		return nil, err
	}
	return &Calculation{
		base: base{
			columnsVisible: UnionStrings(child.ColumnsVisible(), []string{key}),
			columnsSource:  UnionStrings(child.ColumnsSource(), []string{key}),
			columnsForward: DedupeStrings(required),
		},
		Child: child, Key: key, Expr: exprValue, Required: DedupeStrings(required),
	}, nil
}

func (n *Calculation) Kind() string     { return "Calculation" }
func (n *Calculation) Children() []Node { return []Node{n.Child} }

func (n *Calculation) Backward(columnsBackward []string, filtersBackward []columnar.Predicate) (Fingerprint, error) {
	requested := UnionStrings(n.columnsForward, columnsBackward)
	n.columnsBackward = IntersectStrings(requested, n.columnsSource)

	barrier, passthrough := FilterByColumnSet(filtersBackward, []string{n.Key})
	n.filters = DedupePredicates(barrier)

	// Pass through every requested column the child can produce; Key
	// itself is computed here.
	childColumns := UnionStrings(n.columnsForward, IntersectStrings(requested, n.Child.ColumnsSource()))
	if contains(requested, n.Key) || len(barrier) > 0 {
		childColumns = UnionStrings(childColumns, n.Required)
	}
	fp, err := n.Child.Backward(childColumns, passthrough)
	if err != nil {
		return Fingerprint{}, err
	}
	calculation := n.Key
	if k, ok := n.Expr.(interface{ Key() string }); ok {
		calculation = k.Key()
	}
	folded, err := fold(identity{
		"name":             n.Kind(),
		"key":              n.Key,
		"calculation":       calculation,
		"required":         n.Required,
		"filters":          predicateStrings(n.filters),
		"columns_backward": n.columnsBackward,
	}, fp)
	if err != nil {
		return Fingerprint{}, err
	}
	n.fingerprint = folded
	return folded, nil
}
