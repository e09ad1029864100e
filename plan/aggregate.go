package plan

import "github.com/colqhq/colq/columnar"

// AggMethod is one output column's reduction, mirroring
// kernel.AggSpec without importing kernel (plan stays evaluation-free,
// spec §9 design note: "kind-specific execution logic lives in exec,
// not on plan.Node").
type AggMethod struct {
	Output string
	Input  string
	Func   string
}

// Aggregate groups rows by By and reduces each group per Methods. It is
// a pushdown barrier for predicates on its own output columns — such a
// predicate is HAVING semantics and must be applied after the group-by,
// never pushed below it (spec §4.2 Aggregate, testable property 4,
// scenario S3).
type Aggregate struct {
	base
	Child   Node
	By      []string
	Methods []AggMethod
}

func NewAggregate(child Node, by []string, methods []AggMethod) (*Aggregate, error) {
	if err := requireVisible(child.ColumnsVisible(), by...); err != nil {
		return nil, err
	}
	inputs := make([]string, len(methods))
	outputs := make([]string, len(methods))
	for i, m := range methods {
		if err := requireVisible(child.ColumnsVisible(), m.Input); err != nil {
			return nil, err
		}
		inputs[i] = m.Input
		outputs[i] = m.Output
	}
	visible := UnionStrings(by, outputs)
	return &Aggregate{
		base: base{
			columnsVisible: visible,
			// Aggregate only ever outputs by/outputs upward, so those are
			// the only columns that "originate at or below" it (spec
			// §4.2 Aggregate, testable property 1).
			columnsSource:  visible,
			columnsForward: UnionStrings(by, inputs),
		},
		Child: child, By: DedupeStrings(by), Methods: methods,
	}, nil
}

func (n *Aggregate) Kind() string     { return "Aggregate" }
func (n *Aggregate) Children() []Node { return []Node{n.Child} }

func (n *Aggregate) outputColumns() []string {
	out := make([]string, len(n.Methods))
	for i, m := range n.Methods {
		out[i] = m.Output
	}
	return out
}

func (n *Aggregate) Backward(columnsBackward []string, filtersBackward []columnar.Predicate) (Fingerprint, error) {
	requested := UnionStrings(n.columnsForward, columnsBackward)
	n.columnsBackward = IntersectStrings(requested, n.columnsSource)

	// Intercept predicates touching this node's own output columns
	// (HAVING semantics); the rest reference upstream source columns and
	// pass through untouched.
	having, passthrough := FilterByColumnSet(filtersBackward, n.outputColumns())
	n.filters = DedupePredicates(having)

	childColumns := UnionStrings(n.columnsForward, IntersectStrings(requested, n.By))
	fp, err := n.Child.Backward(childColumns, passthrough)
	if err != nil {
		return Fingerprint{}, err
	}

	methodStrings := make([]string, len(n.Methods))
	for i, m := range n.Methods {
		methodStrings[i] = m.Output + ":" + m.Input + ":" + m.Func
	}
	folded, err := fold(identity{
		"name":             n.Kind(),
		"by":               n.By,
		"methods":          DedupeStrings(methodStrings),
		"filters":          predicateStrings(n.filters),
		"columns_backward": n.columnsBackward,
	}, fp)
	if err != nil {
		return Fingerprint{}, err
	}
	n.fingerprint = folded
	return folded, nil
}
