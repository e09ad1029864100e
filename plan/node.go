package plan

import "github.com/colqhq/colq/columnar"

// Node is one operator in the logical plan DAG (spec §3 "Plan node").
// Concrete node kinds are exported structs (TableSource, Filter, Join,
// ...), each embedding base for the metadata every node shares. Node is
// a tagged sum in spirit: callers that need kind-specific behavior type
// switch on the concrete pointer type rather than growing the interface.
type Node interface {
	// Kind names the operator for fingerprinting, logging and Explain.
	Kind() string
	// ColumnsVisible returns the superset of names callers may
	// reference downstream.
	ColumnsVisible() []string
	// ColumnsSource returns names that actually originate at or below
	// this node.
	ColumnsSource() []string
	ColumnsForward() []string
	FiltersForward() []columnar.Predicate
	// ColumnsBackward is only meaningful after Backward has run.
	ColumnsBackward() []string
	// Filters is the subset of filters this node applies locally; only
	// non-empty for source and barrier nodes, after Backward has run.
	Filters() []columnar.Predicate
	// Fingerprint is only meaningful after Backward has run.
	Fingerprint() Fingerprint
	// Children returns this node's parent(s) in the DAG (zero for a
	// source, one for most operators, two — left then right — for Join).
	Children() []Node
	// Backward runs the optimiser's single backward pass for this node
	// and everything below it, per spec §4.3, and returns its resulting
	// Fingerprint.
	Backward(columnsBackward []string, filtersBackward []columnar.Predicate) (Fingerprint, error)
}

// base holds the metadata every node kind shares. Embedded by every
// concrete node struct; never constructed standalone.
type base struct {
	columnsVisible  []string
	columnsSource   []string
	columnsForward  []string
	filtersForward  []columnar.Predicate
	columnsBackward []string
	filters         []columnar.Predicate
	fingerprint     Fingerprint
}

func (b *base) ColumnsVisible() []string  { return b.columnsVisible }
func (b *base) ColumnsSource() []string   { return b.columnsSource }
func (b *base) ColumnsForward() []string  { return b.columnsForward }
func (b *base) FiltersForward() []columnar.Predicate { return b.filtersForward }
func (b *base) ColumnsBackward() []string { return b.columnsBackward }
func (b *base) Filters() []columnar.Predicate      { return b.filters }
func (b *base) Fingerprint() Fingerprint  { return b.fingerprint }

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// requireVisible raises ErrColumnMissing for any column not present in
// visible (spec §7: "Raised at plan construction, never at execution").
func requireVisible(visible []string, columns ...string) error {
	for _, c := range columns {
		if !contains(visible, c) {
			return ErrColumnMissing.New(c)
		}
	}
	return nil
}
