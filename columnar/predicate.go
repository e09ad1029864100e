package columnar

import "fmt"

// Op is a filter comparison operator (spec §3, §6). Predicate lives in
// columnar rather than plan so that both plan and dataset (which must
// not depend on plan) can share the same type.
type Op int

const (
	Eq Op = iota
	Ne
	Lt
	Le
	Gt
	Ge
	In
	NotIn
)

// ParseOp canonicalises the textual operators accepted at the external
// interface ("=" and "==" are the same Op value, per spec Design Notes).
func ParseOp(s string) (Op, error) {
	switch s {
	case "=", "==":
		return Eq, nil
	case "!=", "<>":
		return Ne, nil
	case "<":
		return Lt, nil
	case ">":
		return Gt, nil
	case "<=":
		return Le, nil
	case ">=":
		return Ge, nil
	case "in":
		return In, nil
	case "not in":
		return NotIn, nil
	default:
		return 0, ErrUnsupportedOp.New(s)
	}
}

func (op Op) String() string {
	switch op {
	case Eq:
		return "="
	case Ne:
		return "!="
	case Lt:
		return "<"
	case Le:
		return "<="
	case Gt:
		return ">"
	case Ge:
		return ">="
	case In:
		return "in"
	case NotIn:
		return "not in"
	default:
		return fmt.Sprintf("op(%d)", int(op))
	}
}

// Predicate is the triple (column, op, value) of spec §3. In/NotIn take
// a finite slice of scalars as Value.
type Predicate struct {
	Column string
	Op     Op
	Value  any
}

func (p Predicate) String() string {
	return fmt.Sprintf("%s %s %v", p.Column, p.Op, p.Value)
}

// Key is a canonical string form used to dedupe and sort predicate sets
// for fingerprinting.
func (p Predicate) Key() string {
	return fmt.Sprintf("%s\x00%s\x00%v", p.Column, p.Op, p.Value)
}
