package kernel

import "fmt"

// formatKey renders a scalar as a hashable map key, used by JoinRows and
// GroupBy to bucket rows without writing a type switch at every call
// site.
func formatKey(v any) string {
	switch t := v.(type) {
	case int64:
		return fmt.Sprintf("i:%d", t)
	case float64:
		return fmt.Sprintf("f:%g", t)
	case string:
		return "s:" + t
	case bool:
		return fmt.Sprintf("b:%t", t)
	default:
		return fmt.Sprintf("v:%v", t)
	}
}
