// Package optimizer runs the single backward metadata pass over a
// logical plan that computes final column projections, pushed filters
// and content fingerprints (spec §4.3).
package optimizer

import "github.com/colqhq/colq/plan"

// Optimize runs plan.Node.Backward from sink down, seeding it with
// sink's own visible columns (nothing above the sink can request more)
// and no externally pushed filters. It mutates every node reachable
// from sink in place and returns the sink's resulting fingerprint.
func Optimize(sink plan.Node) (plan.Fingerprint, error) {
	return sink.Backward(sink.ColumnsVisible(), nil)
}
