package exec

import (
	"context"

	"github.com/colqhq/colq/columnar"
	"github.com/colqhq/colq/kernel"
	"github.com/colqhq/colq/plan"
)

func (e *Executor) materializeAggregate(ctx context.Context, n *plan.Aggregate) (columnar.Table, error) {
	child, err := e.Materialize(ctx, n.Child)
	if err != nil {
		return nil, err
	}
	specs := make(map[string]kernel.AggSpec, len(n.Methods))
	for _, m := range n.Methods {
		specs[m.Output] = kernel.AggSpec{Input: m.Input, Func: kernel.AggFunc(m.Func)}
	}
	grouped, err := kernel.GroupBy(child, n.By, specs)
	if err != nil {
		return nil, err
	}
	// HAVING: filters intercepted at this node reference its own output
	// columns and can only be applied now that they exist.
	having, err := kernel.ApplyFilters(grouped, n.Filters())
	if err != nil {
		return nil, err
	}
	return having.Project(n.ColumnsBackward())
}
