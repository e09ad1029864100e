package engine

import (
	"context"

	"github.com/colqhq/colq/columnar"
	"github.com/colqhq/colq/expr"
	"github.com/colqhq/colq/optimizer"
	"github.com/colqhq/colq/plan"
)

// Plan is the fluent builder wrapping a plan.Node, matching spec §6's
// chained external interface: each method returns a new Plan, leaving
// the receiver untouched, so a Plan can be branched and reused.
type Plan struct {
	engine *Engine
	node   plan.Node
}

// Node exposes the underlying plan.Node, e.g. for Explain tooling.
func (p *Plan) Node() plan.Node { return p.node }

// Column returns a column reference expression usable in Calc/Udf/
// Where, the "column lookup" half of spec §6's "column lookup/
// assignment" entry.
func (p *Plan) Column(name string) expr.Expr { return expr.ColumnRef{Name: name} }

// Filter keeps rows matching every predicate (spec §6 "Filter").
func (p *Plan) Filter(predicates ...columnar.Predicate) (*Plan, error) {
	f, err := plan.NewFilter(p.node, predicates)
	if err != nil {
		return nil, err
	}
	return &Plan{engine: p.engine, node: f}, nil
}

// Where filters by an arbitrary boolean expression rather than a flat
// predicate list.
func (p *Plan) Where(condition expr.Expr) (*Plan, error) {
	mask, err := plan.NewBooleanMask(p.node, condition, condition.Required())
	if err != nil {
		return nil, err
	}
	return &Plan{engine: p.engine, node: mask}, nil
}

// Join inner-joins p with other on the given key pairs (spec §6 "Join").
func (p *Plan) Join(other *Plan, on ...plan.JoinKey) (*Plan, error) {
	j, err := plan.NewJoin(p.node, other.node, on)
	if err != nil {
		return nil, err
	}
	return &Plan{engine: p.engine, node: j}, nil
}

// Aggregate groups by by and reduces per methods (spec §6 "Aggregate").
func (p *Plan) Aggregate(by []string, methods ...plan.AggMethod) (*Plan, error) {
	a, err := plan.NewAggregate(p.node, by, methods)
	if err != nil {
		return nil, err
	}
	return &Plan{engine: p.engine, node: a}, nil
}

// OrderBy sorts rows by keys (spec §6 "OrderBy").
func (p *Plan) OrderBy(keys ...plan.OrderKey) (*Plan, error) {
	o, err := plan.NewOrder(p.node, keys)
	if err != nil {
		return nil, err
	}
	return &Plan{engine: p.engine, node: o}, nil
}

// Select projects to columns (spec §6 "Select").
func (p *Plan) Select(columns ...string) (*Plan, error) {
	s, err := plan.NewSelect(p.node, columns, nil)
	if err != nil {
		return nil, err
	}
	return &Plan{engine: p.engine, node: s}, nil
}

// Rename relabels visible columns without changing which ones are
// selected (spec §6 "Rename").
func (p *Plan) Rename(mapping map[string]string) (*Plan, error) {
	s, err := plan.NewSelect(p.node, p.node.ColumnsVisible(), mapping)
	if err != nil {
		return nil, err
	}
	return &Plan{engine: p.engine, node: s}, nil
}

// Drop removes columns (spec §6 "Drop").
func (p *Plan) Drop(columns ...string) (*Plan, error) {
	d, err := plan.NewDrop(p.node, columns)
	if err != nil {
		return nil, err
	}
	return &Plan{engine: p.engine, node: d}, nil
}

// FillNull replaces nulls in columns with value (spec §6 "FillNull").
func (p *Plan) FillNull(value any, columns ...string) (*Plan, error) {
	f, err := plan.NewFillNull(p.node, columns, value)
	if err != nil {
		return nil, err
	}
	return &Plan{engine: p.engine, node: f}, nil
}

// Cast converts columns to kind (spec §6 "Cast").
func (p *Plan) Cast(kind columnar.Kind, columns ...string) (*Plan, error) {
	c, err := plan.NewCast(p.node, columns, kind)
	if err != nil {
		return nil, err
	}
	return &Plan{engine: p.engine, node: c}, nil
}

// Calc adds a computed column under key, the "assignment" half of spec
// §6's "column lookup/assignment" entry.
func (p *Plan) Calc(key string, e expr.Expr) (*Plan, error) {
	c, err := plan.NewCalculation(p.node, key, e, e.Required())
	if err != nil {
		return nil, err
	}
	return &Plan{engine: p.engine, node: c}, nil
}

// Udf adds a computed column by applying a registered scalar function
// across inputColumns (spec §6 "Udf").
func (p *Plan) Udf(key, udfName string, inputColumns ...string) (*Plan, error) {
	fn, ok := p.engine.UDF(udfName)
	if !ok {
		return nil, ErrTableNotFound.New(udfName)
	}
	refs := make([]expr.Expr, len(inputColumns))
	for i, c := range inputColumns {
		refs[i] = expr.ColumnRef{Name: c}
	}
	u := expr.Udf{Name: udfName, Columns: refs, Fn: fn}
	return p.Calc(key, u)
}

// Collect optimises and materialises the plan. When verbose is true (or
// the engine was configured with Verbose), the executor logs one entry
// per node it materialises.
func (p *Plan) Collect(ctx context.Context, verbose bool) (columnar.Table, error) {
	if _, err := optimizer.Optimize(p.node); err != nil {
		return nil, err
	}
	p.engine.executor.Verbose = verbose || p.engine.cfg.Verbose
	return p.engine.executor.Materialize(ctx, p.node)
}
