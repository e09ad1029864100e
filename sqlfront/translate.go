package sqlfront

import (
	"strings"

	"github.com/colqhq/colq/columnar"
	"github.com/colqhq/colq/engine"
	"github.com/colqhq/colq/plan"
)

// Translate builds an engine.Plan from a parsed Query against eng's
// registered tables/datasets.
func Translate(eng *engine.Engine, q *Query) (*engine.Plan, error) {
	p, err := eng.Select(q.From)
	if err != nil {
		return nil, err
	}

	if len(q.Where) > 0 {
		preds, err := conditions(q.Where)
		if err != nil {
			return nil, err
		}
		if p, err = p.Filter(preds...); err != nil {
			return nil, err
		}
	}

	aggregated := len(q.GroupBy) > 0 || hasAggregate(q.Columns)
	var outputNames []string

	if aggregated {
		methods, selected, err := aggregateMethods(q.Columns)
		if err != nil {
			return nil, err
		}
		if p, err = p.Aggregate(q.GroupBy, methods...); err != nil {
			return nil, err
		}
		outputNames = selected

		if len(q.Having) > 0 {
			preds, err := conditions(q.Having)
			if err != nil {
				return nil, err
			}
			if p, err = p.Filter(preds...); err != nil {
				return nil, err
			}
		}
	} else if !isStar(q.Columns) {
		for _, c := range q.Columns {
			outputNames = append(outputNames, c.Column)
		}
	}

	if len(q.OrderBy) > 0 {
		keys := make([]plan.OrderKey, len(q.OrderBy))
		for i, o := range q.OrderBy {
			keys[i] = plan.OrderKey{Column: o.Column, Ascending: !strings.EqualFold(o.Direction, "DESC")}
		}
		var err error
		if p, err = p.OrderBy(keys...); err != nil {
			return nil, err
		}
	}

	if len(outputNames) > 0 {
		var err error
		if p, err = p.Select(outputNames...); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func isStar(items []*SelectItem) bool {
	return len(items) == 1 && items[0].Column == "*" && items[0].Func == ""
}

func hasAggregate(items []*SelectItem) bool {
	for _, c := range items {
		if c.Func != "" {
			return true
		}
	}
	return false
}

func aggregateMethods(items []*SelectItem) ([]plan.AggMethod, []string, error) {
	var methods []plan.AggMethod
	var plainOutputs []string
	for _, c := range items {
		if c.Func == "" {
			plainOutputs = append(plainOutputs, c.Column)
			continue
		}
		output := c.Alias
		if output == "" {
			output = strings.ToLower(c.Func) + "_" + c.Column
		}
		methods = append(methods, plan.AggMethod{Output: output, Input: c.Column, Func: strings.ToLower(c.Func)})
		plainOutputs = append(plainOutputs, output)
	}
	return methods, plainOutputs, nil
}

func conditions(conds []*Condition) ([]columnar.Predicate, error) {
	preds := make([]columnar.Predicate, len(conds))
	for i, c := range conds {
		op, err := columnar.ParseOp(c.Op)
		if err != nil {
			return nil, err
		}
		preds[i] = columnar.Predicate{Column: c.Column, Op: op, Value: literalValue(c.Value)}
	}
	return preds, nil
}

func literalValue(v *Value) any {
	if v.String != nil {
		return *v.String
	}
	if v.Number != nil {
		return *v.Number
	}
	return nil
}
