// Package exec materialises an optimised plan.Node tree into a
// columnar.Table. Kind-specific evaluation logic lives here, as a type
// switch over plan's concrete node structs, rather than as methods on
// plan.Node — keeping plan a pure metadata/DAG package (spec §9 design
// notes).
package exec

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/colqhq/colq/cache"
	"github.com/colqhq/colq/columnar"
	"github.com/colqhq/colq/dataset"
	"github.com/colqhq/colq/expr"
	"github.com/colqhq/colq/kernel"
	"github.com/colqhq/colq/plan"
)

type traceIDKey struct{}

// traceID returns the id stamped on ctx by the outermost Materialize
// call, so every node's log line in one Collect can be correlated.
func traceID(ctx context.Context) string {
	if id, ok := ctx.Value(traceIDKey{}).(string); ok {
		return id
	}
	return ""
}

// Executor materialises plans, caching results by fingerprint.
type Executor struct {
	Cache   *cache.Weighted
	Logger  *logrus.Logger
	Verbose bool
}

// New builds an Executor with a fresh cache bounded to cacheBytes.
func New(cacheBytes int64, logger *logrus.Logger) *Executor {
	return &Executor{Cache: cache.NewWeighted(cacheBytes, logger), Logger: logger}
}

// Materialize runs node (and everything below it) to a concrete Table,
// consulting and populating the cache by fingerprint along the way.
func (e *Executor) Materialize(ctx context.Context, node plan.Node) (columnar.Table, error) {
	if traceID(ctx) == "" {
		ctx = context.WithValue(ctx, traceIDKey{}, uuid.NewString())
	}
	key := node.Fingerprint().String()
	if e.Cache != nil {
		if t, ok := e.Cache.Get(key); ok {
			e.log(ctx, node, 0, true, t)
			return t, nil
		}
	}

	start := time.Now()
	table, err := e.materialize(ctx, node)
	if err != nil {
		return nil, err
	}
	elapsed := time.Since(start)

	if e.Cache != nil {
		e.Cache.Put(key, table, elapsed.Seconds())
	}
	e.log(ctx, node, elapsed, false, table)
	return table, nil
}

func (e *Executor) log(ctx context.Context, node plan.Node, elapsed time.Duration, cached bool, table columnar.Table) {
	if !e.Verbose || e.Logger == nil {
		return
	}
	e.Logger.WithFields(logrus.Fields{
		"trace_id": traceID(ctx),
		"node":     node.Kind(),
		"rows":     table.NumRows(),
		"elapsed":  elapsed,
		"cached":   cached,
	}).Info("materialize")
}

func (e *Executor) materialize(ctx context.Context, node plan.Node) (columnar.Table, error) {
	switch n := node.(type) {
	case *plan.TableSource:
		return e.materializeTableSource(n)
	case *plan.DatasetSource:
		return e.materializeDatasetSource(ctx, n)
	case *plan.Filter:
		// Fingerprint-transparent: its predicates are already folded
		// into whatever source or barrier absorbed them.
		return e.Materialize(ctx, n.Child)
	case *plan.Select:
		return e.materializeSelect(ctx, n)
	case *plan.Drop:
		child, err := e.Materialize(ctx, n.Child)
		if err != nil {
			return nil, err
		}
		return child.DropColumns(n.Dropped)
	case *plan.Join:
		return e.materializeJoin(ctx, n)
	case *plan.Aggregate:
		return e.materializeAggregate(ctx, n)
	case *plan.Order:
		return e.materializeOrder(ctx, n)
	case *plan.FillNull:
		return e.materializeFillNull(ctx, n)
	case *plan.Cast:
		return e.materializeCast(ctx, n)
	case *plan.Calculation:
		return e.materializeCalculation(ctx, n)
	case *plan.BooleanMask:
		return e.materializeBooleanMask(ctx, n)
	default:
		return nil, ErrUnsupportedNode.New(node.Kind())
	}
}

func (e *Executor) materializeTableSource(n *plan.TableSource) (columnar.Table, error) {
	filtered, err := kernel.ApplyFilters(n.Table, n.Filters())
	if err != nil {
		return nil, err
	}
	return filtered.Project(n.ColumnsBackward())
}

func (e *Executor) materializeDatasetSource(ctx context.Context, n *plan.DatasetSource) (columnar.Table, error) {
	partKeys := n.Dataset.PartitionKeys()
	fileColumns := columnsMinus(n.ColumnsBackward(), partKeys)

	var parts []columnar.Table
	for _, piece := range n.Dataset.Pieces() {
		ok, err := dataset.CheckPartition(piece.PartitionValues(), n.PartitionFilters())
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		tbl, err := piece.Read(ctx, fileColumns)
		if err != nil {
			return nil, err
		}
		for _, key := range partKeys {
			if !contains(n.ColumnsBackward(), key) {
				continue
			}
			v := piece.PartitionValues()[key]
			col := columnFromValues(repeat(v, tbl.NumRows()), repeat(true, tbl.NumRows()))
			tbl, err = tbl.AppendColumn(key, col)
			if err != nil {
				return nil, err
			}
		}
		parts = append(parts, tbl)
	}

	combined, err := concatTables(parts)
	if err != nil {
		return nil, err
	}
	return kernel.ApplyFilters(combined, n.Filters())
}

func (e *Executor) materializeSelect(ctx context.Context, n *plan.Select) (columnar.Table, error) {
	child, err := e.Materialize(ctx, n.Child)
	if err != nil {
		return nil, err
	}
	proj, err := child.Project(n.Columns)
	if err != nil {
		return nil, err
	}
	if len(n.Renames) == 0 {
		return proj, nil
	}
	return proj.RenameColumns(n.Renames)
}

func (e *Executor) materializeOrder(ctx context.Context, n *plan.Order) (columnar.Table, error) {
	child, err := e.Materialize(ctx, n.Child)
	if err != nil {
		return nil, err
	}
	cols := make([]string, len(n.Keys))
	asc := make([]bool, len(n.Keys))
	for i, k := range n.Keys {
		cols[i], asc[i] = k.Column, k.Ascending
	}
	indices, err := kernel.SortIndices(child, cols, asc)
	if err != nil {
		return nil, err
	}
	return child.Take(indices)
}

func (e *Executor) materializeFillNull(ctx context.Context, n *plan.FillNull) (columnar.Table, error) {
	child, err := e.Materialize(ctx, n.Child)
	if err != nil {
		return nil, err
	}
	replacements := make(map[string]columnar.Column, len(n.Columns))
	for _, name := range n.Columns {
		fillExpr := expr.FillNull{Operand: expr.ColumnRef{Name: name}, With: expr.Literal{Value: n.Value}}
		col, err := fillExpr.Eval(child)
		if err != nil {
			return nil, err
		}
		replacements[name] = col
	}
	return withReplacedColumns(child, replacements)
}

func (e *Executor) materializeCast(ctx context.Context, n *plan.Cast) (columnar.Table, error) {
	child, err := e.Materialize(ctx, n.Child)
	if err != nil {
		return nil, err
	}
	replacements := make(map[string]columnar.Column, len(n.Columns))
	for _, name := range n.Columns {
		col, err := child.Column(name)
		if err != nil {
			return nil, err
		}
		cast, err := kernel.Cast(col, n.Kind_)
		if err != nil {
			return nil, err
		}
		replacements[name] = cast
	}
	return withReplacedColumns(child, replacements)
}

func (e *Executor) materializeCalculation(ctx context.Context, n *plan.Calculation) (columnar.Table, error) {
	child, err := e.Materialize(ctx, n.Child)
	if err != nil {
		return nil, err
	}
	expression, ok := n.Expr.(expr.Expr)
	if !ok {
		return nil, ErrExprType.New(n.Kind())
	}
	col, err := expression.Eval(child)
	if err != nil {
		return nil, err
	}
	withKey, err := child.AppendColumn(n.Key, col)
	if err != nil {
		return nil, err
	}
	filtered, err := kernel.ApplyFilters(withKey, n.Filters())
	if err != nil {
		return nil, err
	}
	return filtered.Project(n.ColumnsBackward())
}

func (e *Executor) materializeBooleanMask(ctx context.Context, n *plan.BooleanMask) (columnar.Table, error) {
	child, err := e.Materialize(ctx, n.Child)
	if err != nil {
		return nil, err
	}
	expression, ok := n.Expr.(expr.Expr)
	if !ok {
		return nil, ErrExprType.New(n.Kind())
	}
	maskCol, err := expression.Eval(child)
	if err != nil {
		return nil, err
	}
	mask := make([]bool, maskCol.Len())
	for i := range mask {
		if !maskCol.IsNull(i) {
			mask[i], _ = maskCol.At(i).(bool)
		}
	}
	return child.Filter(mask)
}

func withReplacedColumns(table columnar.Table, replacements map[string]columnar.Column) (columnar.Table, error) {
	names := table.ColumnNames()
	cols := make([]columnar.Column, len(names))
	for i, name := range names {
		if r, ok := replacements[name]; ok {
			cols[i] = r
			continue
		}
		c, err := table.Column(name)
		if err != nil {
			return nil, err
		}
		cols[i] = c
	}
	return columnar.NewMemTable(names, cols)
}

func columnsMinus(all, remove []string) []string {
	removeSet := make(map[string]bool, len(remove))
	for _, r := range remove {
		removeSet[r] = true
	}
	out := make([]string, 0, len(all))
	for _, c := range all {
		if !removeSet[c] {
			out = append(out, c)
		}
	}
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func repeat[T any](v T, n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = v
	}
	return out
}
