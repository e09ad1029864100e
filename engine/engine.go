// Package engine is the embedding application's front door: register
// tables and datasets, build a fluent Plan over them, and collect a
// result. It wires plan/optimizer/exec/expr together behind one small
// surface (spec §6 "External interfaces").
package engine

import (
	"github.com/sirupsen/logrus"

	"github.com/colqhq/colq/columnar"
	"github.com/colqhq/colq/config"
	"github.com/colqhq/colq/dataset"
	"github.com/colqhq/colq/exec"
	"github.com/colqhq/colq/expr"
	"github.com/colqhq/colq/plan"
)

// Engine owns every registered table/dataset/UDF and the executor that
// runs plans against them.
type Engine struct {
	cfg      config.Config
	logger   *logrus.Logger
	tables   map[string]columnar.Table
	datasets map[string]dataset.Dataset
	udfs     map[string]expr.UdfFunc
	executor *exec.Executor
}

// New builds an Engine from cfg, with its own logrus.Logger the
// executor logs materialisation events to when a Plan's Collect is
// called with verbose=true or cfg.Verbose is set.
func New(cfg config.Config) *Engine {
	logger := logrus.New()
	return &Engine{
		cfg:      cfg,
		logger:   logger,
		tables:   make(map[string]columnar.Table),
		datasets: make(map[string]dataset.Dataset),
		udfs:     make(map[string]expr.UdfFunc),
		executor: exec.New(cfg.CacheBytes, logger),
	}
}

// RegisterTable makes an in-memory table selectable by name.
func (e *Engine) RegisterTable(name string, table columnar.Table) error {
	if _, exists := e.tables[name]; exists {
		return ErrAlreadyRegistered.New(name)
	}
	e.tables[name] = table
	return nil
}

// RegisterDataset makes a partitioned dataset selectable by name.
func (e *Engine) RegisterDataset(name string, ds dataset.Dataset) error {
	if _, exists := e.datasets[name]; exists {
		return ErrAlreadyRegistered.New(name)
	}
	e.datasets[name] = ds
	return nil
}

// RegisterUDF makes a scalar function available to Plan.Udf by name.
func (e *Engine) RegisterUDF(name string, fn expr.UdfFunc) {
	e.udfs[name] = fn
}

// UDF looks up a previously registered function.
func (e *Engine) UDF(name string) (expr.UdfFunc, bool) {
	fn, ok := e.udfs[name]
	return fn, ok
}

// Select starts a new Plan rooted at the table or dataset registered
// under name.
func (e *Engine) Select(name string) (*Plan, error) {
	if table, ok := e.tables[name]; ok {
		return &Plan{engine: e, node: plan.NewTableSource(name, table)}, nil
	}
	if ds, ok := e.datasets[name]; ok {
		return &Plan{engine: e, node: plan.NewDatasetSource(name, ds)}, nil
	}
	return nil, ErrTableNotFound.New(name)
}
