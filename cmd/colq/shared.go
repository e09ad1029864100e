package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/colqhq/colq/columnar"
	"github.com/colqhq/colq/config"
	"github.com/colqhq/colq/dataset"
	"github.com/colqhq/colq/engine"
)

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// buildEngine constructs an Engine from cfg and a list of "name=path"
// local dataset registrations, the CLI's stand-in for whatever
// persistent catalog a real deployment would keep.
func buildEngine(cfgPath string, datasetFlags []string) (*engine.Engine, error) {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return nil, err
	}
	eng := engine.New(cfg)
	for _, flag := range datasetFlags {
		parts := strings.SplitN(flag, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid --dataset value %q, want name=path", flag)
		}
		ds, err := dataset.OpenLocalDataset(parts[1])
		if err != nil {
			return nil, err
		}
		if err := eng.RegisterDataset(parts[0], ds); err != nil {
			return nil, err
		}
	}
	return eng, nil
}

func printTable(table columnar.Table) {
	w := tabwriter.NewWriter(os.Stdout, 0, 2, 2, ' ', 0)
	names := table.ColumnNames()
	fmt.Fprintln(w, strings.Join(names, "\t"))
	for i := 0; i < table.NumRows(); i++ {
		cells := make([]string, len(names))
		for j, name := range names {
			col, _ := table.Column(name)
			if col.IsNull(i) {
				cells[j] = "NULL"
			} else {
				cells[j] = fmt.Sprintf("%v", col.At(i))
			}
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
	w.Flush()
}
