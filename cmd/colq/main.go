// Command colq is a thin CLI shell around the engine package: register
// local datasets given with --dataset flags, run a SQL query against
// them, and print the result or its optimised plan.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string
	root := &cobra.Command{
		Use:   "colq",
		Short: "Run analytic queries against registered tables and datasets",
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a colq TOML config file")
	root.AddCommand(newQueryCmd(&configPath), newExplainCmd(&configPath), newRegisterCmd(&configPath))
	return root
}
