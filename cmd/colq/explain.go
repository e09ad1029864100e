package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/colqhq/colq/optimizer"
	"github.com/colqhq/colq/plan"
	"github.com/colqhq/colq/sqlfront"
)

func newExplainCmd(configPath *string) *cobra.Command {
	var datasets []string

	cmd := &cobra.Command{
		Use:   "explain <sql>",
		Short: "Print the optimised plan tree for a SELECT without running it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := buildEngine(*configPath, datasets)
			if err != nil {
				return err
			}
			q, err := sqlfront.Parse(args[0])
			if err != nil {
				return fmt.Errorf("parse: %w", err)
			}
			p, err := sqlfront.Translate(eng, q)
			if err != nil {
				return fmt.Errorf("translate: %w", err)
			}
			if _, err := optimizer.Optimize(p.Node()); err != nil {
				return fmt.Errorf("optimize: %w", err)
			}
			printPlan(cmd.OutOrStdout(), p.Node(), 0)
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&datasets, "dataset", nil, "register a local dataset as name=path (repeatable)")
	return cmd
}

func printPlan(w io.Writer, n plan.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(w, "%s%s columns=%v filters=%v fp=%s\n",
		indent, n.Kind(), n.ColumnsVisible(), n.Filters(), n.Fingerprint().String())
	for _, child := range n.Children() {
		printPlan(w, child, depth+1)
	}
}
