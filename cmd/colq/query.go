package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/colqhq/colq/sqlfront"
)

func newQueryCmd(configPath *string) *cobra.Command {
	var datasets []string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "query <sql>",
		Short: "Parse, optimise and run a SELECT against registered tables/datasets",
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
			out, err := p.Collect(context.Background(), verbose)
			if err != nil {
				return fmt.Errorf("collect: %w", err)
			}
			printTable(out)
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&datasets, "dataset", nil, "register a local dataset as name=path (repeatable)")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "log each materialised plan node")
	return cmd
}
