package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/colqhq/colq/dataset"
)

// newRegisterCmd is a sanity-check helper: open a local dataset
// directory and report its partition keys and piece count, so a
// dataset root can be validated before a query ever points at it.
func newRegisterCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register <path>",
		Short: "Open a local dataset root and report its partition layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := dataset.OpenLocalDataset(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "partition keys: %v\n", ds.PartitionKeys())
			fmt.Fprintf(cmd.OutOrStdout(), "pieces: %d\n", len(ds.Pieces()))
			for _, piece := range ds.Pieces() {
				fmt.Fprintf(cmd.OutOrStdout(), "  %v schema=%v\n", piece.PartitionValues(), piece.Schema())
			}
			return nil
		},
	}
	return cmd
}
