package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/graphrt/gds"
)

func newEstimateCmd() *cobra.Command {
	var nodeCount, relCount int64

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate memory usage for a prospective node/relationship count",
		RunE: func(cmd *cobra.Command, args []string) error {
			offsets := gds.SizeOfPaged(nodeCount, 8)
			degrees := gds.SizeOfPaged(nodeCount, 4)
			// Every edge costs at least one delta-varint byte; this is a
			// lower bound, not an estimate of the post-compression size.
			adjacency := gds.SizeOfPaged(relCount, 1)
			total := offsets + degrees + adjacency

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "offsets (long array):    %s\n", gds.HumanSize(offsets))
			fmt.Fprintf(w, "degrees (int array):      %s\n", gds.HumanSize(degrees))
			fmt.Fprintf(w, "adjacency (lower bound):  %s\n", gds.HumanSize(adjacency))
			fmt.Fprintf(w, "total (lower bound):      %s\n", gds.HumanSize(total))
			return nil
		},
	}
	cmd.Flags().Int64Var(&nodeCount, "nodes", 0, "prospective node count (required)")
	cmd.Flags().Int64Var(&relCount, "relationships", 0, "prospective relationship count")
	cmd.MarkFlagRequired("nodes")
	return cmd
}
