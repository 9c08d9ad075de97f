package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/graphrt/gds/builder"
	"github.com/graphrt/gds/csvio"
)

func newImportCmd() *cobra.Command {
	var nodesPath string
	var relsPaths []string
	var snapshotPath string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import a CSV node/relationship graph into a bbolt snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger()
			defer log.Sync()

			b := builder.NewGraphBuilder().Nodes(nodesPath)
			for _, p := range relsPaths {
				b = b.Relationships(p)
			}
			store, err := b.Build()
			if err != nil {
				return fmt.Errorf("import: %w", err)
			}
			log.Info("graph imported",
				zap.Int64("node_count", store.NodeCount),
				zap.Int("relationship_types", len(store.RelationshipTypes())),
			)

			if snapshotPath != "" {
				if err := csvio.SnapshotStore(snapshotPath, store); err != nil {
					return fmt.Errorf("import: snapshot: %w", err)
				}
				log.Info("snapshot written", zap.String("path", snapshotPath))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&nodesPath, "nodes", "", "path to a node CSV file (required)")
	cmd.Flags().StringArrayVar(&relsPaths, "relationships", nil, "path to a relationship CSV file (repeatable)")
	cmd.Flags().StringVar(&snapshotPath, "snapshot", "", "optional bbolt snapshot file to write")
	cmd.MarkFlagRequired("nodes")
	return cmd
}
