package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/graphrt/gds/algo"
	"github.com/graphrt/gds/builder"
	"github.com/graphrt/gds/config"
	"github.com/graphrt/gds/csvio"
	"github.com/graphrt/gds/projection"
)

func newRunCmd() *cobra.Command {
	var snapshotPath string
	var relType string
	var algorithm string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run an algorithm façade against a snapshotted graph",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger()
			defer log.Sync()

			var ac *config.AlgorithmConfig
			var err error
			if configPath != "" {
				_, ac, err = config.Load(configPath)
			} else {
				_, ac = config.Default()
			}
			if err != nil {
				return fmt.Errorf("run: load config: %w", err)
			}

			registry := projection.NewRegistry()
			store, err := csvio.LoadSnapshot(snapshotPath, registry)
			if err != nil {
				return fmt.Errorf("run: load snapshot: %w", err)
			}

			rt := registry.Type(relType)
			list := store.Adjacency(rt)
			if list == nil {
				return fmt.Errorf("run: no adjacency list for relationship type %q", relType)
			}
			graph := algo.NewGraph(store.NodeCount, list)

			runBuilder := builder.NewRun().
				DampingFactor(ac.DampingFactor).
				MaxIterations(ac.MaxIterations).
				ConvergenceThreshold(ac.ConvergenceThresh).
				Concurrency(maxInt(ac.Concurrency, 1))

			switch algorithm {
			case "pagerank":
				scores, err := runBuilder.PageRank(graph)
				if err != nil {
					return fmt.Errorf("run: pagerank: %w", err)
				}
				for i := int64(0); i < store.NodeCount; i++ {
					fmt.Printf("%d\t%v\n", i, scores.Get(i))
				}
			case "louvain":
				communities, err := runBuilder.Louvain(graph)
				if err != nil {
					return fmt.Errorf("run: louvain: %w", err)
				}
				for i := int64(0); i < store.NodeCount; i++ {
					fmt.Printf("%d\t%d\n", i, communities.Get(i))
				}
			case "degree":
				scores, err := runBuilder.WeightedDegreeCentrality(graph, nil)
				if err != nil {
					return fmt.Errorf("run: degree: %w", err)
				}
				for i := int64(0); i < store.NodeCount; i++ {
					fmt.Printf("%d\t%v\n", i, scores.Get(i))
				}
			default:
				return fmt.Errorf("run: unknown algorithm %q (want pagerank, louvain, or degree)", algorithm)
			}

			log.Info("run complete", zap.String("algorithm", algorithm), zap.Int64("node_count", store.NodeCount))
			return nil
		},
	}
	cmd.Flags().StringVar(&snapshotPath, "snapshot", "", "path to a bbolt snapshot written by import (required)")
	cmd.Flags().StringVar(&relType, "relationship-type", "", "relationship type to run the algorithm over (required)")
	cmd.Flags().StringVar(&algorithm, "algorithm", "pagerank", "one of: pagerank, louvain, degree")
	cmd.MarkFlagRequired("snapshot")
	cmd.MarkFlagRequired("relationship-type")
	return cmd
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
