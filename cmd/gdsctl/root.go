package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/graphrt/gds/glog"
)

var configPath string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "gdsctl",
		Short: "Import, run, and estimate graph-analytics workloads",
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a gds.yaml config file")

	root.AddCommand(newImportCmd())
	root.AddCommand(newRunCmd())
	root.AddCommand(newEstimateCmd())
	return root
}

func logger() *zap.Logger {
	return glog.NewDevelopment("gdsctl")
}
