// Package main provides the dragen-qc command-line tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dragen-qc",
		Short: "Aggregate DRAGEN variant-calling QC metrics into per-sample reports",
		Long: `dragen-qc collects DRAGEN vc_metrics.csv files, merges the per-sample
variant-calling metrics across runs, derives indel and filtered-variant
totals, and renders summary and detail views.`,
		SilenceUsage: true,
	}

	cobra.OnInitialize(initConfig)

	cmd.AddCommand(newReportCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("dragen-qc version %s (%s) built %s\n", version, commit, date)
		},
	}
}

// initConfig loads ~/.dragen-qc.yaml and DRAGEN_QC_* environment
// variables. A missing config file is not an error.
func initConfig() {
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
		viper.SetConfigName(".dragen-qc")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("DRAGEN_QC")
	viper.AutomaticEnv()

	_ = viper.ReadInConfig()
}
