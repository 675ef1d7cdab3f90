package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/inodb/dragen-qc/internal/collect"
	"github.com/inodb/dragen-qc/internal/duckdb"
	"github.com/inodb/dragen-qc/internal/report"
	"github.com/inodb/dragen-qc/internal/vcmetrics"
)

type reportOptions struct {
	format        string
	outputFile    string
	ignoreSamples []string
	dbPath        string
	verbose       bool
}

func newReportCmd() *cobra.Command {
	opts := &reportOptions{}

	cmd := &cobra.Command{
		Use:   "report [paths...]",
		Short: "Parse vc_metrics.csv files and render a QC report",
		Example: `  dragen-qc report /runs/batch42
  dragen-qc report --format csv -o qc.csv sample.vc_metrics.csv
  dragen-qc report --ignore-samples 'T_*' --db qc.duckdb /runs`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Configured default format applies unless the flag is set.
			if !cmd.Flags().Changed("format") {
				if f := viper.GetString("format"); f != "" {
					opts.format = f
				}
			}
			return runReport(args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "table", "Output format: table, csv, json")
	cmd.Flags().StringVarP(&opts.outputFile, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().StringSliceVar(&opts.ignoreSamples, "ignore-samples", nil, "Sample name glob patterns to exclude")
	cmd.Flags().StringVar(&opts.dbPath, "db", "", "Also write merged metrics to a DuckDB database at this path")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}

func runReport(paths []string, opts *reportOptions) error {
	logger := zap.NewNop()
	if opts.verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("create logger: %w", err)
		}
		logger = l
	}

	files, err := collect.Find(paths)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no %s files found", vcmetrics.FileSuffix)
	}

	parser := vcmetrics.NewParser()
	parser.SetLogger(logger)

	all := make(map[string]vcmetrics.Record)
	for _, f := range files {
		data := parser.Parse(f.Data, f.Path)
		for _, diag := range parser.Diagnostics() {
			logger.Warn("skipped metrics row", zap.Error(diag))
		}
		collect.Merge(all, data, logger)
	}

	ignore := append(viper.GetStringSlice("ignore_samples"), opts.ignoreSamples...)
	all = collect.IgnoreSamples(all, ignore)
	if len(all) == 0 {
		return fmt.Errorf("no samples left after filtering")
	}
	logger.Info("found variant calling metrics", zap.Int("samples", len(all)))

	if opts.dbPath != "" {
		if err := writeDatabase(opts.dbPath, all, files); err != nil {
			return err
		}
	}

	out := io.Writer(os.Stdout)
	if opts.outputFile != "" {
		f, err := os.Create(opts.outputFile)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	rep := report.New(all)
	switch opts.format {
	case "table":
		return rep.WriteTable(out)
	case "csv":
		return rep.WriteCSV(out)
	case "json":
		return rep.WriteJSON(out)
	default:
		return fmt.Errorf("unknown output format %q", opts.format)
	}
}

// writeDatabase persists the merged metrics plus the fingerprints of
// the files they came from.
func writeDatabase(path string, data map[string]vcmetrics.Record, files []collect.InputFile) error {
	store, err := duckdb.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.WriteSampleMetrics(data); err != nil {
		return fmt.Errorf("write metrics database: %w", err)
	}

	fingerprints := make([]duckdb.FileFingerprint, 0, len(files))
	for _, f := range files {
		fp, err := duckdb.StatFile(f.Path)
		if err != nil {
			continue
		}
		fingerprints = append(fingerprints, fp)
	}
	return store.RecordSources(fingerprints)
}
