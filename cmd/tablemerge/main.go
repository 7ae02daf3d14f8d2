// Package main provides the CLI entry point for tablemerge.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/tablemerge-go/pkg/tablemerge"
	"github.com/ukaji3/tablemerge-go/pkg/tablemerge/output"
	"github.com/ukaji3/tablemerge-go/pkg/tablemerge/xlsx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	outputPath  string
	configPath  string
	sheetName   string
	anchor      string
	tableName   string
	nameColumn  string
	valueColumn string
	maxDistance int
	noDetect    bool
	reportPath  string
	pretty      bool
	verbose     bool

	logger *zap.Logger
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tablemerge [input.xlsx]",
		Short: "Combine the tables of an Excel workbook into one summary table",
		Long: `tablemerge reads every table of a workbook, collapses rows whose Name
matches after normalization (case, trailing "(...)" and trailing spaces are
ignored) into one [Name, Count, Value] row per table, and writes the results
to a single table on a fresh "Combined" sheet.`,
		Args: cobra.ExactArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE:         run,
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: overwrite input)")
	rootCmd.Flags().StringVar(&configPath, "config", "", "YAML options file")
	rootCmd.Flags().StringVar(&sheetName, "sheet", tablemerge.DefaultSheetName, "Destination sheet (replaced if present)")
	rootCmd.Flags().StringVar(&anchor, "anchor", tablemerge.DefaultAnchor, "Top-left cell of the combined table")
	rootCmd.Flags().StringVar(&tableName, "table-name", tablemerge.DefaultTableName, "Name of the combined table")
	rootCmd.Flags().StringVar(&nameColumn, "name-column", tablemerge.ColumnName, "Header of the column to group by")
	rootCmd.Flags().StringVar(&valueColumn, "value-column", tablemerge.ColumnValue, "Header of the column to sum")
	rootCmd.Flags().IntVar(&maxDistance, "max-distance", 0, "Also group names within this many edits (0: exact)")
	rootCmd.Flags().BoolVar(&noDetect, "no-detect", false, "Do not detect table regions on sheets without tables")
	rootCmd.Flags().StringVar(&reportPath, "report", "", "Write a JSON report to this path (- for stdout, before the status line)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print the JSON report")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	opts, err := loadOptions(cmd)
	if err != nil {
		return err
	}

	logger.Debug("Merging workbook",
		zap.String("input", inputPath),
		zap.String("sheet", opts.SheetName),
		zap.Int("max_distance", opts.MaxDistance))

	report, err := xlsx.MergeFile(inputPath, outputPath, opts, logger)
	if err != nil {
		return fmt.Errorf("merge failed: %w", err)
	}

	if reportPath != "" {
		jsonData, err := output.ToJSON(report, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		if err := writeReport(cmd.OutOrStdout(), reportPath, jsonData); err != nil {
			return err
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), report.Status)
	return nil
}

// writeReport writes the JSON report to path, or to out for "-".
func writeReport(out io.Writer, path string, jsonData []byte) error {
	if path == "-" {
		_, err := fmt.Fprintln(out, string(jsonData))
		return err
	}
	if err := os.WriteFile(path, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// loadOptions reads the config file, if any, and applies flags the user set.
func loadOptions(cmd *cobra.Command) (tablemerge.Options, error) {
	opts := tablemerge.DefaultOptions()
	if configPath != "" {
		var err error
		if opts, err = tablemerge.LoadOptions(configPath); err != nil {
			return opts, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("sheet") {
		opts.SheetName = sheetName
	}
	if flags.Changed("anchor") {
		opts.Anchor = anchor
	}
	if flags.Changed("table-name") {
		opts.TableName = tableName
	}
	if flags.Changed("name-column") {
		opts.NameColumn = nameColumn
	}
	if flags.Changed("value-column") {
		opts.ValueColumn = valueColumn
	}
	if flags.Changed("max-distance") {
		opts.MaxDistance = maxDistance
	}
	if flags.Changed("no-detect") {
		detect := !noDetect
		opts.DetectTables = &detect
	}

	return opts, nil
}
