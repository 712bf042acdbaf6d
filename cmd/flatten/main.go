// Command flatten flattens nested arrays found in JSON or YAML documents.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose bool
	opts    = options{depth: 1, jobs: 4}

	// Logger
	logger = zap.NewNop()
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "flatten [file ...]",
	Short: "Flatten nested arrays in JSON or YAML documents",
	Long: `Reads every document from the given files (or stdin when none are given),
flattens each one to the requested depth and writes the results in input order.

Examples:
  echo '[1,[2,[3]]]' | flatten --depth 2
  flatten --deep --format yaml a.yaml b.json`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		config.OutputPaths = []string{"stderr"}
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
	RunE: runFlatten,
}

func init() {
	flags := rootCmd.Flags()
	flags.Float64VarP(&opts.depth, "depth", "d", 1, "number of nesting levels to collapse (fractions are floored)")
	flags.BoolVar(&opts.deep, "deep", false, "flatten until no nested arrays remain")
	flags.StringVarP(&opts.format, "format", "f", "", "output format: json or yaml (default: format of the first input)")
	flags.StringVarP(&opts.input, "input-format", "i", "", "input format for all inputs (default: by file extension, json for stdin)")
	flags.StringVarP(&opts.output, "output", "o", "", "write results to this file instead of stdout")
	flags.IntVarP(&opts.jobs, "jobs", "j", 4, "number of files processed concurrently")
	rootCmd.MarkFlagsMutuallyExclusive("depth", "deep")

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
