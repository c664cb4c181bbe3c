package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose bool

	// Logger
	logger = zap.NewNop()
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "genni",
	Short: "Find every (x, y) whose product equals its digit-wise genni product",
	Long: `genni searches all 8-digit x and 7-digit y for pairs where x*y equals
the concatenation of x's first digit and the two-digit products of the
remaining digits of x with the digits of y.

The search meets in the middle: the low three digits of x and y are indexed,
and the high digits probe that index in parallel.

Run without a subcommand to search the full space.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		l, err := config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: runSearch,
}

// searchCmd runs the full or bounded search
var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search for all solutions",
	Long: `Enumerates the right halves, builds the index and probes it with every
left half. Bounds default to the full space and can be narrowed with a YAML
file:

  xr: {min: 870, max: 879}
  yr: {min: 540, max: 549}
  xl: {min: 39870, max: 39879}
  yl: {min: 9560, max: 9569}`,
	Args: cobra.NoArgs,
	RunE: runSearch,
}

// checkCmd verifies one pair directly
var checkCmd = &cobra.Command{
	Use:   "check <x> <y>",
	Short: "Check one pair against the equation without searching",
	Args:  cobra.ExactArgs(2),
	RunE:  runCheck,
}

// serveCmd speaks the line protocol on stdin/stdout
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the line-protocol server on stdin/stdout",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	for _, c := range []*cobra.Command{rootCmd, searchCmd, serveCmd} {
		c.Flags().IntVarP(&searchOpts.workers, "workers", "j", runtime.GOMAXPROCS(0), "Parallel workers")
		c.Flags().IntVar(&searchOpts.shards, "shards", 0, "Index partitions (default: workers)")
	}
	for _, c := range []*cobra.Command{rootCmd, searchCmd} {
		c.Flags().StringVarP(&searchOpts.config, "config", "c", "", "YAML bounds file")
		c.Flags().BoolVar(&searchOpts.progress, "progress", true, "Show a progress bar on stderr")
		c.Flags().BoolVar(&searchOpts.sorted, "sort", false, "Print solutions ordered by x, then y")
		c.Flags().BoolVar(&searchOpts.metrics, "metrics", false, "Log search metrics when done")
	}

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
