// Command measure checks the ordered tree against a reference multiset under random
// workloads and times its operations.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose bool
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "measure",
	Short: "Verify and benchmark the ordered multiset tree",
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
	SilenceUsage: true,
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Run random add/contains/erase queries against a reference multiset",
	Long: `For every max value, runs the queries on a fresh tree. Each query is an add,
a contains or an erase, picked uniformly. Values are drawn from [-max/2, max-max/2)
or, with some probability, from the values added so far. After every query the tree's
size must match the reference; every --check-every queries its sorted contents must too.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVerify(cmd.Context(), logger, verifyCfg)
	},
}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Time erase and contains on trees of growing churn",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBench(logger, benchCfg)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	verifyCmd.Flags().IntVar(&verifyCfg.queries, "queries", 50_000, "Queries per max value")
	verifyCmd.Flags().Int64Var(&verifyCfg.seed, "seed", 2018, "Random seed")
	verifyCmd.Flags().IntSliceVar(&verifyCfg.maxValues, "max-values", []int{1, 2, 5, 13, 42, 1024, 1_000_000_000}, "Value ranges, one workload each")
	verifyCmd.Flags().IntVar(&verifyCfg.checkEvery, "check-every", 1, "Compare the sorted contents every N queries")
	verifyCmd.Flags().IntVar(&verifyCfg.jobs, "jobs", 1, "Workloads run at the same time")

	benchCmd.Flags().Uint32Var(&benchCfg.n, "n", 1_000_000, "Values added to each tree")
	benchCmd.Flags().Uint32Var(&benchCfg.steps, "steps", 50, "Number of churn levels")

	rootCmd.AddCommand(verifyCmd, benchCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
