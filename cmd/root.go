package cmd

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hydrowx/wxgen/wg"
	"github.com/hydrowx/wxgen/wg/climo"
	"github.com/hydrowx/wxgen/wg/report"
)

var (
	configPath  string // Path to the generator YAML config
	outDir      string // Directory for per-realization outputs
	workers     int    // Worker pool size
	numReal     int    // Number of realizations to simulate
	startReal   int    // First realization index (for splitting runs into chunks)
	logLevel    string // Log verbosity level
	skipReports bool   // Simulate without writing per-realization files
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "wxgen",
	Short: "Stochastic daily weather generator with extreme events",
}

// runCmd simulates the configured realizations across the worker pool.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the weather generator",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg, store := loadInputs()

		if err := os.MkdirAll(outDir, 0o755); err != nil {
			logrus.Fatalf("unable to create output directory %s: %v", outDir, err)
		}

		var sink wg.Sink
		if !skipReports {
			sink = func(res *wg.Result) error {
				return report.Write(outDir, cfg.Basin, cfg.LatitudeDeg, res)
			}
		}

		logrus.Infof("Using %d workers for %d realizations (%d through %d)",
			workers, numReal, startReal, startReal+numReal-1)
		startTime := time.Now()

		coord := &wg.Coordinator{Config: cfg, Store: store, Workers: workers}
		sum, err := coord.Run(startReal, numReal, sink)
		if err != nil {
			logrus.Errorf("Finished %d successful runs out of %d realizations: %v",
				sum.Succeeded, sum.Requested, err)
			os.Exit(2)
		}

		logrus.Infof("Finished %d realizations successfully in %s",
			sum.Succeeded, time.Since(startTime).Round(time.Millisecond))
	},
}

// checkCmd validates the config and climatology tables without simulating.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the generator config and climatology tables",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg, store := loadInputs()

		logrus.Infof("config OK: basin %s, %s through %s (%d days), %d event classes",
			cfg.Basin, cfg.StartDate, cfg.EndDate, cfg.TotalDays(), len(cfg.Events))
		// A throwaway realization proves every distribution constructs.
		if _, err := wg.NewRealization(cfg, store, 0); err != nil {
			logrus.Fatalf("distribution construction failed: %v", err)
		}
		logrus.Info("all monthly distributions and event classes construct cleanly")
	},
}

// loadInputs parses and validates the config, then loads the basin
// climatology into a store. Any problem is fatal: these are start-up
// construction errors, never retried.
func loadInputs() (*wg.Config, *climo.Store) {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		logrus.Fatalf("unable to load config: %v", err)
	}
	curves, err := climo.LoadCurves(cfg.Climatology, cfg.Basin)
	if err != nil {
		logrus.Fatalf("unable to load climatology: %v", err)
	}
	a, b := cfg.Matrices()
	store, err := climo.NewStore(curves, cfg.BiasConstants(), a, b)
	if err != nil {
		logrus.Fatalf("invalid climatology: %v", err)
	}
	return cfg, store
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	for _, c := range []*cobra.Command{runCmd, checkCmd} {
		c.Flags().StringVar(&configPath, "config", "wxgen.yaml", "Generator config YAML")
		c.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
	}

	runCmd.Flags().StringVar(&outDir, "out", "Results", "Output directory for realization files")
	runCmd.Flags().IntVar(&workers, "workers", 1, "Number of worker processes")
	runCmd.Flags().IntVar(&numReal, "num-realizations", 100, "Number of realizations for simulation")
	runCmd.Flags().IntVar(&startReal, "start-realization", 1, "First realization index")
	runCmd.Flags().BoolVar(&skipReports, "no-reports", false, "Simulate without writing per-realization files")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(checkCmd)
}
