package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/discochess/gobbler"
	"github.com/discochess/gobbler/internal/snapshot"
	"github.com/discochess/gobbler/internal/stats"
	prometheusstats "github.com/discochess/gobbler/internal/stats/prometheus"
)

const version = "1.0.0"

var (
	dataDir     string
	generation  uint64
	initial     bool
	storeEvery  bool
	verbose     bool
	metricsAddr string
	compression string
)

var rootCmd = &cobra.Command{
	Use:   "gobb-analyze",
	Short: "Exhaustive retrograde analysis of Gobblet Gobblers",
	Long: `Gobb-analyze classifies every reachable Gobblet Gobblers position as
won, lost or unfixed for the player to move, by iterating retrograde
propagation passes to a fixed point.

Results are persisted per generation, so an interrupted analysis
resumes from the last stored generation.

Examples:
  # Resume from the latest stored generation (or start from scratch)
  gobb-analyze -d ./data

  # Start over, storing a snapshot after every generation
  gobb-analyze -d ./data -i -s

  # Keep the snapshots in a GCS bucket
  gobb-analyze -d gs://my-bucket/gobblers`,
	Version: version,
	RunE:    runAnalyze,
}

func init() {
	rootCmd.Flags().StringVarP(&dataDir, "data-dir", "d", ".", "directory (or gs:// URL) for analysis data files")
	rootCmd.Flags().Uint64VarP(&generation, "generation", "g", 0, "resume analysis from generation NUM")
	rootCmd.Flags().BoolVarP(&initial, "init", "i", false, "start analysis from scratch")
	rootCmd.Flags().BoolVarP(&storeEvery, "store-every", "s", false, "store analysis data after every generation")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "expose Prometheus metrics on this address")
	rootCmd.Flags().StringVar(&compression, "compression", "zstd", "snapshot compression for gs:// backends: zstd, gzip, none")
	rootCmd.MarkFlagsMutuallyExclusive("generation", "init")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer logger.Sync()

	var collector stats.Collector = stats.NewNoop()
	if metricsAddr != "" {
		collector = prometheusstats.New(nil)
		go func() {
			if err := http.ListenAndServe(metricsAddr, promhttp.Handler()); err != nil {
				logger.Warn("metrics server stopped", zap.Error(err))
			}
		}()
	}

	mode := snapshot.StoreFinal
	if storeEvery {
		mode = snapshot.StoreEvery
	}

	ctx := context.Background()

	dirOption, err := gobbler.WithDataDirCompression(ctx, dataDir, compression)
	if err != nil {
		return err
	}

	analyzer, err := gobbler.NewAnalyzer(
		dirOption,
		gobbler.WithMode(mode),
		gobbler.WithLogger(logger),
		gobbler.WithStats(collector),
	)
	if err != nil {
		return err
	}

	switch {
	case initial:
		return analyzer.Start(ctx)
	case cmd.Flags().Changed("generation"):
		return analyzer.ResumeFrom(ctx, generation)
	default:
		return analyzer.Resume(ctx)
	}
}

func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	return cfg.Build()
}
