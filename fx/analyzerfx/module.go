// Package analyzerfx provides an fx module for a disk-backed analyzer.
package analyzerfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/discochess/gobbler"
	"github.com/discochess/gobbler/internal/snapshot"
	"github.com/discochess/gobbler/internal/snapshot/filestore"
	"github.com/discochess/gobbler/internal/stats"
	"github.com/discochess/gobbler/internal/stats/logger"
)

// Config holds configuration for the analyzer.
type Config struct {
	// DataDir is the directory holding the analysis data files.
	DataDir string

	// StoreEvery stores a snapshot after every generation instead of
	// only the terminating one.
	StoreEvery bool
}

// Module provides a disk-backed analyzer.
// Requires a *zap.Logger and a Config to be provided.
var Module = fx.Module("gobbanalyzer",
	fx.Provide(
		newStatsCollector,
		newAnalyzer,
	),
)

func newStatsCollector(log *zap.Logger) stats.Collector {
	return logger.New(log.Named("gobbler.stats"))
}

// Params holds dependencies for creating the analyzer.
type Params struct {
	fx.In

	Config    Config
	Logger    *zap.Logger
	Collector stats.Collector
}

// Result holds the provided analyzer.
type Result struct {
	fx.Out

	Analyzer *gobbler.Analyzer
}

func newAnalyzer(p Params) (Result, error) {
	mode := snapshot.StoreFinal
	if p.Config.StoreEvery {
		mode = snapshot.StoreEvery
	}

	analyzer, err := gobbler.NewAnalyzer(
		gobbler.WithHandler(filestore.New(p.Config.DataDir)),
		gobbler.WithMode(mode),
		gobbler.WithStats(p.Collector),
		gobbler.WithLogger(p.Logger.Named("gobbler")),
	)
	if err != nil {
		return Result{}, err
	}

	return Result{Analyzer: analyzer}, nil
}
