// Package inspectorfx provides an fx module for a disk-backed
// inspector.
package inspectorfx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/discochess/gobbler"
	"github.com/discochess/gobbler/internal/snapshot/filestore"
	"github.com/discochess/gobbler/internal/stats"
	"github.com/discochess/gobbler/internal/stats/logger"
)

// Config holds configuration for the inspector.
type Config struct {
	// DataDir is the directory holding the analysis data files.
	DataDir string
}

// Module provides a disk-backed inspector loaded with the latest
// stored generation.
// Requires a *zap.Logger and a Config to be provided.
var Module = fx.Module("gobbinspector",
	fx.Provide(
		newStatsCollector,
		newInspector,
	),
)

func newStatsCollector(log *zap.Logger) stats.Collector {
	return logger.New(log.Named("gobbler.stats"))
}

// Params holds dependencies for creating the inspector.
type Params struct {
	fx.In

	Config    Config
	Logger    *zap.Logger
	Collector stats.Collector
	Lifecycle fx.Lifecycle
}

// Result holds the provided inspector.
type Result struct {
	fx.Out

	Inspector *gobbler.Inspector
}

func newInspector(p Params) (Result, error) {
	inspector, err := gobbler.NewInspector(
		gobbler.WithHandler(filestore.New(p.Config.DataDir)),
		gobbler.WithStats(p.Collector),
		gobbler.WithLogger(p.Logger.Named("gobbler")),
	)
	if err != nil {
		return Result{}, err
	}

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			gen, err := inspector.LoadLatest(ctx)
			if err != nil {
				return err
			}
			p.Logger.Info("loaded analysis data", zap.Uint64("generation", gen))
			return nil
		},
	})

	return Result{Inspector: inspector}, nil
}
