// Package gobbler performs exhaustive retrograde analysis of Gobblet
// Gobblers: it classifies every reachable position as won, lost or
// still unfixed for the player to move, persists the table per
// generation, and answers inspection queries over a stored table.
//
// Example usage:
//
//	dirOption, err := gobbler.WithDataDir(ctx, "/path/to/data")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	analyzer, err := gobbler.NewAnalyzer(dirOption)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := analyzer.Resume(ctx); err != nil {
//	    log.Fatal(err)
//	}
package gobbler

import (
	"context"
	"errors"

	"github.com/discochess/gobbler/internal/analysis"
	"github.com/discochess/gobbler/internal/engine"
	"github.com/discochess/gobbler/internal/snapshot"
)

// Sentinel errors for well-defined error conditions.
var (
	// ErrNoHandler indicates no snapshot handler was provided.
	ErrNoHandler = errors.New("gobbler: no snapshot handler provided")

	// ErrNoSnapshot indicates no stored generation exists.
	ErrNoSnapshot = snapshot.ErrNoSnapshot
)

// Analyzer runs the retrograde analysis to its fixed point, storing
// generational snapshots along the way. It owns an analysis table of
// one byte per canonical position (about 2.9 GiB); create one instance
// per process.
type Analyzer struct {
	engine  *engine.Engine
	handler snapshot.Handler
	mode    snapshot.Mode
}

// NewAnalyzer creates an Analyzer with the given options. A snapshot
// handler is always required, whatever the mode; WithDataDir is the
// recommended way to configure one.
func NewAnalyzer(opts ...Option) (*Analyzer, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt.apply(&cfg)
	}

	if cfg.handler == nil {
		return nil, ErrNoHandler
	}

	return &Analyzer{
		engine:  engine.New(cfg.logger, cfg.stats),
		handler: cfg.handler,
		mode:    cfg.mode,
	}, nil
}

// Start runs the analysis from scratch.
func (a *Analyzer) Start(ctx context.Context) error {
	return a.engine.Start(ctx, a.handler, a.mode)
}

// Resume continues from the latest stored generation, starting from
// scratch when no snapshot exists.
func (a *Analyzer) Resume(ctx context.Context) error {
	return a.engine.Resume(ctx, a.handler, a.mode)
}

// ResumeFrom continues from the given stored generation.
func (a *Analyzer) ResumeFrom(ctx context.Context, gen analysis.Generation) error {
	return a.engine.ResumeFrom(ctx, a.handler, a.mode, gen)
}

// Statistics returns the running position counts.
func (a *Analyzer) Statistics() analysis.Statistics {
	return a.engine.Statistics()
}

// Generation returns the generation currently being analyzed.
func (a *Analyzer) Generation() analysis.Generation {
	return a.engine.Generation()
}
