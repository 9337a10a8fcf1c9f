package gobbler

import (
	"context"

	"github.com/discochess/gobbler/internal/analysis"
	"github.com/discochess/gobbler/internal/inspect"
	"github.com/discochess/gobbler/internal/position"
	"github.com/discochess/gobbler/internal/snapshot"
)

// Inspector answers read-only queries over a stored analysis table. It
// owns a table of one byte per canonical position (about 2.9 GiB);
// create one instance per process.
type Inspector struct {
	inspector *inspect.Inspector
	handler   snapshot.Handler
}

// NewInspector creates an Inspector with the given options. A snapshot
// handler is required; WithDataDir is the recommended way to configure
// one.
func NewInspector(opts ...Option) (*Inspector, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt.apply(&cfg)
	}

	if cfg.handler == nil {
		return nil, ErrNoHandler
	}

	return &Inspector{
		inspector: inspect.New(cfg.stats),
		handler:   cfg.handler,
	}, nil
}

// Load reads the snapshot of the given generation into the table.
func (i *Inspector) Load(ctx context.Context, gen analysis.Generation) error {
	return i.inspector.Load(ctx, i.handler, gen)
}

// LoadLatest reads the latest stored snapshot into the table and
// returns its generation.
func (i *Inspector) LoadLatest(ctx context.Context) (analysis.Generation, error) {
	return i.inspector.LoadLatest(ctx, i.handler)
}

// InspectPosition returns the table metadata of a position.
func (i *Inspector) InspectPosition(id position.ID) inspect.PositionResult {
	return i.inspector.InspectPosition(id)
}

// InspectMoves lists the legal forward moves of a position, best moves
// marked.
func (i *Inspector) InspectMoves(id position.ID) []inspect.MoveResult {
	return i.inspector.InspectMoves(id)
}

// InspectMoveBacks lists the legal retrograde moves of a position,
// best moves marked.
func (i *Inspector) InspectMoveBacks(id position.ID) []inspect.MoveResult {
	return i.inspector.InspectMoveBacks(id)
}

// Statistics returns the statistics record of the loaded snapshot.
func (i *Inspector) Statistics() analysis.Statistics {
	return i.inspector.Statistics()
}

// Internal returns the underlying inspector for the REPL.
func (i *Inspector) Internal() *inspect.Inspector {
	return i.inspector
}
