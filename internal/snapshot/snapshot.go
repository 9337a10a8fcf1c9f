// Package snapshot defines the generational persistence protocol for
// analysis tables. A snapshot holds the running statistics followed by
// the raw cell table; backends store one snapshot per generation and
// find the latest stored generation for resumption.
package snapshot

import (
	"context"
	"errors"

	"github.com/discochess/gobbler/internal/analysis"
)

// ErrNoSnapshot is returned when no stored generation exists.
var ErrNoSnapshot = errors.New("snapshot: no stored generation")

// Handler defines the interface for snapshot backends.
type Handler interface {
	// Store persists the statistics and table under the given
	// generation number. The write must not corrupt a previously
	// stored snapshot of the same generation on failure.
	Store(ctx context.Context, gen analysis.Generation, stats analysis.Statistics, table []byte) error

	// Load reads the snapshot of the given generation into stats and
	// the caller-provided table buffer, which must have the exact
	// stored size.
	Load(ctx context.Context, gen analysis.Generation, stats *analysis.Statistics, table []byte) error

	// FindLatest returns the largest stored generation, or
	// ErrNoSnapshot when none exists.
	FindLatest(ctx context.Context) (analysis.Generation, error)

	// LoadLatest combines FindLatest and Load, returning the loaded
	// generation.
	LoadLatest(ctx context.Context, stats *analysis.Statistics, table []byte) (analysis.Generation, error)

	// Clean removes any leftover intermediate state from an
	// interrupted Store. It is idempotent.
	Clean() error
}

// Mode selects when the engine persists a snapshot.
type Mode uint8

const (
	// StoreNone never stores a snapshot.
	StoreNone Mode = 0

	// StoreFinal stores only the terminating generation.
	StoreFinal Mode = 1

	// StoreEvery stores after every generation.
	StoreEvery Mode = 2
)

func (m Mode) String() string {
	switch m {
	case StoreNone:
		return "StoreNone"
	case StoreFinal:
		return "StoreFinal"
	case StoreEvery:
		return "StoreEvery"
	}
	return "Invalid"
}

// NeedsStore decides whether the snapshot of generation gen must be
// written, given whether the generation produced updates and which
// generation was last stored. A generation with updates is stored only
// in StoreEvery mode; the fixed-point generation is stored under any
// storing mode unless the previous generation is already on disk.
func NeedsStore(mode Mode, updated bool, stored, gen analysis.Generation) bool {
	if updated {
		return mode == StoreEvery
	}
	if stored == analysis.InvalidGeneration || stored+1 < gen {
		return mode != StoreNone
	}
	return false
}
