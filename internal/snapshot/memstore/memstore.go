// Package memstore provides an in-memory snapshot backend for testing.
package memstore

import (
	"context"
	"sync"

	"github.com/discochess/gobbler/internal/analysis"
	"github.com/discochess/gobbler/internal/snapshot"
)

// Compile-time check that Store implements snapshot.Handler.
var _ snapshot.Handler = (*Store)(nil)

type record struct {
	stats analysis.Statistics
	table []byte
}

// Store is an in-memory snapshot backend for testing.
type Store struct {
	mu        sync.RWMutex
	snapshots map[analysis.Generation]record

	// FailStore makes the next Store calls fail when set (for testing
	// the abort-on-store-failure path).
	FailStore error
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		snapshots: make(map[analysis.Generation]record),
	}
}

// Store keeps a copy of the snapshot in memory.
func (s *Store) Store(ctx context.Context, gen analysis.Generation, stats analysis.Statistics, table []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailStore != nil {
		return s.FailStore
	}

	copied := make([]byte, len(table))
	copy(copied, table)
	s.snapshots[gen] = record{stats: stats, table: copied}
	return nil
}

// Load copies a stored snapshot into the caller's buffers.
func (s *Store) Load(ctx context.Context, gen analysis.Generation, stats *analysis.Statistics, table []byte) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.snapshots[gen]
	if !ok {
		return snapshot.ErrNoSnapshot
	}
	*stats = rec.stats
	copy(table, rec.table)
	return nil
}

// FindLatest returns the largest stored generation.
func (s *Store) FindLatest(ctx context.Context) (analysis.Generation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	latest := analysis.InvalidGeneration
	for gen := range s.snapshots {
		if latest == analysis.InvalidGeneration || gen > latest {
			latest = gen
		}
	}
	if latest == analysis.InvalidGeneration {
		return analysis.InvalidGeneration, snapshot.ErrNoSnapshot
	}
	return latest, nil
}

// LoadLatest loads the snapshot of the largest stored generation.
func (s *Store) LoadLatest(ctx context.Context, stats *analysis.Statistics, table []byte) (analysis.Generation, error) {
	gen, err := s.FindLatest(ctx)
	if err != nil {
		return analysis.InvalidGeneration, err
	}
	if err := s.Load(ctx, gen, stats, table); err != nil {
		return analysis.InvalidGeneration, err
	}
	return gen, nil
}

// Clean is a no-op for the memory store.
func (s *Store) Clean() error {
	return nil
}

// Generations returns the number of stored snapshots (for test
// assertions).
func (s *Store) Generations() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.snapshots)
}
