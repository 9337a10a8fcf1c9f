package memstore

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/discochess/gobbler/internal/analysis"
	"github.com/discochess/gobbler/internal/snapshot"
)

func TestStore_RoundTrip(t *testing.T) {
	s := New()
	ctx := context.Background()

	stats := analysis.Statistics{Won: 5, Unfixed: 7}
	table := []byte{1, 2, 3}
	if err := s.Store(ctx, 4, stats, table); err != nil {
		t.Fatalf("Store() error = %v", err)
	}

	var loadedStats analysis.Statistics
	loaded := make([]byte, len(table))
	gen, err := s.LoadLatest(ctx, &loadedStats, loaded)
	if err != nil {
		t.Fatalf("LoadLatest() error = %v", err)
	}
	if gen != 4 {
		t.Errorf("LoadLatest() generation = %d, want 4", gen)
	}
	if loadedStats != stats {
		t.Errorf("loaded stats = %+v, want %+v", loadedStats, stats)
	}
	if !bytes.Equal(loaded, table) {
		t.Errorf("loaded table = %v, want %v", loaded, table)
	}
}

func TestStore_CopiesTable(t *testing.T) {
	s := New()
	ctx := context.Background()

	table := []byte{1, 2, 3}
	if err := s.Store(ctx, 0, analysis.Statistics{}, table); err != nil {
		t.Fatalf("Store() error = %v", err)
	}
	table[0] = 99

	var stats analysis.Statistics
	loaded := make([]byte, len(table))
	if err := s.Load(ctx, 0, &stats, loaded); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded[0] != 1 {
		t.Errorf("stored table aliases the caller's buffer")
	}
}

func TestStore_FailStore(t *testing.T) {
	s := New()
	wantErr := errors.New("disk full")
	s.FailStore = wantErr

	err := s.Store(context.Background(), 0, analysis.Statistics{}, []byte{1})
	if !errors.Is(err, wantErr) {
		t.Errorf("Store() error = %v, want %v", err, wantErr)
	}
	if s.Generations() != 0 {
		t.Error("failed Store still recorded a snapshot")
	}
}

func TestFindLatest_Empty(t *testing.T) {
	s := New()
	_, err := s.FindLatest(context.Background())
	if !errors.Is(err, snapshot.ErrNoSnapshot) {
		t.Errorf("FindLatest() error = %v, want ErrNoSnapshot", err)
	}
}
