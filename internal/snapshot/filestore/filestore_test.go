package filestore

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/discochess/gobbler/internal/analysis"
	"github.com/discochess/gobbler/internal/snapshot"
)

func testStats() analysis.Statistics {
	return analysis.Statistics{
		Lost:          10,
		LostStalemate: 20,
		Won:           30,
		Transformed:   40,
		Contradictory: 50,
		Unfixed:       60,
	}
}

func TestStore_RoundTrip(t *testing.T) {
	s := New(t.TempDir())
	ctx := context.Background()

	table := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	if err := s.Store(ctx, 3, testStats(), table); err != nil {
		t.Fatalf("Store() error = %v", err)
	}

	var stats analysis.Statistics
	loaded := make([]byte, len(table))
	if err := s.Load(ctx, 3, &stats, loaded); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if stats != testStats() {
		t.Errorf("loaded stats = %+v, want %+v", stats, testStats())
	}
	if !bytes.Equal(loaded, table) {
		t.Errorf("loaded table = %v, want %v", loaded, table)
	}
}

func TestStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	s := New(dir)

	if err := s.Store(context.Background(), 0, testStats(), []byte{1}); err != nil {
		t.Fatalf("Store() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "gobb_analyzer_0.dat")); err != nil {
		t.Errorf("snapshot file missing: %v", err)
	}
}

func TestStore_OverwritesAtomically(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	ctx := context.Background()

	// A stale 1-byte snapshot already exists.
	target := filepath.Join(dir, "gobb_analyzer_0.dat")
	if err := os.WriteFile(target, []byte{0xff}, 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	table := bytes.Repeat([]byte{7}, 32)
	if err := s.Store(ctx, 0, testStats(), table); err != nil {
		t.Fatalf("Store() error = %v", err)
	}

	info, err := os.Stat(target)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if want := int64(analysis.StatisticsSize + len(table)); info.Size() != want {
		t.Errorf("snapshot size = %d, want %d", info.Size(), want)
	}
	if _, err := os.Stat(filepath.Join(dir, "gobb_analyer_tmp.dat")); !os.IsNotExist(err) {
		t.Error("temporary file left behind")
	}
}

func TestStore_GenerationRange(t *testing.T) {
	s := New(t.TempDir())
	err := s.Store(context.Background(), analysis.MaxGeneration+1, testStats(), []byte{1})
	if !errors.Is(err, ErrGenerationRange) {
		t.Errorf("Store() error = %v, want ErrGenerationRange", err)
	}
}

func TestLoad_Missing(t *testing.T) {
	s := New(t.TempDir())
	var stats analysis.Statistics
	err := s.Load(context.Background(), 1, &stats, make([]byte, 1))
	if !errors.Is(err, snapshot.ErrNoSnapshot) {
		t.Errorf("Load() error = %v, want ErrNoSnapshot", err)
	}
}

func TestLoad_Truncated(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	ctx := context.Background()

	if err := s.Store(ctx, 0, testStats(), []byte{1, 2, 3, 4}); err != nil {
		t.Fatalf("Store() error = %v", err)
	}

	var stats analysis.Statistics
	// The caller expects a larger table than was stored: short read.
	if err := s.Load(ctx, 0, &stats, make([]byte, 8)); err == nil {
		t.Error("Load() with oversized buffer succeeded, want error")
	}
}

func TestFindLatest(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	ctx := context.Background()

	for _, gen := range []analysis.Generation{0, 7, 3} {
		if err := s.Store(ctx, gen, testStats(), []byte{1}); err != nil {
			t.Fatalf("Store(%d) error = %v", gen, err)
		}
	}
	// Distractors the scan must skip.
	for _, name := range []string{
		"gobb_analyzer_.dat",       // no digits
		"gobb_analyzer_x.dat",      // not a number
		"gobb_analyzer_99999.dat",  // beyond MaxGeneration
		"gobb_analyzer_5.dat.bak",  // wrong suffix
		"other_8.dat",              // wrong prefix
		"gobb_analyer_tmp.dat",     // leftover temporary file
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte{0}, 0644); err != nil {
			t.Fatalf("WriteFile(%s) error = %v", name, err)
		}
	}

	got, err := s.FindLatest(ctx)
	if err != nil {
		t.Fatalf("FindLatest() error = %v", err)
	}
	if got != 7 {
		t.Errorf("FindLatest() = %d, want 7", got)
	}
}

func TestFindLatest_Empty(t *testing.T) {
	s := New(t.TempDir())
	_, err := s.FindLatest(context.Background())
	if !errors.Is(err, snapshot.ErrNoSnapshot) {
		t.Errorf("FindLatest() error = %v, want ErrNoSnapshot", err)
	}
}

func TestLoadLatest(t *testing.T) {
	s := New(t.TempDir())
	ctx := context.Background()

	table := []byte{9, 8, 7}
	if err := s.Store(ctx, 2, testStats(), table); err != nil {
		t.Fatalf("Store() error = %v", err)
	}

	var stats analysis.Statistics
	loaded := make([]byte, len(table))
	gen, err := s.LoadLatest(ctx, &stats, loaded)
	if err != nil {
		t.Fatalf("LoadLatest() error = %v", err)
	}
	if gen != 2 {
		t.Errorf("LoadLatest() generation = %d, want 2", gen)
	}
	if !bytes.Equal(loaded, table) {
		t.Errorf("loaded table = %v, want %v", loaded, table)
	}
}

func TestClean_Idempotent(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)

	if err := s.Clean(); err != nil {
		t.Errorf("Clean() on empty dir error = %v", err)
	}

	tmp := filepath.Join(dir, "gobb_analyer_tmp.dat")
	if err := os.WriteFile(tmp, []byte{0}, 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if err := s.Clean(); err != nil {
		t.Errorf("Clean() error = %v", err)
	}
	if _, err := os.Stat(tmp); !os.IsNotExist(err) {
		t.Error("temporary file still present after Clean()")
	}
	if err := s.Clean(); err != nil {
		t.Errorf("second Clean() error = %v", err)
	}
}

func TestParseSnapshotName(t *testing.T) {
	tests := []struct {
		name string
		gen  analysis.Generation
		ok   bool
	}{
		{"gobb_analyzer_0.dat", 0, true},
		{"gobb_analyzer_42.dat", 42, true},
		{"gobb_analyzer_10000.dat", 10000, true},
		{"gobb_analyzer_10001.dat", 0, false},
		{"gobb_analyzer_.dat", 0, false},
		{"gobb_analyzer_-1.dat", 0, false},
		{"gobb_analyzer_1x.dat", 0, false},
		{"gobb_analyer_tmp.dat", 0, false},
		{"gobb_analyzer_1.data", 0, false},
	}
	for _, tt := range tests {
		gen, ok := parseSnapshotName(tt.name)
		if ok != tt.ok || (ok && gen != tt.gen) {
			t.Errorf("parseSnapshotName(%q) = %d, %v; want %d, %v", tt.name, gen, ok, tt.gen, tt.ok)
		}
	}
}
