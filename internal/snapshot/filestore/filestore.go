// Package filestore implements a local-directory snapshot backend.
//
// A generation G is stored as gobb_analyzer_<G>.dat: the 48-byte
// statistics record immediately followed by the raw cell table. There
// is no header, endianness marker or checksum; files are not portable
// across architectures. Writes go to a temporary file in the same
// directory and are renamed over the target, so a stored snapshot is
// either the old or the new content, never a mix.
package filestore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/discochess/gobbler/internal/analysis"
	"github.com/discochess/gobbler/internal/snapshot"
)

const (
	filePrefix = "gobb_analyzer_"
	fileSuffix = ".dat"

	// tmpName keeps the misspelling of the original analyzer so that
	// existing data directories clean up correctly.
	tmpName = "gobb_analyer_tmp.dat"

	// maxIOChunk bounds a single read or write.
	maxIOChunk = 16 << 20
)

// ErrGenerationRange is returned for generation numbers above
// analysis.MaxGeneration.
var ErrGenerationRange = errors.New("filestore: generation out of range")

// Compile-time check that Store implements snapshot.Handler.
var _ snapshot.Handler = (*Store)(nil)

// Store is a local-directory snapshot backend.
type Store struct {
	dir string
}

// New creates a snapshot store rooted at dir. The directory is created
// on the first Store call if missing.
func New(dir string) *Store {
	if dir == "" {
		dir = "."
	}
	return &Store{dir: dir}
}

// Dir returns the data directory.
func (s *Store) Dir() string {
	return s.dir
}

// Store writes the snapshot of the given generation.
func (s *Store) Store(ctx context.Context, gen analysis.Generation, stats analysis.Statistics, table []byte) error {
	if gen > analysis.MaxGeneration {
		return ErrGenerationRange
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	tmpPath := s.tmpPath()
	f, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("creating temporary file: %w", err)
	}

	if err := s.writeSnapshot(f, stats, table); err != nil {
		f.Close()
		s.Clean()
		return err
	}
	if err := f.Close(); err != nil {
		s.Clean()
		return fmt.Errorf("closing temporary file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path(gen)); err != nil {
		s.Clean()
		return fmt.Errorf("renaming snapshot: %w", err)
	}
	return nil
}

func (s *Store) writeSnapshot(w io.Writer, stats analysis.Statistics, table []byte) error {
	record, err := stats.MarshalBinary()
	if err != nil {
		return fmt.Errorf("encoding statistics: %w", err)
	}
	if _, err := w.Write(record); err != nil {
		return fmt.Errorf("writing statistics: %w", err)
	}

	for len(table) > 0 {
		chunk := table
		if len(chunk) > maxIOChunk {
			chunk = chunk[:maxIOChunk]
		}
		if _, err := w.Write(chunk); err != nil {
			return fmt.Errorf("writing table: %w", err)
		}
		table = table[len(chunk):]
	}
	return nil
}

// Load reads the snapshot of the given generation.
func (s *Store) Load(ctx context.Context, gen analysis.Generation, stats *analysis.Statistics, table []byte) error {
	if gen > analysis.MaxGeneration {
		return ErrGenerationRange
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	f, err := os.Open(s.path(gen))
	if err != nil {
		if os.IsNotExist(err) {
			return snapshot.ErrNoSnapshot
		}
		return fmt.Errorf("opening snapshot: %w", err)
	}
	defer f.Close()

	record := make([]byte, analysis.StatisticsSize)
	if _, err := io.ReadFull(f, record); err != nil {
		return fmt.Errorf("reading statistics: %w", err)
	}
	if err := stats.UnmarshalBinary(record); err != nil {
		return err
	}

	for off := 0; off < len(table); {
		end := off + maxIOChunk
		if end > len(table) {
			end = len(table)
		}
		if _, err := io.ReadFull(f, table[off:end]); err != nil {
			return fmt.Errorf("reading table: %w", err)
		}
		off = end
	}
	return nil
}

// FindLatest scans the data directory for snapshot files and returns
// the largest stored generation.
func (s *Store) FindLatest(ctx context.Context) (analysis.Generation, error) {
	select {
	case <-ctx.Done():
		return analysis.InvalidGeneration, ctx.Err()
	default:
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return analysis.InvalidGeneration, snapshot.ErrNoSnapshot
		}
		return analysis.InvalidGeneration, fmt.Errorf("reading data directory: %w", err)
	}

	latest := analysis.InvalidGeneration
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		gen, ok := parseSnapshotName(entry.Name())
		if !ok {
			continue
		}
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

// Clean removes a leftover temporary file from an interrupted Store.
func (s *Store) Clean() error {
	err := os.Remove(s.tmpPath())
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing temporary file: %w", err)
	}
	return nil
}

func (s *Store) path(gen analysis.Generation) string {
	return filepath.Join(s.dir, filePrefix+strconv.FormatUint(gen, 10)+fileSuffix)
}

func (s *Store) tmpPath() string {
	return filepath.Join(s.dir, tmpName)
}

// parseSnapshotName extracts the generation from a snapshot file name.
func parseSnapshotName(name string) (analysis.Generation, bool) {
	if !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, fileSuffix) {
		return 0, false
	}
	digits := name[len(filePrefix) : len(name)-len(fileSuffix)]
	if digits == "" {
		return 0, false
	}
	gen, err := strconv.ParseUint(digits, 10, 64)
	if err != nil || gen > analysis.MaxGeneration {
		return 0, false
	}
	return gen, true
}
