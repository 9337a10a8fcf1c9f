// Package gcsstore implements a Google Cloud Storage snapshot backend.
//
// Snapshots live under a key prefix as gobb_analyzer_<G>.dat objects,
// compressed by the configured codec. GCS finalizes an object write
// atomically, so no temporary object is needed; an interrupted upload
// leaves the previous snapshot of the generation untouched.
package gcsstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"

	"github.com/discochess/gobbler/internal/analysis"
	"github.com/discochess/gobbler/internal/codec"
	"github.com/discochess/gobbler/internal/snapshot"
)

const (
	filePrefix = "gobb_analyzer_"
	fileSuffix = ".dat"

	// maxIOChunk bounds a single read or write.
	maxIOChunk = 16 << 20
)

// ErrGenerationRange is returned for generation numbers above
// analysis.MaxGeneration.
var ErrGenerationRange = errors.New("gcsstore: generation out of range")

// Compile-time check that Store implements snapshot.Handler.
var _ snapshot.Handler = (*Store)(nil)

// Store is a Google Cloud Storage snapshot backend.
type Store struct {
	client *storage.Client
	bucket *storage.BucketHandle
	prefix string
	codec  codec.Codec
}

// Option configures a Store.
type Option func(*Store)

// WithPrefix sets a key prefix for all snapshot objects.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = strings.TrimSuffix(prefix, "/")
		if s.prefix != "" {
			s.prefix += "/"
		}
	}
}

// New creates a GCS snapshot store. The bucket must already exist. The
// codec handles compression/decompression.
func New(ctx context.Context, bucketName string, c codec.Codec, opts ...Option) (*Store, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating GCS client: %w", err)
	}

	s := &Store{
		client: client,
		bucket: client.Bucket(bucketName),
		codec:  c,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Store uploads the snapshot of the given generation.
func (s *Store) Store(ctx context.Context, gen analysis.Generation, stats analysis.Statistics, table []byte) error {
	if gen > analysis.MaxGeneration {
		return ErrGenerationRange
	}

	obj := s.bucket.Object(s.key(gen))
	w := obj.NewWriter(ctx)

	// The object writer is hidden behind a plain io.Writer so the
	// codec cannot adopt it and close it a second time.
	cw, err := s.codec.Writer(struct{ io.Writer }{w})
	if err != nil {
		w.Close()
		return fmt.Errorf("creating compressor: %w", err)
	}

	if err := writeSnapshot(cw, stats, table); err != nil {
		cw.Close()
		w.Close()
		return err
	}
	if err := cw.Close(); err != nil {
		w.Close()
		return fmt.Errorf("closing compressor: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finalizing object: %w", err)
	}
	return nil
}

func writeSnapshot(w io.Writer, stats analysis.Statistics, table []byte) error {
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

// Load downloads the snapshot of the given generation.
func (s *Store) Load(ctx context.Context, gen analysis.Generation, stats *analysis.Statistics, table []byte) error {
	if gen > analysis.MaxGeneration {
		return ErrGenerationRange
	}

	r, err := s.bucket.Object(s.key(gen)).NewReader(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return snapshot.ErrNoSnapshot
		}
		return fmt.Errorf("creating reader: %w", err)
	}
	defer r.Close()

	cr, err := s.codec.Reader(struct{ io.Reader }{r})
	if err != nil {
		return fmt.Errorf("creating decompressor: %w", err)
	}
	defer cr.Close()

	record := make([]byte, analysis.StatisticsSize)
	if _, err := io.ReadFull(cr, record); err != nil {
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
		if _, err := io.ReadFull(cr, table[off:end]); err != nil {
			return fmt.Errorf("reading table: %w", err)
		}
		off = end
	}
	return nil
}

// FindLatest lists snapshot objects under the prefix and returns the
// largest stored generation.
func (s *Store) FindLatest(ctx context.Context) (analysis.Generation, error) {
	it := s.bucket.Objects(ctx, &storage.Query{Prefix: s.prefix + filePrefix})

	latest := analysis.InvalidGeneration
	for {
		attrs, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return analysis.InvalidGeneration, fmt.Errorf("listing snapshots: %w", err)
		}
		gen, ok := s.parseKey(attrs.Name)
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

// Clean is a no-op: uploads leave no intermediate objects.
func (s *Store) Clean() error {
	return nil
}

// Close releases the underlying client.
func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) key(gen analysis.Generation) string {
	name := filePrefix + strconv.FormatUint(gen, 10) + fileSuffix
	if ext := s.codec.Extension(); ext != "" {
		name += "." + ext
	}
	return s.prefix + name
}

func (s *Store) parseKey(key string) (analysis.Generation, bool) {
	name := strings.TrimPrefix(key, s.prefix)
	if ext := s.codec.Extension(); ext != "" {
		trimmed, found := strings.CutSuffix(name, "."+ext)
		if !found {
			return 0, false
		}
		name = trimmed
	}
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
