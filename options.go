package gobbler

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/discochess/gobbler/internal/codec"
	"github.com/discochess/gobbler/internal/codec/gzipcodec"
	"github.com/discochess/gobbler/internal/codec/noopcodec"
	"github.com/discochess/gobbler/internal/codec/zstdcodec"
	"github.com/discochess/gobbler/internal/snapshot"
	"github.com/discochess/gobbler/internal/snapshot/filestore"
	"github.com/discochess/gobbler/internal/snapshot/gcsstore"
	"github.com/discochess/gobbler/internal/stats"
)

// Option configures an Analyzer or an Inspector.
type Option interface {
	apply(*options)
}

// options holds the shared configuration.
type options struct {
	handler snapshot.Handler
	mode    snapshot.Mode
	stats   stats.Collector
	logger  *zap.Logger
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		mode:   snapshot.StoreFinal,
		stats:  stats.NewNoop(),
		logger: zap.NewNop(),
	}
}

// optionFunc wraps a function to implement Option.
type optionFunc func(*options)

// Compile-time check that optionFunc implements Option.
var _ Option = optionFunc(nil)

func (f optionFunc) apply(o *options) { f(o) }

// WithHandler sets the snapshot backend to use.
func WithHandler(h snapshot.Handler) Option {
	return optionFunc(func(o *options) {
		o.handler = h
	})
}

// WithMode sets when snapshots are stored.
// If not set, only the terminating generation is stored.
func WithMode(m snapshot.Mode) Option {
	return optionFunc(func(o *options) {
		o.mode = m
	})
}

// WithStats sets the stats collector.
// If not set, a no-op collector is used.
func WithStats(c stats.Collector) Option {
	return optionFunc(func(o *options) {
		o.stats = c
	})
}

// WithLogger sets the logger.
// If not set, a no-op logger is used.
func WithLogger(l *zap.Logger) Option {
	return optionFunc(func(o *options) {
		o.logger = l
	})
}

// WithDataDir configures a snapshot backend from a location string: a
// gs://bucket/prefix URL selects zstd-compressed snapshots in Google
// Cloud Storage, anything else a local directory of raw .dat files.
// This is the recommended way to configure persistence.
func WithDataDir(ctx context.Context, location string) (Option, error) {
	return WithDataDirCompression(ctx, location, "zstd")
}

// WithDataDirCompression is WithDataDir with an explicit snapshot
// compression for remote backends: "zstd", "gzip" or "none". Local
// .dat files always stay raw.
func WithDataDirCompression(ctx context.Context, location, compression string) (Option, error) {
	if bucket, prefix, ok := splitGCSLocation(location); ok {
		var c codec.Codec
		switch compression {
		case "zstd":
			c = zstdcodec.New()
		case "gzip":
			c = gzipcodec.New()
		case "none":
			c = noopcodec.New()
		default:
			return nil, fmt.Errorf("gobbler: unknown compression %q", compression)
		}

		st, err := gcsstore.New(ctx, bucket, c, gcsstore.WithPrefix(prefix))
		if err != nil {
			return nil, fmt.Errorf("creating GCS store: %w", err)
		}
		return WithHandler(st), nil
	}
	return WithHandler(filestore.New(location)), nil
}

// splitGCSLocation parses a gs://bucket/prefix URL.
func splitGCSLocation(location string) (bucket, prefix string, ok bool) {
	rest, found := strings.CutPrefix(location, "gs://")
	if !found || rest == "" {
		return "", "", false
	}
	bucket, prefix, _ = strings.Cut(rest, "/")
	return bucket, prefix, bucket != ""
}
