package gcsstore

import (
	"testing"

	"github.com/discochess/gobbler/internal/codec/noopcodec"
	"github.com/discochess/gobbler/internal/codec/zstdcodec"
)

func TestKey(t *testing.T) {
	s := &Store{prefix: "gobblers/", codec: zstdcodec.New()}
	if got, want := s.key(12), "gobblers/gobb_analyzer_12.dat.zst"; got != want {
		t.Errorf("key(12) = %q, want %q", got, want)
	}

	s = &Store{codec: noopcodec.New()}
	if got, want := s.key(0), "gobb_analyzer_0.dat"; got != want {
		t.Errorf("key(0) = %q, want %q", got, want)
	}
}

func TestParseKey(t *testing.T) {
	s := &Store{prefix: "gobblers/", codec: zstdcodec.New()}

	tests := []struct {
		key string
		gen uint64
		ok  bool
	}{
		{"gobblers/gobb_analyzer_12.dat.zst", 12, true},
		{"gobblers/gobb_analyzer_0.dat.zst", 0, true},
		{"gobblers/gobb_analyzer_12.dat", 0, false},
		{"gobblers/gobb_analyzer_x.dat.zst", 0, false},
		{"gobblers/gobb_analyzer_10001.dat.zst", 0, false},
		{"gobblers/manifest.json", 0, false},
	}
	for _, tt := range tests {
		gen, ok := s.parseKey(tt.key)
		if ok != tt.ok || (ok && gen != tt.gen) {
			t.Errorf("parseKey(%q) = %d, %v; want %d, %v", tt.key, gen, ok, tt.gen, tt.ok)
		}
	}
}
