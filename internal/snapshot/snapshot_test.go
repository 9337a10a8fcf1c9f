package snapshot

import (
	"testing"

	"github.com/discochess/gobbler/internal/analysis"
)

func TestNeedsStore(t *testing.T) {
	const none = analysis.InvalidGeneration

	tests := []struct {
		name    string
		mode    Mode
		updated bool
		stored  analysis.Generation
		gen     analysis.Generation
		want    bool
	}{
		{"updates stored every generation", StoreEvery, true, none, 1, true},
		{"updates not stored in final mode", StoreFinal, true, none, 1, false},
		{"updates never stored in none mode", StoreNone, true, none, 1, false},

		{"fixed point stored when never stored", StoreFinal, false, none, 5, true},
		{"fixed point stored when behind", StoreFinal, false, 2, 5, true},
		{"fixed point skipped when previous stored", StoreFinal, false, 4, 5, false},
		{"fixed point stored in every mode", StoreEvery, false, none, 5, true},
		{"fixed point never stored in none mode", StoreNone, false, none, 5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NeedsStore(tt.mode, tt.updated, tt.stored, tt.gen)
			if got != tt.want {
				t.Errorf("NeedsStore(%v, %v, %d, %d) = %v, want %v",
					tt.mode, tt.updated, tt.stored, tt.gen, got, tt.want)
			}
		})
	}
}
