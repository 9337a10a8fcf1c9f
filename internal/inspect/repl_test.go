package inspect

import (
	"bytes"
	"testing"

	"github.com/discochess/gobbler/internal/position"
)

// newHistoryProcessor builds a processor without an inspector, enough
// to exercise the history bookkeeping.
func newHistoryProcessor() *Processor {
	p := &Processor{out: &bytes.Buffer{}}
	p.history = append(p.history, PositionResult{PositionID: 0})
	return p
}

func TestAddHistory_Push(t *testing.T) {
	p := newHistoryProcessor()

	for i := 1; i <= 3; i++ {
		p.addHistory(PositionResult{PositionID: position.ID(i)})
	}
	if len(p.history) != 4 {
		t.Fatalf("history length = %d, want 4", len(p.history))
	}
	if p.historyIndex != 3 {
		t.Errorf("historyIndex = %d, want 3", p.historyIndex)
	}
}

func TestAddHistory_TruncatesForward(t *testing.T) {
	p := newHistoryProcessor()
	for i := 1; i <= 5; i++ {
		p.addHistory(PositionResult{PositionID: position.ID(i)})
	}

	// Step back twice, then navigate somewhere new: the forward
	// entries are discarded.
	p.historyIndex = 3
	p.addHistory(PositionResult{PositionID: 99})

	if len(p.history) != 5 {
		t.Fatalf("history length = %d, want 5", len(p.history))
	}
	if got := p.history[4].PositionID; got != 99 {
		t.Errorf("last entry = %d, want 99", got)
	}
	if p.historyIndex != 4 {
		t.Errorf("historyIndex = %d, want 4", p.historyIndex)
	}
}

func TestAddHistory_EvictsOldest(t *testing.T) {
	p := newHistoryProcessor()
	for i := 1; i < maxHistorySize; i++ {
		p.addHistory(PositionResult{PositionID: position.ID(i)})
	}
	if len(p.history) != maxHistorySize {
		t.Fatalf("history length = %d, want %d", len(p.history), maxHistorySize)
	}

	p.addHistory(PositionResult{PositionID: 1000})

	if len(p.history) != maxHistorySize {
		t.Fatalf("history length after eviction = %d, want %d", len(p.history), maxHistorySize)
	}
	if got := p.history[0].PositionID; got != 1 {
		t.Errorf("oldest entry = %d, want 1", got)
	}
	if got := p.history[maxHistorySize-1].PositionID; got != 1000 {
		t.Errorf("newest entry = %d, want 1000", got)
	}
	if p.historyIndex != maxHistorySize-1 {
		t.Errorf("historyIndex = %d, want %d", p.historyIndex, maxHistorySize-1)
	}
}
