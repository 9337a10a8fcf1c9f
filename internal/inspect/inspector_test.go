package inspect

import (
	"testing"

	"github.com/discochess/gobbler/internal/analysis"
)

func marked(results []MoveResult) []int {
	var idx []int
	for i, res := range results {
		if res.Best {
			idx = append(idx, i)
		}
	}
	return idx
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestMarkBestMove_FastestWin(t *testing.T) {
	results := []MoveResult{
		{Status: analysis.Won, Turn: 5},
		{Status: analysis.Won, Turn: 2},
		{Status: analysis.Unfixed},
		{Status: analysis.Lost, Turn: 9},
		{Status: analysis.Won, Turn: 2},
	}
	markBestMove(results)
	if got := marked(results); !equalInts(got, []int{1, 4}) {
		t.Errorf("marked = %v, want [1 4]", got)
	}
}

func TestMarkBestMove_WonStalemateCountsAsWin(t *testing.T) {
	results := []MoveResult{
		{Status: analysis.WonStalemate, Turn: 1},
		{Status: analysis.Won, Turn: 3},
		{Status: analysis.Unfixed},
	}
	markBestMove(results)
	if got := marked(results); !equalInts(got, []int{0}) {
		t.Errorf("marked = %v, want [0]", got)
	}
}

func TestMarkBestMove_UnfixedOverLoss(t *testing.T) {
	results := []MoveResult{
		{Status: analysis.Lost, Turn: 9},
		{Status: analysis.Unfixed},
		{Status: analysis.Unfixed},
	}
	markBestMove(results)
	if got := marked(results); !equalInts(got, []int{1, 2}) {
		t.Errorf("marked = %v, want [1 2]", got)
	}
}

func TestMarkBestMove_SlowestLoss(t *testing.T) {
	results := []MoveResult{
		{Status: analysis.Lost, Turn: 3},
		{Status: analysis.LostStalemate, Turn: 7},
		{Status: analysis.Lost, Turn: 7},
	}
	markBestMove(results)
	if got := marked(results); !equalInts(got, []int{1, 2}) {
		t.Errorf("marked = %v, want [1 2]", got)
	}
}

func TestMarkBestMove_Empty(t *testing.T) {
	var results []MoveResult
	markBestMove(results)
	if len(results) != 0 {
		t.Error("marking an empty list changed it")
	}
}

func TestMarkBestMove_NothingMarkable(t *testing.T) {
	// Statuses that never appear in a move list still must not be
	// marked if present.
	results := []MoveResult{
		{Status: analysis.Transformed},
		{Status: analysis.Contradictory},
	}
	markBestMove(results)
	if got := marked(results); got != nil {
		t.Errorf("marked = %v, want none", got)
	}
}
