package engine

import (
	"context"
	"os"
	"testing"

	"go.uber.org/zap"

	"github.com/discochess/gobbler/internal/analysis"
	"github.com/discochess/gobbler/internal/game"
	"github.com/discochess/gobbler/internal/position"
	"github.com/discochess/gobbler/internal/snapshot"
	"github.com/discochess/gobbler/internal/snapshot/memstore"
)

func TestMoveCount_EmptyBoard(t *testing.T) {
	empty := position.FromID(position.InitialID)
	// Three piece kinds, two reserve slots each collapsing to one, nine
	// destinations.
	if got := moveCount(empty); got != 27 {
		t.Errorf("moveCount(empty) = %d, want 27", got)
	}
}

func TestMoveCount_BlockedDestinations(t *testing.T) {
	// The two active smalls sit at NW and N and an inactive medium
	// holds the center: each piece may move to any cell not holding an
	// equal or larger piece and not its own cell.
	pos := position.New(game.Orange, [game.PieceCount]position.LocationPair{
		{game.NW, game.N}, {game.Out, game.Out},
		{game.Out, game.Out}, {game.Center, game.Out},
		{game.Out, game.Out}, {game.Out, game.Out},
	})
	if !pos.Valid() {
		t.Fatal("position is not valid")
	}
	// Each active small: the 6 empty cells (not NW, N or Center).
	// ActiveMedium from reserve: 8 cells (every cell but Center, whose
	// inactive medium only the large may cover). ActiveLarge from
	// reserve: all 9 cells.
	want := 6 + 6 + 8 + 9
	if got := moveCount(pos); got != want {
		t.Errorf("moveCount() = %d, want %d", got, want)
	}
}

func TestOnBoardPieceCount(t *testing.T) {
	pos := position.New(game.Orange, [game.PieceCount]position.LocationPair{
		{game.NW, game.N}, {game.SE, game.Out},
		{game.Center, game.Out}, {game.Out, game.Out},
		{game.Out, game.Out}, {game.S, game.Out},
	})
	if !pos.Valid() {
		t.Fatal("position is not valid")
	}
	if got := onBoardPieceCount(pos, game.Active); got != 3 {
		t.Errorf("onBoardPieceCount(Active) = %d, want 3", got)
	}
	if got := onBoardPieceCount(pos, game.Inactive); got != 2 {
		t.Errorf("onBoardPieceCount(Inactive) = %d, want 2", got)
	}
}

func TestForEachMove_SkipsDuplicateReserveSlot(t *testing.T) {
	empty := position.FromID(position.InitialID)
	seen := make(map[position.ID]int)
	forEachMove(empty, func(next position.Position) bool {
		seen[next.ID()]++
		return true
	})
	// Up to symmetry-free identity, each successor is produced once per
	// (piece, dst): 27 successors in total.
	total := 0
	for _, n := range seen {
		total += n
	}
	if total != 27 {
		t.Errorf("forEachMove produced %d successors, want 27", total)
	}
}

func TestForEachMoveBack_UndoesOpening(t *testing.T) {
	empty := position.FromID(position.InitialID)
	opening, status := empty.Move(game.ActiveSmall, game.Out, game.Center)
	if status != position.MoveSuccess {
		t.Fatalf("opening move status = %v", status)
	}

	found := false
	forEachMoveBack(opening, func(prev position.Position) {
		if prev.ID() == position.InitialID {
			found = true
		}
	})
	if !found {
		t.Error("no retrograde move reaches the initial position")
	}
}

// TestEngine_FullInitialize seeds the full 2.9 GiB table and checks the
// generation-0 classification. It runs only when GOBBLER_E2E is set.
func TestEngine_FullInitialize(t *testing.T) {
	if os.Getenv("GOBBLER_E2E") == "" {
		t.Skip("set GOBBLER_E2E to run the full-table test")
	}

	e := New(zap.NewNop(), nil)
	updated := e.Initialize()
	if !updated {
		t.Fatal("Initialize() reported no Lost/LostStalemate seeds")
	}

	stats := e.Statistics()
	if got := stats.Total(); got != position.TableSize {
		t.Errorf("statistics total = %d, want %d", got, uint64(position.TableSize))
	}

	// The empty position is canonical, playable and unfixed.
	if got := analysis.Data(e.Table()[position.InitialID]).Status(); got != analysis.Unfixed {
		t.Errorf("initial position status = %v, want Unfixed", got)
	}

	// A full row of active pieces is a contradiction: the active
	// player cannot already hold a line at the start of their turn.
	for _, line := range [][3]game.Location{
		{game.NW, game.N, game.NE},
		{game.W, game.Center, game.E},
		{game.SW, game.S, game.SE},
	} {
		pos := position.New(game.Orange, [game.PieceCount]position.LocationPair{
			{line[1], line[0]}, {game.Out, game.Out},
			{line[2], game.Out}, {game.Out, game.Out},
			{game.Out, game.Out}, {game.Out, game.Out},
		})
		if !pos.Valid() {
			t.Fatalf("line position is not valid")
		}
		got := analysis.Data(e.Table()[pos.MinimizeID()]).Status()
		if got != analysis.Contradictory {
			t.Errorf("active three-in-a-row status = %v, want Contradictory", got)
		}
	}
}

// TestEngine_FullRun drives the analysis to its fixed point without
// storing snapshots. It runs only when GOBBLER_E2E is set.
func TestEngine_FullRun(t *testing.T) {
	if os.Getenv("GOBBLER_E2E") == "" {
		t.Skip("set GOBBLER_E2E to run the full-table test")
	}

	e := New(zap.NewNop(), nil)
	if err := e.Start(context.Background(), memstore.New(), snapshot.StoreNone); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	stats := e.Statistics()
	if got := stats.Total(); got != position.TableSize {
		t.Errorf("statistics total = %d, want %d", got, uint64(position.TableSize))
	}

	// Fixed point: one more pass must not change anything.
	var delta analysis.Statistics
	if e.runGeneration(&delta) {
		t.Error("a pass after the fixed point still produced updates")
	}
}
