package position

import (
	"testing"

	"github.com/discochess/gobbler/internal/game"
)

func TestQuadTables_RoundTrip(t *testing.T) {
	for i, quad := range quadLocations {
		idx := int(quad[0]) +
			int(quad[1])*game.LocationCount +
			int(quad[2])*game.LocationCount*game.LocationCount +
			int(quad[3])*game.LocationCount*game.LocationCount*game.LocationCount
		if got := quadIndex[idx]; int(got) != i {
			t.Fatalf("quadIndex[quadLocations[%d]] = %d, want %d", i, got, i)
		}
	}
}

func TestQuadTables_EmptyPlacementIsZero(t *testing.T) {
	if got := quadLocations[0]; got != [4]game.Location{game.Out, game.Out, game.Out, game.Out} {
		t.Errorf("quadLocations[0] = %v, want all Out", got)
	}
	if got := quadIndex[0]; got != 0 {
		t.Errorf("quadIndex[0] = %d, want 0", got)
	}
}

func TestQuadTables_OverlapIsInvalid(t *testing.T) {
	// Both active small pieces on NW.
	idx := int(game.NW) + int(game.NW)*game.LocationCount
	if got := quadIndex[idx]; got != invalidQuad {
		t.Errorf("quadIndex for overlapping placement = %d, want invalidQuad", got)
	}
	// An active and an inactive piece on Center.
	idx = int(game.Center) + int(game.Center)*game.LocationCount*game.LocationCount
	if got := quadIndex[idx]; got != invalidQuad {
		t.Errorf("quadIndex for cross-role overlap = %d, want invalidQuad", got)
	}
}

func TestFromID_RoundTrip(t *testing.T) {
	// Small pieces only.
	for id := ID(0); id < QuadCombinations; id++ {
		if got := FromID(id).Transform(game.Unchange).ID(); got != id {
			t.Fatalf("FromID(%d) round-trips to %d", id, got)
		}
	}
	// Medium pieces only.
	for i := ID(0); i < QuadCombinations; i++ {
		id := i * QuadCombinations
		if got := FromID(id).Transform(game.Unchange).ID(); got != id {
			t.Fatalf("FromID(%d) round-trips to %d", id, got)
		}
	}
	// Large pieces only.
	for i := ID(0); i < QuadCombinations; i++ {
		id := i * QuadCombinations * QuadCombinations
		if got := FromID(id).Transform(game.Unchange).ID(); got != id {
			t.Fatalf("FromID(%d) round-trips to %d", id, got)
		}
	}
	// Pieces of various sizes, both colors.
	for i0 := ID(0); i0 < QuadCombinations; i0++ {
		i1 := (i0 + 1) % QuadCombinations
		i2 := (i0 + 2) % QuadCombinations
		id := i0 + i1*QuadCombinations + i2*QuadCombinations*QuadCombinations
		if got := FromID(id).Transform(game.Unchange).ID(); got != id {
			t.Fatalf("FromID(%d) round-trips to %d", id, got)
		}
		blue := id + SetCombinations
		if got := FromID(blue).Transform(game.Unchange).ID(); got != blue {
			t.Fatalf("FromID(%d) round-trips to %d", blue, got)
		}
	}
}

func TestFromID_Invalid(t *testing.T) {
	pos := FromID(InvalidID)
	if pos.Valid() {
		t.Fatal("FromID(InvalidID).Valid() = true")
	}
	if got := pos.Transform(game.Unchange).ID(); got != InvalidID {
		t.Errorf("invalid position round-trips to %d", got)
	}
	if got := FromID(IDCount).ID(); got != InvalidID {
		t.Errorf("FromID(IDCount) = %d, want InvalidID", got)
	}
}

func TestFromID_Color(t *testing.T) {
	if got := FromID(0).ActiveColor(); got != game.Orange {
		t.Errorf("FromID(0).ActiveColor() = %v, want Orange", got)
	}
	if got := FromID(SetCombinations).ActiveColor(); got != game.Blue {
		t.Errorf("FromID(SetCombinations).ActiveColor() = %v, want Blue", got)
	}
}

func TestTransform_Closure(t *testing.T) {
	ids := sampleIDs()
	for _, id := range ids {
		pos := FromID(id)
		for _, trans := range game.Transformers {
			got := pos.Transform(trans).Transform(trans.Invert()).ID()
			if got != id {
				t.Errorf("Transform(%v) then its inverse maps %d to %d", trans, id, got)
			}
		}
	}
}

func TestMinimizeID_Idempotent(t *testing.T) {
	for _, id := range sampleIDs() {
		canonical := FromID(id).MinimizeID()
		if canonical >= TableSize {
			t.Fatalf("MinimizeID(%d) = %d, out of table range", id, canonical)
		}
		if got := FromID(canonical).MinimizeID(); got != canonical {
			t.Errorf("MinimizeID is not idempotent: %d -> %d -> %d", id, canonical, got)
		}
	}
}

func TestNew_WinnerLine(t *testing.T) {
	pos := New(game.Orange, [game.PieceCount]LocationPair{
		{game.NW, game.Out}, {game.Out, game.Out},
		{game.N, game.Out}, {game.Out, game.Out},
		{game.NE, game.Out}, {game.Out, game.Out},
	})
	if !pos.Valid() {
		t.Fatal("position is not valid")
	}
	if !pos.IsWinner(game.Active) {
		t.Error("IsWinner(Active) = false, want true")
	}
	if pos.IsWinner(game.Inactive) {
		t.Error("IsWinner(Inactive) = true, want false")
	}
}

func TestNew_MixedStacks(t *testing.T) {
	// A large piece covers the small piece at NW; the small piece no
	// longer counts for a line.
	pos := New(game.Orange, [game.PieceCount]LocationPair{
		{game.NW, game.Out}, {game.Out, game.Out},
		{game.N, game.Out}, {game.Out, game.Out},
		{game.NE, game.Out}, {game.NW, game.Out},
	})
	if !pos.Valid() {
		t.Fatal("position is not valid")
	}
	if got := pos.TopmostAt(game.NW); got != game.InactiveLarge {
		t.Errorf("TopmostAt(NW) = %v, want InactiveLarge", got)
	}
	if pos.IsWinner(game.Active) {
		t.Error("IsWinner(Active) = true, want false")
	}
}

func TestNew_InvalidOverlap(t *testing.T) {
	pos := New(game.Orange, [game.PieceCount]LocationPair{
		{game.NW, game.NW}, {game.Out, game.Out},
		{game.Out, game.Out}, {game.Out, game.Out},
		{game.Out, game.Out}, {game.Out, game.Out},
	})
	if pos.Valid() {
		t.Error("overlapping same-size placement is valid, want invalid")
	}
}

func TestMove_FromEmpty(t *testing.T) {
	empty := New(game.Orange, [game.PieceCount]LocationPair{})

	next, status := empty.Move(game.ActiveSmall, game.Out, game.W)
	if status != MoveSuccess {
		t.Fatalf("Move status = %v, want Success", status)
	}
	if got := next.ActiveColor(); got != game.Blue {
		t.Errorf("successor ActiveColor = %v, want Blue", got)
	}
	if got := next.PairOf(game.InactiveSmall); got != (LocationPair{game.W, game.Out}) {
		t.Errorf("successor InactiveSmall pair = %v, want {W, Out}", got)
	}
}

func TestMove_GobblingRequiresStrictlySmaller(t *testing.T) {
	pos := New(game.Orange, [game.PieceCount]LocationPair{
		{game.NW, game.SW}, {game.Out, game.Out},
		{game.N, game.S}, {game.Out, game.Out},
		{game.NE, game.SE}, {game.Out, game.Out},
	})
	if !pos.Valid() {
		t.Fatal("position is not valid")
	}

	// Same size at the destination: not strictly smaller.
	if _, status := pos.Move(game.ActiveSmall, game.NW, game.SW); status != MoveInvalid {
		t.Errorf("move onto same size status = %v, want Invalid", status)
	}
	// A larger piece gobbles a smaller one.
	if _, status := pos.Move(game.ActiveMedium, game.N, game.SW); status != MoveSuccess {
		t.Errorf("medium onto small status = %v, want Success", status)
	}
	// A smaller piece cannot land on a larger one.
	if _, status := pos.Move(game.ActiveSmall, game.NW, game.S); status != MoveInvalid {
		t.Errorf("small onto medium status = %v, want Invalid", status)
	}
}

func TestMove_Preconditions(t *testing.T) {
	pos := New(game.Orange, [game.PieceCount]LocationPair{
		{game.NW, game.Out}, {game.Center, game.Out},
		{game.NW, game.Out}, {game.Out, game.Out},
		{game.Out, game.Out}, {game.Out, game.Out},
	})
	if !pos.Valid() {
		t.Fatal("position is not valid")
	}

	// An inactive piece cannot make a forward move.
	if _, status := pos.Move(game.InactiveSmall, game.Center, game.E); status != MoveInvalid {
		t.Errorf("inactive piece move status = %v, want Invalid", status)
	}
	// The piece must sit at src.
	if _, status := pos.Move(game.ActiveSmall, game.E, game.S); status != MoveInvalid {
		t.Errorf("absent src move status = %v, want Invalid", status)
	}
	// The destination must be on the board.
	if _, status := pos.Move(game.ActiveSmall, game.NW, game.Out); status != MoveInvalid {
		t.Errorf("move to Out status = %v, want Invalid", status)
	}
	// A covered piece cannot move: the small at NW sits under the
	// medium.
	if _, status := pos.Move(game.ActiveSmall, game.NW, game.E); status != MoveInvalid {
		t.Errorf("covered piece move status = %v, want Invalid", status)
	}
	// src and dst must differ.
	if _, status := pos.Move(game.ActiveMedium, game.NW, game.NW); status != MoveInvalid {
		t.Errorf("no-op move status = %v, want Invalid", status)
	}
}

func TestMove_UncoverLoss(t *testing.T) {
	// The active large at NW covers an opposing small; NW-N-NE belongs
	// to the inactive player except for that cover.
	pos := New(game.Orange, [game.PieceCount]LocationPair{
		{game.Out, game.Out}, {game.NW, game.Out},
		{game.Out, game.Out}, {game.N, game.Out},
		{game.NW, game.Out}, {game.NE, game.Out},
	})
	if !pos.Valid() {
		t.Fatal("position is not valid")
	}

	if _, status := pos.Move(game.ActiveLarge, game.NW, game.Center); status != MoveLost {
		t.Errorf("uncovering move status = %v, want Lost", status)
	}
}

func TestMoveBack_Preconditions(t *testing.T) {
	pos := New(game.Blue, [game.PieceCount]LocationPair{
		{game.Out, game.Out}, {game.W, game.Out},
		{game.Out, game.Out}, {game.Out, game.Out},
		{game.Out, game.Out}, {game.Out, game.Out},
	})
	if !pos.Valid() {
		t.Fatal("position is not valid")
	}

	// Only inactive pieces move back.
	if _, status := pos.MoveBack(game.ActiveSmall, game.W, game.Out); status != MoveInvalid {
		t.Errorf("active piece move back status = %v, want Invalid", status)
	}
	// src must be a board cell.
	if _, status := pos.MoveBack(game.InactiveSmall, game.Out, game.W); status != MoveInvalid {
		t.Errorf("move back from Out status = %v, want Invalid", status)
	}
	// Un-placing to Out is allowed.
	prev, status := pos.MoveBack(game.InactiveSmall, game.W, game.Out)
	if status != MoveSuccess {
		t.Fatalf("move back to Out status = %v, want Success", status)
	}
	if got := prev.ID(); got != InitialID {
		t.Errorf("undoing the opening move yields %d, want InitialID", got)
	}
}

func TestMoveBack_UncoverLoss(t *testing.T) {
	// The inactive large at NW covers a cell of the active player's
	// NW-N-NE line.
	pos := New(game.Orange, [game.PieceCount]LocationPair{
		{game.NW, game.Out}, {game.Out, game.Out},
		{game.N, game.Out}, {game.Out, game.Out},
		{game.NE, game.Out}, {game.NW, game.Out},
	})
	if !pos.Valid() {
		t.Fatal("position is not valid")
	}

	if _, status := pos.MoveBack(game.InactiveLarge, game.NW, game.Center); status != MoveLost {
		t.Errorf("uncovering move back status = %v, want Lost", status)
	}
}

func TestMove_Reversibility(t *testing.T) {
	for _, id := range sampleIDs() {
		pos := FromID(id)
		// A finished game has no forward moves worth reversing: moving
		// from the reserve would succeed even though the opponent
		// already holds a line, and the retrograde side then reports
		// the loss.
		if pos.IsWinner(game.Active) || pos.IsWinner(game.Inactive) {
			continue
		}
		for _, piece := range game.ActivePieces {
			pair := pos.PairOf(piece)
			for slot := 0; slot < 2; slot++ {
				src := pair[slot]
				for _, dst := range game.BoardLocations {
					next, status := pos.Move(piece, src, dst)
					if status != MoveSuccess {
						continue
					}
					// After the role swap the moved piece belongs to
					// the inactive player of the successor; moving it
					// back to src must restore the position.
					prev, backStatus := next.MoveBack(piece.InvertRole(), dst, src)
					if backStatus != MoveSuccess {
						t.Fatalf("id %d: move %v %v->%v has no inverse (status %v)",
							id, piece, src, dst, backStatus)
					}
					if prev.ID() != id {
						t.Fatalf("id %d: move %v %v->%v reverses to %d",
							id, piece, src, dst, prev.ID())
					}
				}
			}
		}
	}
}

func TestLocationPair_UpdateEither(t *testing.T) {
	pair := LocationPair{game.SE, game.NW}
	if !pair.UpdateEither(game.NW, game.Out) {
		t.Fatal("UpdateEither(NW, Out) = false")
	}
	if pair != (LocationPair{game.SE, game.Out}) {
		t.Errorf("pair = %v, want {SE, Out}", pair)
	}

	// Moving the first slot below the second swaps them.
	pair = LocationPair{game.SE, game.Center}
	if !pair.UpdateEither(game.SE, game.NW) {
		t.Fatal("UpdateEither(SE, NW) = false")
	}
	if pair != (LocationPair{game.Center, game.NW}) {
		t.Errorf("pair = %v, want {Center, NW}", pair)
	}

	// Raising the second slot above the first swaps them.
	pair = LocationPair{game.N, game.Out}
	if !pair.UpdateEither(game.Out, game.SE) {
		t.Fatal("UpdateEither(Out, SE) = false")
	}
	if pair != (LocationPair{game.SE, game.N}) {
		t.Errorf("pair = %v, want {SE, N}", pair)
	}

	pair = LocationPair{game.N, game.Out}
	if pair.UpdateEither(game.SW, game.SE) {
		t.Error("UpdateEither with absent src = true, want false")
	}
}

func TestLocationPair_TransformKeepsOrder(t *testing.T) {
	for _, trans := range game.Transformers {
		pair := LocationPair{game.SE, game.NW}.Transform(trans)
		if pair[0] < pair[1] {
			t.Errorf("Transform(%v) broke the non-ascending order: %v", trans, pair)
		}
	}
}

// sampleIDs returns a spread of valid position IDs of both colors.
func sampleIDs() []ID {
	var ids []ID
	for i := ID(0); i < IDCount; i += IDCount/257 + 1 {
		ids = append(ids, i)
	}
	return ids
}
