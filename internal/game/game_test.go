package game

import "testing"

func TestColor_Invert(t *testing.T) {
	if got := Orange.Invert(); got != Blue {
		t.Errorf("Orange.Invert() = %v, want Blue", got)
	}
	if got := Blue.Invert(); got != Orange {
		t.Errorf("Blue.Invert() = %v, want Orange", got)
	}
	if got := ColorInvalid.Invert(); got != ColorInvalid {
		t.Errorf("ColorInvalid.Invert() = %v, want ColorInvalid", got)
	}
}

func TestRole_Invert(t *testing.T) {
	if got := Active.Invert(); got != Inactive {
		t.Errorf("Active.Invert() = %v, want Inactive", got)
	}
	if got := Inactive.Invert(); got != Active {
		t.Errorf("Inactive.Invert() = %v, want Active", got)
	}
	if got := RoleNone.Invert(); got != RoleNone {
		t.Errorf("RoleNone.Invert() = %v, want RoleNone", got)
	}
}

func TestPiece_RoleAndSize(t *testing.T) {
	tests := []struct {
		piece Piece
		role  Role
		size  Size
	}{
		{PieceNone, RoleNone, SizeNone},
		{ActiveSmall, Active, Small},
		{InactiveSmall, Inactive, Small},
		{ActiveMedium, Active, Medium},
		{InactiveMedium, Inactive, Medium},
		{ActiveLarge, Active, Large},
		{InactiveLarge, Inactive, Large},
		{PieceInvalid, RoleInvalid, SizeInvalid},
	}
	for _, tt := range tests {
		if got := tt.piece.Role(); got != tt.role {
			t.Errorf("%v.Role() = %v, want %v", tt.piece, got, tt.role)
		}
		if got := tt.piece.Size(); got != tt.size {
			t.Errorf("%v.Size() = %v, want %v", tt.piece, got, tt.size)
		}
	}
}

func TestPiece_InvertRole(t *testing.T) {
	for _, piece := range Pieces {
		inverted := piece.InvertRole()
		if got := inverted.Size(); got != piece.Size() {
			t.Errorf("%v.InvertRole().Size() = %v, want %v", piece, got, piece.Size())
		}
		if got := inverted.Role(); got != piece.Role().Invert() {
			t.Errorf("%v.InvertRole().Role() = %v, want %v", piece, got, piece.Role().Invert())
		}
		if got := inverted.InvertRole(); got != piece {
			t.Errorf("%v.InvertRole().InvertRole() = %v, want %v", piece, got, piece)
		}
	}
	if got := PieceNone.InvertRole(); got != PieceNone {
		t.Errorf("PieceNone.InvertRole() = %v, want PieceNone", got)
	}
}

func TestPieceOf(t *testing.T) {
	for _, role := range []Role{Active, Inactive} {
		for _, size := range Sizes {
			piece := PieceOf(role, size)
			if piece.Role() != role || piece.Size() != size {
				t.Errorf("PieceOf(%v, %v) = %v", role, size, piece)
			}
		}
	}
	if got := PieceOf(RoleNone, Small); got != PieceInvalid {
		t.Errorf("PieceOf(RoleNone, Small) = %v, want PieceInvalid", got)
	}
	if got := PieceOf(Active, SizeNone); got != PieceInvalid {
		t.Errorf("PieceOf(Active, SizeNone) = %v, want PieceInvalid", got)
	}
}

func TestLocation_OnBoard(t *testing.T) {
	if Out.OnBoard() {
		t.Error("Out.OnBoard() = true, want false")
	}
	for _, loc := range BoardLocations {
		if !loc.OnBoard() {
			t.Errorf("%v.OnBoard() = false, want true", loc)
		}
	}
	if LocationInvalid.OnBoard() {
		t.Error("LocationInvalid.OnBoard() = true, want false")
	}
}

func TestLines_CoverEveryCell(t *testing.T) {
	seen := make(map[Location]int)
	for _, line := range Lines {
		for _, loc := range line {
			seen[loc]++
		}
	}
	if len(seen) != BoardCellCount {
		t.Fatalf("lines touch %d cells, want %d", len(seen), BoardCellCount)
	}
	// The center belongs to four lines, corners to three, edges to two.
	if got := seen[Center]; got != 4 {
		t.Errorf("Center appears in %d lines, want 4", got)
	}
	for _, corner := range []Location{NW, NE, SW, SE} {
		if got := seen[corner]; got != 3 {
			t.Errorf("%v appears in %d lines, want 3", corner, got)
		}
	}
	for _, edge := range []Location{N, W, E, S} {
		if got := seen[edge]; got != 2 {
			t.Errorf("%v appears in %d lines, want 2", edge, got)
		}
	}
}
