// Package position implements the compact position encoding of Gobblet
// Gobblers together with forward moves, retrograde moves and symmetry
// reduction.
//
// A position is identified by a 64-bit ID. For each piece size the four
// piece locations (two active, two inactive, each pair in non-ascending
// order) are mapped to a dense quad index in [0, 1423); the three quad
// indexes form the digits of a mixed-radix number, and the color of the
// active player contributes a final offset of 1423^3:
//
//	base = Q(Small) + 1423*Q(Medium) + 1423^2*Q(Large)
//	id   = base                   (Orange to move)
//	id   = base + SetCombinations (Blue to move)
//
// The quad tables are generated; see gen/main.go and quadtables_gen.go.
package position

//go:generate go run ./gen

import "github.com/discochess/gobbler/internal/game"

// ID identifies a position.
type ID = uint64

const (
	// QuadCombinations is the number of distinct legal placements of
	// the four same-size pieces.
	QuadCombinations = 1423

	// SetCombinations is the number of placements of all twelve pieces.
	SetCombinations = QuadCombinations * QuadCombinations * QuadCombinations

	// IDCount is the number of position IDs, counting both colors.
	IDCount = SetCombinations * 2

	// TableSize is the number of canonical table cells: color-stripped
	// representatives of the D4 orbits.
	TableSize = SetCombinations

	// InitialID is the ID of the empty starting position.
	InitialID ID = 0

	// InvalidID marks an unusable position.
	InvalidID ID = 1<<64 - 1
)

// MaxIDWidth is the decimal width of the largest valid ID, used for
// aligned rendering.
const MaxIDWidth = 10

// ValidID reports whether id is within the ID space.
func ValidID(id ID) bool {
	return id < IDCount
}

// LocationPair holds the locations of the two identical copies of one
// piece kind. The pair is kept in non-ascending order.
type LocationPair [2]game.Location

// Valid reports whether both locations are valid.
func (p LocationPair) Valid() bool {
	return p[0].Valid() && p[1].Valid()
}

// UpdateEither moves one copy from src to dst, restoring the
// non-ascending order. It reports false when neither slot holds src.
func (p *LocationPair) UpdateEither(src, dst game.Location) bool {
	switch {
	case p[0] == src:
		if p[1] <= dst {
			p[0] = dst
		} else {
			p[0] = p[1]
			p[1] = dst
		}
	case p[1] == src:
		if p[0] >= dst {
			p[1] = dst
		} else {
			p[1] = p[0]
			p[0] = dst
		}
	default:
		return false
	}
	return true
}

// Transform applies t to both locations, restoring the non-ascending
// order. Invalid locations transform to LocationInvalid.
func (p LocationPair) Transform(t game.Transformer) LocationPair {
	loc0 := game.TransformLocation(t, p[0])
	loc1 := game.TransformLocation(t, p[1])
	if loc0 >= loc1 {
		return LocationPair{loc0, loc1}
	}
	return LocationPair{loc1, loc0}
}

// MoveStatus is the outcome of Move or MoveBack.
type MoveStatus uint8

const (
	// MoveSuccess means the move is legal and the result position is
	// meaningful.
	MoveSuccess MoveStatus = 0

	// MoveLost means picking the piece up exposes a completed line of
	// the opponent: the mover loses on the spot. The result position is
	// not fully updated.
	MoveLost MoveStatus = 1

	// MoveInvalid means the move violates a precondition.
	MoveInvalid MoveStatus = 255
)

func (s MoveStatus) String() string {
	switch s {
	case MoveSuccess:
		return "Success"
	case MoveLost:
		return "Lost"
	}
	return "Invalid"
}

// Position is the operational form of a position: it carries the piece
// placement and the derived per-cell topmost pieces, and keeps its ID in
// sync. The zero value is not meaningful; use FromID or New.
type Position struct {
	id          ID
	activeColor game.Color

	// pairs is indexed by game.Piece; index 0 (PieceNone) stays
	// {Out, Out}.
	pairs [game.PieceCount + 1]LocationPair

	// topmost is indexed by game.Location; index 0 (Out) is unused.
	topmost [game.LocationCount]game.Piece
}

// FromID decodes a position from its ID. An out-of-range ID yields an
// invalid position.
func FromID(id ID) Position {
	var pos Position
	pos.assignID(id)
	return pos
}

func (pos *Position) assignID(id ID) {
	if !ValidID(id) {
		pos.id = InvalidID
		return
	}

	val := id
	if id < SetCombinations {
		pos.activeColor = game.Orange
	} else {
		pos.activeColor = game.Blue
		val -= SetCombinations
	}

	smallQuad := quadLocations[val%QuadCombinations]
	val /= QuadCombinations
	mediumQuad := quadLocations[val%QuadCombinations]
	largeQuad := quadLocations[val/QuadCombinations]

	pos.pairs[game.PieceNone] = LocationPair{game.Out, game.Out}
	pos.pairs[game.ActiveSmall] = LocationPair{smallQuad[0], smallQuad[1]}
	pos.pairs[game.InactiveSmall] = LocationPair{smallQuad[2], smallQuad[3]}
	pos.pairs[game.ActiveMedium] = LocationPair{mediumQuad[0], mediumQuad[1]}
	pos.pairs[game.InactiveMedium] = LocationPair{mediumQuad[2], mediumQuad[3]}
	pos.pairs[game.ActiveLarge] = LocationPair{largeQuad[0], largeQuad[1]}
	pos.pairs[game.InactiveLarge] = LocationPair{largeQuad[2], largeQuad[3]}

	pos.id = id
	pos.updateTopmost()
}

// New builds a position from the active player's color and the location
// pairs of the six piece kinds in Piece order (ActiveSmall,
// InactiveSmall, ActiveMedium, InactiveMedium, ActiveLarge,
// InactiveLarge). An invalid color, pair or same-size overlap yields an
// invalid position.
func New(activeColor game.Color, pairs [game.PieceCount]LocationPair) Position {
	var pos Position
	pos.id = InvalidID

	if !activeColor.Valid() {
		return pos
	}
	for _, pair := range pairs {
		if !pair.Valid() {
			return pos
		}
	}
	for i := 0; i < game.PieceCount; i += 2 {
		q := quadOf(pairs[i], pairs[i+1])
		if quadIndex[q] == invalidQuad {
			return pos
		}
	}

	pos.activeColor = activeColor
	pos.pairs[game.PieceNone] = LocationPair{game.Out, game.Out}
	for i, pair := range pairs {
		pos.pairs[game.Piece(i+1)] = pair
	}
	pos.updateTopmost()
	pos.updateID()
	return pos
}

// quadOf flattens the four locations of a size into the index of the
// quadIndex table.
func quadOf(active, inactive LocationPair) int {
	return int(active[0]) +
		int(active[1])*game.LocationCount +
		int(inactive[0])*game.LocationCount*game.LocationCount +
		int(inactive[1])*game.LocationCount*game.LocationCount*game.LocationCount
}

// ID returns the position ID, InvalidID for invalid positions.
func (pos Position) ID() ID {
	return pos.id
}

// Valid reports whether the position holds a valid ID.
func (pos Position) Valid() bool {
	return ValidID(pos.id)
}

// ActiveColor returns the color of the player to move.
func (pos Position) ActiveColor() game.Color {
	if !pos.Valid() {
		return game.ColorInvalid
	}
	return pos.activeColor
}

// InactiveColor returns the color of the opponent.
func (pos Position) InactiveColor() game.Color {
	return pos.ActiveColor().Invert()
}

// PairOf returns the location pair of a piece kind, or a pair of
// LocationInvalid when piece is not valid.
func (pos Position) PairOf(piece game.Piece) LocationPair {
	if !piece.Valid() {
		return LocationPair{game.LocationInvalid, game.LocationInvalid}
	}
	return pos.pairs[piece]
}

// TopmostAt returns the topmost piece at a board cell, PieceNone for an
// empty cell and PieceInvalid when loc is not on the board.
func (pos Position) TopmostAt(loc game.Location) game.Piece {
	if !loc.OnBoard() {
		return game.PieceInvalid
	}
	return pos.topmost[loc]
}

// IsWinner reports whether the given role owns the topmost piece of
// every cell of some line.
func (pos Position) IsWinner(role game.Role) bool {
	if !pos.Valid() {
		return false
	}
	for _, line := range game.Lines {
		if pos.topmost[line[0]].Role() == role &&
			pos.topmost[line[1]].Role() == role &&
			pos.topmost[line[2]].Role() == role {
			return true
		}
	}
	return false
}

// Move performs a forward move of the active player: piece travels from
// src (a board cell or Out) to the board cell dst, covering any
// strictly smaller piece there. Picking the piece up may expose a
// completed line of the inactive player; that yields MoveLost and a
// partially updated position. On MoveSuccess the roles are swapped and
// the ID recomputed.
func (pos Position) Move(piece game.Piece, src, dst game.Location) (Position, MoveStatus) {
	if !pos.Valid() {
		return pos, MoveInvalid
	}
	if piece.Role() != game.Active {
		return pos, MoveInvalid
	}
	pair := pos.pairs[piece]
	if pair[0] != src && pair[1] != src {
		return pos, MoveInvalid
	}
	if !src.Valid() {
		return pos, MoveInvalid
	}
	if !dst.OnBoard() {
		return pos, MoveInvalid
	}
	if src != game.Out && pos.topmost[src] != piece {
		return pos, MoveInvalid
	}
	if pos.topmost[dst].Size() >= piece.Size() {
		return pos, MoveInvalid
	}
	if src == dst {
		return pos, MoveInvalid
	}

	next := pos
	if src != game.Out {
		next.pairs[piece].UpdateEither(src, game.Out)
		next.updateTopmost()
		if next.IsWinner(game.Inactive) {
			return next, MoveLost
		}
	}

	next.pairs[piece].UpdateEither(game.Out, dst)
	next.updateTopmost()
	next.invertRoles()
	next.updateID()
	return next, MoveSuccess
}

// MoveBack performs a retrograde move of the inactive player: their
// piece is picked up from the board cell src and returned to dst, which
// may be Out. Picking the piece up may expose a completed line of the
// active player; that yields MoveLost. On MoveSuccess the roles are
// swapped and the ID recomputed, producing a predecessor position.
func (pos Position) MoveBack(piece game.Piece, src, dst game.Location) (Position, MoveStatus) {
	if !pos.Valid() {
		return pos, MoveInvalid
	}
	if piece.Role() != game.Inactive {
		return pos, MoveInvalid
	}
	pair := pos.pairs[piece]
	if pair[0] != src && pair[1] != src {
		return pos, MoveInvalid
	}
	if !src.OnBoard() {
		return pos, MoveInvalid
	}
	if !dst.Valid() {
		return pos, MoveInvalid
	}
	if pos.topmost[src] != piece {
		return pos, MoveInvalid
	}
	if dst != game.Out && pos.topmost[dst].Size() >= piece.Size() {
		return pos, MoveInvalid
	}
	if src == dst {
		return pos, MoveInvalid
	}

	next := pos
	next.pairs[piece].UpdateEither(src, game.Out)
	next.updateTopmost()
	if next.IsWinner(game.Active) {
		return next, MoveLost
	}

	next.pairs[piece].UpdateEither(game.Out, dst)
	next.updateTopmost()
	next.invertRoles()
	next.updateID()
	return next, MoveSuccess
}

// Transform applies a board symmetry to every piece and recomputes the
// derived data. An invalid transformer yields an invalid position; an
// invalid position is returned unchanged.
func (pos Position) Transform(t game.Transformer) Position {
	if !pos.Valid() {
		return pos
	}
	if !t.Valid() {
		return FromID(InvalidID)
	}

	next := pos
	for _, piece := range game.Pieces {
		next.pairs[piece] = pos.pairs[piece].Transform(t)
	}
	next.updateTopmost()
	next.updateID()
	return next
}

// MinimizeID returns the canonical table index of the position: the
// smallest ID over the eight symmetries, with the color offset removed.
// It returns InvalidID for invalid positions.
func (pos Position) MinimizeID() ID {
	minID := pos.id

	for _, t := range game.EffectiveTransformers {
		if id := pos.Transform(t).id; id < minID {
			minID = id
		}
	}

	if minID >= SetCombinations && minID != InvalidID {
		minID -= SetCombinations
	}
	return minID
}

func (pos *Position) updateTopmost() {
	for _, loc := range game.BoardLocations {
		pos.topmost[loc] = game.PieceNone
	}
	// Pieces are scanned smallest first, so the last writer of a cell
	// is its topmost piece.
	for _, piece := range game.Pieces {
		pair := pos.pairs[piece]
		if pair[0] != game.Out {
			pos.topmost[pair[0]] = piece
		}
		if pair[1] != game.Out {
			pos.topmost[pair[1]] = piece
		}
	}
}

func (pos *Position) updateID() {
	smallID := ID(quadIndex[quadOf(pos.pairs[game.ActiveSmall], pos.pairs[game.InactiveSmall])])
	mediumID := ID(quadIndex[quadOf(pos.pairs[game.ActiveMedium], pos.pairs[game.InactiveMedium])])
	largeID := ID(quadIndex[quadOf(pos.pairs[game.ActiveLarge], pos.pairs[game.InactiveLarge])])

	pos.id = smallID + mediumID*QuadCombinations + largeID*QuadCombinations*QuadCombinations
	if pos.activeColor == game.Blue {
		pos.id += SetCombinations
	}
}

func (pos *Position) invertRoles() {
	pos.activeColor = pos.activeColor.Invert()

	for _, active := range game.ActivePieces {
		inactive := active.InvertRole()
		pos.pairs[active], pos.pairs[inactive] = pos.pairs[inactive], pos.pairs[active]
	}

	for _, loc := range game.BoardLocations {
		pos.topmost[loc] = pos.topmost[loc].InvertRole()
	}
}
