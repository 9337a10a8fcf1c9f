package inspect

import (
	"strings"

	"github.com/muesli/termenv"

	"github.com/discochess/gobbler/internal/game"
	"github.com/discochess/gobbler/internal/position"
)

// Renderer turns positions into terminal text.
type Renderer interface {
	// RenderPosition returns the board drawing, one line per entry.
	RenderPosition(pos position.Position) []string

	// PieceCell returns the cell text of a piece of the given color and
	// size, or the empty cell for SizeNone.
	PieceCell(color game.Color, size game.Size) string

	// ColorSymbol returns the short symbol identifying a player color.
	ColorSymbol(color game.Color) string
}

// Compile-time check that AsciiRenderer implements Renderer.
var _ Renderer = (*AsciiRenderer)(nil)

// Piece colors follow the original terminal renderer: 256-color orange
// and blue.
var (
	orangeColor = termenv.ANSI256Color(208)
	blueColor   = termenv.ANSI256Color(32)
)

// AsciiRenderer draws the 3x3 board with one row of cells per piece
// size, largest on top, optionally coloring the pieces with ANSI
// escapes.
type AsciiRenderer struct {
	profile termenv.Profile
}

// NewAsciiRenderer creates a renderer. With color enabled the pieces
// are tinted per player; otherwise the output is plain ASCII.
func NewAsciiRenderer(color bool) *AsciiRenderer {
	profile := termenv.Ascii
	if color {
		profile = termenv.ANSI256
	}
	return &AsciiRenderer{profile: profile}
}

func (r *AsciiRenderer) tint(color termenv.Color, s string) string {
	return r.profile.String(s).Foreground(r.profile.Convert(color)).String()
}

const boardRule = "+-------+-------+-------+"

// cellGrid maps (column, row) to a board location.
var cellGrid = [game.BoardLength][game.BoardLength]game.Location{
	{game.NW, game.W, game.SW},
	{game.N, game.Center, game.S},
	{game.NE, game.E, game.SE},
}

// RenderPosition draws the board. Each cell shows its occupants of all
// three sizes, largest on top.
func (r *AsciiRenderer) RenderPosition(pos position.Position) []string {
	if !pos.Valid() {
		return []string{"invalid position"}
	}

	activeColor := pos.ActiveColor()
	inactiveColor := pos.InactiveColor()

	var lines []string
	for row := 0; row < game.BoardLength; row++ {
		lines = append(lines, boardRule)
		for sizeIdx := len(game.Sizes) - 1; sizeIdx >= 0; sizeIdx-- {
			size := game.Sizes[sizeIdx]
			var b strings.Builder
			b.WriteString("|")
			for col := 0; col < game.BoardLength; col++ {
				loc := cellGrid[col][row]
				switch piece := pieceAt(pos, loc, size); piece.Role() {
				case game.Active:
					b.WriteString(r.PieceCell(activeColor, size))
				case game.Inactive:
					b.WriteString(r.PieceCell(inactiveColor, size))
				default:
					b.WriteString(r.PieceCell(game.Orange, game.SizeNone))
				}
				b.WriteString("|")
			}
			lines = append(lines, b.String())
		}
	}
	lines = append(lines, boardRule)
	return lines
}

// pieceAt returns the piece of the given size at a cell, PieceNone when
// absent.
func pieceAt(pos position.Position, loc game.Location, size game.Size) game.Piece {
	for _, piece := range game.Pieces {
		if piece.Size() != size {
			continue
		}
		pair := pos.PairOf(piece)
		if pair[0] == loc || pair[1] == loc {
			return piece
		}
	}
	return game.PieceNone
}

// PieceCell returns the 7-column cell text of a piece.
func (r *AsciiRenderer) PieceCell(color game.Color, size game.Size) string {
	if size == game.SizeNone || !size.Valid() {
		return "       "
	}

	sizeLetter := [4]string{"", "S", "M", "L"}[size]
	if color == game.Orange {
		return r.tint(orangeColor, "== "+sizeLetter+" ==")
	}
	return r.tint(blueColor, "** "+sizeLetter+" **")
}

// ColorSymbol returns the two-character symbol of a player color.
func (r *AsciiRenderer) ColorSymbol(color game.Color) string {
	if color == game.Orange {
		return r.tint(orangeColor, "==")
	}
	return r.tint(blueColor, "**")
}
