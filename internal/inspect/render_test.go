package inspect

import (
	"strings"
	"testing"

	"github.com/discochess/gobbler/internal/game"
	"github.com/discochess/gobbler/internal/position"
)

func TestRenderPosition_Plain(t *testing.T) {
	r := NewAsciiRenderer(false)

	pos := position.New(game.Orange, [game.PieceCount]position.LocationPair{
		{game.NW, game.Out}, {game.Center, game.Out},
		{game.Out, game.Out}, {game.Out, game.Out},
		{game.NW, game.Out}, {game.Out, game.Out},
	})
	if !pos.Valid() {
		t.Fatal("position is not valid")
	}

	lines := r.RenderPosition(pos)
	// Three rows of three piece lines plus four rules.
	if len(lines) != 13 {
		t.Fatalf("rendered %d lines, want 13", len(lines))
	}
	joined := strings.Join(lines, "\n")
	if strings.Contains(joined, "\x1b[") {
		t.Error("plain renderer emitted ANSI escapes")
	}
	// The active large and the covered active small both sit at NW;
	// the opposing small holds the center.
	if !strings.Contains(lines[1], "== L ==") {
		t.Errorf("top row missing the large piece: %q", lines[1])
	}
	if !strings.Contains(lines[3], "== S ==") {
		t.Errorf("bottom stack line missing the covered small: %q", lines[3])
	}
	if !strings.Contains(lines[7], "** S **") {
		t.Errorf("center row missing the opposing small: %q", lines[7])
	}
}

func TestRenderPosition_Invalid(t *testing.T) {
	r := NewAsciiRenderer(false)
	lines := r.RenderPosition(position.FromID(position.InvalidID))
	if len(lines) != 1 || lines[0] != "invalid position" {
		t.Errorf("invalid render = %v", lines)
	}
}

func TestPieceCell_Empty(t *testing.T) {
	r := NewAsciiRenderer(false)
	if got := r.PieceCell(game.Orange, game.SizeNone); got != "       " {
		t.Errorf("empty cell = %q", got)
	}
}

func TestColorSymbol(t *testing.T) {
	r := NewAsciiRenderer(false)
	if got := r.ColorSymbol(game.Orange); got != "==" {
		t.Errorf("ColorSymbol(Orange) = %q, want ==", got)
	}
	if got := r.ColorSymbol(game.Blue); got != "**" {
		t.Errorf("ColorSymbol(Blue) = %q, want **", got)
	}
}
