package inspect

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/discochess/gobbler/internal/analysis"
	"github.com/discochess/gobbler/internal/position"
)

// maxHistorySize bounds the navigation history of the REPL.
const maxHistorySize = 32

// Processor runs the interactive inspection loop: it tracks a current
// position, its inspection results and a bounded navigation history.
type Processor struct {
	inspector *Inspector
	renderer  Renderer
	out       io.Writer

	pos       position.Position
	posResult PositionResult
	moves     []MoveResult
	moveBacks []MoveResult

	history      []PositionResult
	historyIndex int
}

// NewProcessor creates a processor positioned at the given position ID.
func NewProcessor(inspector *Inspector, renderer Renderer, out io.Writer, id position.ID) *Processor {
	p := &Processor{
		inspector: inspector,
		renderer:  renderer,
		out:       out,
	}
	p.jumpTo(id)
	p.history = append(p.history, p.posResult)
	return p
}

// Run reads commands from in until exit or EOF.
func (p *Processor) Run(in io.Reader) error {
	p.showPosition()
	p.showMoves()

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(p.out, "gobb_inspect> ")
		if !scanner.Scan() {
			break
		}

		args := strings.Fields(scanner.Text())
		if len(args) == 0 {
			continue
		}

		if args[0] == "exit" {
			break
		}
		p.dispatch(args)
	}
	return scanner.Err()
}

func (p *Processor) dispatch(args []string) {
	switch args[0] {
	case "show-position", "sp":
		if !p.wantArgs(args, 1, "show-position") {
			return
		}
		p.showPosition()
	case "goto-position", "gp":
		p.doGotoPosition(args)
	case "show-moves", "sm":
		if !p.wantArgs(args, 1, "show-moves") {
			return
		}
		p.showMoves()
	case "show-movebacks", "smb":
		if !p.wantArgs(args, 1, "show-movebacks") {
			return
		}
		p.showMoveBacks()
	case "move", "m":
		p.doMove(args)
	case "moveback", "mb":
		p.doMoveBack(args)
	case "show-history", "sh":
		if !p.wantArgs(args, 1, "show-history") {
			return
		}
		p.showHistory()
	case "goto-history", "gh":
		p.doGotoHistory(args)
	case "next", "n":
		p.doNext(args)
	case "previous", "p":
		p.doPrevious(args)
	case "help", "?":
		p.showHelp()
	default:
		p.println("invalid command")
		p.showHint()
	}
}

func (p *Processor) wantArgs(args []string, n int, name string) bool {
	if len(args) != n {
		p.println("invalid arguments to '" + name + "' command")
		p.showHint()
		return false
	}
	return true
}

// jumpTo repositions the processor and refreshes the inspection
// results.
func (p *Processor) jumpTo(id position.ID) {
	p.pos = position.FromID(id)
	p.posResult = p.inspector.InspectPosition(id)
	p.moves = p.inspector.InspectMoves(id)
	p.moveBacks = p.inspector.InspectMoveBacks(id)
}

func (p *Processor) doGotoPosition(args []string) {
	if !p.wantArgs(args, 2, "goto-position") {
		return
	}
	id, err := strconv.ParseUint(args[1], 10, 64)
	if err != nil {
		p.println("invalid position")
		return
	}

	p.jumpTo(id)
	p.showRule()
	p.showPosition()
	p.showMoves()
	p.addHistory(p.posResult)
}

func (p *Processor) doMove(args []string) {
	if !p.wantArgs(args, 2, "move") {
		return
	}
	index, err := strconv.Atoi(args[1])
	if err != nil || index < 0 {
		p.println("invalid index")
		return
	}
	if index >= len(p.moves) {
		p.println("invalid index for 'move' command")
		return
	}

	res := p.moves[index]
	next, _ := p.pos.Move(res.Piece, res.Source, res.Destination)
	p.jumpTo(next.ID())
	p.showRule()
	p.showPosition()
	p.showMoves()
	p.addHistory(p.posResult)
}

func (p *Processor) doMoveBack(args []string) {
	if !p.wantArgs(args, 2, "moveback") {
		return
	}
	index, err := strconv.Atoi(args[1])
	if err != nil || index < 0 {
		p.println("invalid index")
		return
	}
	if index >= len(p.moveBacks) {
		p.println("invalid index for 'moveback' command")
		return
	}

	res := p.moveBacks[index]
	prev, _ := p.pos.MoveBack(res.Piece, res.Source, res.Destination)
	p.jumpTo(prev.ID())
	p.showRule()
	p.showPosition()
	p.showMoves()
	p.addHistory(p.posResult)
}

func (p *Processor) doGotoHistory(args []string) {
	if !p.wantArgs(args, 2, "goto-history") {
		return
	}
	index, err := strconv.Atoi(args[1])
	if err != nil || index < 0 {
		p.println("invalid index")
		return
	}
	if index >= len(p.history) {
		p.println("invalid index for 'goto-history' command")
		return
	}

	p.historyIndex = index
	p.jumpTo(p.history[index].PositionID)
	p.showRule()
	p.showPosition()
	p.showMoves()
}

func (p *Processor) doNext(args []string) {
	if !p.wantArgs(args, 1, "next") {
		return
	}
	if p.historyIndex+1 >= len(p.history) {
		p.println("no next entry in the history table")
		return
	}
	p.historyIndex++
	p.jumpTo(p.history[p.historyIndex].PositionID)
	p.showPosition()
	p.showMoves()
}

func (p *Processor) doPrevious(args []string) {
	if !p.wantArgs(args, 1, "previous") {
		return
	}
	if p.historyIndex == 0 {
		p.println("no previous entry in the history table")
		return
	}
	p.historyIndex--
	p.jumpTo(p.history[p.historyIndex].PositionID)
	p.showPosition()
	p.showMoves()
}

// addHistory pushes a new entry after the current one, discarding any
// forward entries and evicting the oldest entry when full.
func (p *Processor) addHistory(entry PositionResult) {
	p.history = p.history[:p.historyIndex+1]
	if len(p.history) == maxHistorySize {
		copy(p.history, p.history[1:])
		p.history = p.history[:len(p.history)-1]
		if p.historyIndex > 0 {
			p.historyIndex--
		}
	}
	p.history = append(p.history, entry)
	p.historyIndex++
}

func (p *Processor) showPosition() {
	p.println(fmt.Sprintf("position = %d, remainingTurns = %d, %s",
		p.pos.ID(), p.posResult.Turn, p.posResult.Status))

	if !p.pos.Valid() {
		p.println("### the position is not valid. ###")
		return
	}

	for _, line := range p.renderer.RenderPosition(p.pos) {
		p.println(line)
	}
	p.println(fmt.Sprintf("(the player having the turn: %q)",
		p.renderer.ColorSymbol(p.pos.ActiveColor())))
	p.println("")
}

func (p *Processor) showMoves() {
	p.println("possible moves:")
	p.showMoveList(p.moves)
}

func (p *Processor) showMoveBacks() {
	p.println("possible retrograde moves:")
	p.showMoveList(p.moveBacks)
}

func (p *Processor) showMoveList(results []MoveResult) {
	for i, res := range results {
		bestMark := ""
		if res.Best {
			bestMark = " [best]"
		}
		p.println(fmt.Sprintf("  %2d| %-6s, %-6s -> %-6s, position = %*d, remainingTurns = %*d, %s%s",
			i,
			res.Piece.Size(), res.Source, res.Destination,
			position.MaxIDWidth, res.PositionID,
			analysis.MaxTurnWidth, res.Turn,
			res.Status, bestMark))
	}
}

func (p *Processor) showHistory() {
	p.println("history:")
	for i, entry := range p.history {
		hereMark := ""
		if i == p.historyIndex {
			hereMark = " [here]"
		}
		p.println(fmt.Sprintf("  %2d| position = %*d, remainingTurns = %*d, %s%s",
			i,
			position.MaxIDWidth, entry.PositionID,
			analysis.MaxTurnWidth, entry.Turn,
			entry.Status, hereMark))
	}
}

func (p *Processor) showHelp() {
	for _, line := range []string{
		"Position:",
		"  (sp)  show-position     show the current position",
		"  (gp)  goto-position ID  go to the position ID",
		"Move:",
		"  (sm)  show-moves        show possible moves",
		"  (smb) show-movebacks    show possible retrograde moves",
		"  (m)   move NUM          execute the movement of the possible move NUM",
		"  (mb)  moveback NUM      execute the movement of the possible",
		"                          retrograde move NUM",
		"History:",
		"  (sh)  show-history      show the history table",
		"  (gh)  goto-history NUM  go to the position of the history NUM",
		"  (n)   next              go to the next position of the history",
		"  (p)   previous          go to the previous position of the history",
		"",
		"Miscellaneous:",
		"  (?)   help              print this help",
		"        exit              exit the program",
	} {
		p.println(line)
	}
}

func (p *Processor) showRule() {
	p.println(strings.Repeat("-", 40))
}

func (p *Processor) showHint() {
	p.println("Try 'help' or '?' for more information.")
}

func (p *Processor) println(line string) {
	fmt.Fprintln(p.out, line)
}
