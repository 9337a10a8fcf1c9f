// Package inspect provides read-only queries over a loaded analysis
// table: per-position status, ranked forward and retrograde move lists,
// and the interactive REPL behind the gobb-inspect command.
package inspect

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/discochess/gobbler/internal/analysis"
	"github.com/discochess/gobbler/internal/game"
	"github.com/discochess/gobbler/internal/position"
	"github.com/discochess/gobbler/internal/snapshot"
	"github.com/discochess/gobbler/internal/stats"
)

// PositionResult is the table metadata of one position.
type PositionResult struct {
	PositionID position.ID
	Turn       analysis.Turn
	Status     analysis.Status
}

// MoveResult describes one legal move from an inspected position, with
// the successor's analysis seen from the mover's side.
type MoveResult struct {
	Piece       game.Piece
	Source      game.Location
	Destination game.Location
	PositionID  position.ID
	Turn        analysis.Turn
	Status      analysis.Status
	Best        bool
}

// cacheEntry bundles the three inspection products of one position.
type cacheEntry struct {
	pos       PositionResult
	moves     []MoveResult
	moveBacks []MoveResult
}

// inspectionCacheSize bounds the per-position result cache. The REPL
// revisits positions through its history, so a small cache suffices.
const inspectionCacheSize = 256

// Inspector is a read-only view over a loaded analysis table.
type Inspector struct {
	table      []byte
	statistics analysis.Statistics

	cache     *lru.Cache[position.ID, *cacheEntry]
	collector stats.Collector
}

// New allocates an inspector with an empty table of position.TableSize
// cells. The collector may be nil.
func New(collector stats.Collector) *Inspector {
	if collector == nil {
		collector = stats.NewNoop()
	}
	cache, _ := lru.New[position.ID, *cacheEntry](inspectionCacheSize)
	return &Inspector{
		table:     make([]byte, position.TableSize),
		cache:     cache,
		collector: collector,
	}
}

// Load reads the snapshot of the given generation into the table.
func (ins *Inspector) Load(ctx context.Context, handler snapshot.Handler, gen analysis.Generation) error {
	ins.cache.Purge()
	return handler.Load(ctx, gen, &ins.statistics, ins.table)
}

// LoadLatest reads the latest stored snapshot into the table.
func (ins *Inspector) LoadLatest(ctx context.Context, handler snapshot.Handler) (analysis.Generation, error) {
	ins.cache.Purge()
	return handler.LoadLatest(ctx, &ins.statistics, ins.table)
}

// Statistics returns the statistics record of the loaded snapshot.
func (ins *Inspector) Statistics() analysis.Statistics {
	return ins.statistics
}

// InspectPosition returns the canonical cell metadata of a position.
// The status is reported as stored, without inversion.
func (ins *Inspector) InspectPosition(id position.ID) PositionResult {
	if !position.ValidID(id) {
		return PositionResult{PositionID: position.InvalidID, Status: analysis.StatusInvalid}
	}
	return ins.entry(id).pos
}

// InspectMoves lists every legal forward move from the position, each
// annotated with the successor's analysis inverted to the mover's view.
// A contradictory or already-won position has no moves to rank.
func (ins *Inspector) InspectMoves(id position.ID) []MoveResult {
	if !position.ValidID(id) {
		return nil
	}
	return ins.entry(id).moves
}

// InspectMoveBacks lists every legal retrograde move from the position,
// annotated like InspectMoves.
func (ins *Inspector) InspectMoveBacks(id position.ID) []MoveResult {
	if !position.ValidID(id) {
		return nil
	}
	return ins.entry(id).moveBacks
}

func (ins *Inspector) entry(id position.ID) *cacheEntry {
	ins.collector.IncCounter(stats.MetricInspections, 1)
	if entry, ok := ins.cache.Get(id); ok {
		ins.collector.IncCounter(stats.MetricInspectionHits, 1)
		return entry
	}

	entry := &cacheEntry{
		pos:       ins.inspectPosition(id),
		moves:     ins.inspectMoves(id),
		moveBacks: ins.inspectMoveBacks(id),
	}
	ins.cache.Add(id, entry)
	return entry
}

func (ins *Inspector) inspectPosition(id position.ID) PositionResult {
	pos := position.FromID(id)
	data := analysis.Data(ins.table[pos.MinimizeID()])
	return PositionResult{PositionID: id, Turn: data.Turn(), Status: data.Status()}
}

func (ins *Inspector) inspectMoves(id position.ID) []MoveResult {
	pos := position.FromID(id)

	// A contradictory position has no meaningful moves, and a position
	// where either player already wins has none left to play.
	if analysis.Data(ins.table[pos.MinimizeID()]).Status() == analysis.Contradictory ||
		pos.IsWinner(game.Active) || pos.IsWinner(game.Inactive) {
		return nil
	}

	var results []MoveResult
	for _, piece := range game.ActivePieces {
		pair := pos.PairOf(piece)
		for slot := 0; slot < 2; slot++ {
			src := pair[slot]
			for _, dst := range game.BoardLocations {
				next, status := pos.Move(piece, src, dst)
				if status != position.MoveSuccess {
					continue
				}
				if res, ok := ins.successorResult(piece, src, dst, next); ok {
					results = append(results, res)
				}
			}
			if pair[0] == pair[1] {
				break
			}
		}
	}

	markBestMove(results)
	return results
}

func (ins *Inspector) inspectMoveBacks(id position.ID) []MoveResult {
	pos := position.FromID(id)

	if analysis.Data(ins.table[pos.MinimizeID()]).Status() == analysis.Contradictory {
		return nil
	}

	var results []MoveResult
	for _, piece := range game.InactivePieces {
		pair := pos.PairOf(piece)
		for slot := 0; slot < 2; slot++ {
			src := pair[slot]
			for _, dst := range game.Locations {
				prev, status := pos.MoveBack(piece, src, dst)
				if status != position.MoveSuccess {
					continue
				}
				if res, ok := ins.successorResult(piece, src, dst, prev); ok {
					results = append(results, res)
				}
			}
			if pair[0] == pair[1] {
				break
			}
		}
	}

	markBestMove(results)
	return results
}

// successorResult builds the move annotation for a successor position.
// The stored status belongs to the player to move after the move; the
// caller wants the mover's view, so it is inverted. Bookkeeping
// statuses have no mover's view and are dropped.
func (ins *Inspector) successorResult(piece game.Piece, src, dst game.Location, next position.Position) (MoveResult, bool) {
	data := analysis.Data(ins.table[next.MinimizeID()])
	status := data.Status().Invert()
	if !status.Valid() {
		return MoveResult{}, false
	}
	return MoveResult{
		Piece:       piece,
		Source:      src,
		Destination: dst,
		PositionID:  next.ID(),
		Turn:        data.Turn(),
		Status:      status,
	}, true
}

// markBestMove marks the moves a player should prefer: the fastest win
// if any exists, otherwise any move keeping the result open, otherwise
// the slowest loss. Ties are all marked.
func markBestMove(results []MoveResult) {
	bestStatus := analysis.Contradictory
	bestTurn := analysis.MaxTurn

	for _, res := range results {
		switch res.Status {
		case analysis.Lost, analysis.LostStalemate:
			switch bestStatus {
			case analysis.Lost, analysis.LostStalemate:
				if res.Turn > bestTurn {
					bestTurn = res.Turn
				}
			case analysis.Contradictory:
				bestStatus = res.Status
				bestTurn = res.Turn
			}
		case analysis.Unfixed:
			if bestStatus != analysis.Won && bestStatus != analysis.WonStalemate {
				bestStatus = res.Status
			}
		case analysis.Won, analysis.WonStalemate:
			switch bestStatus {
			case analysis.Won, analysis.WonStalemate:
				if res.Turn < bestTurn {
					bestTurn = res.Turn
				}
			default:
				bestStatus = res.Status
				bestTurn = res.Turn
			}
		}
	}

	switch bestStatus {
	case analysis.Lost, analysis.LostStalemate:
		for i := range results {
			if (results[i].Status == analysis.Lost || results[i].Status == analysis.LostStalemate) &&
				results[i].Turn == bestTurn {
				results[i].Best = true
			}
		}
	case analysis.Unfixed:
		for i := range results {
			if results[i].Status == analysis.Unfixed {
				results[i].Best = true
			}
		}
	case analysis.Won, analysis.WonStalemate:
		for i := range results {
			if (results[i].Status == analysis.Won || results[i].Status == analysis.WonStalemate) &&
				results[i].Turn == bestTurn {
				results[i].Best = true
			}
		}
	}
}
