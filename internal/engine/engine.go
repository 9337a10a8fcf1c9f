// Package engine implements the retrograde fixed-point analysis of
// Gobblet Gobblers.
//
// The engine owns one byte per canonical position. Generation 0 seeds
// the table: non-canonical orbit members become Transformed redirects,
// unreachable placements become Contradictory, finished games become
// Lost and move-less positions become LostStalemate. Every later
// generation scans the table in ascending order and consumes the update
// flags set when the scan reaches them, walking the move graph
// backwards until a full pass changes nothing.
package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/discochess/gobbler/internal/analysis"
	"github.com/discochess/gobbler/internal/game"
	"github.com/discochess/gobbler/internal/position"
	"github.com/discochess/gobbler/internal/snapshot"
	"github.com/discochess/gobbler/internal/stats"
)

// Engine drives the retrograde analysis over the full canonical table.
type Engine struct {
	table     []byte
	stats     analysis.Statistics
	gen       analysis.Generation
	storedGen analysis.Generation

	logger    *zap.Logger
	collector stats.Collector
}

// New allocates an engine with a fresh table of position.TableSize
// cells. The logger and collector may be nil.
func New(logger *zap.Logger, collector stats.Collector) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	if collector == nil {
		collector = stats.NewNoop()
	}
	return &Engine{
		table:     make([]byte, position.TableSize),
		gen:       analysis.InvalidGeneration,
		storedGen: analysis.InvalidGeneration,
		logger:    logger.With(zap.String("run_id", uuid.NewString())),
		collector: collector,
	}
}

// Table exposes the raw analysis table.
func (e *Engine) Table() []byte {
	return e.table
}

// Statistics returns the running totals.
func (e *Engine) Statistics() analysis.Statistics {
	return e.stats
}

// Generation returns the generation currently being analyzed.
func (e *Engine) Generation() analysis.Generation {
	return e.gen
}

// StoredGeneration returns the last generation fully persisted, or
// analysis.InvalidGeneration.
func (e *Engine) StoredGeneration() analysis.Generation {
	return e.storedGen
}

// Start runs the analysis from scratch: generation 0 initializes the
// table, then generations are iterated to the fixed point.
func (e *Engine) Start(ctx context.Context, handler snapshot.Handler, mode snapshot.Mode) error {
	e.gen = 0
	e.logger.Info("starting generation 0 (initialization)")
	e.Initialize()
	e.logStatistics(0, analysis.Statistics{})

	if mode == snapshot.StoreEvery {
		if err := handler.Store(ctx, 0, e.stats, e.table); err != nil {
			e.collector.IncCounter(stats.MetricSnapshotErrors, 1)
			e.logger.Error("failed to store the initial analysis data", zap.Error(err))
			return fmt.Errorf("storing generation 0: %w", err)
		}
		e.storedGen = 0
		e.collector.IncCounter(stats.MetricSnapshotsStored, 1)
		e.logger.Info("stored analysis data", zap.Uint64("generation", 0))
	}

	e.gen = 1
	return e.analyze(ctx, handler, mode)
}

// Resume continues the analysis from the latest stored generation,
// falling back to Start when no snapshot exists.
func (e *Engine) Resume(ctx context.Context, handler snapshot.Handler, mode snapshot.Mode) error {
	gen, err := handler.FindLatest(ctx)
	if errors.Is(err, snapshot.ErrNoSnapshot) {
		e.logger.Warn("no analysis data found")
		return e.Start(ctx, handler, mode)
	}
	if err != nil {
		return err
	}
	e.logger.Info("found analysis data", zap.Uint64("generation", gen))
	return e.ResumeFrom(ctx, handler, mode, gen)
}

// ResumeFrom continues the analysis from the given stored generation.
func (e *Engine) ResumeFrom(ctx context.Context, handler snapshot.Handler, mode snapshot.Mode, gen analysis.Generation) error {
	if err := handler.Load(ctx, gen, &e.stats, e.table); err != nil {
		e.logger.Error("failed to load analysis data", zap.Uint64("generation", gen), zap.Error(err))
		return fmt.Errorf("loading generation %d: %w", gen, err)
	}
	e.gen = gen + 1
	e.storedGen = gen
	e.logger.Info("resuming analysis", zap.Uint64("generation", e.gen))
	return e.analyze(ctx, handler, mode)
}

// analyze iterates generations until a pass produces no updates, the
// generation limit is exceeded, or a store fails.
func (e *Engine) analyze(ctx context.Context, handler snapshot.Handler, mode snapshot.Mode) error {
	for e.gen <= analysis.MaxGeneration {
		e.logger.Info("analyzing generation", zap.Uint64("generation", e.gen))
		started := time.Now()

		var delta analysis.Statistics
		updated := e.runGeneration(&delta)
		e.stats.Add(delta)
		e.logStatistics(e.gen, delta)

		e.collector.IncCounter(stats.MetricGenerations, 1)
		e.collector.IncCounter(stats.MetricLostFixed, int64(delta.Lost))
		e.collector.IncCounter(stats.MetricWonFixed, int64(delta.Won))
		e.collector.SetGauge(stats.MetricUnfixed, int64(e.stats.Unfixed))
		e.collector.SetGauge(stats.MetricGeneration, int64(e.gen))
		e.collector.ObserveHistogram(stats.MetricGenerationSec, time.Since(started).Seconds())

		if snapshot.NeedsStore(mode, updated, e.storedGen, e.gen) {
			if err := handler.Store(ctx, e.gen, e.stats, e.table); err != nil {
				e.collector.IncCounter(stats.MetricSnapshotErrors, 1)
				e.logger.Error("failed to store analysis data", zap.Uint64("generation", e.gen), zap.Error(err))
				return fmt.Errorf("storing generation %d: %w", e.gen, err)
			}
			e.storedGen = e.gen
			e.collector.IncCounter(stats.MetricSnapshotsStored, 1)
			e.logger.Info("stored analysis data", zap.Uint64("generation", e.gen))
		}

		if !updated {
			e.logger.Info("no update occurred, the analysis is complete")
			return nil
		}
		e.gen++
	}

	e.logger.Warn("the generation exceeds its limit, giving up the analysis")
	return nil
}

// Initialize seeds the table for generation 0. It reports whether any
// Lost or LostStalemate cell was created.
func (e *Engine) Initialize() bool {
	updated := false
	e.stats.Clear()

	seed := analysis.NewData(false, analysis.MaxTurn, analysis.Unfixed)
	for i := range e.table {
		e.table[i] = byte(seed)
	}

	for i := position.ID(0); i < position.TableSize; i++ {
		if analysis.Data(e.table[i]).Status() == analysis.Transformed {
			e.stats.Transformed++
			continue
		}

		pos := position.FromID(i)

		// Stamp every strictly larger orbit member as a redirect; only
		// the smallest representative keeps live data.
		for _, t := range game.EffectiveTransformers {
			transID := pos.Transform(t).ID()
			if transID > i && transID < position.TableSize {
				e.table[transID] = byte(analysis.NewData(false, 0, analysis.Transformed))
			}
		}

		// A completed line of the active player means the previous
		// player failed to claim the win: unreachable by legal play.
		if pos.IsWinner(game.Active) {
			e.table[i] = byte(analysis.NewData(false, 0, analysis.Contradictory))
			e.stats.Contradictory++
			continue
		}

		// The placement counts must be consistent with alternating
		// turns starting from an empty board.
		activeCount := onBoardPieceCount(pos, game.Active)
		inactiveCount := onBoardPieceCount(pos, game.Inactive)
		if activeCount == 0 && inactiveCount >= 2 {
			e.table[i] = byte(analysis.NewData(false, 0, analysis.Contradictory))
			e.stats.Contradictory++
			continue
		}
		if inactiveCount == 0 && activeCount >= 1 {
			e.table[i] = byte(analysis.NewData(false, 0, analysis.Contradictory))
			e.stats.Contradictory++
			continue
		}

		// The inactive player completed a line in the previous turn:
		// the game is already over, turn 0.
		if pos.IsWinner(game.Inactive) {
			e.table[i] = byte(analysis.NewData(true, 0, analysis.Lost))
			e.stats.Lost++
			updated = true
			continue
		}

		// No legal move: the active player must uncover a piece that
		// completes the opposing line, losing during this turn.
		if moveCount(pos) == 0 {
			e.table[i] = byte(analysis.NewData(true, 1, analysis.LostStalemate))
			e.stats.LostStalemate++
			updated = true
			continue
		}

		e.stats.Unfixed++
	}

	return updated
}

// runGeneration performs one full pass over the table, consuming update
// flags raised by the previous generation. It reports whether any cell
// changed.
func (e *Engine) runGeneration(delta *analysis.Statistics) bool {
	updated := false

	for i := position.ID(0); i < position.TableSize; i++ {
		data := analysis.Data(e.table[i])
		if !data.UpdateFlag() {
			continue
		}
		e.table[i] = byte(data.WithUpdateFlag(false))

		switch data.Status() {
		case analysis.Lost, analysis.LostStalemate:
			if e.propagateLost(delta, position.FromID(i)) {
				updated = true
			}
		case analysis.Won:
			if e.flagWonPredecessors(position.FromID(i)) {
				updated = true
			}
		case analysis.Unfixed:
			pos := position.FromID(i)
			if e.fixForcedLoss(delta, pos) {
				e.propagateLost(delta, pos)
				updated = true
			}
		}
	}

	return updated
}

// propagateLost walks every retrograde move from a Lost position: the
// predecessor had a move into a loss, so an Unfixed predecessor becomes
// Won, and an already-Won predecessor may get a faster win.
func (e *Engine) propagateLost(delta *analysis.Statistics, pos position.Position) bool {
	updated := false

	nextTurn := analysis.SaturatingNextTurn(analysis.Data(e.table[pos.ID()]).Turn())

	forEachMoveBack(pos, func(prev position.Position) {
		idx := prev.MinimizeID()
		data := analysis.Data(e.table[idx])
		switch {
		case data.Status() == analysis.Unfixed:
			e.table[idx] = byte(analysis.NewData(true, nextTurn, analysis.Won))
			delta.Won++
			updated = true
		case data.Status() == analysis.Won && data.Turn() > nextTurn:
			e.table[idx] = byte(data.WithTurn(nextTurn))
			updated = true
		}
	})

	return updated
}

// flagWonPredecessors raises the update flag of every Unfixed
// predecessor of a Won position; the flag is consumed when a scan next
// reaches the predecessor (later in this generation if its index is
// larger, otherwise in the next generation), which re-examines whether
// the predecessor is now a forced loss.
func (e *Engine) flagWonPredecessors(pos position.Position) bool {
	updated := false

	forEachMoveBack(pos, func(prev position.Position) {
		idx := prev.MinimizeID()
		data := analysis.Data(e.table[idx])
		if data.Status() == analysis.Unfixed {
			e.table[idx] = byte(data.WithUpdateFlag(true))
			updated = true
		}
	})

	return updated
}

// fixForcedLoss checks whether every forward move of an Unfixed
// position lands in a Won cell. If so the active player cannot escape:
// the position becomes Lost with the slowest losing line's turn.
func (e *Engine) fixForcedLoss(delta *analysis.Statistics, pos position.Position) bool {
	var nextTurn analysis.Turn

	forced := true
	forEachMove(pos, func(next position.Position) bool {
		data := analysis.Data(e.table[next.MinimizeID()])
		if data.Status() != analysis.Won {
			forced = false
			return false
		}
		turn := data.Turn()
		if turn >= analysis.MaxTurn {
			nextTurn = analysis.MaxTurn
		} else if turn+1 > nextTurn {
			nextTurn = turn + 1
		}
		return true
	})
	if !forced {
		return false
	}

	e.table[pos.ID()] = byte(analysis.NewData(false, nextTurn, analysis.Lost))
	delta.Lost++
	return true
}

// forEachMoveBack calls fn for the successful result of every
// retrograde move of the inactive player.
func forEachMoveBack(pos position.Position, fn func(prev position.Position)) {
	for _, piece := range game.InactivePieces {
		pair := pos.PairOf(piece)
		for slot := 0; slot < 2; slot++ {
			src := pair[slot]
			for _, dst := range game.Locations {
				prev, status := pos.MoveBack(piece, src, dst)
				if status == position.MoveSuccess {
					fn(prev)
				}
			}
			if pair[0] == pair[1] {
				break
			}
		}
	}
}

// forEachMove calls fn for the successful result of every forward move
// of the active player, stopping early when fn returns false.
func forEachMove(pos position.Position, fn func(next position.Position) bool) {
	for _, piece := range game.ActivePieces {
		pair := pos.PairOf(piece)
		for slot := 0; slot < 2; slot++ {
			src := pair[slot]
			for _, dst := range game.BoardLocations {
				next, status := pos.Move(piece, src, dst)
				if status != position.MoveSuccess {
					continue
				}
				if !fn(next) {
					return
				}
			}
			if pair[0] == pair[1] {
				break
			}
		}
	}
}

// moveCount counts the legal forward moves of the active player.
func moveCount(pos position.Position) int {
	count := 0
	forEachMove(pos, func(position.Position) bool {
		count++
		return true
	})
	return count
}

// onBoardPieceCount counts the pieces of a role placed on the board.
func onBoardPieceCount(pos position.Position, role game.Role) int {
	pieces := game.ActivePieces
	if role == game.Inactive {
		pieces = game.InactivePieces
	}

	count := 0
	for _, piece := range pieces {
		pair := pos.PairOf(piece)
		for slot := 0; slot < 2; slot++ {
			if pair[slot] != game.Out {
				count++
			}
		}
	}
	return count
}

func (e *Engine) logStatistics(gen analysis.Generation, delta analysis.Statistics) {
	if gen > 0 {
		e.logger.Info("generation result",
			zap.Uint64("generation", gen),
			zap.Uint64("fixedLost", delta.Lost),
			zap.Uint64("fixedWon", delta.Won),
		)
	}
	e.logger.Info("analysis totals",
		zap.Uint64("lost", e.stats.Lost),
		zap.Uint64("lostStalemate", e.stats.LostStalemate),
		zap.Uint64("won", e.stats.Won),
		zap.Uint64("transformed", e.stats.Transformed),
		zap.Uint64("contradictory", e.stats.Contradictory),
		zap.Uint64("unfixed", e.stats.Unfixed),
	)
}
