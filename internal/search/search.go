// Package search implements iterative-deepening negamax with alpha-beta
// pruning, a transposition table, quiescence search, aspiration windows and
// MVV-LVA move ordering (spec §4.5). A Worker owns everything a single
// search needs (transposition table, node counter) and is meant to be used
// for exactly one Run call before being discarded, the way the controller's
// search goroutine discards its worker on completion (spec §5).
package search

import (
	"time"

	"github.com/corvidchess/corvid/internal/engineconfig"
	"github.com/corvidchess/corvid/internal/enginelog"
	"github.com/corvidchess/corvid/internal/movegen"
	"github.com/corvidchess/corvid/internal/position"
	"github.com/corvidchess/corvid/internal/transpositiontable"
	. "github.com/corvidchess/corvid/internal/types"
	"github.com/corvidchess/corvid/internal/util"
	"github.com/corvidchess/corvid/internal/zobrist"
)

// MaxPly bounds iterative deepening and recursion depth. Comfortably larger
// than any depth a real time budget reaches, and keeps the position's
// history stack (capacity 256, spec §9) from ever filling.
const MaxPly = 128

// Worker runs one search to completion. Not safe for concurrent use or
// reuse across searches; the controller creates a fresh Worker per "go".
type Worker struct {
	tt    *transpositiontable.Table
	nodes uint64
	stop  *util.Bool
}

// NewWorker allocates a transposition table sized per engineconfig.Settings
// when the config enables it, else runs without one.
func NewWorker() *Worker {
	w := &Worker{}
	if engineconfig.Settings.Search.UseTT {
		w.tt = transpositiontable.New(engineconfig.Settings.Search.TTSizeMB)
		enginelog.GetSearchLog().Debug(util.MemStat())
	}
	return w
}

// Run drives iterative deepening on p, one depth at a time up to
// limits.Depth (at most MaxPly; MaxPly when there is no depth limit), until
// stop is signalled. A search with a depth or time limit also ends once a
// mate is proven within the plies searched. A search with neither (Infinite,
// or no limit set) returns only after stop is signalled, waiting for it if
// deepening ends first. report, if non-nil, is
// called once per completed root depth with UCI "info"-shaped telemetry.
// The returned Result always reflects the last depth that completed without
// being interrupted by stop; a depth cut short by Stop never overwrites it
// (spec §9).
func (w *Worker) Run(p *position.Position, limits Limits, stop *util.Bool, report func(Info)) Result {
	w.stop = stop
	w.nodes = 0
	start := time.Now()

	maxDepth := limits.Depth
	if maxDepth <= 0 || maxDepth > MaxPly {
		maxDepth = MaxPly
	}
	untilStop := limits.Infinite || (limits.Depth <= 0 && !limits.TimeControl && limits.MoveTime <= 0)

	var result Result
	score := Zero
	for depth := 1; depth <= maxDepth; depth++ {
		var iter Score
		if engineconfig.Settings.Search.UseAspiration && depth > 1 && !score.IsMate() {
			iter = w.aspirationSearch(p, depth, score)
		} else {
			iter = w.negamax(p, depth, 0, OppMate(0), OwnMate(0))
		}
		if iter.IsStop() {
			break
		}
		score = iter

		bestMove := MoveNone
		var key zobrist.Key
		if w.tt != nil {
			key = p.ZobristKey()
			bestMove = w.tt.BestMove(key)
		}
		pv := w.collectPV(p, depth)
		if bestMove == MoveNone && len(pv) > 0 {
			bestMove = pv[0]
		}

		elapsed := time.Since(start)
		result = Result{BestMove: bestMove, Score: score, Depth: depth, Nodes: w.nodes, Pv: pv}
		if report != nil {
			report(Info{Depth: depth, Score: score, Nodes: w.nodes, Nps: util.Nps(w.nodes, elapsed), Time: elapsed, Pv: pv})
		}

		if stop.Load() {
			break
		}
		if !untilStop && score.Kind() == KindOwnMate && score.Ply() <= 2*depth-1 {
			// A mate has been proven within the plies searched; digging
			// deeper cannot find a faster one worth waiting for.
			break
		}
	}
	for untilStop && !stop.Load() {
		time.Sleep(time.Millisecond)
	}
	return result
}

// aspirationSearch narrows the root window around the previous iteration's
// score and widens on failure, per spec §4.5: fail-high (Cut) widens the
// upper bound, fail-low (All) widens the lower bound, by 4x each retry.
func (w *Worker) aspirationSearch(p *position.Position, depth int, prevScore Score) Score {
	deltaMinus := int64(50)
	deltaPlus := int64(50)
	for {
		alpha := widenDown(prevScore, deltaMinus)
		beta := widenUp(prevScore, deltaPlus)
		score := w.negamax(p, depth, 0, alpha, beta)
		if score.IsStop() {
			return StopScore
		}
		if score.IsMate() {
			// No centipawn window can hold a mate score; settle it with
			// one full-window search instead of widening forever.
			return w.negamax(p, depth, 0, OppMate(0), OwnMate(0))
		}
		if !score.Less(beta) {
			deltaPlus *= 4
			continue
		}
		if score.Less(alpha) {
			deltaMinus *= 4
			continue
		}
		return score
	}
}

func widenDown(s Score, delta int64) Score {
	return Centipawn(centipawnOf(s) - delta)
}

func widenUp(s Score, delta int64) Score {
	return Centipawn(centipawnOf(s) + delta)
}

func centipawnOf(s Score) int64 {
	if s.Kind() == KindCentipawn {
		return s.CentipawnValue()
	}
	return 0
}

// collectPV walks the principal variation out of the transposition table by
// replaying, on a scratch clone of p, the best move stored for each
// position reached, per transpositiontable.Table.BestMove's documented
// purpose. Stops at maxLen plies, at the first position with no TT entry or
// an entry whose move is no longer legal there (it was stored by a since-
// superseded search path), or if a position repeats (a TT cycle would
// otherwise loop forever).
func (w *Worker) collectPV(p *position.Position, maxLen int) []Move {
	if w.tt == nil {
		return nil
	}
	scratch := p.Clone()
	pv := make([]Move, 0, maxLen)
	seen := make(map[zobrist.Key]bool, maxLen)
	for i := 0; i < maxLen; i++ {
		key := scratch.ZobristKey()
		if seen[key] {
			break
		}
		seen[key] = true
		m := w.tt.BestMove(key)
		if m == MoveNone {
			break
		}
		var ml MoveList
		movegen.Generate(scratch, &ml)
		if !ml.Contains(m) {
			break
		}
		pv = append(pv, m)
		scratch.Make(m)
	}
	return pv
}
