package search

import (
	"sort"

	"github.com/corvidchess/corvid/internal/engineconfig"
	"github.com/corvidchess/corvid/internal/evaluator"
	"github.com/corvidchess/corvid/internal/movegen"
	"github.com/corvidchess/corvid/internal/position"
	"github.com/corvidchess/corvid/internal/transpositiontable"
	. "github.com/corvidchess/corvid/internal/types"
	"github.com/corvidchess/corvid/internal/zobrist"
)

// negamax is the fail-soft alpha-beta search of spec §4.5. alpha and beta
// are from the perspective of the side to move at this node; ply counts
// plies from the search root and is only passed down. Mate and draw
// distances mature through Score.Inc as scores propagate up.
func (w *Worker) negamax(p *position.Position, depth, ply int, alpha, beta Score) Score {
	if w.stop.Load() {
		return StopScore
	}

	var key zobrist.Key
	ttMove := MoveNone
	if w.tt != nil {
		key = p.ZobristKey()
		m, score, ok := w.tt.Probe(key, depth, alpha, beta)
		if ok {
			return score
		}
		ttMove = m
	}

	if depth <= 0 {
		if !engineconfig.Settings.Search.UseQuiescence {
			w.nodes++
			return evaluator.Evaluate(p)
		}
		return w.quiescence(p, alpha, beta, ply)
	}

	w.nodes++

	var ml MoveList
	movegen.Generate(p, &ml)
	if ml.Len() == 0 {
		if ml.InCheck() {
			return OppMate(0)
		}
		return DrawScore(0)
	}
	w.order(p, &ml, ttMove)

	origAlpha := alpha
	best := OppMate(0)
	bestMove := MoveNone

	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)
		p.Make(m)
		child := w.negamax(p, depth-1, ply+1, beta.Negate(), alpha.Negate())
		p.Unmake()
		if child.IsStop() {
			return StopScore
		}
		score := child.Negate().Inc()
		if scoreGreater(score, best) {
			best = score
			bestMove = m
		}
		if scoreGreater(best, alpha) {
			alpha = best
		}
		if !alpha.Less(beta) {
			break
		}
	}

	if w.tt != nil {
		kind := transpositiontable.NodePV
		switch {
		case !alpha.Less(beta):
			kind = transpositiontable.NodeCut
		case !origAlpha.Less(best):
			kind = transpositiontable.NodeAll
		}
		w.tt.Store(key, bestMove, depth, best, kind)
	}
	return best
}

// scoreGreater reports whether a ranks strictly above b.
func scoreGreater(a, b Score) bool {
	return b.Less(a)
}

// order ranks ml in place, TT move first, then captures by MVV-LVA, then
// quiets in generation order (spec §4.5), using sort.Stable so moves tied
// on value keep the order the generator produced them in.
func (w *Worker) order(p *position.Position, ml *MoveList, ttMove Move) {
	for i := 0; i < ml.Len(); i++ {
		ml.SetValueAt(i, orderValue(p, ml.At(i), ttMove))
	}
	sort.Stable(ml)
}

func orderValue(p *position.Position, m Move, ttMove Move) int32 {
	if m == ttMove {
		return 1 << 30
	}
	if !m.IsCapture() {
		return 0
	}
	victim := Pawn
	if !m.IsEnPassant() {
		victim = p.PieceAt(m.To()).TypeOf()
	}
	attacker := p.PieceAt(m.From()).TypeOf()
	// MVV-LVA: higher victim value ranks first; among equal victims, lower
	// attacker value ranks first. The victim weight keeps every capture,
	// even a king's, above the quiet moves' 0 and keeps the smallest victim
	// difference (10) ahead of the widest attacker difference.
	return int32(victim.Value())*16384 - int32(attacker.Value())
}
