package search

import (
	"github.com/corvidchess/corvid/internal/evaluator"
	"github.com/corvidchess/corvid/internal/movegen"
	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
)

// quiescence extends the search past the horizon through capture moves only,
// per spec §4.5, to avoid misjudging a position whose material is about to
// change hands right at the depth cutoff.
func (w *Worker) quiescence(p *position.Position, alpha, beta Score, ply int) Score {
	if w.stop.Load() {
		return StopScore
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

	standPat := evaluator.Evaluate(p)
	if !standPat.Less(beta) {
		return standPat
	}
	best := standPat
	if scoreGreater(best, alpha) {
		alpha = best
	}

	ml.Filter(func(m Move) bool { return m.IsCapture() })
	w.order(p, &ml, MoveNone)

	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)
		p.Make(m)
		child := w.quiescence(p, beta.Negate(), alpha.Negate(), ply+1)
		p.Unmake()
		if child.IsStop() {
			return StopScore
		}
		score := child.Negate().Inc()
		if scoreGreater(score, best) {
			best = score
		}
		if scoreGreater(best, alpha) {
			alpha = best
		}
		if !alpha.Less(beta) {
			break
		}
	}
	return best
}
