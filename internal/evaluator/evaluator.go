// Package evaluator scores a position by material and piece-square tables.
// It is stateless and side-to-move-relative: Evaluate never looks at whose
// turn it is to decide what is "good", only to decide the sign of its
// return value. Terminal conditions (checkmate, stalemate) are not this
// package's concern: they need move generation, which the evaluator does
// not have access to, so search detects them directly.
package evaluator

import (
	"github.com/corvidchess/corvid/internal/engineconfig"
	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
)

// Evaluate scores p from the perspective of the side to move: larger is
// better for whoever is about to play.
func Evaluate(p *position.Position) Score {
	white := materialAndPsqt(p, White) - materialAndPsqt(p, Black)
	stm := int64(white)
	if p.SideToMove() == Black {
		stm = -stm
	}
	// Tempo credits the side to move a small bonus for having the
	// initiative, per engineconfig.Settings.Eval.Tempo.
	stm += int64(engineconfig.Settings.Eval.Tempo)
	return Centipawn(stm)
}

func materialAndPsqt(p *position.Position, c Color) Value {
	var total Value
	for pt := King; pt <= Queen; pt++ {
		bb := p.PiecesOf(c, pt)
		for bb != BbZero {
			var sq Square
			sq, bb = bb.PopLsb()
			total += pt.Value() + psqtValue(c, pt, sq)
		}
	}
	return total
}
