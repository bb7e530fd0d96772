package movegen

import (
	. "github.com/corvidchess/corvid/internal/types"
	"github.com/corvidchess/corvid/internal/position"
)

func generatePawnMoves(p *position.Position, ml *MoveList, us Color, blockRay Bitboard, pinned Bitboard, pinRay [SqLength]Bitboard, occupied Bitboard) {
	them := us.Flip()
	theirPieces := p.ColorBb(them)
	promoRank := us.PromotionRank()
	pushDir := us.Direction()
	startRank := us.PawnRank()

	bb := p.PiecesOf(us, Pawn)
	for bb != BbZero {
		var from Square
		from, bb = bb.PopLsb()

		allowed := BbAll
		if pinned.Has(from) {
			allowed = pinRay[from]
		}

		one := from.To(pushDir)
		if one != SqNone && !occupied.Has(one) {
			if allowed.Has(one) {
				addPawnMove(ml, from, one, blockRay, promoRank, false)
			}
			if from.RankOf() == startRank {
				two := one.To(pushDir)
				if two != SqNone && !occupied.Has(two) && allowed.Has(two) && blockRay.Has(two) {
					ml.Add(NewMove(from, two, FlagDoublePush))
				}
			}
		}

		captures := PawnAttacksFrom(us, from) & theirPieces & blockRay
		if pinned.Has(from) {
			captures &= pinRay[from]
		}
		for captures != BbZero {
			var to Square
			to, captures = captures.PopLsb()
			addPawnMove(ml, from, to, blockRay, promoRank, true)
		}

		if ep := p.EpSquare(); ep != SqNone {
			if PawnAttacksFrom(us, from).Has(ep) && epLegal(p, us, from, ep) {
				if pinned.Has(from) {
					if !pinRay[from].Has(ep) {
						continue
					}
				}
				capturedSq := SquareOf(ep.FileOf(), from.RankOf())
				if blockRay.Has(ep) || blockRay.Has(capturedSq) {
					ml.Add(NewMove(from, ep, FlagEnPassant))
				}
			}
		}
	}
}

func addPawnMove(ml *MoveList, from, to Square, blockRay Bitboard, promoRank Rank, capture bool) {
	if !blockRay.Has(to) {
		return
	}
	flag := FlagQuiet
	if capture {
		flag = FlagCapture
	}
	if to.RankOf() == promoRank {
		for _, pt := range []PieceType{Queen, Rook, Bishop, Knight} {
			ml.Add(NewMove(from, to, promotionFlagFor(pt, capture)))
		}
		return
	}
	ml.Add(NewMove(from, to, flag))
}

func promotionFlagFor(pt PieceType, capture bool) MoveFlag {
	var f MoveFlag
	switch pt {
	case Knight:
		f = FlagPromoteKnight
	case Bishop:
		f = FlagPromoteBishop
	case Rook:
		f = FlagPromoteRook
	default:
		f = FlagPromoteQueen
	}
	if capture {
		f |= FlagCapture
	}
	return f
}

// epLegal handles the special pin hazard of en passant: the moving pawn and
// the captured pawn both leave the king's rank in the same instant. If doing
// so exposes the king along that rank to an opposing rook or queen, the
// capture is illegal even though neither pawn individually is pinned (spec
// §4.3).
func epLegal(p *position.Position, us Color, from, ep Square) bool {
	kingSq := p.KingSquare(us)
	capturedSq := SquareOf(ep.FileOf(), from.RankOf())
	if kingSq.RankOf() != from.RankOf() {
		return true
	}
	them := us.Flip()
	occAfter := p.Occupied().Clear(from).Clear(capturedSq).Set(ep)
	attackers := RookAttacks(kingSq, occAfter) & (p.PiecesOf(them, Rook) | p.PiecesOf(them, Queen))
	return attackers == BbZero
}
