// Package movegen implements the fully legal move generator: in one pass it
// produces exactly the legal moves for the side to move, using precomputed
// attack/check/pin bitmasks rather than generating pseudo-legal moves and
// filtering them afterward.
package movegen

import (
	. "github.com/corvidchess/corvid/internal/types"
	"github.com/corvidchess/corvid/internal/position"
)

// Generate fills ml with every legal move for the side to move in p. ml is
// cleared first. Sets ml.InCheck() when the side to move is in check.
func Generate(p *position.Position, ml *MoveList) {
	ml.Clear()

	us := p.SideToMove()
	them := us.Flip()
	kingSq := p.KingSquare(us)
	occupied := p.Occupied()

	attacked := attacksBy(p, them, occupied.Clear(kingSq))
	checkers := checkersOf(p, us, kingSq)
	inCheck := checkers != BbZero
	ml.SetInCheck(inCheck)

	blockRay := BbAll
	if inCheck {
		if checkers.PopCount() > 1 {
			generateKingMoves(p, ml, us, kingSq, attacked, checkers, occupied)
			return
		}
		checkerSq := checkers.Lsb()
		blockRay = InBetween[checkerSq][kingSq] | SquareBb(checkerSq)
	}

	pinned, pinRay := pinnedPieces(p, us, them, kingSq, occupied)

	own := p.ColorBb(us)
	generatePawnMoves(p, ml, us, blockRay, pinned, pinRay, occupied)
	generateLeaperOrSliderMoves(p, ml, us, Knight, blockRay, pinned, pinRay, occupied, own,
		func(sq Square, _ Bitboard) Bitboard { return KnightAttacks(sq) })
	generateLeaperOrSliderMoves(p, ml, us, Bishop, blockRay, pinned, pinRay, occupied, own,
		func(sq Square, occ Bitboard) Bitboard { return BishopAttacks(sq, occ) })
	generateLeaperOrSliderMoves(p, ml, us, Rook, blockRay, pinned, pinRay, occupied, own,
		func(sq Square, occ Bitboard) Bitboard { return RookAttacks(sq, occ) })
	generateLeaperOrSliderMoves(p, ml, us, Queen, blockRay, pinned, pinRay, occupied, own,
		func(sq Square, occ Bitboard) Bitboard { return QueenAttacks(sq, occ) })

	generateKingMoves(p, ml, us, kingSq, attacked, checkers, occupied)
	if !inCheck {
		generateCastling(p, ml, us, attacked, occupied)
	}
}

// attacksBy returns every square attacked by color c given occupied, which
// the caller must already have had the defending king removed from so that
// a slider's X-ray through the king is recorded (spec §4.3 step 1).
func attacksBy(p *position.Position, c Color, occupied Bitboard) Bitboard {
	var att Bitboard
	bb := p.PiecesOf(c, Pawn)
	for bb != BbZero {
		var sq Square
		sq, bb = bb.PopLsb()
		att |= PawnAttacksFrom(c, sq)
	}
	bb = p.PiecesOf(c, Knight)
	for bb != BbZero {
		var sq Square
		sq, bb = bb.PopLsb()
		att |= KnightAttacks(sq)
	}
	bb = p.PiecesOf(c, Bishop) | p.PiecesOf(c, Queen)
	for bb != BbZero {
		var sq Square
		sq, bb = bb.PopLsb()
		att |= BishopAttacks(sq, occupied)
	}
	bb = p.PiecesOf(c, Rook) | p.PiecesOf(c, Queen)
	for bb != BbZero {
		var sq Square
		sq, bb = bb.PopLsb()
		att |= RookAttacks(sq, occupied)
	}
	att |= KingAttacks(p.KingSquare(c))
	return att
}

// checkersOf returns the opponent pieces currently giving check to us's
// king, found by asking "what would each of my piece kinds reach from the
// king square" and intersecting with real opponent pieces of that kind.
func checkersOf(p *position.Position, us Color, kingSq Square) Bitboard {
	them := us.Flip()
	occupied := p.Occupied()
	var checkers Bitboard
	checkers |= PawnAttacksFrom(us, kingSq) & p.PiecesOf(them, Pawn)
	checkers |= KnightAttacks(kingSq) & p.PiecesOf(them, Knight)
	checkers |= BishopAttacks(kingSq, occupied) & (p.PiecesOf(them, Bishop) | p.PiecesOf(them, Queen))
	checkers |= RookAttacks(kingSq, occupied) & (p.PiecesOf(them, Rook) | p.PiecesOf(them, Queen))
	return checkers
}

// pinnedPieces finds, for every opposing slider aligned with the king
// through exactly one own piece, that own piece (the X-ray technique of
// spec §4.3 step 4), and records the ray each pinned piece must stay on.
func pinnedPieces(p *position.Position, us, them Color, kingSq Square, occupied Bitboard) (pinned Bitboard, pinRay [SqLength]Bitboard) {
	own := p.ColorBb(us)

	xrayBishop := BishopAttacks(kingSq, occupied&^own) & (p.PiecesOf(them, Bishop) | p.PiecesOf(them, Queen))
	xrayRook := RookAttacks(kingSq, occupied&^own) & (p.PiecesOf(them, Rook) | p.PiecesOf(them, Queen))

	scan := func(sliders Bitboard) {
		for sliders != BbZero {
			var sliderSq Square
			sliderSq, sliders = sliders.PopLsb()
			between := InBetween[sliderSq][kingSq] & occupied
			if between.PopCount() == 1 {
				pinnedSq := between.Lsb()
				if own.Has(pinnedSq) {
					pinned = pinned.Set(pinnedSq)
					pinRay[pinnedSq] = InBetween[sliderSq][kingSq] | SquareBb(sliderSq) | SquareBb(kingSq)
				}
			}
		}
	}
	scan(xrayBishop)
	scan(xrayRook)
	return pinned, pinRay
}

func generateLeaperOrSliderMoves(p *position.Position, ml *MoveList, us Color, pt PieceType, blockRay Bitboard, pinned Bitboard, pinRay [SqLength]Bitboard, occupied, own Bitboard, attacksFrom func(Square, Bitboard) Bitboard) {
	bb := p.PiecesOf(us, pt)
	for bb != BbZero {
		var from Square
		from, bb = bb.PopLsb()
		targets := attacksFrom(from, occupied) &^ own & blockRay
		if pinned.Has(from) {
			targets &= pinRay[from]
		}
		for targets != BbZero {
			var to Square
			to, targets = targets.PopLsb()
			flag := FlagQuiet
			if occupied.Has(to) {
				flag = FlagCapture
			}
			ml.Add(NewMove(from, to, flag))
		}
	}
}

func generateKingMoves(p *position.Position, ml *MoveList, us Color, kingSq Square, attacked, checkers, occupied Bitboard) {
	own := p.ColorBb(us)
	targets := KingAttacks(kingSq) &^ own &^ attacked

	// Remove the square directly beyond the king along each sliding
	// checker's attack line, so the king cannot "step back" along the same
	// ray it's being checked on (spec §4.3).
	bb := checkers
	for bb != BbZero {
		var checkerSq Square
		checkerSq, bb = bb.PopLsb()
		checkerPt := p.PieceAt(checkerSq).TypeOf()
		if checkerPt != Bishop && checkerPt != Rook && checkerPt != Queen {
			continue
		}
		for _, d := range Directions {
			ray := RAYS[rayDirIndex(d)][checkerSq]
			if ray.Has(kingSq) {
				beyond := kingSq.To(d)
				if beyond != SqNone {
					targets = targets.Clear(beyond)
				}
				break
			}
		}
	}

	for targets != BbZero {
		var to Square
		to, targets = targets.PopLsb()
		flag := FlagQuiet
		if occupied.Has(to) {
			flag = FlagCapture
		}
		ml.Add(NewMove(kingSq, to, flag))
	}
}

func rayDirIndex(d Direction) int {
	for i, dd := range Directions {
		if dd == d {
			return i
		}
	}
	panic("movegen: invalid direction")
}

func generateCastling(p *position.Position, ml *MoveList, us Color, attacked, occupied Bitboard) {
	rank := Rank1
	if us == Black {
		rank = Rank8
	}
	kingSq := SquareOf(FileE, rank)
	if p.KingSquare(us) != kingSq {
		return
	}

	if p.Castling().Has(Kingside(us)) {
		between := SquareBb(SquareOf(FileF, rank)) | SquareBb(SquareOf(FileG, rank))
		traversed := SquareBb(kingSq) | between
		if occupied&between == 0 && attacked&traversed == 0 {
			ml.Add(NewMove(kingSq, SquareOf(FileG, rank), FlagCastleKingside))
		}
	}
	if p.Castling().Has(Queenside(us)) {
		between := SquareBb(SquareOf(FileD, rank)) | SquareBb(SquareOf(FileC, rank)) | SquareBb(SquareOf(FileB, rank))
		traversed := SquareBb(kingSq) | SquareBb(SquareOf(FileD, rank)) | SquareBb(SquareOf(FileC, rank))
		if occupied&between == 0 && attacked&traversed == 0 {
			ml.Add(NewMove(kingSq, SquareOf(FileC, rank), FlagCastleQueen))
		}
	}
}
