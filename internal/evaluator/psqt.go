package evaluator

import . "github.com/corvidchess/corvid/internal/types"

// Piece-square tables give positional bonuses in centipawns, from White's
// perspective, indexed by Square (rank 1 first, a-file to h-file within each
// rank, matching the board's own square numbering). Black looks up the
// vertical mirror of its square instead of carrying a second table.
//
// Every table, the Knight one included, has different values on mirrored
// ranks, so Black always reads the mirrored square.

var pawnPsqt = [SqLength]Value{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, -20, -20, 10, 10, 5,
	5, -5, -10, 0, 0, -10, -5, 5,
	0, 0, 0, 20, 20, 0, 0, 0,
	5, 5, 10, 25, 25, 10, 5, 5,
	10, 10, 20, 30, 30, 20, 10, 10,
	50, 50, 50, 50, 50, 50, 50, 50,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightPsqt = [SqLength]Value{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var bishopPsqt = [SqLength]Value{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

var rookPsqt = [SqLength]Value{
	0, 0, 0, 5, 5, 0, 0, 0,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	5, 10, 10, 10, 10, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var queenPsqt = [SqLength]Value{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 5, 0, 0, 0, 0, -10,
	-10, 5, 5, 5, 5, 5, 0, -10,
	0, 0, 5, 5, 5, 5, 0, -5,
	-5, 0, 5, 5, 5, 5, 0, -5,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

var kingPsqt = [SqLength]Value{
	20, 30, 10, 0, 0, 10, 30, 20,
	20, 20, 0, 0, 0, 0, 20, 20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
}

func psqtTableFor(pt PieceType) *[SqLength]Value {
	switch pt {
	case Pawn:
		return &pawnPsqt
	case Knight:
		return &knightPsqt
	case Bishop:
		return &bishopPsqt
	case Rook:
		return &rookPsqt
	case Queen:
		return &queenPsqt
	default:
		return &kingPsqt
	}
}

// mirrorVertical flips a square top-to-bottom (rank r <-> rank 7-r, file
// unchanged), turning a White-perspective table lookup into a Black one.
func mirrorVertical(sq Square) Square {
	return SquareOf(sq.FileOf(), Rank(7-int(sq.RankOf())))
}

// psqtValue returns the piece-square bonus for a piece of type pt and color c
// standing on sq, already oriented so "more positive" means better for c.
func psqtValue(c Color, pt PieceType, sq Square) Value {
	table := psqtTableFor(pt)
	if c == White {
		return table[sq]
	}
	return table[mirrorVertical(sq)]
}
