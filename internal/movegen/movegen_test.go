package movegen

import (
	"testing"

	. "github.com/corvidchess/corvid/internal/types"
	"github.com/corvidchess/corvid/internal/position"
	"github.com/stretchr/testify/assert"
)

func newPos(t *testing.T, fen string) *position.Position {
	t.Helper()
	p, err := position.NewFromFEN(fen)
	assert.NoError(t, err)
	return p
}

func TestPerftStartingPosition(t *testing.T) {
	p := position.New()
	expected := []uint64{20, 400, 8902, 197281, 4865609}
	for depth, want := range expected {
		got := Perft(p, depth+1)
		assert.Equal(t, want, got, "perft depth %d", depth+1)
	}
}

func TestPerftKiwipeteDepth4(t *testing.T) {
	p := newPos(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	assert.Equal(t, uint64(4085603), Perft(p, 4))
}

func TestGenerateStartingPositionMoveCount(t *testing.T) {
	p := position.New()
	var ml MoveList
	Generate(p, &ml)
	assert.Equal(t, 20, ml.Len())
	assert.False(t, ml.InCheck())
}

func TestEnPassantPinForbidden(t *testing.T) {
	p := newPos(t, "8/8/8/K1Pp3r/8/8/8/4k3 w - d6 0 1")
	var ml MoveList
	Generate(p, &ml)
	forbidden := NewMove(SqC5, SqD6, FlagEnPassant)
	assert.False(t, ml.Contains(forbidden), "c5d6 en passant must not be generated: it exposes the white king on rank 5")
}

func TestMateInOneFound(t *testing.T) {
	p := newPos(t, "6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1")
	var ml MoveList
	Generate(p, &ml)
	mating := NewMove(SqA1, SqA8, FlagQuiet)
	assert.True(t, ml.Contains(mating))

	p.Make(mating)
	var reply MoveList
	Generate(p, &reply)
	assert.Equal(t, 0, reply.Len())
	assert.True(t, reply.InCheck())
}

func TestDoubleCheckOnlyKingMoves(t *testing.T) {
	// Black king on e8 attacked simultaneously by a queen on e1 and a bishop
	// on h5, with no black piece able to block or capture both at once.
	p := newPos(t, "4k3/8/8/7B/8/8/8/4Q2K b - - 0 1")
	var ml MoveList
	Generate(p, &ml)
	assert.True(t, ml.InCheck())
	ml.ForEach(func(m Move) {
		assert.Equal(t, SqE8, m.From())
	})
}

func TestPinnedPieceRestrictedToRay(t *testing.T) {
	// White rook on e4 pinned to the king on e1 by the black rook on e8;
	// it may shuffle along the e-file but not step off it.
	p := newPos(t, "4r3/8/8/8/4R3/8/8/4K3 w - - 0 1")
	var ml MoveList
	Generate(p, &ml)
	ml.ForEach(func(m Move) {
		if m.From() == SqE4 {
			assert.Equal(t, FileE, m.To().FileOf())
		}
	})
}

func TestCastlingRequiresEmptyAndSafeSquares(t *testing.T) {
	p := newPos(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	var ml MoveList
	Generate(p, &ml)
	assert.True(t, ml.Contains(NewMove(SqE1, SqG1, FlagCastleKingside)))
	assert.True(t, ml.Contains(NewMove(SqE1, SqC1, FlagCastleQueen)))
}

func TestCastlingForbiddenThroughCheck(t *testing.T) {
	// Black rook on f8 attacks f1, the square the white king crosses while
	// castling kingside.
	p := newPos(t, "5r2/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	var ml MoveList
	Generate(p, &ml)
	assert.False(t, ml.Contains(NewMove(SqE1, SqG1, FlagCastleKingside)))
}

func TestCastlingForbiddenWhileInCheck(t *testing.T) {
	p := newPos(t, "4r3/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	var ml MoveList
	Generate(p, &ml)
	assert.True(t, ml.InCheck())
	assert.False(t, ml.Contains(NewMove(SqE1, SqG1, FlagCastleKingside)))
	assert.False(t, ml.Contains(NewMove(SqE1, SqC1, FlagCastleQueen)))
}
