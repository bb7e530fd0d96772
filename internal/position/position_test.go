package position

import (
	"testing"

	. "github.com/corvidchess/corvid/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestNewStartPosition(t *testing.T) {
	p := New()
	assert.Equal(t, White, p.SideToMove())
	assert.Equal(t, AllCastling, p.Castling())
	assert.Equal(t, SqNone, p.EpSquare())
	assert.Equal(t, SqE1, p.KingSquare(White))
	assert.Equal(t, SqE8, p.KingSquare(Black))
	assert.Equal(t, StartFEN, p.FEN())
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/8/8/8/8/8/4P3/4K3 w - - 0 1",
		"8/8/8/K1Pp3r/8/8/8/4k3 w - d6 0 1",
	}
	for _, fen := range fens {
		p, err := NewFromFEN(fen)
		assert.NoError(t, err)
		assert.Equal(t, fen, p.FEN())
	}
}

func mustPosition(t *testing.T, fen string) *Position {
	t.Helper()
	p, err := NewFromFEN(fen)
	assert.NoError(t, err)
	return p
}

func TestMakeUnmakeQuietRoundTrip(t *testing.T) {
	p := mustPosition(t, "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1")
	before := *p
	beforeFen := p.FEN()

	m, err := p.Annotate(SqE1, SqD1, PtNone)
	assert.NoError(t, err)
	p.Make(m)
	assert.NotEqual(t, beforeFen, p.FEN())

	p.Unmake()
	assert.Equal(t, beforeFen, p.FEN())
	assert.Equal(t, before.ZobristKey(), p.ZobristKey())
}

func TestMakeUnmakeCaptureRoundTrip(t *testing.T) {
	p := mustPosition(t, "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	beforeFen := p.FEN()
	beforeKey := p.ZobristKey()

	m, err := p.Annotate(SqE4, SqD5, PtNone)
	assert.NoError(t, err)
	assert.True(t, m.IsCapture())
	p.Make(m)
	p.Unmake()

	assert.Equal(t, beforeFen, p.FEN())
	assert.Equal(t, beforeKey, p.ZobristKey())
}

func TestMakeUnmakeCastlingRoundTrip(t *testing.T) {
	p := mustPosition(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	beforeFen := p.FEN()
	beforeKey := p.ZobristKey()

	m, err := p.Annotate(SqE1, SqG1, PtNone)
	assert.NoError(t, err)
	assert.True(t, m.IsCastle())
	p.Make(m)
	assert.Equal(t, Rook, p.PieceAt(SqF1).TypeOf())
	p.Unmake()

	assert.Equal(t, beforeFen, p.FEN())
	assert.Equal(t, beforeKey, p.ZobristKey())
}

func TestMakeUnmakeEnPassantRoundTrip(t *testing.T) {
	p := mustPosition(t, "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	beforeFen := p.FEN()
	beforeKey := p.ZobristKey()

	m, err := p.Annotate(SqE5, SqD6, PtNone)
	assert.NoError(t, err)
	assert.True(t, m.IsEnPassant())
	p.Make(m)
	assert.Equal(t, PieceNone, p.PieceAt(SqD5))
	p.Unmake()

	assert.Equal(t, beforeFen, p.FEN())
	assert.Equal(t, beforeKey, p.ZobristKey())
}

func TestMakeUnmakePromotionRoundTrip(t *testing.T) {
	p := mustPosition(t, "4k3/4P3/8/8/8/8/8/4K3 w - - 0 1")
	beforeFen := p.FEN()
	beforeKey := p.ZobristKey()

	m, err := p.Annotate(SqE7, SqE8, Queen)
	assert.NoError(t, err)
	assert.True(t, m.IsPromotion())
	p.Make(m)
	assert.Equal(t, Queen, p.PieceAt(SqE8).TypeOf())
	p.Unmake()

	assert.Equal(t, beforeFen, p.FEN())
	assert.Equal(t, beforeKey, p.ZobristKey())
}

func TestMakeUnmakeDeepSequence(t *testing.T) {
	p := mustPosition(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	beforeFen := p.FEN()
	beforeKey := p.ZobristKey()

	type step struct {
		from, to Square
		promo    PieceType
	}
	seq := []step{
		{SqE1, SqG1, PtNone}, // white castles kingside
		{SqA6, SqB5, PtNone}, // black bishop moves
		{SqD5, SqE6, PtNone}, // white pawn captures
		{SqF7, SqE6, PtNone}, // black recaptures
	}
	var moves []Move
	for _, s := range seq {
		m, err := p.Annotate(s.from, s.to, s.promo)
		assert.NoError(t, err)
		p.Make(m)
		moves = append(moves, m)
	}
	for range moves {
		p.Unmake()
	}
	assert.Equal(t, beforeFen, p.FEN())
	assert.Equal(t, beforeKey, p.ZobristKey())
}

func TestLoadAppliesMovesAndVerifiesZobrist(t *testing.T) {
	p := &Position{}
	err := p.Load("", []string{"e2e4", "e7e5", "g1f3"})
	assert.NoError(t, err)
	assert.Equal(t, Knight, p.PieceAt(SqF3).TypeOf())
	assert.Equal(t, White, p.PieceAt(SqF3).ColorOf())
	assert.Equal(t, Black, p.SideToMove())
}

func TestCloneIsIndependent(t *testing.T) {
	p := New()
	c := p.Clone()
	m, err := p.Annotate(SqE2, SqE4, PtNone)
	assert.NoError(t, err)
	p.Make(m)
	assert.NotEqual(t, p.FEN(), c.FEN())
}
