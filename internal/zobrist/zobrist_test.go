package zobrist

import (
	"testing"

	"github.com/corvidchess/corvid/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestRandomIsDeterministic(t *testing.T) {
	r1 := newRandom(42)
	r2 := newRandom(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, r1.rand64(), r2.rand64())
	}
}

func TestRandomProducesDistinctValues(t *testing.T) {
	r := newRandom(7)
	seen := make(map[uint64]bool)
	for i := 0; i < 1000; i++ {
		v := r.rand64()
		assert.False(t, seen[v], "xorshift64star repeated a value within 1000 draws")
		seen[v] = true
	}
}

func TestTableConstantsAreDistinct(t *testing.T) {
	tb := newTable()
	seen := make(map[Key]bool)
	dup := 0
	check := func(k Key) {
		if seen[k] {
			dup++
		}
		seen[k] = true
	}
	for pt := types.King; pt <= types.Queen; pt++ {
		for c := types.White; c <= types.Black; c++ {
			for sq := types.SqA1; sq < types.SqNone; sq++ {
				check(tb.Piece(pt, c, sq))
			}
		}
	}
	check(tb.SideToMove)
	for i := 0; i < 4; i++ {
		check(tb.CastlingRight(i))
	}
	for f := types.FileA; f <= types.FileH; f++ {
		check(tb.EnPassantFile(f))
	}
	assert.Equal(t, 0, dup)
}

func TestGlobalTablePopulated(t *testing.T) {
	assert.NotZero(t, Global.Piece(types.Pawn, types.White, types.SqE2))
	assert.NotZero(t, Global.SideToMove)
}
