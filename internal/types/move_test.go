package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMovePackUnpack(t *testing.T) {
	m := NewMove(SqE2, SqE4, FlagDoublePush)
	assert.Equal(t, SqE2, m.From())
	assert.Equal(t, SqE4, m.To())
	assert.Equal(t, FlagDoublePush, m.Flag())
	assert.True(t, m.IsDoublePush())
	assert.False(t, m.IsCapture())
}

func TestMoveCaptureFlags(t *testing.T) {
	m := NewMove(SqE4, SqD5, FlagCapture)
	assert.True(t, m.IsCapture())
	assert.False(t, m.IsPromotion())
}

func TestMovePromotion(t *testing.T) {
	m := NewMove(SqE7, SqE8, FlagPromoteQueen)
	assert.True(t, m.IsPromotion())
	assert.Equal(t, Queen, m.PromotionType())
	assert.Equal(t, "e7e8q", m.String())

	m = NewMove(SqE7, SqD8, FlagPromoteKnigCap)
	assert.True(t, m.IsPromotion())
	assert.True(t, m.IsCapture())
	assert.Equal(t, Knight, m.PromotionType())
}

func TestMoveCastle(t *testing.T) {
	m := NewMove(SqE1, SqG1, FlagCastleKingside)
	assert.True(t, m.IsCastle())
	m = NewMove(SqE1, SqC1, FlagCastleQueen)
	assert.True(t, m.IsCastle())
}

func TestMoveEnPassant(t *testing.T) {
	m := NewMove(SqC5, SqD6, FlagEnPassant)
	assert.True(t, m.IsEnPassant())
	assert.True(t, m.IsCapture())
}

func TestMoveNone(t *testing.T) {
	assert.True(t, MoveNone.IsNone())
	assert.Equal(t, "0000", MoveNone.String())
}
