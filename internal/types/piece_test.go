package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakePiece(t *testing.T) {
	p := MakePiece(White, Queen)
	assert.Equal(t, White, p.ColorOf())
	assert.Equal(t, Queen, p.TypeOf())
	assert.Equal(t, "Q", p.Char())

	p = MakePiece(Black, Knight)
	assert.Equal(t, Black, p.ColorOf())
	assert.Equal(t, Knight, p.TypeOf())
	assert.Equal(t, "n", p.Char())
}

func TestPieceFromChar(t *testing.T) {
	assert.Equal(t, MakePiece(White, King), PieceFromChar('K'))
	assert.Equal(t, MakePiece(Black, Pawn), PieceFromChar('p'))
	assert.Equal(t, PieceNone, PieceFromChar('x'))
}

func TestPieceTypeValue(t *testing.T) {
	assert.Equal(t, Value(100), Pawn.Value())
	assert.Equal(t, Value(320), Knight.Value())
	assert.Equal(t, Value(330), Bishop.Value())
	assert.Equal(t, Value(500), Rook.Value())
	assert.Equal(t, Value(900), Queen.Value())
	assert.Equal(t, Value(100000), King.Value())
}

func TestColorFlip(t *testing.T) {
	assert.Equal(t, Black, White.Flip())
	assert.Equal(t, White, Black.Flip())
}
