package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquareOf(t *testing.T) {
	assert.Equal(t, SqE4, SquareOf(FileE, Rank4))
	assert.Equal(t, SqA1, SquareOf(FileA, Rank1))
	assert.Equal(t, SqH8, SquareOf(FileH, Rank8))
}

func TestMakeSquare(t *testing.T) {
	assert.Equal(t, SqE4, MakeSquare("e4"))
	assert.Equal(t, SqA1, MakeSquare("a1"))
	assert.Equal(t, SqNone, MakeSquare("z9"))
	assert.Equal(t, SqNone, MakeSquare("e"))
}

func TestSquareString(t *testing.T) {
	assert.Equal(t, "e4", SqE4.String())
	assert.Equal(t, "a1", SqA1.String())
	assert.Equal(t, "-", SqNone.String())
}

func TestSquareFileRankOf(t *testing.T) {
	assert.Equal(t, FileE, SqE4.FileOf())
	assert.Equal(t, Rank4, SqE4.RankOf())
}

func TestSquareTo(t *testing.T) {
	assert.Equal(t, SqE5, SqE4.To(North))
	assert.Equal(t, SqE3, SqE4.To(South))
	assert.Equal(t, SqNone, SqH4.To(East))
	assert.Equal(t, SqNone, SqA4.To(West))
	assert.Equal(t, SqNone, SqH4.To(Northeast))
	assert.Equal(t, SqNone, SqA8.To(North))
}
