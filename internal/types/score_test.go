package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreOrdering(t *testing.T) {
	assert.True(t, OppMate(1).Less(Centipawn(-9000)))
	assert.True(t, Centipawn(-9000).Less(Centipawn(9000)))
	assert.True(t, Centipawn(9000).Less(OwnMate(1)))
}

func TestScoreMateDistanceOrdering(t *testing.T) {
	// A mate delivered sooner (smaller ply) ranks above one delivered later.
	assert.False(t, OwnMate(1).Less(OwnMate(3)))
	assert.True(t, OwnMate(3).Less(OwnMate(1)))

	// Being mated later (larger ply) is less bad, so it ranks above sooner.
	assert.True(t, OppMate(1).Less(OppMate(3)))
}

func TestScoreNegate(t *testing.T) {
	assert.Equal(t, OppMate(2), OwnMate(2).Negate())
	assert.Equal(t, OwnMate(2), OppMate(2).Negate())
	assert.Equal(t, Centipawn(-35), Centipawn(35).Negate())
	assert.Equal(t, Centipawn(35), Centipawn(35).Negate().Negate())
}

func TestScoreInc(t *testing.T) {
	assert.Equal(t, OwnMate(2), OwnMate(1).Inc())
	assert.Equal(t, OppMate(2), OppMate(1).Inc())
	assert.Equal(t, DrawScore(1), DrawScore(0).Inc())
	assert.Equal(t, Centipawn(10), Centipawn(10).Inc())
}

func TestScoreStop(t *testing.T) {
	assert.True(t, StopScore.IsStop())
	assert.False(t, Centipawn(0).IsStop())
}

func TestScoreString(t *testing.T) {
	assert.Equal(t, "mate 1", OwnMate(1).String())
	assert.Equal(t, "mate -2", OppMate(3).String())
	assert.Equal(t, "cp 35", Centipawn(35).String())
}
