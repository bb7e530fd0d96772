package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
	"github.com/corvidchess/corvid/internal/util"
)

func mustPosition(t *testing.T, fen string) *position.Position {
	t.Helper()
	p, err := position.NewFromFEN(fen)
	assert.NoError(t, err)
	return p
}

// Scenario from spec §8.4: white to move has a one-move mate.
func TestMateInOne(t *testing.T) {
	p := mustPosition(t, "6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1")
	w := NewWorker()
	result := w.Run(p, Limits{Depth: 3}, util.NewBool(false), nil)
	assert.Equal(t, "a1a8", result.BestMove.String())
	assert.Equal(t, KindOwnMate, result.Score.Kind())
	assert.Equal(t, 1, result.Score.Ply())
}

// Scenario from spec §8.5: the engine must prefer a mating continuation
// over a move that stalemates the opponent.
func TestPrefersMateOverStalemate(t *testing.T) {
	p := mustPosition(t, "7k/5Q2/6K1/8/8/8/8/8 w - - 0 1")
	w := NewWorker()
	result := w.Run(p, Limits{Depth: 3}, util.NewBool(false), nil)
	assert.NotEqual(t, "f7e6", result.BestMove.String())
	assert.Equal(t, KindOwnMate, result.Score.Kind())
}

func TestRunStopsImmediatelyWhenAlreadyStopped(t *testing.T) {
	p := position.New()
	w := NewWorker()
	result := w.Run(p, Limits{Depth: 10}, util.NewBool(true), nil)
	assert.True(t, result.BestMove.IsNone())
}

func TestIterativeDeepeningReportsIncreasingDepth(t *testing.T) {
	p := position.New()
	w := NewWorker()
	var depths []int
	w.Run(p, Limits{Depth: 4}, util.NewBool(false), func(info Info) {
		depths = append(depths, info.Depth)
	})
	assert.Equal(t, []int{1, 2, 3, 4}, depths)
}

func TestScoreAlgebraNegationRoundTrips(t *testing.T) {
	for _, s := range []Score{Centipawn(35), OwnMate(3), OppMate(5), DrawScore(0)} {
		assert.Equal(t, s, s.Negate().Negate())
	}
}
