package controller

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/corvidchess/corvid/internal/search"
)

func TestGoReportsBestMoveAtDepth(t *testing.T) {
	c := New()
	done := make(chan search.Result, 1)
	c.Go(search.Limits{Depth: 3}, nil, func(r search.Result) {
		done <- r
	})
	select {
	case r := <-done:
		assert.False(t, r.BestMove.IsNone())
		assert.Equal(t, 3, r.Depth)
	case <-time.After(5 * time.Second):
		t.Fatal("search did not finish in time")
	}
}

func TestStopEndsAnInfiniteSearch(t *testing.T) {
	c := New()
	done := make(chan search.Result, 1)
	c.Go(search.Limits{Infinite: true}, nil, func(r search.Result) {
		done <- r
	})
	time.Sleep(20 * time.Millisecond)
	c.Stop()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("stop did not end the search in time")
	}
}

func TestSecondGoWhileSearchingIsIgnored(t *testing.T) {
	c := New()
	done := make(chan search.Result, 1)
	c.Go(search.Limits{Infinite: true}, nil, func(r search.Result) {
		done <- r
	})
	assert.True(t, c.IsSearching())
	c.Go(search.Limits{Depth: 1}, nil, func(r search.Result) {
		t.Fatal("second Go should have been ignored")
	})
	c.Stop()
	<-done
}

func TestSetPositionAppliesMoves(t *testing.T) {
	c := New()
	err := c.SetPosition("", []string{"e2e4", "e7e5"})
	assert.NoError(t, err)
	assert.Contains(t, c.FEN(), "4p3")
}
