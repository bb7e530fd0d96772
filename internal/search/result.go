package search

import (
	"time"

	. "github.com/corvidchess/corvid/internal/types"
)

// Result is what a completed (or cancelled) depth of iterative deepening
// produced.
type Result struct {
	BestMove Move
	Score    Score
	Depth    int
	Nodes    uint64
	Pv       []Move
}

// Info is reported once per completed root depth, for UCI "info" lines.
type Info struct {
	Depth int
	Score Score
	Nodes uint64
	Nps   uint64
	Time  time.Duration
	Pv    []Move
}
