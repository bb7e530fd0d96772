package search

import "time"

// Limits bounds a single search. Depth == 0 together with Infinite == false
// and TimeControl == false means "run until Stop is called" — the caller is
// responsible for eventually flipping the stop flag.
type Limits struct {
	// Depth, if non-zero, stops iterative deepening after this many plies.
	Depth int

	// Infinite disables every automatic cutoff; only an external stop ends
	// the search.
	Infinite bool

	// TimeControl, when set, means WhiteTime/BlackTime/WhiteInc/BlackInc
	// describe a clock and the caller (not this package) derives a move
	// time budget and arranges for Stop to fire when it expires.
	TimeControl bool
	WhiteTime   time.Duration
	BlackTime   time.Duration
	WhiteInc    time.Duration
	BlackInc    time.Duration

	// MoveTime, if non-zero, is a fixed time allotment for this move. Like
	// TimeControl, enforcing it is the caller's job.
	MoveTime time.Duration
}
