// Package controller is the thin glue described in spec §4.6: it owns the
// one Position that represents the current game, and on "go" clones it into
// a background search worker so the clone can be searched without racing a
// concurrent "position" command mutating the controller's own copy (spec
// §9's "owned position, not a reference" requirement). The protocol
// front-end (internal/uciproto) starts searches and changes the position
// only through it.
package controller

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/corvidchess/corvid/internal/enginelog"
	"github.com/corvidchess/corvid/internal/position"
	"github.com/corvidchess/corvid/internal/search"
	. "github.com/corvidchess/corvid/internal/types"
	"github.com/corvidchess/corvid/internal/util"
)

// Controller serializes access to the master Position and runs at most one
// search at a time, mirroring the two long-lived execution contexts of spec
// §5: a single-threaded command loop (the caller, e.g. internal/uciproto)
// and one background search worker per "go". isRunning is a weighted
// semaphore of capacity 1 used as a try-lock (IsSearching is a non-blocking
// TryAcquire/Release pair) the way search.Search gates its own worker
// goroutine in the teacher.
type Controller struct {
	mu        sync.Mutex
	pos       *position.Position
	stop      *util.Bool
	isRunning *semaphore.Weighted
}

// New returns a controller sitting at the standard starting position.
func New() *Controller {
	return &Controller{
		pos:       position.New(),
		stop:      util.NewBool(false),
		isRunning: semaphore.NewWeighted(1),
	}
}

// NewGame stops any running search and discards all state not carried by
// FEN, resetting to the standard starting position (spec §4.6).
func (c *Controller) NewGame() {
	c.Stop()
	c.Wait()
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pos = position.New()
	// The previous game's transposition table is already gone with its
	// worker; this is a good point to let the garbage collector catch up.
	enginelog.GetLog().Debug(util.GcWithStats())
}

// SetPosition replaces the master position with fen (the standard start
// position if fen is empty) followed by the supplied UCI moves, applied in
// order. Accepted at any time: a running search works on its own clone and
// is not affected.
func (c *Controller) SetPosition(fen string, moves []string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	p := position.New()
	if err := p.Load(fen, moves); err != nil {
		return err
	}
	c.pos = p
	return nil
}

// FEN reports the current master position in FEN form.
func (c *Controller) FEN() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pos.FEN()
}

// IsSearching reports whether a search worker is currently running.
func (c *Controller) IsSearching() bool {
	if !c.isRunning.TryAcquire(1) {
		return true
	}
	c.isRunning.Release(1)
	return false
}

// Go starts a search worker over a clone of the current master position. It
// returns immediately; onInfo is called once per completed root depth and
// onBestMove once when the search loop exits (either because it hit
// limits.Depth, a time budget expired, a mate was proven under a depth or
// time limit, or Stop was called). A "go" received
// while another is still running is ignored, matching the UCI assumption
// that a GUI waits for "bestmove" before issuing another "go".
func (c *Controller) Go(limits search.Limits, onInfo func(search.Info), onBestMove func(search.Result)) {
	if !c.isRunning.TryAcquire(1) {
		return
	}

	c.mu.Lock()
	clone := c.pos.Clone()
	stm := clone.SideToMove()
	c.mu.Unlock()

	c.stop.Store(false)
	budget, hasBudget := timeBudget(limits, stm)

	var timerDone chan struct{}
	if hasBudget {
		timerDone = make(chan struct{})
		go func(d time.Duration, done chan struct{}) {
			timer := time.NewTimer(d)
			defer timer.Stop()
			select {
			case <-timer.C:
				c.stop.Store(true)
			case <-done:
			}
		}(budget, timerDone)
	}

	go func() {
		defer c.isRunning.Release(1)
		worker := search.NewWorker()
		result := worker.Run(clone, limits, c.stop, onInfo)
		if timerDone != nil {
			close(timerDone)
		}
		if onBestMove != nil {
			onBestMove(result)
		}
	}()
}

// Stop signals the running search worker, if any, to abort as soon as it
// next checks the stop flag (spec §5's "best-effort, bounded latency"
// cancellation contract). A no-op if nothing is searching.
func (c *Controller) Stop() {
	c.stop.Store(true)
}

// Wait blocks until any in-flight search worker has returned.
func (c *Controller) Wait() {
	_ = c.isRunning.Acquire(context.Background(), 1)
	c.isRunning.Release(1)
}

// timeBudget derives the per-move time allotment from limits per spec
// §4.5: a fixed MoveTime wins outright; otherwise, given a clock, allocate
// remaining/20 for this move. Infinite search and a bare depth limit have no
// time budget at all — only an explicit Stop or exhausting the depth ends
// them.
func timeBudget(limits search.Limits, stm Color) (time.Duration, bool) {
	if limits.Infinite {
		return 0, false
	}
	if limits.MoveTime > 0 {
		return limits.MoveTime, true
	}
	if !limits.TimeControl {
		return 0, false
	}
	remaining := limits.WhiteTime
	if stm == Black {
		remaining = limits.BlackTime
	}
	if remaining <= 0 {
		return 0, false
	}
	allotted := remaining / 20
	floor := 10 * time.Millisecond
	return time.Duration(util.Max(int(allotted), int(floor))), true
}
