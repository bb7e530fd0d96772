// Package transpositiontable implements the search's hash table: a
// fixed-size, power-of-two-addressed cache from a position's Zobrist key to
// the best move, depth, and score found for it on a previous visit. It is
// not safe for concurrent use; a search worker owns a table for the
// duration of one search and discards it on completion.
package transpositiontable

import (
	"math"

	"github.com/corvidchess/corvid/internal/zobrist"

	. "github.com/corvidchess/corvid/internal/types"
)

// NodeKind classifies how a stored score relates to the window it was
// found with.
type NodeKind int8

const (
	// NodePV is an exact score: alpha < score < beta.
	NodePV NodeKind = iota
	// NodeCut is a fail-high: the real score is at least this value.
	NodeCut
	// NodeAll is a fail-low: the real score is at most this value.
	NodeAll
)

type entry struct {
	key   zobrist.Key
	move  Move
	depth int
	kind  NodeKind
	score Score
	valid bool
}

// Table is the transposition table proper.
type Table struct {
	data     []entry
	mask     uint64
	entries  uint64
	sizeInMB int
}

const bytesPerEntry = 40 // approximate Go struct size, used only for sizing the table

// New creates a table sized to the largest power-of-two entry count that
// fits within sizeInMB megabytes.
func New(sizeInMB int) *Table {
	t := &Table{}
	t.Resize(sizeInMB)
	return t
}

// Resize rebuilds the table for a new size budget, discarding all entries.
func (t *Table) Resize(sizeInMB int) {
	if sizeInMB < 1 {
		t.data = nil
		t.mask = 0
		t.entries = 0
		t.sizeInMB = sizeInMB
		return
	}
	totalBytes := uint64(sizeInMB) * 1024 * 1024
	count := uint64(1) << uint(math.Floor(math.Log2(float64(totalBytes/bytesPerEntry))))
	if count == 0 {
		count = 1
	}
	t.data = make([]entry, count)
	t.mask = count - 1
	t.entries = 0
	t.sizeInMB = sizeInMB
}

// Clear empties every entry without reallocating.
func (t *Table) Clear() {
	for i := range t.data {
		t.data[i] = entry{}
	}
	t.entries = 0
}

func (t *Table) index(key zobrist.Key) uint64 {
	return uint64(key) & t.mask
}

// Probe looks up key for a search about to explore depth plies with window
// [alpha, beta]. When useScore is true, score is the node's final value and
// the caller can return immediately. Otherwise ttMove (which may be
// MoveNone) is a move-ordering hint: try it first, since it either resolved
// this position before at a shallower depth or is this node's best move so
// far.
func (t *Table) Probe(key zobrist.Key, depth int, alpha, beta Score) (ttMove Move, score Score, useScore bool) {
	if len(t.data) == 0 {
		return MoveNone, Score{}, false
	}
	e := &t.data[t.index(key)]
	if !e.valid || e.key != key {
		return MoveNone, Score{}, false
	}
	if e.depth >= depth {
		switch e.kind {
		case NodePV:
			return e.move, e.score, true
		case NodeCut:
			if !e.score.Less(beta) {
				return e.move, e.score, true
			}
		case NodeAll:
			if !alpha.Less(e.score) {
				return e.move, e.score, true
			}
		}
		return e.move, Score{}, false
	}
	if e.kind == NodePV || e.kind == NodeCut {
		return e.move, Score{}, false
	}
	return MoveNone, Score{}, false
}

// Store records the result of searching key to depth with the given best
// move and node kind. A shallower existing entry for a different key is
// replaced; an entry for the same key is refreshed, keeping its move when
// the new one is unknown (MoveNone) so a later shallow re-probe cannot erase
// a good move learned at greater depth.
func (t *Table) Store(key zobrist.Key, move Move, depth int, score Score, kind NodeKind) {
	if len(t.data) == 0 {
		return
	}
	e := &t.data[t.index(key)]
	if !e.valid {
		t.entries++
		*e = entry{key: key, move: move, depth: depth, kind: kind, score: score, valid: true}
		return
	}
	if e.key != key {
		if depth >= e.depth {
			*e = entry{key: key, move: move, depth: depth, kind: kind, score: score, valid: true}
		}
		return
	}
	if move == MoveNone {
		move = e.move
	}
	e.move = move
	e.depth = depth
	e.kind = kind
	e.score = score
}

// BestMove returns the move stored for key regardless of its depth or node
// kind, or MoveNone if key has no entry. Used to walk out a principal
// variation after a search completes, where the usual depth/window gating
// of Probe does not apply.
func (t *Table) BestMove(key zobrist.Key) Move {
	if len(t.data) == 0 {
		return MoveNone
	}
	e := &t.data[t.index(key)]
	if !e.valid || e.key != key {
		return MoveNone
	}
	return e.move
}

// Len returns the number of occupied slots.
func (t *Table) Len() uint64 {
	return t.entries
}

// Hashfull reports how full the table is, in permille, per UCI convention.
func (t *Table) Hashfull() int {
	if len(t.data) == 0 {
		return 0
	}
	return int((1000 * t.entries) / uint64(len(t.data)))
}
