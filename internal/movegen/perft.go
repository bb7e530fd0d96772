package movegen

import (
	. "github.com/corvidchess/corvid/internal/types"
	"github.com/corvidchess/corvid/internal/position"
)

// Perft counts the leaf nodes reachable from p at the given depth by
// generate+make+recurse+unmake, the standard move-generator correctness
// test (spec §8). It is exercised only from tests; there is no interactive
// perft command (that harness, including comparison against an external
// reference engine, is an explicit out-of-scope collaborator).
func Perft(p *position.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var ml MoveList
	Generate(p, &ml)
	if depth == 1 {
		return uint64(ml.Len())
	}
	var nodes uint64
	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)
		p.Make(m)
		nodes += Perft(p, depth-1)
		p.Unmake()
	}
	return nodes
}

// PerftDivide returns, for each legal root move, the perft count of the
// subtree rooted at that move. Used to pinpoint the first diverging move
// when a perft count mismatches the reference.
func PerftDivide(p *position.Position, depth int) map[string]uint64 {
	results := make(map[string]uint64)
	var ml MoveList
	Generate(p, &ml)
	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)
		p.Make(m)
		var count uint64
		if depth <= 1 {
			count = 1
		} else {
			count = Perft(p, depth-1)
		}
		results[m.String()] = count
		p.Unmake()
	}
	return results
}
