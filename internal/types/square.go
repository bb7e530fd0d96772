package types

import "fmt"

// Square represents one square on the chess board, 0..63, file = sq % 8,
// rank = sq / 8.
type Square int8

// Square constants, a1..h8, plus the SqNone sentinel.
const (
	SqA1 Square = iota
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA8
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
	SqNone
	SqLength int = 64
)

// IsValid checks that sq is a real board square (0..63).
func (sq Square) IsValid() bool {
	return sq >= SqA1 && sq < SqNone
}

// FileOf returns the file of the square.
func (sq Square) FileOf() File {
	return File(sq & 7)
}

// RankOf returns the rank of the square.
func (sq Square) RankOf() Rank {
	return Rank(sq >> 3)
}

// SquareOf returns the square for the given file/rank, or SqNone if either
// is out of range.
func SquareOf(f File, r Rank) Square {
	if !f.IsValid() || !r.IsValid() {
		return SqNone
	}
	return Square(int(r)<<3 + int(f))
}

// MakeSquare parses an algebraic square string such as "e4". Returns SqNone
// for anything that isn't exactly a valid file letter followed by a valid
// rank digit.
func MakeSquare(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	f := File(s[0] - 'a')
	r := Rank(s[1] - '1')
	return SquareOf(f, r)
}

// String returns the algebraic notation of the square, e.g. "e4", or "-" for
// an invalid square.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return sq.FileOf().String() + sq.RankOf().String()
}

// To returns the square reached by walking one step from sq in direction d,
// or SqNone if that step would leave the board (including file wrap-around
// on the east/west edges).
func (sq Square) To(d Direction) Square {
	if !sq.IsValid() {
		panic(fmt.Sprintf("types: To called on invalid square %d", sq))
	}
	return sqTo[sq][directionIndex(d)]
}

func directionIndex(d Direction) int {
	for i, dir := range Directions {
		if dir == d {
			return i
		}
	}
	panic(fmt.Sprintf("types: invalid direction %d", d))
}

// sqTo is filled by a package-level variable initializer, which Go runs
// before every init function, so the ray tables built in bitboard.go's
// init can already step through it.
var sqTo = func() (t [SqLength][8]Square) {
	for sq := SqA1; sq < SqNone; sq++ {
		for i, dir := range Directions {
			t[sq][i] = stepPreCompute(sq, dir)
		}
	}
	return t
}()

func stepPreCompute(sq Square, d Direction) Square {
	switch d {
	case North:
		sq += Square(d)
	case South:
		sq += Square(d)
	case East:
		if sq.FileOf() == FileH {
			return SqNone
		}
		sq += Square(d)
	case West:
		if sq.FileOf() == FileA {
			return SqNone
		}
		sq += Square(d)
	case Northeast:
		if sq.FileOf() == FileH {
			return SqNone
		}
		sq += Square(d)
	case Northwest:
		if sq.FileOf() == FileA {
			return SqNone
		}
		sq += Square(d)
	case Southeast:
		if sq.FileOf() == FileH {
			return SqNone
		}
		sq += Square(d)
	case Southwest:
		if sq.FileOf() == FileA {
			return SqNone
		}
		sq += Square(d)
	default:
		panic(fmt.Sprintf("types: invalid direction %d", d))
	}
	if sq.IsValid() {
		return sq
	}
	return SqNone
}
