// Package zobrist provides the random constants used to maintain a
// position's incremental hash, and the xorshift64star generator that
// produces them.
package zobrist

import "github.com/corvidchess/corvid/internal/types"

// Key is a 64-bit Zobrist hash.
type Key uint64

// Table holds the 781 random constants a position XORs in and out as it
// changes: one per (piece, square), one per side to move, one per castling
// right, and one per en-passant file.
type Table struct {
	Pieces    [types.PieceTypeLength][types.ColorLength][types.SqLength]Key
	SideToMove Key
	Castling  [4]Key
	EpFile    [types.FileLength]Key
}

// Global is the process-wide table, seeded once at package init time. Its
// values are process-local and never persisted; any fixed seed is
// acceptable since only self-consistency within a run matters (spec §3).
var Global = newTable()

func newTable() *Table {
	r := newRandom(1070372)
	t := &Table{}
	for pt := types.King; pt <= types.Queen; pt++ {
		for c := types.White; c <= types.Black; c++ {
			for sq := types.SqA1; sq < types.SqNone; sq++ {
				t.Pieces[pt][c][sq] = Key(r.rand64())
			}
		}
	}
	t.SideToMove = Key(r.rand64())
	for i := range t.Castling {
		t.Castling[i] = Key(r.rand64())
	}
	for i := range t.EpFile {
		t.EpFile[i] = Key(r.rand64())
	}
	return t
}

// Piece returns the constant for a piece of the given type/color standing
// on sq.
func (t *Table) Piece(pt types.PieceType, c types.Color, sq types.Square) Key {
	return t.Pieces[pt][c][sq]
}

// CastlingRight returns the constant for a single castling-right bit. idx
// must be 0..3 corresponding to WK, WQ, BK, BQ in that order.
func (t *Table) CastlingRight(idx int) Key {
	return t.Castling[idx]
}

// EnPassantFile returns the constant for an en-passant target on file f.
func (t *Table) EnPassantFile(f types.File) Key {
	return t.EpFile[f]
}
