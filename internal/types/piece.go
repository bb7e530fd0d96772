package types

// Piece is a colored chess piece: a Color combined with a PieceType.
// Encoded as (color << 3) | pieceType so PtNone in either color still maps
// to a usable, distinct zero-ish value.
type Piece int8

// PieceNone is the empty-square sentinel.
const PieceNone Piece = Piece(PtNone)

// MakePiece combines a color and a piece type into a Piece.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(int8(c)<<3 | int8(pt))
}

// IsValid checks whether p names a real piece.
func (p Piece) IsValid() bool {
	return p.TypeOf().IsValid()
}

// TypeOf returns the piece type, discarding color.
func (p Piece) TypeOf() PieceType {
	return PieceType(p & 7)
}

// ColorOf returns the color of the piece. Only meaningful when p.IsValid().
func (p Piece) ColorOf() Color {
	return Color(p >> 3)
}

// Value returns the static material value of the piece's type.
func (p Piece) Value() Value {
	return p.TypeOf().Value()
}

// Char returns the FEN piece letter: upper case for White, lower case for
// Black, "" for PieceNone.
func (p Piece) Char() string {
	if !p.IsValid() {
		return ""
	}
	c := p.TypeOf().Char()
	if p.ColorOf() == White {
		return upperFirst(c)
	}
	return c
}

// String is an alias for Char.
func (p Piece) String() string {
	return p.Char()
}

// PieceFromChar parses a single FEN piece letter into a Piece. Returns
// PieceNone for anything unrecognized.
func PieceFromChar(c byte) Piece {
	pt := PieceTypeFromChar(c)
	if pt == PtNone {
		return PieceNone
	}
	if c >= 'A' && c <= 'Z' {
		return MakePiece(White, pt)
	}
	return MakePiece(Black, pt)
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}
