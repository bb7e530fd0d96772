package types

// PieceType identifies a kind of chess piece without a color.
type PieceType int8

// PieceType constants. PtNone is the zero value so an empty PieceType map
// entry reads as "no piece" without extra bookkeeping.
const (
	PtNone PieceType = iota
	King
	Pawn
	Knight
	Bishop
	Rook
	Queen
	PieceTypeLength int = 7
)

// IsValid checks whether pt names a real piece type.
func (pt PieceType) IsValid() bool {
	return pt >= King && pt <= Queen
}

// pieceTypeValue holds the static material value of each piece type, in
// centipawns. King carries a deliberately large sentinel value so that
// material counts involving a captured king (which cannot legally occur but
// which search code may transiently construct) dominate any evaluation.
var pieceTypeValue = [PieceTypeLength]Value{
	PtNone: 0,
	King:   100000,
	Pawn:   100,
	Knight: 320,
	Bishop: 330,
	Rook:   500,
	Queen:  900,
}

// Value returns the static material value of the piece type.
func (pt PieceType) Value() Value {
	return pieceTypeValue[pt]
}

var pieceTypeChar = [PieceTypeLength]string{
	PtNone: "",
	King:   "k",
	Pawn:   "p",
	Knight: "n",
	Bishop: "b",
	Rook:   "r",
	Queen:  "q",
}

// Char returns the lower case FEN/SAN letter for the piece type ("" for
// PtNone).
func (pt PieceType) Char() string {
	return pieceTypeChar[pt]
}

// String is an alias for Char.
func (pt PieceType) String() string {
	return pt.Char()
}

// PieceTypeFromChar parses a lower- or upper-case piece letter (p/n/b/r/q/k)
// into a PieceType. Returns PtNone for anything else.
func PieceTypeFromChar(c byte) PieceType {
	switch c {
	case 'p', 'P':
		return Pawn
	case 'n', 'N':
		return Knight
	case 'b', 'B':
		return Bishop
	case 'r', 'R':
		return Rook
	case 'q', 'Q':
		return Queen
	case 'k', 'K':
		return King
	default:
		return PtNone
	}
}
