package types

// Move is a 16-bit packed move: bits 0-5 from square, bits 6-11 to square,
// bits 12-15 flags.
type Move uint16

const (
	moveFromMask  = 0x003F
	moveToMask    = 0x0FC0
	moveToShift   = 6
	moveFlagMask  = 0xF000
	moveFlagShift = 12
)

// MoveFlag is the 4-bit move-type tag packed into a Move.
type MoveFlag uint8

// Move flags, per the packed-move layout.
const (
	FlagQuiet          MoveFlag = 0b0000
	FlagDoublePush     MoveFlag = 0b0001
	FlagCastleKingside MoveFlag = 0b0010
	FlagCastleQueen    MoveFlag = 0b0011
	FlagCapture        MoveFlag = 0b0100
	FlagEnPassant      MoveFlag = 0b0101
	FlagPromoteRook    MoveFlag = 0b1000
	FlagPromoteKnight  MoveFlag = 0b1001
	FlagPromoteBishop  MoveFlag = 0b1010
	FlagPromoteQueen   MoveFlag = 0b1011
	FlagPromoteRookCap MoveFlag = 0b1100
	FlagPromoteKnigCap MoveFlag = 0b1101
	FlagPromoteBishCap MoveFlag = 0b1110
	FlagPromoteQueenCap MoveFlag = 0b1111
)

// MoveNone is the sentinel move: all bits set, from == to.
const MoveNone Move = 0xFFFF

// NewMove packs a from/to/flag triple into a Move.
func NewMove(from, to Square, flag MoveFlag) Move {
	return Move(uint16(from)&moveFromMask | (uint16(to)<<moveToShift)&moveToMask | (uint16(flag)<<moveFlagShift)&moveFlagMask)
}

// From returns the origin square.
func (m Move) From() Square {
	return Square(m & moveFromMask)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((m & moveToMask) >> moveToShift)
}

// Flag returns the 4-bit move flag.
func (m Move) Flag() MoveFlag {
	return MoveFlag((m & moveFlagMask) >> moveFlagShift)
}

// IsNone reports whether m is the null-move sentinel.
func (m Move) IsNone() bool {
	return m == MoveNone || m.From() == m.To()
}

// IsCapture reports whether m captures a piece, including en passant and
// capture-promotions.
func (m Move) IsCapture() bool {
	return m.Flag()&FlagCapture != 0
}

// IsPromotion reports whether m promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Flag() >= FlagPromoteRook
}

// IsCastle reports whether m is a castling move.
func (m Move) IsCastle() bool {
	f := m.Flag()
	return f == FlagCastleKingside || f == FlagCastleQueen
}

// IsEnPassant reports whether m is an en passant capture.
func (m Move) IsEnPassant() bool {
	return m.Flag() == FlagEnPassant
}

// IsDoublePush reports whether m is a pawn double push.
func (m Move) IsDoublePush() bool {
	return m.Flag() == FlagDoublePush
}

// PromotionType returns the piece type m promotes to. Only meaningful when
// IsPromotion() is true.
func (m Move) PromotionType() PieceType {
	switch m.Flag() &^ FlagCapture {
	case FlagPromoteRook:
		return Rook
	case FlagPromoteKnight:
		return Knight
	case FlagPromoteBishop:
		return Bishop
	case FlagPromoteQueen:
		return Queen
	default:
		return PtNone
	}
}

// String renders the move in long algebraic / UCI form, e.g. "e2e4",
// "e7e8q". MoveNone renders as "0000".
func (m Move) String() string {
	if m == MoveNone {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += m.PromotionType().Char()
	}
	return s
}
