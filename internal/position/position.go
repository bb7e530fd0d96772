// Package position represents the chess board and its state: an 8x8 piece
// array backed by per-color and per-piece-type bitboards, a stack of
// irreversible state for undo, and an incrementally maintained Zobrist hash.
//
// Create a position with New() for the standard starting position, or
// NewFromFEN(fen) for an arbitrary one.
package position

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/corvidchess/corvid/internal/assert"
	. "github.com/corvidchess/corvid/internal/types"
	"github.com/corvidchess/corvid/internal/zobrist"
)

// StartFEN is the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// maxHistory bounds the irreversible-state stack. Search depth is capped far
// below this so the stack never grows unbounded (spec §9: "depth ≤ 255
// keeps stack size trivial").
const maxHistory = 256

// irreversibleState captures everything a move destroys, so Unmake can
// restore it without recomputation.
type irreversibleState struct {
	move          Move
	captured      Piece
	epSquare      Square
	castling      CastlingRights
	halfMoveClock int
	zobristKey    zobrist.Key
}

// Position is the mutable board state. The zero value is not usable;
// construct with New or NewFromFEN.
type Position struct {
	board [SqLength]Piece

	colorBb [ColorLength]Bitboard
	pieceBb [PieceTypeLength]Bitboard

	sideToMove      Color
	epSquare        Square
	castling        CastlingRights
	halfMoveClock   int
	fullMoveNumber  int

	kingSquare [ColorLength]Square

	zobristKey zobrist.Key

	history    [maxHistory]irreversibleState
	historyLen int
}

// New returns a position set up as the standard chess starting position.
func New() *Position {
	p, err := NewFromFEN(StartFEN)
	if err != nil {
		panic("position: start FEN failed to parse: " + err.Error())
	}
	return p
}

// NewFromFEN builds a position from a standard 6-field FEN string.
func NewFromFEN(fen string) (*Position, error) {
	p := &Position{}
	if err := p.setFEN(fen); err != nil {
		return nil, err
	}
	return p, nil
}

// Load resets the position to fen (or the standard start position if fen is
// empty) and then applies each UCI move string in moves in order, via
// Annotate+Make. After applying the moves it recomputes the Zobrist hash
// from scratch as a cross-check against the incrementally maintained one.
// The applied moves leave no undo records, so Unmake cannot take them back.
func (p *Position) Load(fen string, moves []string) error {
	if fen == "" {
		fen = StartFEN
	}
	if err := p.setFEN(fen); err != nil {
		return err
	}
	for _, ms := range moves {
		m, err := p.parseUciMove(ms)
		if err != nil {
			return fmt.Errorf("position: load: %w", err)
		}
		p.Make(m)
		// Keep the history stack for search plies only, however long the
		// game is.
		p.historyLen = 0
	}
	if recomputed := p.computeZobristFromScratch(); recomputed != p.zobristKey {
		return fmt.Errorf("position: load: zobrist mismatch after applying moves, incremental=%x scratch=%x", p.zobristKey, recomputed)
	}
	return nil
}

// Clone returns an independent deep copy. The controller hands a clone, not
// a reference into its own state, to every search worker (spec §9):
// otherwise a subsequent "position" command would mutate state a worker is
// still reading.
func (p *Position) Clone() *Position {
	cp := *p
	return &cp
}

// SideToMove returns the color to move.
func (p *Position) SideToMove() Color {
	return p.sideToMove
}

// EpSquare returns the current en-passant target square, or SqNone.
func (p *Position) EpSquare() Square {
	return p.epSquare
}

// Castling returns the current castling rights.
func (p *Position) Castling() CastlingRights {
	return p.castling
}

// HalfMoveClock returns the number of plies since the last capture or pawn
// move.
func (p *Position) HalfMoveClock() int {
	return p.halfMoveClock
}

// ZobristKey returns the current incrementally maintained hash.
func (p *Position) ZobristKey() zobrist.Key {
	return p.zobristKey
}

// PieceAt returns the piece on sq, or PieceNone.
func (p *Position) PieceAt(sq Square) Piece {
	return p.board[sq]
}

// KingSquare returns the square of c's king.
func (p *Position) KingSquare(c Color) Square {
	return p.kingSquare[c]
}

// Occupied returns the union of all occupied squares.
func (p *Position) Occupied() Bitboard {
	return p.colorBb[White] | p.colorBb[Black]
}

// ColorBb returns the occupancy bitboard for color c.
func (p *Position) ColorBb(c Color) Bitboard {
	return p.colorBb[c]
}

// PieceTypeBb returns the bitboard of all pieces of type pt, either color.
func (p *Position) PieceTypeBb(pt PieceType) Bitboard {
	return p.pieceBb[pt]
}

// PiecesOf returns the bitboard of pieces of type pt belonging to color c.
func (p *Position) PiecesOf(c Color, pt PieceType) Bitboard {
	return p.colorBb[c] & p.pieceBb[pt]
}

// InCheck reports whether c's king currently sits on an attacked square.
// attackedByOpponent is supplied by the move generator, which already computes the
// opponent's attack set while generating moves; Position itself does not
// duplicate that computation.
func (p *Position) InCheck(c Color, attackedByOpponent Bitboard) bool {
	return attackedByOpponent.Has(p.kingSquare[c])
}

func (p *Position) put(c Color, pt PieceType, sq Square) {
	if assert.DEBUG {
		assert.Assert(p.board[sq] == PieceNone, "position: put: square %s already occupied by %s", sq, p.board[sq])
	}
	p.board[sq] = MakePiece(c, pt)
	p.colorBb[c] = p.colorBb[c].Set(sq)
	p.pieceBb[pt] = p.pieceBb[pt].Set(sq)
	p.zobristKey ^= zobrist.Key(zobrist.Global.Piece(pt, c, sq))
	if pt == King {
		p.kingSquare[c] = sq
	}
}

func (p *Position) remove(c Color, pt PieceType, sq Square) {
	if assert.DEBUG {
		assert.Assert(p.board[sq] == MakePiece(c, pt), "position: remove: expected %s on %s, found %s", MakePiece(c, pt), sq, p.board[sq])
	}
	p.board[sq] = PieceNone
	p.colorBb[c] = p.colorBb[c].Clear(sq)
	p.pieceBb[pt] = p.pieceBb[pt].Clear(sq)
	p.zobristKey ^= zobrist.Key(zobrist.Global.Piece(pt, c, sq))
}

func (p *Position) move(c Color, pt PieceType, from, to Square) {
	p.remove(c, pt, from)
	p.put(c, pt, to)
}

// castlingBitIndex maps a CastlingRights single-bit value to the 0..3 index
// used by the zobrist castling table (WK, WQ, BK, BQ).
func castlingBitIndex(bit CastlingRights) int {
	switch bit {
	case WhiteKingside:
		return 0
	case WhiteQueenside:
		return 1
	case BlackKingside:
		return 2
	case BlackQueenside:
		return 3
	default:
		panic("position: invalid single castling bit")
	}
}

func (p *Position) xorCastlingRight(bit CastlingRights) {
	p.zobristKey ^= zobrist.Key(zobrist.Global.CastlingRight(castlingBitIndex(bit)))
}

// clearCastlingRight clears bit from the position's rights, XORing out the
// corresponding Zobrist constant only if the bit was actually set.
func (p *Position) clearCastlingRight(bit CastlingRights) {
	if p.castling.Has(bit) {
		p.xorCastlingRight(bit)
		p.castling = p.castling.Clear(bit)
	}
}

func (p *Position) setEpSquare(sq Square) {
	if p.epSquare != SqNone {
		p.zobristKey ^= zobrist.Key(zobrist.Global.EnPassantFile(p.epSquare.FileOf()))
	}
	p.epSquare = sq
	if sq != SqNone {
		p.zobristKey ^= zobrist.Key(zobrist.Global.EnPassantFile(sq.FileOf()))
	}
}

// Annotate takes a bare (from, to) pair plus an optional promotion piece
// type (PtNone if none) and reconstructs a fully-flagged Move by inspecting
// the current position. UCI only transmits endpoints and a promotion
// letter; capture, double-push, en-passant and castle flags must be
// recovered here.
func (p *Position) Annotate(from, to Square, promotion PieceType) (Move, error) {
	moving := p.board[from]
	if moving == PieceNone {
		return MoveNone, fmt.Errorf("position: annotate: no piece on %s", from)
	}
	pt := moving.TypeOf()
	target := p.board[to]
	isCapture := target != PieceNone

	if pt == King && from == p.kingSquare[p.sideToMove] {
		if (from == SqE1 && to == SqG1) || (from == SqE8 && to == SqG8) {
			return NewMove(from, to, FlagCastleKingside), nil
		}
		if (from == SqE1 && to == SqC1) || (from == SqE8 && to == SqC8) {
			return NewMove(from, to, FlagCastleQueen), nil
		}
	}

	if pt == Pawn {
		if to == p.epSquare && !isCapture {
			return NewMove(from, to, FlagEnPassant), nil
		}
		fromRank := from.RankOf()
		toRank := to.RankOf()
		dist := int(toRank) - int(fromRank)
		if dist == 2 || dist == -2 {
			return NewMove(from, to, FlagDoublePush), nil
		}
		if to.RankOf() == p.sideToMove.PromotionRank() {
			flag := promotionFlag(promotion, isCapture)
			return NewMove(from, to, flag), nil
		}
	}

	if isCapture {
		return NewMove(from, to, FlagCapture), nil
	}
	return NewMove(from, to, FlagQuiet), nil
}

func promotionFlag(pt PieceType, capture bool) MoveFlag {
	var f MoveFlag
	switch pt {
	case Knight:
		f = FlagPromoteKnight
	case Bishop:
		f = FlagPromoteBishop
	case Rook:
		f = FlagPromoteRook
	default:
		f = FlagPromoteQueen
	}
	if capture {
		f |= FlagCapture
	}
	return f
}

// Make applies m to the position, pushing an irreversibleState record that
// Unmake will later pop. The caller is responsible for only ever passing
// legal moves generated against this exact position; Make does not itself
// validate legality.
func (p *Position) Make(m Move) {
	if assert.DEBUG {
		assert.Assert(m != MoveNone, "position: make: invalid move %s", m)
		assert.Assert(p.historyLen < maxHistory, "position: make: history stack exhausted at %d plies", p.historyLen)
	}

	from := m.From()
	to := m.To()
	moving := p.board[from]
	us := moving.ColorOf()
	them := us.Flip()
	pt := moving.TypeOf()
	captured := p.board[to]

	if assert.DEBUG {
		assert.Assert(moving != PieceNone, "position: make: no piece on %s for move %s", from, m)
		assert.Assert(us == p.sideToMove, "position: make: piece on %s belongs to %s, not side to move %s", from, us, p.sideToMove)
		assert.Assert(captured.TypeOf() != King, "position: make: move %s would capture a king", m)
	}

	st := &p.history[p.historyLen]
	st.move = m
	st.captured = PieceNone
	st.epSquare = p.epSquare
	st.castling = p.castling
	st.halfMoveClock = p.halfMoveClock
	st.zobristKey = p.zobristKey
	p.historyLen++

	resetClock := pt == Pawn || m.IsCapture()

	switch m.Flag() {
	case FlagEnPassant:
		capSq := SquareOf(to.FileOf(), from.RankOf())
		st.captured = p.board[capSq]
		p.remove(them, Pawn, capSq)
		p.move(us, Pawn, from, to)
	case FlagCastleKingside, FlagCastleQueen:
		p.move(us, King, from, to)
		rookFrom, rookTo := castleRookSquares(m.Flag(), us)
		p.move(us, Rook, rookFrom, rookTo)
		p.clearCastlingRight(Kingside(us))
		p.clearCastlingRight(Queenside(us))
	default:
		if m.IsCapture() {
			st.captured = captured
			p.remove(them, captured.TypeOf(), to)
			if captured.TypeOf() == Rook {
				p.clearRookCastlingRight(to, them)
			}
		}
		if m.IsPromotion() {
			p.remove(us, Pawn, from)
			p.put(us, m.PromotionType(), to)
		} else {
			p.move(us, pt, from, to)
		}
	}

	if pt == King {
		p.clearCastlingRight(Kingside(us))
		p.clearCastlingRight(Queenside(us))
	}
	if pt == Rook {
		p.clearRookCastlingRight(from, us)
	}

	if m.IsDoublePush() {
		p.setEpSquare(SquareOf(from.FileOf(), Rank((int(from.RankOf())+int(to.RankOf()))/2)))
	} else {
		p.setEpSquare(SqNone)
	}

	if resetClock {
		p.halfMoveClock = 0
	} else {
		p.halfMoveClock++
	}

	p.sideToMove = p.sideToMove.Flip()
	p.zobristKey ^= zobrist.Key(zobrist.Global.SideToMove)
	if p.sideToMove == White {
		p.fullMoveNumber++
	}
}

// Unmake reverses the most recent Make call.
func (p *Position) Unmake() {
	if assert.DEBUG {
		assert.Assert(p.historyLen > 0, "position: unmake: cannot undo the initial position")
	}
	p.historyLen--
	st := &p.history[p.historyLen]
	m := st.move
	from := m.From()
	to := m.To()

	p.sideToMove = p.sideToMove.Flip()
	us := p.sideToMove
	them := us.Flip()

	switch m.Flag() {
	case FlagEnPassant:
		capSq := SquareOf(to.FileOf(), from.RankOf())
		p.move(us, Pawn, to, from)
		p.put(them, Pawn, capSq)
	case FlagCastleKingside, FlagCastleQueen:
		p.move(us, King, to, from)
		rookFrom, rookTo := castleRookSquares(m.Flag(), us)
		p.move(us, Rook, rookTo, rookFrom)
	default:
		if m.IsPromotion() {
			p.remove(us, m.PromotionType(), to)
			p.put(us, Pawn, from)
		} else {
			p.move(us, p.board[to].TypeOf(), to, from)
		}
		if m.IsCapture() {
			p.put(them, st.captured.TypeOf(), to)
		}
	}

	p.epSquare = st.epSquare
	p.castling = st.castling
	p.halfMoveClock = st.halfMoveClock
	p.zobristKey = st.zobristKey
	if us == Black {
		p.fullMoveNumber--
	}
}

func castleRookSquares(flag MoveFlag, c Color) (from, to Square) {
	rank := Rank1
	if c == Black {
		rank = Rank8
	}
	if flag == FlagCastleKingside {
		return SquareOf(FileH, rank), SquareOf(FileF, rank)
	}
	return SquareOf(FileA, rank), SquareOf(FileD, rank)
}

func (p *Position) clearRookCastlingRight(sq Square, c Color) {
	rank := Rank1
	if c == Black {
		rank = Rank8
	}
	if sq.RankOf() != rank {
		return
	}
	switch sq.FileOf() {
	case FileA:
		p.clearCastlingRight(Queenside(c))
	case FileH:
		p.clearCastlingRight(Kingside(c))
	}
}

func (p *Position) computeZobristFromScratch() zobrist.Key {
	var key zobrist.Key
	for sq := SqA1; sq < SqNone; sq++ {
		pc := p.board[sq]
		if pc == PieceNone {
			continue
		}
		key ^= zobrist.Key(zobrist.Global.Piece(pc.TypeOf(), pc.ColorOf(), sq))
	}
	if p.sideToMove == Black {
		key ^= zobrist.Key(zobrist.Global.SideToMove)
	}
	for _, bit := range []CastlingRights{WhiteKingside, WhiteQueenside, BlackKingside, BlackQueenside} {
		if p.castling.Has(bit) {
			key ^= zobrist.Key(zobrist.Global.CastlingRight(castlingBitIndex(bit)))
		}
	}
	if p.epSquare != SqNone {
		key ^= zobrist.Key(zobrist.Global.EnPassantFile(p.epSquare.FileOf()))
	}
	return key
}

// setFEN resets the position fully from a standard 6-field FEN.
func (p *Position) setFEN(fen string) error {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return fmt.Errorf("position: invalid fen %q: need at least 4 fields", fen)
	}

	*p = Position{}
	p.epSquare = SqNone

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return fmt.Errorf("position: invalid fen %q: expected 8 ranks, got %d", fen, len(ranks))
	}
	for i, rankStr := range ranks {
		r := Rank(7 - i)
		f := FileA
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				f += File(ch - '0')
				continue
			}
			pc := PieceFromChar(byte(ch))
			if pc == PieceNone {
				return fmt.Errorf("position: invalid fen %q: bad piece char %q", fen, ch)
			}
			if !f.IsValid() {
				return fmt.Errorf("position: invalid fen %q: rank overflow", fen)
			}
			p.put(pc.ColorOf(), pc.TypeOf(), SquareOf(f, r))
			f++
		}
	}

	switch fields[1] {
	case "w":
		p.sideToMove = White
	case "b":
		p.sideToMove = Black
		p.zobristKey ^= zobrist.Key(zobrist.Global.SideToMove)
	default:
		return fmt.Errorf("position: invalid fen %q: bad side to move %q", fen, fields[1])
	}

	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				p.castling |= WhiteKingside
			case 'Q':
				p.castling |= WhiteQueenside
			case 'k':
				p.castling |= BlackKingside
			case 'q':
				p.castling |= BlackQueenside
			default:
				return fmt.Errorf("position: invalid fen %q: bad castling char %q", fen, ch)
			}
		}
	}
	for _, bit := range []CastlingRights{WhiteKingside, WhiteQueenside, BlackKingside, BlackQueenside} {
		if p.castling.Has(bit) {
			p.xorCastlingRight(bit)
		}
	}

	if fields[3] != "-" {
		sq := MakeSquare(fields[3])
		if sq == SqNone {
			return fmt.Errorf("position: invalid fen %q: bad ep square %q", fen, fields[3])
		}
		p.epSquare = sq
		p.zobristKey ^= zobrist.Key(zobrist.Global.EnPassantFile(sq.FileOf()))
	}

	p.halfMoveClock = 0
	if len(fields) > 4 {
		v, err := strconv.Atoi(fields[4])
		if err != nil {
			return fmt.Errorf("position: invalid fen %q: bad halfmove clock: %w", fen, err)
		}
		p.halfMoveClock = v
	}

	p.fullMoveNumber = 1
	if len(fields) > 5 {
		v, err := strconv.Atoi(fields[5])
		if err != nil {
			return fmt.Errorf("position: invalid fen %q: bad fullmove number: %w", fen, err)
		}
		p.fullMoveNumber = v
	}

	return nil
}

// FEN renders the position as a standard 6-field FEN string.
func (p *Position) FEN() string {
	var b strings.Builder
	for r := Rank8; r >= Rank1; r-- {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			pc := p.board[SquareOf(f, r)]
			if pc == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			b.WriteString(pc.Char())
		}
		if empty > 0 {
			b.WriteString(strconv.Itoa(empty))
		}
		if r != Rank1 {
			b.WriteByte('/')
		}
	}
	b.WriteByte(' ')
	b.WriteString(p.sideToMove.String())
	b.WriteByte(' ')
	b.WriteString(p.castling.String())
	b.WriteByte(' ')
	if p.epSquare == SqNone {
		b.WriteByte('-')
	} else {
		b.WriteString(p.epSquare.String())
	}
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(p.halfMoveClock))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(p.fullMoveNumber))
	return b.String()
}

func (p *Position) String() string {
	return p.FEN()
}

func (p *Position) parseUciMove(s string) (Move, error) {
	if len(s) < 4 {
		return MoveNone, errors.New("move string too short: " + s)
	}
	from := MakeSquare(s[0:2])
	to := MakeSquare(s[2:4])
	if from == SqNone || to == SqNone {
		return MoveNone, errors.New("invalid move string: " + s)
	}
	promotion := PtNone
	if len(s) == 5 {
		promotion = PieceTypeFromChar(s[4])
		if promotion == PtNone {
			return MoveNone, errors.New("invalid promotion letter in move string: " + s)
		}
	}
	return p.Annotate(from, to, promotion)
}
