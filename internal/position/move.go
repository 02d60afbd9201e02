// Package position implements the board representation: bitboards plus a
// mailbox, the Zobrist-hashed make/unmake state stack, and FEN
// import/export. It is the "Position + StateInfo stack" component of the
// engine, built on top of internal/bitboard and internal/zobrist.
package position

import "github.com/Maverick-KVB37/VIONYX/internal/bitboard"

// MoveFlag distinguishes the sixteen kinds of move a Move can encode.
type MoveFlag uint16

const (
	Quiet MoveFlag = iota
	DoublePush
	KingCastle
	QueenCastle
	Capture
	EnPassant
	_reserved6
	_reserved7
	KnightPromotion
	BishopPromotion
	RookPromotion
	QueenPromotion
	KnightPromoCapture
	BishopPromoCapture
	RookPromoCapture
	QueenPromoCapture
)

// IsCapture reports whether a move with this flag removes an enemy piece.
// Invariant: flag&0x4 != 0 iff the move captures.
func (f MoveFlag) IsCapture() bool { return f&0x4 != 0 }

// IsPromotion reports whether a move with this flag promotes a pawn.
// Invariant: flag >= KnightPromotion (8) iff promotion.
func (f MoveFlag) IsPromotion() bool { return f >= KnightPromotion }

// PromotedType returns the piece type a promotion flag produces. Only
// meaningful when f.IsPromotion().
func (f MoveFlag) PromotedType() bitboard.PieceType {
	switch f &^ 0x4 {
	case KnightPromotion:
		return bitboard.Knight
	case BishopPromotion:
		return bitboard.Bishop
	case RookPromotion:
		return bitboard.Rook
	default:
		return bitboard.Queen
	}
}

// Move is a 16-bit packed {from:6, to:6, flag:4} move. Equality is
// bitwise. NoMove is the all-zero value.
type Move uint16

// NoMove denotes the absence of a move.
const NoMove Move = 0

// NewMove packs a from/to/flag triple into a Move.
func NewMove(from, to bitboard.Square, flag MoveFlag) Move {
	return Move(uint16(from) | uint16(to)<<6 | uint16(flag)<<12)
}

// From returns the origin square.
func (m Move) From() bitboard.Square { return bitboard.Square(m & 0x3F) }

// To returns the destination square.
func (m Move) To() bitboard.Square { return bitboard.Square((m >> 6) & 0x3F) }

// Flag returns the move's flag.
func (m Move) Flag() MoveFlag { return MoveFlag((m >> 12) & 0xF) }

// IsCapture reports whether m captures (including en-passant).
func (m Move) IsCapture() bool { return m.Flag().IsCapture() }

// IsPromotion reports whether m promotes a pawn.
func (m Move) IsPromotion() bool { return m.Flag().IsPromotion() }

// UCI renders the move in UCI long algebraic form: fileFrom rankFrom
// fileTo rankTo [promo], promo in {q,r,b,n} lowercase. NoMove renders as
// "0000".
func (m Move) UCI() string {
	if m == NoMove {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += string(m.Flag().PromotedType().Letter())
	}
	return s
}
