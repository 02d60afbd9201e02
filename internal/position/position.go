package position

import (
	"github.com/Maverick-KVB37/VIONYX/internal/bitboard"
	"github.com/Maverick-KVB37/VIONYX/internal/zobrist"
)

// Castling rights bits, one per corner.
const (
	WhiteKingside uint8 = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	AllCastlingRights = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// maxPlies bounds the make/unmake state stack; a single game or search
// line is never expected to exceed it.
const maxPlies = 1024

// StateInfo is the irreversible part of a position: the data make/unmake
// must restore exactly to undo a move, one record per ply reached.
type StateInfo struct {
	hashKey        uint64
	enpassant      bitboard.Square
	castlingRights uint8
	halfMoveClock  uint8
	captured       bitboard.Piece
}

// Position is the full board state: piece bitboards, a mailbox, occupancy
// sets, side to move, the repetition history and the make/unmake state
// stack.
type Position struct {
	pieces       [12]bitboard.Bitboard
	board        [64]bitboard.Piece
	occupancy    [2]bitboard.Bitboard
	occupancyAll bitboard.Bitboard
	stm          bitboard.Color

	history []uint64

	states   [maxPlies]StateInfo
	statePly int

	fullMoveCounter uint16
}

func (pos *Position) state() *StateInfo { return &pos.states[pos.statePly] }

// SideToMove returns the color on move.
func (pos *Position) SideToMove() bitboard.Color { return pos.stm }

// PieceAt returns the piece occupying sq, or bitboard.NoPiece.
func (pos *Position) PieceAt(sq bitboard.Square) bitboard.Piece { return pos.board[sq] }

// PieceBB returns the bitboard for a given colored piece.
func (pos *Position) PieceBB(p bitboard.Piece) bitboard.Bitboard { return pos.pieces[p] }

// Pieces returns the bitboard union of color c's pieces of type pt.
func (pos *Position) Pieces(c bitboard.Color, pt bitboard.PieceType) bitboard.Bitboard {
	return pos.pieces[bitboard.MakePiece(c, pt)]
}

// Occupancy returns the bitboard of all pieces of color c.
func (pos *Position) Occupancy(c bitboard.Color) bitboard.Bitboard { return pos.occupancy[c] }

// OccupancyAll returns the bitboard of all occupied squares.
func (pos *Position) OccupancyAll() bitboard.Bitboard { return pos.occupancyAll }

// EnPassantSquare returns the current en-passant target square, or
// bitboard.NoSquare.
func (pos *Position) EnPassantSquare() bitboard.Square { return pos.state().enpassant }

// CastlingRights returns the current castling-rights mask.
func (pos *Position) CastlingRights() uint8 { return pos.state().castlingRights }

// HalfMoveClock returns the current fifty-move-rule half-move counter.
func (pos *Position) HalfMoveClock() uint8 { return pos.state().halfMoveClock }

// FullMoveCounter returns the current full-move number.
func (pos *Position) FullMoveCounter() uint16 { return pos.fullMoveCounter }

// Hash returns the current Zobrist hash key.
func (pos *Position) Hash() uint64 { return pos.state().hashKey }

// Ply returns how many moves have been made since the position was set
// (i.e. the depth of the state stack).
func (pos *Position) Ply() int { return pos.statePly }

func (pos *Position) placePiece(p bitboard.Piece, sq bitboard.Square) {
	pos.pieces[p] |= sq.Bb()
	pos.board[sq] = p
	pos.occupancy[p.Color()] |= sq.Bb()
	pos.occupancyAll |= sq.Bb()
}

func (pos *Position) removePiece(p bitboard.Piece, sq bitboard.Square) {
	pos.pieces[p] &^= sq.Bb()
	pos.board[sq] = bitboard.NoPiece
	pos.occupancy[p.Color()] &^= sq.Bb()
	pos.occupancyAll &^= sq.Bb()
}

func (pos *Position) movePiece(p bitboard.Piece, from, to bitboard.Square) {
	mask := from.Bb() | to.Bb()
	pos.pieces[p] ^= mask
	pos.occupancy[p.Color()] ^= mask
	pos.occupancyAll ^= mask
	pos.board[from] = bitboard.NoPiece
	pos.board[to] = p
}

// attackersTo returns every piece of either color attacking sq, given the
// occupied set occ (passed explicitly so callers mid-SEE can simulate a
// reduced occupancy).
func (pos *Position) attackersTo(sq bitboard.Square, occ bitboard.Bitboard) bitboard.Bitboard {
	var att bitboard.Bitboard
	att |= bitboard.PawnAttacks[bitboard.Black][sq] & pos.Pieces(bitboard.White, bitboard.Pawn)
	att |= bitboard.PawnAttacks[bitboard.White][sq] & pos.Pieces(bitboard.Black, bitboard.Pawn)
	att |= bitboard.KnightAttacks[sq] & (pos.Pieces(bitboard.White, bitboard.Knight) | pos.Pieces(bitboard.Black, bitboard.Knight))
	att |= bitboard.KingAttacks[sq] & (pos.Pieces(bitboard.White, bitboard.King) | pos.Pieces(bitboard.Black, bitboard.King))
	bishops := pos.Pieces(bitboard.White, bitboard.Bishop) | pos.Pieces(bitboard.Black, bitboard.Bishop)
	rooks := pos.Pieces(bitboard.White, bitboard.Rook) | pos.Pieces(bitboard.Black, bitboard.Rook)
	queens := pos.Pieces(bitboard.White, bitboard.Queen) | pos.Pieces(bitboard.Black, bitboard.Queen)
	att |= bitboard.BishopAttacks(sq, occ) & (bishops | queens)
	att |= bitboard.RookAttacks(sq, occ) & (rooks | queens)
	return att
}

// IsSquareAttacked reports whether sq is attacked by a piece of color by.
func (pos *Position) IsSquareAttacked(sq bitboard.Square, by bitboard.Color) bool {
	occ := pos.occupancyAll
	if bitboard.PawnAttacks[by.Opposite()][sq]&pos.Pieces(by, bitboard.Pawn) != 0 {
		return true
	}
	if bitboard.KnightAttacks[sq]&pos.Pieces(by, bitboard.Knight) != 0 {
		return true
	}
	if bitboard.KingAttacks[sq]&pos.Pieces(by, bitboard.King) != 0 {
		return true
	}
	bishopsQueens := pos.Pieces(by, bitboard.Bishop) | pos.Pieces(by, bitboard.Queen)
	if bitboard.BishopAttacks(sq, occ)&bishopsQueens != 0 {
		return true
	}
	rooksQueens := pos.Pieces(by, bitboard.Rook) | pos.Pieces(by, bitboard.Queen)
	if bitboard.RookAttacks(sq, occ)&rooksQueens != 0 {
		return true
	}
	return false
}

// InCheck reports whether the side to move's king is currently attacked.
func (pos *Position) InCheck() bool {
	kingSq := pos.Pieces(pos.stm, bitboard.King).LSB()
	return pos.IsSquareAttacked(kingSq, pos.stm.Opposite())
}

// KingSquare returns the square of color c's king.
func (pos *Position) KingSquare(c bitboard.Color) bitboard.Square {
	return pos.Pieces(c, bitboard.King).LSB()
}

func computeHash(pos *Position) uint64 {
	var h uint64
	for sq := bitboard.A1; sq <= bitboard.H8; sq++ {
		if p := pos.board[sq]; p != bitboard.NoPiece {
			h ^= zobrist.PieceSquare[p][sq]
		}
	}
	h ^= zobrist.Castling[pos.state().castlingRights]
	if ep := pos.state().enpassant; ep != bitboard.NoSquare {
		h ^= zobrist.EnPassantFile[ep.File()]
	}
	if pos.stm == bitboard.Black {
		h ^= zobrist.SideToMove
	}
	return h
}

// RecomputeHash recomputes the Zobrist hash from scratch; used by FEN
// parsing and available for invariant assertions (I3) in tests.
func (pos *Position) RecomputeHash() uint64 { return computeHash(pos) }

// FiftyMoveDraw reports whether the fifty-move rule currently applies.
func (pos *Position) FiftyMoveDraw() bool { return pos.state().halfMoveClock >= 100 }

// IsRepetitionDraw scans the hash history backwards, stopping at the last
// irreversible move (the halfmove clock distance). Inside search (ply>0)
// the first repeat counts as a draw; at the root, a threefold repetition
// is required.
func (pos *Position) IsRepetitionDraw(ply int) bool {
	clock := int(pos.state().halfMoveClock)
	n := len(pos.history)
	if n == 0 || clock < 4 {
		return false
	}
	limit := clock
	if limit > n-1 {
		limit = n - 1
	}
	current := pos.history[n-1]
	count := 0
	for back := 4; back <= limit; back += 2 {
		if pos.history[n-1-back] == current {
			count++
			if ply > 0 {
				return true
			}
			if count >= 2 {
				return true
			}
		}
	}
	return false
}
