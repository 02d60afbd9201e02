package position

import (
	"github.com/Maverick-KVB37/VIONYX/internal/bitboard"
	"github.com/Maverick-KVB37/VIONYX/internal/zobrist"
)

func castlingLossMask(sq bitboard.Square) uint8 {
	switch sq {
	case bitboard.A1:
		return WhiteQueenside
	case bitboard.H1:
		return WhiteKingside
	case bitboard.A8:
		return BlackQueenside
	case bitboard.H8:
		return BlackKingside
	default:
		return 0
	}
}

// castlingRookSquares returns the rook's from/to squares for a castling
// move of color us.
func castlingRookSquares(us bitboard.Color, flag MoveFlag) (from, to bitboard.Square) {
	if us == bitboard.White {
		if flag == KingCastle {
			return bitboard.H1, bitboard.F1
		}
		return bitboard.A1, bitboard.D1
	}
	if flag == KingCastle {
		return bitboard.H8, bitboard.F8
	}
	return bitboard.A8, bitboard.D8
}

// MakeMove applies a pseudo-legal move, pushing a new StateInfo. It does
// not check whether the move leaves the mover's own king in check; the
// caller (the search or a legality filter) must afterwards test the
// mover's king square with IsSquareAttacked and call UnmakeMove on failure.
func (pos *Position) MakeMove(m Move) {
	us := pos.stm
	them := us.Opposite()
	from, to, flag := m.From(), m.To(), m.Flag()
	moving := pos.board[from]

	prev := pos.states[pos.statePly]
	pos.statePly++
	ns := &pos.states[pos.statePly]
	*ns = StateInfo{
		hashKey:        prev.hashKey,
		enpassant:      bitboard.NoSquare,
		castlingRights: prev.castlingRights,
		halfMoveClock:  prev.halfMoveClock,
		captured:       bitboard.NoPiece,
	}
	hash := ns.hashKey
	if prev.enpassant != bitboard.NoSquare {
		hash ^= zobrist.EnPassantFile[prev.enpassant.File()]
	}
	ns.halfMoveClock++

	switch flag {
	case Quiet:
		pos.movePiece(moving, from, to)
		hash ^= zobrist.PieceSquare[moving][from] ^ zobrist.PieceSquare[moving][to]
		if moving.Type() == bitboard.Pawn {
			ns.halfMoveClock = 0
		}

	case DoublePush:
		pos.movePiece(moving, from, to)
		hash ^= zobrist.PieceSquare[moving][from] ^ zobrist.PieceSquare[moving][to]
		ns.halfMoveClock = 0
		epSq := bitboard.Square((int(from) + int(to)) / 2)
		if bitboard.PawnAttacks[us][epSq]&pos.Pieces(them, bitboard.Pawn) != 0 {
			ns.enpassant = epSq
			hash ^= zobrist.EnPassantFile[epSq.File()]
		}

	case Capture:
		captured := pos.board[to]
		ns.captured = captured
		hash ^= zobrist.PieceSquare[captured][to]
		pos.removePiece(captured, to)
		pos.movePiece(moving, from, to)
		hash ^= zobrist.PieceSquare[moving][from] ^ zobrist.PieceSquare[moving][to]
		ns.halfMoveClock = 0

	case EnPassant:
		capSq := to - 8
		if us == bitboard.Black {
			capSq = to + 8
		}
		captured := pos.board[capSq]
		ns.captured = captured
		hash ^= zobrist.PieceSquare[captured][capSq]
		pos.removePiece(captured, capSq)
		pos.movePiece(moving, from, to)
		hash ^= zobrist.PieceSquare[moving][from] ^ zobrist.PieceSquare[moving][to]
		ns.halfMoveClock = 0

	case KingCastle, QueenCastle:
		pos.movePiece(moving, from, to)
		hash ^= zobrist.PieceSquare[moving][from] ^ zobrist.PieceSquare[moving][to]
		rookFrom, rookTo := castlingRookSquares(us, flag)
		rook := pos.board[rookFrom]
		pos.movePiece(rook, rookFrom, rookTo)
		hash ^= zobrist.PieceSquare[rook][rookFrom] ^ zobrist.PieceSquare[rook][rookTo]

	default: // promotions and promotion-captures
		if flag.IsCapture() {
			captured := pos.board[to]
			ns.captured = captured
			hash ^= zobrist.PieceSquare[captured][to]
			pos.removePiece(captured, to)
		}
		pos.removePiece(moving, from)
		hash ^= zobrist.PieceSquare[moving][from]
		promoted := bitboard.MakePiece(us, flag.PromotedType())
		pos.placePiece(promoted, to)
		hash ^= zobrist.PieceSquare[promoted][to]
		ns.halfMoveClock = 0
	}

	lostMask := castlingLossMask(from) | castlingLossMask(to)
	if moving.Type() == bitboard.King {
		if us == bitboard.White {
			lostMask |= WhiteKingside | WhiteQueenside
		} else {
			lostMask |= BlackKingside | BlackQueenside
		}
	}
	if lostMask&ns.castlingRights != 0 {
		oldRights := ns.castlingRights
		newRights := oldRights &^ lostMask
		hash ^= zobrist.Castling[oldRights] ^ zobrist.Castling[newRights]
		ns.castlingRights = newRights
	}

	pos.stm = them
	hash ^= zobrist.SideToMove
	if pos.stm == bitboard.White {
		pos.fullMoveCounter++
	}

	ns.hashKey = hash
	pos.history = append(pos.history, hash)
}

// UnmakeMove exactly inverts the most recent MakeMove(m) call.
func (pos *Position) UnmakeMove(m Move) {
	us := pos.stm.Opposite()
	from, to, flag := m.From(), m.To(), m.Flag()
	cur := pos.states[pos.statePly]

	switch flag {
	case Quiet, DoublePush:
		moved := pos.board[to]
		pos.movePiece(moved, to, from)

	case Capture:
		moved := pos.board[to]
		pos.movePiece(moved, to, from)
		pos.placePiece(cur.captured, to)

	case EnPassant:
		moved := pos.board[to]
		pos.movePiece(moved, to, from)
		capSq := to - 8
		if us == bitboard.Black {
			capSq = to + 8
		}
		pos.placePiece(cur.captured, capSq)

	case KingCastle, QueenCastle:
		king := pos.board[to]
		pos.movePiece(king, to, from)
		rookFrom, rookTo := castlingRookSquares(us, flag)
		rook := pos.board[rookTo]
		pos.movePiece(rook, rookTo, rookFrom)

	default: // promotions and promotion-captures
		promoted := pos.board[to]
		pos.removePiece(promoted, to)
		pos.placePiece(bitboard.MakePiece(us, bitboard.Pawn), from)
		if flag.IsCapture() {
			pos.placePiece(cur.captured, to)
		}
	}

	if pos.stm == bitboard.White {
		pos.fullMoveCounter--
	}
	pos.stm = us
	pos.statePly--
	pos.history = pos.history[:len(pos.history)-1]
}

// MakeNullMove passes the turn without moving a piece: used only by the
// search's null-move pruning to test "what if the opponent got a free
// move", never seen by normal play or UCI move application.
func (pos *Position) MakeNullMove() {
	prev := pos.states[pos.statePly]
	pos.statePly++
	ns := &pos.states[pos.statePly]
	*ns = StateInfo{
		hashKey:        prev.hashKey,
		enpassant:      bitboard.NoSquare,
		castlingRights: prev.castlingRights,
		halfMoveClock:  prev.halfMoveClock + 1,
		captured:       bitboard.NoPiece,
	}
	hash := ns.hashKey
	if prev.enpassant != bitboard.NoSquare {
		hash ^= zobrist.EnPassantFile[prev.enpassant.File()]
	}
	pos.stm = pos.stm.Opposite()
	hash ^= zobrist.SideToMove
	if pos.stm == bitboard.White {
		pos.fullMoveCounter++
	}
	ns.hashKey = hash
	pos.history = append(pos.history, hash)
}

// UnmakeNullMove exactly inverts the most recent MakeNullMove call.
func (pos *Position) UnmakeNullMove() {
	if pos.stm == bitboard.White {
		pos.fullMoveCounter--
	}
	pos.stm = pos.stm.Opposite()
	pos.statePly--
	pos.history = pos.history[:len(pos.history)-1]
}
