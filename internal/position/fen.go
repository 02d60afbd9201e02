package position

import (
	"errors"
	"strconv"
	"strings"

	"github.com/Maverick-KVB37/VIONYX/internal/bitboard"
)

// StartFEN is the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewStartPosition returns a fresh Position set to the standard opening
// array. It never fails since StartFEN is a constant, valid FEN.
func NewStartPosition() *Position {
	pos, err := ParseFEN(StartFEN)
	if err != nil {
		panic("position: StartFEN failed to parse: " + err.Error())
	}
	return pos
}

// FEN parse errors, returned as explicit values rather than panics.
var (
	ErrBadFieldCount = errors.New("position: FEN must have 6 space-separated fields")
	ErrBadPlacement  = errors.New("position: malformed piece placement field")
	ErrBadSideToMove = errors.New("position: side to move must be 'w' or 'b'")
	ErrBadCastling   = errors.New("position: malformed castling field")
	ErrBadEnPassant  = errors.New("position: malformed en-passant field")
	ErrBadCounter    = errors.New("position: malformed halfmove/fullmove counter")
)

var pieceFromLetter = map[byte]bitboard.Piece{
	'P': bitboard.MakePiece(bitboard.White, bitboard.Pawn),
	'N': bitboard.MakePiece(bitboard.White, bitboard.Knight),
	'B': bitboard.MakePiece(bitboard.White, bitboard.Bishop),
	'R': bitboard.MakePiece(bitboard.White, bitboard.Rook),
	'Q': bitboard.MakePiece(bitboard.White, bitboard.Queen),
	'K': bitboard.MakePiece(bitboard.White, bitboard.King),
	'p': bitboard.MakePiece(bitboard.Black, bitboard.Pawn),
	'n': bitboard.MakePiece(bitboard.Black, bitboard.Knight),
	'b': bitboard.MakePiece(bitboard.Black, bitboard.Bishop),
	'r': bitboard.MakePiece(bitboard.Black, bitboard.Rook),
	'q': bitboard.MakePiece(bitboard.Black, bitboard.Queen),
	'k': bitboard.MakePiece(bitboard.Black, bitboard.King),
}

// ParseFEN builds a Position from a standard six-field FEN string.
// Configuration errors (malformed fields, overfull ranks) are reported as
// an error rather than panicking; on error the returned Position is the
// zero value and the caller should keep whatever position it had before.
func ParseFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return nil, ErrBadFieldCount
	}

	pos := &Position{}
	for i := range pos.board {
		pos.board[i] = bitboard.NoPiece
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, ErrBadPlacement
	}
	for r := 0; r < 8; r++ {
		rank := 7 - r
		file := 0
		for _, c := range []byte(ranks[r]) {
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			p, ok := pieceFromLetter[c]
			if !ok || file >= 8 {
				return nil, ErrBadPlacement
			}
			pos.placePiece(p, bitboard.RankFile(rank, file))
			file++
		}
		if file != 8 {
			return nil, ErrBadPlacement
		}
	}

	switch fields[1] {
	case "w":
		pos.stm = bitboard.White
	case "b":
		pos.stm = bitboard.Black
	default:
		return nil, ErrBadSideToMove
	}

	var castling uint8
	if fields[2] != "-" {
		for _, c := range []byte(fields[2]) {
			switch c {
			case 'K':
				castling |= WhiteKingside
			case 'Q':
				castling |= WhiteQueenside
			case 'k':
				castling |= BlackKingside
			case 'q':
				castling |= BlackQueenside
			default:
				return nil, ErrBadCastling
			}
		}
	}

	ep := bitboard.NoSquare
	if fields[3] != "-" {
		if len(fields[3]) != 2 || fields[3][0] < 'a' || fields[3][0] > 'h' || fields[3][1] < '1' || fields[3][1] > '8' {
			return nil, ErrBadEnPassant
		}
		ep = bitboard.RankFile(int(fields[3][1]-'1'), int(fields[3][0]-'a'))
	}

	halfMove, err := strconv.Atoi(fields[4])
	if err != nil || halfMove < 0 {
		return nil, ErrBadCounter
	}
	fullMove, err := strconv.Atoi(fields[5])
	if err != nil || fullMove < 1 {
		return nil, ErrBadCounter
	}

	pos.statePly = 0
	pos.states[0] = StateInfo{
		enpassant:      ep,
		castlingRights: castling,
		halfMoveClock:  uint8(halfMove),
		captured:       bitboard.NoPiece,
	}
	pos.fullMoveCounter = uint16(fullMove)
	pos.states[0].hashKey = computeHash(pos)
	pos.history = append(pos.history[:0], pos.states[0].hashKey)

	return pos, nil
}

// String renders the position as a standard six-field FEN string.
func (pos *Position) String() string {
	var sb strings.Builder
	for r := 7; r >= 0; r-- {
		empty := 0
		for f := 0; f < 8; f++ {
			p := pos.board[bitboard.RankFile(r, f)]
			if p == bitboard.NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(p.Letter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if r > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if pos.stm == bitboard.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	rights := pos.state().castlingRights
	if rights == 0 {
		sb.WriteByte('-')
	} else {
		if rights&WhiteKingside != 0 {
			sb.WriteByte('K')
		}
		if rights&WhiteQueenside != 0 {
			sb.WriteByte('Q')
		}
		if rights&BlackKingside != 0 {
			sb.WriteByte('k')
		}
		if rights&BlackQueenside != 0 {
			sb.WriteByte('q')
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(pos.state().enpassant.String())

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(int(pos.state().halfMoveClock)))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(int(pos.fullMoveCounter)))

	return sb.String()
}
