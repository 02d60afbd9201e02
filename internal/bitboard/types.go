// Package bitboard holds the lowest layer of the engine: squares, colors,
// pieces, 64-bit bitboards and the attack tables (including magic
// bitboards for sliding pieces) that every other package is built on.
package bitboard

// Square is a board square, 0..63, little-endian rank-file mapping:
// A1=0, H1=7, A8=56, H8=63.
type Square int8

// NoSquare is the sentinel for "no square" (e.g. no en-passant target).
const NoSquare Square = 64

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// Rank returns the 0-based rank (0=rank 1 .. 7=rank 8) of the square.
func (s Square) Rank() int { return int(s) / 8 }

// File returns the 0-based file (0=file a .. 7=file h) of the square.
func (s Square) File() int { return int(s) % 8 }

// RankFile builds a Square from a 0-based rank and file.
func RankFile(rank, file int) Square { return Square(rank*8 + file) }

// Bb returns the singleton bitboard with only this square's bit set.
func (s Square) Bb() Bitboard { return Bitboard(1) << uint(s) }

var fileNames = "abcdefgh"

// String renders a square in algebraic notation, e.g. "e4". NoSquare
// renders as "-".
func (s Square) String() string {
	if s == NoSquare {
		return "-"
	}
	return string([]byte{fileNames[s.File()], byte('1' + s.Rank())})
}

// Color is White or Black.
type Color int8

const (
	White Color = iota
	Black
)

// Opposite flips the color.
func (c Color) Opposite() Color { return c ^ 1 }

// PieceType is one of the six chess piece kinds, or NoPieceType.
type PieceType int8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NoPieceType
)

var pieceTypeLetters = "pnbrqk"

// Letter returns the lowercase FEN letter for the piece type.
func (pt PieceType) Letter() byte { return pieceTypeLetters[pt] }

// Piece is a colored piece, numbered color*6+type, 0..11; None=12.
type Piece int8

// NoPiece is the sentinel for an empty square.
const NoPiece Piece = 12

// MakePiece composes a Piece from a Color and a PieceType.
func MakePiece(c Color, pt PieceType) Piece { return Piece(int(c)*6 + int(pt)) }

// Color returns the piece's color. Only valid if p != NoPiece.
func (p Piece) Color() Color { return Color(p / 6) }

// Type returns the piece's type. Only valid if p != NoPiece.
func (p Piece) Type() PieceType { return PieceType(p % 6) }

var pieceLetters = "PNBRQKpnbrqk"

// Letter returns the FEN letter for the piece (uppercase for White).
func (p Piece) Letter() byte {
	if p == NoPiece {
		return '.'
	}
	return pieceLetters[p]
}
