// Package zobrist provides deterministic 64-bit keys for incremental
// position hashing: one key per (piece,square), one per castling-rights
// subset, one per en-passant file, and one side-to-move key.
package zobrist

import "github.com/Maverick-KVB37/VIONYX/internal/bitboard"

// PieceSquare holds one key per (piece, square) pair.
var PieceSquare [12][64]uint64

// Castling holds one key per subset of {WK,WQ,BK,BQ} (16 entries).
var Castling [16]uint64

// EnPassantFile holds one key per file, XORed in when an en-passant
// capture is actually available.
var EnPassantFile [8]uint64

// SideToMove is XORed into the hash whenever it is Black to move.
var SideToMove uint64

// rngState is a single-state xorshift32 generator (period 2^32-1,
// Marsaglia constants), seeded with a fixed constant so the produced
// tables are identical on every run of the same binary.
type rngState struct{ x uint32 }

var rng = rngState{x: 0x1D2C3A4F}

func (s *rngState) next32() uint32 {
	x := s.x
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	s.x = x
	return x
}

// next64 combines four 16-bit draws into one 64-bit key, which spreads
// a single xorshift32 generator's output across all 64 bits more evenly
// than two raw 32-bit draws would.
func (s *rngState) next64() uint64 {
	n1 := uint64(s.next32()) & 0xFFFF
	n2 := uint64(s.next32()) & 0xFFFF
	n3 := uint64(s.next32()) & 0xFFFF
	n4 := uint64(s.next32()) & 0xFFFF
	return n1 | n2<<16 | n3<<32 | n4<<48
}

func init() {
	for p := bitboard.Piece(0); p < 12; p++ {
		for sq := 0; sq < 64; sq++ {
			PieceSquare[p][sq] = rng.next64()
		}
	}
	for i := range Castling {
		Castling[i] = rng.next64()
	}
	for f := range EnPassantFile {
		EnPassantFile[f] = rng.next64()
	}
	SideToMove = rng.next64()
}
