// Package eval is the engine's static position evaluator: tapered
// material and piece-square scoring, blended between middlegame and
// endgame tables by remaining material, returned from the side-to-move's
// point of view.
package eval

import (
	"github.com/Maverick-KVB37/VIONYX/internal/bitboard"
	"github.com/Maverick-KVB37/VIONYX/internal/position"
)

// score is a pair of middlegame/endgame centipawn values, tapered
// together at the end by the position's game phase.
type score struct {
	mg, eg int
}

func (s score) add(o score) score { return score{s.mg + o.mg, s.eg + o.eg} }
func (s score) sub(o score) score { return score{s.mg - o.mg, s.eg - o.eg} }
func (s score) neg() score        { return score{-s.mg, -s.eg} }

// pieceValue holds material worth by PieceType, indexed Pawn..King.
var pieceValue = [6]score{
	{100, 120},  // Pawn
	{320, 300},  // Knight
	{330, 310},  // Bishop
	{500, 520},  // Rook
	{950, 960},  // Queen
	{0, 0},      // King (material value excluded; scored by its piece-square table only)
}

// phaseWeight gives each piece type's contribution toward the 0..24
// game-phase counter, following the common convention where the starting
// material totals 24.
var phaseWeight = [6]int{0, 1, 1, 2, 4, 0}

const totalPhase = 24

// pst holds piece-square tables from White's perspective, square A1..H8,
// middlegame and endgame variants. Black's values are read by mirroring
// the square vertically.
var pstMG, pstEG [6][64]int

func init() {
	// Pawns: discourage central backwardness, reward advance and center.
	pawnMG := [64]int{
		0, 0, 0, 0, 0, 0, 0, 0,
		5, 10, 10, -20, -20, 10, 10, 5,
		5, -5, -10, 0, 0, -10, -5, 5,
		0, 0, 0, 20, 20, 0, 0, 0,
		5, 5, 10, 25, 25, 10, 5, 5,
		10, 10, 20, 30, 30, 20, 10, 10,
		50, 50, 50, 50, 50, 50, 50, 50,
		0, 0, 0, 0, 0, 0, 0, 0,
	}
	pawnEG := [64]int{
		0, 0, 0, 0, 0, 0, 0, 0,
		10, 10, 10, 10, 10, 10, 10, 10,
		10, 10, 10, 10, 10, 10, 10, 10,
		20, 20, 20, 20, 20, 20, 20, 20,
		30, 30, 30, 30, 30, 30, 30, 30,
		50, 50, 50, 50, 50, 50, 50, 50,
		80, 80, 80, 80, 80, 80, 80, 80,
		0, 0, 0, 0, 0, 0, 0, 0,
	}
	knight := [64]int{
		-50, -40, -30, -30, -30, -30, -40, -50,
		-40, -20, 0, 5, 5, 0, -20, -40,
		-30, 5, 10, 15, 15, 10, 5, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 5, 15, 20, 20, 15, 5, -30,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-50, -40, -30, -30, -30, -30, -40, -50,
	}
	bishop := [64]int{
		-20, -10, -10, -10, -10, -10, -10, -20,
		-10, 5, 0, 0, 0, 0, 5, -10,
		-10, 10, 10, 10, 10, 10, 10, -10,
		-10, 0, 10, 10, 10, 10, 0, -10,
		-10, 5, 5, 10, 10, 5, 5, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -10, -10, -10, -10, -20,
	}
	rook := [64]int{
		0, 0, 0, 5, 5, 0, 0, 0,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		5, 10, 10, 10, 10, 10, 10, 5,
		0, 0, 0, 0, 0, 0, 0, 0,
	}
	queen := [64]int{
		-20, -10, -10, -5, -5, -10, -10, -20,
		-10, 0, 5, 0, 0, 0, 0, -10,
		-10, 5, 5, 5, 5, 5, 0, -10,
		0, 0, 5, 5, 5, 5, 0, -5,
		-5, 0, 5, 5, 5, 5, 0, -5,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -5, -5, -10, -10, -20,
	}
	kingMG := [64]int{
		20, 30, 10, 0, 0, 10, 30, 20,
		20, 20, 0, 0, 0, 0, 20, 20,
		-10, -20, -20, -20, -20, -20, -20, -10,
		-20, -30, -30, -40, -40, -30, -30, -20,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
	}
	kingEG := [64]int{
		-50, -30, -30, -30, -30, -30, -30, -50,
		-30, -30, 0, 0, 0, 0, -30, -30,
		-30, -10, 20, 30, 30, 20, -10, -30,
		-30, -10, 30, 40, 40, 30, -10, -30,
		-30, -10, 30, 40, 40, 30, -10, -30,
		-30, -10, 20, 30, 30, 20, -10, -30,
		-30, -20, -10, 0, 0, -10, -20, -30,
		-50, -40, -30, -20, -20, -30, -40, -50,
	}

	for sq := 0; sq < 64; sq++ {
		pstMG[bitboard.Pawn][sq] = pawnMG[sq]
		pstEG[bitboard.Pawn][sq] = pawnEG[sq]
		pstMG[bitboard.Knight][sq] = knight[sq]
		pstEG[bitboard.Knight][sq] = knight[sq]
		pstMG[bitboard.Bishop][sq] = bishop[sq]
		pstEG[bitboard.Bishop][sq] = bishop[sq]
		pstMG[bitboard.Rook][sq] = rook[sq]
		pstEG[bitboard.Rook][sq] = rook[sq]
		pstMG[bitboard.Queen][sq] = queen[sq]
		pstEG[bitboard.Queen][sq] = queen[sq]
		pstMG[bitboard.King][sq] = kingMG[sq]
		pstEG[bitboard.King][sq] = kingEG[sq]
	}
}

// mirror returns sq reflected across the board's horizontal centerline,
// so Black's piece-square lookups can reuse White's tables.
func mirror(sq bitboard.Square) bitboard.Square {
	return bitboard.RankFile(7-sq.Rank(), sq.File())
}

// Evaluate returns a static score for pos from the side-to-move's point
// of view: positive favors the mover, negative favors the opponent.
func Evaluate(pos *position.Position) int {
	var white, black score
	phase := 0

	for pt := bitboard.Pawn; pt <= bitboard.King; pt++ {
		for bb := pos.Pieces(bitboard.White, pt); bb != 0; {
			var sq bitboard.Square
			sq, bb = bb.PopLSB()
			white = white.add(pieceValue[pt])
			white.mg += pstMG[pt][sq]
			white.eg += pstEG[pt][sq]
			phase += phaseWeight[pt]
		}
		for bb := pos.Pieces(bitboard.Black, pt); bb != 0; {
			var sq bitboard.Square
			sq, bb = bb.PopLSB()
			black = black.add(pieceValue[pt])
			black.mg += pstMG[pt][mirror(sq)]
			black.eg += pstEG[pt][mirror(sq)]
			phase += phaseWeight[pt]
		}
	}

	total := white.sub(black)
	total = total.add(bishopPairBonus(pos))

	if phase > totalPhase {
		phase = totalPhase
	}
	tapered := (total.mg*phase + total.eg*(totalPhase-phase)) / totalPhase

	if pos.SideToMove() == bitboard.Black {
		tapered = -tapered
	}
	return tapered
}

// bishopPairBonus rewards holding both bishops with a small bonus that
// grows slightly toward the endgame (30 middlegame, 40 endgame).
func bishopPairBonus(pos *position.Position) score {
	var s score
	if pos.Pieces(bitboard.White, bitboard.Bishop).PopCount() >= 2 {
		s = s.add(score{30, 40})
	}
	if pos.Pieces(bitboard.Black, bitboard.Bishop).PopCount() >= 2 {
		s = s.sub(score{30, 40})
	}
	return s
}
