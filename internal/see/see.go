// Package see implements the Static Exchange Evaluator: the material
// gain or loss of a capture sequence on a single target square, with
// x-ray re-inclusion of sliders uncovered as attackers are peeled off.
package see

import (
	"github.com/Maverick-KVB37/VIONYX/internal/bitboard"
	"github.com/Maverick-KVB37/VIONYX/internal/position"
)

// Value is the SEE piece-value table (distinct from any evaluation
// weights): Pawn, Knight, Bishop, Rook, Queen, King.
var Value = [6]int{100, 300, 300, 500, 900, 50000}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// moveGain returns the material swing of capturing a piece of type
// targetType (NoPieceType for a non-capture), accounting for promotion (a
// promoting "capture" of the piece it replaces is valued as queen, minus
// the pawn that disappears).
func moveGain(targetType bitboard.PieceType, promoting bool) int {
	v := 0
	if targetType != bitboard.NoPieceType {
		v = Value[targetType]
	}
	if promoting {
		v += Value[bitboard.Queen] - Value[bitboard.Pawn]
	}
	return v
}

// Evaluate returns the static exchange evaluation of the capture/move m:
// the net material swing of playing out the full sequence of minimum-
// valued attackers alternating sides on m.To(), including x-rays
// re-exposed as sliders are peeled away from the target square.
func Evaluate(pos *position.Position, m position.Move) int {
	to := m.To()
	from := m.From()
	us := pos.SideToMove()

	var targetType bitboard.PieceType
	if m.Flag() == position.EnPassant {
		targetType = bitboard.Pawn
	} else if target := pos.PieceAt(to); target != bitboard.NoPiece {
		targetType = target.Type()
	} else {
		targetType = bitboard.NoPieceType
	}

	// occ[c] tracks each color's remaining occupancy as attackers are
	// peeled off; all is their union and drives slider re-queries.
	var occ [2]bitboard.Bitboard
	occ[bitboard.White] = pos.Occupancy(bitboard.White)
	occ[bitboard.Black] = pos.Occupancy(bitboard.Black)
	all := occ[bitboard.White] | occ[bitboard.Black]

	attackerType := pos.PieceAt(from).Type()
	occ[us] &^= from.Bb()
	all &^= from.Bb()

	gain := make([]int, 1, 32)
	gain[0] = moveGain(targetType, m.IsPromotion())
	side := us.Opposite()

	for {
		sq, pt, ok := smallestAttacker(pos, occ, all, to, side)
		if !ok {
			break
		}
		gain = append(gain, Value[attackerType]-gain[len(gain)-1])
		if max(-gain[len(gain)-2], gain[len(gain)-1]) < 0 {
			break
		}
		occ[side] &^= sq.Bb()
		all &^= sq.Bb()
		attackerType = pt
		side = side.Opposite()
	}

	for d := len(gain) - 1; d >= 1; d-- {
		gain[d-1] = -max(-gain[d-1], gain[d])
	}
	return gain[0]
}

// smallestAttacker returns the least valuable piece of color side that
// attacks `to` given the simulated occupancy, recomputing slider attacks
// fresh from `all` each call so newly uncovered x-ray attackers are found
// automatically.
func smallestAttacker(pos *position.Position, occ [2]bitboard.Bitboard, all bitboard.Bitboard, to bitboard.Square, side bitboard.Color) (bitboard.Square, bitboard.PieceType, bool) {
	ours := occ[side]

	if att := bitboard.PawnAttacks[side.Opposite()][to] & ours & pos.Pieces(side, bitboard.Pawn); att != 0 {
		return att.LSB(), bitboard.Pawn, true
	}
	if att := bitboard.KnightAttacks[to] & ours & pos.Pieces(side, bitboard.Knight); att != 0 {
		return att.LSB(), bitboard.Knight, true
	}
	bishopAtt := bitboard.BishopAttacks(to, all)
	if att := bishopAtt & ours & pos.Pieces(side, bitboard.Bishop); att != 0 {
		return att.LSB(), bitboard.Bishop, true
	}
	rookAtt := bitboard.RookAttacks(to, all)
	if att := rookAtt & ours & pos.Pieces(side, bitboard.Rook); att != 0 {
		return att.LSB(), bitboard.Rook, true
	}
	if att := (bishopAtt | rookAtt) & ours & pos.Pieces(side, bitboard.Queen); att != 0 {
		return att.LSB(), bitboard.Queen, true
	}
	if att := bitboard.KingAttacks[to] & ours & pos.Pieces(side, bitboard.King); att != 0 {
		return att.LSB(), bitboard.King, true
	}
	return bitboard.NoSquare, bitboard.NoPieceType, false
}

// Ge is a fast pre-filter for "SEE(m) >= threshold" that short-circuits on
// an obvious material-swing bound before falling back to the full
// swap-off loop.
func Ge(pos *position.Position, m position.Move, threshold int) bool {
	if m.Flag() == position.KingCastle || m.Flag() == position.QueenCastle {
		return threshold <= 0
	}

	var targetType bitboard.PieceType
	if target := pos.PieceAt(m.To()); target != bitboard.NoPiece {
		targetType = target.Type()
	} else if m.Flag() == position.EnPassant {
		targetType = bitboard.Pawn
	} else {
		targetType = bitboard.NoPieceType
	}
	targetValue := moveGain(targetType, m.IsPromotion())

	// Best case: we just win the target and lose nothing further.
	if targetValue < threshold {
		return false
	}
	movingValue := Value[pos.PieceAt(m.From()).Type()]
	// Worst case: we also lose our own moving piece for nothing further.
	if targetValue-movingValue >= threshold {
		return true
	}
	return Evaluate(pos, m) >= threshold
}
