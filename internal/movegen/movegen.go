// Package movegen generates pseudo-legal moves for a position: legal
// except possibly leaving the mover's own king in check, which the search
// filters by making the move and testing Position.IsSquareAttacked on the
// mover's king square.
package movegen

import (
	"github.com/Maverick-KVB37/VIONYX/internal/bitboard"
	"github.com/Maverick-KVB37/VIONYX/internal/position"
)

// MaxMoves bounds a single position's pseudo-legal move count; no legal
// chess position exceeds it.
const MaxMoves = 256

// List is a fixed-capacity, stack-allocatable move list scoped to a
// single search node.
type List struct {
	moves [MaxMoves]position.Move
	n     int
}

// Add appends a move.
func (l *List) Add(m position.Move) {
	l.moves[l.n] = m
	l.n++
}

// Moves returns the slice of generated moves.
func (l *List) Moves() []position.Move { return l.moves[:l.n] }

// Len returns how many moves were generated.
func (l *List) Len() int { return l.n }

// GenerateAll produces every pseudo-legal move for the side to move.
func GenerateAll(pos *position.Position, list *List) {
	us := pos.SideToMove()
	them := us.Opposite()
	friendly := pos.Occupancy(us)
	enemy := pos.Occupancy(them)
	occAll := pos.OccupancyAll()

	genPawnMoves(pos, us, enemy, occAll, list, true)
	genKnightMoves(pos, us, friendly, enemy, list, true)
	genSliderMoves(pos, us, bitboard.Bishop, friendly, enemy, occAll, list, true)
	genSliderMoves(pos, us, bitboard.Rook, friendly, enemy, occAll, list, true)
	genSliderMoves(pos, us, bitboard.Queen, friendly, enemy, occAll, list, true)
	genKingMoves(pos, us, friendly, enemy, list, true)
	genCastling(pos, us, occAll, list)
}

// GenerateCaptures produces only captures, en-passant captures, and
// promotions (including under-promotions) for the side to move: the
// "violent" subset quiescence search expands so it can settle tactics
// without exploding into the full quiet-move tree.
func GenerateCaptures(pos *position.Position, list *List) {
	us := pos.SideToMove()
	them := us.Opposite()
	friendly := pos.Occupancy(us)
	enemy := pos.Occupancy(them)
	occAll := pos.OccupancyAll()

	genPawnMoves(pos, us, enemy, occAll, list, false)
	genKnightMoves(pos, us, friendly, enemy, list, false)
	genSliderMoves(pos, us, bitboard.Bishop, friendly, enemy, occAll, list, false)
	genSliderMoves(pos, us, bitboard.Rook, friendly, enemy, occAll, list, false)
	genSliderMoves(pos, us, bitboard.Queen, friendly, enemy, occAll, list, false)
	genKingMoves(pos, us, friendly, enemy, list, false)
}

func addQuietsAndCaptures(list *List, from bitboard.Square, targets, enemy bitboard.Bitboard, includeQuiets bool) {
	if includeQuiets {
		quiets := targets &^ enemy
		for quiets != 0 {
			var to bitboard.Square
			to, quiets = quiets.PopLSB()
			list.Add(position.NewMove(from, to, position.Quiet))
		}
	}
	caps := targets & enemy
	for caps != 0 {
		var to bitboard.Square
		to, caps = caps.PopLSB()
		list.Add(position.NewMove(from, to, position.Capture))
	}
}

func genKnightMoves(pos *position.Position, us bitboard.Color, friendly, enemy bitboard.Bitboard, list *List, includeQuiets bool) {
	knights := pos.Pieces(us, bitboard.Knight)
	for knights != 0 {
		var from bitboard.Square
		from, knights = knights.PopLSB()
		targets := bitboard.KnightAttacks[from] &^ friendly
		addQuietsAndCaptures(list, from, targets, enemy, includeQuiets)
	}
}

func genKingMoves(pos *position.Position, us bitboard.Color, friendly, enemy bitboard.Bitboard, list *List, includeQuiets bool) {
	from := pos.KingSquare(us)
	targets := bitboard.KingAttacks[from] &^ friendly
	addQuietsAndCaptures(list, from, targets, enemy, includeQuiets)
}

func genSliderMoves(pos *position.Position, us bitboard.Color, pt bitboard.PieceType, friendly, enemy, occAll bitboard.Bitboard, list *List, includeQuiets bool) {
	pieces := pos.Pieces(us, pt)
	for pieces != 0 {
		var from bitboard.Square
		from, pieces = pieces.PopLSB()
		var attacks bitboard.Bitboard
		switch pt {
		case bitboard.Bishop:
			attacks = bitboard.BishopAttacks(from, occAll)
		case bitboard.Rook:
			attacks = bitboard.RookAttacks(from, occAll)
		default:
			attacks = bitboard.QueenAttacks(from, occAll)
		}
		addQuietsAndCaptures(list, from, attacks&^friendly, enemy, includeQuiets)
	}
}

var promotionFlags = [4]position.MoveFlag{
	position.QueenPromotion, position.RookPromotion, position.BishopPromotion, position.KnightPromotion,
}
var promotionCaptureFlags = [4]position.MoveFlag{
	position.QueenPromoCapture, position.RookPromoCapture, position.BishopPromoCapture, position.KnightPromoCapture,
}

func genPawnMoves(pos *position.Position, us bitboard.Color, enemy, occAll bitboard.Bitboard, list *List, includeQuiets bool) {
	pawns := pos.Pieces(us, bitboard.Pawn)
	var forward func(bitboard.Bitboard) bitboard.Bitboard
	var promoRank bitboard.Bitboard
	var homeRank bitboard.Bitboard
	if us == bitboard.White {
		forward = bitboard.North
		promoRank = bitboard.Rank8Bb
		homeRank = bitboard.RankBb(1)
	} else {
		forward = bitboard.South
		promoRank = bitboard.Rank1Bb
		homeRank = bitboard.RankBb(6)
	}

	for p := pawns; p != 0; {
		var from bitboard.Square
		from, p = p.PopLSB()
		fromBb := from.Bb()

		single := forward(fromBb) &^ occAll
		if single != 0 {
			to := single.LSB()
			if single&promoRank != 0 {
				for _, fl := range promotionFlags {
					list.Add(position.NewMove(from, to, fl))
				}
			} else if includeQuiets {
				list.Add(position.NewMove(from, to, position.Quiet))
				if fromBb&homeRank != 0 {
					double := forward(single) &^ occAll
					if double != 0 {
						list.Add(position.NewMove(from, double.LSB(), position.DoublePush))
					}
				}
			}
		}

		attacks := bitboard.PawnAttacks[us][from]
		captures := attacks & enemy
		for captures != 0 {
			var to bitboard.Square
			to, captures = captures.PopLSB()
			if to.Bb()&promoRank != 0 {
				for _, fl := range promotionCaptureFlags {
					list.Add(position.NewMove(from, to, fl))
				}
			} else {
				list.Add(position.NewMove(from, to, position.Capture))
			}
		}

		if ep := pos.EnPassantSquare(); ep != bitboard.NoSquare {
			if attacks&ep.Bb() != 0 {
				list.Add(position.NewMove(from, ep, position.EnPassant))
			}
		}
	}
}

func genCastling(pos *position.Position, us bitboard.Color, occAll bitboard.Bitboard, list *List) {
	rights := pos.CastlingRights()
	them := us.Opposite()

	if us == bitboard.White {
		if rights&position.WhiteKingside != 0 &&
			occAll&(bitboard.F1.Bb()|bitboard.G1.Bb()) == 0 &&
			!pos.IsSquareAttacked(bitboard.E1, them) &&
			!pos.IsSquareAttacked(bitboard.F1, them) &&
			!pos.IsSquareAttacked(bitboard.G1, them) {
			list.Add(position.NewMove(bitboard.E1, bitboard.G1, position.KingCastle))
		}
		if rights&position.WhiteQueenside != 0 &&
			occAll&(bitboard.B1.Bb()|bitboard.C1.Bb()|bitboard.D1.Bb()) == 0 &&
			!pos.IsSquareAttacked(bitboard.E1, them) &&
			!pos.IsSquareAttacked(bitboard.D1, them) &&
			!pos.IsSquareAttacked(bitboard.C1, them) {
			list.Add(position.NewMove(bitboard.E1, bitboard.C1, position.QueenCastle))
		}
		return
	}

	if rights&position.BlackKingside != 0 &&
		occAll&(bitboard.F8.Bb()|bitboard.G8.Bb()) == 0 &&
		!pos.IsSquareAttacked(bitboard.E8, them) &&
		!pos.IsSquareAttacked(bitboard.F8, them) &&
		!pos.IsSquareAttacked(bitboard.G8, them) {
		list.Add(position.NewMove(bitboard.E8, bitboard.G8, position.KingCastle))
	}
	if rights&position.BlackQueenside != 0 &&
		occAll&(bitboard.B8.Bb()|bitboard.C8.Bb()|bitboard.D8.Bb()) == 0 &&
		!pos.IsSquareAttacked(bitboard.E8, them) &&
		!pos.IsSquareAttacked(bitboard.D8, them) &&
		!pos.IsSquareAttacked(bitboard.C8, them) {
		list.Add(position.NewMove(bitboard.E8, bitboard.C8, position.QueenCastle))
	}
}

// IsPseudoLegal reports whether m is among the pseudo-legal moves
// generated for pos. Used when replaying transposition-table best moves
// into a principal variation, to validate a cached move before playing it.
func IsPseudoLegal(pos *position.Position, m position.Move) bool {
	if m == position.NoMove {
		return false
	}
	var list List
	GenerateAll(pos, &list)
	for _, cand := range list.Moves() {
		if cand == m {
			return true
		}
	}
	return false
}
