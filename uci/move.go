package uci

import (
	"github.com/Maverick-KVB37/VIONYX/internal/bitboard"
	"github.com/Maverick-KVB37/VIONYX/internal/movegen"
	"github.com/Maverick-KVB37/VIONYX/internal/position"
)

type listMoves []position.Move

func generateMoves(pos *position.Position) listMoves {
	var list movegen.List
	movegen.GenerateAll(pos, &list)
	return append(listMoves(nil), list.Moves()...)
}

func parseSquare(s string) (bitboard.Square, bool) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return bitboard.NoSquare, false
	}
	return bitboard.RankFile(int(s[1]-'1'), int(s[0]-'a')), true
}

func promoLetter(m position.Move) byte {
	switch m.Flag().PromotedType() {
	case bitboard.Knight:
		return 'n'
	case bitboard.Bishop:
		return 'b'
	case bitboard.Rook:
		return 'r'
	default:
		return 'q'
	}
}
