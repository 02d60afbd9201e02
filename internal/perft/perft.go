// Package perft counts leaf nodes of the legal move tree to a fixed
// depth, the standard move-generator correctness and performance
// benchmark: its counts for the standard starting position and a
// handful of well-known test positions are published and exact.
package perft

import (
	"github.com/Maverick-KVB37/VIONYX/internal/movegen"
	"github.com/Maverick-KVB37/VIONYX/internal/position"
)

// Count returns the number of leaf positions reachable from pos in
// exactly depth plies, restricted to legal lines: a move that leaves the
// mover's own king in check is generated pseudo-legally but excluded
// here by testing whether the mover's king is attacked after playing it.
func Count(pos *position.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	var list movegen.List
	movegen.GenerateAll(pos, &list)

	var nodes uint64
	for _, m := range list.Moves() {
		pos.MakeMove(m)
		mover := pos.SideToMove().Opposite()
		if !pos.IsSquareAttacked(pos.KingSquare(mover), pos.SideToMove()) {
			nodes += Count(pos, depth-1)
		}
		pos.UnmakeMove(m)
	}
	return nodes
}

// Divide returns, for each legal move at the root, the perft count of
// the remaining depth-1 plies beneath it — useful for isolating which
// branch of a move generator disagrees with a reference count.
func Divide(pos *position.Position, depth int) map[string]uint64 {
	result := make(map[string]uint64)
	if depth <= 0 {
		return result
	}

	var list movegen.List
	movegen.GenerateAll(pos, &list)

	for _, m := range list.Moves() {
		pos.MakeMove(m)
		mover := pos.SideToMove().Opposite()
		if !pos.IsSquareAttacked(pos.KingSquare(mover), pos.SideToMove()) {
			result[m.UCI()] = Count(pos, depth-1)
		}
		pos.UnmakeMove(m)
	}
	return result
}
