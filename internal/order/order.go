// Package order scores and sorts a move list so the search examines its
// most promising candidates first: the hash move, then killer quiets,
// then captures by descending SEE, then the remaining quiets.
package order

import (
	"github.com/Maverick-KVB37/VIONYX/internal/position"
	"github.com/Maverick-KVB37/VIONYX/internal/see"
)

// Score bands. A move's final score is one band plus a small in-band
// tiebreak so the bands themselves never overlap.
const (
	hashMoveScore  = 1_000_000
	killer0Score   = 900_000
	killer1Score   = 800_000
	captureBase    = 100_000
	quietBase      = 0
)

// Killers holds the (at most two) quiet moves that caused a beta cutoff
// at a given ply, most recent first.
type Killers struct {
	moves [2]position.Move
}

// Add records m as the newest killer at this ply, discarding the older
// of the previous two. A move already in slot 0 is not re-inserted.
func (k *Killers) Add(m position.Move) {
	if k.moves[0] == m {
		return
	}
	k.moves[1] = k.moves[0]
	k.moves[0] = m
}

// Match reports whether m is one of the two killers, and if so which.
func (k *Killers) Match(m position.Move) (slot int, ok bool) {
	if m == k.moves[0] {
		return 0, true
	}
	if m == k.moves[1] {
		return 1, true
	}
	return 0, false
}

// Scored pairs a move with its ordering score for sorting.
type Scored struct {
	Move  position.Move
	Score int
}

// Score assigns every move in moves its ordering score. hashMove is the
// move recorded for this position in the transposition table (NoMove if
// none); killers is the pair of quiet moves that cut off at this ply.
func Score(pos *position.Position, moves []position.Move, hashMove position.Move, killers *Killers) []Scored {
	scored := make([]Scored, len(moves))
	for i, m := range moves {
		scored[i] = Scored{Move: m, Score: scoreMove(pos, m, hashMove, killers)}
	}
	return scored
}

func scoreMove(pos *position.Position, m position.Move, hashMove position.Move, killers *Killers) int {
	if m == hashMove {
		return hashMoveScore
	}
	if m.IsCapture() {
		return captureBase + see.Evaluate(pos, m)
	}
	if killers != nil {
		if slot, ok := killers.Match(m); ok {
			if slot == 0 {
				return killer0Score
			}
			return killer1Score
		}
	}
	return quietBase
}

// Sort orders scored moves by descending score in place using insertion
// sort: move lists at a single node are small (tens of entries), so the
// O(n^2) worst case never matters and the sort is stable, which keeps
// generation order as the tiebreak among equally-scored moves.
func Sort(scored []Scored) {
	for i := 1; i < len(scored); i++ {
		cur := scored[i]
		j := i - 1
		for j >= 0 && scored[j].Score < cur.Score {
			scored[j+1] = scored[j]
			j--
		}
		scored[j+1] = cur
	}
}

// Next picks the remaining move with the highest score starting at index
// from, swaps it into position from, and returns it. This gives a
// selection-sort style one-move-at-a-time iterator over already-scored
// moves, so a caller that stops early never orders the moves it skips.
func Next(scored []Scored, from int) position.Move {
	best := from
	for i := from + 1; i < len(scored); i++ {
		if scored[i].Score > scored[best].Score {
			best = i
		}
	}
	scored[from], scored[best] = scored[best], scored[from]
	return scored[from].Move
}
