package search

import (
	"github.com/Maverick-KVB37/VIONYX/internal/bitboard"
	"github.com/Maverick-KVB37/VIONYX/internal/position"
)

// Extensions below mirror the shape of the original engine's pruning
// module: futility and late-move pruning are enabled, the rest are fully
// implemented but gated off, kept as working code rather than deleted so
// a future tuning pass can flip them on without rewriting them.
const (
	enableFutility        = true
	enableLMP             = true
	enableLMR             = false
	enableNullMove        = false
	enableRazoring        = false
	enableReverseFutility = false
)

// futilityMargin is a flat margin, independent of remaining depth, added
// to the static score when deciding whether a move near the search
// frontier is too far behind to bother searching.
const futilityMargin = 100

// deltaMargin is quiescence's node-level delta-pruning cutoff: if even
// the largest plausible material swing on the board can't drag the
// static eval back up to alpha, the whole node is hopeless and the
// move loop is skipped outright. Set to 1225 centipawns, more than a
// queen's value plus a pawn (950+100 in materialValue), matching the
// original engine's DELTA_MARGIN.
const deltaMargin = 1225

// lmpMargin[depth] bounds how many quiet moves are tried at shallow
// depth before the rest are skipped outright, on the premise that if the
// first several quiets didn't help, the fortieth won't either.
var lmpMargin = [...]int{0, 8, 12, 18, 25, 34}

// isFutile reports whether a move can be skipped because, even if it
// lands, the position can't realistically cross alpha: static eval plus
// the material the move captures plus a margin is still below alpha.
// The main search applies it to quiet moves at depth <= 2; quiescence
// applies it to its captures.
func isFutile(pos *position.Position, static, alpha int, m position.Move) bool {
	if !enableFutility {
		return false
	}
	if m.IsPromotion() || pos.InCheck() {
		return false
	}
	gain := 0
	if captured := pos.PieceAt(m.To()); captured != bitboard.NoPiece {
		gain = materialValue[captured.Type()]
	}
	return static+gain+futilityMargin < alpha
}

// lmpLimit returns how many quiet moves to try at this remaining depth
// before late-move pruning skips the rest; a depth outside the table
// means no pruning applies.
func lmpLimit(depth int) (int, bool) {
	if !enableLMP || depth <= 0 || depth >= len(lmpMargin) {
		return 0, false
	}
	return lmpMargin[depth], true
}

// lmrReduction returns the depth reduction late-move reductions would
// apply to the moveIndex-th move searched at this depth. Unused while
// enableLMR is false, but implemented so turning it on is a one-line
// change.
func lmrReduction(depth, moveIndex int) int {
	if !enableLMR || depth < 3 || moveIndex < 4 {
		return 0
	}
	r := 1
	if moveIndex > 8 {
		r = 2
	}
	if r > depth-1 {
		r = depth - 1
	}
	return r
}

// nullMoveReduction returns the depth reduction a null-move search would
// use. Unused while enableNullMove is false.
func nullMoveReduction(depth int) int {
	r := 2
	if depth > 6 {
		r = 3
	}
	return r
}

// razoringMargin is how far below alpha the static eval must fall before
// razoring drops straight into quiescence. Unused while enableRazoring
// is false.
const razoringMargin = 300

// reverseFutilityMargin is per-ply material static eval must exceed beta
// by before reverse futility pruning cuts off without searching further.
// Unused while enableReverseFutility is false.
const reverseFutilityMargin = 120

var materialValue = [6]int{100, 320, 330, 500, 950, 0}
