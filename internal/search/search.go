// Package search implements principal-variation alpha-beta search over a
// position: iterative deepening driven by a soft/hard time budget,
// quiescence search to settle tactics at the frontier, and a
// transposition table to reuse prior work across transpositions.
package search

import (
	"time"

	"github.com/Maverick-KVB37/VIONYX/internal/bitboard"
	"github.com/Maverick-KVB37/VIONYX/internal/eval"
	"github.com/Maverick-KVB37/VIONYX/internal/movegen"
	"github.com/Maverick-KVB37/VIONYX/internal/order"
	"github.com/Maverick-KVB37/VIONYX/internal/position"
	"github.com/Maverick-KVB37/VIONYX/internal/see"
	"github.com/Maverick-KVB37/VIONYX/internal/tt"
)

// maxPly bounds the killer table and iterative-deepening depth; no
// search in practice reaches it.
const maxPly = 64

// mateValue is the score assigned to the mating side at the mate node
// itself; scores within maxPly of it encode "mate in N" and get
// renormalized by ply both in the table (see tt.scoreToTT) and when
// reported to the UCI layer.
const mateValue = 32000

// infScore bounds the root alpha-beta window; comfortably above any
// possible mateValue-derived score so window math never overflows.
const infScore = mateValue + maxPly + 1

// nodeCheckInterval is how often (in nodes) the search polls the time
// manager; frequent enough to honor a hard deadline closely, rare enough
// that time.Since isn't on the hot path of every node.
const nodeCheckInterval = 2048

// Searcher runs iterative-deepening PVS against a transposition table.
// A Searcher is reused across searches (NewSearch bumps the table's
// generation); it is not safe for concurrent use by more than one
// search at a time.
type Searcher struct {
	tt      *tt.Table
	killers [maxPly]order.Killers
	nodes   uint64
	rootPly int
	tm      *timeManager
	aborted bool
}

// New builds a Searcher backed by the given transposition table.
func New(table *tt.Table) *Searcher {
	return &Searcher{tt: table}
}

// Stop asks an in-progress Search to abort at its next node-count poll.
func (s *Searcher) Stop() {
	if s.tm != nil {
		s.tm.Stop()
	}
}

// Nodes returns how many nodes the most recent Search visited.
func (s *Searcher) Nodes() uint64 { return s.nodes }

// Search runs iterative deepening from pos under limits, invoking info
// (if non-nil) after every completed depth, and returns the best move
// found. pos is left unmodified (every make is paired with an unmake).
func (s *Searcher) Search(pos *position.Position, limits Limits, info func(Info)) position.Move {
	s.nodes = 0
	s.aborted = false
	s.rootPly = pos.Ply()
	s.tm = newTimeManager(limits, int(pos.SideToMove()))
	s.tt.NewSearch()
	for i := range s.killers {
		s.killers[i] = order.Killers{}
	}

	maxDepth := limits.Depth
	if maxDepth <= 0 || maxDepth > maxPly {
		maxDepth = maxPly
	}

	var bestMove position.Move
	for depth := 1; depth <= maxDepth; depth++ {
		if depth > 1 && !s.tm.shouldStartDepth() {
			break
		}

		score := s.negamax(pos, depth, 0, -infScore, infScore, true)
		if s.aborted && depth > 1 {
			break
		}

		pv := s.extractPV(pos, depth)
		if len(pv) > 0 {
			bestMove = pv[0]
		}
		if info != nil {
			info(makeInfo(depth, score, s.nodes, s.tm.elapsed(), pv))
		}

		if limits.Nodes > 0 && s.nodes >= limits.Nodes {
			break
		}
		if s.aborted {
			break
		}
	}
	return bestMove
}

func makeInfo(depth, score int, nodes uint64, elapsed time.Duration, pv []position.Move) Info {
	info := Info{Depth: depth, Nodes: nodes, Time: elapsed, Score: score}
	if score >= mateValue-maxPly {
		info.Mate = true
		info.Score = (mateValue - score + 1) / 2
	} else if score <= -(mateValue - maxPly) {
		info.Mate = true
		info.Score = -((mateValue + score + 1) / 2)
	}
	info.PV = make([]string, len(pv))
	for i, m := range pv {
		info.PV[i] = m.UCI()
	}
	return info
}

func hasNonPawnMaterial(pos *position.Position, c bitboard.Color) bool {
	return pos.Pieces(c, bitboard.Knight)|pos.Pieces(c, bitboard.Bishop)|
		pos.Pieces(c, bitboard.Rook)|pos.Pieces(c, bitboard.Queen) != 0
}

// pollTime increments the node counter and, every nodeCheckInterval
// nodes, checks the time manager's hard deadline.
func (s *Searcher) pollTime() {
	s.nodes++
	if s.nodes%nodeCheckInterval == 0 && s.tm.expired() {
		s.aborted = true
	}
}

// legalizeAfterMove reports whether the move just made was legal, i.e. did
// not leave the mover's own king in check, given pseudo-legal generation
// defers legality to this post-hoc test.
func legalizeAfterMove(pos *position.Position) bool {
	mover := pos.SideToMove().Opposite()
	return !pos.IsSquareAttacked(pos.KingSquare(mover), pos.SideToMove())
}

// negamax searches pos to the given remaining depth and returns a score
// from the side-to-move's point of view, using a principal-variation
// search: the first move at each node gets a full window, the rest a
// cheap null-window scout re-searched only if it threatens to raise
// alpha.
func (s *Searcher) negamax(pos *position.Position, depth, ply int, alpha, beta int, pvNode bool) int {
	s.pollTime()
	if s.aborted {
		return 0
	}

	if ply > 0 && (pos.FiftyMoveDraw() || pos.IsRepetitionDraw(ply)) {
		return 0
	}

	if depth <= 0 {
		return s.quiescence(pos, alpha, beta, ply)
	}

	origAlpha := alpha

	probe := s.tt.Probe(pos)
	var ttMove position.Move
	if probe.Found {
		ttMove = probe.BestMove
		if ply > 0 && probe.Depth >= depth {
			switch probe.Bound {
			case tt.Exact:
				return probe.Score
			case tt.LowerBound:
				if probe.Score > alpha {
					alpha = probe.Score
				}
			case tt.UpperBound:
				if probe.Score < beta {
					beta = probe.Score
				}
			}
			if alpha >= beta {
				return probe.Score
			}
		}
	}

	inCheck := pos.InCheck()
	staticEval := eval.Evaluate(pos)

	if enableReverseFutility && !inCheck && !pvNode && depth <= 3 {
		margin := reverseFutilityMargin * depth
		if staticEval-margin >= beta {
			return staticEval - margin
		}
	}

	if enableRazoring && !inCheck && !pvNode && depth <= 2 && staticEval+razoringMargin < alpha {
		if q := s.quiescence(pos, alpha, beta, ply); q < alpha {
			return q
		}
	}

	if enableNullMove && !inCheck && !pvNode && depth >= 3 && hasNonPawnMaterial(pos, pos.SideToMove()) {
		r := nullMoveReduction(depth)
		pos.MakeNullMove()
		score := -s.negamax(pos, depth-1-r, ply+1, -beta, -beta+1, false)
		pos.UnmakeNullMove()
		if s.aborted {
			return 0
		}
		if score >= beta {
			return beta
		}
	}

	var list movegen.List
	movegen.GenerateAll(pos, &list)
	scored := order.Score(pos, list.Moves(), ttMove, &s.killers[ply])
	order.Sort(scored)

	bestScore := -infScore
	bestMove := position.NoMove
	legalMoves := 0
	quietCount := 0

	for i := range scored {
		m := scored[i].Move
		tactical := m.IsCapture() || m.IsPromotion()

		if !tactical {
			quietCount++
			if limit, ok := lmpLimit(depth); ok && !pvNode && !inCheck && quietCount > limit && bestScore > -mateValue+maxPly {
				continue
			}
			if !pvNode && !inCheck && depth <= 2 && isFutile(pos, staticEval, alpha, m) {
				continue
			}
		}

		pos.MakeMove(m)
		if !legalizeAfterMove(pos) {
			pos.UnmakeMove(m)
			continue
		}
		legalMoves++

		newDepth := depth - 1
		var score int
		if legalMoves == 1 {
			score = -s.negamax(pos, newDepth, ply+1, -beta, -alpha, pvNode)
		} else {
			reduction := 0
			if !tactical {
				reduction = lmrReduction(depth, legalMoves)
			}
			score = -s.negamax(pos, newDepth-reduction, ply+1, -alpha-1, -alpha, false)
			if score > alpha && reduction > 0 {
				score = -s.negamax(pos, newDepth, ply+1, -alpha-1, -alpha, false)
			}
			if score > alpha && score < beta {
				score = -s.negamax(pos, newDepth, ply+1, -beta, -alpha, pvNode)
			}
		}
		pos.UnmakeMove(m)

		if s.aborted {
			return 0
		}

		if score > bestScore {
			bestScore = score
			bestMove = m
			if score > alpha {
				alpha = score
				if alpha >= beta {
					if !tactical {
						s.killers[ply].Add(m)
					}
					break
				}
			}
		}
	}

	if legalMoves == 0 {
		if inCheck {
			return -mateValue + ply
		}
		return 0
	}

	bound := tt.Exact
	if bestScore <= origAlpha {
		bound = tt.UpperBound
	} else if bestScore >= beta {
		bound = tt.LowerBound
	}
	s.tt.Store(pos, depth, bestScore, staticEval, bound, bestMove)

	return bestScore
}

// quiescence extends the search along capture/promotion (and, while in
// check, all evasion) lines past the nominal depth limit, so the static
// eval reported at the frontier isn't blind to a hanging piece one ply
// deeper.
func (s *Searcher) quiescence(pos *position.Position, alpha, beta, ply int) int {
	s.pollTime()
	if s.aborted {
		return 0
	}
	if pos.FiftyMoveDraw() || pos.IsRepetitionDraw(ply) {
		return 0
	}
	if ply >= maxPly-1 {
		return eval.Evaluate(pos)
	}

	inCheck := pos.InCheck()
	staticEval := eval.Evaluate(pos)

	best := staticEval
	if !inCheck {
		if staticEval >= beta {
			return staticEval
		}
		if staticEval+deltaMargin < alpha {
			return alpha
		}
		if staticEval > alpha {
			alpha = staticEval
		}
	} else {
		best = -mateValue + ply
	}

	var list movegen.List
	if inCheck {
		movegen.GenerateAll(pos, &list)
	} else {
		movegen.GenerateCaptures(pos, &list)
	}
	scored := order.Score(pos, list.Moves(), position.NoMove, nil)
	order.Sort(scored)

	legalMoves := 0
	for i := range scored {
		m := scored[i].Move

		if !inCheck {
			if m.IsCapture() && !see.Ge(pos, m, 0) {
				continue
			}
			if isFutile(pos, staticEval, alpha, m) {
				continue
			}
		}

		pos.MakeMove(m)
		if !legalizeAfterMove(pos) {
			pos.UnmakeMove(m)
			continue
		}
		legalMoves++

		score := -s.quiescence(pos, -beta, -alpha, ply+1)
		pos.UnmakeMove(m)
		if s.aborted {
			return 0
		}

		if score > best {
			best = score
			if score > alpha {
				alpha = score
				if alpha >= beta {
					break
				}
			}
		}
	}

	if inCheck && legalMoves == 0 {
		return -mateValue + ply
	}
	return best
}

// extractPV walks the transposition table's recorded best moves from pos
// forward, replaying them to confirm each is still legal, and restores
// pos to its original state before returning.
func (s *Searcher) extractPV(pos *position.Position, maxLen int) []position.Move {
	var pv []position.Move
	for i := 0; i < maxLen; i++ {
		probe := s.tt.Probe(pos)
		if !probe.Found || probe.BestMove == position.NoMove {
			break
		}
		if !movegen.IsPseudoLegal(pos, probe.BestMove) {
			break
		}
		pos.MakeMove(probe.BestMove)
		legal := legalizeAfterMove(pos)
		if !legal {
			pos.UnmakeMove(probe.BestMove)
			break
		}
		pv = append(pv, probe.BestMove)
	}
	for i := len(pv) - 1; i >= 0; i-- {
		pos.UnmakeMove(pv[i])
	}
	return pv
}
