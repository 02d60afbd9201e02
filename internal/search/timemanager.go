package search

import (
	"sync/atomic"
	"time"
)

// defaultMovesToGo is assumed remaining when the UCI client never sends
// "movestogo", so a single move doesn't consume a whole game's clock.
const defaultMovesToGo = 40

// softFloor and hardFloor are the lowest budgets ever allocated, so a
// near-flagged clock still gets enough time to make a legal move rather
// than collapsing toward zero.
const (
	softFloor = 50 * time.Millisecond
	hardFloor = 100 * time.Millisecond
)

func minDuration(a, b time.Duration) time.Duration {
	if a < b {
		return a
	}
	return b
}

// timeManager turns UCI time controls into soft/hard budgets for one
// search: the soft budget is when iterative deepening stops starting new
// depths, the hard budget is when an in-progress depth is aborted
// outright to avoid a clock flag.
type timeManager struct {
	start   time.Time
	soft    time.Duration
	hard    time.Duration
	stopped atomic.Bool
}

// newTimeManager computes soft/hard budgets from limits for the side to
// move, following the original engine's allocation formula: split what's
// left by the moves expected to remain, add a fraction of the increment,
// cap the hard budget at a quarter of the clock, and compress both
// budgets further as the clock itself runs low.
func newTimeManager(limits Limits, us int) *timeManager {
	tm := &timeManager{start: time.Now()}

	if limits.MoveTime > 0 {
		tm.soft = limits.MoveTime
		tm.hard = limits.MoveTime
		return tm
	}

	var clock, inc time.Duration
	if us == 0 {
		clock, inc = limits.WTime, limits.WInc
	} else {
		clock, inc = limits.BTime, limits.BInc
	}
	if limits.Infinite || (clock == 0 && inc == 0) {
		// No clock information at all, or an explicit infinite search:
		// depth/node bounded only.
		tm.soft = 0
		tm.hard = 0
		return tm
	}

	estMoves := limits.MovesToGo
	if estMoves <= 0 {
		estMoves = defaultMovesToGo
	}

	soft := clock/time.Duration(estMoves) + (inc*3)/4

	// Panic compression: the closer the clock gets to flagging, the less
	// the engine trusts the moves-remaining estimate and the harder it
	// clamps down on its own allocation.
	switch {
	case clock < time.Second:
		soft = minDuration(soft, clock/20)
	case clock < 3*time.Second:
		soft = minDuration(soft, clock/15)
	case clock < 10*time.Second:
		soft = minDuration(soft, clock/10)
	}

	hard := minDuration(clock/4, soft*4)

	tm.soft = maxDuration(soft, softFloor)
	tm.hard = maxDuration(hard, hardFloor)
	return tm
}

func maxDuration(a, b time.Duration) time.Duration {
	if a > b {
		return a
	}
	return b
}

// Stop requests the running search abort at its next node-count check.
func (tm *timeManager) Stop() { tm.stopped.Store(true) }

// stoppedByUser reports whether Stop was called, independent of budgets.
func (tm *timeManager) stoppedByUser() bool { return tm.stopped.Load() }

// elapsed returns how long the search has been running.
func (tm *timeManager) elapsed() time.Duration { return time.Since(tm.start) }

// shouldStartDepth reports whether iterative deepening may begin another
// depth, given the soft budget. A soft budget of zero means unbounded.
func (tm *timeManager) shouldStartDepth() bool {
	if tm.stoppedByUser() {
		return false
	}
	if tm.soft == 0 {
		return true
	}
	return tm.elapsed() < tm.soft
}

// expired reports whether the hard budget has been exceeded, meaning the
// in-progress search must abort immediately regardless of depth.
func (tm *timeManager) expired() bool {
	if tm.stoppedByUser() {
		return true
	}
	if tm.hard == 0 {
		return false
	}
	return tm.elapsed() >= tm.hard
}
