package order

import (
	"testing"

	"github.com/Maverick-KVB37/VIONYX/internal/bitboard"
	"github.com/Maverick-KVB37/VIONYX/internal/position"
)

func TestKillersAddAndMatch(t *testing.T) {
	var k Killers
	a := position.NewMove(bitboard.E2, bitboard.E4, position.DoublePush)
	b := position.NewMove(bitboard.G1, bitboard.F3, position.Quiet)

	k.Add(a)
	if slot, ok := k.Match(a); !ok || slot != 0 {
		t.Fatalf("Match(a) = (%d,%v), want (0,true)", slot, ok)
	}

	k.Add(b)
	if slot, ok := k.Match(b); !ok || slot != 0 {
		t.Fatalf("Match(b) after Add(b) = (%d,%v), want (0,true)", slot, ok)
	}
	if slot, ok := k.Match(a); !ok || slot != 1 {
		t.Fatalf("Match(a) after Add(b) = (%d,%v), want (1,true) (a pushed to second slot)", slot, ok)
	}

	// Re-adding the current slot-0 killer must not shuffle anything.
	k.Add(b)
	if slot, ok := k.Match(a); !ok || slot != 1 {
		t.Fatalf("re-adding the existing top killer should not evict the other slot")
	}
}

func TestKillersMatchMissReportsFalse(t *testing.T) {
	var k Killers
	m := position.NewMove(bitboard.E2, bitboard.E4, position.DoublePush)
	if _, ok := k.Match(m); ok {
		t.Fatal("expected Match on an empty Killers to report false")
	}
}

func TestScoreRanksHashMoveAboveEverything(t *testing.T) {
	pos := position.NewStartPosition()
	hashMove := position.NewMove(bitboard.D2, bitboard.D4, position.DoublePush)
	moves := []position.Move{
		position.NewMove(bitboard.E2, bitboard.E4, position.DoublePush),
		hashMove,
		position.NewMove(bitboard.G1, bitboard.F3, position.Quiet),
	}

	scored := Score(pos, moves, hashMove, nil)
	Sort(scored)

	if scored[0].Move != hashMove {
		t.Fatalf("top-sorted move = %v, want the hash move %v", scored[0].Move, hashMove)
	}
}

func TestScoreRanksKillersAboveOtherQuiets(t *testing.T) {
	pos := position.NewStartPosition()
	killerMove := position.NewMove(bitboard.G1, bitboard.F3, position.Quiet)
	other := position.NewMove(bitboard.B1, bitboard.C3, position.Quiet)

	var killers Killers
	killers.Add(killerMove)

	scored := Score(pos, []position.Move{other, killerMove}, position.NoMove, &killers)
	Sort(scored)

	if scored[0].Move != killerMove {
		t.Fatalf("top-sorted move = %v, want the killer move %v", scored[0].Move, killerMove)
	}
}

func TestNextPicksHighestRemainingScore(t *testing.T) {
	scored := []Scored{
		{Score: 10},
		{Score: 50},
		{Score: 30},
	}
	Next(scored, 0)
	if scored[0].Score != 50 {
		t.Fatalf("after Next(scored, 0), scored[0].Score = %d, want 50", scored[0].Score)
	}
	Next(scored, 1)
	if scored[1].Score != 30 {
		t.Fatalf("after Next(scored, 1), scored[1].Score = %d, want 30", scored[1].Score)
	}
}
