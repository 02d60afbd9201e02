package tt

import (
	"testing"

	"github.com/Maverick-KVB37/VIONYX/internal/bitboard"
	"github.com/Maverick-KVB37/VIONYX/internal/position"
)

func TestScoreToFromTTRoundTripsOrdinaryScores(t *testing.T) {
	for _, s := range []int{0, 37, -250, 900} {
		stored := scoreToTT(s, 5)
		if got := scoreFromTT(stored, 5); got != s {
			t.Fatalf("round trip at ply 5: scoreFromTT(scoreToTT(%d)) = %d", s, got)
		}
	}
}

func TestScoreToTTRenormalizesMateDistance(t *testing.T) {
	const mateIn3FromNode = 32000 - 3
	ply := 4

	stored := scoreToTT(mateIn3FromNode, ply)
	if int(stored) != mateIn3FromNode+ply {
		t.Fatalf("scoreToTT did not add ply to a mate score: got %d, want %d", stored, mateIn3FromNode+ply)
	}

	// Probing at ply 0 undoes none of the adjustment, so the stored
	// node-relative value comes back unchanged.
	if got := scoreFromTT(stored, 0); got != mateIn3FromNode+ply {
		t.Fatalf("scoreFromTT(ply=0) = %d, want %d", got, mateIn3FromNode+ply)
	}
	// Probing back from the same node it was stored at must recover the
	// original score exactly.
	if got := scoreFromTT(stored, ply); got != mateIn3FromNode {
		t.Fatalf("scoreFromTT(ply=%d) = %d, want %d", ply, got, mateIn3FromNode)
	}
}

func TestScoreToTTRenormalizesGettingMated(t *testing.T) {
	const mated = -(32000 - 3)
	ply := 4
	stored := scoreToTT(mated, ply)
	if int(stored) != mated-ply {
		t.Fatalf("scoreToTT did not subtract ply from a losing mate score: got %d, want %d", stored, mated-ply)
	}
	if got := scoreFromTT(stored, 0); got != mated-ply {
		t.Fatalf("scoreFromTT(ply=0) = %d, want %d", got, mated-ply)
	}
}

func TestStoreProbeRoundTrip(t *testing.T) {
	tbl := New(1)
	pos := position.NewStartPosition()
	best := position.NewMove(bitboard.E2, bitboard.E4, position.DoublePush)

	tbl.Store(pos, 8, 57, 42, Exact, best)

	p := tbl.Probe(pos)
	if !p.Found {
		t.Fatal("expected Probe to find the stored entry")
	}
	if p.Score != 57 {
		t.Fatalf("Score = %d, want 57", p.Score)
	}
	if p.Eval != 42 {
		t.Fatalf("Eval = %d, want 42", p.Eval)
	}
	if p.Depth != 8 {
		t.Fatalf("Depth = %d, want 8", p.Depth)
	}
	if p.Bound != Exact {
		t.Fatalf("Bound = %v, want Exact", p.Bound)
	}
	if p.BestMove != best {
		t.Fatalf("BestMove = %v, want %v", p.BestMove, best)
	}
}

func TestProbeMissReportsNotFound(t *testing.T) {
	tbl := New(1)
	pos := position.NewStartPosition()
	if p := tbl.Probe(pos); p.Found {
		t.Fatal("expected Probe on an empty table to report not found")
	}
}

func TestStoreWithNoMoveKeepsPreviousBestMove(t *testing.T) {
	tbl := New(1)
	pos := position.NewStartPosition()
	best := position.NewMove(bitboard.E2, bitboard.E4, position.DoublePush)

	tbl.Store(pos, 4, 10, 10, LowerBound, best)
	// A later re-store of the same position, from a fail-low search that
	// found no best move, should not clobber the earlier one.
	tbl.Store(pos, 4, 20, 20, UpperBound, position.NoMove)

	p := tbl.Probe(pos)
	if !p.Found {
		t.Fatal("expected the updated entry to still be found")
	}
	if p.BestMove != best {
		t.Fatalf("BestMove = %v, want the previously stored %v to survive", p.BestMove, best)
	}
	if p.Score != 20 {
		t.Fatalf("Score = %d, want the newer store's 20", p.Score)
	}
}

func TestNewSearchAgesOutStaleEntries(t *testing.T) {
	tbl := New(1)
	pos := position.NewStartPosition()
	best := position.NewMove(bitboard.E2, bitboard.E4, position.DoublePush)
	// Forcing every key into bucket 0 makes collisions deterministic.
	tbl.mask = 0
	tbl.Store(pos, 10, 1, 1, Exact, best)

	tbl.NewSearch()

	// NewSearch alone must not clear anything: the original entry stays
	// probeable until actually replaced.
	p := tbl.Probe(pos)
	if !p.Found {
		t.Fatal("NewSearch must not clear existing entries by itself")
	}
	if p.BestMove != best {
		t.Fatalf("BestMove = %v, want %v", p.BestMove, best)
	}

	// Once the shared bucket is full, a new store evicts the entry left
	// over from the previous search rather than an equally deep one from
	// this search.
	second := position.NewStartPosition()
	second.MakeMove(best)
	third := position.NewStartPosition()
	third.MakeMove(position.NewMove(bitboard.D2, bitboard.D4, position.DoublePush))

	tbl.Store(second, 10, 2, 2, Exact, position.NoMove)
	tbl.Store(third, 10, 3, 3, Exact, position.NoMove)

	if tbl.Probe(pos).Found {
		t.Fatal("expected the entry from the previous search to be evicted")
	}
	if !tbl.Probe(second).Found || !tbl.Probe(third).Found {
		t.Fatal("expected both current-search entries to be kept")
	}
}

func TestClearRemovesAllEntries(t *testing.T) {
	tbl := New(1)
	pos := position.NewStartPosition()
	tbl.Store(pos, 4, 1, 1, Exact, position.NoMove)
	tbl.Clear()
	if p := tbl.Probe(pos); p.Found {
		t.Fatal("expected Clear to remove all entries")
	}
}
