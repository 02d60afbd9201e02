package search

import (
	"testing"
	"time"

	"github.com/Maverick-KVB37/VIONYX/internal/position"
	"github.com/Maverick-KVB37/VIONYX/internal/tt"
)

func newSearcher() *Searcher {
	return New(tt.New(1))
}

// TestFindsMateInOne checks a textbook back-rank mate: Rd8 is mate since
// the black king on g8 has no escape and nothing can interpose or capture.
func TestFindsMateInOne(t *testing.T) {
	pos, err := position.ParseFEN("6k1/5ppp/8/8/8/8/5PPP/3R2K1 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	s := newSearcher()
	best := s.Search(pos, Limits{Depth: 4}, nil)
	if best == position.NoMove {
		t.Fatal("expected a best move, got NoMove")
	}
	if got := best.UCI(); got != "d1d8" {
		t.Fatalf("best move = %q, want the mating move d1d8", got)
	}
}

// TestFindsHangingQueenCapture checks that a simple one-move material grab
// is found even at shallow depth.
func TestFindsHangingQueenCapture(t *testing.T) {
	pos, err := position.ParseFEN("4k3/8/8/3q4/8/3R4/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	s := newSearcher()
	best := s.Search(pos, Limits{Depth: 3}, nil)
	if got := best.UCI(); got != "d3d5" {
		t.Fatalf("best move = %q, want the queen-winning capture d3d5", got)
	}
}

// TestSearchReturnsLegalMoveFromStartPosition is a smoke test that
// iterative deepening completes and returns some legal root move.
func TestSearchReturnsLegalMoveFromStartPosition(t *testing.T) {
	pos := position.NewStartPosition()
	s := newSearcher()
	best := s.Search(pos, Limits{Depth: 3}, nil)
	if best == position.NoMove {
		t.Fatal("expected a legal best move from the start position")
	}
}

// TestSearchRespectsNodeLimit checks that a very small node budget stops
// the search well short of exhausting the full depth: the budget is
// checked after each completed depth, so the search ends with the first
// depth whose running node count reaches it.
func TestSearchRespectsNodeLimit(t *testing.T) {
	const limit = 500
	pos := position.NewStartPosition()
	s := newSearcher()
	var infos []Info
	s.Search(pos, Limits{Depth: maxPly, Nodes: limit}, func(info Info) {
		infos = append(infos, info)
	})
	if s.Nodes() == 0 {
		t.Fatal("expected at least some nodes to be searched")
	}
	if len(infos) == 0 {
		t.Fatal("expected at least one completed depth")
	}
	last := infos[len(infos)-1]
	if last.Depth >= maxPly {
		t.Fatalf("search reached depth %d despite a %d-node budget", last.Depth, limit)
	}
	if last.Nodes < limit {
		t.Fatalf("search stopped at depth %d with %d nodes, before reaching the %d-node budget", last.Depth, last.Nodes, limit)
	}
	for _, info := range infos[:len(infos)-1] {
		if info.Nodes >= limit {
			t.Fatalf("search continued past depth %d although %d nodes already met the %d-node budget", info.Depth, info.Nodes, limit)
		}
	}
}

// TestSearchLeavesPositionUnmodified checks that every MakeMove inside the
// search tree is paired with an UnmakeMove, regardless of how deep the
// recursion goes.
func TestSearchLeavesPositionUnmodified(t *testing.T) {
	pos := position.NewStartPosition()
	before := pos.String()
	beforeHash := pos.Hash()

	s := newSearcher()
	s.Search(pos, Limits{Depth: 4}, nil)

	if got := pos.String(); got != before {
		t.Fatalf("position mutated by search: got %q, want %q", got, before)
	}
	if pos.Hash() != beforeHash {
		t.Fatal("hash mutated by search")
	}
}

// TestStopAbortsSearch checks that calling Stop causes an in-progress
// depth-unbounded search to return promptly rather than run to maxPly.
func TestStopAbortsSearch(t *testing.T) {
	pos := position.NewStartPosition()
	s := newSearcher()

	done := make(chan position.Move, 1)
	go func() {
		done <- s.Search(pos, Limits{Infinite: true}, nil)
	}()

	time.Sleep(10 * time.Millisecond)
	s.Stop()

	select {
	case best := <-done:
		if best == position.NoMove {
			t.Fatal("expected a legal move even from an aborted search")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Search did not return after Stop")
	}
}

// TestInfoCallbackReceivesIncreasingDepths checks that the per-depth info
// callback fires once per completed iterative-deepening depth in order.
func TestInfoCallbackReceivesIncreasingDepths(t *testing.T) {
	pos := position.NewStartPosition()
	s := newSearcher()

	var depths []int
	s.Search(pos, Limits{Depth: 3}, func(info Info) {
		depths = append(depths, info.Depth)
	})

	if len(depths) != 3 {
		t.Fatalf("got %d info callbacks, want 3", len(depths))
	}
	for i, d := range depths {
		if d != i+1 {
			t.Fatalf("depths = %v, want [1 2 3]", depths)
		}
	}
}
