package movegen

import (
	"testing"

	"github.com/Maverick-KVB37/VIONYX/internal/bitboard"
	"github.com/Maverick-KVB37/VIONYX/internal/position"
)

func countMoves(t *testing.T, fen string) int {
	t.Helper()
	pos, err := position.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	var list List
	GenerateAll(pos, &list)
	return list.Len()
}

func TestStartPositionMoveCount(t *testing.T) {
	if got := countMoves(t, position.StartFEN); got != 20 {
		t.Fatalf("start position has 20 legal moves (all pseudo-legal too), got %d", got)
	}
}

func TestEnPassantGenerated(t *testing.T) {
	pos, err := position.ParseFEN("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	var list List
	GenerateAll(pos, &list)
	found := false
	for _, m := range list.Moves() {
		if m.Flag() == position.EnPassant {
			found = true
		}
	}
	if !found {
		t.Fatal("expected an en-passant capture to be generated")
	}
}

func TestPromotionsGenerateAllFourPieces(t *testing.T) {
	pos, err := position.ParseFEN("8/P6k/8/8/8/8/7K/8 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	var list List
	GenerateAll(pos, &list)
	promos := 0
	for _, m := range list.Moves() {
		if m.IsPromotion() {
			promos++
		}
	}
	if promos != 4 {
		t.Fatalf("expected 4 promotion moves (one per piece type), got %d", promos)
	}
}

// Stalemate: black to move, not in check, with no legal moves at all.
// King h8 is boxed in by the white queen on f7 (a textbook K+Q stalemate),
// with the white king on g6 supporting it.
func TestStalemateNotInCheckWithNoLegalMoves(t *testing.T) {
	pos, err := position.ParseFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if pos.InCheck() {
		t.Fatal("stalemate position must not be in check")
	}

	var list List
	GenerateAll(pos, &list)
	legal := 0
	for _, m := range list.Moves() {
		pos.MakeMove(m)
		if !pos.IsSquareAttacked(pos.KingSquare(bitboard.Black), pos.SideToMove()) {
			legal++
		}
		pos.UnmakeMove(m)
	}
	if legal != 0 {
		t.Fatalf("expected 0 legal moves in stalemate position, got %d", legal)
	}
}

func TestIsPseudoLegal(t *testing.T) {
	pos := position.NewStartPosition()
	good := position.NewMove(bitboard.E2, bitboard.E4, position.DoublePush)
	if !IsPseudoLegal(pos, good) {
		t.Fatal("e2e4 should be pseudo-legal from the start position")
	}
	if IsPseudoLegal(pos, position.NoMove) {
		t.Fatal("NoMove must never be pseudo-legal")
	}
}
