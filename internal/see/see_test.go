package see

import (
	"testing"

	"github.com/Maverick-KVB37/VIONYX/internal/bitboard"
	"github.com/Maverick-KVB37/VIONYX/internal/position"
)

func TestEvaluateSimpleWinningCapture(t *testing.T) {
	// White rook takes an undefended black knight.
	pos, err := position.ParseFEN("4k3/8/8/3n4/8/3R4/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	m := position.NewMove(bitboard.D3, bitboard.D5, position.Capture)
	if got := Evaluate(pos, m); got != Value[bitboard.Knight] {
		t.Fatalf("Evaluate() = %d, want %d", got, Value[bitboard.Knight])
	}
}

func TestEvaluateLosingCapture(t *testing.T) {
	// White queen takes a pawn defended by a rook: net loss of queen for pawn.
	pos, err := position.ParseFEN("3rk3/8/8/3p4/8/8/8/3QK3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	m := position.NewMove(bitboard.D1, bitboard.D5, position.Capture)
	want := Value[bitboard.Pawn] - Value[bitboard.Queen]
	if got := Evaluate(pos, m); got != want {
		t.Fatalf("Evaluate() = %d, want %d", got, want)
	}
}

func TestEvaluateXrayRook(t *testing.T) {
	// White rooks stacked on d2/d3 take a knight on d6 defended by a black
	// rook on d8: after Rd3xNd6, Rd8xRd6, the x-rayed white Rd2 (behind
	// the rook that just moved) must still be found to recapture, making
	// the whole sequence a clean win of the knight.
	pos, err := position.ParseFEN("3rk3/8/3n4/8/8/3R4/3R4/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	m := position.NewMove(bitboard.D3, bitboard.D6, position.Capture)
	if got := Evaluate(pos, m); got != Value[bitboard.Knight] {
		t.Fatalf("Evaluate() = %d, want %d (x-ray recapture nets just the knight)", got, Value[bitboard.Knight])
	}
}

func TestGeMatchesEvaluateOnAmbiguousCases(t *testing.T) {
	pos, err := position.ParseFEN("3rk3/8/8/3p4/8/8/8/3QK3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	m := position.NewMove(bitboard.D1, bitboard.D5, position.Capture)
	full := Evaluate(pos, m)
	if got := Ge(pos, m, full); !got {
		t.Fatalf("Ge(pos, m, %d) = false, want true", full)
	}
	if got := Ge(pos, m, full+1); got {
		t.Fatalf("Ge(pos, m, %d) = true, want false", full+1)
	}
}
