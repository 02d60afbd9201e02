package bitboard

import "testing"

func TestSquareRankFile(t *testing.T) {
	for r := 0; r < 8; r++ {
		for f := 0; f < 8; f++ {
			sq := RankFile(r, f)
			if sq.Rank() != r || sq.File() != f {
				t.Fatalf("RankFile(%d,%d) = %v, got rank=%d file=%d", r, f, sq, sq.Rank(), sq.File())
			}
		}
	}
}

func TestSquareString(t *testing.T) {
	cases := map[Square]string{
		A1: "a1", H8: "h8", E4: "e4", NoSquare: "-",
	}
	for sq, want := range cases {
		if got := sq.String(); got != want {
			t.Errorf("Square(%d).String() = %q, want %q", sq, got, want)
		}
	}
}

func TestPopCountAndLSB(t *testing.T) {
	bb := A1.Bb() | H8.Bb() | E4.Bb()
	if bb.PopCount() != 3 {
		t.Fatalf("PopCount() = %d, want 3", bb.PopCount())
	}
	sq, rest := bb.PopLSB()
	if sq != A1 {
		t.Fatalf("PopLSB() first = %v, want A1", sq)
	}
	if rest.PopCount() != 2 {
		t.Fatalf("after PopLSB, PopCount() = %d, want 2", rest.PopCount())
	}
}

func TestEmptyBitboardHasNoSquares(t *testing.T) {
	if Empty.LSB() != NoSquare {
		t.Fatalf("Empty.LSB() = %v, want NoSquare", Empty.LSB())
	}
	if Empty.MSB() != NoSquare {
		t.Fatalf("Empty.MSB() = %v, want NoSquare", Empty.MSB())
	}
}

func TestShiftsDoNotWrapFiles(t *testing.T) {
	if East(FileHBb) != Empty {
		t.Fatalf("East(FileHBb) should be empty (off board), got %#x", East(FileHBb))
	}
	if West(FileABb) != Empty {
		t.Fatalf("West(FileABb) should be empty (off board), got %#x", West(FileABb))
	}
}

func TestColorOpposite(t *testing.T) {
	if White.Opposite() != Black || Black.Opposite() != White {
		t.Fatalf("Color.Opposite() broken")
	}
}

func TestMakePieceRoundTrip(t *testing.T) {
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			p := MakePiece(c, pt)
			if p.Color() != c || p.Type() != pt {
				t.Fatalf("MakePiece(%v,%v) round trip failed: got color=%v type=%v", c, pt, p.Color(), p.Type())
			}
		}
	}
}
