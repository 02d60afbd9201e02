// Command perft runs the move-generator leaf-count benchmark against a
// FEN position, optionally broken down move-by-move with -divide.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/Maverick-KVB37/VIONYX/internal/perft"
	"github.com/Maverick-KVB37/VIONYX/internal/position"
)

func main() {
	fen := flag.String("fen", position.StartFEN, "FEN of the position to search")
	depth := flag.Int("depth", 5, "perft depth in plies")
	divide := flag.Bool("divide", false, "print a per-root-move breakdown instead of a single total")
	flag.Parse()

	pos, err := position.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintln(os.Stderr, "perft:", err)
		os.Exit(1)
	}

	if *divide {
		counts := perft.Divide(pos, *depth)
		moves := make([]string, 0, len(counts))
		for m := range counts {
			moves = append(moves, m)
		}
		sort.Strings(moves)
		var total uint64
		for _, m := range moves {
			fmt.Printf("%s: %d\n", m, counts[m])
			total += counts[m]
		}
		fmt.Printf("\nTotal: %d\n", total)
		return
	}

	fmt.Println(perft.Count(pos, *depth))
}
