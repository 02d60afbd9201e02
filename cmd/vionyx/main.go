// Command vionyx is a UCI-compliant chess engine.
package main

import (
	"fmt"
	"os"

	"github.com/Maverick-KVB37/VIONYX/uci"
)

func main() {
	engine := uci.New(os.Stdout)
	if err := engine.Run(os.Stdin); err != nil {
		fmt.Fprintln(os.Stderr, "vionyx:", err)
		os.Exit(1)
	}
}
