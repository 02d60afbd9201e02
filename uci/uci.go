// Package uci implements the Universal Chess Interface protocol loop:
// a line-oriented command reader over stdin/stdout that drives position
// setup and search, and renders search progress as "info"/"bestmove"
// lines.
package uci

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/Maverick-KVB37/VIONYX/internal/position"
	"github.com/Maverick-KVB37/VIONYX/internal/search"
	"github.com/Maverick-KVB37/VIONYX/internal/tt"
)

// EngineName and EngineAuthor answer the "uci" handshake.
const (
	EngineName   = "Vionyx"
	EngineAuthor = "Vionyx contributors"
)

const defaultHashMB = 64

// Engine holds the protocol loop's mutable state across commands: the
// current position, the transposition table, and whatever search is
// presently running.
type Engine struct {
	out *bufio.Writer
	pos *position.Position
	tt  *tt.Table
	s   *search.Searcher

	searching bool
	done      chan struct{}
}

// New builds an Engine ready to run the protocol loop, writing responses
// to out.
func New(out io.Writer) *Engine {
	// UCI clients treat any unprefixed line on stdout as a protocol
	// violation; routing the standard logger through "info string " lets
	// rejected input (a bad FEN, an unparsable setoption) get reported
	// without breaking the GUI's parser.
	log.SetOutput(out)
	log.SetPrefix("info string ")
	log.SetFlags(0)

	table := tt.New(defaultHashMB)
	return &Engine{
		out: bufio.NewWriter(out),
		pos: position.NewStartPosition(),
		tt:  table,
		s:   search.New(table),
	}
}

// Run reads UCI commands from in, one per line, until "quit" or EOF.
func (e *Engine) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if quit := e.dispatch(line); quit {
			break
		}
	}
	return scanner.Err()
}

func (e *Engine) println(format string, args ...any) {
	fmt.Fprintf(e.out, format+"\n", args...)
	e.out.Flush()
}

// dispatch handles a single command line and reports whether the
// protocol loop should stop (i.e. "quit" was received).
func (e *Engine) dispatch(line string) (quit bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	switch fields[0] {
	case "uci":
		e.cmdUCI()
	case "isready":
		e.println("readyok")
	case "ucinewgame":
		e.tt.Clear()
	case "setoption":
		e.cmdSetOption(fields[1:])
	case "position":
		e.cmdPosition(fields[1:])
	case "go":
		e.cmdGo(fields[1:])
	case "stop":
		if e.searching {
			e.s.Stop()
			<-e.done
		}
	case "ponderhit":
		// No pondering support yet: treat as a no-op since the search
		// already runs against the position it was given.
	case "quit":
		if e.searching {
			e.s.Stop()
			<-e.done
		}
		return true
	}
	return false
}

func (e *Engine) cmdUCI() {
	e.println("id name %s", EngineName)
	e.println("id author %s", EngineAuthor)
	e.println("option name Hash type spin default %d min 1 max 65536", defaultHashMB)
	e.println("uciok")
}

func (e *Engine) cmdSetOption(args []string) {
	// Expected shape: "name <Name> value <Value>".
	if len(args) < 4 || args[0] != "name" {
		return
	}
	name := args[1]
	valueIdx := -1
	for i, a := range args {
		if a == "value" {
			valueIdx = i + 1
			break
		}
	}
	if valueIdx < 0 || valueIdx >= len(args) {
		return
	}
	value := args[valueIdx]

	switch name {
	case "Hash":
		mb, err := strconv.Atoi(value)
		if err != nil {
			log.Printf("setoption Hash: %q is not an integer", value)
			return
		}
		e.tt = tt.New(mb)
		e.s = search.New(e.tt)
	}
}

func (e *Engine) cmdPosition(args []string) {
	if len(args) == 0 {
		return
	}

	i := 0
	switch args[0] {
	case "startpos":
		e.pos = position.NewStartPosition()
		i = 1
	case "fen":
		if len(args) < 7 {
			log.Printf("position fen: expected 6 FEN fields, got %d", len(args)-1)
			return
		}
		fen := strings.Join(args[1:7], " ")
		pos, err := position.ParseFEN(fen)
		if err != nil {
			log.Printf("position fen %q: %v", fen, err)
			return
		}
		e.pos = pos
		i = 7
	default:
		return
	}

	if i < len(args) && args[i] == "moves" {
		for _, algeb := range args[i+1:] {
			m, ok := parseUCIMove(e.pos, algeb)
			if !ok {
				log.Printf("position moves: %q is not a legal move from the current position", algeb)
				return
			}
			e.pos.MakeMove(m)
		}
	}
}

func (e *Engine) cmdGo(args []string) {
	limits := search.Limits{}
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "infinite":
			limits.Infinite = true
		case "wtime":
			i++
			limits.WTime = parseMillis(args, i)
		case "btime":
			i++
			limits.BTime = parseMillis(args, i)
		case "winc":
			i++
			limits.WInc = parseMillis(args, i)
		case "binc":
			i++
			limits.BInc = parseMillis(args, i)
		case "movestogo":
			i++
			limits.MovesToGo = parseInt(args, i)
		case "movetime":
			i++
			limits.MoveTime = parseMillis(args, i)
		case "depth":
			i++
			limits.Depth = parseInt(args, i)
		case "nodes":
			i++
			limits.Nodes = uint64(parseInt(args, i))
		}
	}

	e.searching = true
	e.done = make(chan struct{})
	pos := e.pos
	go func() {
		defer close(e.done)
		best := e.s.Search(pos, limits, e.emitInfo)
		e.searching = false
		if best == position.NoMove {
			e.println("bestmove 0000")
		} else {
			e.println("bestmove %s", best.UCI())
		}
	}()
}

func (e *Engine) emitInfo(info search.Info) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "info depth %d", info.Depth)
	if info.Mate {
		fmt.Fprintf(&sb, " score mate %d", info.Score)
	} else {
		fmt.Fprintf(&sb, " score cp %d", info.Score)
	}
	fmt.Fprintf(&sb, " nodes %d time %d", info.Nodes, info.Time.Milliseconds())
	if ms := info.Time.Milliseconds(); ms > 0 {
		fmt.Fprintf(&sb, " nps %d", int64(info.Nodes)*1000/ms)
	}
	if len(info.PV) > 0 {
		sb.WriteString(" pv ")
		sb.WriteString(strings.Join(info.PV, " "))
	}
	e.println("%s", sb.String())
}

func parseMillis(args []string, i int) time.Duration {
	return time.Duration(parseInt(args, i)) * time.Millisecond
}

func parseInt(args []string, i int) int {
	if i < 0 || i >= len(args) {
		return 0
	}
	n, _ := strconv.Atoi(args[i])
	return n
}

// parseUCIMove resolves a UCI move string ("e2e4", "e7e8q") against the
// position's pseudo-legal moves, since a bare from/to/promotion string
// doesn't carry the move-flag information (capture, en passant,
// castling) the rest of the engine needs.
func parseUCIMove(pos *position.Position, algeb string) (position.Move, bool) {
	if len(algeb) < 4 {
		return position.NoMove, false
	}
	from, ok1 := parseSquare(algeb[0:2])
	to, ok2 := parseSquare(algeb[2:4])
	if !ok1 || !ok2 {
		return position.NoMove, false
	}
	promo := byte(0)
	if len(algeb) >= 5 {
		promo = algeb[4]
	}

	for _, m := range generateMoves(pos) {
		if m.From() != from || m.To() != to {
			continue
		}
		if !m.IsPromotion() {
			if promo == 0 {
				return m, true
			}
			continue
		}
		if promoLetter(m) == promo {
			return m, true
		}
	}
	return position.NoMove, false
}
