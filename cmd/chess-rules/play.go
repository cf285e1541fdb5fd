// play.go - Interactive play on a single session
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/parser"
	"github.com/lgbarn/chess-rules-go/internal/session"
)

// player drives one session from line commands.
type player struct {
	out      io.Writer
	sessions *session.Manager
	current  *session.Session
	rejected int
}

// runPlay reads commands from in until end of input or "quit". A line is
// either a coordinate move or one of: new [placement], board, moves, legal,
// status, quit.
func runPlay(ctx context.Context, cfg *config.Config, in io.Reader) int {
	p := &player{
		out:      cfg.OutputFile,
		sessions: session.NewManager(cfg.Logger()),
	}
	p.current = p.sessions.Create()
	p.printStatus()

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if ctx.Err() != nil {
			break
		}
		if !p.handle(strings.TrimSpace(scanner.Text())) {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(p.out, "error: %v\n", err)
		return exitFailure
	}

	if p.rejected > 0 {
		return exitRejected
	}
	return exitOK
}

// handle executes one command line. It returns false to stop reading.
func (p *player) handle(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return true
	}

	switch fields[0] {
	case "quit", "exit":
		return false
	case "new":
		p.newGame(fields[1:])
	case "board":
		fmt.Fprint(p.out, p.current.Board().String())
	case "moves":
		p.printMoves(p.current.History())
	case "legal":
		p.printMoves(p.current.LegalMoves())
	case "status":
		p.printStatus()
	default:
		p.move(fields[0])
	}
	return true
}

func (p *player) newGame(args []string) {
	var next *session.Session
	var err error
	if len(args) > 0 {
		next, err = p.sessions.CreateFromPlacement(args[0])
	} else {
		next = p.sessions.Create()
	}
	if err != nil {
		p.rejected++
		fmt.Fprintf(p.out, "error: %v\n", err)
		return
	}

	p.sessions.Remove(p.current.ID()) //nolint:errcheck,gosec // current is always registered
	p.current = next
	p.printStatus()
}

func (p *player) move(text string) {
	m, err := parser.DecodeMove(text)
	if err != nil {
		p.rejected++
		fmt.Fprintf(p.out, "error: %q: %v\n", text, err)
		return
	}

	if _, _, err := p.current.Move(m.From, m.To); err != nil {
		p.rejected++
		fmt.Fprintf(p.out, "rejected: %v\n", err)
		return
	}
	p.printStatus()
}

func (p *player) printStatus() {
	status := p.current.Status()
	line := fmt.Sprintf("ply %d, %s to move, %s", status.Ply, status.ToMove, status.Outcome)

	draws := &output.DrawFlags{
		ThreefoldRepetition:  status.Draws.ThreefoldRepetition,
		FiftyMoveRule:        status.Draws.FiftyMoveRule,
		InsufficientMaterial: status.Draws.InsufficientMaterial,
	}
	if names := draws.Names(); len(names) > 0 {
		line += ", draw: " + strings.Join(names, ", ")
	}
	fmt.Fprintln(p.out, line)
}

func (p *player) printMoves(moves []chess.Move) {
	lw := output.NewLineWriter(p.out, 80, "")
	for _, m := range moves {
		lw.Write(m.String())
	}
	lw.NewLine()
}
