// Package output formats replay results as text or JSON reports.
package output

import (
	"errors"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// Report describes one replayed game.
type Report struct {
	Game      int    `json:"game"`
	File      string `json:"file,omitempty"`
	Line      int    `json:"line,omitempty"`
	Setup     string `json:"setup,omitempty"`
	Plies     int    `json:"plies"`
	ToMove    string `json:"toMove"`
	Outcome   string `json:"outcome"`
	Placement string `json:"placement,omitempty"`

	Draws *DrawFlags `json:"draws,omitempty"`

	// Error is the first rejection; FailedPly is the ply it was attempted at.
	Error     string `json:"error,omitempty"`
	FailedPly int    `json:"failedPly,omitempty"`

	Moves      []string `json:"moves,omitempty"`
	LegalMoves []string `json:"legalMoves,omitempty"`
	Board      string   `json:"board,omitempty"`
}

// DrawFlags lists the draw conditions that hold in the final position.
type DrawFlags struct {
	ThreefoldRepetition  bool `json:"threefoldRepetition,omitempty"`
	FiftyMoveRule        bool `json:"fiftyMoveRule,omitempty"`
	InsufficientMaterial bool `json:"insufficientMaterial,omitempty"`
}

// Names returns the set flags in a fixed order.
func (d *DrawFlags) Names() []string {
	if d == nil {
		return nil
	}
	var names []string
	if d.ThreefoldRepetition {
		names = append(names, "threefold-repetition")
	}
	if d.FiftyMoveRule {
		names = append(names, "fifty-move-rule")
	}
	if d.InsufficientMaterial {
		names = append(names, "insufficient-material")
	}
	return names
}

// NewReport builds the report for result. cfg selects the optional sections.
func NewReport(result worker.ProcessResult, cfg *config.OutputConfig) *Report {
	r := &Report{Game: result.Index + 1}
	if g := result.Game; g != nil {
		r.Game = g.Index
		r.File = g.File
		r.Line = g.Line
		r.Setup = g.Setup
	}

	if result.Err != nil {
		r.Error = result.Err.Error()
		var moveErr *chesserrors.MoveError
		if errors.As(result.Err, &moveErr) {
			r.FailedPly = moveErr.Ply
		}
	}

	board := result.Board
	if board == nil {
		return r
	}

	r.Plies = board.Ply()
	r.ToMove = board.ToMove().String()
	r.Outcome = result.Outcome.String()
	r.Placement = engine.Placement(board)
	if result.Draws.Any() {
		r.Draws = &DrawFlags{
			ThreefoldRepetition:  result.Draws.ThreefoldRepetition,
			FiftyMoveRule:        result.Draws.FiftyMoveRule,
			InsufficientMaterial: result.Draws.InsufficientMaterial,
		}
	}

	if cfg == nil {
		return r
	}
	if cfg.ShowMoves {
		r.Moves = moveTexts(board.MoveHistory())
	}
	if cfg.ShowLegalMoves {
		r.LegalMoves = moveTexts(engine.LegalMoves(board))
	}
	if cfg.ShowBoard {
		r.Board = strings.TrimRight(board.String(), "\n")
	}
	return r
}

func moveTexts(moves []chess.Move) []string {
	texts := make([]string, len(moves))
	for i, m := range moves {
		texts[i] = m.String()
	}
	return texts
}

// Summary counts outcomes over a batch of results.
type Summary struct {
	Games      int `json:"games"`
	Rejected   int `json:"rejected"`
	Checkmates int `json:"checkmates"`
	Stalemates int `json:"stalemates"`
	Draws      int `json:"draws"`
}

// Summarize tallies results.
func Summarize(results []worker.ProcessResult) Summary {
	var s Summary
	for _, r := range results {
		s.Games++
		if r.Err != nil {
			s.Rejected++
		}
		switch r.Outcome {
		case chess.CheckMate:
			s.Checkmates++
		case chess.StaleMate:
			s.Stalemates++
		}
		if r.Draws.Any() {
			s.Draws++
		}
	}
	return s
}
