package testutil

import (
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// BoardWith returns a board holding only the given pieces, keyed by
// algebraic square. It calls t.Fatal on a malformed square.
func BoardWith(t *testing.T, pieces map[string]chess.Piece) *chess.Board {
	t.Helper()
	board := chess.NewBoard()
	for sq, piece := range pieces {
		c, err := chess.ParseCoordinate(sq)
		if err != nil {
			t.Fatalf("BoardWith: %v", err)
		}
		board.SetPieceAt(piece, c)
	}
	return board
}

// Moves converts coordinate move text such as "e2e4" or "e2-e4" into bare
// moves carrying only From and To. It calls t.Fatal on malformed text.
func Moves(t *testing.T, texts ...string) []chess.Move {
	t.Helper()
	moves := make([]chess.Move, 0, len(texts))
	for _, text := range texts {
		moves = append(moves, Move(t, text))
	}
	return moves
}

// Move converts a single coordinate move text into a bare move.
func Move(t *testing.T, text string) chess.Move {
	t.Helper()
	text = strings.ReplaceAll(text, "-", "")
	if len(text) != 4 {
		t.Fatalf("Move(%q): want four characters", text)
	}
	from, err := chess.ParseCoordinate(text[:2])
	if err != nil {
		t.Fatalf("Move(%q): %v", text, err)
	}
	to, err := chess.ParseCoordinate(text[2:])
	if err != nil {
		t.Fatalf("Move(%q): %v", text, err)
	}
	return chess.Move{From: from, To: to}
}
