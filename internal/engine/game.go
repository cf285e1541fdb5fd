package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// NewGame returns a board in the standard starting position.
func NewGame() *chess.Board {
	board := chess.NewBoard()
	board.SetupInitialPosition()
	return board
}

// NewGameFrom replays moves from the starting position through the move
// pipeline. Construction fails as a whole if any move is rejected.
//
// A move carrying a piece must also agree with what the pipeline derives
// (same piece and kind); moves with no piece are treated as bare
// from/to requests.
func NewGameFrom(moves []chess.Move) (*chess.Board, error) {
	board := NewGame()

	for i, recorded := range moves {
		move, err := PerformMove(board, recorded.From, recorded.To)
		if err != nil {
			return nil, err
		}
		if recorded.Piece.IsEmpty() {
			continue
		}
		if move.Piece != recorded.Piece || move.Kind != recorded.Kind {
			return nil, &errors.MoveError{
				Err:  errors.ErrReplayMismatch,
				From: recorded.From.String(),
				To:   recorded.To.String(),
				Ply:  i + 1,
			}
		}
	}

	return board, nil
}
