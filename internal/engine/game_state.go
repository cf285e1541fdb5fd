package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Classify derives the outcome for colour from the position on board.
func Classify(board *chess.Board, colour chess.Colour) chess.Outcome {
	inCheck := IsKingInCheck(board, colour)
	hasMove := HasLegalMoves(board, colour)

	switch {
	case inCheck && !hasMove:
		return chess.CheckMate
	case inCheck:
		return chess.Check
	case !hasMove:
		return chess.StaleMate
	}
	return chess.Regular
}

// UpdateBoardState classifies the position for the side to move and stores
// the result on the board.
func UpdateBoardState(board *chess.Board) chess.Outcome {
	outcome := Classify(board, board.ToMove())
	board.SetState(outcome)
	return outcome
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(board *chess.Board) bool {
	return Classify(board, board.ToMove()) == chess.CheckMate
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(board *chess.Board) bool {
	return Classify(board, board.ToMove()) == chess.StaleMate
}
