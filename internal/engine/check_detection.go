package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsKingInCheck returns true if the given colour's king is attacked.
// A board without that king is never in check.
func IsKingInCheck(board *chess.Board, colour chess.Colour) bool {
	king, ok := board.FindKing(colour)
	if !ok {
		return false
	}

	return IsSquareAttacked(board, king, colour.Opposite())
}

// IsSquareAttacked returns true if any piece of byColour could capture on sq.
// Every attacker is checked with the same shape and path rules used to
// validate moves, with the capture kind so that pawns attack diagonally.
func IsSquareAttacked(board *chess.Board, sq chess.Coordinate, byColour chess.Colour) bool {
	for _, from := range board.PiecesOf(byColour) {
		if from == sq {
			continue
		}
		if reach(board, board.PieceAt(from), from, sq, chess.Capture) == nil {
			return true
		}
	}
	return false
}
