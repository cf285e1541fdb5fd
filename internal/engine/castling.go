package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// kingHomeCol is the file the king starts on.
const kingHomeCol = 4

// castlingRookSquares returns where the rook starts and lands for a king move
// from->to of the given colour. ok is false unless the move is the castling
// pattern: the king leaves its home square by exactly two files.
func castlingRookSquares(colour chess.Colour, from, to chess.Coordinate) (rookFrom, rookTo chess.Coordinate, ok bool) {
	rank := chess.HomeRank(colour)
	if from != chess.Coord(kingHomeCol, rank) || to.Y != rank || abs(to.X-from.X) != 2 {
		return chess.Coordinate{}, chess.Coordinate{}, false
	}

	if to.X > from.X {
		return chess.Coord(chess.BoardSize-1, rank), chess.Coord(to.X-1, rank), true
	}
	return chess.Coord(0, rank), chess.Coord(to.X+1, rank), true
}

// isCastlingCandidate reports whether a move should be routed through the
// castling checks instead of the ordinary king rule.
func isCastlingCandidate(board *chess.Board, piece chess.Piece, from, to chess.Coordinate) bool {
	if piece.Type() != chess.King || !board.PieceAt(to).IsEmpty() {
		return false
	}
	_, _, ok := castlingRookSquares(piece.Colour(), from, to)
	return ok
}

// validateCastling checks everything except the king's destination, which
// the pipeline's self-check simulation covers.
func validateCastling(board *chess.Board, king chess.Piece, from, to chess.Coordinate) error {
	colour := king.Colour()
	rookFrom, rookTo, _ := castlingRookSquares(colour, from, to)

	if board.PieceAt(rookFrom) != chess.MakeColouredPiece(colour, chess.Rook) {
		return errors.ErrIllegalShape
	}
	if hasSquareBeenDisturbed(board, from) || hasSquareBeenDisturbed(board, rookFrom) {
		return errors.ErrIllegalShape
	}
	if !isPathClear(board, from, rookFrom) {
		return errors.ErrBlockedPath
	}

	// The king may not castle out of check or across an attacked square.
	opponent := colour.Opposite()
	if IsSquareAttacked(board, from, opponent) || IsSquareAttacked(board, rookTo, opponent) {
		return errors.ErrLeavesKingInCheck
	}
	return nil
}

// hasSquareBeenDisturbed reports whether any committed move left or landed on sq.
// A king or rook still standing on an undisturbed home square has never moved.
func hasSquareBeenDisturbed(board *chess.Board, sq chess.Coordinate) bool {
	for _, m := range board.MoveHistory() {
		if m.From == sq || m.To == sq {
			return true
		}
	}
	return false
}
