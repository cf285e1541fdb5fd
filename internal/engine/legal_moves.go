package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	found := false
	forEachLegalMove(board, colour, func(chess.Move) bool {
		found = true
		return false
	})
	return found
}

// LegalMoves returns every legal move for the side to move, ordered by
// source square then destination square, file-major.
func LegalMoves(board *chess.Board) []chess.Move {
	var moves []chess.Move
	forEachLegalMove(board, board.ToMove(), func(m chess.Move) bool {
		moves = append(moves, m)
		return true
	})
	return moves
}

// LegalMovesFrom returns the legal moves of the piece on from. It is empty
// when from is off the board, empty, or holds a piece of the side not to move.
func LegalMovesFrom(board *chess.Board, from chess.Coordinate) []chess.Move {
	piece := board.PieceAt(from)
	if piece.IsEmpty() || piece.Colour() != board.ToMove() {
		return nil
	}

	var moves []chess.Move
	forEachDestination(board, from, func(m chess.Move) bool {
		moves = append(moves, m)
		return true
	})
	return moves
}

// forEachLegalMove calls fn for each legal move of colour until fn returns false.
func forEachLegalMove(board *chess.Board, colour chess.Colour, fn func(chess.Move) bool) {
	for _, from := range board.PiecesOf(colour) {
		if !forEachDestination(board, from, fn) {
			return
		}
	}
}

// forEachDestination tries every square as a destination for the piece on
// from. It returns false once fn has asked to stop.
func forEachDestination(board *chess.Board, from chess.Coordinate, fn func(chess.Move) bool) bool {
	for x := 0; x < chess.BoardSize; x++ {
		for y := 0; y < chess.BoardSize; y++ {
			move, err := candidateMove(board, from, chess.Coord(x, y))
			if err != nil {
				continue
			}
			if !fn(move) {
				return false
			}
		}
	}
	return true
}
