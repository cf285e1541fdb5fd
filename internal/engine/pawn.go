package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// isEnPassantCandidate reports whether a pawn move from->to captures en passant:
// a diagonal step onto an empty square directly behind an opposing pawn that
// has just advanced two squares.
func isEnPassantCandidate(board *chess.Board, piece chess.Piece, from, to chess.Coordinate) bool {
	if piece.Type() != chess.Pawn || !board.PieceAt(to).IsEmpty() {
		return false
	}

	colour := piece.Colour()
	if abs(to.X-from.X) != 1 || to.Y-from.Y != chess.ColourOffset(colour) {
		return false
	}

	last, ok := board.LastMove()
	if !ok || !last.IsPawnDoubleStep() || last.Piece.Colour() == colour {
		return false
	}

	victim := enPassantVictim(from, to)
	return last.To == victim && board.PieceAt(victim) == last.Piece
}

// enPassantVictim returns the square of the pawn captured en passant.
func enPassantVictim(from, to chess.Coordinate) chess.Coordinate {
	return chess.Coord(to.X, from.Y)
}

// promotedPiece returns the piece that ends up on the destination square.
// Pawns reaching the last rank become queens of the same colour.
func promotedPiece(piece chess.Piece, to chess.Coordinate) chess.Piece {
	if piece.Type() == chess.Pawn && to.Y == chess.PromotionRank(piece.Colour()) {
		return chess.MakeColouredPiece(piece.Colour(), chess.Queen)
	}
	return piece
}
