package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// ApplyMove commits a validated move: the pieces are relocated, promotion,
// castling and en passant side effects are applied and the move is appended
// to the history. It performs no validation.
func ApplyMove(board *chess.Board, move chess.Move) {
	board.MarkOrigin()
	applyPlacement(board, move)
	board.RecordMove(move)
}

// applyPlacement updates the squares for move without touching the history.
// Simulations use it on disposable copies.
func applyPlacement(board *chess.Board, move chess.Move) {
	piece := board.PieceAt(move.From)

	switch move.Kind {
	case chess.Castling:
		if rookFrom, rookTo, ok := castlingRookSquares(piece.Colour(), move.From, move.To); ok {
			rook := board.PieceAt(rookFrom)
			board.SetPieceAt(chess.NoPiece, rookFrom)
			board.SetPieceAt(rook, rookTo)
		}

	case chess.EnPassant:
		board.SetPieceAt(chess.NoPiece, enPassantVictim(move.From, move.To))
	}

	board.SetPieceAt(chess.NoPiece, move.From)
	board.SetPieceAt(promotedPiece(piece, move.To), move.To)
}

// simulate returns a disposable board holding the position after move.
// The result carries no history and shares nothing with board.
func simulate(board *chess.Board, move chess.Move) *chess.Board {
	sim := chess.NewBoardFromSquares(board.Squares())
	applyPlacement(sim, move)
	return sim
}
