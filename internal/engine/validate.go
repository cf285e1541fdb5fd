package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// PerformMove validates the move from->to for the side to move and commits it.
// On failure the board is left untouched and the returned error is a
// *errors.MoveError wrapping one of the failure kinds.
func PerformMove(board *chess.Board, from, to chess.Coordinate) (chess.Move, error) {
	move, err := ValidateMove(board, from, to)
	if err != nil {
		return chess.Move{}, &errors.MoveError{
			Err:  err,
			From: from.String(),
			To:   to.String(),
			Ply:  board.Ply() + 1,
		}
	}

	ApplyMove(board, move)
	return move, nil
}

// ValidateMove runs every legality check for from->to without modifying board.
// The first failing check decides the returned failure kind.
func ValidateMove(board *chess.Board, from, to chess.Coordinate) (chess.Move, error) {
	if !from.Valid() || !to.Valid() {
		return chess.Move{}, errors.ErrOutOfBounds
	}

	piece := board.PieceAt(from)
	if piece.IsEmpty() {
		return chess.Move{}, errors.ErrEmptySource
	}
	if piece.Colour() != board.ToMove() {
		return chess.Move{}, errors.ErrNotYourPiece
	}

	return candidateMove(board, from, to)
}

// candidateMove checks whether the piece on from may legally move to to,
// regardless of whose turn it is. Both squares must be on the board and from
// must be occupied.
func candidateMove(board *chess.Board, from, to chess.Coordinate) (chess.Move, error) {
	piece := board.PieceAt(from)
	target := board.PieceAt(to)
	if !target.IsEmpty() && target.Colour() == piece.Colour() {
		return chess.Move{}, errors.ErrDestinationOccupiedBySelf
	}

	move := chess.Move{From: from, To: to, Piece: piece}

	switch {
	case isCastlingCandidate(board, piece, from, to):
		move.Kind = chess.Castling
		if err := validateCastling(board, piece, from, to); err != nil {
			return chess.Move{}, err
		}

	case isEnPassantCandidate(board, piece, from, to):
		move.Kind = chess.EnPassant

	default:
		move.Kind = chess.Attack
		if !target.IsEmpty() {
			move.Kind = chess.Capture
		}
		if err := reach(board, piece, from, to, move.Kind); err != nil {
			return chess.Move{}, err
		}
	}

	if IsKingInCheck(simulate(board, move), piece.Colour()) {
		return chess.Move{}, errors.ErrLeavesKingInCheck
	}

	return move, nil
}
