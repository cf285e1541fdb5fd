package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// needsClearance reports whether moves of this piece type can be blocked.
// Knights jump; every other piece moves along a line.
func needsClearance(pt chess.PieceType) bool {
	return pt != chess.Knight
}

// isPathClear checks that every square strictly between from and to is empty.
// from and to must share a rank, file or diagonal; other geometries have no
// path and are reported clear.
func isPathClear(board *chess.Board, from, to chess.Coordinate) bool {
	colDiff := to.X - from.X
	rankDiff := to.Y - from.Y
	if colDiff != 0 && rankDiff != 0 && abs(colDiff) != abs(rankDiff) {
		return true
	}

	colDir := sign(colDiff)
	rankDir := sign(rankDiff)

	for sq := from.Add(colDir, rankDir); sq != to; sq = sq.Add(colDir, rankDir) {
		if !board.PieceAt(sq).IsEmpty() {
			return false
		}
	}

	return true
}

// reach combines the shape rule and path clearance for a piece on from.
// It is the single definition of "piece can reach square" shared by move
// validation, attack detection and legal move enumeration.
func reach(board *chess.Board, piece chess.Piece, from, to chess.Coordinate, kind chess.MoveKind) error {
	if !canReach(piece, from, to, kind) {
		return errors.ErrIllegalShape
	}
	if needsClearance(piece.Type()) && !isPathClear(board, from, to) {
		return errors.ErrBlockedPath
	}
	return nil
}
