// Package engine validates and applies chess moves and classifies the
// resulting positions.
package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// FiftyMoveHalfMoves is the number of half-moves the fifty-move rule spans.
const FiftyMoveHalfMoves = 100

// DrawReport contains the results of draw rule detection.
type DrawReport struct {
	// ThreefoldRepetition is true if the current position has occurred
	// three times since the last irreversible move.
	ThreefoldRepetition bool

	// FiftyMoveRule is true if the last 100 half-moves were all
	// non-capturing moves by pieces other than pawns.
	FiftyMoveRule bool

	// InsufficientMaterial is true if neither side has mating material.
	InsufficientMaterial bool
}

// Any reports whether any draw condition holds.
func (r DrawReport) Any() bool {
	return r.ThreefoldRepetition || r.FiftyMoveRule || r.InsufficientMaterial
}

// AnalyzeDraws checks all draw conditions for board.
func AnalyzeDraws(board *chess.Board) DrawReport {
	return DrawReport{
		ThreefoldRepetition:  CheckThreefoldRepetitionRule(board),
		FiftyMoveRule:        CheckFiftyMoveRule(board),
		InsufficientMaterial: HasInsufficientMaterial(board),
	}
}

// CheckFiftyMoveRule returns true iff at least 100 half-moves were played and
// none of the last 100 captured, castled, or moved a pawn.
func CheckFiftyMoveRule(board *chess.Board) bool {
	history := board.MoveHistory()
	if len(history) < FiftyMoveHalfMoves {
		return false
	}

	for _, move := range history[len(history)-FiftyMoveHalfMoves:] {
		if move.Kind != chess.Attack || move.Piece.Type() == chess.Pawn {
			return false
		}
	}
	return true
}

// CheckThreefoldRepetitionRule returns true if the current occupancy has
// occurred at least three times, counting the current position itself.
//
// Positions before the last capture, en passant or castling can never recur,
// so the search starts from the position right after that move. The history
// is replayed from the board's origin on a separate board; the live board is
// only read.
func CheckThreefoldRepetitionRule(board *chess.Board) bool {
	history := board.MoveHistory()

	start := 0
	for i, move := range history {
		if move.Kind.IsIrreversible() {
			start = i + 1
		}
	}

	replay := chess.NewBoardFromSquares(board.Origin())
	for _, move := range history[:start] {
		applyPlacement(replay, move)
	}

	current := board.Squares()
	occurrences := 0
	if replay.Squares() == current {
		occurrences++
	}
	for _, move := range history[start:] {
		applyPlacement(replay, move)
		if replay.Squares() == current {
			occurrences++
		}
	}

	return occurrences >= 3
}

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func HasInsufficientMaterial(board *chess.Board) bool {
	var whitePieces, blackPieces []chess.PieceType
	var whiteBishopOnLight, blackBishopOnLight bool

	for x := 0; x < chess.BoardSize; x++ {
		for y := 0; y < chess.BoardSize; y++ {
			sq := chess.Coord(x, y)
			piece := board.PieceAt(sq)
			if piece.IsEmpty() {
				continue
			}

			pieceType := piece.Type()

			// Kings don't count for material
			if pieceType == chess.King {
				continue
			}

			// Any pawn, rook, or queen means sufficient material
			if pieceType == chess.Pawn || pieceType == chess.Rook || pieceType == chess.Queen {
				return false
			}

			if piece.Colour() == chess.White {
				whitePieces = append(whitePieces, pieceType)
				if pieceType == chess.Bishop {
					whiteBishopOnLight = isLightSquare(sq)
				}
			} else {
				blackPieces = append(blackPieces, pieceType)
				if pieceType == chess.Bishop {
					blackBishopOnLight = isLightSquare(sq)
				}
			}
		}
	}

	// K vs K
	if len(whitePieces) == 0 && len(blackPieces) == 0 {
		return true
	}

	// K+B vs K or K+N vs K
	if len(whitePieces) == 0 && len(blackPieces) == 1 {
		return blackPieces[0] == chess.Bishop || blackPieces[0] == chess.Knight
	}
	if len(blackPieces) == 0 && len(whitePieces) == 1 {
		return whitePieces[0] == chess.Bishop || whitePieces[0] == chess.Knight
	}

	// K+B vs K+B (same color bishops)
	if len(whitePieces) == 1 && len(blackPieces) == 1 {
		if whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop {
			return whiteBishopOnLight == blackBishopOnLight
		}
	}

	return false
}

// isLightSquare returns true if the given square is a light square.
func isLightSquare(sq chess.Coordinate) bool {
	return (sq.X+sq.Y)%2 == 1
}
