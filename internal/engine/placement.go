package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// InitialPlacement is the piece placement of the standard starting position,
// written as the first field of a FEN record.
const InitialPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// pieceForLetter converts a placement letter to a piece type.
func pieceForLetter(c rune) chess.PieceType {
	switch unicode.ToUpper(c) {
	case 'K':
		return chess.King
	case 'Q':
		return chess.Queen
	case 'R':
		return chess.Rook
	case 'N':
		return chess.Knight
	case 'B':
		return chess.Bishop
	case 'P':
		return chess.Pawn
	default:
		return chess.NoPieceType
	}
}

// NewBoardFromPlacement creates a board holding the pieces described by a
// FEN piece placement field, e.g. "4k3/8/8/8/8/8/8/4K3". Any further FEN
// fields are ignored: the board has no history, so White is to move.
func NewBoardFromPlacement(placement string) (*chess.Board, error) {
	fields := strings.Fields(placement)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty placement: %w", errors.ErrParseFailure)
	}

	board := chess.NewBoard()
	if err := parsePiecePositions(board, fields[0]); err != nil {
		return nil, err
	}
	return board, nil
}

// parsePiecePositions parses the piece placement field, rank 8 first.
func parsePiecePositions(board *chess.Board, positions string) error {
	rank := chess.BoardSize - 1
	col := 0

	for _, c := range positions {
		switch {
		case c == '/':
			if col != chess.BoardSize {
				return fmt.Errorf("rank %d has %d files: %w", rank+1, col, errors.ErrParseFailure)
			}
			rank--
			col = 0
		case c >= '1' && c <= '8':
			col += int(c - '0')
		default:
			pt := pieceForLetter(c)
			if pt == chess.NoPieceType {
				return fmt.Errorf("invalid piece character %q: %w", c, errors.ErrParseFailure)
			}

			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}

			sq := chess.Coord(col, rank)
			if !sq.Valid() {
				return fmt.Errorf("position out of bounds: %w", errors.ErrParseFailure)
			}
			board.SetPieceAt(chess.MakeColouredPiece(colour, pt), sq)
			col++
		}
		if col > chess.BoardSize || rank < 0 {
			return fmt.Errorf("position out of bounds: %w", errors.ErrParseFailure)
		}
	}

	if rank != 0 || col != chess.BoardSize {
		return fmt.Errorf("placement does not cover the board: %w", errors.ErrParseFailure)
	}
	return nil
}

// Placement renders the occupancy of board as a FEN piece placement field.
func Placement(board *chess.Board) string {
	var sb strings.Builder

	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.PieceAt(chess.Coord(col, rank))
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	return sb.String()
}
