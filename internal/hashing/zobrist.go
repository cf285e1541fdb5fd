// Package hashing provides position hashing and duplicate game detection.
package hashing

import "github.com/lgbarn/chess-rules-go/internal/chess"

// pieceSlots covers every Piece value: colour bit plus type shifted by PieceShift.
const pieceSlots = int(chess.NumPieceTypes) << chess.PieceShift

var (
	zobristPieces [chess.BoardSize][chess.BoardSize][pieceSlots]uint64
	zobristBlack  uint64
)

func init() {
	state := uint64(0x9e3779b97f4a7c15)
	for x := range zobristPieces {
		for y := range zobristPieces[x] {
			for p := range zobristPieces[x][y] {
				zobristPieces[x][y][p] = splitmix64(&state)
			}
		}
	}
	zobristBlack = splitmix64(&state)
}

// splitmix64 advances state and returns the next value of a fixed sequence,
// so hashes are stable across runs.
func splitmix64(state *uint64) uint64 {
	*state += 0x9e3779b97f4a7c15
	z := *state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// GenerateZobristHash hashes the occupancy of board and the side to move.
func GenerateZobristHash(board *chess.Board) uint64 {
	return HashSquares(board.Squares(), board.ToMove())
}

// HashSquares hashes an occupancy snapshot with the given side to move.
func HashSquares(sq chess.Squares, toMove chess.Colour) uint64 {
	var hash uint64
	for x := 0; x < chess.BoardSize; x++ {
		for y := 0; y < chess.BoardSize; y++ {
			if p := sq[x][y]; !p.IsEmpty() {
				hash ^= zobristPieces[x][y][int(p)]
			}
		}
	}
	if toMove == chess.Black {
		hash ^= zobristBlack
	}
	return hash
}
