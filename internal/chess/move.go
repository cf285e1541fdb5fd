package chess

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Coordinate identifies a square by file (X) and rank (Y), both 0-based.
type Coordinate struct {
	X int
	Y int
}

// Coord is shorthand for Coordinate{X: x, Y: y}.
func Coord(x, y int) Coordinate {
	return Coordinate{X: x, Y: y}
}

// Valid reports whether the coordinate lies on the board.
func (c Coordinate) Valid() bool {
	return c.X >= 0 && c.X < BoardSize && c.Y >= 0 && c.Y < BoardSize
}

// Add returns c shifted by (dx, dy).
func (c Coordinate) Add(dx, dy int) Coordinate {
	return Coordinate{X: c.X + dx, Y: c.Y + dy}
}

// String returns algebraic notation ("e2"), or "(x,y)" when off the board.
func (c Coordinate) String() string {
	if !c.Valid() {
		return fmt.Sprintf("(%d,%d)", c.X, c.Y)
	}
	return string([]byte{byte(ColBase + c.X), byte(RankBase + c.Y)})
}

// ParseCoordinate converts algebraic text such as "e2" into a Coordinate.
func ParseCoordinate(s string) (Coordinate, error) {
	if len(s) != 2 {
		return Coordinate{}, fmt.Errorf("%q: %w", s, errors.ErrInvalidCoordinate)
	}
	col, rank := s[0], s[1]
	if col >= 'A' && col <= 'H' {
		col += 'a' - 'A'
	}
	if col < ColBase || col >= ColBase+BoardSize || rank < RankBase || rank >= RankBase+BoardSize {
		return Coordinate{}, fmt.Errorf("%q: %w", s, errors.ErrInvalidCoordinate)
	}
	return Coordinate{X: int(col - ColBase), Y: int(rank - RankBase)}, nil
}

// MustParseCoordinate is like ParseCoordinate but panics on malformed input.
// Intended for literals in tests and fixed setups.
func MustParseCoordinate(s string) Coordinate {
	c, err := ParseCoordinate(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Move is a committed move. Moves are only created by the engine after
// validation and are never modified once recorded in a board's history.
type Move struct {
	From  Coordinate
	To    Coordinate
	Piece Piece // the piece that moved, before any promotion
	Kind  MoveKind
}

// String returns the coordinate form of the move, e.g. "e2e4".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// IsPawnDoubleStep reports whether the move advanced a pawn two ranks.
func (m Move) IsPawnDoubleStep() bool {
	if m.Piece.Type() != Pawn || m.From.X != m.To.X {
		return false
	}
	dy := m.To.Y - m.From.Y
	return dy == 2 || dy == -2
}
