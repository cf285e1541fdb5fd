package chess

import (
	"slices"
	"strings"
)

// Squares is a full-board occupancy snapshot indexed [file][rank].
// Two snapshots compare equal with == when every square holds the same piece.
type Squares [BoardSize][BoardSize]Piece

// Board is a passive container for the pieces, the ordered move history and
// the last computed outcome. It performs no validation; the engine package
// owns the rules.
type Board struct {
	squares Squares

	// Occupancy before the first committed move, used to replay history.
	origin    Squares
	hasOrigin bool

	history []Move

	// Derived value, recomputed by the engine on demand.
	state Outcome
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.squares = Squares{}

	backRank := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		b.squares[col][HomeRank(White)] = W(backRank[col])
		b.squares[col][PawnRank(White)] = W(Pawn)
		b.squares[col][PawnRank(Black)] = B(Pawn)
		b.squares[col][HomeRank(Black)] = B(backRank[col])
	}

	b.history = nil
	b.hasOrigin = false
	b.state = Regular
}

// PieceAt returns the piece on c, or NoPiece for an empty or off-board square.
func (b *Board) PieceAt(c Coordinate) Piece {
	if !c.Valid() {
		return NoPiece
	}
	return b.squares[c.X][c.Y]
}

// SetPieceAt unconditionally places p on c. Off-board coordinates are ignored.
func (b *Board) SetPieceAt(p Piece, c Coordinate) {
	if c.Valid() {
		b.squares[c.X][c.Y] = p
	}
}

// Squares returns a snapshot of the current occupancy.
func (b *Board) Squares() Squares {
	return b.squares
}

// Origin returns the occupancy before the first committed move.
func (b *Board) Origin() Squares {
	if !b.hasOrigin {
		return b.squares
	}
	return b.origin
}

// MarkOrigin freezes the current occupancy as the replay origin.
// Only the first call before any recorded move has an effect.
func (b *Board) MarkOrigin() {
	if b.hasOrigin || len(b.history) > 0 {
		return
	}
	b.origin = b.squares
	b.hasOrigin = true
}

// MoveHistory returns a copy of the committed moves in order.
func (b *Board) MoveHistory() []Move {
	return slices.Clone(b.history)
}

// Ply returns the number of committed half-moves.
func (b *Board) Ply() int {
	return len(b.history)
}

// LastMove returns the most recently committed move.
func (b *Board) LastMove() (Move, bool) {
	if len(b.history) == 0 {
		return Move{}, false
	}
	return b.history[len(b.history)-1], true
}

// RecordMove appends a committed move to the history.
func (b *Board) RecordMove(m Move) {
	b.MarkOrigin()
	b.history = append(b.history, m)
}

// ToMove returns the side whose turn it is, derived from history parity.
func (b *Board) ToMove() Colour {
	if len(b.history)%2 == 0 {
		return White
	}
	return Black
}

// State returns the last computed outcome.
func (b *Board) State() Outcome {
	return b.state
}

// SetState stores a computed outcome.
func (b *Board) SetState(o Outcome) {
	b.state = o
}

// FindKing returns the square of the given colour's king.
func (b *Board) FindKing(colour Colour) (Coordinate, bool) {
	king := MakeColouredPiece(colour, King)
	for x := 0; x < BoardSize; x++ {
		for y := 0; y < BoardSize; y++ {
			if b.squares[x][y] == king {
				return Coordinate{X: x, Y: y}, true
			}
		}
	}
	return Coordinate{}, false
}

// PiecesOf returns the squares holding pieces of the given colour, file-major.
func (b *Board) PiecesOf(colour Colour) []Coordinate {
	var coords []Coordinate
	for x := 0; x < BoardSize; x++ {
		for y := 0; y < BoardSize; y++ {
			p := b.squares[x][y]
			if !p.IsEmpty() && p.Colour() == colour {
				coords = append(coords, Coordinate{X: x, Y: y})
			}
		}
	}
	return coords
}

// Copy creates a deep copy of the board. The copy shares no mutable state
// with the original.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	newBoard.history = slices.Clone(b.history)
	return newBoard
}

// NewBoardFromSquares creates a board holding the given occupancy and no history.
func NewBoardFromSquares(sq Squares) *Board {
	return &Board{squares: sq}
}

// String renders the board as an eight line diagram, rank 8 first.
func (b *Board) String() string {
	var sb strings.Builder
	for y := BoardSize - 1; y >= 0; y-- {
		sb.WriteByte(byte(RankBase + y))
		sb.WriteByte(' ')
		for x := 0; x < BoardSize; x++ {
			sb.WriteByte(b.squares[x][y].Letter())
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  abcdefgh\n")
	return sb.String()
}
