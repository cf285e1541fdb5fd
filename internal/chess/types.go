// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// PieceType represents a chess piece type without colour.
type PieceType int

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceTypes
)

// String returns the string representation of a piece type.
func (p PieceType) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece type (uppercase).
func (p PieceType) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// Piece is a coloured piece. The zero value is an empty square.
type Piece int

// NoPiece marks an empty square.
const NoPiece Piece = 0

// PieceShift is used for encoding coloured pieces.
const PieceShift = 1

// MakeColouredPiece creates a coloured piece value.
func MakeColouredPiece(colour Colour, piece PieceType) Piece {
	if piece == NoPieceType {
		return NoPiece
	}
	return Piece((int(piece) << PieceShift) | int(colour))
}

// W creates a white piece.
func W(piece PieceType) Piece {
	return MakeColouredPiece(White, piece)
}

// B creates a black piece.
func B(piece PieceType) Piece {
	return MakeColouredPiece(Black, piece)
}

// Colour extracts the colour from a coloured piece.
func (p Piece) Colour() Colour {
	return Colour(p & 0x01)
}

// Type extracts the piece type from a coloured piece.
func (p Piece) Type() PieceType {
	return PieceType(p >> PieceShift)
}

// IsEmpty reports whether p is NoPiece.
func (p Piece) IsEmpty() bool {
	return p == NoPiece
}

// Letter returns the diagram letter: upper case for White, lower case for Black.
func (p Piece) Letter() byte {
	if p.IsEmpty() {
		return '.'
	}
	l := p.Type().Letter()
	if p.Colour() == Black {
		l += 'a' - 'A'
	}
	return l
}

// String returns e.g. "White Queen".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour().String() + " " + p.Type().String()
}

// MoveKind categorizes how a move interacts with the board.
type MoveKind int

const (
	Attack MoveKind = iota // non-capturing move
	Capture
	Castling
	EnPassant
)

// String returns the string representation of a move kind.
func (k MoveKind) String() string {
	switch k {
	case Attack:
		return "attack"
	case Capture:
		return "capture"
	case Castling:
		return "castling"
	case EnPassant:
		return "en-passant"
	}
	return "unknown"
}

// IsIrreversible reports whether no earlier position can recur after a move of this kind.
func (k MoveKind) IsIrreversible() bool {
	return k != Attack
}

// Outcome is the derived state of a board for the side to move.
type Outcome int

const (
	Regular Outcome = iota
	Check
	CheckMate
	StaleMate
)

// String returns the string representation of an outcome.
func (o Outcome) String() string {
	switch o {
	case Regular:
		return "regular"
	case Check:
		return "check"
	case CheckMate:
		return "checkmate"
	case StaleMate:
		return "stalemate"
	}
	return "unknown"
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	RankBase = '1'
	ColBase  = 'a'
)

// HomeRank returns the back rank index of a colour.
func HomeRank(colour Colour) int {
	if colour == White {
		return 0
	}
	return BoardSize - 1
}

// PawnRank returns the starting rank index of a colour's pawns.
func PawnRank(colour Colour) int {
	if colour == White {
		return 1
	}
	return BoardSize - 2
}

// PromotionRank returns the rank on which a colour's pawns promote.
func PromotionRank(colour Colour) int {
	return HomeRank(colour.Opposite())
}

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}
