package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// shapeRule answers whether a piece may move along the geometry from->to for
// the given move kind. Rules look only at coordinates, the piece's colour and
// the kind; board occupancy is not consulted.
type shapeRule func(piece chess.Piece, from, to chess.Coordinate, kind chess.MoveKind) bool

// shapeRules dispatches on piece type. Indexing by PieceType keeps the table
// closed over the six piece types.
var shapeRules = [chess.NumPieceTypes]shapeRule{
	chess.Pawn:   pawnShape,
	chess.Knight: knightShape,
	chess.Bishop: bishopShape,
	chess.Rook:   rookShape,
	chess.Queen:  queenShape,
	chess.King:   kingShape,
}

// canReach checks the movement shape of piece for from->to.
func canReach(piece chess.Piece, from, to chess.Coordinate, kind chess.MoveKind) bool {
	pt := piece.Type()
	if pt <= chess.NoPieceType || pt >= chess.NumPieceTypes {
		return false
	}
	return shapeRules[pt](piece, from, to, kind)
}

func knightShape(_ chess.Piece, from, to chess.Coordinate, _ chess.MoveKind) bool {
	colDiff := abs(to.X - from.X)
	rankDiff := abs(to.Y - from.Y)
	return (colDiff == 1 && rankDiff == 2) || (colDiff == 2 && rankDiff == 1)
}

func rookShape(_ chess.Piece, from, to chess.Coordinate, _ chess.MoveKind) bool {
	colDiff := to.X - from.X
	rankDiff := to.Y - from.Y
	return (colDiff == 0) != (rankDiff == 0)
}

func bishopShape(_ chess.Piece, from, to chess.Coordinate, _ chess.MoveKind) bool {
	colDiff := abs(to.X - from.X)
	rankDiff := abs(to.Y - from.Y)
	return colDiff == rankDiff && colDiff != 0
}

func queenShape(piece chess.Piece, from, to chess.Coordinate, kind chess.MoveKind) bool {
	return rookShape(piece, from, to, kind) || bishopShape(piece, from, to, kind)
}

// kingShape covers the eight adjacent squares. Castling is a separate move
// kind and never reaches this rule.
func kingShape(_ chess.Piece, from, to chess.Coordinate, _ chess.MoveKind) bool {
	return max(abs(to.X-from.X), abs(to.Y-from.Y)) == 1
}

func pawnShape(piece chess.Piece, from, to chess.Coordinate, kind chess.MoveKind) bool {
	colour := piece.Colour()
	dir := chess.ColourOffset(colour)
	colDiff := to.X - from.X
	rankDiff := to.Y - from.Y

	switch kind {
	case chess.Attack:
		if colDiff != 0 {
			return false
		}
		if rankDiff == dir {
			return true
		}
		return rankDiff == 2*dir && from.Y == chess.PawnRank(colour)
	case chess.Capture:
		return abs(colDiff) == 1 && rankDiff == dir
	}
	return false
}
