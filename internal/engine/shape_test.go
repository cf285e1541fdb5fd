package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
)

func TestCanReach(t *testing.T) {
	sq := chess.MustParseCoordinate

	tests := []struct {
		name  string
		piece chess.Piece
		from  string
		to    string
		kind  chess.MoveKind
		want  bool
	}{
		{"rook along file", chess.W(chess.Rook), "a1", "a8", chess.Attack, true},
		{"rook along rank", chess.W(chess.Rook), "a1", "h1", chess.Attack, true},
		{"rook diagonal", chess.W(chess.Rook), "a1", "b2", chess.Attack, false},
		{"rook null move", chess.W(chess.Rook), "a1", "a1", chess.Attack, false},
		{"bishop diagonal", chess.B(chess.Bishop), "c1", "h6", chess.Capture, true},
		{"bishop straight", chess.B(chess.Bishop), "c1", "c3", chess.Attack, false},
		{"queen diagonal", chess.W(chess.Queen), "d1", "h5", chess.Attack, true},
		{"queen file", chess.W(chess.Queen), "d1", "d8", chess.Capture, true},
		{"queen knight jump", chess.W(chess.Queen), "d1", "e3", chess.Attack, false},
		{"knight long L", chess.W(chess.Knight), "g1", "f3", chess.Attack, true},
		{"knight short L", chess.W(chess.Knight), "g1", "e2", chess.Attack, true},
		{"knight straight", chess.W(chess.Knight), "g1", "g3", chess.Attack, false},
		{"king diagonal step", chess.W(chess.King), "e1", "f2", chess.Attack, true},
		{"king two squares", chess.W(chess.King), "e1", "e3", chess.Attack, false},
		{"king castling geometry", chess.W(chess.King), "e1", "g1", chess.Attack, false},
		{"white pawn single", chess.W(chess.Pawn), "e2", "e3", chess.Attack, true},
		{"white pawn double from start", chess.W(chess.Pawn), "e2", "e4", chess.Attack, true},
		{"white pawn double later", chess.W(chess.Pawn), "e3", "e5", chess.Attack, false},
		{"white pawn backwards", chess.W(chess.Pawn), "e2", "e1", chess.Attack, false},
		{"white pawn diagonal without capture", chess.W(chess.Pawn), "e2", "d3", chess.Attack, false},
		{"white pawn capture", chess.W(chess.Pawn), "e2", "d3", chess.Capture, true},
		{"white pawn straight capture", chess.W(chess.Pawn), "e2", "e3", chess.Capture, false},
		{"black pawn double from start", chess.B(chess.Pawn), "e7", "e5", chess.Attack, true},
		{"black pawn wrong direction", chess.B(chess.Pawn), "e7", "e8", chess.Attack, false},
		{"black pawn capture", chess.B(chess.Pawn), "d5", "e4", chess.Capture, true},
		{"black pawn capture backwards", chess.B(chess.Pawn), "d5", "e6", chess.Capture, false},
		{"empty square", chess.NoPiece, "a1", "a2", chess.Attack, false},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := canReach(tt.piece, sq(tt.from), sq(tt.to), tt.kind)
			if got != tt.want {
				t.Errorf("canReach(%v, %s, %s, %v) = %v, want %v",
					tt.piece, tt.from, tt.to, tt.kind, got, tt.want)
			}
		})
	}
}

func TestIsPathClear_AllDirections(t *testing.T) {
	centre := chess.Coord(3, 3)
	directions := [][2]int{
		{1, 0}, {-1, 0}, {0, 1}, {0, -1},
		{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
	}

	for _, d := range directions {
		target := centre.Add(3*d[0], 3*d[1])

		board := chess.NewBoard()
		board.SetPieceAt(chess.W(chess.Queen), centre)
		if !isPathClear(board, centre, target) {
			t.Errorf("isPathClear(%s, %s) on empty board = false, want true", centre, target)
		}

		board.SetPieceAt(chess.B(chess.Pawn), centre.Add(d[0], d[1]))
		if isPathClear(board, centre, target) {
			t.Errorf("isPathClear(%s, %s) with blocker = true, want false", centre, target)
		}
		if !isPathClear(board, centre, centre.Add(d[0], d[1])) {
			t.Errorf("isPathClear(%s, adjacent) = false, want true", centre)
		}
	}
}

func TestReach(t *testing.T) {
	board := NewGame()
	sq := chess.MustParseCoordinate

	tests := []struct {
		name string
		from string
		to   string
		kind chess.MoveKind
		want error
	}{
		{"knight jumps over pawns", "b1", "c3", chess.Attack, nil},
		{"rook blocked by pawn", "a1", "a3", chess.Attack, chesserrors.ErrBlockedPath},
		{"bishop blocked by pawn", "c1", "e3", chess.Attack, chesserrors.ErrBlockedPath},
		{"pawn double step", "e2", "e4", chess.Attack, nil},
		{"bishop wrong shape", "c1", "c2", chess.Attack, chesserrors.ErrIllegalShape},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			from := sq(tt.from)
			got := reach(board, board.PieceAt(from), from, sq(tt.to), tt.kind)
			if got != tt.want {
				t.Errorf("reach(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}
