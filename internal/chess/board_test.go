package chess

import (
	"errors"
	"strings"
	"testing"

	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	t.Run("initial state", func(t *testing.T) {
		if b.ToMove() != White {
			t.Errorf("ToMove() = %v; want White", b.ToMove())
		}
		if b.Ply() != 0 {
			t.Errorf("Ply() = %d; want 0", b.Ply())
		}
		if b.State() != Regular {
			t.Errorf("State() = %v; want Regular", b.State())
		}
	})

	t.Run("all squares empty", func(t *testing.T) {
		for x := 0; x < BoardSize; x++ {
			for y := 0; y < BoardSize; y++ {
				if got := b.PieceAt(Coord(x, y)); got != NoPiece {
					t.Errorf("PieceAt(%d, %d) = %v; want Empty", x, y, got)
				}
			}
		}
	})
}

func TestSetupInitialPosition(t *testing.T) {
	b := NewBoard()
	b.SetupInitialPosition()

	tests := []struct {
		name  string
		sq    string
		piece Piece
	}{
		// White back rank
		{"white rook a1", "a1", W(Rook)},
		{"white knight b1", "b1", W(Knight)},
		{"white bishop c1", "c1", W(Bishop)},
		{"white queen d1", "d1", W(Queen)},
		{"white king e1", "e1", W(King)},
		{"white bishop f1", "f1", W(Bishop)},
		{"white knight g1", "g1", W(Knight)},
		{"white rook h1", "h1", W(Rook)},
		// Pawns
		{"white pawn a2", "a2", W(Pawn)},
		{"white pawn h2", "h2", W(Pawn)},
		{"black pawn a7", "a7", B(Pawn)},
		{"black pawn h7", "h7", B(Pawn)},
		// Black back rank
		{"black rook a8", "a8", B(Rook)},
		{"black queen d8", "d8", B(Queen)},
		{"black king e8", "e8", B(King)},
		{"black knight g8", "g8", B(Knight)},
		// Empty squares
		{"empty e3", "e3", NoPiece},
		{"empty d4", "d4", NoPiece},
		{"empty c6", "c6", NoPiece},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := b.PieceAt(MustParseCoordinate(tt.sq))
			if got != tt.piece {
				t.Errorf("PieceAt(%s) = %v; want %v", tt.sq, got, tt.piece)
			}
		})
	}

	t.Run("king positions", func(t *testing.T) {
		if c, ok := b.FindKing(White); !ok || c != Coord(4, 0) {
			t.Errorf("FindKing(White) = %v, %v; want e1, true", c, ok)
		}
		if c, ok := b.FindKing(Black); !ok || c != Coord(4, 7) {
			t.Errorf("FindKing(Black) = %v, %v; want e8, true", c, ok)
		}
	})

	t.Run("piece counts", func(t *testing.T) {
		if n := len(b.PiecesOf(White)); n != 16 {
			t.Errorf("len(PiecesOf(White)) = %d; want 16", n)
		}
		if n := len(b.PiecesOf(Black)); n != 16 {
			t.Errorf("len(PiecesOf(Black)) = %d; want 16", n)
		}
	})
}

func TestPieceEncoding(t *testing.T) {
	for colour := Black; colour <= White; colour++ {
		for pt := Pawn; pt < NumPieceTypes; pt++ {
			p := MakeColouredPiece(colour, pt)
			if p.IsEmpty() {
				t.Errorf("MakeColouredPiece(%v, %v) is empty", colour, pt)
			}
			if p.Colour() != colour {
				t.Errorf("MakeColouredPiece(%v, %v).Colour() = %v", colour, pt, p.Colour())
			}
			if p.Type() != pt {
				t.Errorf("MakeColouredPiece(%v, %v).Type() = %v", colour, pt, p.Type())
			}
		}
	}

	if W(Queen).Letter() != 'Q' || B(Queen).Letter() != 'q' {
		t.Errorf("queen letters = %c %c; want Q q", W(Queen).Letter(), B(Queen).Letter())
	}
}

func TestBoardGetSet(t *testing.T) {
	tests := []struct {
		name  string
		c     Coordinate
		piece Piece
	}{
		{"white pawn on e4", Coord(4, 3), W(Pawn)},
		{"black knight on f6", Coord(5, 5), B(Knight)},
		{"white queen on d1", Coord(3, 0), W(Queen)},
		{"black king on e8", Coord(4, 7), B(King)},
		{"empty square", Coord(0, 0), NoPiece},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard()
			b.SetPieceAt(tt.piece, tt.c)
			got := b.PieceAt(tt.c)
			if got != tt.piece {
				t.Errorf("after SetPieceAt(%v, %v), PieceAt() = %v; want %v",
					tt.piece, tt.c, got, tt.piece)
			}
		})
	}

	t.Run("invalid coordinates return empty", func(t *testing.T) {
		b := NewBoard()
		b.SetupInitialPosition()
		for _, c := range []Coordinate{Coord(8, 0), Coord(0, 8), Coord(-1, 3), Coord(77, 5)} {
			if got := b.PieceAt(c); got != NoPiece {
				t.Errorf("PieceAt(%v) = %v; want Empty", c, got)
			}
		}
	})

	t.Run("SetPieceAt with invalid coordinates is no-op", func(t *testing.T) {
		b := NewBoard()
		b.SetupInitialPosition()
		before := b.Squares()
		b.SetPieceAt(W(Queen), Coord(9, 9))
		if b.Squares() != before {
			t.Error("board changed after SetPieceAt off the board")
		}
	})
}

func TestBoardHistory(t *testing.T) {
	b := NewBoard()
	b.SetupInitialPosition()

	m := Move{From: Coord(4, 1), To: Coord(4, 3), Piece: W(Pawn), Kind: Attack}
	b.RecordMove(m)

	if b.Ply() != 1 {
		t.Fatalf("Ply() = %d; want 1", b.Ply())
	}
	if b.ToMove() != Black {
		t.Errorf("ToMove() = %v; want Black", b.ToMove())
	}
	if last, ok := b.LastMove(); !ok || last != m {
		t.Errorf("LastMove() = %v, %v; want %v, true", last, ok, m)
	}

	history := b.MoveHistory()
	history[0].Kind = Capture
	if got, _ := b.LastMove(); got.Kind != Attack {
		t.Error("MoveHistory() exposed internal storage")
	}
}

func TestBoardOrigin(t *testing.T) {
	b := NewBoard()
	b.SetPieceAt(W(King), Coord(2, 0))
	start := b.Squares()

	b.MarkOrigin()
	b.SetPieceAt(NoPiece, Coord(2, 0))
	b.SetPieceAt(W(King), Coord(3, 0))
	b.RecordMove(Move{From: Coord(2, 0), To: Coord(3, 0), Piece: W(King)})

	if b.Origin() != start {
		t.Error("Origin() does not hold the occupancy before the first move")
	}

	b.MarkOrigin()
	if b.Origin() != start {
		t.Error("MarkOrigin() after a recorded move replaced the origin")
	}
}

func TestBoardCopy(t *testing.T) {
	original := NewBoard()
	original.SetupInitialPosition()
	original.RecordMove(Move{From: Coord(6, 0), To: Coord(5, 2), Piece: W(Knight)})

	copied := original.Copy()
	if copied.Squares() != original.Squares() {
		t.Fatal("Copy() squares differ from original")
	}

	copied.SetPieceAt(NoPiece, Coord(4, 0))
	copied.RecordMove(Move{From: Coord(6, 7), To: Coord(5, 5), Piece: B(Knight)})

	if original.PieceAt(Coord(4, 0)) != W(King) {
		t.Error("modifying the copy changed the original squares")
	}
	if original.Ply() != 1 {
		t.Errorf("original Ply() = %d after modifying copy; want 1", original.Ply())
	}
}

func TestParseCoordinate(t *testing.T) {
	tests := []struct {
		in      string
		want    Coordinate
		wantErr bool
	}{
		{"a1", Coord(0, 0), false},
		{"e2", Coord(4, 1), false},
		{"H8", Coord(7, 7), false},
		{"i1", Coordinate{}, true},
		{"a9", Coordinate{}, true},
		{"a", Coordinate{}, true},
		{"e2e4", Coordinate{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCoordinate(tt.in)
			if tt.wantErr {
				if !errors.Is(err, chesserrors.ErrInvalidCoordinate) {
					t.Errorf("ParseCoordinate(%q) error = %v; want ErrInvalidCoordinate", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCoordinate(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseCoordinate(%q) = %v; want %v", tt.in, got, tt.want)
			}
			if got.String() != strings.ToLower(tt.in) {
				t.Errorf("String() = %q; want %q", got.String(), strings.ToLower(tt.in))
			}
		})
	}
}

func TestBoardString(t *testing.T) {
	b := NewBoard()
	b.SetupInitialPosition()

	lines := strings.Split(b.String(), "\n")
	if lines[0] != "8 rnbqkbnr" {
		t.Errorf("first line = %q; want %q", lines[0], "8 rnbqkbnr")
	}
	if lines[7] != "1 RNBQKBNR" {
		t.Errorf("eighth line = %q; want %q", lines[7], "1 RNBQKBNR")
	}
}
