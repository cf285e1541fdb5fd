package hashing

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestZobristHashConsistency(t *testing.T) {
	board1 := chess.NewBoard()
	board1.SetupInitialPosition()

	board2 := chess.NewBoard()
	board2.SetupInitialPosition()

	if GenerateZobristHash(board1) != GenerateZobristHash(board2) {
		t.Error("identical boards produced different hashes")
	}
}

func TestZobristHashDifferentPositions(t *testing.T) {
	board1 := chess.NewBoard()
	board1.SetupInitialPosition()

	board2 := chess.NewBoard()
	board2.SetupInitialPosition()
	board2.SetPieceAt(chess.NoPiece, chess.MustParseCoordinate("e2"))
	board2.SetPieceAt(chess.W(chess.Pawn), chess.MustParseCoordinate("e4"))

	if GenerateZobristHash(board1) == GenerateZobristHash(board2) {
		t.Error("different positions produced the same hash")
	}
}

func TestHashSquares_SideToMove(t *testing.T) {
	board := chess.NewBoard()
	board.SetupInitialPosition()

	white := HashSquares(board.Squares(), chess.White)
	black := HashSquares(board.Squares(), chess.Black)
	if white == black {
		t.Error("side to move does not change the hash")
	}
}

func TestDuplicateDetector(t *testing.T) {
	transposed := func(t *testing.T, moves ...string) *chess.Board {
		t.Helper()
		board := chess.NewBoard()
		board.SetupInitialPosition()
		for _, m := range testutil.Moves(t, moves...) {
			piece := board.PieceAt(m.From)
			board.SetPieceAt(chess.NoPiece, m.From)
			board.SetPieceAt(piece, m.To)
			board.RecordMove(chess.Move{From: m.From, To: m.To, Piece: piece})
		}
		return board
	}

	t.Run("transposition is a duplicate", func(t *testing.T) {
		d := NewDuplicateDetector(false)

		first, dup := d.CheckAndAdd(1, transposed(t, "g1f3", "g8f6", "b1c3"))
		testutil.AssertFalse(t, dup, "first game")
		testutil.AssertEqual(t, first, 0)

		first, dup = d.CheckAndAdd(2, transposed(t, "b1c3", "g8f6", "g1f3"))
		testutil.AssertTrue(t, dup, "transposed game")
		testutil.AssertEqual(t, first, 1)

		testutil.AssertEqual(t, d.DuplicateCount(), 1)
		testutil.AssertEqual(t, d.UniqueCount(), 1)
	})

	t.Run("different side to move", func(t *testing.T) {
		d := NewDuplicateDetector(false)
		d.CheckAndAdd(1, transposed(t))
		// A null move keeps the occupancy but passes the turn.
		_, dup := d.CheckAndAdd(2, transposed(t, "e2e2"))
		testutil.AssertFalse(t, dup)
	})

	t.Run("exact match requires equal ply", func(t *testing.T) {
		d := NewDuplicateDetector(true)
		d.CheckAndAdd(1, transposed(t))
		_, dup := d.CheckAndAdd(2, transposed(t, "g1f3", "g8f6", "f3g1", "f6g8"))
		testutil.AssertFalse(t, dup)

		loose := NewDuplicateDetector(false)
		loose.CheckAndAdd(1, transposed(t))
		_, dup = loose.CheckAndAdd(2, transposed(t, "g1f3", "g8f6", "f3g1", "f6g8"))
		testutil.AssertTrue(t, dup)
	})

	t.Run("nil board", func(t *testing.T) {
		d := NewDuplicateDetector(false)
		_, dup := d.CheckAndAdd(1, nil)
		testutil.AssertFalse(t, dup)
		testutil.AssertEqual(t, d.UniqueCount(), 0)
	})

	t.Run("reset", func(t *testing.T) {
		d := NewDuplicateDetector(false)
		d.CheckAndAdd(1, transposed(t))
		d.CheckAndAdd(2, transposed(t))
		d.Reset()
		testutil.AssertEqual(t, d.DuplicateCount(), 0)
		testutil.AssertEqual(t, d.UniqueCount(), 0)
	})
}
