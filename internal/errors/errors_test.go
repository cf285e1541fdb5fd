package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors_Distinct verifies that every failure kind is a distinct sentinel.
func TestSentinelErrors_Distinct(t *testing.T) {
	kinds := []error{
		ErrOutOfBounds,
		ErrEmptySource,
		ErrNotYourPiece,
		ErrDestinationOccupiedBySelf,
		ErrIllegalShape,
		ErrBlockedPath,
		ErrLeavesKingInCheck,
	}

	for i, a := range kinds {
		for j, b := range kinds {
			if i != j && errors.Is(a, b) {
				t.Errorf("errors.Is(%v, %v) = true, want false", a, b)
			}
		}
	}
}

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("validating e2e5: %w", ErrIllegalShape)

	if !errors.Is(wrapped, ErrIllegalShape) {
		t.Errorf("errors.Is(wrapped, ErrIllegalShape) = false, want true")
	}
}

// TestMoveError_Error verifies the error message format
func TestMoveError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *MoveError
		contains []string
	}{
		{
			name: "full context",
			err: &MoveError{
				Err:  ErrBlockedPath,
				From: "a1",
				To:   "a8",
				Ply:  12,
			},
			contains: []string{"ply 12", "a1-a8", "path is blocked"},
		},
		{
			name:     "minimal context",
			err:      &MoveError{Err: ErrEmptySource},
			contains: []string{"no piece on source square"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("MoveError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

// TestMoveError_Unwrap verifies that MoveError properly implements Unwrap
func TestMoveError_Unwrap(t *testing.T) {
	moveErr := &MoveError{Err: ErrNotYourPiece, From: "e7", To: "e5", Ply: 1}

	unwrapped := errors.Unwrap(moveErr)
	if !errors.Is(unwrapped, ErrNotYourPiece) {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, ErrNotYourPiece)
	}

	if !errors.Is(moveErr, ErrNotYourPiece) {
		t.Error("errors.Is(moveErr, ErrNotYourPiece) = false, want true")
	}
}

// TestMoveError_IllegalMove verifies the umbrella sentinel matches only rule-breaking kinds.
func TestMoveError_IllegalMove(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{ErrIllegalShape, true},
		{ErrBlockedPath, true},
		{ErrLeavesKingInCheck, true},
		{ErrOutOfBounds, false},
		{ErrEmptySource, false},
		{ErrNotYourPiece, false},
		{ErrDestinationOccupiedBySelf, false},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			got := errors.Is(&MoveError{Err: tt.err}, ErrIllegalMove)
			if got != tt.want {
				t.Errorf("errors.Is(MoveError{%v}, ErrIllegalMove) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

// TestMoveError_As verifies that errors.As works with MoveError
func TestMoveError_As(t *testing.T) {
	moveErr := &MoveError{Err: ErrLeavesKingInCheck, From: "c1", To: "b1", Ply: 24}

	wrapped := fmt.Errorf("replaying game: %w", moveErr)

	var extractedErr *MoveError
	if !errors.As(wrapped, &extractedErr) {
		t.Fatal("errors.As() could not extract MoveError")
	}

	if extractedErr.Ply != 24 {
		t.Errorf("extractedErr.Ply = %d, want 24", extractedErr.Ply)
	}
	if extractedErr.From != "c1" {
		t.Errorf("extractedErr.From = %q, want %q", extractedErr.From, "c1")
	}
}

// TestParseError_Error verifies ParseError formatting
func TestParseError_Error(t *testing.T) {
	err := &ParseError{
		Err:    ErrInvalidCoordinate,
		File:   "games.txt",
		Line:   100,
		Column: 15,
		Got:    "z9",
	}

	msg := err.Error()

	if !containsIgnoreCase(msg, "games.txt:100:15") {
		t.Errorf("ParseError.Error() should contain location, got %q", msg)
	}
	if !containsIgnoreCase(msg, "z9") {
		t.Errorf("ParseError.Error() should contain offending text, got %q", msg)
	}
}

// TestParseError_Unwrap verifies ParseError implements Unwrap
func TestParseError_Unwrap(t *testing.T) {
	parseErr := &ParseError{
		Err:  ErrParseFailure,
		File: "games.txt",
		Line: 1,
	}

	if !errors.Is(parseErr, ErrParseFailure) {
		t.Error("errors.Is(parseErr, ErrParseFailure) = false, want true")
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrInvalidConfig, "loading environment")

	if !errors.Is(wrapped, ErrInvalidConfig) {
		t.Error("Wrap should preserve the underlying error")
	}

	msg := wrapped.Error()
	if !containsIgnoreCase(msg, "loading environment") {
		t.Errorf("Wrap should include context, got %q", msg)
	}

	if Wrap(nil, "anything") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrIllegalMove, "move %d in game %d", 15, 3)

	if !errors.Is(wrapped, ErrIllegalMove) {
		t.Error("Wrapf should preserve the underlying error")
	}

	msg := wrapped.Error()
	if !containsIgnoreCase(msg, "move 15") {
		t.Errorf("Wrapf should include formatted context, got %q", msg)
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
