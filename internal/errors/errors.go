// Package errors provides sentinel errors and error types for the chess rules engine.
// It defines the move failure taxonomy and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Move pipeline failures. Each rejected move reports exactly one of these.
// Use them with errors.Is() to check for specific failure kinds.
var (
	// ErrOutOfBounds indicates a coordinate outside the 8x8 grid.
	ErrOutOfBounds = errors.New("coordinate out of bounds")

	// ErrEmptySource indicates there is no piece on the source square.
	ErrEmptySource = errors.New("no piece on source square")

	// ErrNotYourPiece indicates the piece does not belong to the side to move.
	ErrNotYourPiece = errors.New("piece does not belong to side to move")

	// ErrDestinationOccupiedBySelf indicates the destination holds a piece of the mover's colour.
	ErrDestinationOccupiedBySelf = errors.New("destination occupied by own piece")

	// ErrIllegalShape indicates the piece cannot move along this geometry.
	ErrIllegalShape = errors.New("illegal move shape")

	// ErrBlockedPath indicates a piece stands between source and destination.
	ErrBlockedPath = errors.New("path is blocked")

	// ErrLeavesKingInCheck indicates the move would leave the mover's king attacked.
	ErrLeavesKingInCheck = errors.New("move leaves king in check")
)

// Other sentinel errors.
var (
	// ErrIllegalMove matches every rejection that breaks the rules of movement.
	// A MoveError wrapping ErrIllegalShape, ErrBlockedPath or
	// ErrLeavesKingInCheck also matches ErrIllegalMove.
	ErrIllegalMove = errors.New("illegal move")

	// ErrReplayMismatch indicates a recorded move disagrees with the position it is replayed on.
	ErrReplayMismatch = errors.New("recorded move does not match position")

	// ErrInvalidCoordinate indicates malformed coordinate text.
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrParseFailure indicates a general game file parsing error.
	ErrParseFailure = errors.New("parse failure")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnknownSession indicates a session id that is not registered.
	ErrUnknownSession = errors.New("unknown session")
)

// MoveError wraps a move failure with the squares involved and the ply
// at which it was attempted. It supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err  error  // The underlying failure kind
	From string // Source square text
	To   string // Destination square text
	Ply  int    // 1-based ply of the attempted move (0 if not applicable)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.From != "" || e.To != "" {
		parts = append(parts, fmt.Sprintf("move %s-%s", e.From, e.To))
	}

	context := strings.Join(parts, ", ")
	switch {
	case e.Err == nil:
		return context
	case context == "":
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", context, e.Err)
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Is reports ErrIllegalMove for the rule-breaking failure kinds.
func (e *MoveError) Is(target error) bool {
	if target != ErrIllegalMove {
		return false
	}
	return errors.Is(e.Err, ErrIllegalShape) ||
		errors.Is(e.Err, ErrBlockedPath) ||
		errors.Is(e.Err, ErrLeavesKingInCheck)
}

// ParseError represents a parsing error with file location context.
// It's used for game file and coordinate parsing errors.
type ParseError struct {
	Err    error  // The underlying error
	File   string // Source file name
	Line   int    // Line number (1-based)
	Column int    // Column number (1-based)
	Got    string // The offending text
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.File != "" || e.Line > 0 {
		loc := e.File
		if loc == "" {
			loc = "<input>"
		}
		if e.Line > 0 {
			loc += fmt.Sprintf(":%d", e.Line)
			if e.Column > 0 {
				loc += fmt.Sprintf(":%d", e.Column)
			}
		}
		parts = append(parts, loc)
	}

	if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %q", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
