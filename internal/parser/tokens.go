// Package parser reads game files: one game per line of coordinate moves.
package parser

// TokenType represents the type of a lexical token.
type TokenType int

const (
	EOFToken   TokenType = iota
	EOLToken             // end of a non-empty line
	MoveToken            // e2e4, e2-e4
	SetupToken           // [placement] at the start of a line
)

// String returns the string representation of a token type.
func (t TokenType) String() string {
	switch t {
	case EOFToken:
		return "EOF"
	case EOLToken:
		return "EOL"
	case MoveToken:
		return "move"
	case SetupToken:
		return "setup"
	}
	return "unknown"
}

// Token is a lexical unit with its 1-based position in the input.
type Token struct {
	Type   TokenType
	Text   string
	Line   int
	Column int
}

// Comment character: the rest of the line is ignored.
const commentChar = '#'
