package parser

import (
	"bufio"
	"io"
	"strings"
)

// Lexer tokenizes game files line by line.
type Lexer struct {
	scanner *bufio.Scanner
	line    string
	pos     int
	lineNum int
	pending bool // current line produced a token, so an EOL is owed
	eof     bool
}

// NewLexer creates a lexer reading from r.
func NewLexer(r io.Reader) *Lexer {
	return &Lexer{scanner: bufio.NewScanner(r)}
}

// LineNumber returns the current 1-based line number.
func (l *Lexer) LineNumber() int {
	return l.lineNum
}

// Err returns the first read error, if any.
func (l *Lexer) Err() error {
	return l.scanner.Err()
}

// NextToken returns the next token. Blank and comment-only lines produce no
// tokens; every other line ends with an EOLToken.
func (l *Lexer) NextToken() Token {
	for {
		if l.eof {
			return Token{Type: EOFToken, Line: l.lineNum}
		}

		l.skipWhitespace()
		if l.pos < len(l.line) && l.line[l.pos] != commentChar {
			return l.readWord()
		}

		if l.pending {
			l.pending = false
			return Token{Type: EOLToken, Line: l.lineNum, Column: l.pos + 1}
		}

		if !l.scanner.Scan() {
			l.eof = true
			continue
		}
		l.line = l.scanner.Text()
		l.pos = 0
		l.lineNum++
	}
}

// skipWhitespace advances past spaces and tabs.
func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.line) && isSpace(l.line[l.pos]) {
		l.pos++
	}
}

// readWord reads a whitespace-delimited word and classifies it.
func (l *Lexer) readWord() Token {
	start := l.pos
	for l.pos < len(l.line) && !isSpace(l.line[l.pos]) && l.line[l.pos] != commentChar {
		l.pos++
	}

	word := l.line[start:l.pos]
	tok := Token{Type: MoveToken, Text: word, Line: l.lineNum, Column: start + 1}
	if !l.pending && strings.HasPrefix(word, "[") {
		tok.Type = SetupToken
	}
	l.pending = true
	return tok
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r'
}
