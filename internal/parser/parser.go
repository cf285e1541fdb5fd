package parser

import (
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// GameRecord is one game read from input. Moves carry only From and To;
// the engine derives the piece and kind when the game is replayed.
type GameRecord struct {
	Index int    // 1-based position in the input
	File  string // source name, for reporting
	Line  int    // line the game was read from

	// Setup is a FEN piece placement the game starts from. Empty means the
	// standard starting position.
	Setup string

	Moves []chess.Move
}

// Parser reads GameRecords from a game file.
type Parser struct {
	lexer *Lexer
	file  string
	count int
}

// NewParser creates a parser for r. file names the input in errors.
func NewParser(r io.Reader, file string) *Parser {
	return &Parser{
		lexer: NewLexer(r),
		file:  file,
	}
}

// ParseGame parses the next game. It returns nil, nil at end of input.
// On a malformed move the rest of the line is skipped so that parsing can
// resume with the next game.
func (p *Parser) ParseGame() (*GameRecord, error) {
	tok := p.lexer.NextToken()
	if tok.Type == EOFToken {
		return nil, p.readError()
	}

	p.count++
	game := &GameRecord{Index: p.count, File: p.file, Line: tok.Line}

	if tok.Type == SetupToken {
		setup, err := p.decodeSetup(tok)
		if err != nil {
			p.skipLine()
			return nil, err
		}
		game.Setup = setup
		tok = p.lexer.NextToken()
	}

	for ; tok.Type == MoveToken; tok = p.lexer.NextToken() {
		move, err := DecodeMove(tok.Text)
		if err != nil {
			p.skipLine()
			return nil, p.errorAt(tok, err)
		}
		game.Moves = append(game.Moves, move)
	}

	return game, nil
}

// ParseAllGames parses every game in the input. Parsing stops at the first
// malformed game.
func (p *Parser) ParseAllGames() ([]*GameRecord, error) {
	var games []*GameRecord
	for {
		game, err := p.ParseGame()
		if err != nil {
			return games, err
		}
		if game == nil {
			return games, nil
		}
		games = append(games, game)
	}
}

// ParseGames is a convenience wrapper around NewParser and ParseAllGames.
func ParseGames(r io.Reader, file string) ([]*GameRecord, error) {
	return NewParser(r, file).ParseAllGames()
}

// DecodeMove converts coordinate move text into a bare move. Accepted forms
// are "e2e4", "e2-e4" and "e2xe5"; an optional "q" or "=Q" suffix names the
// queen a pawn always promotes to.
func DecodeMove(text string) (chess.Move, error) {
	s := strings.ToLower(text)
	s = strings.TrimSuffix(s, "=q")
	if len(s) == 5 && s[4] == 'q' {
		s = s[:4]
	}
	if len(s) == 5 && (s[2] == '-' || s[2] == 'x') {
		s = s[:2] + s[3:]
	}
	if len(s) != 4 {
		return chess.Move{}, errors.ErrParseFailure
	}

	from, err := chess.ParseCoordinate(s[:2])
	if err != nil {
		return chess.Move{}, errors.ErrInvalidCoordinate
	}
	to, err := chess.ParseCoordinate(s[2:])
	if err != nil {
		return chess.Move{}, errors.ErrInvalidCoordinate
	}
	return chess.Move{From: from, To: to}, nil
}

// decodeSetup strips the brackets from a setup token.
func (p *Parser) decodeSetup(tok Token) (string, error) {
	if len(tok.Text) < 3 || !strings.HasSuffix(tok.Text, "]") {
		return "", p.errorAt(tok, errors.ErrParseFailure)
	}
	return tok.Text[1 : len(tok.Text)-1], nil
}

// skipLine discards tokens up to the end of the current line.
func (p *Parser) skipLine() {
	for {
		tok := p.lexer.NextToken()
		if tok.Type == EOLToken || tok.Type == EOFToken {
			return
		}
	}
}

func (p *Parser) errorAt(tok Token, err error) error {
	return &errors.ParseError{
		Err:    err,
		File:   p.file,
		Line:   tok.Line,
		Column: tok.Column,
		Got:    tok.Text,
	}
}

func (p *Parser) readError() error {
	if err := p.lexer.Err(); err != nil {
		return errors.Wrap(err, p.file)
	}
	return nil
}
