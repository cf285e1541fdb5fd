// Package session keeps independent games in progress, one board per session.
// Sessions may be used from many goroutines; boards are never shared.
package session

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// Status summarizes a session's position for the side to move.
type Status struct {
	Ply     int
	ToMove  chess.Colour
	Outcome chess.Outcome
	Draws   engine.DrawReport
}

// Session is one game in progress. All methods are safe for concurrent use.
type Session struct {
	id      string
	created time.Time
	logger  zerolog.Logger

	mu    sync.Mutex
	board *chess.Board
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Created returns when the session was opened.
func (s *Session) Created() time.Time {
	return s.created
}

// Move validates and commits from->to, then refreshes the stored outcome.
func (s *Session) Move(from, to chess.Coordinate) (chess.Move, Status, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	move, err := engine.PerformMove(s.board, from, to)
	if err != nil {
		s.logger.Debug().Err(err).Str("session", s.id).Msg("move rejected")
		return chess.Move{}, s.statusLocked(), err
	}

	engine.UpdateBoardState(s.board)
	status := s.statusLocked()
	s.logger.Debug().
		Str("session", s.id).
		Stringer("move", move).
		Stringer("outcome", status.Outcome).
		Int("ply", status.Ply).
		Msg("move committed")
	return move, status, nil
}

// Status classifies the current position.
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	engine.UpdateBoardState(s.board)
	return s.statusLocked()
}

func (s *Session) statusLocked() Status {
	return Status{
		Ply:     s.board.Ply(),
		ToMove:  s.board.ToMove(),
		Outcome: s.board.State(),
		Draws:   engine.AnalyzeDraws(s.board),
	}
}

// History returns the committed moves in order.
func (s *Session) History() []chess.Move {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.MoveHistory()
}

// LegalMoves returns the legal moves of the side to move.
func (s *Session) LegalMoves() []chess.Move {
	s.mu.Lock()
	defer s.mu.Unlock()
	return engine.LegalMoves(s.board)
}

// Board returns a deep copy of the session's board.
func (s *Session) Board() *chess.Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Copy()
}
