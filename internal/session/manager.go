package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Manager is a registry of sessions keyed by id.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	logger   zerolog.Logger
}

// NewManager creates an empty registry that logs through logger.
func NewManager(logger zerolog.Logger) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		logger:   logger,
	}
}

// Create opens a session in the standard starting position.
func (m *Manager) Create() *Session {
	return m.register(engine.NewGame())
}

// CreateFrom opens a session by replaying moves from the starting position.
// No session is registered if any move is rejected.
func (m *Manager) CreateFrom(moves []chess.Move) (*Session, error) {
	board, err := engine.NewGameFrom(moves)
	if err != nil {
		return nil, err
	}
	return m.register(board), nil
}

// CreateFromPlacement opens a session on a board holding the given FEN
// piece placement, White to move.
func (m *Manager) CreateFromPlacement(placement string) (*Session, error) {
	board, err := engine.NewBoardFromPlacement(placement)
	if err != nil {
		return nil, err
	}
	return m.register(board), nil
}

func (m *Manager) register(board *chess.Board) *Session {
	engine.UpdateBoardState(board)

	s := &Session{
		id:      uuid.New().String(),
		created: time.Now(),
		logger:  m.logger,
		board:   board,
	}

	m.mu.Lock()
	m.sessions[s.id] = s
	m.mu.Unlock()

	m.logger.Info().Str("session", s.id).Int("ply", board.Ply()).Msg("session created")
	return s
}

// Get returns the session with the given id.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, errors.Wrapf(errors.ErrUnknownSession, "session %q", id)
	}
	return s, nil
}

// Remove deletes the session with the given id.
func (m *Manager) Remove(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return errors.Wrapf(errors.ErrUnknownSession, "session %q", id)
	}
	delete(m.sessions, id)
	m.logger.Info().Str("session", id).Msg("session removed")
	return nil
}

// Len returns the number of open sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// IDs returns the ids of all open sessions in no particular order.
func (m *Manager) IDs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]string, 0, len(m.sessions))
	for id := range m.sessions {
		ids = append(ids, id)
	}
	return ids
}
