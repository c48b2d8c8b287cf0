package memory

import (
	"context"
	"sync"

	"github.com/mcoot/unscramble/internal/model"
	"github.com/mcoot/unscramble/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	sessions map[model.SessionID]*model.Session
	wordBank []string
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		sessions: make(map[model.SessionID]*model.Session),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Session operations

// SaveSession stores a copy of the session so later caller mutations
// must be saved explicitly
func (s *Storage) SaveSession(ctx context.Context, session *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session.Clone()
	return nil
}

func (s *Storage) GetSession(ctx context.Context, id model.SessionID) (*model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	return session.Clone(), nil
}

func (s *Storage) DeleteSession(ctx context.Context, id model.SessionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

// SessionCount returns the number of stored sessions
func (s *Storage) SessionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Word bank operations

func (s *Storage) GetWordBank(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.wordBank == nil {
		return nil, model.ErrWordBankNotLoaded
	}
	result := make([]string, len(s.wordBank))
	copy(result, s.wordBank)
	return result, nil
}

func (s *Storage) SaveWordBank(ctx context.Context, words []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wordBank = make([]string, len(words))
	copy(s.wordBank, words)
	return nil
}
