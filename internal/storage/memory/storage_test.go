package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/unscramble/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func newSession(id model.SessionID) *model.Session {
	return &model.Session{
		ID:            id,
		Word:          "listen",
		ScrambledWord: "tsinel",
		UsedWords:     []string{"listen"},
		CreatedAt:     time.Now(),
	}
}

// Session tests

func (s *StorageSuite) TestSaveAndGetSession() {
	session := newSession("S1")

	err := s.storage.SaveSession(s.ctx, session)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetSession(s.ctx, "S1")
	s.Require().NoError(err)
	s.Equal(session.ID, retrieved.ID)
	s.Equal(session.Word, retrieved.Word)
	s.Equal(session.ScrambledWord, retrieved.ScrambledWord)
	s.Equal(session.UsedWords, retrieved.UsedWords)
}

func (s *StorageSuite) TestGetSessionNotFound() {
	_, err := s.storage.GetSession(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestSavedSessionIsIsolatedFromCaller() {
	session := newSession("S1")
	_ = s.storage.SaveSession(s.ctx, session)

	session.Score = 100
	session.UsedWords[0] = "changed"

	retrieved, err := s.storage.GetSession(s.ctx, "S1")
	s.Require().NoError(err)
	s.Equal(0, retrieved.Score)
	s.Equal("listen", retrieved.UsedWords[0])
}

func (s *StorageSuite) TestRetrievedSessionIsIsolatedFromStore() {
	_ = s.storage.SaveSession(s.ctx, newSession("S1"))

	first, _ := s.storage.GetSession(s.ctx, "S1")
	first.Score = 100

	second, _ := s.storage.GetSession(s.ctx, "S1")
	s.Equal(0, second.Score)
}

func (s *StorageSuite) TestSaveSessionOverwrites() {
	session := newSession("S1")
	_ = s.storage.SaveSession(s.ctx, session)

	session.Score = 40
	_ = s.storage.SaveSession(s.ctx, session)

	retrieved, _ := s.storage.GetSession(s.ctx, "S1")
	s.Equal(40, retrieved.Score)
	s.Equal(1, s.storage.SessionCount())
}

func (s *StorageSuite) TestDeleteSession() {
	_ = s.storage.SaveSession(s.ctx, newSession("S1"))

	err := s.storage.DeleteSession(s.ctx, "S1")
	s.Require().NoError(err)

	_, err = s.storage.GetSession(s.ctx, "S1")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestDeleteMissingSessionIsNoop() {
	s.NoError(s.storage.DeleteSession(s.ctx, "nonexistent"))
}

// Word bank tests

func (s *StorageSuite) TestGetWordBankNotLoaded() {
	_, err := s.storage.GetWordBank(s.ctx)
	s.ErrorIs(err, model.ErrWordBankNotLoaded)
}

func (s *StorageSuite) TestSaveAndGetWordBank() {
	words := []string{"apple", "banana", "cherry"}
	err := s.storage.SaveWordBank(s.ctx, words)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetWordBank(s.ctx)
	s.Require().NoError(err)
	s.Equal(words, retrieved)
}

func (s *StorageSuite) TestWordBankIsCopied() {
	words := []string{"apple", "banana"}
	_ = s.storage.SaveWordBank(s.ctx, words)
	words[0] = "changed"

	retrieved, _ := s.storage.GetWordBank(s.ctx)
	s.Equal("apple", retrieved[0])
}
