package storage

import (
	"context"

	"github.com/mcoot/unscramble/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Session operations
	SaveSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, id model.SessionID) (*model.Session, error)
	DeleteSession(ctx context.Context, id model.SessionID) error

	// Word bank operations
	GetWordBank(ctx context.Context) ([]string, error)
	SaveWordBank(ctx context.Context, words []string) error
}
