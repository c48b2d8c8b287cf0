package game

import (
	"context"
	"log/slog"

	"github.com/mcoot/unscramble/internal/dependencies/clock"
	"github.com/mcoot/unscramble/internal/dependencies/random"
	"github.com/mcoot/unscramble/internal/model"
	"github.com/mcoot/unscramble/internal/services/round"
	"github.com/mcoot/unscramble/internal/storage"
)

// sessionIDLength is the length of generated session IDs
const sessionIDLength = 12

// Controller manages session lifecycle and persistence around the round tracker
type Controller struct {
	storage storage.Storage
	tracker *round.Tracker
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// NewController creates a new session Controller
func NewController(
	storage storage.Storage,
	tracker *round.Tracker,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage: storage,
		tracker: tracker,
		clock:   clock,
		random:  random,
		logger:  logger,
	}
}

// StartSession creates a new session at its first round
func (c *Controller) StartSession(ctx context.Context) (*model.Session, error) {
	now := c.clock.Now()
	session := &model.Session{
		ID:        model.SessionID(c.random.String(sessionIDLength, random.Alphanumeric)),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := c.tracker.Reset(session); err != nil {
		c.logger.Error("failed to draw first word",
			slog.String("session_id", string(session.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	if err := c.save(ctx, session); err != nil {
		return nil, err
	}

	c.logger.Info("session started",
		slog.String("session_id", string(session.ID)),
	)

	return session, nil
}

// GetSession retrieves a session by ID
func (c *Controller) GetSession(ctx context.Context, id model.SessionID) (*model.Session, error) {
	return c.storage.GetSession(ctx, id)
}

// SubmitGuess checks a guess against the session's current word
func (c *Controller) SubmitGuess(ctx context.Context, id model.SessionID, guess string) (model.GuessResult, error) {
	session, err := c.storage.GetSession(ctx, id)
	if err != nil {
		return model.GuessResult{}, err
	}

	result, err := c.tracker.CheckGuess(session, guess)
	if err != nil {
		return model.GuessResult{}, err
	}

	c.logger.Debug("guess checked",
		slog.String("session_id", string(id)),
		slog.String("outcome", string(result.Outcome)),
		slog.Int("word_count", session.WordCount()),
	)

	if err := c.save(ctx, session); err != nil {
		return model.GuessResult{}, err
	}
	c.logIfCompleted(session)

	return result, nil
}

// SkipWord moves the session to its next word without scoring
func (c *Controller) SkipWord(ctx context.Context, id model.SessionID) (*model.Session, error) {
	session, err := c.storage.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := c.tracker.Skip(session); err != nil {
		return nil, err
	}

	if err := c.save(ctx, session); err != nil {
		return nil, err
	}
	c.logIfCompleted(session)

	return session, nil
}

// PlayAgain resets the session to a fresh game
func (c *Controller) PlayAgain(ctx context.Context, id model.SessionID) (*model.Session, error) {
	session, err := c.storage.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	previousScore := session.Score
	if err := c.tracker.Reset(session); err != nil {
		return nil, err
	}

	if err := c.save(ctx, session); err != nil {
		return nil, err
	}

	c.logger.Info("session reset",
		slog.String("session_id", string(id)),
		slog.Int("previous_score", previousScore),
	)

	return session, nil
}

// EndSession discards a session
func (c *Controller) EndSession(ctx context.Context, id model.SessionID) error {
	if _, err := c.storage.GetSession(ctx, id); err != nil {
		return err
	}

	if err := c.storage.DeleteSession(ctx, id); err != nil {
		return err
	}

	c.logger.Info("session ended",
		slog.String("session_id", string(id)),
	)
	return nil
}

func (c *Controller) save(ctx context.Context, session *model.Session) error {
	session.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveSession(ctx, session); err != nil {
		c.logger.Error("failed to save session",
			slog.String("session_id", string(session.ID)),
			slog.String("error", err.Error()),
		)
		return err
	}
	return nil
}

func (c *Controller) logIfCompleted(session *model.Session) {
	if !session.GameOver {
		return
	}
	c.logger.Info("session completed",
		slog.String("session_id", string(session.ID)),
		slog.Int("score", session.Score),
		slog.Int("correct", session.CorrectCount),
		slog.Int("skipped", session.SkippedCount),
		slog.Duration("duration", clock.Since(c.clock, session.CreatedAt)),
	)
}

// ControllerInterface is the session API used by transports
type ControllerInterface interface {
	StartSession(ctx context.Context) (*model.Session, error)
	GetSession(ctx context.Context, id model.SessionID) (*model.Session, error)
	SubmitGuess(ctx context.Context, id model.SessionID, guess string) (model.GuessResult, error)
	SkipWord(ctx context.Context, id model.SessionID) (*model.Session, error)
	PlayAgain(ctx context.Context, id model.SessionID) (*model.Session, error)
	EndSession(ctx context.Context, id model.SessionID) error
}

var _ ControllerInterface = (*Controller)(nil)
