package model

import "time"

const (
	// MaxRounds is the number of words played in one session
	MaxRounds = 10

	// ScoreIncrease is awarded for each correct guess
	ScoreIncrease = 20
)

// SessionID uniquely identifies a game session
type SessionID string

// Phase is the coarse state of a session
type Phase string

const (
	PhasePlaying  Phase = "playing"
	PhaseGameOver Phase = "game_over" // Terminal until reset
)

// Session holds the state of one player's game
type Session struct {
	ID SessionID

	// Current round
	Word          string // Unscrambled target word
	ScrambledWord string
	WordIndex     int  // 0-indexed, always < MaxRounds
	WrongGuess    bool // Last guess for this word was wrong

	// Words drawn this session, in draw order
	UsedWords []string

	// Progress
	Score        int
	CorrectCount int
	SkippedCount int
	GameOver     bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// WordCount returns the 1-based number of the word being played
func (s *Session) WordCount() int {
	return s.WordIndex + 1
}

// Phase returns the current phase of the session
func (s *Session) Phase() Phase {
	if s.GameOver {
		return PhaseGameOver
	}
	return PhasePlaying
}

// HasUsed reports whether word was already drawn this session
func (s *Session) HasUsed(word string) bool {
	for _, w := range s.UsedWords {
		if w == word {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the session
func (s *Session) Clone() *Session {
	c := *s
	c.UsedWords = append([]string(nil), s.UsedWords...)
	return &c
}

// Summary returns the end-of-game summary, or nil while still playing
func (s *Session) Summary() *SessionSummary {
	if !s.GameOver {
		return nil
	}
	return &SessionSummary{
		ID:           s.ID,
		FinalScore:   s.Score,
		CorrectCount: s.CorrectCount,
		SkippedCount: s.SkippedCount,
		WordsPlayed:  append([]string(nil), s.UsedWords...),
		CompletedAt:  s.UpdatedAt,
	}
}

// SessionSummary is a lightweight record of a completed session
type SessionSummary struct {
	ID           SessionID
	FinalScore   int
	CorrectCount int
	SkippedCount int
	WordsPlayed  []string
	CompletedAt  time.Time
}
