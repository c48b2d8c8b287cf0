package response

import (
	"time"

	"github.com/mcoot/unscramble/internal/model"
)

// Summary is shown once a session is over
type Summary struct {
	FinalScore   int       `json:"final_score"`
	CorrectCount int       `json:"correct_count"`
	SkippedCount int       `json:"skipped_count"`
	WordsPlayed  []string  `json:"words_played"`
	CompletedAt  time.Time `json:"completed_at"`
}

// SummaryFromModel converts model.SessionSummary
func SummaryFromModel(s *model.SessionSummary) *Summary {
	if s == nil {
		return nil
	}
	return &Summary{
		FinalScore:   s.FinalScore,
		CorrectCount: s.CorrectCount,
		SkippedCount: s.SkippedCount,
		WordsPlayed:  s.WordsPlayed,
		CompletedAt:  s.CompletedAt,
	}
}

// Session is the read-only projection of a session shown to players.
// The target word is never included.
type Session struct {
	ID            string   `json:"id"`
	State         string   `json:"state"`
	ScrambledWord string   `json:"scrambled_word"`
	WordCount     int      `json:"word_count"`
	MaxWords      int      `json:"max_words"`
	Score         int      `json:"score"`
	WrongGuess    bool     `json:"wrong_guess"`
	GameOver      bool     `json:"game_over"`
	Summary       *Summary `json:"summary,omitempty"`
}

// SessionFromModel converts model.Session
func SessionFromModel(s *model.Session) Session {
	return Session{
		ID:            string(s.ID),
		State:         string(s.Phase()),
		ScrambledWord: s.ScrambledWord,
		WordCount:     s.WordCount(),
		MaxWords:      model.MaxRounds,
		Score:         s.Score,
		WrongGuess:    s.WrongGuess,
		GameOver:      s.GameOver,
		Summary:       SummaryFromModel(s.Summary()),
	}
}

// GuessResult is the response for a submitted guess
type GuessResult struct {
	Correct bool    `json:"correct"`
	Outcome string  `json:"outcome"`
	Session Session `json:"session"`
}

// GuessResultFromModel converts model.GuessResult
func GuessResultFromModel(r model.GuessResult) GuessResult {
	return GuessResult{
		Correct: r.IsCorrect(),
		Outcome: string(r.Outcome),
		Session: SessionFromModel(r.Session),
	}
}

// Health is the response for the health check
type Health struct {
	Status    string `json:"status"`
	WordCount int    `json:"word_count"`
}
