// Package round implements the per-session round state machine: checking
// guesses, skipping words and resetting a session.
//
// A session moves Playing -> Playing on each completed round until the
// last round completes, at which point it is GameOver. GameOver is terminal
// until Reset.
package round

import (
	"fmt"
	"strings"

	"github.com/mcoot/unscramble/internal/model"
	"github.com/mcoot/unscramble/internal/services/wordbank"
)

// Options configures a Tracker
type Options struct {
	// AcceptAnagrams treats any other bank word with exactly the target's
	// letters as a correct guess
	AcceptAnagrams bool
}

// DefaultOptions returns the default tracker options
func DefaultOptions() Options {
	return Options{AcceptAnagrams: true}
}

// Tracker applies guesses, skips and resets to a session
type Tracker struct {
	words wordbank.ServiceInterface
	opts  Options
}

// NewTracker creates a Tracker drawing words from the given bank
func NewTracker(words wordbank.ServiceInterface, opts Options) *Tracker {
	return &Tracker{words: words, opts: opts}
}

// CheckGuess compares candidate to the current target word. A match awards
// model.ScoreIncrease and advances; a mismatch only sets WrongGuess.
func (t *Tracker) CheckGuess(s *model.Session, candidate string) (model.GuessResult, error) {
	if s.GameOver {
		return model.GuessResult{}, model.ErrGameOver
	}

	if !t.matches(s.Word, candidate) {
		s.WrongGuess = true
		return model.GuessResult{Outcome: model.GuessWrong, Session: s}, nil
	}

	if err := t.advance(s); err != nil {
		return model.GuessResult{}, err
	}
	s.Score += model.ScoreIncrease
	s.CorrectCount++

	return model.GuessResult{Outcome: model.GuessCorrect, Session: s}, nil
}

// Skip advances to the next word without changing the score
func (t *Tracker) Skip(s *model.Session) error {
	if s.GameOver {
		return model.ErrGameOver
	}
	if err := t.advance(s); err != nil {
		return err
	}
	s.SkippedCount++
	return nil
}

// Reset restores the session to its first round with a freshly drawn word
func (t *Tracker) Reset(s *model.Session) error {
	word, scrambled, err := t.next(nil)
	if err != nil {
		return err
	}

	s.Word = word
	s.ScrambledWord = scrambled
	s.UsedWords = []string{word}
	s.WordIndex = 0
	s.Score = 0
	s.CorrectCount = 0
	s.SkippedCount = 0
	s.WrongGuess = false
	s.GameOver = false
	return nil
}

// advance completes the current round. The session is only changed on success.
func (t *Tracker) advance(s *model.Session) error {
	if s.WordIndex+1 >= model.MaxRounds {
		s.GameOver = true
		s.WrongGuess = false
		return nil
	}

	word, scrambled, err := t.next(s.UsedWords)
	if err != nil {
		return err
	}

	s.WordIndex++
	s.Word = word
	s.ScrambledWord = scrambled
	s.UsedWords = append(s.UsedWords, word)
	s.WrongGuess = false
	return nil
}

func (t *Tracker) next(used []string) (string, string, error) {
	word, err := t.words.Draw(used)
	if err != nil {
		return "", "", fmt.Errorf("draw word: %w", err)
	}
	scrambled, err := t.words.Scramble(word)
	if err != nil {
		return "", "", fmt.Errorf("scramble %q: %w", word, err)
	}
	return word, scrambled, nil
}

func (t *Tracker) matches(target, candidate string) bool {
	guess := strings.ToLower(strings.TrimSpace(candidate))
	if guess == "" {
		return false
	}
	if guess == strings.ToLower(target) {
		return true
	}
	if !t.opts.AcceptAnagrams {
		return false
	}
	for _, w := range t.words.Anagrams(target) {
		if w == guess {
			return true
		}
	}
	return false
}
