package model

// GuessOutcome is the result of checking a guess
type GuessOutcome string

const (
	GuessCorrect GuessOutcome = "correct"
	GuessWrong   GuessOutcome = "wrong"
)

// GuessResult is returned for every checked guess. A wrong guess is a
// normal outcome, not an error.
type GuessResult struct {
	Outcome GuessOutcome
	Session *Session
}

// IsCorrect returns true if the guess matched
func (r GuessResult) IsCorrect() bool {
	return r.Outcome == GuessCorrect
}
