package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
	errW   io.Writer
}

// NewOutput creates a new Output formatter writing to w, with errors to errW
func NewOutput(format string, w, errW io.Writer) *Output {
	return &Output{format: format, w: w, errW: errW}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		_, _ = fmt.Fprintln(o.errW, string(data))
	} else {
		_, _ = fmt.Fprintf(o.errW, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		_, _ = fmt.Fprintln(o.w, string(data))
	} else {
		_, _ = fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Session:
		o.printSession(v)
	case GuessResult:
		o.printGuessResult(v)
	case Summary:
		o.printSummary(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Session response type (matches API)
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

// Summary response type
type Summary struct {
	FinalScore   int       `json:"final_score"`
	CorrectCount int       `json:"correct_count"`
	SkippedCount int       `json:"skipped_count"`
	WordsPlayed  []string  `json:"words_played"`
	CompletedAt  time.Time `json:"completed_at"`
}

// GuessResult response type
type GuessResult struct {
	Correct bool    `json:"correct"`
	Outcome string  `json:"outcome"`
	Session Session `json:"session"`
}

// HealthResult response type
type HealthResult struct {
	Status    string `json:"status"`
	WordCount int    `json:"word_count"`
}

// StatusRow renders the word counter and score line
func StatusRow(s Session) string {
	return fmt.Sprintf("Word %d of %d   Score: %d", s.WordCount, s.MaxWords, s.Score)
}

func (o *Output) printSession(s Session) {
	_, _ = fmt.Fprintf(o.w, "Session: %s\n", s.ID)
	if s.GameOver && s.Summary != nil {
		o.printSummary(*s.Summary)
		return
	}
	_, _ = fmt.Fprintln(o.w, StatusRow(s))
	_, _ = fmt.Fprintf(o.w, "Unscramble: %s\n", s.ScrambledWord)
	if s.WrongGuess {
		_, _ = fmt.Fprintln(o.w, "Wrong Guess!")
	}
}

func (o *Output) printGuessResult(g GuessResult) {
	if g.Correct {
		_, _ = fmt.Fprintln(o.w, "Correct!")
	}
	o.printSession(g.Session)
}

func (o *Output) printSummary(s Summary) {
	_, _ = fmt.Fprintln(o.w, "Game over!")
	_, _ = fmt.Fprintf(o.w, "You scored: %d\n", s.FinalScore)
	_, _ = fmt.Fprintf(o.w, "Correct: %d   Skipped: %d\n", s.CorrectCount, s.SkippedCount)
	if len(s.WordsPlayed) > 0 {
		_, _ = fmt.Fprintf(o.w, "Words: %s\n", strings.Join(s.WordsPlayed, ", "))
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	_, _ = fmt.Fprintf(o.w, "Status: %s\n", h.Status)
	_, _ = fmt.Fprintf(o.w, "Words: %d\n", h.WordCount)
}
