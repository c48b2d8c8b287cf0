package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusRow(t *testing.T) {
	assert.Equal(t, "Word 3 of 10   Score: 40", StatusRow(Session{WordCount: 3, MaxWords: 10, Score: 40}))
}

func TestPrintSessionText(t *testing.T) {
	var buf bytes.Buffer
	out := NewOutput("text", &buf, &buf)

	out.Print(Session{ID: "abc", ScrambledWord: "tsilne", WordCount: 2, MaxWords: 10, Score: 20, WrongGuess: true})

	assert.Equal(t, "Session: abc\nWord 2 of 10   Score: 20\nUnscramble: tsilne\nWrong Guess!\n", buf.String())
}

func TestPrintGameOverShowsSummary(t *testing.T) {
	var buf bytes.Buffer
	out := NewOutput("text", &buf, &buf)

	out.Print(Session{
		ID:       "abc",
		GameOver: true,
		Summary: &Summary{
			FinalScore:   60,
			CorrectCount: 3,
			SkippedCount: 7,
			WordsPlayed:  []string{"apple", "banana"},
		},
	})

	assert.Contains(t, buf.String(), "Game over!")
	assert.Contains(t, buf.String(), "You scored: 60")
	assert.Contains(t, buf.String(), "Correct: 3   Skipped: 7")
	assert.Contains(t, buf.String(), "Words: apple, banana")
	assert.NotContains(t, buf.String(), "Unscramble:")
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	out := NewOutput("json", &buf, &buf)

	out.Print(HealthResult{Status: "ok", WordCount: 5})

	assert.JSONEq(t, `{"status":"ok","word_count":5}`, buf.String())
}

func TestPrintError(t *testing.T) {
	var stdout, stderr bytes.Buffer

	NewOutput("text", &stdout, &stderr).PrintError(errors.New("boom"))
	assert.Equal(t, "Error: boom\n", stderr.String())

	stderr.Reset()
	NewOutput("json", &stdout, &stderr).PrintError(errors.New("boom"))
	assert.JSONEq(t, `{"error":{"message":"boom"}}`, stderr.String())
	assert.Empty(t, stdout.String())
}

func TestConfigSessionFile(t *testing.T) {
	c := &Config{SessionFile: t.TempDir() + "/nested/session"}

	assert.NoError(t, c.LoadSession())
	assert.Empty(t, c.SessionID)

	_, err := c.RequireSession()
	assert.ErrorIs(t, err, ErrNoSession)

	assert.NoError(t, c.SaveSession("XYZ"))
	c.SessionID = ""
	assert.NoError(t, c.LoadSession())
	assert.Equal(t, "XYZ", c.SessionID)

	assert.NoError(t, c.ClearSession())
	assert.NoError(t, c.ClearSession())
	c.SessionID = ""
	assert.NoError(t, c.LoadSession())
	assert.Empty(t, c.SessionID)
}
