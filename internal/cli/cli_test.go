package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/unscramble/internal/api"
	"github.com/mcoot/unscramble/internal/cli"
	"github.com/mcoot/unscramble/internal/factory"
	"github.com/mcoot/unscramble/internal/model"
	"github.com/mcoot/unscramble/internal/testutil"
)

type harness struct {
	app         *factory.TestApp
	server      *httptest.Server
	sessionFile string
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	app := factory.NewTestApp()
	require.NoError(t, app.LoadTestWords())

	server := httptest.NewServer(api.NewRouter(api.RouterConfig{
		Logger:            testutil.NopLogger(),
		SessionController: app.SessionController,
		WordBank:          app.WordBank,
	}))
	t.Cleanup(server.Close)

	return &harness{
		app:         app,
		server:      server,
		sessionFile: filepath.Join(t.TempDir(), "session"),
	}
}

// run executes the CLI with stdin and returns stdout
func (h *harness) run(stdin string, args ...string) (string, error) {
	cmd := cli.NewRootCmd()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{
		"--server", h.server.URL,
		"--session-file", h.sessionFile,
	}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func (h *harness) savedSession(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(h.sessionFile)
	require.NoError(t, err)
	return string(data)
}

func TestHealthCommand(t *testing.T) {
	h := newHarness(t)

	out, err := h.run("", "health")
	require.NoError(t, err)
	assert.Contains(t, out, "Status: ok")
	assert.Contains(t, out, "Words: 12")
}

func TestSessionCommands(t *testing.T) {
	h := newHarness(t)
	h.app.MockRandom.QueueString("CLISESSION01")

	out, err := h.run("", "session", "new")
	require.NoError(t, err)
	assert.Contains(t, out, "Session: CLISESSION01")
	assert.Contains(t, out, "Word 1 of 10   Score: 0")
	assert.Equal(t, "CLISESSION01", h.savedSession(t))

	out, err = h.run("", "session", "guess", "pear")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrong Guess!")

	// First word drawn is the first in bank order
	out, err = h.run("", "session", "guess", "apple")
	require.NoError(t, err)
	assert.Contains(t, out, "Correct!")
	assert.Contains(t, out, "Word 2 of 10   Score: 20")

	out, err = h.run("", "--output", "json", "session", "skip")
	require.NoError(t, err)
	var s cli.Session
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	assert.Equal(t, 3, s.WordCount)
	assert.Equal(t, 20, s.Score)

	out, err = h.run("", "session", "reset")
	require.NoError(t, err)
	assert.Contains(t, out, "Word 1 of 10   Score: 0")

	out, err = h.run("", "session", "end")
	require.NoError(t, err)
	assert.Contains(t, out, "Session ended")
	_, statErr := os.Stat(h.sessionFile)
	assert.True(t, os.IsNotExist(statErr))

	_, err = h.app.Storage.GetSession(context.Background(), "CLISESSION01")
	assert.ErrorIs(t, err, model.ErrSessionNotFound)
}

func TestSessionCommandWithoutSession(t *testing.T) {
	h := newHarness(t)

	_, err := h.run("", "session", "get")
	assert.ErrorIs(t, err, cli.ErrNoSession)
}

func TestSessionNotFoundError(t *testing.T) {
	h := newHarness(t)

	_, err := h.run("", "--session", "MISSING", "session", "get")
	require.Error(t, err)

	var apiErr *cli.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "SESSION_NOT_FOUND", apiErr.Code)
	assert.Equal(t, 404, apiErr.Status)
}

func TestPlayFullGame(t *testing.T) {
	h := newHarness(t)
	h.app.MockRandom.QueueString("PLAYSESSION1")

	// Words are drawn in bank order with the default mock
	input := strings.Join([]string{
		"apple",
		"pear",
		":skip",
		"cherry", "damson", "elder", "fig", "grape", "hazel", "listen", "silent",
		"n",
	}, "\n") + "\n"

	out, err := h.run(input, "play")
	require.NoError(t, err)

	assert.Contains(t, out, "Word 1 of 10   Score: 0")
	assert.Contains(t, out, "Correct!")
	assert.Contains(t, out, "Wrong Guess!")
	assert.Contains(t, out, "Word 10 of 10   Score: 160")
	assert.Contains(t, out, "Game over!")
	assert.Contains(t, out, "You scored: 180")
	assert.Contains(t, out, "Correct: 9   Skipped: 1")
	assert.Contains(t, out, "Thanks for playing!")

	_, err = h.app.Storage.GetSession(context.Background(), "PLAYSESSION1")
	assert.ErrorIs(t, err, model.ErrSessionNotFound)
}

func TestPlayAgain(t *testing.T) {
	h := newHarness(t)
	h.app.MockRandom.QueueString("PLAYSESSION2")

	input := strings.Repeat(":skip\n", model.MaxRounds) + "y\n:quit\n"

	out, err := h.run(input, "play")
	require.NoError(t, err)

	assert.Equal(t, 2, strings.Count(out, "Word 1 of 10   Score: 0"))
	assert.Contains(t, out, "You scored: 0")
	assert.Contains(t, out, "Bye!")
	assert.Equal(t, "PLAYSESSION2", h.savedSession(t))

	s, err := h.app.Storage.GetSession(context.Background(), "PLAYSESSION2")
	require.NoError(t, err)
	assert.False(t, s.GameOver)
	assert.Equal(t, 0, s.WordIndex)
}

func TestPlayEndOfInput(t *testing.T) {
	h := newHarness(t)
	h.app.MockRandom.QueueString("PLAYSESSION3")

	out, err := h.run("", "play")
	require.NoError(t, err)
	assert.Contains(t, out, "Unscramble: ")
}
