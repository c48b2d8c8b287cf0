package cli

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoSession is returned when a command needs a session and none is saved
var ErrNoSession = errors.New(`no session: run "unscramble session new" or pass --session`)

// Config holds CLI configuration
type Config struct {
	ServerURL   string
	SessionID   string
	SessionFile string
	Output      string
	Verbose     bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL:   getEnvOrDefault("UNSCRAMBLE_SERVER", "http://localhost:8080"),
		SessionID:   os.Getenv("UNSCRAMBLE_SESSION"),
		SessionFile: getEnvOrDefault("UNSCRAMBLE_SESSION_FILE", defaultSessionFile()),
		Output:      "text",
		Verbose:     false,
	}
}

// LoadSession loads the session ID from file if not already set
func (c *Config) LoadSession() error {
	if c.SessionID != "" {
		return nil
	}

	data, err := os.ReadFile(c.SessionFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // No session file is fine
		}
		return err
	}

	c.SessionID = strings.TrimSpace(string(data))
	return nil
}

// SaveSession saves the session ID to the session file
func (c *Config) SaveSession(id string) error {
	c.SessionID = id

	dir := filepath.Dir(c.SessionFile)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	return os.WriteFile(c.SessionFile, []byte(id), 0600)
}

// ClearSession forgets the saved session ID
func (c *Config) ClearSession() error {
	c.SessionID = ""
	if err := os.Remove(c.SessionFile); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// RequireSession returns the current session ID or ErrNoSession
func (c *Config) RequireSession() (string, error) {
	if c.SessionID == "" {
		return "", ErrNoSession
	}
	return c.SessionID, nil
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".unscramble/session"
	}
	return filepath.Join(home, ".unscramble", "session")
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
