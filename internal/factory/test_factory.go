package factory

import (
	"time"

	"github.com/mcoot/unscramble/internal/dependencies/mocks"
	"github.com/mcoot/unscramble/internal/services/round"
	"github.com/mcoot/unscramble/internal/storage/memory"
	"github.com/mcoot/unscramble/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, round.DefaultOptions(), testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// TestWords is a small bank where "listen" and "silent" are anagrams
var TestWords = []string{
	"apple", "banana", "cherry", "damson", "elder", "fig",
	"grape", "hazel", "listen", "silent", "lemon", "mango",
}

// LoadTestWords loads TestWords into the word bank
func (t *TestApp) LoadTestWords() error {
	return t.WordBank.LoadWords(TestWords)
}
