package wordbank

import (
	"bufio"
	"context"
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/mcoot/unscramble/internal/dependencies/random"
	"github.com/mcoot/unscramble/internal/model"
	"github.com/mcoot/unscramble/internal/storage"
)

//go:embed words.txt
var defaultWords string

// Service holds the immutable, ordered collection of candidate words
type Service struct {
	storage storage.Storage
	random  random.Random
	logger  *slog.Logger

	mu     sync.RWMutex
	words  []string
	index  map[string]struct{}
	byKey  map[string][]string // sorted letters -> words
	loaded bool
}

// New creates a new word bank service
func New(storage storage.Storage, random random.Random, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		random:  random,
		logger:  logger,
		index:   make(map[string]struct{}),
		byKey:   make(map[string][]string),
	}
}

// LoadFromStorage loads words previously saved to storage
func (s *Service) LoadFromStorage(ctx context.Context) error {
	words, err := s.storage.GetWordBank(ctx)
	if err != nil {
		return err
	}
	return s.LoadWords(words)
}

// LoadFromFile loads words from a file (one word per line, # comments)
// and saves them to storage
func (s *Service) LoadFromFile(ctx context.Context, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open word list: %w", err)
	}
	defer func() { _ = file.Close() }()

	words, err := parseWords(file)
	if err != nil {
		return fmt.Errorf("read word list %s: %w", path, err)
	}
	if err := s.LoadWords(words); err != nil {
		return err
	}

	return s.storage.SaveWordBank(ctx, s.Words())
}

// LoadDefault loads the built-in word list
func (s *Service) LoadDefault() error {
	words, err := parseWords(strings.NewReader(defaultWords))
	if err != nil {
		return err
	}
	return s.LoadWords(words)
}

// Load tries the word file, then storage, then the built-in list
func (s *Service) Load(ctx context.Context, path string) error {
	if path != "" {
		return s.LoadFromFile(ctx, path)
	}
	err := s.LoadFromStorage(ctx)
	if err == nil {
		return nil
	}
	s.logger.Info("no stored word bank, using built-in words",
		slog.String("reason", err.Error()),
	)
	return s.LoadDefault()
}

// LoadWords normalizes and loads words, failing if fewer than
// model.MaxRounds usable words remain
func (s *Service) LoadWords(words []string) error {
	normalized := make([]string, 0, len(words))
	index := make(map[string]struct{}, len(words))
	byKey := make(map[string][]string)
	dropped := 0

	for _, raw := range words {
		word := normalize(raw)
		if word == "" {
			continue
		}
		if _, dup := index[word]; dup {
			continue
		}
		if !CanScramble(word) {
			dropped++
			continue
		}
		index[word] = struct{}{}
		normalized = append(normalized, word)
		key := letterKey(word)
		byKey[key] = append(byKey[key], word)
	}

	switch {
	case len(normalized) == 0:
		return model.ErrWordBankEmpty
	case len(normalized) < model.MaxRounds:
		return fmt.Errorf("%w: have %d, need %d", model.ErrWordBankTooSmall, len(normalized), model.MaxRounds)
	}

	s.mu.Lock()
	s.words = normalized
	s.index = index
	s.byKey = byKey
	s.loaded = true
	s.mu.Unlock()

	s.logger.Info("word bank loaded",
		slog.Int("word_count", len(normalized)),
		slog.Int("dropped", dropped),
	)
	return nil
}

// IsLoaded returns whether the word bank has been loaded
func (s *Service) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Len returns the number of words in the bank
func (s *Service) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.words)
}

// Words returns a copy of the bank in load order
func (s *Service) Words() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.words...)
}

// Contains checks if a word is in the bank (case-insensitive)
func (s *Service) Contains(word string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.index[normalize(word)]
	return ok
}

// Anagrams returns the other bank words using exactly the same letters as word
func (s *Service) Anagrams(word string) []string {
	word = normalize(word)

	s.mu.RLock()
	defer s.mu.RUnlock()

	var results []string
	for _, w := range s.byKey[letterKey(word)] {
		if w != word {
			results = append(results, w)
		}
	}
	return results
}

// Draw picks a uniformly random word that is not in used
func (s *Service) Draw(used []string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return "", model.ErrWordBankNotLoaded
	}

	usedSet := make(map[string]struct{}, len(used))
	for _, w := range used {
		usedSet[w] = struct{}{}
	}

	candidates := make([]string, 0, len(s.words))
	for _, w := range s.words {
		if _, ok := usedSet[w]; !ok {
			candidates = append(candidates, w)
		}
	}
	if len(candidates) == 0 {
		return "", model.ErrWordBankExhausted
	}

	return candidates[s.random.Intn(len(candidates))], nil
}

// Scramble shuffles word with the service's random source
func (s *Service) Scramble(word string) (string, error) {
	return Scramble(word, s.random)
}

func parseWords(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

func normalize(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

// letterKey returns the word's letters in sorted order
func letterKey(word string) string {
	runes := []rune(word)
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
	return string(runes)
}

// ServiceInterface is the word bank API used by the round tracker
type ServiceInterface interface {
	Draw(used []string) (string, error)
	Scramble(word string) (string, error)
	Contains(word string) bool
	Anagrams(word string) []string
	Len() int
}

var _ ServiceInterface = (*Service)(nil)
