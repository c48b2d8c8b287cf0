package wordbank

import (
	"github.com/mcoot/unscramble/internal/dependencies/random"
	"github.com/mcoot/unscramble/internal/model"
)

// maxShuffleAttempts bounds reshuffling before falling back to a rotation
const maxShuffleAttempts = 32

// CanScramble reports whether word has at least two distinct letters,
// the condition for a permutation that differs from the original
func CanScramble(word string) bool {
	runes := []rune(word)
	for _, r := range runes[min(1, len(runes)):] {
		if r != runes[0] {
			return true
		}
	}
	return false
}

// Scramble returns a random permutation of word's letters that is never
// equal to word itself
func Scramble(word string, rnd random.Random) (string, error) {
	if !CanScramble(word) {
		return "", model.ErrUnscramblable
	}

	letters := []rune(word)
	for attempt := 0; attempt < maxShuffleAttempts; attempt++ {
		random.Shuffle(rnd, len(letters), func(i, j int) {
			letters[i], letters[j] = letters[j], letters[i]
		})
		if string(letters) != word {
			return string(letters), nil
		}
	}

	// Rotating by one only preserves a word whose letters are all equal
	original := []rune(word)
	rotated := append(original[1:], original[0])
	return string(rotated), nil
}
