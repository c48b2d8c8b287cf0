package wordbank

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/unscramble/internal/dependencies/mocks"
	"github.com/mcoot/unscramble/internal/dependencies/random"
	"github.com/mcoot/unscramble/internal/model"
)

func sortedRunes(s string) string {
	r := []rune(s)
	sort.Slice(r, func(i, j int) bool { return r[i] < r[j] })
	return string(r)
}

func TestCanScramble(t *testing.T) {
	assert.True(t, CanScramble("ab"))
	assert.True(t, CanScramble("listen"))
	assert.True(t, CanScramble("aab"))
	assert.False(t, CanScramble(""))
	assert.False(t, CanScramble("a"))
	assert.False(t, CanScramble("zzz"))
}

func TestScrambleIsPermutationAndDiffers(t *testing.T) {
	rnd := random.New()
	for _, word := range []string{"ab", "listen", "balloon", "aab", "élan", "mississippi"} {
		for i := 0; i < 50; i++ {
			scrambled, err := Scramble(word, rnd)
			require.NoError(t, err)
			assert.NotEqual(t, word, scrambled)
			assert.Equal(t, sortedRunes(word), sortedRunes(scrambled))
		}
	}
}

func TestScrambleReshufflesIdentity(t *testing.T) {
	rnd := mocks.NewMockRandom()
	// First shuffle of "ab" swaps index 1 with itself, leaving it unchanged.
	// The next shuffle falls back to 0 and swaps.
	rnd.QueueIntn(1)

	scrambled, err := Scramble("ab", rnd)
	require.NoError(t, err)
	assert.Equal(t, "ba", scrambled)
}

func TestScrambleFallsBackToRotation(t *testing.T) {
	rnd := mocks.NewMockRandom()
	// Every shuffle of "abc" is the identity
	for i := 0; i < maxShuffleAttempts; i++ {
		rnd.QueueIntn(2, 1)
	}

	scrambled, err := Scramble("abc", rnd)
	require.NoError(t, err)
	assert.Equal(t, "bca", scrambled)
}

func TestScrambleUnscramblable(t *testing.T) {
	_, err := Scramble("aaa", random.New())
	assert.ErrorIs(t, err, model.ErrUnscramblable)

	_, err = Scramble("", random.New())
	assert.ErrorIs(t, err, model.ErrUnscramblable)
}
