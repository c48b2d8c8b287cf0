package redis

import (
	"fmt"

	"github.com/mcoot/unscramble/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "unscramble"

// sessionKey returns the Redis key for a Session
func sessionKey(id model.SessionID) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, id)
}

// wordBankKey returns the Redis key for the word bank list
func wordBankKey() string {
	return fmt.Sprintf("%s:wordbank", keyPrefix)
}
