package model

import "errors"

// Common errors used across the application
var (
	// Session errors
	ErrSessionNotFound = errors.New("session not found")
	ErrGameOver        = errors.New("game is over")

	// Word bank errors
	ErrWordBankNotLoaded = errors.New("word bank not loaded")
	ErrWordBankEmpty     = errors.New("word bank is empty")
	ErrWordBankTooSmall  = errors.New("word bank has fewer words than rounds")
	ErrWordBankExhausted = errors.New("word bank has no unused words left")
	ErrUnscramblable     = errors.New("word cannot be scrambled")
)
