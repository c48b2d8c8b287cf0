// Package config loads server configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Storage type values accepted in STORAGE_TYPE
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// Server holds configuration for the server binary
type Server struct {
	Host string `env:"HOST"`
	Port int    `env:"PORT" envDefault:"8080"`

	StorageType   string        `env:"STORAGE_TYPE" envDefault:"memory"`
	RedisURL      string        `env:"REDIS_URL"`
	RedisPoolSize int           `env:"REDIS_POOL_SIZE" envDefault:"10"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"24h"`

	// WordListPath overrides the built-in word bank when set
	WordListPath   string `env:"WORD_LIST_PATH"`
	AcceptAnagrams bool   `env:"ACCEPT_ANAGRAMS" envDefault:"true"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load parses the server configuration from environment variables
func Load() (Server, error) {
	return parse(env.Options{})
}

// LoadFrom parses the server configuration from the given variables
func LoadFrom(environment map[string]string) (Server, error) {
	return parse(env.Options{Environment: environment})
}

func parse(opts env.Options) (Server, error) {
	var cfg Server
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Server{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Server{}, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints
func (c Server) Validate() error {
	switch c.StorageType {
	case StorageTypeMemory:
	case StorageTypeRedis:
		if c.RedisURL == "" {
			return errors.New("REDIS_URL required when STORAGE_TYPE=redis")
		}
	default:
		return fmt.Errorf("invalid STORAGE_TYPE %q: must be 'memory' or 'redis'", c.StorageType)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel converts LOG_LEVEL into a slog.Level
func (c Server) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	return level, nil
}
