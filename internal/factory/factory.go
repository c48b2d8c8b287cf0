package factory

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/unscramble/internal/config"
	"github.com/mcoot/unscramble/internal/dependencies/clock"
	"github.com/mcoot/unscramble/internal/dependencies/random"
	"github.com/mcoot/unscramble/internal/services/game"
	"github.com/mcoot/unscramble/internal/services/round"
	"github.com/mcoot/unscramble/internal/services/wordbank"
	"github.com/mcoot/unscramble/internal/storage"
	"github.com/mcoot/unscramble/internal/storage/memory"
	redisstorage "github.com/mcoot/unscramble/internal/storage/redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	WordBank          *wordbank.Service
	Tracker           *round.Tracker
	SessionController *game.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// WordListPath is the path to a word file (optional)
	// If empty, the stored or built-in word bank is used
	WordListPath string
	// RoundOptions configures the round tracker
	// If nil, round.DefaultOptions() is used
	RoundOptions *round.Options
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// ConfigFromServer maps server configuration onto factory configuration
func ConfigFromServer(cfg config.Server, logger *slog.Logger) Config {
	out := Config{
		WordListPath: cfg.WordListPath,
		RoundOptions: &round.Options{AcceptAnagrams: cfg.AcceptAnagrams},
		Logger:       logger,
		StorageType:  cfg.StorageType,
	}
	if cfg.StorageType == config.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.RedisURL
		redisCfg.PoolSize = cfg.RedisPoolSize
		redisCfg.SessionTTL = cfg.SessionTTL
		out.RedisConfig = &redisCfg
	}
	return out
}

// New creates a new application with all dependencies wired and the word
// bank loaded. An unusable word bank fails here rather than mid-session.
func New(ctx context.Context, cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	store, err := newStorage(cfg)
	if err != nil {
		return nil, err
	}

	opts := round.DefaultOptions()
	if cfg.RoundOptions != nil {
		opts = *cfg.RoundOptions
	}

	app := newWithDependencies(store, clock.New(), random.New(), opts, logger)

	if err := app.WordBank.Load(ctx, cfg.WordListPath); err != nil {
		return nil, err
	}

	return app, nil
}

func newStorage(cfg Config) (storage.Storage, error) {
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = config.StorageTypeMemory
	}

	switch storageType {
	case config.StorageTypeMemory:
		return memory.New(), nil
	case config.StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		return redisStore, nil
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, opts round.Options, logger *slog.Logger) *App {
	words := wordbank.New(store, rnd, logger)
	tracker := round.NewTracker(words, opts)
	controller := game.NewController(store, tracker, clk, rnd, logger)

	return &App{
		Storage:           store,
		Clock:             clk,
		Random:            rnd,
		WordBank:          words,
		Tracker:           tracker,
		SessionController: controller,
	}
}

// Close releases storage resources
func (a *App) Close() error {
	if c, ok := a.Storage.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
