package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/unscramble/internal/api/handler"
	"github.com/mcoot/unscramble/internal/api/middleware"
	"github.com/mcoot/unscramble/internal/services/game"
	"github.com/mcoot/unscramble/internal/services/wordbank"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger            *slog.Logger
	SessionController *game.Controller
	WordBank          *wordbank.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	sessionHandler := handler.NewSessionHandler(cfg.SessionController)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	sessions := api.PathPrefix("/sessions").Subrouter()
	sessions.HandleFunc("", sessionHandler.Create).Methods(http.MethodPost)
	sessions.HandleFunc("/{id}", sessionHandler.Get).Methods(http.MethodGet)
	sessions.HandleFunc("/{id}", sessionHandler.End).Methods(http.MethodDelete)
	sessions.HandleFunc("/{id}/guess", sessionHandler.Guess).Methods(http.MethodPost)
	sessions.HandleFunc("/{id}/skip", sessionHandler.Skip).Methods(http.MethodPost)
	sessions.HandleFunc("/{id}/reset", sessionHandler.Reset).Methods(http.MethodPost)

	// Health check endpoint
	var words handler.WordCounter
	if cfg.WordBank != nil {
		words = cfg.WordBank
	}
	api.HandleFunc("/health", handler.Health(words)).Methods(http.MethodGet)

	return r
}
