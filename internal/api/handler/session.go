package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/unscramble/internal/api/request"
	"github.com/mcoot/unscramble/internal/api/response"
	"github.com/mcoot/unscramble/internal/model"
	"github.com/mcoot/unscramble/internal/services/game"
)

// SessionHandler handles session endpoints
type SessionHandler struct {
	controller game.ControllerInterface
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(controller game.ControllerInterface) *SessionHandler {
	return &SessionHandler{controller: controller}
}

func sessionID(r *http.Request) model.SessionID {
	return model.SessionID(mux.Vars(r)["id"])
}

// Create handles POST /api/v1/sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	s, err := h.controller.StartSession(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, response.SessionFromModel(s))
}

// Get handles GET /api/v1/sessions/{id}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	s, err := h.controller.GetSession(r.Context(), sessionID(r))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.OK(w, response.SessionFromModel(s))
}

// Guess handles POST /api/v1/sessions/{id}/guess
func (h *SessionHandler) Guess(w http.ResponseWriter, r *http.Request) {
	var req request.GuessRequest
	if err := request.Decode(r, &req); err != nil {
		WriteError(w, NewInvalidRequestError("Invalid request body"))
		return
	}

	result, err := h.controller.SubmitGuess(r.Context(), sessionID(r), req.Guess)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.OK(w, response.GuessResultFromModel(result))
}

// Skip handles POST /api/v1/sessions/{id}/skip
func (h *SessionHandler) Skip(w http.ResponseWriter, r *http.Request) {
	s, err := h.controller.SkipWord(r.Context(), sessionID(r))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.OK(w, response.SessionFromModel(s))
}

// Reset handles POST /api/v1/sessions/{id}/reset
func (h *SessionHandler) Reset(w http.ResponseWriter, r *http.Request) {
	s, err := h.controller.PlayAgain(r.Context(), sessionID(r))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.OK(w, response.SessionFromModel(s))
}

// End handles DELETE /api/v1/sessions/{id}
func (h *SessionHandler) End(w http.ResponseWriter, r *http.Request) {
	if err := h.controller.EndSession(r.Context(), sessionID(r)); err != nil {
		WriteError(w, err)
		return
	}
	response.NoContent(w)
}
