package handler

import (
	"net/http"

	"github.com/mcoot/unscramble/internal/api/response"
)

// WordCounter reports the size of the loaded word bank
type WordCounter interface {
	Len() int
}

// Health handles GET /api/v1/health
func Health(words WordCounter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := response.Health{Status: "ok"}
		if words != nil {
			resp.WordCount = words.Len()
		}
		response.OK(w, resp)
	}
}
