package request

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// maxBodyBytes caps request bodies; guesses are single words
const maxBodyBytes = 4 << 10

// ErrEmptyBody is returned when a JSON body is required but missing
var ErrEmptyBody = errors.New("request body is empty")

// Decode reads a JSON body into v, rejecting unknown fields
func Decode(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return err
	}
	return nil
}
