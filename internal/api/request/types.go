package request

// GuessRequest is the request body for submitting a guess
type GuessRequest struct {
	Guess string `json:"guess"`
}
