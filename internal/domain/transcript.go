package domain

import "time"

// TranscriptRecord captures one exchange between the user and the assistant.
type TranscriptRecord struct {
	SessionID string    `json:"session_id"`
	Timestamp time.Time `json:"timestamp"`
	Input     string    `json:"input"`
	Response  string    `json:"response"`
	// Source records what produced the response, a route category name or
	// an AI backend name.
	Source string `json:"source"`
}
