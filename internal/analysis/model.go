package analysis

import (
	"errors"
	"time"
)

// ErrNotFound is returned when no stored analysis exists for a ticker.
var ErrNotFound = errors.New("analysis not found")

// Result is the outcome of one analysis call. Failures are values, not errors.
type Result struct {
	Text      string `json:"text"`
	Succeeded bool   `json:"succeeded"`
	Error     string `json:"error,omitempty"`

	ArtifactKey string `json:"-"`
}

// Record is a persisted analysis attempt.
type Record struct {
	ID          string    `json:"id"`
	Ticker      string    `json:"ticker"`
	Question    string    `json:"question"`
	Succeeded   bool      `json:"succeeded"`
	Text        string    `json:"text"`
	Error       string    `json:"error,omitempty"`
	ArtifactKey string    `json:"artifactKey,omitempty"`
	DurationMs  int64     `json:"durationMs"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ArtifactKey names the stored analysis text for ticker.
func ArtifactKey(ticker string) string {
	return "analyses/" + ticker + "_analysis.txt"
}
