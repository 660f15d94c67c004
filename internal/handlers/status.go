package handlers

import (
	"encoding/json"
	"net/http"
	"time"
)

// Message identifies the service in every status response.
const Message = "Gophish debug container is running"

// TimestampLayout renders ISO 8601 UTC timestamps with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// StatusResponse is the payload served on GET /.
type StatusResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	StartedAt string `json:"startedAt"`
}

// FormatTimestamp converts t to UTC and formats it with TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// Status returns a handler that answers liveness probes with a payload
// carrying startedAt. The timestamp is formatted once, so every response is identical.
func Status(startedAt time.Time) http.HandlerFunc {
	resp := StatusResponse{
		Status:    "ok",
		Message:   Message,
		StartedAt: FormatTimestamp(startedAt),
	}

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(resp)
	}
}
