package handlers

import (
	"encoding/json"
	"net/http"
)

const internalErrorBody = `{"error":"Internal server error"}`

// WriteJSON writes v as a JSON response with the given status. v is encoded
// before the header is sent, so a value that cannot be encoded becomes a 500
// instead of a truncated body.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		status = http.StatusInternalServerError
		body = []byte(internalErrorBody)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(body, '\n'))
}

// WriteError writes a standardised JSON error response.
func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, map[string]string{
		"error": msg,
	})
}
