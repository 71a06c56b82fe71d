package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// writeJSON encodes payload as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Warn("handlers.encode_response_failed", "error", err)
	}
}

// jsonError writes an error message as a JSON body.
func jsonError(w http.ResponseWriter, message string, status int) {
	writeJSON(w, status, map[string]string{"error": message})
}
