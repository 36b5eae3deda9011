package middleware

import (
	"encoding/json"
	"net/http"
)

// writeError writes the API error envelope used by every handler.
func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{ //nolint:errcheck
		"error": map[string]string{"code": code, "message": message},
	})
}
