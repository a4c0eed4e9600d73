// Package handler provides HTTP handlers for the CodeRadar service.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/sevigo/coderadar/internal/core"
)

// writeJSON encodes body as the JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(body); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message, details string) {
	writeJSON(w, status, core.ErrorResponse{
		Success: false,
		Error:   message,
		Details: details,
	})
}
