package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
)

type panicResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Recoverer turns a panic in any handler into a JSON 500 response. The
// panic value is only included when exposeDetails is set.
func Recoverer(logger *slog.Logger, exposeDetails bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler { //nolint:errorlint // sentinel is compared, never wrapped
					panic(rec)
				}

				logger.Error("panic while serving request",
					"method", r.Method,
					"path", r.URL.Path,
					"panic", rec,
					"stack", string(debug.Stack()))

				body := panicResponse{Success: false, Error: msgInternalDefault}
				if exposeDetails {
					body.Message = fmt.Sprint(rec)
				}
				writeJSON(w, http.StatusInternalServerError, body)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
