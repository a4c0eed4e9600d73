package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/sevigo/coderadar/internal/core"
)

const (
	msgInvalidBody     = "Invalid request body"
	msgCodeRequired    = "Code parameter is required"
	msgCodeNotString   = "Code must be a string"
	msgCodeEmpty       = "Code cannot be empty"
	msgBodyTooLarge    = "Request body too large"
	msgConfigError     = "Service configuration error"
	msgInternalDefault = "Internal server error"
)

// ReviewHandler serves the code review endpoint.
type ReviewHandler struct {
	reviewer      core.Reviewer
	logger        *slog.Logger
	exposeDetails bool
	maxBodyBytes  int64
	now           func() time.Time
}

// NewReviewHandler creates a review handler. exposeDetails adds the raw
// failure text to error responses and must only be set in development.
func NewReviewHandler(reviewer core.Reviewer, maxBodyBytes int64, exposeDetails bool, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{
		reviewer:      reviewer,
		logger:        logger,
		exposeDetails: exposeDetails,
		maxBodyBytes:  maxBodyBytes,
		now:           time.Now,
	}
}

type requestError struct {
	status  int
	message string
}

// Handle validates the payload, asks the reviewer for a review and writes
// the result. Validation always happens before any upstream call.
func (h *ReviewHandler) Handle(w http.ResponseWriter, r *http.Request) {
	start := h.now()
	log := h.logger.With("request_id", middleware.GetReqID(r.Context()))
	log.Info("review request received", "remote_addr", r.RemoteAddr)

	code, reqErr := h.readCode(w, r)
	if reqErr != nil {
		log.Warn("rejecting review request", "status", reqErr.status, "reason", reqErr.message)
		writeError(w, reqErr.status, reqErr.message, "")
		return
	}

	// The upstream call runs to completion even if the client goes away.
	review, err := h.reviewer.GenerateReview(context.WithoutCancel(r.Context()), code)
	if err != nil {
		h.respondFailure(w, log, err)
		return
	}

	finished := h.now()
	result := &core.ReviewResult{
		ID:               uuid.NewString(),
		ReviewText:       review,
		ProcessingTimeMs: finished.Sub(start).Milliseconds(),
		CodeLength:       utf8.RuneCountInString(code),
		Timestamp:        finished,
	}
	log.Info("review completed", "review_id", result.ID, "processing_ms", result.ProcessingTimeMs, "code_length", result.CodeLength)
	writeJSON(w, http.StatusOK, core.NewReviewResponse(result))
}

func (h *ReviewHandler) respondFailure(w http.ResponseWriter, log *slog.Logger, err error) {
	kind := core.KindOf(err)
	status, message := StatusForError(err)
	log.Error("review failed", "kind", string(kind), "status", status, "error", err)

	var details string
	if h.exposeDetails {
		details = errorDetails(err)
	}
	writeError(w, status, message, details)
}

// StatusForError maps a review failure to its HTTP status and the message
// shown to clients. Configuration failures get a generic message so that
// nothing about credentials leaks.
func StatusForError(err error) (int, string) {
	message := err.Error()
	if message == "" {
		message = msgInternalDefault
	}
	switch core.KindOf(err) {
	case core.KindValidation:
		return http.StatusBadRequest, message
	case core.KindConfig:
		return http.StatusServiceUnavailable, msgConfigError
	case core.KindRateLimited:
		return http.StatusTooManyRequests, message
	case core.KindNetwork:
		return http.StatusServiceUnavailable, message
	default:
		return http.StatusInternalServerError, message
	}
}

func errorDetails(err error) string {
	var re *core.ReviewError
	if errors.As(err, &re) && re.Err != nil && re.Message != "" {
		return re.Message + ": " + re.Err.Error()
	}
	return err.Error()
}

// readCode extracts the code field, applying the checks in order: the body
// must be an object, code must be present, a string, and not blank.
func (h *ReviewHandler) readCode(w http.ResponseWriter, r *http.Request) (string, *requestError) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)

	fields, reqErr := readFields(r)
	if reqErr != nil {
		return "", reqErr
	}

	raw, ok := fields["code"]
	if !ok || isFalsy(raw) {
		return "", &requestError{http.StatusBadRequest, msgCodeRequired}
	}

	var code string
	if err := json.Unmarshal(raw, &code); err != nil {
		return "", &requestError{http.StatusBadRequest, msgCodeNotString}
	}

	if strings.TrimSpace(code) == "" {
		return "", &requestError{http.StatusBadRequest, msgCodeEmpty}
	}
	return code, nil
}

// readFields decodes the body into its top-level fields. Url-encoded forms
// are accepted alongside JSON; an empty body decodes to no fields.
func readFields(r *http.Request) (map[string]json.RawMessage, *requestError) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/x-www-form-urlencoded" {
		return readForm(r)
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, bodyReadError(err)
	}
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return map[string]json.RawMessage{}, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil || fields == nil {
		return nil, &requestError{http.StatusBadRequest, msgInvalidBody}
	}
	return fields, nil
}

func readForm(r *http.Request) (map[string]json.RawMessage, *requestError) {
	if err := r.ParseForm(); err != nil {
		return nil, bodyReadError(err)
	}
	fields := make(map[string]json.RawMessage, len(r.PostForm))
	for key, values := range r.PostForm {
		if len(values) == 0 {
			continue
		}
		encoded, err := json.Marshal(values[len(values)-1])
		if err != nil {
			return nil, &requestError{http.StatusBadRequest, msgInvalidBody}
		}
		fields[key] = encoded
	}
	return fields, nil
}

func bodyReadError(err error) *requestError {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return &requestError{http.StatusRequestEntityTooLarge, msgBodyTooLarge}
	}
	return &requestError{http.StatusBadRequest, msgInvalidBody}
}

// isFalsy reports whether a JSON value counts as "not provided":
// null, false, zero, or the empty string.
func isFalsy(raw json.RawMessage) bool {
	v := strings.TrimSpace(string(raw))
	switch v {
	case "null", "false", `""`:
		return true
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil && f == 0 {
		return true
	}
	return false
}
