package llm

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/sevigo/coderadar/internal/core"
)

const (
	msgModelUnavailable = "The model is no longer available. Update GENERATOR_MODEL_NAME to a current model"
	msgRateLimited      = "Rate limit exceeded. Please wait a minute and try again."
	msgNetwork          = "Network error. Check your internet connection."
)

var modelErrorCodes = map[string]struct{}{
	"model_decommissioned": {},
	"model_not_found":      {},
}

// classify maps a raw provider failure onto the review error taxonomy.
// Structured signals (API status and code, transport errors) win; the
// message text is only inspected when they say nothing. Anything left
// over is an internal error.
func classify(err error, credentialKey string) *core.ReviewError {
	var re *core.ReviewError
	if errors.As(err, &re) {
		return re
	}

	if kind, ok := classifyStructured(err); ok {
		return newClassified(kind, err, credentialKey)
	}
	if kind, ok := classifyText(err.Error()); ok {
		return newClassified(kind, err, credentialKey)
	}
	return core.NewReviewError(core.KindInternal, err, "API Error: %s", err.Error())
}

type failure int

const (
	failureModel failure = iota
	failureCredential
	failureRateLimit
	failureNetwork
)

func classifyStructured(err error) (failure, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if _, ok := modelErrorCodes[strings.ToLower(apiErr.Code)]; ok {
			return failureModel, true
		}
		switch apiErr.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return failureCredential, true
		case http.StatusNotFound:
			return failureModel, true
		case http.StatusTooManyRequests:
			return failureRateLimit, true
		}
		return 0, false
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return failureNetwork, true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return failureNetwork, true
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return failureNetwork, true
	}
	return 0, false
}

func classifyText(msg string) (failure, bool) {
	msg = strings.ToLower(msg)
	switch {
	case strings.Contains(msg, "model_decommissioned"),
		strings.Contains(msg, "model not found"),
		strings.Contains(msg, "model_not_found"):
		return failureModel, true
	case strings.Contains(msg, "api key"),
		strings.Contains(msg, "authentication"):
		return failureCredential, true
	case strings.Contains(msg, "rate limit"):
		return failureRateLimit, true
	case strings.Contains(msg, "network"),
		strings.Contains(msg, "connection"):
		return failureNetwork, true
	}
	return 0, false
}

func newClassified(f failure, err error, credentialKey string) *core.ReviewError {
	switch f {
	case failureModel:
		return core.NewReviewError(core.KindConfig, err, msgModelUnavailable)
	case failureCredential:
		if credentialKey == "" {
			credentialKey = "API key"
		}
		return core.NewReviewError(core.KindConfig, err, "Invalid or missing %s. Check your configuration", credentialKey)
	case failureRateLimit:
		return core.NewReviewError(core.KindRateLimited, err, msgRateLimited)
	default:
		return core.NewReviewError(core.KindNetwork, err, msgNetwork)
	}
}
