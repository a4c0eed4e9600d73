// Package core holds the review types shared by the HTTP layer, the LLM
// gateway and the command-line client, plus the error taxonomy that maps
// review failures to HTTP statuses.
package core

import (
	"context"
)

// Reviewer defines the contract for a component that turns a code snippet
// into a written review. This interface decouples the HTTP layer from the
// LLM provider that actually produces the text.
//
//go:generate mockgen -destination=../../mocks/mock_reviewer.go -package=mocks github.com/sevigo/coderadar/internal/core Reviewer
type Reviewer interface {
	// GenerateReview returns the review text for code. Failures are
	// returned as *ReviewError so the caller can pick a status code.
	GenerateReview(ctx context.Context, code string) (string, error)

	// ModelName identifies the provider and model used for reviews.
	ModelName() string
}
