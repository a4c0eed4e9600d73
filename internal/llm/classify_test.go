package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sevigo/coderadar/internal/core"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantKind    core.ErrorKind
		wantMessage string
	}{
		{
			name:        "Rate limit text",
			err:         errors.New("Rate limit reached for model"),
			wantKind:    core.KindRateLimited,
			wantMessage: msgRateLimited,
		},
		{
			name:        "Authentication text",
			err:         errors.New("authentication failed"),
			wantKind:    core.KindConfig,
			wantMessage: "Invalid or missing GROQ_API_KEY. Check your configuration",
		},
		{
			name:        "API key text",
			err:         errors.New("Invalid API Key provided"),
			wantKind:    core.KindConfig,
			wantMessage: "Invalid or missing GROQ_API_KEY. Check your configuration",
		},
		{
			name:        "Decommissioned model text",
			err:         errors.New("The model `mixtral-8x7b` has been decommissioned (model_decommissioned)"),
			wantKind:    core.KindConfig,
			wantMessage: msgModelUnavailable,
		},
		{
			name:        "Connection text",
			err:         errors.New("connection reset by peer"),
			wantKind:    core.KindNetwork,
			wantMessage: msgNetwork,
		},
		{
			name:        "Unauthorized status",
			err:         &APIError{Provider: GroqProvider, StatusCode: 401, Message: "nope"},
			wantKind:    core.KindConfig,
			wantMessage: "Invalid or missing GROQ_API_KEY. Check your configuration",
		},
		{
			name:        "Too many requests status",
			err:         &APIError{Provider: GroqProvider, StatusCode: 429},
			wantKind:    core.KindRateLimited,
			wantMessage: msgRateLimited,
		},
		{
			name:        "Model code wins over status",
			err:         &APIError{Provider: GroqProvider, StatusCode: 400, Code: "model_decommissioned", Message: "gone"},
			wantKind:    core.KindConfig,
			wantMessage: msgModelUnavailable,
		},
		{
			name:        "Not found status",
			err:         &APIError{Provider: GeminiProvider, StatusCode: 404, Message: "models/foo is not found"},
			wantKind:    core.KindConfig,
			wantMessage: msgModelUnavailable,
		},
		{
			name:        "Server error falls through to internal",
			err:         &APIError{Provider: GroqProvider, StatusCode: 500, Message: "upstream exploded"},
			wantKind:    core.KindInternal,
			wantMessage: "API Error: groq: status 500: upstream exploded",
		},
		{
			name:        "Deadline exceeded",
			err:         fmt.Errorf("calling provider: %w", context.DeadlineExceeded),
			wantKind:    core.KindNetwork,
			wantMessage: msgNetwork,
		},
		{
			name:        "Dial failure",
			err:         &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("refused")},
			wantKind:    core.KindNetwork,
			wantMessage: msgNetwork,
		},
		{
			name:        "URL error",
			err:         &url.Error{Op: "Post", URL: "https://api.groq.com", Err: errors.New("eof")},
			wantKind:    core.KindNetwork,
			wantMessage: msgNetwork,
		},
		{
			name:        "Unmatched",
			err:         errors.New("something odd"),
			wantKind:    core.KindInternal,
			wantMessage: "API Error: something odd",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(tt.err, "GROQ_API_KEY")
			assert.Equal(t, tt.wantKind, got.Kind)
			assert.Equal(t, tt.wantMessage, got.Message)
			assert.ErrorIs(t, got, tt.err)
		})
	}
}

func TestClassify_KeepsReviewError(t *testing.T) {
	in := core.NewReviewError(core.KindValidation, nil, "Code cannot be empty")
	assert.Same(t, in, classify(fmt.Errorf("wrapped: %w", in), "GROQ_API_KEY"))
}

func TestClassify_CredentialWithoutKeyName(t *testing.T) {
	got := classify(errors.New("authentication required"), "")
	assert.Equal(t, "Invalid or missing API key. Check your configuration", got.Message)
}
