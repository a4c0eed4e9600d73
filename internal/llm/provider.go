package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// ChatRequest is a single, non-streaming chat completion.
type ChatRequest struct {
	Model       string
	System      string
	User        string
	Temperature float32
	TopP        float32
	MaxTokens   int
}

// ChatModel performs exactly one completion call against an LLM provider.
// Implementations must not retry.
//
//go:generate mockgen -destination=../../mocks/mock_chat_model.go -package=mocks github.com/sevigo/coderadar/internal/llm ChatModel
type ChatModel interface {
	Complete(ctx context.Context, req ChatRequest) (string, error)
}

// APIError is a non-success answer from a provider's API. It carries the
// structured signal the classifier looks at before falling back to text.
type APIError struct {
	Provider   ModelProvider
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: status %d", e.Provider, e.StatusCode)
	if e.Code != "" {
		fmt.Fprintf(&b, " (%s)", e.Code)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	} else if text := http.StatusText(e.StatusCode); text != "" {
		b.WriteString(": ")
		b.WriteString(text)
	}
	return b.String()
}

// ParseProvider maps a configuration value to a known provider.
func ParseProvider(name string) (ModelProvider, error) {
	switch p := ModelProvider(strings.ToLower(strings.TrimSpace(name))); p {
	case GroqProvider, GeminiProvider, OllamaProvider:
		return p, nil
	case "":
		return GroqProvider, nil
	default:
		return "", fmt.Errorf("unsupported LLM provider: %s", name)
	}
}

// CredentialKey names the configuration key holding provider's API key,
// or "" when the provider needs none.
func CredentialKey(provider ModelProvider) string {
	switch provider {
	case GroqProvider:
		return "GROQ_API_KEY"
	case GeminiProvider:
		return "GEMINI_API_KEY"
	default:
		return ""
	}
}
