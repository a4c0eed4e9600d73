package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sevigo/coderadar/internal/core"
)

// GatewayConfig selects the provider and model a Gateway talks to.
type GatewayConfig struct {
	Provider ModelProvider
	Model    string
	APIKey   string
	// RequestTimeout bounds each upstream call. Zero means no timeout.
	RequestTimeout time.Duration
}

// Gateway sends code snippets to the configured LLM provider and turns
// the answer, or the failure, into something the HTTP layer can report.
// A Gateway is immutable after construction and safe for concurrent use.
type Gateway struct {
	provider      ModelProvider
	model         string
	apiKey        string
	credentialKey string
	timeout       time.Duration
	chat          ChatModel
	prompts       *PromptManager
	logger        *slog.Logger
}

var _ core.Reviewer = (*Gateway)(nil)

// NewGateway creates a Gateway around chat. The credential is only checked
// when a review is requested, so a server without one still starts and
// answers health checks.
func NewGateway(cfg GatewayConfig, chat ChatModel, prompts *PromptManager, logger *slog.Logger) (*Gateway, error) {
	if chat == nil {
		return nil, errors.New("chat model cannot be nil")
	}
	if prompts == nil {
		return nil, errors.New("prompt manager cannot be nil")
	}
	provider := cfg.Provider
	if provider == "" {
		provider = GroqProvider
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel(provider)
	}
	return &Gateway{
		provider:      provider,
		model:         model,
		apiKey:        cfg.APIKey,
		credentialKey: CredentialKey(provider),
		timeout:       cfg.RequestTimeout,
		chat:          chat,
		prompts:       prompts,
		logger:        logger.With("component", "llm_gateway", "provider", string(provider)),
	}, nil
}

// ModelName identifies the provider and model, e.g. "groq/llama-3.3-70b-versatile".
func (g *Gateway) ModelName() string {
	return string(g.provider) + "/" + g.model
}

// GenerateReview asks the provider for a review of code. It makes exactly
// one upstream call and never retries.
func (g *Gateway) GenerateReview(ctx context.Context, code string) (string, error) {
	if g.credentialKey != "" && g.apiKey == "" {
		return "", core.NewReviewError(core.KindConfig, nil, "%s is not configured. Add it to your environment or .env file", g.credentialKey)
	}
	if strings.TrimSpace(code) == "" {
		return "", core.NewReviewError(core.KindValidation, nil, "Code cannot be empty")
	}

	code, truncated := TruncateCode(code)
	if truncated {
		g.logger.Warn("code exceeds maximum length, truncating", "max_length", MaxCodeLength)
	}

	req, err := g.buildRequest(code)
	if err != nil {
		return "", core.NewReviewError(core.KindInternal, err, "failed to build review prompt")
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	g.logger.Info("sending review request to LLM provider", "model", g.model, "code_length", utf8.RuneCountInString(code))
	review, err := g.chat.Complete(ctx, req)
	if err != nil {
		classified := classify(err, g.credentialKey)
		g.logger.Error("LLM provider call failed", "error", err, "kind", string(classified.Kind))
		return "", classified
	}

	if review == "" {
		g.logger.Warn("LLM provider returned an empty review")
		return EmptyReviewText, nil
	}

	g.logger.Info("review generated successfully", "review_length", len(review))
	return review, nil
}

func (g *Gateway) buildRequest(code string) (ChatRequest, error) {
	system, err := g.prompts.Render(CodeReviewSystemPrompt, g.provider, ReviewPromptData{})
	if err != nil {
		return ChatRequest{}, fmt.Errorf("render system prompt: %w", err)
	}
	user, err := g.prompts.Render(CodeReviewUserPrompt, g.provider, ReviewPromptData{Code: code})
	if err != nil {
		return ChatRequest{}, fmt.Errorf("render user prompt: %w", err)
	}
	return ChatRequest{
		Model:       g.model,
		System:      system,
		User:        user,
		Temperature: reviewTemperature,
		TopP:        reviewTopP,
		MaxTokens:   reviewMaxTokens,
	}, nil
}

// TruncateCode cuts code to MaxCodeLength characters and appends
// TruncationMarker. The second result reports whether it cut anything.
func TruncateCode(code string) (string, bool) {
	if utf8.RuneCountInString(code) <= MaxCodeLength {
		return code, false
	}
	n := 0
	for i := range code {
		if n == MaxCodeLength {
			return code[:i] + TruncationMarker, true
		}
		n++
	}
	return code, false
}
