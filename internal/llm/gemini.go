package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// GenerativeClient abstracts the Gemini generative AI client for testability.
type GenerativeClient interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// ClientFactory creates a GenerativeClient. Tests inject a factory that returns a fake.
type ClientFactory func(ctx context.Context, apiKey string) (GenerativeClient, error)

type genaiClient struct {
	inner *genai.Client
}

func (g *genaiClient) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	return g.inner.Models.GenerateContent(ctx, model, contents, config)
}

// DefaultClientFactory creates a real Gemini API client.
func DefaultClientFactory(ctx context.Context, apiKey string) (GenerativeClient, error) {
	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &genaiClient{inner: c}, nil
}

// GeminiClient implements ChatModel using the Google Gemini API. The
// underlying client is created per call so a bad key surfaces as a
// review failure instead of a start-up failure.
type GeminiClient struct {
	apiKey  string
	factory ClientFactory
}

func NewGeminiClient(apiKey string, factory ClientFactory) *GeminiClient {
	if factory == nil {
		factory = DefaultClientFactory
	}
	return &GeminiClient{apiKey: apiKey, factory: factory}
}

func (c *GeminiClient) Complete(ctx context.Context, req ChatRequest) (string, error) {
	client, err := c.factory(ctx, c.apiKey)
	if err != nil {
		return "", fmt.Errorf("creating Gemini client: %w", err)
	}

	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(req.System, genai.RoleUser),
		Temperature:       genai.Ptr(req.Temperature),
		TopP:              genai.Ptr(req.TopP),
		MaxOutputTokens:   int32(req.MaxTokens),
	}

	resp, err := client.GenerateContent(ctx, req.Model, genai.Text(req.User), config)
	if err != nil {
		return "", fromGenaiError(err)
	}
	return extractText(resp), nil
}

// extractText joins the text parts of the first candidate.
func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range candidate.Content.Parts {
		if part != nil {
			b.WriteString(part.Text)
		}
	}
	return b.String()
}

func fromGenaiError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return &APIError{
			Provider:   GeminiProvider,
			StatusCode: apiErr.Code,
			Code:       apiErr.Status,
			Message:    apiErr.Message,
		}
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return &APIError{
			Provider:   GeminiProvider,
			StatusCode: apiErrPtr.Code,
			Code:       apiErrPtr.Status,
			Message:    apiErrPtr.Message,
		}
	}
	return err
}
