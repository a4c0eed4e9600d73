package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const maxErrorBodyBytes = 64 << 10

// GroqClient talks to Groq's OpenAI-compatible chat completions API.
type GroqClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewGroqClient creates a Groq client. An empty baseURL selects the public API.
func NewGroqClient(baseURL, apiKey string, httpClient *http.Client) *GroqClient {
	if baseURL == "" {
		baseURL = DefaultGroqBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &GroqClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float32       `json:"temperature"`
	TopP        float32       `json:"top_p"`
	MaxTokens   int           `json:"max_tokens"`
	Stream      bool          `json:"stream"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type apiErrorBody struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    any    `json:"code"`
	} `json:"error"`
}

// Complete sends one chat completion request. An empty choice list yields
// an empty string, not an error.
func (c *GroqClient) Complete(ctx context.Context, req ChatRequest) (string, error) {
	body, err := json.Marshal(chatCompletionRequest{
		Model: req.Model,
		Messages: []chatMessage{
			{Role: "system", Content: req.System},
			{Role: "user", Content: req.User},
		},
		Temperature: req.Temperature,
		TopP:        req.TopP,
		MaxTokens:   req.MaxTokens,
		Stream:      false,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal chat request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create chat request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return "", decodeAPIError(res)
	}

	var out chatCompletionResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode chat response: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", nil
	}
	return out.Choices[0].Message.Content, nil
}

func decodeAPIError(res *http.Response) error {
	apiErr := &APIError{Provider: GroqProvider, StatusCode: res.StatusCode}

	raw, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBodyBytes))
	var body apiErrorBody
	if err := json.Unmarshal(raw, &body); err == nil && body.Error.Message != "" {
		apiErr.Message = body.Error.Message
		if code, ok := body.Error.Code.(string); ok {
			apiErr.Code = code
		} else {
			apiErr.Code = body.Error.Type
		}
		return apiErr
	}
	apiErr.Message = strings.TrimSpace(string(raw))
	return apiErr
}
