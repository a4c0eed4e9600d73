package llm

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/sevigo/goframe/llms"
	"github.com/sevigo/goframe/llms/ollama"
	"github.com/sevigo/goframe/schema"
)

// OllamaClient implements ChatModel on top of a local Ollama server.
type OllamaClient struct {
	model llms.Model
}

// NewOllamaClient connects to the Ollama server at host. goframe's own
// retries are switched off so a review makes exactly one upstream call.
func NewOllamaClient(host, model string, httpClient *http.Client, logger *slog.Logger) (*OllamaClient, error) {
	if httpClient == nil {
		httpClient = newOllamaHTTPClient()
	}
	gen, err := ollama.New(
		ollama.WithServerURL(host),
		ollama.WithHTTPClient(httpClient),
		ollama.WithModel(model),
		ollama.WithLogger(logger),
		ollama.WithRetryAttempts(0),
	)
	if err != nil {
		return nil, err
	}
	return &OllamaClient{model: gen}, nil
}

func (c *OllamaClient) Complete(ctx context.Context, req ChatRequest) (string, error) {
	messages := []schema.MessageContent{
		schema.NewSystemMessage(req.System),
		schema.NewHumanMessage(req.User),
	}
	resp, err := c.model.GenerateContent(ctx, messages,
		llms.WithTemperature(float64(req.Temperature)),
		llms.WithTopP(float64(req.TopP)),
		llms.WithMaxTokens(req.MaxTokens),
	)
	if err != nil {
		return "", err
	}
	if resp == nil || len(resp.Choices) == 0 || resp.Choices[0] == nil {
		return "", nil
	}
	return resp.Choices[0].Content, nil
}

// newOllamaHTTPClient creates an HTTP client for Ollama. Local generation can be
// slow, so there is no overall request timeout.
func newOllamaHTTPClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   30 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:        100,
			MaxConnsPerHost:     10,
			IdleConnTimeout:     90 * time.Second,
			TLSHandshakeTimeout: 10 * time.Second,
		},
	}
}
