package llm

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ollamaChatBody struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
	Options map[string]any `json:"options"`
	Stream  *bool          `json:"stream"`
}

func TestOllamaClient_Complete(t *testing.T) {
	var got ollamaChatBody
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "/api/chat", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/x-ndjson")
		_, _ = w.Write([]byte(`{"model":"llama3.2","created_at":"2024-01-01T00:00:00Z","message":{"role":"assistant","content":"## Review"},"done":true}` + "\n"))
	}))
	defer srv.Close()

	client, err := NewOllamaClient(srv.URL, DefaultOllamaModel, srv.Client(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	out, err := client.Complete(context.Background(), ChatRequest{
		Model:       DefaultOllamaModel,
		System:      "SYS",
		User:        "USER",
		Temperature: reviewTemperature,
		TopP:        reviewTopP,
		MaxTokens:   reviewMaxTokens,
	})
	require.NoError(t, err)
	assert.Equal(t, "## Review", out)
	assert.Equal(t, 1, calls)

	assert.Equal(t, DefaultOllamaModel, got.Model)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, "SYS", got.Messages[0].Content)
	assert.Equal(t, "user", got.Messages[1].Role)
	assert.Equal(t, "USER", got.Messages[1].Content)

	assert.InDelta(t, 0.7, got.Options["temperature"], 0.0001)
	assert.InDelta(t, 1.0, got.Options["top_p"], 0.0001)
	assert.InDelta(t, 3000, got.Options["num_predict"], 0)
	require.NotNil(t, got.Stream)
	assert.False(t, *got.Stream)
}

func TestOllamaClient_Complete_ServerError(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"model crashed"}` + "\n"))
	}))
	defer srv.Close()

	client, err := NewOllamaClient(srv.URL, DefaultOllamaModel, srv.Client(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), ChatRequest{System: "SYS", User: "USER"})
	assert.Error(t, err)
	assert.Equal(t, 1, calls, "a failed call must not be retried")
}
