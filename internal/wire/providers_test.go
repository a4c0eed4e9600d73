package wire

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevigo/coderadar/internal/config"
	"github.com/sevigo/coderadar/internal/llm"
)

func TestProvideGatewayConfig(t *testing.T) {
	cfg := &config.Config{AI: config.AIConfig{
		LLMProvider:    llm.GeminiProvider,
		GeneratorModel: "gemini-2.5-flash",
		GeminiAPIKey:   "gm-key",
		RequestTimeout: 5 * time.Second,
	}}

	got := provideGatewayConfig(cfg)
	assert.Equal(t, llm.GeminiProvider, got.Provider)
	assert.Equal(t, "gemini-2.5-flash", got.Model)
	assert.Equal(t, "gm-key", got.APIKey)
	assert.Equal(t, 5*time.Second, got.RequestTimeout)
}

func TestProvideChatModel(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name     string
		provider llm.ModelProvider
		want     any
	}{
		{name: "Groq", provider: llm.GroqProvider, want: &llm.GroqClient{}},
		{name: "Gemini", provider: llm.GeminiProvider, want: &llm.GeminiClient{}},
		{name: "Ollama", provider: llm.OllamaProvider, want: &llm.OllamaClient{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{AI: config.AIConfig{
				LLMProvider:    tt.provider,
				GeneratorModel: llm.DefaultModel(tt.provider),
				GroqBaseURL:    llm.DefaultGroqBaseURL,
				OllamaHost:     "http://localhost:11434",
			}}
			chat, err := provideChatModel(context.Background(), cfg, logger)
			require.NoError(t, err)
			assert.IsType(t, tt.want, chat)
		})
	}

	_, err := provideChatModel(context.Background(), &config.Config{AI: config.AIConfig{LLMProvider: "mistral"}}, logger)
	assert.Error(t, err)
}
