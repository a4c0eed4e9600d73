package wire

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/wire"

	"github.com/sevigo/coderadar/internal/app"
	"github.com/sevigo/coderadar/internal/config"
	"github.com/sevigo/coderadar/internal/core"
	"github.com/sevigo/coderadar/internal/llm"
	"github.com/sevigo/coderadar/internal/logger"
	"github.com/sevigo/coderadar/internal/server"
)

// AppSet contains every provider needed to build an *app.App.
var AppSet = wire.NewSet(
	app.NewApp,
	server.NewServer,
	config.LoadConfig,
	llm.NewPromptManager,
	llm.NewGateway,
	wire.Bind(new(core.Reviewer), new(*llm.Gateway)),
	provideSlogLogger,
	provideGatewayConfig,
	provideChatModel,
)

func provideSlogLogger(cfg *config.Config) (*slog.Logger, func()) {
	writer, closeFn := logger.OpenOutput(cfg.Logging)
	l := logger.NewLogger(cfg.Logging, writer)
	slog.SetDefault(l)
	return l, closeFn
}

func provideGatewayConfig(cfg *config.Config) llm.GatewayConfig {
	return llm.GatewayConfig{
		Provider: cfg.AI.LLMProvider,
		Model:    cfg.AI.GeneratorModel,
		APIKey:   cfg.AI.APIKey(),
		// Applied by the gateway so every provider honours it.
		RequestTimeout: cfg.AI.RequestTimeout,
	}
}

func provideChatModel(_ context.Context, cfg *config.Config, logger *slog.Logger) (llm.ChatModel, error) {
	switch cfg.AI.LLMProvider {
	case llm.GroqProvider:
		return llm.NewGroqClient(cfg.AI.GroqBaseURL, cfg.AI.GroqAPIKey, nil), nil
	case llm.GeminiProvider:
		return llm.NewGeminiClient(cfg.AI.GeminiAPIKey, nil), nil
	case llm.OllamaProvider:
		logger.Info("using Ollama LLM provider", "host", cfg.AI.OllamaHost, "model", cfg.AI.GeneratorModel)
		return llm.NewOllamaClient(cfg.AI.OllamaHost, cfg.AI.GeneratorModel, nil, logger)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.AI.LLMProvider)
	}
}
