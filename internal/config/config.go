package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/sevigo/coderadar/internal/llm"
	"github.com/sevigo/coderadar/internal/logger"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
)

// Config holds the application's configuration values.
type Config struct {
	Environment string
	Server      ServerConfig
	AI          AIConfig
	Logging     logger.Config
}

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Port         int
	WriteTimeout time.Duration
	MaxBodyBytes int64
}

// AIConfig selects and authenticates the LLM provider.
type AIConfig struct {
	LLMProvider    llm.ModelProvider
	GeneratorModel string
	GroqAPIKey     string
	GroqBaseURL    string
	GeminiAPIKey   string
	OllamaHost     string
	// RequestTimeout bounds the outbound LLM call. Zero means no timeout.
	RequestTimeout time.Duration
}

// IsDevelopment reports whether error details may be exposed to clients.
func (c *Config) IsDevelopment() bool {
	return c.Environment == EnvDevelopment
}

// APIKey returns the credential for the configured provider.
func (c AIConfig) APIKey() string {
	switch c.LLMProvider {
	case llm.GeminiProvider:
		return c.GeminiAPIKey
	case llm.GroqProvider:
		return c.GroqAPIKey
	default:
		return ""
	}
}

// Validate checks the AI settings for values that can never work.
// A missing API key is not an error here: it is reported per request.
func (c AIConfig) Validate() error {
	if _, err := llm.ParseProvider(string(c.LLMProvider)); err != nil {
		return err
	}
	if c.RequestTimeout < 0 {
		return errors.New("LLM_REQUEST_TIMEOUT cannot be negative")
	}
	if c.LLMProvider == llm.OllamaProvider && c.OllamaHost == "" {
		return errors.New("OLLAMA_HOST must be set for the ollama provider")
	}
	return nil
}

// Validate checks the server settings.
func (c ServerConfig) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port)
	}
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("MAX_BODY_BYTES must be positive, got %d", c.MaxBodyBytes)
	}
	if c.WriteTimeout < 0 {
		return errors.New("SERVER_WRITE_TIMEOUT cannot be negative")
	}
	return nil
}

// LoadConfig reads configuration from environment variables and a .env file
// in the working directory.
func LoadConfig() (*Config, error) {
	return Load(viper.New(), ".env")
}

// Load reads configuration into v from envFile and the environment, sets
// defaults, and validates the result. Environment variables take precedence
// over the file.
func Load(v *viper.Viper, envFile string) (*Config, error) {
	v.SetConfigFile(envFile)
	v.AutomaticEnv()

	v.SetDefault("PORT", 5000)
	v.SetDefault("APP_ENV", EnvProduction)
	v.SetDefault("LLM_PROVIDER", string(llm.GroqProvider))
	v.SetDefault("GROQ_BASE_URL", llm.DefaultGroqBaseURL)
	v.SetDefault("OLLAMA_HOST", "http://localhost:11434")
	v.SetDefault("LLM_REQUEST_TIMEOUT", "0s")
	v.SetDefault("SERVER_WRITE_TIMEOUT", "120s")
	v.SetDefault("MAX_BODY_BYTES", 1<<20)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("LOG_OUTPUT", "stdout")
	v.SetDefault("LOG_FILE", "coderadar.log")

	// NODE_ENV is honoured for deployments that already set it.
	if err := v.BindEnv("APP_ENV", "APP_ENV", "NODE_ENV"); err != nil {
		return nil, fmt.Errorf("failed to bind APP_ENV: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			slog.Error("failed to read config file", "file", envFile, "error", err)
		}
	}

	provider, err := llm.ParseProvider(v.GetString("LLM_PROVIDER"))
	if err != nil {
		return nil, err
	}

	generatorModel := v.GetString("GENERATOR_MODEL_NAME")
	if generatorModel == "" {
		generatorModel = llm.DefaultModel(provider)
	}

	cfg := &Config{
		Environment: strings.ToLower(strings.TrimSpace(v.GetString("APP_ENV"))),
		Server: ServerConfig{
			Port:         v.GetInt("PORT"),
			WriteTimeout: v.GetDuration("SERVER_WRITE_TIMEOUT"),
			MaxBodyBytes: v.GetInt64("MAX_BODY_BYTES"),
		},
		AI: AIConfig{
			LLMProvider:    provider,
			GeneratorModel: generatorModel,
			GroqAPIKey:     v.GetString("GROQ_API_KEY"),
			GroqBaseURL:    v.GetString("GROQ_BASE_URL"),
			GeminiAPIKey:   v.GetString("GEMINI_API_KEY"),
			OllamaHost:     v.GetString("OLLAMA_HOST"),
			RequestTimeout: v.GetDuration("LLM_REQUEST_TIMEOUT"),
		},
		Logging: logger.Config{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
			Output: v.GetString("LOG_OUTPUT"),
			File:   v.GetString("LOG_FILE"),
		},
	}

	switch cfg.Environment {
	case EnvDevelopment, EnvProduction, EnvTest:
	default:
		return nil, fmt.Errorf("APP_ENV must be one of %s, %s or %s, got %q", EnvDevelopment, EnvProduction, EnvTest, cfg.Environment)
	}
	if err := cfg.Server.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.AI.Validate(); err != nil {
		return nil, err
	}
	if key := llm.CredentialKey(provider); key != "" && cfg.AI.APIKey() == "" {
		slog.Warn("LLM credential is not configured, review requests will fail", "key", key)
	}

	return cfg, nil
}
