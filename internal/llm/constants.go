package llm

const (
	// MaxCodeLength is the longest snippet, in characters, forwarded upstream.
	MaxCodeLength = 8000
	// TruncationMarker is appended to snippets cut at MaxCodeLength.
	TruncationMarker = "\n\n[Code truncated due to length limits]"
	// EmptyReviewText is returned when the provider answers with no content.
	EmptyReviewText = "No review generated. The AI returned an empty response."

	reviewTemperature float32 = 0.7
	reviewTopP        float32 = 1
	reviewMaxTokens           = 3000
)

const (
	DefaultGroqModel   = "llama-3.3-70b-versatile"
	DefaultGeminiModel = "gemini-2.5-flash"
	DefaultOllamaModel = "llama3.2"
	DefaultGroqBaseURL = "https://api.groq.com/openai/v1"
)

// DefaultModel returns the model used for provider when none is configured.
func DefaultModel(provider ModelProvider) string {
	switch provider {
	case GeminiProvider:
		return DefaultGeminiModel
	case OllamaProvider:
		return DefaultOllamaModel
	default:
		return DefaultGroqModel
	}
}
