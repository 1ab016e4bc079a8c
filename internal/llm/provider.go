package llm

import (
	"context"
	"fmt"

	"github.com/credlens/credlens/internal/model"
)

// Provider generates a plain-language summary of a finished report.
// Summaries are produced after scoring and never feed back into it.
type Provider interface {
	Name() string
	Summarize(ctx context.Context, report model.CredibilityReport) (string, error)
}

// NewProvider creates a provider from configuration. An empty provider
// name disables summarization.
func NewProvider(cfg model.LLMConfig) (Provider, error) {
	switch cfg.Provider {
	case "":
		return nil, nil
	case "openai":
		return NewOpenAIProvider(cfg)
	default:
		// OpenAI-compatible endpoints (e.g. a local Ollama server)
		// are reached through the openai provider with a BaseURL.
		return nil, fmt.Errorf("unknown LLM provider: %s", cfg.Provider)
	}
}
