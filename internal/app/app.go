package app

import (
	"fmt"
	"io"
	"log/slog"
	"trendwire/internal/config"
	"trendwire/pkg/llm"
)

// SetupLogging installs the JSON slog handler shared by every command.
func SetupLogging(w io.Writer, level slog.Level) {
	slog.SetDefault(slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})))
}

func NewCompleter(cfg config.LLMConfig) (llm.Completer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch cfg.Provider {
	case "openai":
		if cfg.BaseURL != "" {
			return llm.NewOpenAICompatibleClient("openai", cfg.APIKey, cfg.BaseURL, cfg.Model), nil
		}
		return llm.NewOpenAIClient(cfg.APIKey, cfg.Model), nil
	case "groq":
		return llm.NewGroqClient(cfg.APIKey, cfg.Model), nil
	case "anthropic":
		return llm.NewAnthropicClient(cfg.APIKey, cfg.BaseURL, cfg.Model), nil
	}
	return nil, fmt.Errorf("unknown LLM provider %q", cfg.Provider)
}
