package generate

import (
	"context"

	"github.com/Taichi-iskw/yt-brief/internal/config"
	"github.com/Taichi-iskw/yt-brief/internal/errors"
)

// Generator is the interface for the external generative-model call.
// One call per summary request; no streaming, no retries beyond the
// Gemini backend's quota-driven key rotation.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Model() string
}

// NewGenerator creates the Generator selected by the configuration.
func NewGenerator(cfg *config.Config) (Generator, error) {
	switch cfg.Provider {
	case "gemini":
		if len(cfg.GeminiAPIKeys) == 0 {
			return nil, errors.New(errors.CodeAuth, "Gemini API key is not configured (set GEMINI_API_KEY or run 'yt-brief config init')")
		}
		return NewGeminiGenerator(cfg.GeminiAPIKeys, cfg.Model), nil
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			return nil, errors.New(errors.CodeAuth, "OpenAI API key is not configured (set OPENAI_API_KEY)")
		}
		return NewOpenAIGenerator(cfg.OpenAIAPIKey, cfg.Model), nil
	case "fake":
		return &Fake{Reply: "fake summary"}, nil
	default:
		return nil, errors.New(errors.CodeInvalidArg, "unknown provider: "+cfg.Provider)
	}
}
