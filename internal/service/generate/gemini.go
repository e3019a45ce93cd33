package generate

import (
	"context"
	"strings"

	"google.golang.org/genai"

	"github.com/Taichi-iskw/yt-brief/internal/errors"
)

// geminiGenerator implements Generator against the Gemini API.
// API keys are rotated on quota errors; other failures are not retried.
type geminiGenerator struct {
	apiKeys    []string
	currentKey int
	model      string
}

// NewGeminiGenerator creates a Generator that rotates through the
// supplied Gemini API keys.
func NewGeminiGenerator(apiKeys []string, model string) Generator {
	return &geminiGenerator{
		apiKeys: apiKeys,
		model:   model,
	}
}

func (g *geminiGenerator) Model() string {
	return g.model
}

// Generate sends the prompt to Gemini and returns the response text.
// Rotates API keys on 429 / quota errors.
func (g *geminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	attempts := len(g.apiKeys)
	var lastErr error

	for range attempts {
		key := g.apiKeys[g.currentKey]

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = errors.Wrap(err, errors.CodeGeneration, "failed to create Gemini client")
			g.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
		if err != nil {
			if isQuotaError(err) {
				g.rotateKey()
				lastErr = err
				continue
			}
			if isAuthError(err) {
				return "", errors.Wrap(err, errors.CodeAuth, "Gemini API key was rejected")
			}
			return "", errors.Wrap(err, errors.CodeGeneration, "Gemini generation failed")
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text strings.Builder
			for _, part := range result.Candidates[0].Content.Parts {
				text.WriteString(part.Text)
			}
			if text.Len() > 0 {
				return text.String(), nil
			}
		}

		return "", errors.New(errors.CodeGeneration, "empty response from Gemini")
	}

	return "", errors.Wrap(lastErr, errors.CodeGeneration, "all Gemini API keys exhausted")
}

func (g *geminiGenerator) rotateKey() {
	g.currentKey = (g.currentKey + 1) % len(g.apiKeys)
}

// isQuotaError reports whether the error is a rate-limit or quota
// failure worth rotating keys over.
func isQuotaError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") ||
		strings.Contains(msg, "quota") ||
		strings.Contains(msg, "RESOURCE_EXHAUSTED")
}

// isAuthError reports whether the error indicates a rejected credential.
func isAuthError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "401") ||
		strings.Contains(msg, "403") ||
		strings.Contains(msg, "API key not valid") ||
		strings.Contains(msg, "PERMISSION_DENIED") ||
		strings.Contains(msg, "UNAUTHENTICATED")
}
