package generate

import (
	"context"

	openai "github.com/sashabaranov/go-openai"

	"github.com/Taichi-iskw/yt-brief/internal/errors"
)

// openaiGenerator implements Generator against the OpenAI chat API.
type openaiGenerator struct {
	cli   *openai.Client
	model string
}

// NewOpenAIGenerator creates a Generator backed by the OpenAI API.
func NewOpenAIGenerator(apiKey, model string) Generator {
	return &openaiGenerator{
		cli:   openai.NewClient(apiKey),
		model: model,
	}
}

func (g *openaiGenerator) Model() string {
	return g.model
}

// Generate sends the prompt as a single-turn chat completion.
func (g *openaiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.cli.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.3,
	})
	if err != nil {
		if apiErr, ok := err.(*openai.APIError); ok {
			if apiErr.HTTPStatusCode == 401 || apiErr.HTTPStatusCode == 403 {
				return "", errors.Wrap(err, errors.CodeAuth, "OpenAI API key was rejected")
			}
		}
		return "", errors.Wrap(err, errors.CodeGeneration, "OpenAI generation failed")
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", errors.New(errors.CodeGeneration, "empty response from OpenAI")
	}

	return resp.Choices[0].Message.Content, nil
}
