package generate

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Taichi-iskw/yt-brief/internal/config"
	"github.com/Taichi-iskw/yt-brief/internal/errors"
)

func TestNewGenerator(t *testing.T) {
	tests := []struct {
		name      string
		config    *config.Config
		wantModel string
		wantError bool
		errorCode string
	}{
		{
			name:      "gemini with keys",
			config:    &config.Config{Provider: "gemini", Model: "gemini-1.5-pro", GeminiAPIKeys: []string{"k1"}},
			wantModel: "gemini-1.5-pro",
		},
		{
			name:      "gemini without keys",
			config:    &config.Config{Provider: "gemini", Model: "gemini-1.5-pro"},
			wantError: true,
			errorCode: errors.CodeAuth,
		},
		{
			name:      "openai with key",
			config:    &config.Config{Provider: "openai", Model: "gpt-4o-mini", OpenAIAPIKey: "sk-test"},
			wantModel: "gpt-4o-mini",
		},
		{
			name:      "openai without key",
			config:    &config.Config{Provider: "openai", Model: "gpt-4o-mini"},
			wantError: true,
			errorCode: errors.CodeAuth,
		},
		{
			name:      "fake provider",
			config:    &config.Config{Provider: "fake"},
			wantModel: "fake",
		},
		{
			name:      "unknown provider",
			config:    &config.Config{Provider: "bedrock"},
			wantError: true,
			errorCode: errors.CodeInvalidArg,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen, err := NewGenerator(tt.config)

			if tt.wantError {
				require.Error(t, err)
				assert.Equal(t, tt.errorCode, errors.CodeOf(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantModel, gen.Model())
		})
	}
}

func TestFake_RecordsPrompts(t *testing.T) {
	fake := &Fake{Reply: "summary text"}

	reply, err := fake.Generate(context.Background(), "first prompt")
	require.NoError(t, err)
	assert.Equal(t, "summary text", reply)

	_, err = fake.Generate(context.Background(), "second prompt")
	require.NoError(t, err)

	assert.Equal(t, 2, fake.CallCount())
	assert.Equal(t, []string{"first prompt", "second prompt"}, fake.Prompts())
}

func TestFake_Error(t *testing.T) {
	fake := &Fake{Err: errors.New(errors.CodeGeneration, "boom")}

	_, err := fake.Generate(context.Background(), "prompt")
	require.Error(t, err)
	assert.Equal(t, errors.CodeGeneration, errors.CodeOf(err))
	assert.Equal(t, 1, fake.CallCount())
}

func TestIsQuotaError(t *testing.T) {
	tests := []struct {
		err   error
		quota bool
	}{
		{fmt.Errorf("googleapi: Error 429: rate limited"), true},
		{fmt.Errorf("quota exceeded for project"), true},
		{fmt.Errorf("rpc error: RESOURCE_EXHAUSTED"), true},
		{fmt.Errorf("googleapi: Error 500: internal"), false},
		{fmt.Errorf("connection refused"), false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.quota, isQuotaError(tt.err), tt.err.Error())
	}
}

func TestIsAuthError(t *testing.T) {
	tests := []struct {
		err  error
		auth bool
	}{
		{fmt.Errorf("googleapi: Error 401: unauthorized"), true},
		{fmt.Errorf("API key not valid. Please pass a valid API key."), true},
		{fmt.Errorf("rpc error: PERMISSION_DENIED"), true},
		{fmt.Errorf("googleapi: Error 429: rate limited"), false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.auth, isAuthError(tt.err), tt.err.Error())
	}
}

func TestGeminiGenerator_KeyRotation(t *testing.T) {
	gen := &geminiGenerator{apiKeys: []string{"k1", "k2", "k3"}, model: "gemini-1.5-pro"}

	assert.Equal(t, 0, gen.currentKey)
	gen.rotateKey()
	assert.Equal(t, 1, gen.currentKey)
	gen.rotateKey()
	gen.rotateKey()
	assert.Equal(t, 0, gen.currentKey) // wraps around
}
