package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	// Provider selects the generation backend: "gemini" or "openai"
	Provider string `yaml:"provider"`
	// Model is the generation model identifier
	Model string `yaml:"model"`
	// GeminiAPIKeys are rotated when a key hits its quota
	GeminiAPIKeys []string `yaml:"gemini_api_keys"`
	OpenAIAPIKey  string   `yaml:"openai_api_key"`
	// YouTubeAPIKey is optional; without it metadata degrades to title/channel only
	YouTubeAPIKey string `yaml:"youtube_api_key"`
	// OutputDir is where export artifacts are written (default: current directory)
	OutputDir string `yaml:"output_dir"`
}

// NewConfig loads configuration with the following priority:
// Environment variables > Config file. A missing config file is not an
// error; credentials may come entirely from the environment.
func NewConfig() (*Config, error) {
	config := &Config{}
	if err := loadConfigFile(config); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	// Apply environment variables (override config file)
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		config.GeminiAPIKeys = splitKeys(key)
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		config.OpenAIAPIKey = key
	}
	if key := os.Getenv("YOUTUBE_API_KEY"); key != "" {
		config.YouTubeAPIKey = key
	}
	if provider := os.Getenv("YTBRIEF_PROVIDER"); provider != "" {
		config.Provider = provider
	}
	if model := os.Getenv("YTBRIEF_MODEL"); model != "" {
		config.Model = model
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks required fields and applies defaults.
func (c *Config) Validate() error {
	if c.Provider == "" {
		c.Provider = "gemini"
	}
	switch c.Provider {
	case "gemini", "openai", "fake":
	default:
		return fmt.Errorf("unsupported provider: %q (want gemini or openai)", c.Provider)
	}
	if c.Model == "" {
		switch c.Provider {
		case "openai":
			c.Model = "gpt-4o-mini"
		default:
			c.Model = "gemini-1.5-pro"
		}
	}
	if c.OutputDir == "" {
		c.OutputDir = "."
	}
	return nil
}

// GenerationKeyPresent reports whether a credential for the selected
// provider is configured.
func (c *Config) GenerationKeyPresent() bool {
	switch c.Provider {
	case "openai":
		return c.OpenAIAPIKey != ""
	case "gemini":
		return len(c.GeminiAPIKeys) > 0
	}
	return true
}

// InitConfig creates a new configuration file with example values
func InitConfig(geminiKey string) error {
	configDir, err := getConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath, err := getConfigFilePath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("configuration file already exists: %s", configPath)
	}

	if geminiKey == "" {
		geminiKey = "your-gemini-api-key"
	}

	yamlContent := fmt.Sprintf(`# yt-brief configuration file
# provider: gemini or openai
provider: gemini
# model: generation model identifier (e.g. gemini-1.5-pro, gpt-4o-mini)
model: gemini-1.5-pro
# gemini_api_keys: rotated automatically when a key hits its quota
gemini_api_keys:
  - "%s"
# openai_api_key: ""
# youtube_api_key is optional; enables title/duration/view metadata
# youtube_api_key: ""
# output_dir: "."
`, geminiKey)

	if err := os.WriteFile(configPath, []byte(yamlContent), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetConfigPath returns the path to the configuration file
func GetConfigPath() (string, error) {
	return getConfigFilePath()
}

// getConfigDir returns the configuration directory path (~/.yt-brief)
func getConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".yt-brief"), nil
}

// getConfigFilePath returns the full path to the config file
func getConfigFilePath() (string, error) {
	configDir, err := getConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.yaml"), nil
}

// loadConfigFile loads configuration from ~/.yt-brief/config.yaml
func loadConfigFile(config *Config) error {
	configPath, err := getConfigFilePath()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	return nil
}

// splitKeys parses a comma-separated key list from the environment.
func splitKeys(s string) []string {
	parts := strings.Split(s, ",")
	keys := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			keys = append(keys, p)
		}
	}
	return keys
}
