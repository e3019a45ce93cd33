package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Taichi-iskw/yt-brief/internal/config"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration settings",
	Long:  `Manage configuration settings for yt-brief.`,
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration file",
	Long:  `Create a new configuration file with generation API key settings.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		geminiKey, _ := cmd.Flags().GetString("gemini-key")

		if err := config.InitConfig(geminiKey); err != nil {
			return err
		}

		configPath, err := config.GetConfigPath()
		if err != nil {
			return err
		}

		cmd.Printf("Created configuration file: %s\n", configPath)
		cmd.Println("Please set your API keys in this file, or export GEMINI_API_KEY / OPENAI_API_KEY instead.")

		return nil
	},
}

// configShowCmd represents the config show command
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  `Display the current configuration file path and settings.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, err := config.GetConfigPath()
		if err != nil {
			return err
		}

		cmd.Printf("Configuration file: %s\n\n", configPath)

		// Load and display current config
		cfg, err := config.NewConfig()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		cmd.Printf("provider:        %s\n", cfg.Provider)
		cmd.Printf("model:           %s\n", cfg.Model)
		cmd.Printf("output_dir:      %s\n", cfg.OutputDir)
		cmd.Printf("gemini_api_keys: %s\n", maskKeys(cfg.GeminiAPIKeys))
		cmd.Printf("openai_api_key:  %s\n", maskKey(cfg.OpenAIAPIKey))
		cmd.Printf("youtube_api_key: %s\n", maskKey(cfg.YouTubeAPIKey))

		return nil
	},
}

// maskKey hides all but the first four characters of a credential.
func maskKey(key string) string {
	if key == "" {
		return "(not set)"
	}
	if len(key) <= 4 {
		return "****"
	}
	return key[:4] + strings.Repeat("*", 4)
}

func maskKeys(keys []string) string {
	if len(keys) == 0 {
		return "(not set)"
	}
	masked := make([]string, len(keys))
	for i, key := range keys {
		masked[i] = maskKey(key)
	}
	return strings.Join(masked, ", ")
}

func init() {
	configInitCmd.Flags().String("gemini-key", "", "Gemini API key to seed the configuration file with")

	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}
