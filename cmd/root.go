package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "yt-brief",
	Short: "Summarize YouTube videos from their captions",
	Long: `yt-brief turns a YouTube URL into a structured summary.

It fetches the video's caption track, cleans it up, and asks a hosted
language model for a summary in one of several styles. Results can be
printed or exported as text, Markdown, PDF, or Word documents.`,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
