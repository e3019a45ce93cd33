package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/Taichi-iskw/yt-brief/internal/config"
	"github.com/Taichi-iskw/yt-brief/internal/errors"
	"github.com/Taichi-iskw/yt-brief/internal/export"
	"github.com/Taichi-iskw/yt-brief/internal/model"
	"github.com/Taichi-iskw/yt-brief/internal/pipeline"
	"github.com/Taichi-iskw/yt-brief/internal/service/generate"
	"github.com/Taichi-iskw/yt-brief/internal/service/prompt"
	"github.com/Taichi-iskw/yt-brief/internal/service/transcript"
	"github.com/Taichi-iskw/yt-brief/internal/service/youtube"
)

// summarizer is the subset of pipeline behavior the commands drive.
type summarizer interface {
	Summarize(ctx context.Context, sess *pipeline.Session, rawURL string, opts pipeline.SummarizeOptions) (*model.ExportArtifact, error)
	Transcript(ctx context.Context, sess *pipeline.Session, rawURL string, withTimestamps bool) (string, error)
}

// pipelineFactory builds the pipeline and its configuration when a
// command runs, so that flag overrides are applied before any service
// is created.
type pipelineFactory func(cmd *cobra.Command) (summarizer, *config.Config, error)

// buildSummarizePipeline wires the full pipeline including the
// generation backend.
func buildSummarizePipeline(cmd *cobra.Command) (summarizer, *config.Config, error) {
	cfg, err := loadConfigWithOverrides(cmd)
	if err != nil {
		return nil, nil, err
	}

	if !cfg.GenerationKeyPresent() {
		return nil, nil, errors.New(errors.CodeAuth,
			"no API key configured for provider "+cfg.Provider+" (run 'yt-brief config init' or set the key in the environment)")
	}

	generator, err := generate.NewGenerator(cfg)
	if err != nil {
		return nil, nil, err
	}

	var opts []prompt.Option
	if truncate, _ := cmd.Flags().GetBool("truncate"); truncate {
		opts = append(opts, prompt.WithTruncation())
	}

	p := pipeline.New(
		youtube.NewService(cfg.YouTubeAPIKey),
		transcript.NewFetcher(),
		prompt.NewBuilder(opts...),
		generator,
	)
	return p, cfg, nil
}

// buildTranscriptPipeline wires the pipeline without a generation
// backend, so no generation credential is required.
func buildTranscriptPipeline(cmd *cobra.Command) (summarizer, *config.Config, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	p := pipeline.New(
		youtube.NewService(cfg.YouTubeAPIKey),
		transcript.NewFetcher(),
		prompt.NewBuilder(),
		nil, // generator not needed for transcript operations
	)
	return p, cfg, nil
}

// loadConfigWithOverrides loads the configuration and applies the
// provider and model flags. Switching providers resets the model so
// the new provider's default applies.
func loadConfigWithOverrides(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if provider, _ := cmd.Flags().GetString("provider"); provider != "" && provider != cfg.Provider {
		cfg.Provider = provider
		cfg.Model = ""
	}
	if modelID, _ := cmd.Flags().GetString("model"); modelID != "" {
		cfg.Model = modelID
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// newSummarizeCommand creates the summarize command
func newSummarizeCommand(build pipelineFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summarize [VIDEO_URL]",
		Short: "Summarize a YouTube video from its captions",
		Long: `Fetch a video's caption track, clean it up, and generate a summary
with a hosted language model. The summary is written to the output
directory unless --stdout is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rawURL := args[0]

			modeName, _ := cmd.Flags().GetString("mode")
			mode, err := model.ParseMode(modeName)
			if err != nil {
				return err
			}

			formatName, _ := cmd.Flags().GetString("format")
			format, err := export.ParseFormat(formatName)
			if err != nil {
				return err
			}

			maxWords, _ := cmd.Flags().GetInt("max-words")

			p, cfg, err := build(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
			defer cancel()

			sess := pipeline.NewSession()
			artifact, err := p.Summarize(ctx, sess, rawURL, pipeline.SummarizeOptions{
				Mode:     mode,
				Format:   format,
				MaxWords: maxWords,
			})
			if err != nil {
				cmd.SilenceUsage = true
				return fmt.Errorf("%s", pipeline.UserMessage(err))
			}

			useStdout, _ := cmd.Flags().GetBool("stdout")
			if useStdout || artifact.Format == model.FormatClipboard {
				cmd.Print(string(artifact.Payload))
				return nil
			}

			outDir, _ := cmd.Flags().GetString("output")
			if outDir == "" {
				outDir = cfg.OutputDir
			}
			path, err := writeArtifact(outDir, artifact)
			if err != nil {
				return err
			}

			cmd.Printf("✅ Summary saved: %s\n", path)
			if sess.Summary != nil && sess.Summary.Truncated {
				cmd.Println("Note: the transcript exceeded the context budget and was truncated.")
			}
			return nil
		},
	}

	cmd.Flags().String("mode", "concise", "Summary mode: concise, detailed, chapter, notes")
	cmd.Flags().String("format", "text", "Export format: text, markdown, pdf, docx, clipboard")
	cmd.Flags().String("output", "", "Directory for the exported file (default: output_dir from config)")
	cmd.Flags().String("provider", "", "Generation backend override: gemini or openai")
	cmd.Flags().String("model", "", "Generation model override")
	cmd.Flags().Int("max-words", 0, "Word ceiling override for the summary")
	cmd.Flags().Bool("truncate", false, "Summarize the transcript head when it exceeds the context budget")
	cmd.Flags().Bool("stdout", false, "Print the rendered artifact instead of writing a file")

	return cmd
}

// writeArtifact writes the artifact payload under dir and returns the
// resulting path.
func writeArtifact(dir string, artifact *model.ExportArtifact) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(dir, artifact.Filename)
	if err := os.WriteFile(path, artifact.Payload, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

func init() {
	rootCmd.AddCommand(newSummarizeCommand(buildSummarizePipeline))
}
