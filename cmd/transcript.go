package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Taichi-iskw/yt-brief/internal/export"
	"github.com/Taichi-iskw/yt-brief/internal/model"
	"github.com/Taichi-iskw/yt-brief/internal/pipeline"
)

// newTranscriptCommand creates the transcript command
func newTranscriptCommand(build pipelineFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transcript [VIDEO_URL]",
		Short: "Fetch and print a video's transcript",
		Long: `Fetch a video's caption track, clean it up, and print it without
generating a summary. Use --output to write it to a file instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rawURL := args[0]

			withTimestamps, _ := cmd.Flags().GetBool("timestamps")
			format, _ := cmd.Flags().GetString("format")
			if format != "text" && format != "json" {
				return fmt.Errorf("unsupported format: %q (want text or json)", format)
			}

			p, _, err := build(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
			defer cancel()

			sess := pipeline.NewSession()
			body, err := p.Transcript(ctx, sess, rawURL, withTimestamps)
			if err != nil {
				cmd.SilenceUsage = true
				return fmt.Errorf("%s", pipeline.UserMessage(err))
			}

			outDir, _ := cmd.Flags().GetString("output")

			switch format {
			case "json":
				result := map[string]interface{}{
					"video":    sess.Video,
					"segments": sess.Segments,
				}
				jsonData, err := json.MarshalIndent(result, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to format JSON: %w", err)
				}
				if outDir == "" {
					cmd.Println(string(jsonData))
					return nil
				}
				doc := export.NewTranscriptDocument(sess.Video, body)
				path, err := writeArtifact(outDir, &model.ExportArtifact{
					Format:   model.FormatText,
					Payload:  jsonData,
					Filename: export.Filename(doc, ".json"),
				})
				if err != nil {
					return err
				}
				cmd.Printf("✅ Transcript saved: %s\n", path)

			default:
				if outDir == "" {
					cmd.Println(body)
					return nil
				}
				doc := export.NewTranscriptDocument(sess.Video, body)
				artifact, err := export.Export(doc, model.FormatText)
				if err != nil {
					cmd.SilenceUsage = true
					return fmt.Errorf("%s", pipeline.UserMessage(err))
				}
				path, err := writeArtifact(outDir, artifact)
				if err != nil {
					return err
				}
				cmd.Printf("✅ Transcript saved: %s\n", path)
			}

			return nil
		},
	}

	cmd.Flags().Bool("timestamps", false, "Prefix each line with its start time")
	cmd.Flags().String("format", "text", "Output format: text, json")
	cmd.Flags().String("output", "", "Directory to write the transcript to instead of printing")

	return cmd
}

func init() {
	rootCmd.AddCommand(newTranscriptCommand(buildTranscriptPipeline))
}
