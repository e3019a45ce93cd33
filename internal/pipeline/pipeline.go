// Package pipeline sequences the summarization steps for one user
// action: URL → video ID → metadata → transcript → preprocessing →
// prompt → generation → export. Control flow is strictly linear; each
// external call blocks until it returns or the context expires.
package pipeline

import (
	"context"
	"strings"
	"time"

	"github.com/Taichi-iskw/yt-brief/internal/export"
	"github.com/Taichi-iskw/yt-brief/internal/model"
	"github.com/Taichi-iskw/yt-brief/internal/service/generate"
	"github.com/Taichi-iskw/yt-brief/internal/service/preprocess"
	"github.com/Taichi-iskw/yt-brief/internal/service/prompt"
	"github.com/Taichi-iskw/yt-brief/internal/service/transcript"
	"github.com/Taichi-iskw/yt-brief/internal/service/youtube"
)

// Pipeline wires the services behind one entry point per user action.
type Pipeline struct {
	metadata  youtube.Service
	fetcher   transcript.Fetcher
	builder   *prompt.Builder
	generator generate.Generator
}

// New creates a Pipeline with the given dependencies.
func New(metadata youtube.Service, fetcher transcript.Fetcher, builder *prompt.Builder, generator generate.Generator) *Pipeline {
	return &Pipeline{
		metadata:  metadata,
		fetcher:   fetcher,
		builder:   builder,
		generator: generator,
	}
}

// SummarizeOptions select the summary style and output rendering.
type SummarizeOptions struct {
	Mode     model.Mode
	Format   model.ExportFormat
	MaxWords int
}

// Summarize runs the full pipeline for one URL and returns the export
// artifact. The session records intermediate state and the final
// status; on failure the error is stored and returned unretried.
func (p *Pipeline) Summarize(ctx context.Context, sess *Session, rawURL string, opts SummarizeOptions) (*model.ExportArtifact, error) {
	sess.begin()

	if err := p.resolve(ctx, sess, rawURL); err != nil {
		return nil, sess.fail(err)
	}

	built, err := p.builder.Build(model.SummaryRequest{
		Mode:         opts.Mode,
		Segments:     sess.Segments,
		MaxWords:     opts.MaxWords,
		ChapterHints: prompt.ChapterHints(sess.Video.Description),
	})
	if err != nil {
		return nil, sess.fail(err)
	}

	body, err := p.generator.Generate(ctx, built.Prompt)
	if err != nil {
		return nil, sess.fail(err)
	}

	sess.Summary = &model.SummaryResult{
		Mode:        opts.Mode,
		Body:        body,
		Model:       p.generator.Model(),
		GeneratedAt: time.Now(),
		Truncated:   built.Truncated,
	}

	artifact, err := export.Export(export.NewSummaryDocument(sess.Video, sess.Summary), opts.Format)
	if err != nil {
		return nil, sess.fail(err)
	}

	sess.succeed()
	return artifact, nil
}

// Transcript fetches and preprocesses the transcript without calling
// the generator. With timestamps it returns a (timestamp, text) table;
// otherwise a single prose block.
func (p *Pipeline) Transcript(ctx context.Context, sess *Session, rawURL string, withTimestamps bool) (string, error) {
	sess.begin()

	if err := p.resolve(ctx, sess, rawURL); err != nil {
		return "", sess.fail(err)
	}

	var body string
	if withTimestamps {
		body = formatTable(preprocess.Table(sess.Segments))
	} else {
		body = preprocess.Prose(sess.Segments)
	}

	sess.succeed()
	return body, nil
}

// resolve fills the session with the video and its cleaned transcript.
// Metadata lookup is best-effort: on failure the session carries an
// ID-only video and the pipeline continues.
func (p *Pipeline) resolve(ctx context.Context, sess *Session, rawURL string) error {
	videoID, err := youtube.ExtractVideoID(rawURL)
	if err != nil {
		return err
	}

	video, err := p.metadata.FetchVideoInfo(ctx, videoID)
	if err != nil {
		video = &model.Video{ID: videoID}
	}
	sess.Video = video

	segments, err := p.fetcher.Fetch(ctx, videoID)
	if err != nil {
		return err
	}

	sess.Segments = preprocess.Clean(segments)
	return nil
}

func formatTable(rows []preprocess.TableRow) string {
	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = "[" + row.Timestamp + "] " + row.Text
	}
	return strings.Join(lines, "\n")
}
