package prompt

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Taichi-iskw/yt-brief/internal/errors"
	"github.com/Taichi-iskw/yt-brief/internal/model"
	"github.com/Taichi-iskw/yt-brief/internal/service/preprocess"
)

// DefaultContextBudget is the transcript word ceiling for a single
// generation call. Transcripts above it are rejected unless the caller
// opted into truncation.
const DefaultContextBudget = 100000

// Builder constructs generation prompts from summary requests.
type Builder struct {
	budgetWords int
	truncate    bool
}

// Option customizes Builder creation
type Option func(*Builder)

// WithContextBudget overrides the transcript word budget.
func WithContextBudget(words int) Option {
	return func(b *Builder) {
		b.budgetWords = words
	}
}

// WithTruncation opts into cutting over-budget transcripts on a segment
// boundary instead of rejecting them. The result is flagged as truncated;
// truncation never happens silently.
func WithTruncation() Option {
	return func(b *Builder) {
		b.truncate = true
	}
}

// NewBuilder creates a new Builder
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{budgetWords: DefaultContextBudget}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Result is a built prompt plus its truncation flag.
type Result struct {
	Prompt    string
	Truncated bool
}

// Build substitutes the transcript into the mode's instruction template.
// Chapter and study-notes modes keep timestamps in the transcript body;
// the other modes use prose.
func (b *Builder) Build(req model.SummaryRequest) (Result, error) {
	if len(req.Segments) == 0 {
		return Result{}, errors.New(errors.CodeInvalidArg, "transcript is empty")
	}

	segments := req.Segments
	truncated := false

	if words := transcriptWords(segments); words > b.budgetWords {
		if !b.truncate {
			return Result{}, errors.New(errors.CodeTooLarge,
				fmt.Sprintf("transcript has %d words, budget is %d (re-run with truncation enabled to cut it)", words, b.budgetWords))
		}
		segments = truncateSegments(segments, b.budgetWords)
		truncated = true
	}

	spec := req.Mode.Spec()

	var sb strings.Builder
	sb.WriteString(spec.Template)
	if req.MaxWords > 0 && req.MaxWords != spec.MaxWords {
		sb.WriteString(fmt.Sprintf(" Keep the total summary within %d words.", req.MaxWords))
	}
	if req.Mode == model.ModeChapter && len(req.ChapterHints) > 0 {
		sb.WriteString("\n\nUse these chapters from the video description as headings:\n")
		sb.WriteString(strings.Join(req.ChapterHints, "\n"))
	}
	sb.WriteString("\n\nTranscript:\n")
	sb.WriteString(transcriptBody(req.Mode, segments))

	return Result{Prompt: sb.String(), Truncated: truncated}, nil
}

var chapterLinePattern = regexp.MustCompile(`(?m)^(\d{1,2}:\d{2}(?::\d{2})?)\s+(\S.*)$`)

// ChapterHints extracts "MM:SS Title" chapter lines from a video
// description. Returns nil when the description defines no chapters.
func ChapterHints(description string) []string {
	matches := chapterLinePattern.FindAllStringSubmatch(description, -1)
	if len(matches) < 2 {
		// a single timestamp line is not a chapter list
		return nil
	}
	hints := make([]string, len(matches))
	for i, m := range matches {
		hints[i] = fmt.Sprintf("[%s] %s", m[1], strings.TrimSpace(m[2]))
	}
	return hints
}

// transcriptBody renders segments for prompt injection.
func transcriptBody(mode model.Mode, segments []model.TranscriptSegment) string {
	switch mode {
	case model.ModeChapter, model.ModeStudyNotes:
		lines := make([]string, len(segments))
		for i, seg := range segments {
			lines[i] = fmt.Sprintf("[%s] %s", preprocess.FormatTimestamp(seg.Start), seg.Text)
		}
		return strings.Join(lines, "\n")
	default:
		return preprocess.Prose(segments)
	}
}

// transcriptWords counts whitespace-separated words across segments.
func transcriptWords(segments []model.TranscriptSegment) int {
	total := 0
	for _, seg := range segments {
		total += len(strings.Fields(seg.Text))
	}
	return total
}

// truncateSegments keeps whole leading segments up to the word budget.
// At least one segment is always kept.
func truncateSegments(segments []model.TranscriptSegment, budget int) []model.TranscriptSegment {
	total := 0
	for i, seg := range segments {
		total += len(strings.Fields(seg.Text))
		if total > budget && i > 0 {
			return segments[:i]
		}
	}
	return segments
}
