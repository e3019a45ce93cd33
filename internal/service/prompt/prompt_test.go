package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Taichi-iskw/yt-brief/internal/errors"
	"github.com/Taichi-iskw/yt-brief/internal/model"
)

func segment(start float64, text string) model.TranscriptSegment {
	return model.TranscriptSegment{Start: start, Text: text}
}

func TestBuilder_Build(t *testing.T) {
	segments := []model.TranscriptSegment{
		segment(0, "welcome to the talk"),
		segment(65, "the main topic is goroutines"),
	}

	tests := []struct {
		name         string
		mode         model.Mode
		wantContains []string
	}{
		{
			name:         "concise uses prose transcript",
			mode:         model.ModeConcise,
			wantContains: []string{"3-5 bullet points", "welcome to the talk the main topic is goroutines"},
		},
		{
			name:         "detailed uses prose transcript",
			mode:         model.ModeDetailed,
			wantContains: []string{"well-structured paragraphs", "welcome to the talk the main topic is goroutines"},
		},
		{
			name:         "chapter keeps timestamps",
			mode:         model.ModeChapter,
			wantContains: []string{"chapter-based summary", "[00:00] welcome to the talk", "[01:05] the main topic is goroutines"},
		},
		{
			name:         "study notes keep timestamps and skeleton",
			mode:         model.ModeStudyNotes,
			wantContains: []string{"ACTION ITEMS", "QUOTES", "[01:05] the main topic is goroutines"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			builder := NewBuilder()
			result, err := builder.Build(model.SummaryRequest{Mode: tt.mode, Segments: segments})
			require.NoError(t, err)
			assert.False(t, result.Truncated)

			for _, want := range tt.wantContains {
				assert.Contains(t, result.Prompt, want)
			}
			assert.Contains(t, result.Prompt, "Transcript:")
		})
	}
}

func TestBuilder_Build_WordCeilingOverride(t *testing.T) {
	builder := NewBuilder()
	segments := []model.TranscriptSegment{segment(0, "short transcript")}

	result, err := builder.Build(model.SummaryRequest{
		Mode:     model.ModeConcise,
		Segments: segments,
		MaxWords: 100,
	})
	require.NoError(t, err)
	assert.Contains(t, result.Prompt, "within 100 words")
}

func TestBuilder_Build_EmptyTranscript(t *testing.T) {
	builder := NewBuilder()
	_, err := builder.Build(model.SummaryRequest{Mode: model.ModeConcise})
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidArg, errors.CodeOf(err))
}

func TestBuilder_Build_OverBudgetRejected(t *testing.T) {
	builder := NewBuilder(WithContextBudget(5))
	segments := []model.TranscriptSegment{
		segment(0, "one two three"),
		segment(5, "four five six"),
	}

	_, err := builder.Build(model.SummaryRequest{Mode: model.ModeConcise, Segments: segments})
	require.Error(t, err)
	assert.Equal(t, errors.CodeTooLarge, errors.CodeOf(err))
}

func TestBuilder_Build_OverBudgetTruncated(t *testing.T) {
	builder := NewBuilder(WithContextBudget(5), WithTruncation())
	segments := []model.TranscriptSegment{
		segment(0, "one two three"),
		segment(5, "four five six"),
		segment(9, "seven eight nine"),
	}

	result, err := builder.Build(model.SummaryRequest{Mode: model.ModeConcise, Segments: segments})
	require.NoError(t, err)

	assert.True(t, result.Truncated)
	assert.Contains(t, result.Prompt, "one two three")
	assert.NotContains(t, result.Prompt, "seven eight nine")
}

func TestBuilder_Build_TruncationKeepsFirstSegment(t *testing.T) {
	// A single segment larger than the budget is still kept whole
	builder := NewBuilder(WithContextBudget(2), WithTruncation())
	segments := []model.TranscriptSegment{segment(0, "one two three four")}

	result, err := builder.Build(model.SummaryRequest{Mode: model.ModeConcise, Segments: segments})
	require.NoError(t, err)
	assert.Contains(t, result.Prompt, "one two three four")
}

func TestChapterHints(t *testing.T) {
	tests := []struct {
		name        string
		description string
		want        []string
	}{
		{
			name:        "chapter list extracted",
			description: "Great talk!\n00:00 Introduction\n05:30 Goroutines\n1:02:45 Q&A\nthanks for watching",
			want:        []string{"[00:00] Introduction", "[05:30] Goroutines", "[1:02:45] Q&A"},
		},
		{
			name:        "single timestamp is not a chapter list",
			description: "recorded at 12:30 somewhere",
			want:        nil,
		},
		{
			name:        "no timestamps",
			description: "just a plain description",
			want:        nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ChapterHints(tt.description))
		})
	}
}

func TestBuilder_Build_ChapterHints(t *testing.T) {
	builder := NewBuilder()
	segments := []model.TranscriptSegment{segment(0, "hello"), segment(300, "topic two")}
	hints := []string{"[00:00] Intro", "[05:00] Topic Two"}

	result, err := builder.Build(model.SummaryRequest{
		Mode:         model.ModeChapter,
		Segments:     segments,
		ChapterHints: hints,
	})
	require.NoError(t, err)
	assert.Contains(t, result.Prompt, "chapters from the video description")
	assert.Contains(t, result.Prompt, "[05:00] Topic Two")

	// Hints are ignored outside chapter mode
	result, err = builder.Build(model.SummaryRequest{
		Mode:         model.ModeConcise,
		Segments:     segments,
		ChapterHints: hints,
	})
	require.NoError(t, err)
	assert.NotContains(t, result.Prompt, "chapters from the video description")
}

func TestModeTemplates_WithinWordCeiling(t *testing.T) {
	// The instruction template itself (transcript excluded) never
	// exceeds the mode's word ceiling
	modes := []model.Mode{
		model.ModeConcise,
		model.ModeDetailed,
		model.ModeChapter,
		model.ModeStudyNotes,
	}

	for _, mode := range modes {
		spec := mode.Spec()
		templateWords := len(strings.Fields(spec.Template))
		assert.LessOrEqual(t, templateWords, spec.MaxWords, spec.Label)
	}
}
