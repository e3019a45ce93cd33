package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Taichi-iskw/yt-brief/internal/errors"
	"github.com/Taichi-iskw/yt-brief/internal/model"
)

func testDocument() *Document {
	return &Document{
		Video: &model.Video{
			ID:       "abc12345678",
			Title:    "Go Concurrency Patterns",
			Channel:  "GopherCon",
			Duration: 3600,
			Views:    1000,
		},
		Label:       "concise",
		Body:        "# Overview\n\nThe talk covers **goroutines** and channels.\n\n- point one\n- point two",
		GeneratedAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	}
}

func TestExport_Text_BodyVerbatim(t *testing.T) {
	doc := testDocument()
	doc.Body = "plain body line one\nline two"

	artifact, err := Export(doc, model.FormatText)
	require.NoError(t, err)

	// Text export contains the full body string verbatim
	assert.Contains(t, string(artifact.Payload), doc.Body)
	assert.Contains(t, string(artifact.Payload), "Go Concurrency Patterns")
	assert.Contains(t, string(artifact.Payload), "GopherCon")
	assert.Equal(t, "Go_Concurrency_Patterns_concise_20260830.txt", artifact.Filename)
}

func TestExport_Markdown(t *testing.T) {
	artifact, err := Export(testDocument(), model.FormatMarkdown)
	require.NoError(t, err)

	payload := string(artifact.Payload)
	assert.Contains(t, payload, "# Go Concurrency Patterns")
	assert.Contains(t, payload, "## Video Information")
	assert.Contains(t, payload, "- **Channel:** GopherCon")
	assert.Contains(t, payload, "https://www.youtube.com/watch?v=abc12345678")
	assert.Contains(t, payload, "Generated on 2026-08-30")
	assert.Equal(t, "Go_Concurrency_Patterns_concise_20260830.md", artifact.Filename)
}

func TestExport_PDF_NonEmpty(t *testing.T) {
	artifact, err := Export(testDocument(), model.FormatPDF)
	require.NoError(t, err)

	// PDF export produces non-empty bytes for any non-empty body
	assert.NotEmpty(t, artifact.Payload)
	assert.Equal(t, "%PDF", string(artifact.Payload[:4]))
	assert.Equal(t, "Go_Concurrency_Patterns_concise_20260830.pdf", artifact.Filename)
}

func TestExport_Docx_NonEmpty(t *testing.T) {
	artifact, err := Export(testDocument(), model.FormatDocx)
	require.NoError(t, err)

	assert.NotEmpty(t, artifact.Payload)
	// docx files are zip archives
	assert.Equal(t, []byte{'P', 'K'}, artifact.Payload[:2])
	assert.Equal(t, "Go_Concurrency_Patterns_concise_20260830.docx", artifact.Filename)
}

func TestExport_Clipboard(t *testing.T) {
	doc := testDocument()
	artifact, err := Export(doc, model.FormatClipboard)
	require.NoError(t, err)

	// Clipboard payload is the raw body with no filename
	assert.Equal(t, doc.Body, string(artifact.Payload))
	assert.Empty(t, artifact.Filename)
}

func TestExport_EmptyBody(t *testing.T) {
	doc := testDocument()
	doc.Body = ""

	_, err := Export(doc, model.FormatText)
	require.Error(t, err)
	assert.Equal(t, errors.CodeExport, errors.CodeOf(err))
}

func TestExport_UnknownFormat(t *testing.T) {
	_, err := Export(testDocument(), model.ExportFormat("xlsx"))
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidArg, errors.CodeOf(err))
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input     string
		want      model.ExportFormat
		wantError bool
	}{
		{input: "text", want: model.FormatText},
		{input: "txt", want: model.FormatText},
		{input: "Markdown", want: model.FormatMarkdown},
		{input: "md", want: model.FormatMarkdown},
		{input: "pdf", want: model.FormatPDF},
		{input: "docx", want: model.FormatDocx},
		{input: "clipboard", want: model.FormatClipboard},
		{input: "xlsx", wantError: true},
	}

	for _, tt := range tests {
		format, err := ParseFormat(tt.input)
		if tt.wantError {
			assert.Error(t, err, tt.input)
			continue
		}
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, format, tt.input)
	}
}

func TestFilename(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{
			name:  "plain title",
			title: "My Video",
			want:  "My_Video_concise_20260830.txt",
		},
		{
			name:  "unsafe characters collapsed",
			title: `Go: what / why? "really"`,
			want:  "Go_what_why_really_concise_20260830.txt",
		},
		{
			name:  "empty title falls back to video ID",
			title: "",
			want:  "abc12345678_concise_20260830.txt",
		},
		{
			name:  "title of only unsafe characters falls back to ID",
			title: "???///:::",
			want:  "abc12345678_concise_20260830.txt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := testDocument()
			doc.Video.Title = tt.title
			assert.Equal(t, tt.want, Filename(doc, ".txt"))
		})
	}
}

func TestFilename_LongTitleTrimmed(t *testing.T) {
	doc := testDocument()
	doc.Video.Title = strings.Repeat("a very long title ", 20)

	name := Filename(doc, ".txt")
	// base is capped; full name stays a reasonable length
	assert.LessOrEqual(t, len(name), 80+len("_concise_20260830.txt"))
}
