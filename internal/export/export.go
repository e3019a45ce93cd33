// Package export renders summaries and transcripts into deliverable
// artifacts. All renderers are pure transforms; no state is retained
// between calls.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/Taichi-iskw/yt-brief/internal/errors"
	"github.com/Taichi-iskw/yt-brief/internal/model"
)

// Document is the renderer input: one body of text plus the video
// metadata used for headers and filenames.
type Document struct {
	Video       *model.Video
	Label       string // "concise", "notes", "transcript", ...
	Body        string
	GeneratedAt time.Time
	Truncated   bool
}

// NewSummaryDocument builds a Document from a generation result.
func NewSummaryDocument(video *model.Video, result *model.SummaryResult) *Document {
	return &Document{
		Video:       video,
		Label:       result.Mode.Spec().Label,
		Body:        result.Body,
		GeneratedAt: result.GeneratedAt,
		Truncated:   result.Truncated,
	}
}

// NewTranscriptDocument builds a Document carrying transcript text.
func NewTranscriptDocument(video *model.Video, body string) *Document {
	return &Document{
		Video:       video,
		Label:       "transcript",
		Body:        body,
		GeneratedAt: time.Now(),
	}
}

// Renderer defines interface for artifact rendering
type Renderer interface {
	Render(doc *Document) ([]byte, error)
	Ext() string
}

// GetRenderer returns the appropriate renderer based on format
func GetRenderer(format model.ExportFormat) (Renderer, error) {
	switch format {
	case model.FormatText:
		return &TextRenderer{}, nil
	case model.FormatMarkdown:
		return &MarkdownRenderer{}, nil
	case model.FormatPDF:
		return &PDFRenderer{}, nil
	case model.FormatDocx:
		return &DocxRenderer{}, nil
	case model.FormatClipboard:
		return &ClipboardRenderer{}, nil
	default:
		return nil, errors.New(errors.CodeInvalidArg, fmt.Sprintf("unsupported export format: %q", format))
	}
}

// ParseFormat converts a CLI flag value into an ExportFormat.
func ParseFormat(s string) (model.ExportFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "txt":
		return model.FormatText, nil
	case "markdown", "md":
		return model.FormatMarkdown, nil
	case "pdf":
		return model.FormatPDF, nil
	case "docx":
		return model.FormatDocx, nil
	case "clipboard":
		return model.FormatClipboard, nil
	default:
		return "", errors.New(errors.CodeInvalidArg, fmt.Sprintf("unsupported export format: %q", s))
	}
}

// Export renders the document into an artifact with a derived filename.
func Export(doc *Document, format model.ExportFormat) (*model.ExportArtifact, error) {
	if doc.Body == "" {
		return nil, errors.New(errors.CodeExport, "nothing to export: body is empty")
	}

	renderer, err := GetRenderer(format)
	if err != nil {
		return nil, err
	}

	payload, err := renderer.Render(doc)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeExport, "failed to render "+string(format)+" artifact")
	}

	artifact := &model.ExportArtifact{
		Format:  format,
		Payload: payload,
	}
	if ext := renderer.Ext(); ext != "" {
		artifact.Filename = Filename(doc, ext)
	}
	return artifact, nil
}

// ClipboardRenderer returns the raw body for a UI-level copy action.
type ClipboardRenderer struct{}

func (r *ClipboardRenderer) Render(doc *Document) ([]byte, error) {
	return []byte(doc.Body), nil
}

// Ext returns "" because clipboard payloads have no file
func (r *ClipboardRenderer) Ext() string {
	return ""
}
