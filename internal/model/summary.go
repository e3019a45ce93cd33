package model

import (
	"fmt"
	"strings"
	"time"
)

// Mode is a summary style. The set is closed; Spec resolves each
// variant through an exhaustive switch so adding a mode without a
// spec record fails at compile time.
type Mode int

const (
	ModeConcise Mode = iota
	ModeDetailed
	ModeChapter
	ModeStudyNotes
)

// ModeSpec carries the per-mode instruction template and limits.
type ModeSpec struct {
	Label    string   // short name used in filenames and CLI flags
	MaxWords int      // ceiling for the generated summary
	Template string   // instruction text; transcript is appended after it
	Sections []string // fixed section skeleton, empty for free-form modes
}

// ParseMode converts a CLI flag value into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "concise":
		return ModeConcise, nil
	case "detailed":
		return ModeDetailed, nil
	case "chapter", "chapters":
		return ModeChapter, nil
	case "notes", "study-notes", "study_notes":
		return ModeStudyNotes, nil
	default:
		return ModeConcise, fmt.Errorf("unknown mode: %q (want concise, detailed, chapter, or notes)", s)
	}
}

// Spec returns the variant record for the mode.
func (m Mode) Spec() ModeSpec {
	switch m {
	case ModeConcise:
		return ModeSpec{
			Label:    "concise",
			MaxWords: 250,
			Template: "You are a YouTube video summarizer expert. Provide a concise summary of the video transcript below in 3-5 bullet points. Focus on the main ideas and key takeaways only. Keep the total summary within 250 words. Make it easy to understand and skim.",
		}
	case ModeDetailed:
		return ModeSpec{
			Label:    "detailed",
			MaxWords: 500,
			Template: "You are a YouTube video summarizer expert. Provide a detailed summary of the video transcript below in well-structured paragraphs. Include the main ideas, key points, and important examples. Keep the total summary within 500 words. Make it comprehensive yet easy to understand.",
		}
	case ModeChapter:
		return ModeSpec{
			Label:    "chapter",
			MaxWords: 500,
			Template: "You are a YouTube video summarizer expert. Create a chapter-based summary of the video transcript below. Identify major topics and create logical chapters with headings. Under each chapter, provide a brief summary of the content. Include timestamps where possible. Keep the total summary within 500 words.",
		}
	case ModeStudyNotes:
		return ModeSpec{
			Label:    "notes",
			MaxWords: 500,
			Template: "You are a professional note-taker. Transform the following video transcript into structured, actionable study notes with these sections: INTRODUCTION (brief overview of the topic), KEY POINTS (main concepts and ideas), ACTION ITEMS (specific tasks or applications mentioned), QUOTES (important statements), RESOURCES (tools, websites, or references mentioned). Use bullet points and keep the notes organized, concise, and easy to reference. Include timestamps where appropriate.",
			Sections: []string{"Introduction", "Key Points", "Action Items", "Quotes", "Resources"},
		}
	}
	panic(fmt.Sprintf("model: no spec for mode %d", m))
}

func (m Mode) String() string {
	return m.Spec().Label
}

// SummaryRequest is the input to the prompt builder.
type SummaryRequest struct {
	Mode     Mode
	Segments []TranscriptSegment
	MaxWords int // 0 means the mode default
	// ChapterHints are "MM:SS Title" lines taken from the video
	// description; chapter mode uses them as headings instead of
	// asking the model to infer topic boundaries.
	ChapterHints []string
}

// SummaryResult is the generator output consumed by the exporter and CLI.
type SummaryResult struct {
	Mode        Mode      `json:"mode"`
	Body        string    `json:"body"`
	Model       string    `json:"model"`
	GeneratedAt time.Time `json:"generated_at"`
	Truncated   bool      `json:"truncated,omitempty"` // transcript was cut to fit the context budget
}

// ExportFormat identifies an artifact rendering.
type ExportFormat string

const (
	FormatText      ExportFormat = "text"
	FormatMarkdown  ExportFormat = "markdown"
	FormatPDF       ExportFormat = "pdf"
	FormatDocx      ExportFormat = "docx"
	FormatClipboard ExportFormat = "clipboard"
)

// ExportArtifact is a rendered output delivered to the user.
type ExportArtifact struct {
	Format   ExportFormat
	Payload  []byte
	Filename string // empty for clipboard payloads
}
