package export

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	docxFontName = "Calibri"
	docxFontSize = 11
)

var (
	docxHeadingPattern = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	docxBulletPattern  = regexp.MustCompile(`^[\-\*]\s+(.+)$`)
	docxBoldPattern    = regexp.MustCompile(`\*\*(.+?)\*\*`)
)

// DocxRenderer converts the markdown-ish body to a styled docx file.
type DocxRenderer struct{}

func (r *DocxRenderer) Render(doc *Document) ([]byte, error) {
	d, err := godocx.NewDocument()
	if err != nil {
		return nil, err
	}

	addStyledRun(d.AddParagraph(""), doc.Video.DisplayTitle(), true, 16)
	meta := titleLabel(doc.Label) + " - " + doc.GeneratedAt.Format("2006-01-02")
	if doc.Video.Channel != "" {
		meta = doc.Video.Channel + " - " + meta
	}
	addStyledRun(d.AddParagraph(""), meta, false, 10)
	d.AddParagraph("")

	for _, line := range strings.Split(doc.Body, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed == "---" {
			continue
		}

		if m := docxHeadingPattern.FindStringSubmatch(trimmed); m != nil {
			addStyledRun(d.AddParagraph(""), m[2], true, docxHeadingSize(len(m[1])))
			continue
		}

		if m := docxBulletPattern.FindStringSubmatch(trimmed); m != nil {
			addRichText(d.AddParagraph(""), "• "+m[1])
			continue
		}

		addRichText(d.AddParagraph(""), trimmed)
	}

	// godocx writes to a path; render through a temp file to keep the
	// bytes-payload contract of ExportArtifact
	tmpDir, err := os.MkdirTemp("", "yt-brief-docx")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmpDir)

	tmpPath := filepath.Join(tmpDir, "out.docx")
	if err := d.SaveTo(tmpPath); err != nil {
		return nil, err
	}
	return os.ReadFile(tmpPath)
}

func (r *DocxRenderer) Ext() string {
	return ".docx"
}

func docxHeadingSize(level int) uint64 {
	switch level {
	case 1:
		return 16
	case 2:
		return 14
	case 3:
		return 12
	default:
		return docxFontSize
	}
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(stripInlineMarkdown(text)).Font(docxFontName).Size(size)
	if bold {
		run.Bold(true)
	}
}

// addRichText renders **bold** spans as bold runs and everything else
// as plain runs.
func addRichText(p *docx.Paragraph, text string) {
	parts := docxBoldPattern.Split(text, -1)
	matches := docxBoldPattern.FindAllStringSubmatch(text, -1)

	for i, part := range parts {
		if part != "" {
			p.AddText(stripInlineMarkdown(part)).Font(docxFontName).Size(docxFontSize)
		}
		if i < len(matches) {
			p.AddText(stripInlineMarkdown(matches[i][1])).Font(docxFontName).Size(docxFontSize).Bold(true)
		}
	}
}
