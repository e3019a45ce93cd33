package export

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

var pdfHeadingPattern = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)

// PDFRenderer lays the document out as an A4 PDF: title heading,
// metadata line, body with styled section headings, and a footer
// with page numbers. Markdown headings in the body start sections;
// top-level sections begin on a new page.
type PDFRenderer struct{}

func (r *PDFRenderer) Render(doc *Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AliasNbPages("")
	pdf.AddPage()

	// Title and metadata
	pdf.SetFont("Helvetica", "B", 16)
	pdf.MultiCell(0, 8, tr(doc.Video.DisplayTitle()), "", "L", false)
	pdf.SetFont("Helvetica", "", 10)
	meta := fmt.Sprintf("%s | %s", titleLabel(doc.Label), doc.GeneratedAt.Format("2006-01-02"))
	if doc.Video.Channel != "" {
		meta = doc.Video.Channel + " | " + meta
	}
	pdf.MultiCell(0, 5, tr(meta), "", "L", false)
	if doc.Truncated {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.MultiCell(0, 5, tr("Transcript was truncated to fit the model context budget."), "", "L", false)
	}
	pdf.Ln(4)

	sectionsSeen := 0
	for _, line := range strings.Split(doc.Body, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed == "---" {
			pdf.Ln(2)
			continue
		}

		if m := pdfHeadingPattern.FindStringSubmatch(trimmed); m != nil {
			level := len(m[1])
			if level <= 2 {
				sectionsSeen++
				if sectionsSeen > 1 {
					pdf.AddPage()
				}
			}
			pdf.SetFont("Helvetica", "B", headingFontSize(level))
			pdf.MultiCell(0, 7, tr(stripInlineMarkdown(m[2])), "", "L", false)
			pdf.Ln(1)
			continue
		}

		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 5.5, tr(stripInlineMarkdown(trimmed)), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *PDFRenderer) Ext() string {
	return ".pdf"
}

func headingFontSize(level int) float64 {
	switch level {
	case 1:
		return 14
	case 2:
		return 13
	default:
		return 12
	}
}

// stripInlineMarkdown drops emphasis markers the PDF layout ignores.
func stripInlineMarkdown(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "__", "")
	s = strings.ReplaceAll(s, "`", "")
	return s
}
