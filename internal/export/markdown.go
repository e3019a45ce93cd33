package export

import (
	"fmt"
	"strings"

	"github.com/Taichi-iskw/yt-brief/internal/service/preprocess"
)

// MarkdownRenderer formats output as a markdown document with a video
// information block and a generated-on footer
type MarkdownRenderer struct{}

func (r *MarkdownRenderer) Render(doc *Document) ([]byte, error) {
	var output strings.Builder

	output.WriteString(fmt.Sprintf("# %s\n\n", doc.Video.DisplayTitle()))

	output.WriteString("## Video Information\n")
	if doc.Video.Channel != "" {
		output.WriteString(fmt.Sprintf("- **Channel:** %s\n", doc.Video.Channel))
	}
	if doc.Video.Duration > 0 {
		output.WriteString(fmt.Sprintf("- **Duration:** %s\n", preprocess.FormatTimestamp(doc.Video.Duration)))
	}
	if doc.Video.Views > 0 {
		output.WriteString(fmt.Sprintf("- **Views:** %d\n", doc.Video.Views))
	}
	output.WriteString(fmt.Sprintf("- **URL:** %s\n", doc.Video.URL()))
	output.WriteString("\n")

	output.WriteString(fmt.Sprintf("## %s\n", titleLabel(doc.Label)))
	if doc.Truncated {
		output.WriteString("\n> Transcript was truncated to fit the model context budget.\n")
	}
	output.WriteString("\n")
	output.WriteString(doc.Body)
	output.WriteString("\n\n---\n")
	output.WriteString(fmt.Sprintf("Generated on %s using yt-brief\n", doc.GeneratedAt.Format("2006-01-02")))

	return []byte(output.String()), nil
}

func (r *MarkdownRenderer) Ext() string {
	return ".md"
}

func titleLabel(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
