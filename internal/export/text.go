package export

import (
	"fmt"
	"strings"
)

// TextRenderer formats output as plain text with a metadata header
type TextRenderer struct{}

func (r *TextRenderer) Render(doc *Document) ([]byte, error) {
	var output strings.Builder

	output.WriteString(fmt.Sprintf("Title: %s\n", doc.Video.DisplayTitle()))
	if doc.Video.Channel != "" {
		output.WriteString(fmt.Sprintf("Channel: %s\n", doc.Video.Channel))
	}
	output.WriteString(fmt.Sprintf("Type: %s\n", doc.Label))
	output.WriteString(fmt.Sprintf("Date: %s\n", doc.GeneratedAt.Format("2006-01-02")))
	if doc.Truncated {
		output.WriteString("Note: transcript was truncated to fit the model context budget\n")
	}
	output.WriteString(strings.Repeat("=", 40))
	output.WriteString("\n\n")
	output.WriteString(doc.Body)
	output.WriteString("\n")

	return []byte(output.String()), nil
}

func (r *TextRenderer) Ext() string {
	return ".txt"
}
