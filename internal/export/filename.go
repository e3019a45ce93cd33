package export

import (
	"fmt"
	"regexp"
	"strings"
)

const maxBaseLength = 80

var unsafeChars = regexp.MustCompile(`[^0-9A-Za-z._-]+`)

// Filename derives {title_or_id}_{label}_{date}{ext} from the document.
func Filename(doc *Document, ext string) string {
	base := doc.Video.ID
	if doc.Video.Title != "" {
		base = sanitize(doc.Video.Title)
	}
	if base == "" {
		base = doc.Video.ID
	}
	return fmt.Sprintf("%s_%s_%s%s", base, doc.Label, doc.GeneratedAt.Format("20060102"), ext)
}

// sanitize makes a video title filesystem-safe: unsafe runs become a
// single underscore and overlong titles are cut.
func sanitize(title string) string {
	s := unsafeChars.ReplaceAllString(title, "_")
	s = strings.Trim(s, "_.")
	if len(s) > maxBaseLength {
		s = s[:maxBaseLength]
		s = strings.TrimRight(s, "_.")
	}
	return s
}
