// Package preprocess normalizes raw caption segments. Every function is
// pure and idempotent: applying one twice yields the same result as once.
package preprocess

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Taichi-iskw/yt-brief/internal/model"
)

// fillerWords are removed as case-insensitive whole words. Multi-word
// phrases are listed first so they match before their component words.
var fillerWords = []string{
	"you know",
	"sort of",
	"kind of",
	"um",
	"uh",
	"like",
	"basically",
}

var (
	fillerPattern     = buildFillerPattern()
	whitespacePattern = regexp.MustCompile(`\s+`)
)

func buildFillerPattern() *regexp.Regexp {
	quoted := make([]string, len(fillerWords))
	for i, w := range fillerWords {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(quoted, `|`) + `)\b`)
}

// CleanText strips filler tokens and collapses repeated whitespace.
// Removal runs to a fixpoint: deleting one filler can splice its
// neighbors into another ("you like know" becomes "you know"), so a
// single pass is not enough.
func CleanText(text string) string {
	for {
		next := fillerPattern.ReplaceAllString(text, " ")
		next = whitespacePattern.ReplaceAllString(next, " ")
		if next == text {
			break
		}
		text = next
	}
	return strings.TrimSpace(text)
}

// Clean returns a copy of segments with each text cleaned. Segments
// whose text becomes empty are dropped. The input is never mutated.
func Clean(segments []model.TranscriptSegment) []model.TranscriptSegment {
	cleaned := make([]model.TranscriptSegment, 0, len(segments))
	for _, seg := range segments {
		text := CleanText(seg.Text)
		if text == "" {
			continue
		}
		cleaned = append(cleaned, model.TranscriptSegment{
			Start: seg.Start,
			Text:  text,
		})
	}
	return cleaned
}

// Prose merges segments into a single prose block, discarding timestamps.
func Prose(segments []model.TranscriptSegment) string {
	parts := make([]string, 0, len(segments))
	for _, seg := range segments {
		if seg.Text != "" {
			parts = append(parts, seg.Text)
		}
	}
	return strings.Join(parts, " ")
}

// TableRow is one (formatted timestamp, text) row of a transcript table.
type TableRow struct {
	Timestamp string `json:"timestamp"`
	Text      string `json:"text"`
}

// Table keeps timestamps, formatting each start time as MM:SS
// (H:MM:SS past an hour).
func Table(segments []model.TranscriptSegment) []TableRow {
	rows := make([]TableRow, 0, len(segments))
	for _, seg := range segments {
		rows = append(rows, TableRow{
			Timestamp: FormatTimestamp(seg.Start),
			Text:      seg.Text,
		})
	}
	return rows
}

// FormatTimestamp renders seconds as MM:SS, or H:MM:SS past an hour.
func FormatTimestamp(seconds float64) string {
	total := int(seconds)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
