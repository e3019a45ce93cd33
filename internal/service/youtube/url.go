package youtube

import (
	"regexp"

	"github.com/Taichi-iskw/yt-brief/internal/errors"
)

// videoIDPatterns cover the accepted URL shapes, tried in order:
// standard/mobile watch URLs, short youtu.be links, embedded-player,
// shorts and live URLs, and bare 11-character IDs.
var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com/(?:watch\?(?:.*&)?v=|embed/|shorts/|live/))([0-9A-Za-z_-]{11})`),
	regexp.MustCompile(`youtu\.be/([0-9A-Za-z_-]{11})`),
	regexp.MustCompile(`^([0-9A-Za-z_-]{11})$`),
}

// ExtractVideoID extracts the 11-character video ID from a YouTube URL.
// Returns INVALID_URL when no recognized pattern matches.
func ExtractVideoID(raw string) (string, error) {
	if raw == "" {
		return "", errors.New(errors.CodeInvalidURL, "URL is required")
	}

	for _, pattern := range videoIDPatterns {
		if m := pattern.FindStringSubmatch(raw); m != nil {
			return m[1], nil
		}
	}

	return "", errors.New(errors.CodeInvalidURL, "not a recognized YouTube URL: "+raw)
}
