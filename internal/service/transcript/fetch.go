package transcript

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	"github.com/Taichi-iskw/yt-brief/internal/errors"
	"github.com/Taichi-iskw/yt-brief/internal/model"
)

const watchURL = "https://www.youtube.com/watch?v="

// captionTrack is one entry of the watch page's caption track list
type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"` // "asr" for auto-generated tracks
}

// timedTextResponse is the json3 payload of a caption track
type timedTextResponse struct {
	Events []struct {
		StartMs int64 `json:"tStartMs"`
		Segs    []struct {
			UTF8 string `json:"utf8"`
		} `json:"segs"`
	} `json:"events"`
}

// Fetch resolves the video's caption tracks from the watch page,
// downloads the preferred track, and returns its segments ordered by
// start time. NO_CAPTIONS when the video has no track; FETCH_ERROR on
// network or provider failure. Not retried.
func (f *captionFetcher) Fetch(ctx context.Context, videoID string) ([]model.TranscriptSegment, error) {
	if videoID == "" {
		return nil, errors.New(errors.CodeInvalidArg, "video ID is required")
	}

	page, err := f.get(ctx, watchURL+videoID)
	if err != nil {
		return nil, err
	}

	tracks, err := extractCaptionTracks(page)
	if err != nil {
		return nil, err
	}

	track := pickTrack(tracks)
	raw, err := f.get(ctx, track.BaseURL+"&fmt=json3")
	if err != nil {
		return nil, err
	}

	segments, err := parseTimedText(raw)
	if err != nil {
		return nil, err
	}
	if len(segments) == 0 {
		return nil, errors.New(errors.CodeNoCaptions, "caption track is empty for video "+videoID)
	}

	sort.SliceStable(segments, func(i, j int) bool {
		return segments[i].Start < segments[j].Start
	})
	return segments, nil
}

// extractCaptionTracks locates the captionTracks array embedded in the
// watch page's player response JSON.
func extractCaptionTracks(page []byte) ([]captionTrack, error) {
	const marker = `"captionTracks":`

	idx := strings.Index(string(page), marker)
	if idx < 0 {
		return nil, errors.New(errors.CodeNoCaptions, "no caption tracks available (captions may be disabled)")
	}

	dec := json.NewDecoder(strings.NewReader(string(page[idx+len(marker):])))
	var tracks []captionTrack
	if err := dec.Decode(&tracks); err != nil {
		return nil, errors.Wrap(err, errors.CodeFetch, "failed to parse caption track list")
	}
	if len(tracks) == 0 {
		return nil, errors.New(errors.CodeNoCaptions, "caption track list is empty")
	}

	return tracks, nil
}

// pickTrack prefers a manually authored English track, then any manual
// track, then falls back to the first (possibly auto-generated) one.
func pickTrack(tracks []captionTrack) captionTrack {
	for _, t := range tracks {
		if t.Kind != "asr" && strings.HasPrefix(t.LanguageCode, "en") {
			return t
		}
	}
	for _, t := range tracks {
		if t.Kind != "asr" {
			return t
		}
	}
	return tracks[0]
}

// parseTimedText decodes a json3 track into transcript segments.
func parseTimedText(raw []byte) ([]model.TranscriptSegment, error) {
	var resp timedTextResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, errors.Wrap(err, errors.CodeFetch, "failed to parse caption track")
	}

	segments := make([]model.TranscriptSegment, 0, len(resp.Events))
	for _, event := range resp.Events {
		var text strings.Builder
		for _, seg := range event.Segs {
			text.WriteString(seg.UTF8)
		}
		trimmed := strings.TrimSpace(strings.ReplaceAll(text.String(), "\n", " "))
		if trimmed == "" {
			continue
		}
		segments = append(segments, model.TranscriptSegment{
			Start: float64(event.StartMs) / 1000.0,
			Text:  trimmed,
		})
	}

	return segments, nil
}

// get performs a GET request and returns the response body.
func (f *captionFetcher) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "failed to build captions request")
	}
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeFetch, "captions request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New(errors.CodeFetch, fmt.Sprintf("captions request returned status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeFetch, "failed to read captions response")
	}
	return body, nil
}
