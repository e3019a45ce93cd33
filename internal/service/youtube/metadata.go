package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"

	"github.com/Taichi-iskw/yt-brief/internal/errors"
	"github.com/Taichi-iskw/yt-brief/internal/model"
)

const (
	videosEndpoint = "https://www.googleapis.com/youtube/v3/videos"
	oembedEndpoint = "https://www.youtube.com/oembed"
)

// dataAPIResponse represents the YouTube Data API v3 videos.list response
type dataAPIResponse struct {
	Items []struct {
		Snippet struct {
			Title        string `json:"title"`
			ChannelTitle string `json:"channelTitle"`
			Description  string `json:"description"`
			Thumbnails   struct {
				High struct {
					URL string `json:"url"`
				} `json:"high"`
			} `json:"thumbnails"`
		} `json:"snippet"`
		ContentDetails struct {
			Duration string `json:"duration"` // ISO 8601, e.g. PT1H2M3S
		} `json:"contentDetails"`
		Statistics struct {
			ViewCount string `json:"viewCount"`
		} `json:"statistics"`
	} `json:"items"`
}

// oembedResponse represents the keyless oEmbed endpoint response
type oembedResponse struct {
	Title        string `json:"title"`
	AuthorName   string `json:"author_name"`
	ThumbnailURL string `json:"thumbnail_url"`
}

// FetchVideoInfo fetches video metadata. With an API key it uses the
// Data API (title, channel, duration, views); without one it degrades
// to the oEmbed endpoint (title and channel only).
func (s *youTubeService) FetchVideoInfo(ctx context.Context, videoID string) (*model.Video, error) {
	if videoID == "" {
		return nil, errors.New(errors.CodeInvalidArg, "video ID is required")
	}

	if s.apiKey != "" {
		return s.fetchViaDataAPI(ctx, videoID)
	}
	return s.fetchViaOEmbed(ctx, videoID)
}

func (s *youTubeService) fetchViaDataAPI(ctx context.Context, videoID string) (*model.Video, error) {
	q := url.Values{}
	q.Set("id", videoID)
	q.Set("key", s.apiKey)
	q.Set("part", "snippet,contentDetails,statistics")

	body, err := s.get(ctx, videosEndpoint+"?"+q.Encode())
	if err != nil {
		return nil, err
	}

	var resp dataAPIResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, errors.Wrap(err, errors.CodeFetch, "failed to parse video metadata response")
	}

	if len(resp.Items) == 0 {
		return nil, errors.New(errors.CodeFetch, "video not found or may be private: "+videoID)
	}

	item := resp.Items[0]
	views, _ := strconv.ParseInt(item.Statistics.ViewCount, 10, 64)

	return &model.Video{
		ID:          videoID,
		Title:       item.Snippet.Title,
		Channel:     item.Snippet.ChannelTitle,
		Description: item.Snippet.Description,
		Duration:    parseISO8601Duration(item.ContentDetails.Duration),
		Views:       views,
		Thumbnail:   item.Snippet.Thumbnails.High.URL,
	}, nil
}

func (s *youTubeService) fetchViaOEmbed(ctx context.Context, videoID string) (*model.Video, error) {
	q := url.Values{}
	q.Set("url", "https://www.youtube.com/watch?v="+videoID)
	q.Set("format", "json")

	body, err := s.get(ctx, oembedEndpoint+"?"+q.Encode())
	if err != nil {
		return nil, err
	}

	var resp oembedResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, errors.Wrap(err, errors.CodeFetch, "failed to parse oEmbed response")
	}

	return &model.Video{
		ID:        videoID,
		Title:     resp.Title,
		Channel:   resp.AuthorName,
		Thumbnail: resp.ThumbnailURL,
	}, nil
}

// get performs a GET request and returns the response body.
func (s *youTubeService) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "failed to build metadata request")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeFetch, "metadata request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New(errors.CodeFetch, fmt.Sprintf("metadata request returned status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeFetch, "failed to read metadata response")
	}
	return body, nil
}

// iso8601Duration matches PT#H#M#S with any component optional
var iso8601Duration = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// parseISO8601Duration converts a Data API duration into seconds.
// Unparseable values yield 0 rather than failing the whole lookup.
func parseISO8601Duration(s string) float64 {
	m := iso8601Duration.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	hours, _ := strconv.Atoi(zeroIfEmpty(m[1]))
	minutes, _ := strconv.Atoi(zeroIfEmpty(m[2]))
	seconds, _ := strconv.Atoi(zeroIfEmpty(m[3]))
	return float64(hours*3600 + minutes*60 + seconds)
}

func zeroIfEmpty(s string) string {
	if s == "" {
		return "0"
	}
	return s
}
