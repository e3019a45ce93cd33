package transcript

import (
	"context"

	"github.com/Taichi-iskw/yt-brief/internal/model"
	"github.com/Taichi-iskw/yt-brief/internal/service/common"
)

// Fetcher is interface for retrieving caption transcripts
type Fetcher interface {
	Fetch(ctx context.Context, videoID string) ([]model.TranscriptSegment, error)
}

// captionFetcher implements Fetcher against YouTube's timedtext endpoints
type captionFetcher struct {
	client common.Doer
}

// NewFetcher creates a new Fetcher
func NewFetcher() Fetcher {
	return NewFetcherWithDoer(common.NewHTTPClient())
}

// NewFetcherWithDoer creates a new Fetcher with a custom HTTP client (for testing)
func NewFetcherWithDoer(client common.Doer) Fetcher {
	return &captionFetcher{client: client}
}
