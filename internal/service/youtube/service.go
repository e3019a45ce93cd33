package youtube

import (
	"context"

	"github.com/Taichi-iskw/yt-brief/internal/model"
	"github.com/Taichi-iskw/yt-brief/internal/service/common"
)

// Service is interface for YouTube video metadata operations
type Service interface {
	FetchVideoInfo(ctx context.Context, videoID string) (*model.Video, error)
}

// youTubeService implements Service
type youTubeService struct {
	client common.Doer
	apiKey string // YouTube Data API key; optional
}

// NewService creates a new Service
func NewService(apiKey string) Service {
	return NewServiceWithDoer(common.NewHTTPClient(), apiKey)
}

// NewServiceWithDoer creates a new Service with a custom HTTP client (for testing)
func NewServiceWithDoer(client common.Doer, apiKey string) Service {
	return &youTubeService{
		client: client,
		apiKey: apiKey,
	}
}
