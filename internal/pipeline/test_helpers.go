package pipeline

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Taichi-iskw/yt-brief/internal/model"
)

// mockMetadataService is a mock implementation of youtube.Service for testing
type mockMetadataService struct {
	mock.Mock
}

func (m *mockMetadataService) FetchVideoInfo(ctx context.Context, videoID string) (*model.Video, error) {
	args := m.Called(ctx, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Video), args.Error(1)
}

// mockFetcher is a mock implementation of transcript.Fetcher for testing
type mockFetcher struct {
	mock.Mock
}

func (m *mockFetcher) Fetch(ctx context.Context, videoID string) ([]model.TranscriptSegment, error) {
	args := m.Called(ctx, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TranscriptSegment), args.Error(1)
}
