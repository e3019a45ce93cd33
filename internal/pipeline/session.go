package pipeline

import (
	"github.com/google/uuid"

	"github.com/Taichi-iskw/yt-brief/internal/model"
)

// Status is the per-action session state.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusProcessing Status = "processing"
	StatusReady      Status = "ready"
	StatusError      Status = "error"
)

// Session holds one invocation's state: the current video, transcript
// and summary. Nothing outlives the session; there is no cross-session
// sharing and no durable storage.
type Session struct {
	ID       string
	Video    *model.Video
	Segments []model.TranscriptSegment
	Summary  *model.SummaryResult
	Status   Status
	Err      error
}

// NewSession creates an idle session with a fresh id.
func NewSession() *Session {
	return &Session{
		ID:     uuid.NewString(),
		Status: StatusIdle,
	}
}

func (s *Session) begin() {
	s.Status = StatusProcessing
	s.Err = nil
}

func (s *Session) succeed() {
	s.Status = StatusReady
}

func (s *Session) fail(err error) error {
	s.Status = StatusError
	s.Err = err
	return err
}
