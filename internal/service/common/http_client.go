package common

import (
	"net/http"
	"time"
)

// Doer is interface for executing HTTP requests against external services
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewHTTPClient creates the default client used for all external calls.
// Timeout bounds every captions and metadata request; generation calls
// carry their own context deadlines.
func NewHTTPClient() *http.Client {
	return &http.Client{
		Timeout: 30 * time.Second,
	}
}
