package youtube

import (
	"bytes"
	"io"
	"net/http"

	"github.com/stretchr/testify/mock"
)

// mockDoer is a mock implementation of common.Doer for testing
type mockDoer struct {
	mock.Mock
}

func (m *mockDoer) Do(req *http.Request) (*http.Response, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*http.Response), args.Error(1)
}

// httpResponse builds a *http.Response with the given status and body
func httpResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewReader([]byte(body))),
	}
}
