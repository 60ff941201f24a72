package test

import (
	"net/http"
	"net/http/httptest"

	"github.com/moov-io/backupstore/pkg/client"
)

// NewTestClient returns an APIClient which calls handler directly, without a server.
func NewTestClient(handler http.Handler, authorization string) *client.APIClient {
	mockClient := &http.Client{
		Transport: &MockClientHandler{
			handler: handler,
		},

		// Disables following redirects for testing.
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	config := client.NewConfiguration()
	config.BasePath = "http://backupstore.local"
	config.Authorization = authorization
	config.HTTPClient = mockClient
	config.RetryMax = 0

	return client.NewAPIClient(config)
}

type MockClientHandler struct {
	handler http.Handler
}

func (h *MockClientHandler) RoundTrip(request *http.Request) (*http.Response, error) {
	writer := httptest.NewRecorder()

	h.handler.ServeHTTP(writer, request)
	return writer.Result(), nil
}
