// Package client calls the backupstore HTTP API.
package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

var (
	// ErrNotImplemented is returned when the server has no backup directory configured.
	ErrNotImplemented = errors.New("backupstore: backups are not enabled")

	// ErrForbidden is returned when Authorization was rejected.
	ErrForbidden = errors.New("backupstore: forbidden")
)

type Configuration struct {
	// BasePath is the scheme and host of the backupstore public server.
	BasePath string

	// Authorization is sent as-is in the Authorization header when non-empty.
	Authorization string

	HTTPClient *http.Client

	// RetryMax is how many times a failed request is retried. Overwriting a backup is
	// idempotent so retries are safe.
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
}

func NewConfiguration() *Configuration {
	return &Configuration{
		BasePath:     "http://localhost:8484",
		HTTPClient:   &http.Client{Timeout: 30 * time.Second},
		RetryMax:     3,
		RetryWaitMin: 500 * time.Millisecond,
		RetryWaitMax: 5 * time.Second,
	}
}

type APIClient struct {
	cfg    *Configuration
	client *retryablehttp.Client
}

func NewAPIClient(cfg *Configuration) *APIClient {
	if cfg == nil {
		cfg = NewConfiguration()
	}

	client := retryablehttp.NewClient()
	client.Logger = nil
	client.RetryMax = cfg.RetryMax
	if cfg.RetryWaitMin > 0 {
		client.RetryWaitMin = cfg.RetryWaitMin
	}
	if cfg.RetryWaitMax > 0 {
		client.RetryWaitMax = cfg.RetryWaitMax
	}
	if cfg.HTTPClient != nil {
		client.HTTPClient = cfg.HTTPClient
	}
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler

	return &APIClient{
		cfg:    cfg,
		client: client,
	}
}

// StatusError is returned for unexpected response codes.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backupstore: unexpected %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// StoreBackup uploads payload to be written as filename.
func (c *APIClient) StoreBackup(ctx context.Context, filename string, payload []byte) error {
	address := strings.TrimSuffix(c.cfg.BasePath, "/") + "/backup/" + url.PathEscape(filename)

	req, err := retryablehttp.NewRequestWithContext(ctx, "POST", address, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("preparing request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	if c.cfg.Authorization != "" {
		req.Header.Set("Authorization", c.cfg.Authorization)
	}

	resp, err := c.client.Do(req)
	if resp != nil && resp.Body != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		return fmt.Errorf("storing backup %s: %w", filename, err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusNotImplemented:
		return ErrNotImplemented
	case http.StatusForbidden:
		return ErrForbidden
	}
	return &StatusError{StatusCode: resp.StatusCode}
}
