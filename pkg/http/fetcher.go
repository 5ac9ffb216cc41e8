package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// Fetcher retrieves text documents over HTTP with a response size cap.
type Fetcher struct {
	httpClient   *http.Client
	maxBodyBytes int64
	userAgent    string
}

type FetcherConfig struct {
	MaxBodyBytes int64
	UserAgent    string
}

func NewFetcher(cfg FetcherConfig, options ...Option) *Fetcher {
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = "careerforge/1.0"
	}
	return &Fetcher{
		httpClient:   newClient(options...),
		maxBodyBytes: cfg.MaxBodyBytes,
		userAgent:    userAgent,
	}
}

// FetchText GETs the URL and returns the response body as a string, reading
// at most MaxBodyBytes. Non-2xx statuses return an HTTPError; connection
// failures return a NetworkError.
func (f *Fetcher) FetchText(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html, text/plain")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	reader := io.Reader(resp.Body)
	if f.maxBodyBytes > 0 {
		reader = io.LimitReader(resp.Body, f.maxBodyBytes)
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &HTTPError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}

	return string(body), nil
}

// HTTPError represents an HTTP error response
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// NetworkError represents a network-level error (connection, timeout, etc.)
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
