package jobpost

import (
	"context"
	"strings"
	"testing"
	"time"

	cache "github.com/patrickmn/go-cache"

	"github.com/careerforge/careerforge-api/internal/config"
	pkghttp "github.com/careerforge/careerforge-api/pkg/http"
)

type fakeFetcher struct {
	calls     int
	responses []string
	errs      []error
}

func (f *fakeFetcher) FetchText(ctx context.Context, url string) (string, error) {
	idx := f.calls
	f.calls++
	if idx >= len(f.responses) {
		idx = len(f.responses) - 1
	}
	return f.responses[idx], f.errs[idx]
}

func testJobPostConfig() config.JobPostConfig {
	return config.JobPostConfig{
		CacheTTL:      time.Minute,
		RetryAttempts: 3,
		RetryDelay:    time.Millisecond,
		RetryMaxDelay: 5 * time.Millisecond,
	}
}

func newTestConnector(f fetcher) *Connector {
	cfg := testJobPostConfig()
	return &Connector{
		fetcher: f,
		cache:   cache.New(cfg.CacheTTL, 2*cfg.CacheTTL),
		cfg:     cfg,
	}
}

func TestFetchPostingCachesByURL(t *testing.T) {
	fake := &fakeFetcher{
		responses: []string{"<html><body>Go engineer wanted</body></html>"},
		errs:      []error{nil},
	}
	c := newTestConnector(fake)

	first, err := c.FetchPosting(context.Background(), "https://example.com/job/1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := c.FetchPosting(context.Background(), "https://example.com/job/1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if fake.calls != 1 {
		t.Errorf("fetcher called %d times, want 1 (second hit should be cached)", fake.calls)
	}
	if first != second {
		t.Error("cached result differs from fetched result")
	}
}

func TestFetchPostingRetriesTransientFailures(t *testing.T) {
	fake := &fakeFetcher{
		responses: []string{"", "", "<p>Backend role</p>"},
		errs:      []error{&pkghttp.NetworkError{Err: context.DeadlineExceeded}, &pkghttp.HTTPError{StatusCode: 503, Message: "unavailable"}, nil},
	}
	c := newTestConnector(fake)

	text, err := c.FetchPosting(context.Background(), "https://example.com/job/2")
	if err != nil {
		t.Fatalf("unexpected error after retries: %v", err)
	}
	if fake.calls != 3 {
		t.Errorf("fetcher called %d times, want 3", fake.calls)
	}
	if !strings.Contains(text, "Backend role") {
		t.Errorf("unexpected text: %q", text)
	}
}

func TestFetchPostingDoesNotRetryClientErrors(t *testing.T) {
	fake := &fakeFetcher{
		responses: []string{""},
		errs:      []error{&pkghttp.HTTPError{StatusCode: 404, Message: "not found"}},
	}
	c := newTestConnector(fake)

	_, err := c.FetchPosting(context.Background(), "https://example.com/gone")
	if err == nil {
		t.Fatal("expected error")
	}
	if fake.calls != 1 {
		t.Errorf("fetcher called %d times for a 404, want 1", fake.calls)
	}
}

func TestFetchPostingRejectsEmptyPages(t *testing.T) {
	fake := &fakeFetcher{
		responses: []string{"<html><script>var x = 1;</script></html>"},
		errs:      []error{nil},
	}
	c := newTestConnector(fake)

	if _, err := c.FetchPosting(context.Background(), "https://example.com/empty"); err == nil {
		t.Fatal("expected error for a page with no readable text")
	}
}

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			"plain text untouched",
			"Just a plain posting",
			"Just a plain posting",
		},
		{
			"tags become line breaks",
			"<h1>Title</h1><p>Body text</p>",
			"Title\n\nBody text",
		},
		{
			"scripts and styles removed",
			"<style>body{}</style><p>Kept</p><script>alert(1)</script>",
			"Kept",
		},
		{
			"entities decoded",
			"Pay: &gt;100k &amp; equity",
			"Pay: >100k & equity",
		},
		{
			"blank runs collapsed",
			"<div>A</div>\n\n\n\n<div>B</div>",
			"A\n\nB",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripHTML(tt.input); got != tt.want {
				t.Errorf("StripHTML(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
