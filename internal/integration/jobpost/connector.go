// Package jobpost fetches job postings from external sites and reduces them
// to plain text suitable for prompts.
package jobpost

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/avast/retry-go/v4"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	cache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/careerforge/careerforge-api/internal/config"
	"github.com/careerforge/careerforge-api/internal/integration/common"
	pkghttp "github.com/careerforge/careerforge-api/pkg/http"
)

type fetcher interface {
	FetchText(ctx context.Context, url string) (string, error)
}

// Connector fetches job postings with a TTL cache keyed by URL. Fetches are
// retried on transient failures; a 4xx from the remote site is permanent and
// stops the retry loop.
type Connector struct {
	fetcher fetcher
	cache   *cache.Cache
	cfg     config.JobPostConfig
}

func NewConnector(cfg config.JobPostConfig) *Connector {
	return &Connector{
		fetcher: common.NewTextFetcher(cfg),
		cache:   cache.New(cfg.CacheTTL, 2*cfg.CacheTTL),
		cfg:     cfg,
	}
}

// FetchPosting returns the posting text for a URL, from cache when fresh.
func (c *Connector) FetchPosting(ctx context.Context, url string) (string, error) {
	if cached, found := c.cache.Get(url); found {
		ctxzap.Debug(ctx, "job posting served from cache", zap.String("url", url))
		return cached.(string), nil
	}

	var body string
	err := retry.Do(
		func() error {
			var fetchErr error
			body, fetchErr = c.fetcher.FetchText(ctx, url)
			return fetchErr
		},
		retry.Context(ctx),
		retry.Attempts(c.cfg.RetryAttempts),
		retry.Delay(c.cfg.RetryDelay),
		retry.MaxDelay(c.cfg.RetryMaxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			var httpErr *pkghttp.HTTPError
			if errors.As(err, &httpErr) {
				return httpErr.StatusCode >= 500
			}
			return true
		}),
		retry.OnRetry(func(attempt uint, err error) {
			ctxzap.Warn(ctx, "job posting fetch failed, retrying",
				zap.Uint("attempt", attempt),
				zap.Error(err),
			)
		}),
	)
	if err != nil {
		return "", fmt.Errorf("fetch job posting: %w", err)
	}

	text := StripHTML(body)
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("job posting at %s contains no readable text", url)
	}

	c.cache.Set(url, text, cache.DefaultExpiration)
	ctxzap.Info(ctx, "job posting fetched", zap.String("url", url), zap.Int("length", len(text)))
	return text, nil
}

var (
	scriptRe = regexp.MustCompile(`(?is)<(script|style|noscript)\b.*?</(script|style|noscript)>`)
	tagRe    = regexp.MustCompile(`(?s)<[^>]*>`)
	blankRe  = regexp.MustCompile(`\n{3,}`)
)

// StripHTML reduces an HTML document to readable text: scripts and styles
// are removed, tags become whitespace, entities are decoded for the common
// cases, and runs of blank lines are collapsed.
func StripHTML(input string) string {
	text := scriptRe.ReplaceAllString(input, " ")
	text = tagRe.ReplaceAllString(text, "\n")

	replacer := strings.NewReplacer(
		"&nbsp;", " ",
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&#39;", "'",
	)
	text = replacer.Replace(text)

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	text = strings.Join(lines, "\n")
	text = blankRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
