// Package extract fetches resume content over HTTP and reduces it to plain
// text for the scorer. It is the one I/O-bearing collaborator in the system:
// callers run it before scoring and convert any failure to an empty string,
// which the scorer treats as a normal zero-confidence input.
package extract

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/cenkalti/backoff/v5"
	"golang.org/x/time/rate"

	"github.com/Muzammil-Elahi/HiringHub-sub001/internal/engine"
)

// Config controls the fetcher.
type Config struct {
	Timeout         time.Duration // per-request timeout
	MaxContentChars int           // cap on extracted text length (runes)
	RequestsPerSec  float64       // polite rate limit across all fetches
	CacheTTL        time.Duration
	CacheMaxEntries int
	CacheCleanup    time.Duration
	RedisURL        string // optional L2 cache
}

// Fetcher downloads resume resources and extracts plain text.
type Fetcher struct {
	client   *http.Client
	limiter  *rate.Limiter
	cache    *textCache
	maxChars int
}

// NewFetcher builds a Fetcher with its own HTTP client and cache.
func NewFetcher(cfg Config) *Fetcher {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.MaxContentChars <= 0 {
		cfg.MaxContentChars = 20000
	}
	if cfg.RequestsPerSec <= 0 {
		cfg.RequestsPerSec = 2
	}
	return &Fetcher{
		client: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 5,
				IdleConnTimeout:     30 * time.Second,
			},
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return errors.New("stopped after 10 redirects")
				}
				return nil
			},
		},
		limiter:  rate.NewLimiter(rate.Limit(cfg.RequestsPerSec), 1),
		cache:    newTextCache(cfg.RedisURL, cfg.CacheTTL, cfg.CacheMaxEntries, cfg.CacheCleanup),
		maxChars: cfg.MaxContentChars,
	}
}

// ExtractText fetches rawURL and returns its plain-text content.
// text/plain bodies pass through; text/html is converted to markdown-ish
// text. Binary resume formats (PDF, DOCX) are not parsed here — those are
// reduced to text upstream before they ever reach this service.
func (f *Fetcher) ExtractText(ctx context.Context, rawURL string) (string, error) {
	engine.IncrExtractRequests()

	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		engine.IncrExtractErrors()
		return "", fmt.Errorf("extract: invalid url %q", rawURL)
	}

	if text, ok := f.cache.get(ctx, rawURL); ok {
		return text, nil
	}

	if err := f.limiter.Wait(ctx); err != nil {
		engine.IncrExtractErrors()
		return "", err
	}

	resp, err := f.fetchWithRetry(ctx, rawURL)
	if err != nil {
		engine.IncrExtractErrors()
		return "", fmt.Errorf("extract: fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	// Read at most 4 bytes per allowed rune; anything longer is noise.
	body, err := io.ReadAll(io.LimitReader(resp.Body, int64(f.maxChars)*4))
	if err != nil {
		engine.IncrExtractErrors()
		return "", fmt.Errorf("extract: read body: %w", err)
	}

	text, err := f.toText(resp.Header.Get("Content-Type"), body)
	if err != nil {
		engine.IncrExtractErrors()
		return "", err
	}

	text = strings.TrimSpace(engine.TruncateRunes(text, f.maxChars, ""))
	f.cache.set(ctx, rawURL, text)
	return text, nil
}

// toText reduces a response body to plain text based on its content type.
func (f *Fetcher) toText(contentType string, body []byte) (string, error) {
	ct := strings.ToLower(contentType)
	switch {
	case strings.Contains(ct, "text/html"):
		md, err := htmltomarkdown.ConvertString(string(body))
		if err != nil || strings.TrimSpace(md) == "" {
			// Markdown conversion chokes on malformed pages; fall back to
			// a plain text-node walk.
			return htmlToText(body), nil
		}
		return md, nil
	case strings.Contains(ct, "text/"), strings.Contains(ct, "application/json"), ct == "":
		return string(body), nil
	default:
		return "", fmt.Errorf("extract: unsupported content type %q", contentType)
	}
}

// fetchWithRetry performs an HTTP GET with exponential backoff on
// transient statuses (429, 5xx). Other failures are permanent.
func (f *Fetcher) fetchWithRetry(ctx context.Context, fetchURL string) (*http.Response, error) {
	operation := func() (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fetchURL, nil)
		if err != nil {
			return nil, backoff.Permanent(err)
		}
		req.Header.Set("User-Agent", "HiringHub/1.0")
		req.Header.Set("Accept", "text/plain,text/html;q=0.9,*/*;q=0.8")

		resp, err := f.client.Do(req)
		if err != nil {
			return nil, backoff.Permanent(err)
		}

		if isRetryableStatus(resp.StatusCode) {
			resp.Body.Close()
			return nil, fmt.Errorf("status %d", resp.StatusCode)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, backoff.Permanent(fmt.Errorf("status %d", resp.StatusCode))
		}
		return resp, nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 500 * time.Millisecond
	bo.MaxInterval = 5 * time.Second

	return backoff.Retry(ctx, operation, backoff.WithBackOff(bo), backoff.WithMaxTries(3))
}

func isRetryableStatus(code int) bool {
	switch code {
	case http.StatusTooManyRequests, http.StatusInternalServerError,
		http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	}
	return false
}
