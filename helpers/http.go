package helpers

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"sjsage522/aitoolscraper/logger"
	"sjsage522/aitoolscraper/pkg/errors"

	"golang.org/x/net/html/charset"
)

// Browser-like headers sent with every request
var defaultHeaders = map[string]string{
	"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8",
	"Accept-Language": "zh-CN,zh;q=0.9,en;q=0.8",
}

// FetcherConfig holds the retry and timeout settings of a Fetcher
type FetcherConfig struct {
	Timeout     time.Duration
	MaxAttempts int
	Backoff     time.Duration
}

// DefaultFetcherConfig returns 15s timeout, 3 attempts, 1s between attempts
func DefaultFetcherConfig() FetcherConfig {
	return FetcherConfig{
		Timeout:     15 * time.Second,
		MaxAttempts: 3,
		Backoff:     time.Second,
	}
}

// Fetcher performs GET requests with fixed browser headers and bounded retry
type Fetcher struct {
	client      *http.Client
	maxAttempts int
	backoff     time.Duration
	log         *logger.Logger
	sleep       func(ctx context.Context, d time.Duration) error
}

// NewFetcher creates a fetcher from cfg, logging failed attempts to log
func NewFetcher(cfg FetcherConfig, log *logger.Logger) *Fetcher {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Fetcher{
		client:      &http.Client{Timeout: cfg.Timeout},
		maxAttempts: cfg.MaxAttempts,
		backoff:     cfg.Backoff,
		log:         log,
		sleep:       Sleep,
	}
}

// Fetch returns the UTF-8 body of url. Every failed attempt (transport error,
// unreadable body, status other than 200) is logged and retried after the
// fixed backoff. Once attempts are exhausted a network ScrapeError wrapping
// the last failure is returned.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	var lastErr error
	attempts := 0
	for attempt := 1; attempt <= f.maxAttempts; attempt++ {
		attempts = attempt
		body, err := f.fetchOnce(ctx, url)
		if err == nil {
			return body, nil
		}
		lastErr = err

		f.log.Warn().
			Int("attempt", attempt).
			Int("max_attempts", f.maxAttempts).
			Str("url", url).
			Err(err).
			Msg("Request failed")

		if ctx.Err() != nil {
			break
		}
		if attempt < f.maxAttempts {
			if err := f.sleep(ctx, f.backoff); err != nil {
				break
			}
		}
	}

	return "", errors.NewNetwork(url, fmt.Sprintf("gave up after %d attempts", attempts), lastErr)
}

func (f *Fetcher) fetchOnce(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	for key, value := range defaultHeaders {
		req.Header.Set(key, value)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch %s unexpected status code: %d", url, resp.StatusCode)
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	return decodeBody(bodyBytes, resp.Header.Get("Content-Type"))
}

// decodeBody converts the body to UTF-8 when the server declares another
// charset. Undeclared bodies are taken as UTF-8.
func decodeBody(body []byte, contentType string) (string, error) {
	encoding, name, certain := charset.DetermineEncoding(body, contentType)
	if !certain || name == "utf-8" {
		return string(body), nil
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, encoding.NewDecoder().Reader(bytes.NewReader(body))); err != nil {
		return "", fmt.Errorf("failed to read converted UTF-8 body: %w", err)
	}
	return buf.String(), nil
}

// Sleep waits for d or until ctx is done
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
