package crawler

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"time"

	"sjsage522/aitoolscraper/logger"
	"sjsage522/aitoolscraper/services/cache"
)

// CachedFetcher serves pages from a cache and fills it on successful fetches
type CachedFetcher struct {
	next  PageFetcher
	cache cache.CacheService
	ttl   time.Duration
	log   *logger.Logger
}

// NewCachedFetcher wraps next with cacheSvc; entries expire after ttl
func NewCachedFetcher(next PageFetcher, cacheSvc cache.CacheService, ttl time.Duration, log *logger.Logger) *CachedFetcher {
	if log == nil {
		log = logger.Nop()
	}
	return &CachedFetcher{next: next, cache: cacheSvc, ttl: ttl, log: log}
}

// Fetch returns the cached body for url or fetches and stores it.
// Cache failures are logged and never fail the fetch.
func (f *CachedFetcher) Fetch(ctx context.Context, url string) (string, error) {
	key := pageCacheKey(url)

	if cached, err := f.cache.Get(key); err == nil {
		f.log.Debug().Str("url", url).Msg("Page served from cache")
		return string(cached), nil
	}

	body, err := f.next.Fetch(ctx, url)
	if err != nil {
		return "", err
	}

	if err := f.cache.Set(key, []byte(body), f.ttl); err != nil {
		f.log.Warn().Err(err).Str("url", url).Msg("Failed to cache page")
	}
	return body, nil
}

// pageCacheKey keeps keys within memcache's length and charset limits
func pageCacheKey(url string) string {
	sum := sha1.Sum([]byte(url))
	return "aitools:page:" + hex.EncodeToString(sum[:])
}
