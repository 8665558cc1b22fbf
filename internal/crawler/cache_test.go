package crawler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCachedFetcher(t *testing.T) {
	next := NewMockFetcher()
	next.pages["https://ai-bot.cn/"] = "<html>home</html>"
	mockCache := NewMockCacheService()
	fetcher := NewCachedFetcher(next, mockCache, time.Minute, nil)

	body, err := fetcher.Fetch(context.Background(), "https://ai-bot.cn/")
	assert.NoError(t, err)
	assert.Equal(t, "<html>home</html>", body)

	body, err = fetcher.Fetch(context.Background(), "https://ai-bot.cn/")
	assert.NoError(t, err)
	assert.Equal(t, "<html>home</html>", body)

	assert.Len(t, next.requests, 1, "second fetch must be served from cache")
	assert.Equal(t, 1, mockCache.sets)
}

func TestCachedFetcherDoesNotCacheFailures(t *testing.T) {
	next := NewMockFetcher()
	next.failures["https://ai-bot.cn/ai-chat/"] = errors.New("timeout")
	mockCache := NewMockCacheService()
	fetcher := NewCachedFetcher(next, mockCache, time.Minute, nil)

	_, err := fetcher.Fetch(context.Background(), "https://ai-bot.cn/ai-chat/")
	assert.Error(t, err)
	_, err = fetcher.Fetch(context.Background(), "https://ai-bot.cn/ai-chat/")
	assert.Error(t, err)

	assert.Len(t, next.requests, 2)
	assert.Equal(t, 0, mockCache.sets)
}

func TestCachedFetcherIgnoresSetErrors(t *testing.T) {
	next := NewMockFetcher()
	next.pages["https://ai-bot.cn/"] = "<html>home</html>"
	mockCache := NewMockCacheService()
	mockCache.setErr = errors.New("item too large")
	fetcher := NewCachedFetcher(next, mockCache, time.Minute, nil)

	body, err := fetcher.Fetch(context.Background(), "https://ai-bot.cn/")
	assert.NoError(t, err)
	assert.Equal(t, "<html>home</html>", body)
}

func TestPageCacheKey(t *testing.T) {
	key := pageCacheKey("https://ai-bot.cn/ai-chat/?q=a b")
	assert.Equal(t, key, pageCacheKey("https://ai-bot.cn/ai-chat/?q=a b"))
	assert.NotEqual(t, key, pageCacheKey("https://ai-bot.cn/ai-write/"))
	assert.NotContains(t, key, " ")
	assert.Less(t, len(key), 250)
}
