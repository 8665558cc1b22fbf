package crawler

import (
	"context"
	"fmt"
	"time"
)

// MockCacheService implements a simple in-memory cache for testing
type MockCacheService struct {
	cache  map[string][]byte
	setErr error
	sets   int
}

func NewMockCacheService() *MockCacheService {
	return &MockCacheService{
		cache: make(map[string][]byte),
	}
}

func (m *MockCacheService) Get(key string) ([]byte, error) {
	if val, ok := m.cache[key]; ok {
		return val, nil
	}
	return nil, &mockError{message: "cache miss"}
}

func (m *MockCacheService) Set(key string, value []byte, expiration time.Duration) error {
	m.sets++
	if m.setErr != nil {
		return m.setErr
	}
	m.cache[key] = value
	return nil
}

type mockError struct {
	message string
}

func (e *mockError) Error() string {
	return e.message
}

// MockFetcher serves canned pages by URL and records every request
type MockFetcher struct {
	pages    map[string]string
	failures map[string]error
	requests []string
}

func NewMockFetcher() *MockFetcher {
	return &MockFetcher{
		pages:    make(map[string]string),
		failures: make(map[string]error),
	}
}

func (m *MockFetcher) Fetch(ctx context.Context, url string) (string, error) {
	m.requests = append(m.requests, url)
	if err, ok := m.failures[url]; ok {
		return "", err
	}
	if body, ok := m.pages[url]; ok {
		return body, nil
	}
	return "", fmt.Errorf("fetch %s unexpected status code: 404", url)
}
