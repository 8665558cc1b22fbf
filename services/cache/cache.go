package cache

import (
	"time"
)

// CacheService stores fetched page bodies between runs
type CacheService interface {
	// Get returns the cached value, or an error on a miss
	Get(key string) ([]byte, error)

	// Set stores value for at most expiration
	Set(key string, value []byte, expiration time.Duration) error
}
