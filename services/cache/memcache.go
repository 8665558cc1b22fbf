package cache

import (
	"time"

	"sjsage522/aitoolscraper/pkg/errors"

	"github.com/bradfitz/gomemcache/memcache"
)

// maxItemSize is the default memcached slab limit; larger pages are not cached
const maxItemSize = 1024 * 1024

// MemcacheService implements CacheService using memcache
type MemcacheService struct {
	addr   string
	client *memcache.Client
}

// NewMemcacheService creates a memcache-backed cache for serverAddr
func NewMemcacheService(serverAddr string) *MemcacheService {
	client := memcache.New(serverAddr)
	client.Timeout = 500 * time.Millisecond
	return &MemcacheService{
		addr:   serverAddr,
		client: client,
	}
}

// Ping checks that the server answers
func (m *MemcacheService) Ping() error {
	if err := m.client.Ping(); err != nil {
		return errors.NewCache(m.addr, "memcache ping failed", err)
	}
	return nil
}

// Get retrieves a value from memcache
func (m *MemcacheService) Get(key string) ([]byte, error) {
	item, err := m.client.Get(key)
	if err != nil {
		return nil, err
	}
	return item.Value, nil
}

// Set stores a value in memcache with an expiration time
func (m *MemcacheService) Set(key string, value []byte, expiration time.Duration) error {
	if len(value) > maxItemSize {
		return errors.NewCache(key, "value exceeds memcache item size", nil)
	}
	return m.client.Set(&memcache.Item{
		Key:        key,
		Value:      value,
		Expiration: int32(expiration.Seconds()),
	})
}

