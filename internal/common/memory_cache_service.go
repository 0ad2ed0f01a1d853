package common

import (
	"encoding/json"
	"time"

	"github.com/patrickmn/go-cache"
)

// MemoryCacheService is the in-memory cache implementation, used when no
// Redis instance is configured. Values are stored JSON-encoded so the
// backends are interchangeable.
type MemoryCacheService struct {
	cache *cache.Cache
}

// Ensure MemoryCacheService implements CacheInterface
var _ CacheInterface = (*MemoryCacheService)(nil)

func NewMemoryCacheService(defaultExpirationSeconds, cleanUpIntervalSeconds int) *MemoryCacheService {
	defaultExpiration := time.Duration(defaultExpirationSeconds) * time.Second
	cleanUpInterval := time.Duration(cleanUpIntervalSeconds) * time.Second
	c := cache.New(defaultExpiration, cleanUpInterval)
	return &MemoryCacheService{cache: c}
}

func (cs *MemoryCacheService) Set(key string, value interface{}, duration time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	cs.cache.Set(key, data, duration)
}

func (cs *MemoryCacheService) Get(key string, dest interface{}) bool {
	val, found := cs.cache.Get(key)
	if !found {
		return false
	}
	data, ok := val.([]byte)
	if !ok {
		return false
	}
	return json.Unmarshal(data, dest) == nil
}

func (cs *MemoryCacheService) Delete(key string) {
	cs.cache.Delete(key)
}

// Close closes the cache (no-op for in-memory cache)
func (cs *MemoryCacheService) Close() error {
	return nil
}
