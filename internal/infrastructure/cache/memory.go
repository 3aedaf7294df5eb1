package cache

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/mealtrack/backend/internal/domain"
)

// cacheItem is one memoized defaults record with expiration
type cacheItem struct {
	defaults   domain.ItemDefaults
	expiration time.Time
}

// DefaultsCache is a thread-safe in-memory cache of derived item
// defaults, keyed by user and trimmed item name. Entries expire after
// a TTL and a user's entries are dropped wholesale whenever that user's
// meal history changes.
type DefaultsCache struct {
	data  map[string]map[string]cacheItem // username -> item -> defaults
	ttl   time.Duration
	mutex sync.RWMutex
}

// NewDefaultsCache creates a defaults cache. A zero TTL falls back to
// five minutes.
func NewDefaultsCache(ttl time.Duration) *DefaultsCache {
	if ttl == 0 {
		ttl = 5 * time.Minute
	}

	cache := &DefaultsCache{
		data: make(map[string]map[string]cacheItem),
		ttl:  ttl,
	}

	// Invalidation keeps the cache correct; the sweep just bounds memory
	// for users who stop logging.
	go cache.cleanupExpired()

	return cache
}

// Get retrieves memoized defaults for a user and item
func (c *DefaultsCache) Get(ctx context.Context, username, item string) (*domain.ItemDefaults, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	items, ok := c.data[username]
	if !ok {
		return nil, domain.ErrCacheMiss
	}
	cached, ok := items[strings.TrimSpace(item)]
	if !ok || time.Now().After(cached.expiration) {
		return nil, domain.ErrCacheMiss
	}

	defaults := cached.defaults
	return &defaults, nil
}

// Set memoizes defaults for a user and item
func (c *DefaultsCache) Set(ctx context.Context, username, item string, defaults domain.ItemDefaults) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	items, ok := c.data[username]
	if !ok {
		items = make(map[string]cacheItem)
		c.data[username] = items
	}
	items[strings.TrimSpace(item)] = cacheItem{
		defaults:   defaults,
		expiration: time.Now().Add(c.ttl),
	}
	return nil
}

// InvalidateUser drops everything cached for a user
func (c *DefaultsCache) InvalidateUser(ctx context.Context, username string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	delete(c.data, username)
	return nil
}

// cleanupExpired removes expired entries periodically
func (c *DefaultsCache) cleanupExpired() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.mutex.Lock()
		now := time.Now()
		for username, items := range c.data {
			for item, cached := range items {
				if now.After(cached.expiration) {
					delete(items, item)
				}
			}
			if len(items) == 0 {
				delete(c.data, username)
			}
		}
		c.mutex.Unlock()
	}
}

// Size returns the number of cached records (for debugging/monitoring)
func (c *DefaultsCache) Size() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	n := 0
	for _, items := range c.data {
		n += len(items)
	}
	return n
}
