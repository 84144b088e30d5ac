package memory

import (
	"context"
	"sync"

	"github.com/aretw0/nfa/pkg/domain"
)

// Cache implements ports.ResultCache in memory.
// Safe for concurrent use.
type Cache struct {
	data     map[string]domain.Verdict
	order    []string
	capacity int
	mu       sync.RWMutex
}

// Option configures a Cache.
type Option func(*Cache)

// WithCapacity bounds the number of entries. When full, the oldest entry is
// evicted. Zero means unbounded.
func WithCapacity(n int) Option {
	return func(c *Cache) {
		c.capacity = n
	}
}

// NewCache creates a new in-memory cache.
func NewCache(opts ...Option) *Cache {
	c := &Cache{
		data: make(map[string]domain.Verdict),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get retrieves a verdict from memory.
func (c *Cache) Get(ctx context.Context, key string) (domain.Verdict, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v, ok := c.data[key]
	return v, ok, nil
}

// Set stores a verdict, evicting the oldest entry if the cache is full.
func (c *Cache) Set(ctx context.Context, key string, verdict domain.Verdict) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.data[key]; !exists {
		if c.capacity > 0 && len(c.order) >= c.capacity {
			oldest := c.order[0]
			c.order = c.order[1:]
			delete(c.data, oldest)
		}
		c.order = append(c.order, key)
	}
	c.data[key] = verdict
	return nil
}

// Purge drops every entry.
func (c *Cache) Purge(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.data = make(map[string]domain.Verdict)
	c.order = nil
	return nil
}

// Len returns the number of cached verdicts.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}
