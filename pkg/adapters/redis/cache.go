package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/aretw0/nfa/pkg/domain"
)

const defaultPrefix = "nfa:verdict:"

// Cache implements ports.ResultCache using Redis.
//
// Every key written is also recorded in a sorted-set index scored by its
// expiry, so Purge can drop this cache's entries without a keyspace scan.
type Cache struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Cache)

// WithTTL sets the expiration for cached verdicts.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		c.ttl = ttl
	}
}

// WithPrefix sets the key prefix, letting several automata share one server.
func WithPrefix(prefix string) Option {
	return func(c *Cache) {
		c.prefix = prefix
	}
}

// New creates a new Redis cache with options.
func New(address, password string, db int, opts ...Option) *Cache {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis cache from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Cache {
	c := &Cache{
		client: client,
		prefix: defaultPrefix,
		ttl:    0, // No expiration by default
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Cache) key(key string) string {
	return c.prefix + key
}

func (c *Cache) indexKey() string {
	return c.prefix + "index"
}

// Get retrieves a verdict from Redis.
func (c *Cache) Get(ctx context.Context, key string) (domain.Verdict, bool, error) {
	val, err := c.client.Get(ctx, c.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return domain.Verdict{}, false, nil
		}
		return domain.Verdict{}, false, fmt.Errorf("failed to get from redis: %w", err)
	}

	var verdict domain.Verdict
	if err := json.Unmarshal(val, &verdict); err != nil {
		return domain.Verdict{}, false, fmt.Errorf("failed to unmarshal verdict: %w", err)
	}
	return verdict, true, nil
}

// Set stores a verdict in Redis.
func (c *Cache) Set(ctx context.Context, key string, verdict domain.Verdict) error {
	data, err := json.Marshal(verdict)
	if err != nil {
		return fmt.Errorf("failed to marshal verdict: %w", err)
	}

	pipe := c.client.Pipeline()

	// 1. Save JSON with TTL (0 means no expiration)
	pipe.Set(ctx, c.key(key), data, c.ttl)

	// 2. Record in the index, scored by expiry
	score := float64(time.Now().Add(c.ttl).Unix())
	if c.ttl == 0 {
		score = 4102444800 // 2100-01-01
	}
	pipe.ZAdd(ctx, c.indexKey(), backend.Z{
		Score:  score,
		Member: c.key(key),
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// Purge removes every verdict recorded in the index, then the index itself.
func (c *Cache) Purge(ctx context.Context) error {
	keys, err := c.client.ZRange(ctx, c.indexKey(), 0, -1).Result()
	if err != nil {
		return fmt.Errorf("failed to read cache index: %w", err)
	}

	pipe := c.client.Pipeline()
	if len(keys) > 0 {
		pipe.Del(ctx, keys...)
	}
	pipe.Del(ctx, c.indexKey())

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to purge redis cache: %w", err)
	}
	return nil
}

// Prune drops index members whose entries have already expired.
func (c *Cache) Prune(ctx context.Context) error {
	now := float64(time.Now().Unix())
	err := c.client.ZRemRangeByScore(ctx, c.indexKey(), "-inf", fmt.Sprintf("%f", now)).Err()
	if err != nil {
		return fmt.Errorf("failed to prune cache index: %w", err)
	}
	return nil
}

// Ping checks connectivity.
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the redis client.
func (c *Cache) Close() error {
	return c.client.Close()
}
