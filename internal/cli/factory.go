package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/nfa"
	"github.com/aretw0/nfa/pkg/adapters/memory"
	"github.com/aretw0/nfa/pkg/adapters/redis"
	"github.com/aretw0/nfa/pkg/domain"
	"github.com/aretw0/nfa/pkg/ports"
	"github.com/aretw0/nfa/pkg/schema"
)

// Config selects the definition file and how the automaton is observed.
type Config struct {
	File   string
	Logger *slog.Logger
	Hooks  domain.Hooks
}

// LoadAutomaton opens and compiles the definition named by cfg.File.
func LoadAutomaton(cfg Config) (*nfa.NFA, error) {
	opts := []nfa.Option{nfa.WithHooks(cfg.Hooks)}
	if cfg.Logger != nil {
		opts = append(opts, nfa.WithLogger(cfg.Logger))
	}

	n, err := schema.Open(cfg.File, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load automaton: %w", err)
	}
	if cfg.Logger != nil {
		cfg.Logger.Debug("automaton loaded", "file", cfg.File, "name", n.Name(), "states", n.Len())
	}
	return n, nil
}

// CacheConfig selects the verdict cache backend.
type CacheConfig struct {
	RedisAddr string // Empty selects the in-memory cache
	Prefix    string
	TTL       time.Duration
}

// NewCache builds the configured cache. A Redis cache is pinged and purged,
// since its keys only name revisions and a previous process may have left
// verdicts for a different definition under the same prefix. The returned
// close function is never nil.
func NewCache(ctx context.Context, cfg CacheConfig, logger *slog.Logger) (ports.ResultCache, func() error, error) {
	if cfg.RedisAddr == "" {
		return memory.NewCache(), func() error { return nil }, nil
	}

	cache := redis.New(cfg.RedisAddr, "", 0, redis.WithPrefix(cfg.Prefix), redis.WithTTL(cfg.TTL))
	if err := cache.Ping(ctx); err != nil {
		_ = cache.Close()
		return nil, nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.RedisAddr, err)
	}
	if err := cache.Purge(ctx); err != nil {
		_ = cache.Close()
		return nil, nil, fmt.Errorf("failed to reset redis cache: %w", err)
	}
	logger.Info("using redis cache", "addr", cfg.RedisAddr, "prefix", cfg.Prefix, "ttl", cfg.TTL)
	return cache, cache.Close, nil
}
