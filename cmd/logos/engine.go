package main

import (
	"context"
	"fmt"
	"time"

	"github.com/aretw0/logos"
	"github.com/aretw0/logos/internal/config"
	"github.com/aretw0/logos/pkg/adapters/file"
	"github.com/aretw0/logos/pkg/adapters/memory"
	"github.com/aretw0/logos/pkg/adapters/redis"
	"github.com/aretw0/logos/pkg/domain"
	"github.com/aretw0/logos/pkg/ports"
)

// newStore builds the result cache selected by the config.
// The returned closer is never nil.
func newStore(ctx context.Context, c config.Config) (ports.ResultStore, func() error, error) {
	noop := func() error { return nil }

	switch c.Cache.Backend {
	case config.CacheNone:
		return nil, noop, nil

	case config.CacheMemory:
		return memory.NewStore(memory.WithMaxEntries(c.Cache.MaxEntries)), noop, nil

	case config.CacheFile:
		return file.NewStore(c.Cache.Dir), noop, nil

	case config.CacheRedis:
		store := redis.New(c.Redis.Addr, c.Redis.Password, c.Redis.DB,
			redis.WithPrefix(c.Redis.Prefix),
			redis.WithTTL(c.Cache.TTL),
		)

		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		if err := store.Ping(pingCtx); err != nil {
			_ = store.Close()
			return nil, noop, fmt.Errorf("redis cache at %s: %w", c.Redis.Addr, err)
		}
		return store, store.Close, nil

	default:
		return nil, noop, fmt.Errorf("unknown cache backend %q", c.Cache.Backend)
	}
}

// newEngine wires the store and hooks into a logos Engine.
func newEngine(ctx context.Context, c config.Config, hooks domain.LifecycleHooks) (*logos.Engine, func() error, error) {
	store, closer, err := newStore(ctx, c)
	if err != nil {
		return nil, closer, err
	}

	opts := []logos.Option{
		logos.WithLogger(logger),
		logos.WithLifecycleHooks(hooks),
	}
	if store != nil {
		opts = append(opts, logos.WithStore(store))
	}

	logger.Info("engine ready", "cache", c.Cache.Backend)
	return logos.New(opts...), closer, nil
}
