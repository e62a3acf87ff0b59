package kvstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/midnightshuttle/storefront-core/pkg/config"
	"github.com/redis/go-redis/v9"
)

const keyNamespace = "shuttle"

type redisCmdable interface {
	Ping(context.Context) *redis.StatusCmd
	Get(context.Context, string) *redis.StringCmd
	Set(context.Context, string, any, time.Duration) *redis.StatusCmd
	Del(context.Context, ...string) *redis.IntCmd
	Keys(context.Context, string) *redis.StringSliceCmd
}

// RedisBackend stores values in Redis under a shared namespace. It carries
// the cart snapshot for kiosk deployments where several devices share one
// ordering counter.
type RedisBackend struct {
	store redisCmdable
	raw   *redis.Client
}

// NewRedisBackend bootstraps a Redis connection and verifies connectivity.
func NewRedisBackend(ctx context.Context, cfg config.RedisConfig) (*RedisBackend, error) {
	opts, err := optionsFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	raw := redis.NewClient(opts)
	if err := raw.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &RedisBackend{store: raw, raw: raw}, nil
}

func optionsFromConfig(cfg config.RedisConfig) (*redis.Options, error) {
	if cfg.URL == "" && cfg.Address == "" {
		return nil, errors.New("redis url or address is required")
	}
	var opts *redis.Options
	if cfg.URL != "" {
		parsed, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("parsing redis url: %w", err)
		}
		opts = parsed
	} else {
		opts = &redis.Options{
			Addr:     cfg.Address,
			Password: cfg.Password,
			DB:       cfg.DB,
		}
	}
	if opts.PoolSize == 0 {
		opts.PoolSize = cfg.PoolSize
	}
	if opts.MinIdleConns == 0 {
		opts.MinIdleConns = cfg.MinIdleConns
	}
	if opts.DialTimeout == 0 {
		opts.DialTimeout = cfg.DialTimeout
	}
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = cfg.ReadTimeout
	}
	if opts.WriteTimeout == 0 {
		opts.WriteTimeout = cfg.WriteTimeout
	}
	return opts, nil
}

func (r *RedisBackend) Get(ctx context.Context, key string) ([]byte, error) {
	raw, err := r.store.Get(ctx, r.buildKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrKeyNotFound
	}
	return raw, err
}

func (r *RedisBackend) Set(ctx context.Context, key string, value []byte) error {
	return r.store.Set(ctx, r.buildKey(key), value, 0).Err()
}

func (r *RedisBackend) Remove(ctx context.Context, key string) error {
	return r.store.Del(ctx, r.buildKey(key)).Err()
}

func (r *RedisBackend) Clear(ctx context.Context) error {
	keys, err := r.store.Keys(ctx, r.buildKey("*")).Result()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return r.store.Del(ctx, keys...).Err()
}

// Ping verifies the connection.
func (r *RedisBackend) Ping(ctx context.Context) error {
	return r.store.Ping(ctx).Err()
}

func (r *RedisBackend) Close() error {
	if r.raw == nil {
		return nil
	}
	return r.raw.Close()
}

func (r *RedisBackend) buildKey(parts ...string) string {
	return strings.Join(append([]string{keyNamespace, "storefront"}, parts...), ":")
}
