// Package cache stores computed revenue charts.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"shop-admin-api/internal/chart"
	"shop-admin-api/pkg/config"

	"github.com/redis/go-redis/v9"
)

// ChartCache keeps chart buckets for a while. A miss returns ok == false and no error.
type ChartCache interface {
	Get(ctx context.Context, key string) (buckets []chart.Bucket, ok bool, err error)
	Set(ctx context.Context, key string, buckets []chart.Bucket, ttl time.Duration) error
}

// New returns a Redis backed cache, or an in-process one when no address is configured
func New(cfg config.RedisConfig) ChartCache {
	if cfg.Addr == "" {
		return NewMemoryChartCache(time.Now)
	}
	addr := strings.TrimPrefix(strings.TrimPrefix(cfg.Addr, "redis://"), "rediss://")
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return NewRedisChartCache(client)
}

type RedisChartCache struct {
	client *redis.Client
}

func NewRedisChartCache(client *redis.Client) *RedisChartCache {
	return &RedisChartCache{client: client}
}

func (r *RedisChartCache) key(k string) string {
	return "shop-admin:" + k
}

func (r *RedisChartCache) Get(ctx context.Context, key string) ([]chart.Bucket, bool, error) {
	data, err := r.client.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %s: %w", key, err)
	}
	var buckets []chart.Bucket
	if err := json.Unmarshal(data, &buckets); err != nil {
		return nil, false, fmt.Errorf("decode cached chart: %w", err)
	}
	return buckets, true, nil
}

func (r *RedisChartCache) Set(ctx context.Context, key string, buckets []chart.Bucket, ttl time.Duration) error {
	data, err := json.Marshal(buckets)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.key(key), data, ttl).Err()
}

// Ping checks connectivity
func (r *RedisChartCache) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisChartCache) Close() error {
	return r.client.Close()
}

// MemoryChartCache is the single process fallback
type MemoryChartCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

type memoryEntry struct {
	buckets []chart.Bucket
	expires time.Time
}

func NewMemoryChartCache(now func() time.Time) *MemoryChartCache {
	return &MemoryChartCache{entries: map[string]memoryEntry{}, now: now}
}

func (m *MemoryChartCache) Get(ctx context.Context, key string) ([]chart.Bucket, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[key]
	if !ok || !m.now().Before(e.expires) {
		delete(m.entries, key)
		return nil, false, nil
	}
	return append([]chart.Bucket(nil), e.buckets...), true, nil
}

func (m *MemoryChartCache) Set(ctx context.Context, key string, buckets []chart.Bucket, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = memoryEntry{buckets: append([]chart.Bucket(nil), buckets...), expires: m.now().Add(ttl)}
	return nil
}
