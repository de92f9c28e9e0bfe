package cache

import (
	"context"
	"testing"
	"time"

	"shop-admin-api/internal/chart"
	"shop-admin-api/pkg/config"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryChartCacheExpires(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	c := NewMemoryChartCache(func() time.Time { return now })

	_, ok, err := c.Get(ctx, "chart:12")
	require.NoError(t, err)
	assert.False(t, ok)

	buckets := []chart.Bucket{{Month: "Ordibehesht 1403", Value: decimal.NewFromInt(10)}}
	require.NoError(t, c.Set(ctx, "chart:12", buckets, time.Minute))

	got, ok, err := c.Get(ctx, "chart:12")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Ordibehesht 1403", got[0].Month)

	now = now.Add(time.Minute)
	_, ok, _ = c.Get(ctx, "chart:12")
	assert.False(t, ok)
}

func TestNewWithoutRedisUsesMemory(t *testing.T) {
	_, isMemory := New(config.RedisConfig{}).(*MemoryChartCache)
	assert.True(t, isMemory)

	_, isRedis := New(config.RedisConfig{Addr: "redis://localhost:6379"}).(*RedisChartCache)
	assert.True(t, isRedis)
}
