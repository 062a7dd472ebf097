package cache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemoryCache(t *testing.T, cfg CacheConfig) *MemoryCache {
	t.Helper()
	c, err := NewMemoryCache(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestMemoryCacheGetSet(t *testing.T) {
	ctx := context.Background()
	c := newMemoryCache(t, CacheConfig{})

	_, err := c.Get(ctx, "stone")
	assert.True(t, IsCacheMiss(err))

	require.NoError(t, c.Set(ctx, "stone", []byte("1"), 0))
	got, err := c.Get(ctx, "stone")
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), got)

	got[0] = '9'
	again, _ := c.Get(ctx, "stone")
	assert.Equal(t, []byte("1"), again, "кеш должен отдавать копию")

	require.NoError(t, c.Delete(ctx, "stone"))
	_, err = c.Get(ctx, "stone")
	assert.ErrorIs(t, err, ErrCacheMiss)

	assert.ErrorIs(t, c.Set(ctx, "", nil, 0), ErrInvalidKey)

	m := c.GetMetrics()
	assert.EqualValues(t, 4, m.TotalRequests)
	assert.EqualValues(t, 2, m.CacheHits)
	assert.InDelta(t, 0.5, m.HitRatio, 1e-9)
}

func TestMemoryCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c := newMemoryCache(t, CacheConfig{DefaultTTL: 50 * time.Millisecond, MaxTTL: 400 * time.Millisecond})

	require.NoError(t, c.Set(ctx, "short", []byte("a"), 0))
	require.NoError(t, c.Set(ctx, "capped", []byte("b"), time.Hour))

	time.Sleep(150 * time.Millisecond)
	_, err := c.Get(ctx, "short")
	assert.ErrorIs(t, err, ErrCacheMiss)
	_, err = c.Get(ctx, "capped")
	assert.NoError(t, err)

	assert.Eventually(t, func() bool {
		_, err := c.Get(ctx, "capped")
		return IsCacheMiss(err)
	}, 2*time.Second, 20*time.Millisecond, "TTL ограничивается MaxTTL")
}

func TestMemoryCacheSizeLimit(t *testing.T) {
	ctx := context.Background()
	c := newMemoryCache(t, CacheConfig{MaxEntries: 3})

	for i := 0; i < 10; i++ {
		require.NoError(t, c.Set(ctx, fmt.Sprintf("k%d", i), []byte{byte(i)}, time.Minute))
	}

	present := 0
	for i := 0; i < 10; i++ {
		if _, err := c.Get(ctx, fmt.Sprintf("k%d", i)); err == nil {
			present++
		}
	}
	assert.LessOrEqual(t, present, 3)
	assert.Positive(t, present)
	assert.LessOrEqual(t, c.GetMetrics().TotalKeys, int64(3))
}

func TestNewBackends(t *testing.T) {
	c, err := New(CacheConfig{Backend: "none"})
	require.NoError(t, err)
	assert.Nil(t, c)

	c, err = New(CacheConfig{})
	require.NoError(t, err)
	assert.IsType(t, &MemoryCache{}, c)

	_, err = New(CacheConfig{Backend: "memcached"})
	assert.ErrorIs(t, err, ErrUnknownBackend)
}

func TestRedisCacheUnreachable(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	c := newRedisCacheWithClient(client, CacheConfig{})
	t.Cleanup(func() { _ = c.Close() })

	assert.Equal(t, "blockreg:resolve", c.key("resolve"))

	_, err := c.Get(context.Background(), "stone")
	require.Error(t, err)
	assert.False(t, IsCacheMiss(err), "ошибка соединения не должна считаться промахом")
	assert.EqualValues(t, 1, c.GetMetrics().CacheMisses)

	_, err = c.Get(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidKey)
}
