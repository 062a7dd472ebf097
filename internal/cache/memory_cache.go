package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto"
)

// MemoryCache: кеш в памяти процесса поверх ristretto.
// Каждая запись стоит 1, поэтому MaxCost равен MaxEntries; при переполнении
// ristretto сам выбирает, что вытеснить и принимать ли новую запись.
type MemoryCache struct {
	store  *ristretto.Cache
	config CacheConfig
	stats  hitCounter
}

// NewMemoryCache создаёт кеш в памяти
func NewMemoryCache(cfg CacheConfig) (*MemoryCache, error) {
	cfg = cfg.withDefaults()

	store, err := ristretto.NewCache(&ristretto.Config{
		NumCounters:        int64(cfg.MaxEntries) * 10,
		MaxCost:            int64(cfg.MaxEntries),
		BufferItems:        64,
		Metrics:            true,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create memory cache: %w", err)
	}
	return &MemoryCache{store: store, config: cfg}, nil
}

func (m *MemoryCache) Get(_ context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, ErrInvalidKey
	}

	v, ok := m.store.Get(key)
	if !ok {
		m.stats.miss()
		return nil, ErrCacheMiss
	}
	m.stats.hit()
	return append([]byte(nil), v.([]byte)...), nil
}

// Set дожидается применения записи, чтобы следующий Get её увидел
func (m *MemoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return ErrInvalidKey
	}

	m.store.SetWithTTL(key, append([]byte(nil), value...), 1, m.config.ttlFor(ttl))
	m.store.Wait()
	return nil
}

func (m *MemoryCache) Delete(_ context.Context, key string) error {
	m.store.Del(key)
	return nil
}

func (m *MemoryCache) Close() error {
	m.store.Close()
	return nil
}

// GetMetrics: число ключей приблизительное, истёкшие записи ristretto
// убирает в фоне
func (m *MemoryCache) GetMetrics() *CacheMetrics {
	keys := int64(m.store.Metrics.KeysAdded()) - int64(m.store.Metrics.KeysEvicted())
	if keys < 0 {
		keys = 0
	}
	return m.stats.snapshot(keys)
}
