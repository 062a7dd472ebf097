package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"
)

// CacheRepo определяет интерфейс кеша результатов поиска блоков.
//
// Использование:
//
//	c, err := cache.New(cfg)
//	data, err := c.Get(ctx, "key")
//	err = c.Set(ctx, "key", data, 30*time.Second)
type CacheRepo interface {
	// Get получает значение по ключу.
	// Возвращает ErrCacheMiss если ключ не найден или истёк.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение с указанным TTL.
	// TTL = 0 означает DefaultTTL из конфигурации.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет ключ из кеша.
	Delete(ctx context.Context, key string) error

	// Close освобождает ресурсы.
	Close() error

	// GetMetrics возвращает снимок метрик кеша.
	GetMetrics() *CacheMetrics
}

// CacheMetrics содержит метрики кеша.
type CacheMetrics struct {
	TotalRequests int64     `json:"total_requests"`
	CacheHits     int64     `json:"cache_hits"`
	CacheMisses   int64     `json:"cache_misses"`
	HitRatio      float64   `json:"hit_ratio"`
	TotalKeys     int64     `json:"total_keys"`
	LastUpdate    time.Time `json:"last_update"`
}

// Backend: реализация кеша
const (
	BackendNone   = "none"
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// CacheConfig содержит конфигурацию кеша.
type CacheConfig struct {
	// Backend: none, memory или redis (по умолчанию memory)
	Backend string `yaml:"backend"`

	// Redis конфигурация
	RedisURL      string `yaml:"redis_url"`
	RedisPassword string `yaml:"redis_password"`
	RedisDB       int    `yaml:"redis_db"`
	KeyPrefix     string `yaml:"key_prefix"`

	// TTL настройки
	DefaultTTL time.Duration `yaml:"default_ttl"`
	MaxTTL     time.Duration `yaml:"max_ttl"`

	// MaxEntries ограничивает размер кеша в памяти
	MaxEntries int `yaml:"max_entries"`
}

func (c *CacheConfig) withDefaults() CacheConfig {
	out := *c
	if out.Backend == "" {
		out.Backend = BackendMemory
	}
	out.Backend = strings.ToLower(out.Backend)
	if out.DefaultTTL == 0 {
		out.DefaultTTL = 10 * time.Minute
	}
	if out.MaxTTL == 0 {
		out.MaxTTL = time.Hour
	}
	if out.MaxEntries == 0 {
		out.MaxEntries = 4096
	}
	if out.KeyPrefix == "" {
		out.KeyPrefix = "blockreg:"
	}
	return out
}

// ttlFor нормализует TTL запроса
func (c *CacheConfig) ttlFor(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		ttl = c.DefaultTTL
	}
	if ttl > c.MaxTTL {
		ttl = c.MaxTTL
	}
	return ttl
}

// Ошибки кеша
var (
	ErrCacheMiss      = errors.New("cache miss")
	ErrInvalidKey     = errors.New("invalid key")
	ErrUnknownBackend = errors.New("unknown cache backend")
)

// IsCacheMiss проверяет, является ли ошибка промахом кеша.
func IsCacheMiss(err error) bool {
	return errors.Is(err, ErrCacheMiss)
}

// New создаёт кеш по конфигурации. Для backend=none возвращает nil, nil.
func New(cfg CacheConfig) (CacheRepo, error) {
	cfg = cfg.withDefaults()
	switch cfg.Backend {
	case BackendNone:
		return nil, nil
	case BackendMemory:
		mc, err := NewMemoryCache(cfg)
		if err != nil {
			return nil, err
		}
		return mc, nil
	case BackendRedis:
		rc, err := NewRedisCache(cfg)
		if err != nil {
			return nil, err
		}
		return rc, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}

// hitCounter: общий учёт попаданий для реализаций
type hitCounter struct {
	requests atomic.Int64
	hits     atomic.Int64
	misses   atomic.Int64
}

func (h *hitCounter) hit() {
	h.requests.Add(1)
	h.hits.Add(1)
}

func (h *hitCounter) miss() {
	h.requests.Add(1)
	h.misses.Add(1)
}

func (h *hitCounter) snapshot(keys int64) *CacheMetrics {
	m := &CacheMetrics{
		TotalRequests: h.requests.Load(),
		CacheHits:     h.hits.Load(),
		CacheMisses:   h.misses.Load(),
		TotalKeys:     keys,
		LastUpdate:    time.Now(),
	}
	if total := m.CacheHits + m.CacheMisses; total > 0 {
		m.HitRatio = float64(m.CacheHits) / float64(total)
	}
	return m
}
