package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/annel0/blockreg/internal/logging"
	"github.com/go-redis/redis/v8"
)

// RedisCache реализует CacheRepo поверх Redis.
// Позволяет нескольким экземплярам сервиса делить результаты нечёткого поиска.
type RedisCache struct {
	client *redis.Client
	config CacheConfig
	stats  hitCounter
}

// NewRedisCache подключается к Redis и проверяет соединение
func NewRedisCache(cfg CacheConfig) (*RedisCache, error) {
	cfg = cfg.withDefaults()

	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisURL,
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logging.Info("Redis cache initialized: %s (prefix %s)", cfg.RedisURL, cfg.KeyPrefix)
	return newRedisCacheWithClient(rdb, cfg), nil
}

func newRedisCacheWithClient(client *redis.Client, cfg CacheConfig) *RedisCache {
	return &RedisCache{client: client, config: cfg.withDefaults()}
}

func (r *RedisCache) key(key string) string {
	return r.config.KeyPrefix + key
}

// Get получает значение по ключу из Redis
func (r *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, ErrInvalidKey
	}

	val, err := r.client.Get(ctx, r.key(key)).Bytes()
	if err == nil {
		r.stats.hit()
		return val, nil
	}

	r.stats.miss()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	logging.Error("Redis Get error for key %s: %v", key, err)
	return nil, fmt.Errorf("redis get error: %w", err)
}

// Set сохраняет значение в Redis
func (r *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return ErrInvalidKey
	}
	if err := r.client.Set(ctx, r.key(key), value, r.config.ttlFor(ttl)).Err(); err != nil {
		logging.Error("Redis Set error for key %s: %v", key, err)
		return fmt.Errorf("redis set error: %w", err)
	}
	return nil
}

// Delete удаляет ключ из Redis
func (r *RedisCache) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		return fmt.Errorf("redis delete error: %w", err)
	}
	return nil
}

// Close закрывает соединение с Redis
func (r *RedisCache) Close() error {
	if err := r.client.Close(); err != nil {
		logging.Error("Error closing Redis connection: %v", err)
		return err
	}
	logging.Info("Redis cache closed")
	return nil
}

// GetMetrics возвращает метрики; число ключей Redis не запрашивается
func (r *RedisCache) GetMetrics() *CacheMetrics {
	return r.stats.snapshot(-1)
}
