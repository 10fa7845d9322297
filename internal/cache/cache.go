package cache

import (
	"context"
	"fmt"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

// Cache хранилище сериализованных карточек инцидентов.
// Поколение ключа растёт при каждом изменении данных; запись, сделанная
// при старом поколении, считается устаревшей.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Generation(ctx context.Context, key string) (int64, error)
	Bump(ctx context.Context, key string) error
}

// generationTTL срок жизни счётчика поколения в redis; пропавший счётчик читается как 0
const generationTTL = 24 * time.Hour

func generationKey(key string) string {
	return key + ":gen"
}

// New выбирает реализацию по типу: redis или local
func New(cacheType string, client *redis.Client, defaultTTL time.Duration) (Cache, error) {
	switch strings.ToLower(cacheType) {
	case "redis":
		if client == nil {
			return nil, fmt.Errorf("redis cache requires a client")
		}
		return NewRedisCache(client), nil
	case "local":
		return NewLocalCache(defaultTTL, 2*defaultTTL), nil
	default:
		return nil, fmt.Errorf("unsupported cache type: %s", cacheType)
	}
}

// IncidentKey ключ карточки инцидента
func IncidentKey(id int64) string {
	return fmt.Sprintf("incident:%d", id)
}

type redisCache struct {
	client *redis.Client
}

func NewRedisCache(client *redis.Client) Cache {
	return &redisCache{client: client}
}

func (c *redisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get %s from cache: %w", key, err)
	}
	return val, true, nil
}

func (c *redisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set %s in cache: %w", key, err)
	}
	return nil
}

func (c *redisCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to invalidate cache: %w", err)
	}
	return nil
}

func (c *redisCache) Generation(ctx context.Context, key string) (int64, error) {
	gen, err := c.client.Get(ctx, generationKey(key)).Int64()
	if err != nil {
		if err == redis.Nil {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read generation of %s: %w", key, err)
	}
	return gen, nil
}

func (c *redisCache) Bump(ctx context.Context, key string) error {
	gk := generationKey(key)
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, gk)
		pipe.Expire(ctx, gk, generationTTL)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to bump generation of %s: %w", key, err)
	}
	return nil
}

// localCache кэш в памяти процесса на go-cache
type localCache struct {
	c *gocache.Cache
}

func NewLocalCache(defaultTTL, cleanupInterval time.Duration) Cache {
	return &localCache{c: gocache.New(defaultTTL, cleanupInterval)}
}

func (l *localCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := l.c.Get(key)
	if !ok {
		return nil, false, nil
	}
	b, ok := v.([]byte)
	return b, ok, nil
}

func (l *localCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	// копия, чтобы вызывающий не мог изменить закэшированные байты
	l.c.Set(key, append([]byte(nil), value...), ttl)
	return nil
}

func (l *localCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		l.c.Delete(k)
	}
	return nil
}

func (l *localCache) Generation(_ context.Context, key string) (int64, error) {
	v, ok := l.c.Get(generationKey(key))
	if !ok {
		return 0, nil
	}
	gen, _ := v.(int64)
	return gen, nil
}

func (l *localCache) Bump(_ context.Context, key string) error {
	gk := generationKey(key)
	// Add не перезапишет существующий счётчик
	_ = l.c.Add(gk, int64(0), gocache.NoExpiration)
	if _, err := l.c.IncrementInt64(gk, 1); err != nil {
		return fmt.Errorf("failed to bump generation of %s: %w", key, err)
	}
	return nil
}
