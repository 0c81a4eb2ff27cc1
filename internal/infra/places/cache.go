package places

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"time"

	"locgate/config"
	"locgate/internal/domain/entity"

	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// Cache backends accepted in config.PlacesConfig.CacheBackend.
const (
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

const redisKeyPrefix = "locgate:places:"

// Cache stores place results by normalized query.
type Cache interface {
	Get(ctx context.Context, key string) ([]entity.PlaceCandidate, bool, error)
	Set(ctx context.Context, key string, candidates []entity.PlaceCandidate, ttl time.Duration) error
}

// CacheKey normalizes a query: case and whitespace are ignored.
func CacheKey(query, regionHint string) string {
	normalized := strings.ToLower(strings.Join(strings.Fields(query), " "))

	return strings.ToLower(regionHint) + "|" + normalized
}

type memoryEntry struct {
	candidates []entity.PlaceCandidate
	expiresAt  time.Time
}

// MemoryCache is a process-local TTL cache.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	clock   clockwork.Clock
}

// NewMemoryCache creates an empty cache. A nil clock uses real time.
func NewMemoryCache(clock clockwork.Clock) *MemoryCache {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &MemoryCache{entries: make(map[string]memoryEntry), clock: clock}
}

func (c *MemoryCache) Get(_ context.Context, key string) ([]entity.PlaceCandidate, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false, nil
	}
	if !c.clock.Now().Before(entry.expiresAt) {
		delete(c.entries, key)

		return nil, false, nil
	}

	return append([]entity.PlaceCandidate(nil), entry.candidates...), true, nil
}

func (c *MemoryCache) Set(_ context.Context, key string, candidates []entity.PlaceCandidate, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = memoryEntry{
		candidates: append([]entity.PlaceCandidate(nil), candidates...),
		expiresAt:  c.clock.Now().Add(ttl),
	}

	return nil
}

// redisKV is the part of the go-redis client the cache uses.
type redisKV interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

// RedisCache shares place results between processes.
type RedisCache struct {
	client redisKV
}

// NewRedisCache wraps a go-redis client.
func NewRedisCache(client redisKV) *RedisCache {
	return &RedisCache{client: client}
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]entity.PlaceCandidate, bool, error) {
	raw, err := c.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "redis get")
	}

	var candidates []entity.PlaceCandidate
	if err := json.Unmarshal(raw, &candidates); err != nil {
		return nil, false, errors.Wrap(err, "decode cached places")
	}

	return candidates, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, candidates []entity.PlaceCandidate, ttl time.Duration) error {
	raw, err := json.Marshal(candidates)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.Wrap(c.client.Set(ctx, redisKeyPrefix+key, raw, ttl).Err(), "redis set")
}

// NewCache builds the configured cache backend. The returned close function
// releases the Redis connection, if any.
func NewCache(cfg *config.Config, clock clockwork.Clock, logger *slog.Logger) (Cache, func() error, error) {
	backend := CacheMemory
	if cfg.Places != nil && cfg.Places.CacheBackend != "" {
		backend = cfg.Places.CacheBackend
	}

	switch backend {
	case CacheMemory:
		return NewMemoryCache(clock), func() error { return nil }, nil
	case CacheRedis:
		if cfg.Redis == nil || cfg.Redis.URL == "" {
			return nil, nil, errors.New("redis url is required for the redis places cache")
		}
		opt, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			return nil, nil, errors.Wrap(err, "parse redis url")
		}
		client := redis.NewClient(opt)
		logger.Info("Using Redis places cache", slog.String("addr", opt.Addr))

		return NewRedisCache(client), client.Close, nil
	default:
		return nil, nil, errors.Errorf("unknown places cache backend: %s", backend)
	}
}
