package places

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"locgate/config"
	"locgate/internal/domain/entity"

	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cachedTura = []entity.PlaceCandidate{{Name: "Tura Market", Latitude: 25.514, Longitude: 90.21}}

func TestCacheKey(t *testing.T) {
	assert.Equal(t, "in|tura market", CacheKey("  Tura   Market ", "IN"))
	assert.Equal(t, "|tura", CacheKey("tura", ""))
}

func TestMemoryCache_TTL(t *testing.T) {
	ctx := context.Background()
	clock := clockwork.NewFakeClock()
	cache := NewMemoryCache(clock)

	require.NoError(t, cache.Set(ctx, "k", cachedTura, time.Minute))

	got, ok, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, cachedTura, got)

	clock.Advance(time.Minute)
	_, ok, err = cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

type fakeRedis struct {
	values map[string]string
	ttls   map[string]time.Duration
	getErr error
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	value, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}

	return redis.NewStringResult(value, nil)
}

func (f *fakeRedis) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	f.values[key] = string(value.([]byte))
	f.ttls[key] = expiration

	return redis.NewStatusResult("OK", nil)
}

func TestRedisCache(t *testing.T) {
	ctx := context.Background()
	fake := &fakeRedis{values: map[string]string{}, ttls: map[string]time.Duration{}}
	cache := NewRedisCache(fake)

	_, ok, err := cache.Get(ctx, "in|tura")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.Set(ctx, "in|tura", cachedTura, time.Hour))
	assert.Equal(t, time.Hour, fake.ttls[redisKeyPrefix+"in|tura"])

	var stored []entity.PlaceCandidate
	require.NoError(t, json.Unmarshal([]byte(fake.values[redisKeyPrefix+"in|tura"]), &stored))
	assert.Equal(t, cachedTura, stored)

	got, ok, err := cache.Get(ctx, "in|tura")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, cachedTura, got)

	fake.getErr = errors.New("connection refused")
	_, _, err = cache.Get(ctx, "in|tura")
	require.Error(t, err)
}

func TestNewCache(t *testing.T) {
	logger := newDiscardLogger()

	cache, closeFn, err := NewCache(&config.Config{}, nil, logger)
	require.NoError(t, err)
	assert.IsType(t, &MemoryCache{}, cache)
	require.NoError(t, closeFn())

	_, _, err = NewCache(&config.Config{Places: &config.PlacesConfig{CacheBackend: CacheRedis}}, nil, logger)
	require.Error(t, err)

	cache, closeFn, err = NewCache(&config.Config{
		Places: &config.PlacesConfig{CacheBackend: CacheRedis},
		Redis:  &config.RedisConfig{URL: "redis://localhost:6379/0"},
	}, nil, logger)
	require.NoError(t, err)
	assert.IsType(t, &RedisCache{}, cache)
	require.NoError(t, closeFn())

	_, _, err = NewCache(&config.Config{Places: &config.PlacesConfig{CacheBackend: "memcached"}}, nil, logger)
	require.Error(t, err)
}
