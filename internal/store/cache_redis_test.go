package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/fit-sync/internal/config"
)

// setupTestBinCache creates a miniredis-backed RedisBinCache
func setupTestBinCache(t *testing.T, ttl time.Duration) (*RedisBinCache, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})

	return NewRedisBinCache(client, ttl), mr
}

func TestRedisBinCache_SetGet(t *testing.T) {
	cache, mr := setupTestBinCache(t, time.Minute)
	ctx := context.Background()
	bin := sampleBin()

	require.NoError(t, cache.Set(ctx, bin))
	assert.True(t, mr.Exists(binKeyPrefix+bin.ID))
	assert.Equal(t, time.Minute, mr.TTL(binKeyPrefix+bin.ID))

	got, err := cache.Get(ctx, bin.ID)
	require.NoError(t, err)
	assert.Equal(t, bin.ID, got.ID)
	assert.Equal(t, bin.Owner, got.Owner)
	assert.True(t, got.Private)
	assert.JSONEq(t, string(bin.Record), string(got.Record))
	assert.True(t, bin.UpdatedAt.Equal(got.UpdatedAt))
}

func TestRedisBinCache_Miss(t *testing.T) {
	cache, _ := setupTestBinCache(t, time.Minute)

	_, err := cache.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestRedisBinCache_Expires(t *testing.T) {
	cache, mr := setupTestBinCache(t, time.Second)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, sampleBin()))
	mr.FastForward(2 * time.Second)

	_, err := cache.Get(ctx, sampleBin().ID)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestRedisBinCache_Invalidate(t *testing.T) {
	cache, mr := setupTestBinCache(t, time.Minute)
	ctx := context.Background()
	bin := sampleBin()

	require.NoError(t, cache.Set(ctx, bin))
	require.NoError(t, cache.Invalidate(ctx, bin.ID))
	assert.False(t, mr.Exists(binKeyPrefix+bin.ID))

	// invalidating a missing key is not an error
	assert.NoError(t, cache.Invalidate(ctx, bin.ID))
}

func TestRedisBinCache_CorruptValue(t *testing.T) {
	cache, mr := setupTestBinCache(t, time.Minute)
	require.NoError(t, mr.Set(binKeyPrefix+"bad", "not json"))

	_, err := cache.Get(context.Background(), "bad")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCacheMiss)
}

func TestRedisBinCache_Unavailable(t *testing.T) {
	cache, mr := setupTestBinCache(t, time.Minute)
	mr.Close()

	_, err := cache.Get(context.Background(), "id")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCacheMiss)
	assert.Error(t, cache.Ping(context.Background()))
}

func TestConnectRedisBinCache(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()

	cache, err := ConnectRedisBinCache(context.Background(), config.Cache{RedisAddress: addr, TTL: time.Minute})
	require.NoError(t, err)
	t.Cleanup(func() { cache.Close() })
	assert.NoError(t, cache.Ping(context.Background()))

	// после остановки сервера адрес уже недоступен
	mr.Close()
	_, err = ConnectRedisBinCache(context.Background(), config.Cache{RedisAddress: addr})
	assert.Error(t, err)
}

func TestCachedBin_JSON(t *testing.T) {
	raw, err := json.Marshal(cachedBin{ID: "x", Record: json.RawMessage(`[1,2]`)})
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"record":[1,2]`)
}
