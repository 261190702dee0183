package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRedis creates a miniredis server and a RedisCache pointing to it
func setupTestRedis(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisCache(client, time.Minute), mr
}

type sample struct {
	Name string `json:"name"`
}

func TestRedisCache_SetGet(t *testing.T) {
	cache, mr := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k", sample{Name: "x"}))
	assert.True(t, mr.Exists("k"))

	ttl := mr.TTL("k")
	assert.GreaterOrEqual(t, ttl, time.Minute)
	assert.Less(t, ttl, time.Minute+time.Minute/5)

	var got sample
	require.NoError(t, cache.Get(ctx, "k", &got))
	assert.Equal(t, "x", got.Name)
}

func TestRedisCache_Miss(t *testing.T) {
	cache, _ := setupTestRedis(t)
	var got sample
	assert.ErrorIs(t, cache.Get(context.Background(), "missing", &got), ErrCacheMiss)
}

func TestRedisCache_InvalidJSON(t *testing.T) {
	cache, mr := setupTestRedis(t)
	require.NoError(t, mr.Set("k", "{not json"))

	var got sample
	err := cache.Get(context.Background(), "k", &got)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCacheMiss)
}

func TestRedisCache_Delete(t *testing.T) {
	cache, mr := setupTestRedis(t)
	require.NoError(t, mr.Set("k", `{"name":"x"}`))

	require.NoError(t, cache.Delete(context.Background(), "k"))
	assert.False(t, mr.Exists("k"))
}

func TestNewRedisCache_DefaultTTL(t *testing.T) {
	cache := NewRedisCache(nil, 0)
	assert.Equal(t, DefaultTTL, cache.baseTTL)
}
