package fiberstore

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedis(t *testing.T) (*miniredis.Miniredis, *Redis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, NewRedis(client, "roadwatch:test")
}

func TestRedisSetGet(t *testing.T) {
	mr, store := setupRedis(t)

	require.NoError(t, store.Set("127.0.0.1", []byte("5"), 0))
	val, err := store.Get("127.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, []byte("5"), val)
	assert.True(t, mr.Exists("roadwatch:test:127.0.0.1"))
}

func TestRedisGetMissing(t *testing.T) {
	_, store := setupRedis(t)

	val, err := store.Get("nope")
	assert.NoError(t, err)
	assert.Nil(t, val)
}

func TestRedisSetHonoursExpiration(t *testing.T) {
	mr, store := setupRedis(t)

	require.NoError(t, store.Set("k", []byte("v"), time.Minute))
	assert.Equal(t, time.Minute, mr.TTL("roadwatch:test:k"))

	mr.FastForward(2 * time.Minute)
	val, err := store.Get("k")
	assert.NoError(t, err)
	assert.Nil(t, val)
}

func TestRedisDeleteAndReset(t *testing.T) {
	mr, store := setupRedis(t)
	require.NoError(t, mr.Set("unrelated", "keep"))

	require.NoError(t, store.Set("a", []byte("1"), 0))
	require.NoError(t, store.Set("b", []byte("2"), 0))

	require.NoError(t, store.Delete("a"))
	assert.False(t, mr.Exists("roadwatch:test:a"))

	require.NoError(t, store.Reset())
	assert.False(t, mr.Exists("roadwatch:test:b"))
	assert.True(t, mr.Exists("unrelated"))
}
