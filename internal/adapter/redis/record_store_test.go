package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sniptaste-popups/internal/core/port"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})
	return mr, client
}

func TestRecordStore_LoadMissing(t *testing.T) {
	_, client := setupTestRedis(t)
	store := NewRecordStore(client)

	_, err := store.Load(context.Background(), "sniptaste_popups")
	assert.ErrorIs(t, err, port.ErrRecordNotFound)
}

func TestRecordStore_SaveLoadDelete(t *testing.T) {
	mr, client := setupTestRedis(t)
	store := NewRecordStore(client)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "sniptaste_popups", []byte(`[]`)))

	raw, err := mr.Get("sniptaste_popups")
	require.NoError(t, err)
	assert.Equal(t, "[]", raw)
	assert.Zero(t, mr.TTL("sniptaste_popups"))

	got, err := store.Load(ctx, "sniptaste_popups")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), got)

	require.NoError(t, store.Delete(ctx, "sniptaste_popups"))
	assert.False(t, mr.Exists("sniptaste_popups"))
}

func TestRecordStore_RedisError(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "invalid-address:6379"})
	defer client.Close()

	store := NewRecordStore(client)
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err := store.Load(ctx, "k")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, port.ErrRecordNotFound)
	assert.Error(t, store.Save(ctx, "k", []byte("v")))
}
