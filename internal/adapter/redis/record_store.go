// Package redis stores records as plain string keys in Redis.
package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"sniptaste-popups/internal/core/port"
)

// RecordStore implements port.RecordStore with GET/SET/DEL. Keys never expire.
type RecordStore struct {
	client *redis.Client
}

// NewRecordStore wraps an already connected client. The caller owns the
// client and closes it on shutdown.
func NewRecordStore(client *redis.Client) *RecordStore {
	return &RecordStore{client: client}
}

// Load issues GET key. A missing key maps redis.Nil to
// port.ErrRecordNotFound; any other failure is wrapped and returned.
func (s *RecordStore) Load(ctx context.Context, key string) ([]byte, error) {
	val, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, port.ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return val, nil
}

// Save issues SET key value with no expiry.
func (s *RecordStore) Save(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Delete issues DEL key. Deleting a missing key is not an error.
func (s *RecordStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}
