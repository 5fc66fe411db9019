// Package memory provides a process-local port.RecordStore.
package memory

import (
	"context"
	"sync"

	"sniptaste-popups/internal/core/port"
)

// RecordStore keeps records in a map. Values are copied on the way in and out.
type RecordStore struct {
	mu      sync.RWMutex
	records map[string][]byte
}

// NewRecordStore returns an empty store. Records live only as long as the
// process, so it suits tests and single-instance demos.
func NewRecordStore() *RecordStore {
	return &RecordStore{records: map[string][]byte{}}
}

// Load returns a copy of the record stored under key, or
// port.ErrRecordNotFound when the key was never saved or has been deleted.
func (s *RecordStore) Load(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.records[key]
	if !ok {
		return nil, port.ErrRecordNotFound
	}
	return append([]byte(nil), v...), nil
}

// Save replaces the record under key with a copy of value.
func (s *RecordStore) Save(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[key] = append([]byte(nil), value...)
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *RecordStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, key)
	return nil
}
