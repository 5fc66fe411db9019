package port

import (
	"context"
	"errors"
)

// ErrRecordNotFound is returned by a RecordStore when the key holds nothing.
var ErrRecordNotFound = errors.New("record not found")

// RecordStore is the durable key-value seam every collection is persisted
// through. A record is one opaque blob; callers always read and write it whole.
// Implementations must be safe for concurrent use.
type RecordStore interface {
	// Load returns the blob stored under key or ErrRecordNotFound.
	Load(ctx context.Context, key string) ([]byte, error)
	// Save replaces the blob stored under key.
	Save(ctx context.Context, key string, value []byte) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
