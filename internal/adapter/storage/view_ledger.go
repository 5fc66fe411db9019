package storage

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"sniptaste-popups/internal/core/domain"
	"sniptaste-popups/internal/core/port"
)

// ViewLedger implements port.ViewLedger on top of a single record.
type ViewLedger struct {
	records port.RecordStore
	key     string
	logger  *slog.Logger

	mu sync.Mutex
}

// NewViewLedger returns a ledger persisted under key. Corrupt records are
// reported through logger and read as an empty ledger.
func NewViewLedger(records port.RecordStore, key string, logger *slog.Logger) *ViewLedger {
	return &ViewLedger{records: records, key: key, logger: logger}
}

// List returns the ledger in append order. A missing or corrupt record
// reads as empty.
func (l *ViewLedger) List(ctx context.Context) ([]domain.ViewRecord, error) {
	data, err := l.records.Load(ctx, l.key)
	if errors.Is(err, port.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	vs, err := DecodeViews(data)
	if err != nil {
		l.logger.Warn("discarding corrupt view ledger", slog.String("key", l.key), slog.Any("error", err))
		return nil, nil
	}
	return vs, nil
}

// Append adds rec at the end of the ledger. It rewrites the whole record, so
// concurrent appends inside one process are serialized.
func (l *ViewLedger) Append(ctx context.Context, rec domain.ViewRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	vs, err := l.List(ctx)
	if err != nil {
		return err
	}
	data, err := EncodeViews(append(vs, rec))
	if err != nil {
		return err
	}
	return l.records.Save(ctx, l.key, data)
}

// Clear drops the whole ledger.
func (l *ViewLedger) Clear(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.records.Delete(ctx, l.key)
}
