package port

import (
	"context"
	"time"

	"sniptaste-popups/internal/core/domain"
)

// Clock supplies the current time to the stores and the engine.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function such as time.Now to Clock.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time { return f() }

// CampaignRepository owns the campaign collection. It is an outbound port in
// hexagonal architecture. Every mutation rewrites the whole collection and
// stamps UpdatedAt.
type CampaignRepository interface {
	// List returns every campaign in collection order.
	List(ctx context.Context) ([]domain.Campaign, error)
	// Get returns a campaign by id or domain.ErrNotFound.
	Get(ctx context.Context, id string) (domain.Campaign, error)
	// Create assigns an id, zeroes counters and stores the campaign.
	Create(ctx context.Context, fields domain.CampaignFields) (domain.Campaign, error)
	// Update applies a partial update. Unknown ids yield domain.ErrNotFound.
	Update(ctx context.Context, id string, patch domain.CampaignPatch) (domain.Campaign, error)
	// Delete removes a campaign and reports whether it existed.
	Delete(ctx context.Context, id string) (bool, error)
	// Duplicate stores an inactive copy of a campaign under a new id.
	Duplicate(ctx context.Context, id string) (domain.Campaign, error)
	// Increment bumps one counter. It reports false when id is unknown.
	Increment(ctx context.Context, id string, ev domain.TrackEvent) (bool, error)
}

// ViewLedger owns the per-visitor display history. It is append-only apart
// from Clear.
type ViewLedger interface {
	// List returns every view record in append order.
	List(ctx context.Context) ([]domain.ViewRecord, error)
	// Append records one display of a campaign.
	Append(ctx context.Context, rec domain.ViewRecord) error
	// Clear drops the whole history.
	Clear(ctx context.Context) error
}
