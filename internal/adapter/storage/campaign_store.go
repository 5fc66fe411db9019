package storage

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"sniptaste-popups/internal/core/domain"
	"sniptaste-popups/internal/core/port"
)

// CampaignStore implements port.CampaignRepository on top of a single record.
// Each mutation reads the whole collection, changes it and writes it back.
// The mutex serializes that cycle inside one process; writers in other
// processes still race with last-write-wins.
type CampaignStore struct {
	records port.RecordStore
	key     string
	clock   port.Clock
	logger  *slog.Logger
	newID   func() string

	mu sync.Mutex
}

// NewCampaignStore returns a store persisting under key.
func NewCampaignStore(records port.RecordStore, key string, clock port.Clock, logger *slog.Logger) *CampaignStore {
	return &CampaignStore{
		records: records,
		key:     key,
		clock:   clock,
		logger:  logger,
		newID:   uuid.NewString,
	}
}

// load returns the stored collection. A missing or corrupt record reads as
// empty so the storefront keeps working.
func (s *CampaignStore) load(ctx context.Context) ([]domain.Campaign, error) {
	data, err := s.records.Load(ctx, s.key)
	if errors.Is(err, port.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	cs, err := DecodeCampaigns(data)
	if err != nil {
		s.logger.Warn("discarding corrupt campaign record", slog.String("key", s.key), slog.Any("error", err))
		return nil, nil
	}
	return cs, nil
}

func (s *CampaignStore) save(ctx context.Context, cs []domain.Campaign) error {
	data, err := EncodeCampaigns(cs)
	if err != nil {
		return err
	}
	return s.records.Save(ctx, s.key, data)
}

// mutate runs fn over the current collection and persists the result when
// fn reports a change.
func (s *CampaignStore) mutate(ctx context.Context, fn func([]domain.Campaign) ([]domain.Campaign, bool, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cs, err := s.load(ctx)
	if err != nil {
		return err
	}
	next, changed, err := fn(cs)
	if err != nil || !changed {
		return err
	}
	return s.save(ctx, next)
}

// List returns every campaign in stored order.
func (s *CampaignStore) List(ctx context.Context) ([]domain.Campaign, error) {
	return s.load(ctx)
}

// Get returns a campaign by id.
func (s *CampaignStore) Get(ctx context.Context, id string) (domain.Campaign, error) {
	cs, err := s.load(ctx)
	if err != nil {
		return domain.Campaign{}, err
	}
	if i := indexOf(cs, id); i >= 0 {
		return cs[i], nil
	}
	return domain.Campaign{}, domain.ErrNotFound
}

// Create validates fields and appends a new campaign with zeroed counters.
func (s *CampaignStore) Create(ctx context.Context, fields domain.CampaignFields) (domain.Campaign, error) {
	if err := fields.Validate(); err != nil {
		return domain.Campaign{}, err
	}
	c := domain.NewCampaign(s.newID(), fields, s.clock.Now())
	err := s.mutate(ctx, func(cs []domain.Campaign) ([]domain.Campaign, bool, error) {
		return append(cs, c), true, nil
	})
	if err != nil {
		return domain.Campaign{}, err
	}
	return c, nil
}

// Update applies patch to the campaign with the given id.
func (s *CampaignStore) Update(ctx context.Context, id string, patch domain.CampaignPatch) (domain.Campaign, error) {
	var updated domain.Campaign
	err := s.mutate(ctx, func(cs []domain.Campaign) ([]domain.Campaign, bool, error) {
		i := indexOf(cs, id)
		if i < 0 {
			return nil, false, domain.ErrNotFound
		}
		if err := cs[i].ApplyPatch(patch, s.clock.Now()); err != nil {
			return nil, false, err
		}
		updated = cs[i]
		return cs, true, nil
	})
	if err != nil {
		return domain.Campaign{}, err
	}
	return updated, nil
}

// Delete removes the campaign and reports whether it existed.
func (s *CampaignStore) Delete(ctx context.Context, id string) (bool, error) {
	var found bool
	err := s.mutate(ctx, func(cs []domain.Campaign) ([]domain.Campaign, bool, error) {
		i := indexOf(cs, id)
		if i < 0 {
			return nil, false, nil
		}
		found = true
		return append(cs[:i], cs[i+1:]...), true, nil
	})
	return found, err
}

// Duplicate stores an inactive copy of the campaign, appended to the collection.
func (s *CampaignStore) Duplicate(ctx context.Context, id string) (domain.Campaign, error) {
	var dup domain.Campaign
	err := s.mutate(ctx, func(cs []domain.Campaign) ([]domain.Campaign, bool, error) {
		i := indexOf(cs, id)
		if i < 0 {
			return nil, false, domain.ErrNotFound
		}
		dup = domain.NewCampaign(s.newID(), cs[i].CopyFields(), s.clock.Now())
		return append(cs, dup), true, nil
	})
	if err != nil {
		return domain.Campaign{}, err
	}
	return dup, nil
}

// Increment bumps the counter for ev. Unknown ids leave the record untouched.
func (s *CampaignStore) Increment(ctx context.Context, id string, ev domain.TrackEvent) (bool, error) {
	var found bool
	err := s.mutate(ctx, func(cs []domain.Campaign) ([]domain.Campaign, bool, error) {
		i := indexOf(cs, id)
		if i < 0 {
			return nil, false, nil
		}
		found = cs[i].Apply(ev, s.clock.Now())
		return cs, found, nil
	})
	return found, err
}

func indexOf(cs []domain.Campaign, id string) int {
	for i := range cs {
		if cs[i].ID == id {
			return i
		}
	}
	return -1
}
