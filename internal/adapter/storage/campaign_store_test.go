package storage

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sniptaste-popups/internal/adapter/memory"
	"sniptaste-popups/internal/core/domain"
	"sniptaste-popups/internal/core/port"
	"sniptaste-popups/internal/core/port/mocks"
)

var (
	testKeys = KeysFor("sniptaste")
	t0       = time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
)

type testClock struct{ now time.Time }

func (c *testClock) Now() time.Time { return c.now }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestStore(t *testing.T) (*CampaignStore, *memory.RecordStore, *testClock) {
	t.Helper()
	records := memory.NewRecordStore()
	clock := &testClock{now: t0}
	return NewCampaignStore(records, testKeys.Campaigns, clock, discardLogger()), records, clock
}

func fields(title string) domain.CampaignFields {
	return domain.CampaignFields{
		Title:          title,
		ImageURL:       "u",
		Type:           domain.TypePromo,
		StartDate:      t0,
		EndDate:        t0.AddDate(0, 0, 7),
		Frequency:      domain.FrequencyAlways,
		TargetAudience: domain.AudienceAll,
		IsActive:       true,
		Priority:       2,
		CTAText:        "Go",
		CTAAction:      "navigate",
		CreatedBy:      "admin",
	}
}

func TestCampaignStore_CreateThenList(t *testing.T) {
	store, _, _ := newTestStore(t)
	ctx := context.Background()

	c, err := store.Create(ctx, fields("X"))
	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)
	assert.Zero(t, c.ViewCount)
	assert.Zero(t, c.ClickCount)
	assert.Zero(t, c.ConversionCount)
	assert.Equal(t, t0, c.CreatedAt)
	assert.Equal(t, t0, c.UpdatedAt)

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, c, list[0])
	assert.Equal(t, fields("X"), list[0].Fields())
}

func TestCampaignStore_CreateAssignsUniqueIDs(t *testing.T) {
	store, _, _ := newTestStore(t)
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		c, err := store.Create(ctx, fields("X"))
		require.NoError(t, err)
		assert.False(t, seen[c.ID], "duplicate id %s", c.ID)
		seen[c.ID] = true
	}
}

func TestCampaignStore_CreateRejectsMissingTitle(t *testing.T) {
	store, records, _ := newTestStore(t)

	_, err := store.Create(context.Background(), fields(""))
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = records.Load(context.Background(), testKeys.Campaigns)
	assert.ErrorIs(t, err, port.ErrRecordNotFound)
}

func TestCampaignStore_Update(t *testing.T) {
	store, _, clock := newTestStore(t)
	ctx := context.Background()

	c, err := store.Create(ctx, fields("X"))
	require.NoError(t, err)

	clock.now = t0.Add(time.Hour)
	active := false
	updated, err := store.Update(ctx, c.ID, domain.CampaignPatch{IsActive: &active})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
	assert.Equal(t, t0.Add(time.Hour), updated.UpdatedAt)
	assert.Equal(t, t0, updated.CreatedAt)

	got, err := store.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)

	_, err = store.Update(ctx, "missing", domain.CampaignPatch{IsActive: &active})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCampaignStore_Delete(t *testing.T) {
	store, _, _ := newTestStore(t)
	ctx := context.Background()

	a, _ := store.Create(ctx, fields("A"))
	b, _ := store.Create(ctx, fields("B"))

	ok, err := store.Delete(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Delete(ctx, a.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, b.ID, list[0].ID)
}

func TestCampaignStore_Duplicate(t *testing.T) {
	store, _, clock := newTestStore(t)
	ctx := context.Background()

	orig, err := store.Create(ctx, fields("Lunch"))
	require.NoError(t, err)
	_, err = store.Increment(ctx, orig.ID, domain.EventView)
	require.NoError(t, err)

	clock.now = t0.Add(2 * time.Hour)
	dup, err := store.Duplicate(ctx, orig.ID)
	require.NoError(t, err)

	assert.NotEqual(t, orig.ID, dup.ID)
	assert.Equal(t, "Lunch (Copy)", dup.Title)
	assert.False(t, dup.IsActive)
	assert.Zero(t, dup.ViewCount)
	assert.Equal(t, clock.now, dup.CreatedAt)
	assert.Equal(t, orig.Priority, dup.Priority)
	assert.Equal(t, orig.EndDate, dup.EndDate)

	list, _ := store.List(ctx)
	assert.Len(t, list, 2)

	_, err = store.Duplicate(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCampaignStore_Increment(t *testing.T) {
	store, _, clock := newTestStore(t)
	ctx := context.Background()

	c, _ := store.Create(ctx, fields("X"))
	clock.now = t0.Add(time.Minute)

	for _, ev := range []domain.TrackEvent{domain.EventView, domain.EventView, domain.EventClick, domain.EventConversion} {
		ok, err := store.Increment(ctx, c.ID, ev)
		require.NoError(t, err)
		assert.True(t, ok)
	}

	got, err := store.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.ViewCount)
	assert.Equal(t, int64(1), got.ClickCount)
	assert.Equal(t, int64(1), got.ConversionCount)
	assert.Equal(t, t0.Add(time.Minute), got.UpdatedAt)

	ok, err := store.Increment(ctx, "missing", domain.EventClick)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCampaignStore_CorruptRecordReadsEmpty(t *testing.T) {
	store, records, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, records.Save(ctx, testKeys.Campaigns, []byte(`{not json`)))

	list, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	c, err := store.Create(ctx, fields("Fresh"))
	require.NoError(t, err)
	list, err = store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, c.ID, list[0].ID)
}

func TestCampaignStore_BadDateIsCorrupt(t *testing.T) {
	store, records, _ := newTestStore(t)
	ctx := context.Background()

	raw := `[{"id":"1","title":"T","imageUrl":"u","startDate":"yesterday","endDate":"2025-01-01T00:00:00.000Z",` +
		`"createdAt":"2025-01-01T00:00:00.000Z","updatedAt":"2025-01-01T00:00:00.000Z"}]`
	require.NoError(t, records.Save(ctx, testKeys.Campaigns, []byte(raw)))

	list, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCampaignStore_LoadErrorPropagates(t *testing.T) {
	records := mocks.NewMockRecordStore(t)
	boom := errors.New("connection refused")
	records.EXPECT().Load(mock.Anything, testKeys.Campaigns).Return(nil, boom)

	store := NewCampaignStore(records, testKeys.Campaigns, &testClock{now: t0}, discardLogger())

	_, err := store.Create(context.Background(), fields("X"))
	assert.ErrorIs(t, err, boom)
}

func TestCampaignStore_WritesWholeCollection(t *testing.T) {
	records := mocks.NewMockRecordStore(t)
	existing, err := EncodeCampaigns([]domain.Campaign{domain.NewCampaign("old", fields("Old"), t0)})
	require.NoError(t, err)

	records.EXPECT().Load(mock.Anything, testKeys.Campaigns).Return(existing, nil)
	records.EXPECT().
		Save(mock.Anything, testKeys.Campaigns, mock.AnythingOfType("[]uint8")).
		Run(func(_ context.Context, _ string, value []byte) {
			cs, err := DecodeCampaigns(value)
			require.NoError(t, err)
			require.Len(t, cs, 2)
			assert.Equal(t, "old", cs[0].ID)
			assert.Equal(t, "new", cs[1].ID)
		}).
		Return(nil)

	store := NewCampaignStore(records, testKeys.Campaigns, &testClock{now: t0}, discardLogger())
	store.newID = func() string { return "new" }

	_, err = store.Create(context.Background(), fields("New"))
	require.NoError(t, err)
}

func TestCampaignStore_ReturnedCampaignMatchesStored(t *testing.T) {
	store, _, clock := newTestStore(t)
	ctx := context.Background()
	clock.now = t0.Add(123456789 * time.Nanosecond)

	c, err := store.Create(ctx, fields("X"))
	require.NoError(t, err)
	got, err := store.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c, got)

	clock.now = clock.now.Add(500 * time.Microsecond)
	title := "Y"
	updated, err := store.Update(ctx, c.ID, domain.CampaignPatch{Title: &title})
	require.NoError(t, err)
	got, err = store.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)

	dup, err := store.Duplicate(ctx, c.ID)
	require.NoError(t, err)
	got, err = store.Get(ctx, dup.ID)
	require.NoError(t, err)
	assert.Equal(t, dup, got)
}
