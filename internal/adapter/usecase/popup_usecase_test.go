package usecase

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
	"sniptaste-popups/internal/adapter/storage"
	"sniptaste-popups/internal/core/domain"
	"sniptaste-popups/internal/core/port"
	"sniptaste-popups/internal/core/port/mocks"
)

var now = time.Date(2025, 5, 10, 18, 0, 0, 0, time.UTC)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func discard() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func newService(t *testing.T) (*PopupUseCase, *fakeClock) {
	t.Helper()
	records := memory.NewRecordStore()
	keys := storage.KeysFor("sniptaste")
	clock := &fakeClock{now: now}
	campaigns := storage.NewCampaignStore(records, keys.Campaigns, clock, discard())
	ledger := storage.NewViewLedger(records, keys.Views, discard())
	return NewPopupUseCase(campaigns, ledger, clock, discard()), clock
}

func create(t *testing.T, svc *PopupUseCase, title string, priority int, freq domain.Frequency) domain.Campaign {
	t.Helper()
	c, err := svc.CreateCampaign(context.Background(), domain.CampaignFields{
		Title:          title,
		ImageURL:       "u",
		Type:           domain.TypePromo,
		StartDate:      now.AddDate(0, 0, -30),
		EndDate:        now.AddDate(0, 0, 30),
		Frequency:      freq,
		TargetAudience: domain.AudienceAll,
		IsActive:       true,
		Priority:       priority,
	})
	require.NoError(t, err)
	return c
}

// TestPopupToDisplay_HighestPriority covers two always-on campaigns never viewed.
func TestPopupToDisplay_HighestPriority(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	create(t, svc, "A", 5, domain.FrequencyAlways)
	b := create(t, svc, "B", 10, domain.FrequencyAlways)

	got, err := svc.PopupToDisplay(ctx, now)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, b.ID, got.ID)
}

func TestTrackView_OnceIsNotShownAgain(t *testing.T) {
	svc, clock := newService(t)
	ctx := context.Background()

	c := create(t, svc, "C", 1, domain.FrequencyOnce)
	svc.TrackView(ctx, c.ID)

	for _, at := range []time.Time{now, now.AddDate(0, 0, 1), now.AddDate(1, 0, 0)} {
		show, err := svc.ShouldShow(ctx, c, at)
		require.NoError(t, err)
		assert.False(t, show, "at %s", at)
	}

	got, err := svc.PopupToDisplay(ctx, now.Add(time.Hour))
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, svc.ClearViewedHistory(ctx))
	clock.now = now.Add(2 * time.Hour)
	show, err := svc.ShouldShow(ctx, c, clock.now)
	require.NoError(t, err)
	assert.True(t, show)
}

func TestTrackView_WeeklyWindow(t *testing.T) {
	svc, clock := newService(t)
	ctx := context.Background()

	d := create(t, svc, "D", 1, domain.FrequencyWeekly)
	clock.now = now.AddDate(0, 0, -8)
	svc.TrackView(ctx, d.ID)

	show, err := svc.ShouldShow(ctx, d, now)
	require.NoError(t, err)
	assert.True(t, show, "last view 8 days ago")

	clock.now = now.AddDate(0, 0, -3)
	svc.TrackView(ctx, d.ID)

	show, err = svc.ShouldShow(ctx, d, now)
	require.NoError(t, err)
	assert.False(t, show, "last view 3 days ago")
}

func TestTrackView_DailyBoundaryWithSubMillisecondClock(t *testing.T) {
	svc, clock := newService(t)
	ctx := context.Background()

	d := create(t, svc, "Daily", 1, domain.FrequencyDaily)
	viewedAt := now.Add(500 * time.Microsecond)
	clock.now = viewedAt
	svc.TrackView(ctx, d.ID)

	show, err := svc.ShouldShow(ctx, d, viewedAt.Add(24*time.Hour-100*time.Microsecond))
	require.NoError(t, err)
	assert.False(t, show, "shown before a full day elapsed")

	show, err = svc.ShouldShow(ctx, d, viewedAt.Add(24*time.Hour))
	require.NoError(t, err)
	assert.True(t, show, "exactly one day elapsed")
}

func TestTracking_Counters(t *testing.T) {
	svc, clock := newService(t)
	ctx := context.Background()

	c := create(t, svc, "E", 1, domain.FrequencyAlways)
	clock.now = now.Add(time.Minute)

	svc.TrackView(ctx, c.ID)
	svc.TrackClick(ctx, c.ID)
	svc.TrackConversion(ctx, c.ID)
	svc.TrackClick(ctx, "unknown")

	got, err := svc.GetCampaign(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ViewCount)
	assert.Equal(t, int64(1), got.ClickCount)
	assert.Equal(t, int64(1), got.ConversionCount)
	assert.Equal(t, clock.now, got.UpdatedAt)

	summary, err := svc.Analytics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Total)
	assert.InDelta(t, 100.0, summary.AvgClickRate, 1e-9)
	assert.InDelta(t, 100.0, summary.AvgConversionRate, 1e-9)
}

func TestAnalytics_Empty(t *testing.T) {
	svc, _ := newService(t)

	summary, err := svc.Analytics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Summary{}, summary)

	rows, err := svc.AnalyticsBreakdown(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestCRUD_NotFound(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	title := "x"
	_, err := svc.UpdateCampaign(ctx, "nope", domain.CampaignPatch{Title: &title})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.DuplicateCampaign(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	ok, err := svc.DeleteCampaign(ctx, "nope")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTrackView_UnknownCampaignSkipsLedger(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	ledger := mocks.NewMockViewLedger(t)

	repo.EXPECT().Increment(mock.Anything, "ghost", domain.EventView).Return(false, nil)

	engine := NewEligibilityEngine(repo, ledger, &fakeClock{now: now}, discard())
	engine.TrackView(context.Background(), "ghost")

	ledger.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestTrackView_AppendsLedgerRecord(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	ledger := mocks.NewMockViewLedger(t)

	repo.EXPECT().Increment(mock.Anything, "c1", domain.EventView).Return(true, nil)
	ledger.EXPECT().
		Append(mock.Anything, domain.ViewRecord{CampaignID: "c1", Timestamp: now}).
		Return(nil)

	engine := NewEligibilityEngine(repo, ledger, &fakeClock{now: now}, discard())
	engine.TrackView(context.Background(), "c1")
}

func TestTracking_StorageErrorsAreSwallowed(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	ledger := mocks.NewMockViewLedger(t)
	boom := errors.New("redis down")

	repo.EXPECT().Increment(mock.Anything, "c1", mock.Anything).Return(false, boom)

	engine := NewEligibilityEngine(repo, ledger, &fakeClock{now: now}, discard())
	assert.NotPanics(t, func() {
		engine.TrackView(context.Background(), "c1")
		engine.TrackClick(context.Background(), "c1")
		engine.TrackConversion(context.Background(), "c1")
	})
}

func TestTrackView_LedgerErrorIsSwallowed(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	ledger := mocks.NewMockViewLedger(t)

	repo.EXPECT().Increment(mock.Anything, "c1", domain.EventView).Return(true, nil)
	ledger.EXPECT().Append(mock.Anything, mock.Anything).Return(errors.New("disk full"))

	engine := NewEligibilityEngine(repo, ledger, &fakeClock{now: now}, discard())
	engine.TrackView(context.Background(), "c1")
}

func TestPopupToDisplay_StorageError(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	ledger := mocks.NewMockViewLedger(t)
	boom := errors.New("timeout")

	repo.EXPECT().List(mock.Anything).Return(nil, boom)

	engine := NewEligibilityEngine(repo, ledger, &fakeClock{now: now}, discard())
	got, err := engine.PopupToDisplay(context.Background(), now)
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, got)
}

func TestPopupToDisplay_SkipsInactiveRegardlessOfPolicy(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	ledger := mocks.NewMockViewLedger(t)

	inactive := domain.Campaign{
		ID:        "off",
		Priority:  100,
		Frequency: domain.FrequencyAlways,
		StartDate: now.Add(-time.Hour),
		EndDate:   now.Add(time.Hour),
	}
	repo.EXPECT().List(mock.Anything).Return([]domain.Campaign{inactive}, nil)
	ledger.EXPECT().List(mock.Anything).Return(nil, nil)

	engine := NewEligibilityEngine(repo, ledger, &fakeClock{now: now}, discard())
	got, err := engine.PopupToDisplay(context.Background(), now)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestAnalyticsAggregator_Scenario(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().List(mock.Anything).Return([]domain.Campaign{
		{ID: "1", IsActive: true, ViewCount: 100, ClickCount: 10, ConversionCount: 2},
		{ID: "2"},
	}, nil)

	summary, err := NewAnalyticsAggregator(repo).Analytics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 1, summary.Active)
	assert.InDelta(t, 10.0, summary.AvgClickRate, 1e-9)
	assert.InDelta(t, 20.0, summary.AvgConversionRate, 1e-9)
}

var _ port.Clock = (*fakeClock)(nil)
