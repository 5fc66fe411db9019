package usecase

import (
	"context"
	"log/slog"
	"time"

	"sniptaste-popups/internal/core/domain"
	"sniptaste-popups/internal/core/port"
	"sniptaste-popups/internal/observability"
)

// EligibilityEngine decides which popup a visitor sees and records what
// happened to it. It holds no state of its own; every call reads the current
// campaign collection and view ledger.
type EligibilityEngine struct {
	campaigns port.CampaignRepository
	ledger    port.ViewLedger
	clock     port.Clock
	logger    *slog.Logger
}

// NewEligibilityEngine wires the engine to the campaign collection and the
// view ledger. clock stamps view records; logger receives swallowed
// tracking failures.
func NewEligibilityEngine(campaigns port.CampaignRepository, ledger port.ViewLedger, clock port.Clock, logger *slog.Logger) *EligibilityEngine {
	return &EligibilityEngine{campaigns: campaigns, ledger: ledger, clock: clock, logger: logger}
}

// ActiveCampaigns returns the campaigns live at now, highest priority first.
func (e *EligibilityEngine) ActiveCampaigns(ctx context.Context, now time.Time) ([]domain.Campaign, error) {
	cs, err := e.campaigns.List(ctx)
	if err != nil {
		return nil, err
	}
	return domain.ActiveCampaigns(cs, now), nil
}

// ShouldShow evaluates the frequency policy of c against the stored ledger.
func (e *EligibilityEngine) ShouldShow(ctx context.Context, c domain.Campaign, now time.Time) (bool, error) {
	views, err := e.ledger.List(ctx)
	if err != nil {
		return false, err
	}
	return domain.ShouldShow(c, views, now), nil
}

// PopupToDisplay returns the campaign to show at now, or nil when no active
// campaign passes its frequency policy.
func (e *EligibilityEngine) PopupToDisplay(ctx context.Context, now time.Time) (*domain.Campaign, error) {
	cs, err := e.campaigns.List(ctx)
	if err != nil {
		observability.RecordDecision("error")
		return nil, err
	}
	views, err := e.ledger.List(ctx)
	if err != nil {
		observability.RecordDecision("error")
		return nil, err
	}
	c, ok := domain.PopupToDisplay(cs, views, now)
	if !ok {
		observability.RecordDecision("none")
		return nil, nil
	}
	observability.RecordDecision("shown")
	return &c, nil
}

// TrackView counts a display and appends it to the ledger.
func (e *EligibilityEngine) TrackView(ctx context.Context, id string) {
	if !e.track(ctx, id, domain.EventView) {
		return
	}
	rec := domain.ViewRecord{CampaignID: id, Timestamp: e.clock.Now().UTC()}
	if err := e.ledger.Append(ctx, rec); err != nil {
		e.logger.Warn("append view record failed", slog.String("campaign_id", id), slog.Any("error", err))
	}
}

// TrackClick counts a click on the popup call to action. Unknown ids and
// storage failures are ignored.
func (e *EligibilityEngine) TrackClick(ctx context.Context, id string) {
	e.track(ctx, id, domain.EventClick)
}

// TrackConversion counts a completed business action attributed to the
// popup. Unknown ids and storage failures are ignored.
func (e *EligibilityEngine) TrackConversion(ctx context.Context, id string) {
	e.track(ctx, id, domain.EventConversion)
}

// ClearViewedHistory empties the ledger, so every campaign becomes eligible
// again under its frequency policy.
func (e *EligibilityEngine) ClearViewedHistory(ctx context.Context) error {
	return e.ledger.Clear(ctx)
}

// track bumps one counter. Failures are logged, never returned: tracking must
// not disrupt the visitor. It reports whether the campaign was found.
func (e *EligibilityEngine) track(ctx context.Context, id string, ev domain.TrackEvent) bool {
	found, err := e.campaigns.Increment(ctx, id, ev)
	switch {
	case err != nil:
		observability.RecordTrackingEvent(string(ev), "error")
		e.logger.Warn("track event failed", slog.String("event", string(ev)), slog.String("campaign_id", id), slog.Any("error", err))
		return false
	case !found:
		observability.RecordTrackingEvent(string(ev), "unknown_campaign")
		e.logger.Debug("track event for unknown campaign", slog.String("event", string(ev)), slog.String("campaign_id", id))
		return false
	}
	observability.RecordTrackingEvent(string(ev), "recorded")
	return true
}
