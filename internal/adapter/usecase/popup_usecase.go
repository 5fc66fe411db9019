package usecase

import (
	"context"
	"log/slog"

	"sniptaste-popups/internal/core/domain"
	"sniptaste-popups/internal/core/port"
)

// PopupUseCase implements port.PopupUseCase by composing the campaign
// repository, the eligibility engine and the analytics aggregator.
type PopupUseCase struct {
	*EligibilityEngine
	*AnalyticsAggregator

	campaigns port.CampaignRepository
	logger    *slog.Logger
}

var _ port.PopupUseCase = (*PopupUseCase)(nil)

// NewPopupUseCase wires the use case over the given stores.
func NewPopupUseCase(campaigns port.CampaignRepository, ledger port.ViewLedger, clock port.Clock, logger *slog.Logger) *PopupUseCase {
	return &PopupUseCase{
		EligibilityEngine:   NewEligibilityEngine(campaigns, ledger, clock, logger),
		AnalyticsAggregator: NewAnalyticsAggregator(campaigns),
		campaigns:           campaigns,
		logger:              logger,
	}
}

// ListCampaigns returns every campaign in collection order.
func (u *PopupUseCase) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	return u.campaigns.List(ctx)
}

// GetCampaign returns one campaign or domain.ErrNotFound.
func (u *PopupUseCase) GetCampaign(ctx context.Context, id string) (domain.Campaign, error) {
	return u.campaigns.Get(ctx, id)
}

// CreateCampaign validates fields and stores a new campaign with zeroed
// counters. Invalid input is reported as domain.ErrValidation.
func (u *PopupUseCase) CreateCampaign(ctx context.Context, fields domain.CampaignFields) (domain.Campaign, error) {
	c, err := u.campaigns.Create(ctx, fields)
	if err != nil {
		return domain.Campaign{}, err
	}
	u.logger.Info("campaign created", slog.String("campaign_id", c.ID), slog.String("created_by", c.CreatedBy))
	return c, nil
}

// UpdateCampaign applies a partial update and returns the stored result.
func (u *PopupUseCase) UpdateCampaign(ctx context.Context, id string, patch domain.CampaignPatch) (domain.Campaign, error) {
	return u.campaigns.Update(ctx, id, patch)
}

// DeleteCampaign reports false for an unknown id; a repeated delete is not an error.
func (u *PopupUseCase) DeleteCampaign(ctx context.Context, id string) (bool, error) {
	ok, err := u.campaigns.Delete(ctx, id)
	if err == nil && ok {
		u.logger.Info("campaign deleted", slog.String("campaign_id", id))
	}
	return ok, err
}

// DuplicateCampaign stores an inactive "(Copy)" of the campaign under a new
// id with fresh counters and timestamps.
func (u *PopupUseCase) DuplicateCampaign(ctx context.Context, id string) (domain.Campaign, error) {
	return u.campaigns.Duplicate(ctx, id)
}

// AnalyticsBreakdown returns per-campaign counters and rates for the
// dashboard table.
func (u *PopupUseCase) AnalyticsBreakdown(ctx context.Context) ([]domain.CampaignMetrics, error) {
	return u.Breakdown(ctx)
}
