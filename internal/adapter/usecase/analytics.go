package usecase

import (
	"context"

	"sniptaste-popups/internal/core/domain"
	"sniptaste-popups/internal/core/port"
)

// AnalyticsAggregator rolls campaign counters up for the admin dashboard.
type AnalyticsAggregator struct {
	campaigns port.CampaignRepository
}

// NewAnalyticsAggregator creates an aggregator that reads counters from
// campaigns on every call. It keeps no cached totals.
func NewAnalyticsAggregator(campaigns port.CampaignRepository) *AnalyticsAggregator {
	return &AnalyticsAggregator{campaigns: campaigns}
}

// Analytics returns totals and average rates across all campaigns.
func (a *AnalyticsAggregator) Analytics(ctx context.Context) (domain.Summary, error) {
	cs, err := a.campaigns.List(ctx)
	if err != nil {
		return domain.Summary{}, err
	}
	return domain.Summarize(cs), nil
}

// Breakdown returns one metrics row per campaign in collection order.
func (a *AnalyticsAggregator) Breakdown(ctx context.Context) ([]domain.CampaignMetrics, error) {
	cs, err := a.campaigns.List(ctx)
	if err != nil {
		return nil, err
	}
	return domain.Breakdown(cs), nil
}
