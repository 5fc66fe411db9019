package port

import (
	"context"
	"time"

	"sniptaste-popups/internal/core/domain"
)

// PopupUseCase defines the operations exposed to the admin and display
// surfaces. This interface is the primary port into the application domain.
type PopupUseCase interface {
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
	GetCampaign(ctx context.Context, id string) (domain.Campaign, error)
	CreateCampaign(ctx context.Context, fields domain.CampaignFields) (domain.Campaign, error)
	UpdateCampaign(ctx context.Context, id string, patch domain.CampaignPatch) (domain.Campaign, error)
	DeleteCampaign(ctx context.Context, id string) (bool, error)
	DuplicateCampaign(ctx context.Context, id string) (domain.Campaign, error)

	// ActiveCampaigns returns campaigns live at now, highest priority first.
	ActiveCampaigns(ctx context.Context, now time.Time) ([]domain.Campaign, error)
	// ShouldShow evaluates the frequency policy of c against the view ledger.
	ShouldShow(ctx context.Context, c domain.Campaign, now time.Time) (bool, error)
	// PopupToDisplay returns the single campaign to show at now, or nil.
	PopupToDisplay(ctx context.Context, now time.Time) (*domain.Campaign, error)

	// TrackView, TrackClick and TrackConversion never fail: unknown ids and
	// storage errors are swallowed so the visitor is never disrupted.
	TrackView(ctx context.Context, id string)
	TrackClick(ctx context.Context, id string)
	TrackConversion(ctx context.Context, id string)
	ClearViewedHistory(ctx context.Context) error

	Analytics(ctx context.Context) (domain.Summary, error)
	AnalyticsBreakdown(ctx context.Context) ([]domain.CampaignMetrics, error)
}
