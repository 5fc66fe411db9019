package db

import (
	"context"
	"fmt"
	"time"

	"sniptaste-popups/internal/core/domain"
	"sniptaste-popups/internal/core/port"
)

// Seed inserts a demo popup catalog when the store is empty. It returns the
// number of campaigns created.
func Seed(ctx context.Context, repo port.CampaignRepository, now time.Time) (int, error) {
	existing, err := repo.List(ctx)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}

	start := now.AddDate(0, 0, -1)
	end := now.AddDate(0, 1, 0)
	demo := []domain.CampaignFields{
		{
			Title:          "Welcome to SnipTaste",
			Description:    "10% off your first order",
			ImageURL:       "https://example.com/popups/welcome.jpg",
			Type:           domain.TypeWelcome,
			Frequency:      domain.FrequencyOnce,
			TargetAudience: domain.AudienceNew,
			Priority:       10,
			CTAText:        "Order now",
			CTAAction:      "navigate",
			CTALink:        "/menu",
		},
		{
			Title:          "Lunch combo",
			Description:    "Burger, fries and a drink",
			ImageURL:       "https://example.com/popups/lunch.jpg",
			Type:           domain.TypePromo,
			Frequency:      domain.FrequencyDaily,
			TargetAudience: domain.AudienceAll,
			Priority:       5,
			CTAText:        "See combo",
			CTAAction:      "navigate",
			CTALink:        "/menu/combos",
		},
		{
			Title:          "Tell us how we did",
			ImageURL:       "https://example.com/popups/survey.jpg",
			Type:           domain.TypeSurvey,
			Frequency:      domain.FrequencyWeekly,
			TargetAudience: domain.AudienceReturning,
			Priority:       1,
			CTAText:        "Start survey",
			CTAAction:      "open",
		},
	}

	for i, f := range demo {
		f.StartDate = start
		f.EndDate = end
		f.IsActive = true
		f.CreatedBy = "seed"
		if _, err = repo.Create(ctx, f); err != nil {
			return i, fmt.Errorf("seed campaign %q: %w", f.Title, err)
		}
	}
	return len(demo), nil
}
