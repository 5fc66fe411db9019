package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func campaign(id string, priority int, freq Frequency) Campaign {
	return Campaign{
		ID:        id,
		Title:     id,
		ImageURL:  "img",
		IsActive:  true,
		Priority:  priority,
		Frequency: freq,
		StartDate: now.AddDate(0, 0, -1),
		EndDate:   now.AddDate(0, 0, 1),
	}
}

func TestActiveCampaigns(t *testing.T) {
	inactive := campaign("inactive", 100, FrequencyAlways)
	inactive.IsActive = false
	expired := campaign("expired", 50, FrequencyAlways)
	expired.EndDate = now.Add(-time.Second)
	future := campaign("future", 50, FrequencyAlways)
	future.StartDate = now.Add(time.Second)
	startsNow := campaign("starts-now", 1, FrequencyAlways)
	startsNow.StartDate = now
	endsNow := campaign("ends-now", 1, FrequencyAlways)
	endsNow.EndDate = now

	got := ActiveCampaigns([]Campaign{
		campaign("low", 1, FrequencyAlways),
		inactive,
		expired,
		campaign("high", 10, FrequencyAlways),
		future,
		startsNow,
		endsNow,
	}, now)

	ids := make([]string, 0, len(got))
	for _, c := range got {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []string{"high", "low", "starts-now", "ends-now"}, ids)
}

func TestShouldShow(t *testing.T) {
	tests := []struct {
		name     string
		freq     Frequency
		lastSeen time.Duration // how long ago; zero means never
		want     bool
	}{
		{"never viewed once", FrequencyOnce, 0, true},
		{"never viewed weekly", FrequencyWeekly, 0, true},
		{"once after view", FrequencyOnce, 365 * day, false},
		{"always after view", FrequencyAlways, time.Minute, true},
		{"daily just before boundary", FrequencyDaily, day - time.Nanosecond, false},
		{"daily at boundary", FrequencyDaily, day, true},
		{"weekly 3 days", FrequencyWeekly, 3 * day, false},
		{"weekly just before boundary", FrequencyWeekly, 7*day - time.Millisecond, false},
		{"weekly at boundary", FrequencyWeekly, 7 * day, true},
		{"weekly 8 days", FrequencyWeekly, 8 * day, true},
		{"unknown frequency", Frequency("hourly"), time.Minute, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := campaign("c", 1, tt.freq)
			var views []ViewRecord
			if tt.lastSeen > 0 {
				views = append(views, ViewRecord{CampaignID: "c", Timestamp: now.Add(-tt.lastSeen)})
			}
			views = append(views, ViewRecord{CampaignID: "other", Timestamp: now})
			assert.Equal(t, tt.want, ShouldShow(c, views, now))
		})
	}
}

func TestShouldShow_UsesMostRecentView(t *testing.T) {
	c := campaign("c", 1, FrequencyWeekly)
	views := []ViewRecord{
		{CampaignID: "c", Timestamp: now.Add(-2 * day)},
		{CampaignID: "c", Timestamp: now.Add(-10 * day)},
	}
	assert.False(t, ShouldShow(c, views, now))
}

func TestPopupToDisplay(t *testing.T) {
	t.Run("higher priority wins", func(t *testing.T) {
		a := campaign("A", 5, FrequencyAlways)
		b := campaign("B", 10, FrequencyAlways)
		got, ok := PopupToDisplay([]Campaign{a, b}, nil, now)
		require.True(t, ok)
		assert.Equal(t, "B", got.ID)
	})

	t.Run("falls through to next eligible", func(t *testing.T) {
		a := campaign("A", 5, FrequencyAlways)
		b := campaign("B", 10, FrequencyOnce)
		views := []ViewRecord{{CampaignID: "B", Timestamp: now.Add(-time.Hour)}}
		got, ok := PopupToDisplay([]Campaign{a, b}, views, now)
		require.True(t, ok)
		assert.Equal(t, "A", got.ID)
	})

	t.Run("equal priority keeps collection order", func(t *testing.T) {
		a := campaign("A", 3, FrequencyAlways)
		b := campaign("B", 3, FrequencyAlways)
		got, ok := PopupToDisplay([]Campaign{a, b}, nil, now)
		require.True(t, ok)
		assert.Equal(t, "A", got.ID)
	})

	t.Run("inactive never shown", func(t *testing.T) {
		a := campaign("A", 5, FrequencyAlways)
		a.IsActive = false
		_, ok := PopupToDisplay([]Campaign{a}, nil, now)
		assert.False(t, ok)
	})

	t.Run("nothing eligible", func(t *testing.T) {
		_, ok := PopupToDisplay(nil, nil, now)
		assert.False(t, ok)
	})
}
