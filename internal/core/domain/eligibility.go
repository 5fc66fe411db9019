package domain

import (
	"cmp"
	"slices"
	"time"
)

const day = 24 * time.Hour

// ActiveCampaigns returns the campaigns that are switched on and whose window
// contains now, highest priority first. Equal priorities keep their input order.
func ActiveCampaigns(cs []Campaign, now time.Time) []Campaign {
	out := make([]Campaign, 0, len(cs))
	for _, c := range cs {
		if c.IsActive && c.InWindow(now) {
			out = append(out, c)
		}
	}
	slices.SortStableFunc(out, func(a, b Campaign) int { return cmp.Compare(b.Priority, a.Priority) })
	return out
}

// LastViewed returns the latest view timestamp recorded for id.
func LastViewed(views []ViewRecord, id string) (time.Time, bool) {
	var (
		last  time.Time
		found bool
	)
	for _, v := range views {
		if v.CampaignID != id {
			continue
		}
		if !found || v.Timestamp.After(last) {
			last = v.Timestamp
			found = true
		}
	}
	return last, found
}

// ShouldShow applies the frequency policy of c against the view ledger.
func ShouldShow(c Campaign, views []ViewRecord, now time.Time) bool {
	last, seen := LastViewed(views, c.ID)
	if !seen {
		return true
	}
	daysSince := float64(now.Sub(last)) / float64(day)
	switch c.Frequency {
	case FrequencyOnce:
		return false
	case FrequencyDaily:
		return daysSince >= 1
	case FrequencyWeekly:
		return daysSince >= 7
	default:
		return true
	}
}

// PopupToDisplay picks the first active campaign, in priority order, whose
// frequency policy allows showing it now.
func PopupToDisplay(cs []Campaign, views []ViewRecord, now time.Time) (Campaign, bool) {
	for _, c := range ActiveCampaigns(cs, now) {
		if ShouldShow(c, views, now) {
			return c, true
		}
	}
	return Campaign{}, false
}
