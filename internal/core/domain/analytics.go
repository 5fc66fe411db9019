package domain

// Summary rolls the counters of every campaign into dashboard totals.
// Rates are percentages; a zero denominator yields 0.
type Summary struct {
	Total             int
	Active            int
	TotalViews        int64
	TotalClicks       int64
	TotalConversions  int64
	AvgClickRate      float64
	AvgConversionRate float64
}

// CampaignMetrics is the per-campaign row of the dashboard.
type CampaignMetrics struct {
	ID             string
	Title          string
	IsActive       bool
	Views          int64
	Clicks         int64
	Conversions    int64
	ClickRate      float64
	ConversionRate float64
}

// Summarize totals the counters of cs. AvgClickRate is clicks over views and
// AvgConversionRate is conversions over clicks, both in percent.
func Summarize(cs []Campaign) Summary {
	s := Summary{Total: len(cs)}
	for _, c := range cs {
		if c.IsActive {
			s.Active++
		}
		s.TotalViews += c.ViewCount
		s.TotalClicks += c.ClickCount
		s.TotalConversions += c.ConversionCount
	}
	s.AvgClickRate = rate(s.TotalClicks, s.TotalViews)
	s.AvgConversionRate = rate(s.TotalConversions, s.TotalClicks)
	return s
}

// Breakdown returns one CampaignMetrics row per campaign, in collection
// order.
func Breakdown(cs []Campaign) []CampaignMetrics {
	out := make([]CampaignMetrics, 0, len(cs))
	for _, c := range cs {
		out = append(out, CampaignMetrics{
			ID:             c.ID,
			Title:          c.Title,
			IsActive:       c.IsActive,
			Views:          c.ViewCount,
			Clicks:         c.ClickCount,
			Conversions:    c.ConversionCount,
			ClickRate:      rate(c.ClickCount, c.ViewCount),
			ConversionRate: rate(c.ConversionCount, c.ClickCount),
		})
	}
	return out
}

func rate(num, den int64) float64 {
	if den <= 0 {
		return 0
	}
	return float64(num) / float64(den) * 100
}
