package httpadapter

import (
	"net/http"
)

// handleAnalytics returns totals and average rates across all campaigns.
func (h *Handler) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.Analytics(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, summaryResponse{
		Total:             s.Total,
		Active:            s.Active,
		TotalViews:        s.TotalViews,
		TotalClicks:       s.TotalClicks,
		TotalConversions:  s.TotalConversions,
		AvgClickRate:      s.AvgClickRate,
		AvgConversionRate: s.AvgConversionRate,
	})
}

func (h *Handler) handleAnalyticsBreakdown(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.AnalyticsBreakdown(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	out := make([]campaignMetricsResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, campaignMetricsResponse{
			ID:             m.ID,
			Title:          m.Title,
			IsActive:       m.IsActive,
			Views:          m.Views,
			Clicks:         m.Clicks,
			Conversions:    m.Conversions,
			ClickRate:      m.ClickRate,
			ConversionRate: m.ConversionRate,
		})
	}
	h.writeJSON(w, http.StatusOK, out)
}
