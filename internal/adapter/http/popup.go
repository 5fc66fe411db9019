package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"sniptaste-popups/internal/core/domain"
)

// handlePopup returns the campaign the storefront should display. When none
// qualifies, or the stores cannot be read, it answers 204 so page load is
// never blocked by the popup.
func (h *Handler) handlePopup(w http.ResponseWriter, r *http.Request) {
	at, err := h.at(r)
	if err != nil {
		http.Error(w, "invalid 'at' timestamp", http.StatusBadRequest)
		return
	}
	c, err := h.svc.PopupToDisplay(r.Context(), at)
	if err != nil {
		h.logger.Error("popup decision error", slog.Any("error", err))
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if c == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(*c))
}

// handleTrack records a view, click or conversion. Unknown campaigns are
// ignored; the response is 204 either way. Only an unknown event name is a
// client error.
func (h *Handler) handleTrack(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	switch domain.TrackEvent(chi.URLParam(r, "event")) {
	case domain.EventView:
		h.svc.TrackView(r.Context(), id)
	case domain.EventClick:
		h.svc.TrackClick(r.Context(), id)
	case domain.EventConversion:
		h.svc.TrackConversion(r.Context(), id)
	default:
		http.Error(w, "unknown event", http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleClearHistory(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.ClearViewedHistory(r.Context()); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
