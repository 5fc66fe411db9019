package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"sniptaste-popups/internal/core/domain"
	"sniptaste-popups/internal/core/port"
	"sniptaste-popups/internal/observability"
)

// Handler is the inbound HTTP adapter for the admin dashboard and the
// storefront display surface. Routes are registered on a chi.Router.
type Handler struct {
	svc    port.PopupUseCase
	clock  port.Clock
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.PopupUseCase, clock port.Clock, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, clock: clock, logger: logger}
	r := chi.NewRouter()

	r.Use(observability.Measure)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/campaigns", func(r chi.Router) {
			r.Get("/", h.handleListCampaigns)
			r.Post("/", h.handleCreateCampaign)
			r.Get("/active", h.handleActiveCampaigns)
			r.Get("/{id}", h.handleGetCampaign)
			r.Patch("/{id}", h.handleUpdateCampaign)
			r.Delete("/{id}", h.handleDeleteCampaign)
			r.Post("/{id}/duplicate", h.handleDuplicateCampaign)
		})
		r.Get("/popup", h.handlePopup)
		r.Post("/popup/{id}/{event}", h.handleTrack)
		r.Delete("/popup/history", h.handleClearHistory)
		r.Get("/analytics", h.handleAnalytics)
		r.Get("/analytics/campaigns", h.handleAnalyticsBreakdown)
	})
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", observability.MetricsHandler())

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps domain errors onto status codes. Anything unexpected is
// logged and reported as 500 without detail.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		h.logger.Error("request failed",
			slog.String("path", r.URL.Path),
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// at reads the optional `at` query parameter (RFC3339) used to evaluate
// eligibility at a given moment; it defaults to the current time.
func (h *Handler) at(r *http.Request) (time.Time, error) {
	s := r.URL.Query().Get("at")
	if s == "" {
		return h.clock.Now(), nil
	}
	return time.Parse(time.RFC3339, s)
}
