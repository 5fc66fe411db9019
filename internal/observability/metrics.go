package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// TrackingEvents counts tracking calls by event and outcome
	// (recorded, unknown_campaign, error).
	TrackingEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "popup_tracking_events_total",
			Help: "Popup tracking events by event type and outcome",
		},
		[]string{"event", "result"},
	)
	// Decisions counts display decisions (shown, none, error).
	Decisions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "popup_decisions_total",
			Help: "Popup display decisions by result",
		},
		[]string{"result"},
	)
	// RequestsTotal counts HTTP requests by chi route pattern and status code.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "popup_http_requests_total",
			Help: "HTTP requests by route and status code",
		},
		[]string{"route", "code"},
	)
	// Latency observes HTTP request duration by chi route pattern.
	Latency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "popup_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)
)

// RecordTrackingEvent increments TrackingEvents for one tracking call.
func RecordTrackingEvent(event, result string) {
	TrackingEvents.WithLabelValues(event, result).Inc()
}

// RecordDecision increments Decisions for one display decision.
func RecordDecision(result string) {
	Decisions.WithLabelValues(result).Inc()
}

// MetricsHandler exposes the default Prometheus registry for scraping.
func MetricsHandler() http.Handler { return promhttp.Handler() }

type rec struct {
	http.ResponseWriter
	code int
}

func (r *rec) WriteHeader(code int) {
	r.code = code
	r.ResponseWriter.WriteHeader(code)
}

// Measure records count and latency per chi route pattern, so ids in the
// path do not explode label cardinality.
func Measure(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rr := &rec{ResponseWriter: w, code: http.StatusOK}
		next.ServeHTTP(rr, r)

		route := "unmatched"
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		Latency.WithLabelValues(route).Observe(time.Since(start).Seconds())
		RequestsTotal.WithLabelValues(route, strconv.Itoa(rr.code)).Inc()
	})
}
