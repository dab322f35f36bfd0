package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/orionsentinel/Orion-sentinel-ha-dns/internal/metrics"
)

// NewRouter creates the HTTP router with all endpoints.
func NewRouter(h *Handler) http.Handler {
	metrics.RegisterMetrics()

	r := chi.NewRouter()

	r.Use(Recovery)
	r.Use(Logger)
	r.Use(JSONContentType)

	// Probe endpoints, evaluated fresh per request.
	r.Group(func(r chi.Router) {
		r.Use(NoCache)
		r.Get("/health", h.GetHealth)
		r.Get("/health/detailed", h.GetHealthDetailed)
		r.Get("/ready", h.GetReady)
		r.Get("/live", h.GetLive)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/profiles", h.GetProfiles)
		r.Get("/status", h.GetStatus)
	})

	r.Handle("/metrics", promhttp.Handler())

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteNotFound(w, "endpoint")
	})

	return r
}
