package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/orionsentinel/Orion-sentinel-ha-dns/internal/gateway"
	"github.com/orionsentinel/Orion-sentinel-ha-dns/internal/health"
	"github.com/orionsentinel/Orion-sentinel-ha-dns/internal/log"
	"github.com/orionsentinel/Orion-sentinel-ha-dns/internal/profile"
)

// Handler serves all API endpoints. The check registry and gateway are
// shared and immutable; every request gets a fresh health evaluation.
type Handler struct {
	registry   *health.Registry
	gw         gateway.Gateway
	profileDir string
	version    VersionInfo
}

// NewHandler creates an API handler over the given registry and gateway.
func NewHandler(registry *health.Registry, gw gateway.Gateway, profileDir string, version VersionInfo) *Handler {
	return &Handler{
		registry:   registry,
		gw:         gw,
		profileDir: profileDir,
		version:    version,
	}
}

// GetHealth serves the aggregate verdict. 200 only when every check
// passes; a degraded stack reports 503 here so simple monitors notice.
func (h *Handler) GetHealth(w http.ResponseWriter, r *http.Request) {
	result := h.evaluate(r)

	statusCode := http.StatusOK
	if result.Status != health.StatusHealthy {
		statusCode = http.StatusServiceUnavailable
	}

	writeHealthJSON(w, statusCode, HealthSummary{
		Status:      result.Status,
		Timestamp:   result.Timestamp,
		ErrorsCount: len(result.Errors),
	})
}

// GetHealthDetailed serves the full evaluation. Unlike GET /health this
// stays 200 while the stack is merely degraded; 503 means quorum is lost.
func (h *Handler) GetHealthDetailed(w http.ResponseWriter, r *http.Request) {
	result := h.evaluate(r)

	statusCode := http.StatusOK
	if result.Status == health.StatusUnhealthy {
		statusCode = http.StatusServiceUnavailable
	}

	writeHealthJSON(w, statusCode, result)
}

// GetReady serves the readiness quorum verdict.
func (h *Handler) GetReady(w http.ResponseWriter, r *http.Request) {
	agg := health.NewAggregator(h.registry, h.gw)
	verdict := agg.DeriveReadiness(agg.Evaluate(r.Context()))

	statusCode := http.StatusOK
	if !verdict.Ready {
		statusCode = http.StatusServiceUnavailable
	}

	writeHealthJSON(w, statusCode, verdict)
}

// GetLive answers 200 as long as the process serves requests. It never
// consults the instances: a dead DNS stack must not kill its monitor.
func (h *Handler) GetLive(w http.ResponseWriter, r *http.Request) {
	writeHealthJSON(w, http.StatusOK, LivenessResponse{
		Alive:     true,
		Timestamp: time.Now(),
	})
}

// GetProfiles serves the profile catalog.
func (h *Handler) GetProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := profile.ListProfiles(h.profileDir)
	if err != nil {
		log.Errorf("Failed to list profiles: %v", err)
		WriteInternalError(w, "failed to list profiles")
		return
	}

	writeJSONData(w, ProfilesResponse{Profiles: profiles})
}

// GetStatus serves operator process information.
func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	writeJSONData(w, StatusResponse{
		Version:    h.version,
		Instances:  len(h.registry.Checks()),
		ProfileDir: h.profileDir,
	})
}

func (h *Handler) evaluate(r *http.Request) health.AggregateHealth {
	return health.NewAggregator(h.registry, h.gw).Evaluate(r.Context())
}

// writeJSONData writes a successful JSON response wrapped in the data envelope.
func writeJSONData(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(DataResponse{Data: data})
}

// writeHealthJSON writes an unwrapped health body with the given status code.
func writeHealthJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(v)
}
