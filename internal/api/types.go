package api

import (
	"time"

	"github.com/orionsentinel/Orion-sentinel-ha-dns/internal/health"
	"github.com/orionsentinel/Orion-sentinel-ha-dns/internal/profile"
)

// DataResponse wraps successful /api/v1 responses with a "data" field.
// Health endpoints are consumed by load balancers and monitoring agents
// and serve their documented body shapes unwrapped.
type DataResponse struct {
	Data interface{} `json:"data"`
}

// HealthSummary is the body of GET /health.
type HealthSummary struct {
	Status      health.Status `json:"status"`
	Timestamp   time.Time     `json:"timestamp"`
	ErrorsCount int           `json:"errors_count"`
}

// LivenessResponse is the body of GET /live.
type LivenessResponse struct {
	Alive     bool      `json:"alive"`
	Timestamp time.Time `json:"timestamp"`
}

// ProfilesResponse returns the profile catalog.
type ProfilesResponse struct {
	Profiles []profile.Info `json:"profiles"`
}

// StatusResponse returns operator process information.
type StatusResponse struct {
	Version    VersionInfo `json:"version"`
	Instances  int         `json:"instances"`
	ProfileDir string      `json:"profile_dir"`
}

// VersionInfo contains build version information.
type VersionInfo struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}
