package rest

import (
	"context"
	"net/http"
	"time"
)

// cachePinger is the runtime cache as seen by health checks.
type cachePinger interface {
	Ping(ctx context.Context) error
}

// staticStatus is the static cache as seen by health checks.
type staticStatus interface {
	Loaded() bool
	Len() int
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	runtime cachePinger
	static  staticStatus
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(runtime cachePinger, static staticStatus, version string) *HealthHandler {
	return &HealthHandler{runtime: runtime, static: static, version: version}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Entries *int   `json:"entries,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe: 200 when the runtime cache answers a ping
// and the static cache file was readable, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	components := h.check(r.Context())

	status := http.StatusOK
	overall := "ok"
	for _, c := range components {
		if c.Status != "ok" {
			status = http.StatusServiceUnavailable
			overall = "down"
		}
	}

	writeJSON(w, status, HealthResponse{
		Status:    overall,
		Timestamp: time.Now(),
	})
}

// Health is the full health check. A missing static cache only degrades the
// service since live lookups still work; an unreachable runtime cache takes
// it down.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components := h.check(r.Context())

	overallStatus := "ok"
	if components["static_cache"].Status != "ok" {
		overallStatus = "degraded"
	}
	if components["runtime_cache"].Status != "ok" {
		overallStatus = "down"
	}

	status := http.StatusOK
	if overallStatus == "down" {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:     overallStatus,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func (h *HealthHandler) check(ctx context.Context) map[string]CompStatus {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	components := make(map[string]CompStatus, 2)

	start := time.Now()
	err := h.runtime.Ping(ctx)
	latency := time.Since(start)
	if err != nil {
		components["runtime_cache"] = CompStatus{Status: "down", Error: err.Error()}
	} else {
		components["runtime_cache"] = CompStatus{Status: "ok", Latency: latency.String()}
	}

	n := h.static.Len()
	if h.static.Loaded() {
		components["static_cache"] = CompStatus{Status: "ok", Entries: &n}
	} else {
		components["static_cache"] = CompStatus{Status: "missing", Entries: &n}
	}

	return components
}
