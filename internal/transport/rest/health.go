package rest

import (
	"context"
	"net/http"
	"sort"
	"time"
)

// Pinger is any dependency that can report liveness.
type Pinger interface {
	Ping(ctx context.Context) error
}

const probeTimeout = 3 * time.Second

// HealthHandler serves the probe endpoints.
type HealthHandler struct {
	db      Pinger
	extras  map[string]Pinger
	version string
}

// NewHealthHandler creates a HealthHandler. extras are optional components
// (for example the notification bus) reported by /health but not /ready.
func NewHealthHandler(db Pinger, version string, extras map[string]Pinger) *HealthHandler {
	return &HealthHandler{db: db, extras: extras, version: version}
}

// HealthResponse is the JSON body of /live, /ready and /health.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of one component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready returns 200 when the database answers, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "down", Timestamp: time.Now()})
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Health probes every component with latency. Only the database decides the
// overall status; a failing extra degrades it.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	components := make(map[string]CompStatus, len(h.extras)+1)
	overall := "ok"

	components["database"] = probe(ctx, h.db)
	if components["database"].Status != "ok" {
		overall = "down"
	}

	names := make([]string, 0, len(h.extras))
	for name := range h.extras {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		components[name] = probe(ctx, h.extras[name])
		if components[name].Status != "ok" && overall == "ok" {
			overall = "degraded"
		}
	}

	status := http.StatusOK
	if overall == "down" {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func probe(ctx context.Context, p Pinger) CompStatus {
	start := time.Now()
	if err := p.Ping(ctx); err != nil {
		return CompStatus{Status: "down"}
	}
	return CompStatus{Status: "ok", Latency: time.Since(start).String()}
}
