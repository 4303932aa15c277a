package rest

import (
	"context"
	"net/http"
	"time"
)

const (
	pingTimeout = 3 * time.Second

	statusOK   = "ok"
	statusDown = "down"
)

// dbPinger defines the minimal interface for DB health checks.
type dbPinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a plain function, such as (*sql.DB).PingContext, to a pinger.
type PingFunc func(ctx context.Context) error

// Ping calls f.
func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

type sessionCounter interface {
	ActiveSessions() int
}

// HealthHandler serves the liveness, readiness and full health probes.
type HealthHandler struct {
	db       dbPinger
	driver   string
	sessions sessionCounter
	version  string
}

// NewHealthHandler creates a HealthHandler. driver names the card store
// backend in probe responses.
func NewHealthHandler(db dbPinger, driver string, sessions sessionCounter, version string) *HealthHandler {
	return &HealthHandler{db: db, driver: driver, sessions: sessions, version: version}
}

// HealthResponse is the JSON body of every probe.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Driver  string `json:"driver,omitempty"`
	Latency string `json:"latency,omitempty"`
	Active  *int   `json:"active,omitempty"`
}

// Live reports that the process is serving. It never touches the store.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: statusOK, Timestamp: time.Now().UTC()})
}

// Ready is 200 while the card store answers a ping and 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	writeHealth(w, "", map[string]CompStatus{
		"database": h.checkDatabase(r.Context()),
	})
}

// Health extends Ready with ping latency, the active session count and the
// build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	active := h.sessions.ActiveSessions()
	writeHealth(w, h.version, map[string]CompStatus{
		"database": h.checkDatabase(r.Context()),
		"sessions": {Status: statusOK, Active: &active},
	})
}

func (h *HealthHandler) checkDatabase(ctx context.Context) CompStatus {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		return CompStatus{Status: statusDown, Driver: h.driver}
	}
	return CompStatus{Status: statusOK, Driver: h.driver, Latency: time.Since(start).String()}
}

// writeHealth reports down with 503 when any component is down.
func writeHealth(w http.ResponseWriter, version string, components map[string]CompStatus) {
	resp := HealthResponse{
		Status:     statusOK,
		Version:    version,
		Components: components,
		Timestamp:  time.Now().UTC(),
	}
	code := http.StatusOK
	for _, c := range components {
		if c.Status != statusOK {
			resp.Status = statusDown
			code = http.StatusServiceUnavailable
			break
		}
	}
	writeJSON(w, code, resp)
}
