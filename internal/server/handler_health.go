package server

import (
	"net/http"
	"runtime"
	"time"

	"github.com/me/flightsched/internal/scheduler"
)

// Version is reported by the health endpoint.
const Version = "0.1.0"

type healthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version"`
	GoVersion  string                `json:"go_version"`
	Uptime     string                `json:"uptime"`
	Algorithm  string                `json:"algorithm"`
	Algorithms []scheduler.Algorithm `json:"algorithms"`
	Store      string                `json:"store"`
	Metrics    bool                  `json:"metrics"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())
	storeState := "disabled"
	if s.store != nil {
		storeState = "sqlite"
	}
	respondOK(w, reqID, healthResponse{
		Status:     "healthy",
		Version:    Version,
		GoVersion:  runtime.Version(),
		Uptime:     time.Since(s.startTime).Round(time.Second).String(),
		Algorithm:  s.algorithm.String(),
		Algorithms: scheduler.Algorithms(),
		Store:      storeState,
		Metrics:    s.config.MetricsEnabled,
	})
}
