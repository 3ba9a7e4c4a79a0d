package server

import "net/http"

type endpointInfo struct {
	Path        string   `json:"path"`
	Methods     []string `json:"methods"`
	Description string   `json:"description"`
}

type discoveryResponse struct {
	Name        string         `json:"name"`
	Version     string         `json:"version"`
	Description string         `json:"description"`
	Endpoints   []endpointInfo `json:"endpoints"`
}

func (s *Server) handleDiscovery(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())
	endpoints := []endpointInfo{
		{"/api/v1/schedules", []string{"POST"}, "Compute a runway schedule for a batch of flights. Set save=true to archive it"},
		{"/api/v1/runs", []string{"GET"}, "List archived runs (limit, offset, name)"},
		{"/api/v1/runs/{id}", []string{"GET", "DELETE"}, "Single archived run with its schedule"},
		{"/api/v1/health", []string{"GET"}, "Server health and version"},
	}
	if s.config.MetricsEnabled {
		endpoints = append(endpoints, endpointInfo{"/metrics", []string{"GET"}, "Prometheus metrics"})
	}
	respondOK(w, reqID, discoveryResponse{
		Name:        "flightsched API",
		Version:     "v1",
		Description: "Runway scheduling with shortest-job-first dispatch",
		Endpoints:   endpoints,
	})
}
