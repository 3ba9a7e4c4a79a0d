package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/me/flightsched/internal/config"
	"github.com/me/flightsched/internal/parser"
	"github.com/me/flightsched/internal/scheduler"
	"github.com/me/flightsched/internal/store"
	"github.com/me/flightsched/internal/telemetry"
)

// Server is the flightsched REST API server.
type Server struct {
	router    chi.Router
	logger    *slog.Logger
	config    config.Config
	startTime time.Time
	validator *parser.Validator
	store     store.Store // optional; nil disables archiving and /runs
	algorithm scheduler.Algorithm
	sched     map[scheduler.Algorithm]scheduler.Scheduler
	now       func() time.Time
}

// Option configures optional Server dependencies.
type Option func(*Server)

// WithClock overrides the time source used to stamp archived runs.
func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		s.now = now
	}
}

// New creates a new Server with all routes registered. An unknown
// cfg.Algorithm falls back to SJF.
func New(cfg config.Config, st store.Store, logger *slog.Logger, opts ...Option) *Server {
	alg, err := scheduler.ParseAlgorithm(cfg.Algorithm)
	if err != nil {
		logger.Warn("unknown default algorithm, using sjf", "algorithm", cfg.Algorithm)
		alg = scheduler.AlgorithmSJF
	}
	s := &Server{
		router:    chi.NewRouter(),
		logger:    logger.With("component", "server"),
		config:    cfg,
		startTime: time.Now(),
		validator: parser.NewValidator(logger),
		store:     st,
		algorithm: alg,
		sched:     make(map[scheduler.Algorithm]scheduler.Scheduler),
		now:       func() time.Time { return time.Now().UTC() },
	}
	for _, a := range scheduler.Algorithms() {
		// Every listed algorithm is known to scheduler.New.
		s.sched[a], _ = scheduler.New(a, logger)
	}
	for _, opt := range opts {
		opt(s)
	}

	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Handler returns the http.Handler for this server.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() {
	r := s.router

	// Global middleware
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware(s.logger))

	if s.config.MetricsEnabled {
		r.Use(telemetry.Middleware)
		r.Handle("/metrics", telemetry.Handler())
	}

	r.Route("/api/v1", func(r chi.Router) {
		// Discovery
		r.Get("/", s.handleDiscovery)

		// Health
		r.Get("/health", s.handleHealth)

		// Schedules
		r.Post("/schedules", s.handleCreateSchedule)

		// Archived runs
		r.Route("/runs", func(r chi.Router) {
			r.Get("/", s.handleListRuns)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.handleGetRun)
				r.Delete("/", s.handleDeleteRun)
			})
		})
	})
}
