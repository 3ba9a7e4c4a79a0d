// Package telemetry exposes Prometheus metrics for scheduling runs and the
// HTTP API.
package telemetry

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/me/flightsched/pkg/model"
)

const namespace = "flightsched"

var (
	SchedulesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "schedules_total",
		Help:      "Number of schedules computed, by algorithm.",
	}, []string{"algorithm"})

	FlightsScheduled = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "flights_scheduled_total",
		Help:      "Number of flights placed on the runway across all schedules.",
	})

	ScheduleDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "schedule_duration_seconds",
		Help:      "Time spent computing a schedule.",
		Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
	}, []string{"algorithm"})

	WaitingMinutes = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "waiting_minutes",
		Help:      "Per-flight waiting time in minutes.",
		Buckets:   []float64{0, 5, 15, 30, 60, 120, 240, 480, 1440},
	})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests served, by method and status code.",
	}, []string{"method", "status"})
)

// ObserveSchedule records one computed schedule.
func ObserveSchedule(algorithm string, sched *model.Schedule, elapsed time.Duration) {
	SchedulesTotal.WithLabelValues(algorithm).Inc()
	ScheduleDuration.WithLabelValues(algorithm).Observe(elapsed.Seconds())
	if sched == nil {
		return
	}
	FlightsScheduled.Add(float64(sched.Len()))
	for _, rec := range sched.Records() {
		WaitingMinutes.Observe(float64(rec.WaitingMinutes))
	}
}

// Handler exposes the metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware counts HTTP requests by method and response status.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)
		HTTPRequests.WithLabelValues(r.Method, strconv.Itoa(rw.statusCode)).Inc()
	})
}

// responseWriter captures the status code written by a handler.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func (rw *responseWriter) WriteHeader(code int) {
	if !rw.written {
		rw.statusCode = code
		rw.written = true
	}
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.written = true
	}
	return rw.ResponseWriter.Write(b)
}
