package scheduler

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/me/flightsched/internal/logging"
	"github.com/me/flightsched/pkg/model"
)

// Algorithm names a scheduling implementation. Every implementation serves
// flights shortest-job-first without preemption and produces identical
// schedules; they differ only in cost.
type Algorithm string

const (
	// AlgorithmSJF uses a min-heap of arrived flights fed from an
	// arrival-sorted cursor. O(n log n).
	AlgorithmSJF Algorithm = "sjf"
	// AlgorithmScan rescans every flight on each dispatch and jumps idle
	// gaps. O(n^2).
	AlgorithmScan Algorithm = "scan"
	// AlgorithmScanStep rescans like AlgorithmScan but crosses idle gaps one
	// minute at a time.
	AlgorithmScanStep Algorithm = "scan-step"
)

// String returns the algorithm name.
func (a Algorithm) String() string {
	return string(a)
}

// Algorithms lists every supported algorithm, default first.
func Algorithms() []Algorithm {
	return []Algorithm{AlgorithmSJF, AlgorithmScan, AlgorithmScanStep}
}

// ParseAlgorithm resolves a user-supplied name. Empty selects AlgorithmSJF.
func ParseAlgorithm(s string) (Algorithm, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return AlgorithmSJF, nil
	}
	for _, a := range Algorithms() {
		if string(a) == s {
			return a, nil
		}
	}
	return "", fmt.Errorf("unknown algorithm %q (want one of %v)", s, Algorithms())
}

// Scheduler orders a batch of flights on a single non-preemptive resource.
type Scheduler interface {
	// Schedule computes the run. It never fails for validated flights and
	// does not modify the input slice. Empty input yields an empty schedule.
	Schedule(flights []model.Flight) *model.Schedule

	// Algorithm reports which implementation this is.
	Algorithm() Algorithm
}

// New returns the scheduler implementing alg.
func New(alg Algorithm, logger *slog.Logger) (Scheduler, error) {
	switch alg {
	case AlgorithmSJF, "":
		return NewSJF(logger), nil
	case AlgorithmScan:
		return NewScan(logger), nil
	case AlgorithmScanStep:
		return NewScan(logger, WithIdleStep()), nil
	}
	return nil, fmt.Errorf("unknown algorithm %q", alg)
}

// byArrival returns flight indices sorted by arrival time. Flights arriving
// together keep their input order, which is what makes the shortest-duration
// tie-break deterministic: among equal durations the lowest position wins.
func byArrival(flights []model.Flight) []int {
	order := make([]int, len(flights))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return flights[order[i]].ArrivalMinutes < flights[order[j]].ArrivalMinutes
	})
	return order
}

func componentLogger(logger *slog.Logger, alg Algorithm) *slog.Logger {
	return logging.OrDiscard(logger).With("component", "scheduler", "algorithm", alg.String())
}
