package scheduler

import (
	"fmt"
	"log/slog"

	"github.com/me/flightsched/pkg/model"
)

// Scan recomputes the ready set from scratch before every dispatch, keeping
// an explicit per-flight state. It is the straightforward form of the
// algorithm and serves as the oracle for SJF in tests.
type Scan struct {
	logger   *slog.Logger
	stepIdle bool
}

// ScanOption configures a Scan scheduler.
type ScanOption func(*Scan)

// WithIdleStep makes the scheduler cross idle gaps one minute at a time
// instead of jumping to the next arrival. The resulting schedule is the same.
func WithIdleStep() ScanOption {
	return func(s *Scan) {
		s.stepIdle = true
	}
}

// NewScan creates a rescanning scheduler. logger may be nil.
func NewScan(logger *slog.Logger, opts ...ScanOption) *Scan {
	s := &Scan{}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = componentLogger(logger, s.Algorithm())
	return s
}

// Algorithm implements Scheduler.
func (s *Scan) Algorithm() Algorithm {
	if s.stepIdle {
		return AlgorithmScanStep
	}
	return AlgorithmScan
}

// Schedule implements Scheduler.
func (s *Scan) Schedule(flights []model.Flight) *model.Schedule {
	order := byArrival(flights)

	// state is indexed by arrival-sorted position, not input index.
	state := make([]model.FlightState, len(order))
	for pos := range state {
		state[pos] = model.FlightStatePending
	}
	records := make([]model.ScheduleRecord, 0, len(flights))

	now := 0
	for {
		best, done := -1, 0
		for pos, idx := range order {
			if state[pos].IsTerminal() {
				done++
				continue
			}
			if state[pos] == model.FlightStatePending && flights[idx].ArrivalMinutes <= now {
				advance(state, pos, model.FlightStateReady)
			}
			if state[pos] != model.FlightStateReady {
				continue
			}
			// Strict less-than keeps the first minimum in arrival order.
			if best < 0 || flights[idx].DurationMinutes < flights[order[best]].DurationMinutes {
				best = pos
			}
		}
		if done == len(order) {
			break
		}

		if best < 0 {
			if s.stepIdle {
				now++
			} else {
				arrival := s.nextArrival(flights, order, state)
				s.logger.Debug("idle", "from", now, "to", arrival)
				now = arrival
			}
			continue
		}

		f := flights[order[best]]
		rec := model.NewScheduleRecord(f, max(now, f.ArrivalMinutes))
		records = append(records, rec)
		advance(state, best, model.FlightStateCompleted)
		s.logger.Debug("dispatch", "flight_id", f.ID, "start", rec.StartMinutes, "completion", rec.CompletionMinutes)
		now = rec.CompletionMinutes
	}

	return model.NewSchedule(records)
}

// nextArrival returns the earliest arrival among pending flights. Only called
// when at least one flight is pending.
func (s *Scan) nextArrival(flights []model.Flight, order []int, state []model.FlightState) int {
	next, found := 0, false
	for pos, idx := range order {
		if state[pos] != model.FlightStatePending {
			continue
		}
		if a := flights[idx].ArrivalMinutes; !found || a < next {
			next, found = a, true
		}
	}
	return next
}

// advance moves the flight at pos to next. Flights are never preempted or
// served twice, so an invalid transition is a scheduler bug.
func advance(state []model.FlightState, pos int, next model.FlightState) {
	if !state[pos].CanTransitionTo(next) {
		panic(fmt.Sprintf("scheduler: flight at position %d cannot move from %s to %s", pos, state[pos], next))
	}
	state[pos] = next
}
