package scheduler

import (
	"container/heap"
	"log/slog"

	"github.com/me/flightsched/pkg/model"
)

// SJF is the heap-backed shortest-job-first scheduler.
type SJF struct {
	logger *slog.Logger
}

// NewSJF creates the default scheduler. logger may be nil.
func NewSJF(logger *slog.Logger) *SJF {
	return &SJF{logger: componentLogger(logger, AlgorithmSJF)}
}

// Algorithm implements Scheduler.
func (s *SJF) Algorithm() Algorithm { return AlgorithmSJF }

// Schedule implements Scheduler.
func (s *SJF) Schedule(flights []model.Flight) *model.Schedule {
	order := byArrival(flights)
	records := make([]model.ScheduleRecord, 0, len(flights))
	ready := make(readyQueue, 0, len(flights))

	now, next := 0, 0
	for len(records) < len(flights) {
		for next < len(order) && flights[order[next]].ArrivalMinutes <= now {
			heap.Push(&ready, readyItem{pos: next, duration: flights[order[next]].DurationMinutes})
			next++
		}

		if ready.Len() == 0 {
			// Nothing has arrived; next < len(order) holds because some
			// flight is neither served nor queued.
			arrival := flights[order[next]].ArrivalMinutes
			s.logger.Debug("idle", "from", now, "to", arrival)
			now = arrival
			continue
		}

		item := heap.Pop(&ready).(readyItem)
		f := flights[order[item.pos]]
		rec := model.NewScheduleRecord(f, max(now, f.ArrivalMinutes))
		records = append(records, rec)
		s.logger.Debug("dispatch",
			"flight_id", f.ID,
			"start", rec.StartMinutes,
			"completion", rec.CompletionMinutes,
			"queued", ready.Len(),
		)
		now = rec.CompletionMinutes
	}

	return model.NewSchedule(records)
}
