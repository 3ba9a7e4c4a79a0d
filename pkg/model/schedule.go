package model

import "sort"

// ScheduleRecord is the outcome for one flight in a run.
type ScheduleRecord struct {
	Flight `yaml:",inline"`

	StartMinutes      int  `json:"start_minutes" yaml:"start_minutes"`
	CompletionMinutes int  `json:"completion_minutes" yaml:"completion_minutes"`
	TurnaroundMinutes int  `json:"turnaround_minutes" yaml:"turnaround_minutes"` // completion - arrival
	WaitingMinutes    int  `json:"waiting_minutes" yaml:"waiting_minutes"`       // start - arrival
	Completed         bool `json:"completed" yaml:"completed"`
}

// NewScheduleRecord derives the record for flight f served from start.
func NewScheduleRecord(f Flight, start int) ScheduleRecord {
	completion := start + f.DurationMinutes
	return ScheduleRecord{
		Flight:            f,
		StartMinutes:      start,
		CompletionMinutes: completion,
		TurnaroundMinutes: completion - f.ArrivalMinutes,
		WaitingMinutes:    start - f.ArrivalMinutes,
		Completed:         true,
	}
}

// Schedule is the immutable result of one scheduling run. Records are held
// in execution (completion) order.
type Schedule struct {
	records []ScheduleRecord
	byID    map[string]int
}

// NewSchedule builds a Schedule from records given in completion order.
// The slice is copied. For duplicate IDs, ByID resolves to the first record.
func NewSchedule(records []ScheduleRecord) *Schedule {
	s := &Schedule{
		records: make([]ScheduleRecord, len(records)),
		byID:    make(map[string]int, len(records)),
	}
	copy(s.records, records)
	for i, r := range s.records {
		if _, dup := s.byID[r.ID]; !dup {
			s.byID[r.ID] = i
		}
	}
	return s
}

// Len returns the number of scheduled flights.
func (s *Schedule) Len() int {
	return len(s.records)
}

// Records returns a copy of the records in completion order.
func (s *Schedule) Records() []ScheduleRecord {
	out := make([]ScheduleRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Order returns flight IDs in the order they were served.
func (s *Schedule) Order() []string {
	order := make([]string, len(s.records))
	for i, r := range s.records {
		order[i] = r.ID
	}
	return order
}

// ByID looks up the record for a flight ID.
func (s *Schedule) ByID(id string) (ScheduleRecord, bool) {
	i, ok := s.byID[id]
	if !ok {
		return ScheduleRecord{}, false
	}
	return s.records[i], true
}

// SortedByID returns the records ordered by flight ID (byte-wise string
// order, so "F10" sorts before "F2"). Records sharing an ID keep their
// completion order.
func (s *Schedule) SortedByID() []ScheduleRecord {
	out := s.Records()
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Summary aggregates run-level metrics over every record.
type Summary struct {
	Flights         int     `json:"flights" yaml:"flights"`
	TotalTurnaround int     `json:"total_turnaround_minutes" yaml:"total_turnaround_minutes"`
	TotalWaiting    int     `json:"total_waiting_minutes" yaml:"total_waiting_minutes"`
	MeanTurnaround  float64 `json:"mean_turnaround_minutes" yaml:"mean_turnaround_minutes"`
	MeanWaiting     float64 `json:"mean_waiting_minutes" yaml:"mean_waiting_minutes"`
	Makespan        int     `json:"makespan_minutes" yaml:"makespan_minutes"`
	IdleMinutes     int     `json:"idle_minutes" yaml:"idle_minutes"`
}

// Summary computes averages and resource usage. An empty schedule yields
// a zero Summary.
func (s *Schedule) Summary() Summary {
	sum := Summary{Flights: len(s.records)}
	if sum.Flights == 0 {
		return sum
	}
	busyUntil := 0
	for _, r := range s.records {
		sum.TotalTurnaround += r.TurnaroundMinutes
		sum.TotalWaiting += r.WaitingMinutes
		if r.StartMinutes > busyUntil {
			sum.IdleMinutes += r.StartMinutes - busyUntil
		}
		if r.CompletionMinutes > busyUntil {
			busyUntil = r.CompletionMinutes
		}
	}
	sum.Makespan = busyUntil
	sum.MeanTurnaround = float64(sum.TotalTurnaround) / float64(sum.Flights)
	sum.MeanWaiting = float64(sum.TotalWaiting) / float64(sum.Flights)
	return sum
}

// ScheduleView is the serialized form of a Schedule used by the API and the
// json/yaml report formats.
type ScheduleView struct {
	RunID     string           `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	Algorithm string           `json:"algorithm,omitempty" yaml:"algorithm,omitempty"`
	Order     []string         `json:"order" yaml:"order"`
	Records   []ScheduleRecord `json:"records" yaml:"records"`
	Summary   Summary          `json:"summary" yaml:"summary"`
}

// View returns the serializable form of the schedule, records sorted by ID.
func (s *Schedule) View() ScheduleView {
	return ScheduleView{
		Order:   s.Order(),
		Records: s.SortedByID(),
		Summary: s.Summary(),
	}
}
