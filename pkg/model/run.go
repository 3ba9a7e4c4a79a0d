package model

import "time"

// Run sources.
const (
	RunSourceFile        = "file"
	RunSourceInteractive = "interactive"
	RunSourceAPI         = "api"
)

// Run is an archived scheduling run.
type Run struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Algorithm string           `json:"algorithm"`
	Source    string           `json:"source,omitempty"` // file, interactive or api
	Summary   Summary          `json:"summary"`
	Records   []ScheduleRecord `json:"records"` // completion order
	CreatedAt time.Time        `json:"created_at"`
}

// NewRun snapshots sched for archiving.
func NewRun(id, name, algorithm string, sched *Schedule, createdAt time.Time) *Run {
	return &Run{
		ID:        id,
		Name:      name,
		Algorithm: algorithm,
		Summary:   sched.Summary(),
		Records:   sched.Records(),
		CreatedAt: createdAt,
	}
}

// Schedule rebuilds the immutable schedule from the archived records.
func (r *Run) Schedule() *Schedule {
	return NewSchedule(r.Records)
}

// View returns the serializable form of the run's schedule.
func (r *Run) View() ScheduleView {
	v := r.Schedule().View()
	v.RunID = r.ID
	v.Algorithm = r.Algorithm
	return v
}
