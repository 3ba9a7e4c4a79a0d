package model

import (
	"reflect"
	"testing"
	"time"
)

func sampleRecords() []ScheduleRecord {
	// Completion order: F2 then F10 then F1, with a 10 minute idle gap before F1.
	return []ScheduleRecord{
		NewScheduleRecord(Flight{ID: "F2", ArrivalMinutes: 0, DurationMinutes: 20}, 0),
		NewScheduleRecord(Flight{ID: "F10", ArrivalMinutes: 0, DurationMinutes: 60}, 20),
		NewScheduleRecord(Flight{ID: "F1", ArrivalMinutes: 90, DurationMinutes: 5}, 90),
	}
}

func TestNewScheduleRecord(t *testing.T) {
	r := NewScheduleRecord(Flight{ID: "X", ArrivalMinutes: 10, DurationMinutes: 5}, 100)
	if r.StartMinutes != 100 || r.CompletionMinutes != 105 || r.WaitingMinutes != 90 || r.TurnaroundMinutes != 95 {
		t.Errorf("record = %+v", r)
	}
	if !r.Completed {
		t.Error("Completed = false, want true")
	}
}

func TestSchedule_OrderAndLookup(t *testing.T) {
	s := NewSchedule(sampleRecords())

	if got, want := s.Order(), []string{"F2", "F10", "F1"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Order() = %v, want %v", got, want)
	}
	r, ok := s.ByID("F10")
	if !ok || r.StartMinutes != 20 {
		t.Errorf("ByID(F10) = %+v, %v", r, ok)
	}
	if _, ok := s.ByID("nope"); ok {
		t.Error("ByID(nope) found a record")
	}

	var ids []string
	for _, r := range s.SortedByID() {
		ids = append(ids, r.ID)
	}
	if want := []string{"F1", "F10", "F2"}; !reflect.DeepEqual(ids, want) {
		t.Errorf("SortedByID() = %v, want %v", ids, want)
	}
}

func TestSchedule_IsolatedFromCaller(t *testing.T) {
	recs := sampleRecords()
	s := NewSchedule(recs)
	recs[0].ID = "mutated"

	got := s.Records()
	if got[0].ID != "F2" {
		t.Fatalf("schedule aliased caller slice: %q", got[0].ID)
	}
	got[1].ID = "mutated"
	if s.Records()[1].ID != "F10" {
		t.Fatal("Records() exposed internal storage")
	}
}

func TestSchedule_DuplicateIDsResolveToFirst(t *testing.T) {
	s := NewSchedule([]ScheduleRecord{
		NewScheduleRecord(Flight{ID: "D", DurationMinutes: 1}, 0),
		NewScheduleRecord(Flight{ID: "D", DurationMinutes: 2}, 1),
	})
	r, _ := s.ByID("D")
	if r.DurationMinutes != 1 {
		t.Errorf("ByID(D).DurationMinutes = %d, want 1", r.DurationMinutes)
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
}

func TestSchedule_Summary(t *testing.T) {
	sum := NewSchedule(sampleRecords()).Summary()
	// turnaround: 20, 80, 5 -> 105; waiting: 0, 20, 0 -> 20
	want := Summary{
		Flights:         3,
		TotalTurnaround: 105,
		TotalWaiting:    20,
		MeanTurnaround:  35,
		MeanWaiting:     20.0 / 3.0,
		Makespan:        95,
		IdleMinutes:     10,
	}
	if sum != want {
		t.Errorf("Summary() = %+v, want %+v", sum, want)
	}
}

func TestSchedule_SummaryEmpty(t *testing.T) {
	if sum := NewSchedule(nil).Summary(); sum != (Summary{}) {
		t.Errorf("Summary() = %+v, want zero", sum)
	}
}

func TestRun_RebuildsSchedule(t *testing.T) {
	s := NewSchedule(sampleRecords())
	run := NewRun("run_1", "bank", "sjf", s, time.Unix(0, 0).UTC())

	v := run.View()
	if v.RunID != "run_1" || v.Algorithm != "sjf" {
		t.Errorf("View() header = %q/%q", v.RunID, v.Algorithm)
	}
	if !reflect.DeepEqual(v.Order, s.Order()) {
		t.Errorf("View().Order = %v, want %v", v.Order, s.Order())
	}
	if run.Summary != s.Summary() {
		t.Errorf("Summary = %+v, want %+v", run.Summary, s.Summary())
	}
}
