package scheduler

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/me/flightsched/pkg/model"
)

func flight(id string, arrival, duration int) model.Flight {
	return model.Flight{ID: id, Origin: "YVR", Destination: "YYZ", ArrivalMinutes: arrival, DurationMinutes: duration}
}

// allSchedulers returns one instance of every implementation.
func allSchedulers(t *testing.T) []Scheduler {
	t.Helper()
	var out []Scheduler
	for _, alg := range Algorithms() {
		s, err := New(alg, nil)
		require.NoError(t, err)
		out = append(out, s)
	}
	return out
}

// randomFlights builds n valid flights: arrivals within the day, durations 1..maxDur.
func randomFlights(r *rand.Rand, n, maxDur int) []model.Flight {
	flights := make([]model.Flight, n)
	for i := range flights {
		flights[i] = flight(fmt.Sprintf("F%d", i+1), r.Intn(model.MinutesPerDay), 1+r.Intn(maxDur))
	}
	return flights
}

func TestSchedule_Cases(t *testing.T) {
	type want struct {
		start, completion, waiting, turnaround int
	}
	tests := []struct {
		name    string
		flights []model.Flight
		order   []string
		records map[string]want
	}{
		{
			name:    "single flight",
			flights: []model.Flight{flight("F1", 0, 30)},
			order:   []string{"F1"},
			records: map[string]want{"F1": {0, 30, 0, 30}},
		},
		{
			name:    "shortest first",
			flights: []model.Flight{flight("X", 0, 60), flight("Y", 0, 20)},
			order:   []string{"Y", "X"},
			records: map[string]want{"Y": {0, 20, 0, 20}, "X": {20, 80, 20, 80}},
		},
		{
			name:    "idle gap",
			flights: []model.Flight{flight("F1", 50, 10)},
			order:   []string{"F1"},
			records: map[string]want{"F1": {50, 60, 0, 10}},
		},
		{
			name:    "late arrival does not preempt",
			flights: []model.Flight{flight("X", 0, 100), flight("Y", 10, 5)},
			order:   []string{"X", "Y"},
			records: map[string]want{"X": {0, 100, 0, 100}, "Y": {100, 105, 90, 95}},
		},
	}

	for _, s := range allSchedulers(t) {
		for _, tt := range tests {
			t.Run(s.Algorithm().String()+"/"+tt.name, func(t *testing.T) {
				sched := s.Schedule(tt.flights)
				assert.Equal(t, tt.order, sched.Order())
				for id, w := range tt.records {
					rec, ok := sched.ByID(id)
					require.True(t, ok, "record %s missing", id)
					assert.Equal(t, w.start, rec.StartMinutes, "start %s", id)
					assert.Equal(t, w.completion, rec.CompletionMinutes, "completion %s", id)
					assert.Equal(t, w.waiting, rec.WaitingMinutes, "waiting %s", id)
					assert.Equal(t, w.turnaround, rec.TurnaroundMinutes, "turnaround %s", id)
					assert.True(t, rec.Completed)
				}
			})
		}
	}
}

func TestTieBreak(t *testing.T) {
	tests := []struct {
		name    string
		flights []model.Flight
		order   []string
	}{
		{
			// Equal durations, same arrival: input order decides.
			name:    "input order",
			flights: []model.Flight{flight("B", 0, 10), flight("A", 0, 10), flight("C", 0, 10)},
			order:   []string{"B", "A", "C"},
		},
		{
			// Equal durations, both ready at dispatch: earlier arrival wins
			// even though it was listed later.
			name:    "earlier arrival",
			flights: []model.Flight{flight("L", 0, 50), flight("late", 30, 10), flight("early", 20, 10)},
			order:   []string{"L", "early", "late"},
		},
		{
			// Shorter duration beats earlier arrival.
			name:    "duration first",
			flights: []model.Flight{flight("L", 0, 50), flight("early", 5, 30), flight("short", 40, 10)},
			order:   []string{"L", "short", "early"},
		},
	}
	for _, s := range allSchedulers(t) {
		for _, tt := range tests {
			t.Run(s.Algorithm().String()+"/"+tt.name, func(t *testing.T) {
				assert.Equal(t, tt.order, s.Schedule(tt.flights).Order())
			})
		}
	}
}

func TestSchedule_Empty(t *testing.T) {
	for _, s := range allSchedulers(t) {
		sched := s.Schedule(nil)
		assert.Equal(t, 0, sched.Len(), s.Algorithm())
		assert.Empty(t, sched.Order())
	}
}

func TestSchedule_DoesNotMutateInput(t *testing.T) {
	flights := []model.Flight{flight("F1", 30, 10), flight("F2", 0, 60), flight("F3", 0, 5)}
	snapshot := append([]model.Flight(nil), flights...)
	for _, s := range allSchedulers(t) {
		s.Schedule(flights)
		require.Equal(t, snapshot, flights, s.Algorithm())
	}
}

func TestSchedule_DuplicateIDs(t *testing.T) {
	flights := []model.Flight{flight("D", 0, 30), flight("D", 0, 10)}
	for _, s := range allSchedulers(t) {
		sched := s.Schedule(flights)
		require.Equal(t, 2, sched.Len())
		recs := sched.Records()
		assert.Equal(t, 10, recs[0].DurationMinutes)
		assert.Equal(t, 30, recs[1].DurationMinutes)
	}
}

func TestAdvance(t *testing.T) {
	state := []model.FlightState{model.FlightStatePending}

	advance(state, 0, model.FlightStateReady)
	advance(state, 0, model.FlightStateCompleted)
	assert.True(t, state[0].IsTerminal())

	assert.Panics(t, func() { advance(state, 0, model.FlightStateReady) }, "served flight re-queued")
	assert.Panics(t, func() {
		advance([]model.FlightState{model.FlightStatePending}, 0, model.FlightStateCompleted)
	}, "pending flight served without becoming ready")
}

func TestSchedule_Properties(t *testing.T) {
	r := rand.New(rand.NewSource(42<<32 | 1))
	for _, s := range allSchedulers(t) {
		for round := 0; round < 50; round++ {
			flights := randomFlights(r, 1+r.Intn(40), 180)
			sched := s.Schedule(flights)
			recs := sched.Records()

			// Completeness: order is a permutation of the input IDs.
			require.Len(t, recs, len(flights))
			ids := make([]string, len(flights))
			for i, f := range flights {
				ids[i] = f.ID
			}
			assert.ElementsMatch(t, ids, sched.Order())

			for _, rec := range recs {
				// Conservation.
				assert.Equal(t, rec.StartMinutes+rec.DurationMinutes, rec.CompletionMinutes)
				assert.Equal(t, rec.WaitingMinutes+rec.DurationMinutes, rec.TurnaroundMinutes)
				// Non-negativity.
				assert.GreaterOrEqual(t, rec.WaitingMinutes, 0)
				assert.GreaterOrEqual(t, rec.StartMinutes, rec.ArrivalMinutes)
			}

			// No overlap on the single resource.
			byStart := append([]model.ScheduleRecord(nil), recs...)
			sort.Slice(byStart, func(i, j int) bool { return byStart[i].StartMinutes < byStart[j].StartMinutes })
			for i := 1; i < len(byStart); i++ {
				assert.LessOrEqual(t, byStart[i-1].CompletionMinutes, byStart[i].StartMinutes)
			}

			// Work-conserving: the resource never idles while a flight waits.
			for i := 1; i < len(recs); i++ {
				if recs[i].StartMinutes > recs[i-1].CompletionMinutes {
					assert.Equal(t, recs[i].ArrivalMinutes, recs[i].StartMinutes)
				}
			}
		}
	}
}

// TestImplementationsAgree checks that jumping idle gaps, stepping through
// them minute by minute, and the heap produce identical records.
func TestImplementationsAgree(t *testing.T) {
	r := rand.New(rand.NewSource(7<<32 | 7))
	heapSched := NewSJF(nil)
	scan := NewScan(nil)
	step := NewScan(nil, WithIdleStep())

	for round := 0; round < 100; round++ {
		// Short durations and a narrow duration range force idle gaps and ties.
		flights := randomFlights(r, 1+r.Intn(25), 1+r.Intn(30))
		want := step.Schedule(flights).Records()
		require.Equal(t, want, scan.Schedule(flights).Records(), "round %d", round)
		require.Equal(t, want, heapSched.Schedule(flights).Records(), "round %d", round)
	}
}

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		in      string
		want    Algorithm
		wantErr bool
	}{
		{"", AlgorithmSJF, false},
		{"sjf", AlgorithmSJF, false},
		{" SCAN ", AlgorithmScan, false},
		{"scan-step", AlgorithmScanStep, false},
		{"fcfs", "", true},
	}
	for _, tt := range tests {
		got, err := ParseAlgorithm(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestNew(t *testing.T) {
	for _, alg := range Algorithms() {
		s, err := New(alg, nil)
		require.NoError(t, err)
		assert.Equal(t, alg, s.Algorithm())
	}
	_, err := New("round-robin", nil)
	assert.Error(t, err)
}

func BenchmarkSJF(b *testing.B) {
	flights := randomFlights(rand.New(rand.NewSource(1<<32|2)), 5000, 120)
	s := NewSJF(nil)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Schedule(flights)
	}
}

func BenchmarkScan(b *testing.B) {
	flights := randomFlights(rand.New(rand.NewSource(1<<32|2)), 5000, 120)
	s := NewScan(nil)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Schedule(flights)
	}
}
