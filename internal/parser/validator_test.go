package parser

import (
	"strings"
	"testing"

	"github.com/me/flightsched/internal/logging"
	"github.com/me/flightsched/pkg/model"
)

func testValidator() *Validator {
	return NewValidator(logging.Discard())
}

func TestValidate_MorningBatch(t *testing.T) {
	batch, err := testParser().Parse(loadTestdata(t, "batches/morning.yaml"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	flights, apiErr := testValidator().Validate(batch)
	if apiErr != nil {
		t.Fatalf("Validate: %v", apiErr)
	}
	want := []model.Flight{
		{ID: "F1", Origin: "Vancouver", Destination: "Toronto", ArrivalMinutes: 0, DurationMinutes: 60},
		{ID: "F2", Origin: "Calgary", Destination: "Montreal", ArrivalMinutes: 0, DurationMinutes: 20},
		{ID: "F3", Origin: "Seattle", Destination: "Denver", ArrivalMinutes: 10, DurationMinutes: 5},
		{ID: "F4", Origin: "Victoria", Destination: "Kelowna", ArrivalMinutes: 180, DurationMinutes: 30},
	}
	if len(flights) != len(want) {
		t.Fatalf("flights = %d, want %d", len(flights), len(want))
	}
	for i := range want {
		if flights[i] != want[i] {
			t.Errorf("flights[%d] = %+v, want %+v", i, flights[i], want[i])
		}
	}
}

func TestValidate_CollectsEveryProblem(t *testing.T) {
	batch, err := testParser().Parse(loadTestdata(t, "batches/invalid.yaml"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	flights, apiErr := testValidator().Validate(batch)
	if apiErr == nil {
		t.Fatalf("expected validation error, got flights %+v", flights)
	}
	if apiErr.Code != model.ErrValidation {
		t.Errorf("Code = %q, want %q", apiErr.Code, model.ErrValidation)
	}
	fields := map[string]bool{}
	for _, d := range apiErr.Details {
		fields[d.Field] = true
	}
	for _, want := range []string{"flights[0].arrival", "flights[1].duration"} {
		if !fields[want] {
			t.Errorf("missing detail for %s; got %v", want, apiErr.Details)
		}
	}
	if len(apiErr.Details) != 2 {
		t.Errorf("Details = %d, want 2", len(apiErr.Details))
	}
}

func TestValidate_Empty(t *testing.T) {
	for _, batch := range []*model.FlightBatch{nil, {Name: "x"}} {
		_, apiErr := testValidator().Validate(batch)
		if apiErr == nil || len(apiErr.Details) != 1 || apiErr.Details[0].Field != "flights" {
			t.Errorf("Validate(%v) = %v, want flights error", batch, apiErr)
		}
	}
}

func TestValidate_BlankID(t *testing.T) {
	batch := &model.FlightBatch{Flights: []model.FlightInput{{ID: "  ", Arrival: "01:00", Duration: "00:10"}}}
	_, apiErr := testValidator().Validate(batch)
	if apiErr == nil || !strings.Contains(apiErr.Details[0].Field, "id") {
		t.Errorf("Validate = %v, want id error", apiErr)
	}
}

func TestValidate_DuplicateIDsAllowed(t *testing.T) {
	batch := &model.FlightBatch{Flights: []model.FlightInput{
		{ID: "AC1", Arrival: "01:00", Duration: "00:10"},
		{ID: "AC1", Arrival: "01:05", Duration: "00:10"},
	}}
	flights, apiErr := testValidator().Validate(batch)
	if apiErr != nil {
		t.Fatalf("Validate: %v", apiErr)
	}
	if len(flights) != 2 {
		t.Errorf("flights = %d, want 2", len(flights))
	}
}

func TestValidate_TrimsDisplayFields(t *testing.T) {
	batch := &model.FlightBatch{Flights: []model.FlightInput{
		{ID: " AC1 ", From: " YVR ", To: "YYZ  ", Arrival: " 8:30", Duration: "1:15 "},
	}}
	flights, apiErr := testValidator().Validate(batch)
	if apiErr != nil {
		t.Fatalf("Validate: %v", apiErr)
	}
	want := model.Flight{ID: "AC1", Origin: "YVR", Destination: "YYZ", ArrivalMinutes: 510, DurationMinutes: 75}
	if flights[0] != want {
		t.Errorf("flight = %+v, want %+v", flights[0], want)
	}
}
