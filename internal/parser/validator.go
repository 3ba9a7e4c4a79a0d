package parser

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/me/flightsched/internal/logging"
	"github.com/me/flightsched/pkg/model"
)

// Validator checks a parsed batch and converts it into scheduler input.
type Validator struct {
	logger *slog.Logger
}

// NewValidator creates a Validator with the given logger.
func NewValidator(logger *slog.Logger) *Validator {
	return &Validator{logger: logging.OrDiscard(logger).With("component", "validator")}
}

// Validate checks every entry of batch and returns the flights in input
// order. Returns an *model.APIError listing every problem found.
//
// Missing IDs default to F<n> (1-based position). Duplicate IDs are logged
// and allowed.
func (v *Validator) Validate(batch *model.FlightBatch) ([]model.Flight, *model.APIError) {
	if batch == nil || len(batch.Flights) == 0 {
		return nil, model.NewValidationError("flight batch is invalid",
			model.FieldError{Field: "flights", Message: "at least one flight is required"})
	}

	var errs []model.FieldError
	flights := make([]model.Flight, 0, len(batch.Flights))
	seen := make(map[string]int, len(batch.Flights))

	for i, in := range batch.Flights {
		f, fieldErrs := v.validateFlight(i, in)
		if len(fieldErrs) > 0 {
			errs = append(errs, fieldErrs...)
			continue
		}
		if first, dup := seen[f.ID]; dup {
			v.logger.Warn("duplicate flight id", "id", f.ID, "first", first, "again", i)
		} else {
			seen[f.ID] = i
		}
		flights = append(flights, f)
	}

	if len(errs) > 0 {
		return nil, model.NewValidationError("flight batch is invalid", errs...)
	}
	return flights, nil
}

func (v *Validator) validateFlight(i int, in model.FlightInput) (model.Flight, []model.FieldError) {
	var errs []model.FieldError
	field := func(name string) string { return fmt.Sprintf("flights[%d].%s", i, name) }

	id := in.ID
	if id == "" {
		id = fmt.Sprintf("F%d", i+1)
	} else if strings.TrimSpace(id) == "" {
		errs = append(errs, model.FieldError{Field: field("id"), Message: "id must not be blank"})
	}

	arrival, err := model.ParseClock(in.Arrival)
	if err != nil {
		errs = append(errs, model.FieldError{Field: field("arrival"), Message: err.Error()})
	}
	duration, err := model.ParseDuration(in.Duration)
	if err != nil {
		errs = append(errs, model.FieldError{Field: field("duration"), Message: err.Error()})
	}

	return model.Flight{
		ID:              strings.TrimSpace(id),
		Origin:          strings.TrimSpace(in.From),
		Destination:     strings.TrimSpace(in.To),
		ArrivalMinutes:  arrival,
		DurationMinutes: duration,
	}, errs
}
