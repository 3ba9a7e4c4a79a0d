package model

// Flight is one job offered to the scheduler. Arrival and duration are
// already validated when a Flight exists; the scheduler does not re-check them.
type Flight struct {
	ID              string `json:"id" yaml:"id"`
	Origin          string `json:"origin" yaml:"origin"`
	Destination     string `json:"destination" yaml:"destination"`
	ArrivalMinutes  int    `json:"arrival_minutes" yaml:"arrival_minutes"`   // minutes since midnight, 0-1439
	DurationMinutes int    `json:"duration_minutes" yaml:"duration_minutes"` // > 0
}

// FlightInput is the user-facing form of a flight as it appears in batch
// files and API requests, with times written as HH:MM.
type FlightInput struct {
	ID       string `json:"id,omitempty" yaml:"id,omitempty"`
	From     string `json:"from" yaml:"from"`
	To       string `json:"to" yaml:"to"`
	Arrival  string `json:"arrival" yaml:"arrival"`
	Duration string `json:"duration" yaml:"duration"`
}

// FlightBatch is a named list of flights to schedule together.
type FlightBatch struct {
	Name    string        `json:"name,omitempty" yaml:"name,omitempty"`
	Flights []FlightInput `json:"flights" yaml:"flights"`
}

// Input converts a Flight back to its HH:MM form.
func (f Flight) Input() FlightInput {
	return FlightInput{
		ID:       f.ID,
		From:     f.Origin,
		To:       f.Destination,
		Arrival:  FormatClock(f.ArrivalMinutes),
		Duration: FormatClock(f.DurationMinutes),
	}
}
