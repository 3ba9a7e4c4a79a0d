package model

// FlightState represents where a flight is in a single scheduling run.
type FlightState string

const (
	FlightStatePending   FlightState = "PENDING"
	FlightStateReady     FlightState = "READY"
	FlightStateCompleted FlightState = "COMPLETED"
)

// String returns the string representation of the flight state.
func (s FlightState) String() string {
	return string(s)
}

// IsTerminal returns true once the flight has been served.
func (s FlightState) IsTerminal() bool {
	return s == FlightStateCompleted
}

// ValidFlightTransitions defines the allowed state transitions for a flight.
// A flight is never preempted, so COMPLETED has no successors.
var ValidFlightTransitions = map[FlightState][]FlightState{
	FlightStatePending: {FlightStateReady},
	FlightStateReady:   {FlightStateCompleted},
}

// CanTransitionTo returns true if moving from the current state to next is valid.
func (s FlightState) CanTransitionTo(next FlightState) bool {
	for _, allowed := range ValidFlightTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
