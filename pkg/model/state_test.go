package model

import "testing"

func TestFlightState_IsTerminal(t *testing.T) {
	tests := []struct {
		state    FlightState
		terminal bool
	}{
		{FlightStatePending, false},
		{FlightStateReady, false},
		{FlightStateCompleted, true},
	}
	for _, tt := range tests {
		if got := tt.state.IsTerminal(); got != tt.terminal {
			t.Errorf("FlightState(%q).IsTerminal() = %v, want %v", tt.state, got, tt.terminal)
		}
	}
}

func TestFlightState_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from  FlightState
		to    FlightState
		valid bool
	}{
		// Valid transitions
		{FlightStatePending, FlightStateReady, true},
		{FlightStateReady, FlightStateCompleted, true},

		// Invalid transitions
		{FlightStatePending, FlightStateCompleted, false},
		{FlightStateReady, FlightStatePending, false},
		{FlightStateCompleted, FlightStateReady, false},
		{FlightStateCompleted, FlightStatePending, false},
		{FlightStatePending, FlightStatePending, false},
	}
	for _, tt := range tests {
		if got := tt.from.CanTransitionTo(tt.to); got != tt.valid {
			t.Errorf("FlightState(%q).CanTransitionTo(%q) = %v, want %v", tt.from, tt.to, got, tt.valid)
		}
	}
}
