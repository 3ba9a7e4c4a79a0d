package model

import (
	"errors"
	"testing"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"08:30", 510, false},
		{"8:30", 510, false},
		{"8:5", 485, false},
		{" 23:59 ", 1439, false},
		{"12 : 15", 735, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"1230", 0, true},
		{"", 0, true},
		{"ab:cd", 0, true},
		{"-1:30", 0, true},
		{"+1:30", 0, true},
		{"123:00", 0, true},
		{"10:00:00", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseClock(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseClock(%q) = %d, want error", tt.in, got)
			} else if !errors.Is(err, ErrInvalidClock) {
				t.Errorf("ParseClock(%q) error = %v, want ErrInvalidClock", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClock(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseClock(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseDuration(t *testing.T) {
	if got, err := ParseDuration("01:15"); err != nil || got != 75 {
		t.Errorf("ParseDuration(01:15) = %d, %v; want 75, nil", got, err)
	}
	for _, in := range []string{"00:00", "0:0", "x", "24:00"} {
		if _, err := ParseDuration(in); !errors.Is(err, ErrInvalidDuration) {
			t.Errorf("ParseDuration(%q) error = %v, want ErrInvalidDuration", in, err)
		}
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "00:00"},
		{5, "00:05"},
		{510, "08:30"},
		{1439, "23:59"},
		{1510, "25:10"},
	}
	for _, tt := range tests {
		if got := FormatClock(tt.in); got != tt.want {
			t.Errorf("FormatClock(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFlight_InputRoundTrip(t *testing.T) {
	f := Flight{ID: "F1", Origin: "YVR", Destination: "YYZ", ArrivalMinutes: 510, DurationMinutes: 75}
	in := f.Input()
	if in.Arrival != "08:30" || in.Duration != "01:15" || in.From != "YVR" || in.To != "YYZ" {
		t.Fatalf("Input() = %+v", in)
	}
}
