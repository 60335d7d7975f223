package entity

import "testing"

func TestAvailabilityWindowCovers(t *testing.T) {
	w := &AvailabilityWindow{StartTime: "09:00", EndTime: "12:00"}

	cases := []struct {
		name string
		at   string
		want bool
	}{
		{"inside window", "10:00", true},
		{"equal to start", "09:00", true},
		{"equal to end", "12:00", true},
		{"before start", "08:59", false},
		{"after end", "12:01", false},
		{"malformed time", "noon", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := w.Covers(tc.at); got != tc.want {
				t.Errorf("Covers(%q) = %v, want %v", tc.at, got, tc.want)
			}
		})
	}
}

func TestAvailabilityWindowCoversWithSeconds(t *testing.T) {
	// Postgres time columns scan back as "09:00:00".
	w := &AvailabilityWindow{StartTime: "09:00:00", EndTime: "12:00:00"}

	if !w.Covers("09:00") {
		t.Error("expected start bound to be inclusive for HH:MM:SS column values")
	}
	if !w.Covers("12:00") {
		t.Error("expected end bound to be inclusive for HH:MM:SS column values")
	}
	if w.Covers("12:30") {
		t.Error("expected time past end to be rejected")
	}
}
