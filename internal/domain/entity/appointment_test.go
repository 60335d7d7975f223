package entity

import "testing"

func TestAppointmentStatusChecks(t *testing.T) {
	cases := []struct {
		status    AppointmentStatus
		booked    bool
		completed bool
		cancelled bool
		terminal  bool
	}{
		{AppointmentStatusBooked, true, false, false, false},
		{AppointmentStatusCompleted, false, true, false, true},
		{AppointmentStatusCancelled, false, false, true, true},
	}

	for _, tc := range cases {
		a := &Appointment{Status: tc.status}
		if a.IsBooked() != tc.booked {
			t.Errorf("status %s: IsBooked() = %v, want %v", tc.status, a.IsBooked(), tc.booked)
		}
		if a.IsCompleted() != tc.completed {
			t.Errorf("status %s: IsCompleted() = %v, want %v", tc.status, a.IsCompleted(), tc.completed)
		}
		if a.IsCancelled() != tc.cancelled {
			t.Errorf("status %s: IsCancelled() = %v, want %v", tc.status, a.IsCancelled(), tc.cancelled)
		}
		if a.IsTerminal() != tc.terminal {
			t.Errorf("status %s: IsTerminal() = %v, want %v", tc.status, a.IsTerminal(), tc.terminal)
		}
	}
}

func TestUserActive(t *testing.T) {
	active := true
	inactive := false

	if (&User{IsActive: &active}).Active() != true {
		t.Error("expected active user")
	}
	if (&User{IsActive: &inactive}).Active() != false {
		t.Error("expected inactive user")
	}
	if (&User{}).Active() != false {
		t.Error("nil flag must be treated as inactive")
	}
}
